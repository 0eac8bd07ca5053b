package replay

import (
	stderrors "errors"

	"github.com/google/uuid"

	"github.com/lgbarn/oolong/internal/chess"
	"github.com/lgbarn/oolong/internal/config"
	"github.com/lgbarn/oolong/internal/engine"
	"github.com/lgbarn/oolong/internal/errors"
)

// Outcome records what happened to one move of a script.
type Outcome struct {
	Ply       int    `json:"ply"`
	Move      string `json:"move"`
	Line      int    `json:"line,omitempty"`
	Applied   bool   `json:"applied"`
	Piece     string `json:"piece,omitempty"`
	Captured  string `json:"captured,omitempty"`
	EnPassant bool   `json:"en_passant,omitempty"`
	Promoted  string `json:"promoted,omitempty"`
	Stage     string `json:"stage"`
	Error     string `json:"error,omitempty"`

	Err error `json:"-"`
}

// Report is the result of replaying one script.
type Report struct {
	SessionID string    `json:"session_id"`
	Script    string    `json:"script"`
	StartFEN  string    `json:"start_fen"`
	FinalFEN  string    `json:"final_fen,omitempty"`
	Outcomes  []Outcome `json:"moves,omitempty"`
	Applied   int       `json:"applied"`
	Rejected  int       `json:"rejected"`
	Stopped   bool      `json:"stopped,omitempty"`

	board *chess.Board
}

// Board returns the board as it stood after the last move.
func (r *Report) Board() *chess.Board {
	return r.board
}

// Replay plays every move of script against a fresh board. Rejected moves
// are recorded and skipped, or end the replay if cfg.StopOnError is set.
// The error is non-nil only when the starting placement cannot be parsed.
func Replay(script *Script, cfg *config.ReplayConfig) (*Report, error) {
	if cfg == nil {
		cfg = config.NewReplayConfig()
	}

	fen := script.FEN
	if fen == "" {
		fen = cfg.StartFEN
	}
	if fen == "" {
		fen = engine.InitialFEN
	}

	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, errors.Wrapf(err, "script %s", script.Name)
	}

	report := &Report{
		SessionID: uuid.NewString(),
		Script:    script.Name,
		StartFEN:  fen,
		board:     board,
	}

	for i, req := range script.Moves {
		outcome := Play(board, req, cfg.DefaultPromotion)
		outcome.Ply = i + 1
		report.Outcomes = append(report.Outcomes, outcome)

		if outcome.Applied {
			report.Applied++
			continue
		}
		report.Rejected++
		if cfg.StopOnError {
			report.Stopped = i+1 < len(script.Moves)
			break
		}
	}

	report.FinalFEN = engine.PlacementFEN(board)
	return report, nil
}

// Play applies a single request to board. A pawn reaching its end rank
// without a named promotion becomes defaultPromotion.
func Play(board *chess.Board, req Request, defaultPromotion chess.Kind) Outcome {
	outcome := Outcome{Move: req.Text, Line: req.Line}

	opts := engine.MoveOptions{Promotion: req.Promotion}
	if p, ok := board.OccupantAt(req.From); ok {
		outcome.Piece = p.String()
		if opts.Promotion == chess.NoKind && p.Kind == chess.Pawn && req.To.Rank == chess.EndRank(p.Owner) {
			opts.Promotion = defaultPromotion
		}
	}

	res, err := engine.ApplyFrom(board, req.From, req.To, opts)
	outcome.Stage = res.Stage.String()
	if err != nil {
		outcome.Err = err
		outcome.Error = err.Error()
		return outcome
	}

	outcome.Applied = true
	if res.HasCapture {
		outcome.Captured = res.Captured.String()
		outcome.EnPassant = res.EnPassant
	}
	if res.Promoted {
		outcome.Promoted = res.Piece.Kind.String()
	}
	return outcome
}

// Rejection returns the sentinel a rejected outcome failed with, or nil.
func (o Outcome) Rejection() error {
	var moveErr *errors.MoveError
	if stderrors.As(o.Err, &moveErr) {
		return moveErr.Err
	}
	return o.Err
}
