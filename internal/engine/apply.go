package engine

import (
	"github.com/lgbarn/oolong/internal/chess"
	"github.com/lgbarn/oolong/internal/errors"
)

// MoveOptions carries the optional parts of a move request.
type MoveOptions struct {
	// Promotion is the kind a pawn should become on its end rank.
	// NoKind leaves the pawn a pawn.
	Promotion chess.Kind
}

// Stage is a step of the move pipeline. A move passes through the stages in
// order; a rejected move stops at the last stage it passed.
type Stage int

const (
	StageStart Stage = iota
	StageReachChecked
	StageBlockChecked
	StageCaptureChecked
	StageSideEffectsChecked
	StageApplied
)

// String returns the string representation of a stage.
func (s Stage) String() string {
	names := []string{"Start", "ReachChecked", "BlockChecked", "CaptureChecked", "SideEffectsChecked", "Applied"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Result describes an applied move, or how far a rejected one got.
type Result struct {
	Piece         chess.Piece // The mover after the move; a new kind if promoted
	From          chess.Square
	To            chess.Square
	Captured      chess.Piece // Valid only if HasCapture
	HasCapture    bool
	EnPassant     bool
	DoubleAdvance bool
	Promoted      bool
	Stage         Stage
}

// Validate runs every legality check for moving piece id to target without
// touching the board. It returns the last stage passed and, for an illegal
// move, a *errors.MoveError.
func Validate(board *chess.Board, id chess.PieceID, target chess.Square, opts MoveOptions) (Stage, error) {
	p, ok := board.Piece(id)
	if !ok {
		return StageStart, &errors.MoveError{Err: errors.ErrNoPiece, Piece: id, To: target}
	}
	return validate(board, p, target, opts)
}

func validate(board *chess.Board, p chess.Piece, target chess.Square, opts MoveOptions) (Stage, error) {
	if !Reachable(board, p, target) {
		return StageStart, errors.NewMoveError(errors.ErrOutOfReach, p, target)
	}

	if Blocked(board, p, target) {
		return StageReachChecked, errors.NewMoveError(errors.ErrBlocked, p, target)
	}

	if occupant, ok := board.OccupantAt(target); ok && occupant.Owner == p.Owner {
		return StageBlockChecked, errors.NewMoveError(errors.ErrFriendFire, p, target)
	}

	if err := checkSideEffects(p, target, opts); err != nil {
		if err == errors.ErrPromotion {
			return StageCaptureChecked, errors.NewPromotionError(p, target, opts.Promotion)
		}
		return StageCaptureChecked, errors.NewMoveError(err, p, target)
	}

	return StageSideEffectsChecked, nil
}

// Apply moves piece id to target if the move is legal.
//
// Either every check passes and the move is applied in full, or an error is
// returned and the board is left exactly as it was. Any piece on target is an
// enemy by then; it is overwritten and retired.
func Apply(board *chess.Board, id chess.PieceID, target chess.Square, opts MoveOptions) (Result, error) {
	p, ok := board.Piece(id)
	if !ok {
		return Result{To: target}, &errors.MoveError{Err: errors.ErrNoPiece, Piece: id, To: target}
	}

	stage, err := validate(board, p, target, opts)
	if err != nil {
		return Result{Piece: p, From: p.Square, To: target, Stage: stage}, err
	}

	res := Result{From: p.Square, To: target}

	if victim, ok := preMove(board, p, target); ok {
		res.Captured, res.HasCapture, res.EnPassant = victim, true, true
	}

	// Vulnerability lasts until the next completed move, whoever makes it.
	clearEnPassant(board)

	if occupant, ok := board.OccupantAt(target); ok {
		board.Retire(occupant.ID)
		res.Captured, res.HasCapture = occupant, true
	}

	p, _ = board.Piece(id)
	board.Clear(p.Square)
	board.Place(target, id)
	p.Square = target
	board.Update(p)

	final := postMove(board, p, res.From, opts)

	res.Piece = final
	res.DoubleAdvance = final.EnPassantVulnerable
	res.Promoted = final.Kind != p.Kind
	res.Stage = StageApplied
	return res, nil
}

// ApplyFrom moves whatever piece stands on from to target.
func ApplyFrom(board *chess.Board, from, target chess.Square, opts MoveOptions) (Result, error) {
	id := board.IDAt(from)
	if id == chess.NoPiece {
		return Result{From: from, To: target}, &errors.MoveError{Err: errors.ErrNoPiece, From: from, To: target}
	}
	return Apply(board, id, target, opts)
}

// Targets returns every square piece id could legally move to, in rank then
// file order. Promotion moves are reported once.
func Targets(board *chess.Board, id chess.PieceID) []chess.Square {
	var targets []chess.Square
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(rank, file)
			if _, err := Validate(board, id, sq, MoveOptions{}); err == nil {
				targets = append(targets, sq)
			}
		}
	}
	return targets
}

// clearEnPassant drops every piece's en passant vulnerability.
func clearEnPassant(board *chess.Board) {
	for _, p := range board.Pieces() {
		if p.EnPassantVulnerable {
			p.EnPassantVulnerable = false
			board.Update(p)
		}
	}
}
