package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/oolong/internal/chess"
	"github.com/lgbarn/oolong/internal/errors"
)

// InitialFEN is the piece-placement field of the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// NewBoardFromFEN creates a board from a FEN string. Only the piece-placement
// field is used; any further fields are ignored. The first row of the field
// is rank 0.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	grid, err := ParsePlacement(fen)
	if err != nil {
		return nil, err
	}
	return chess.NewBoardFromGrid(grid), nil
}

// ParsePlacement parses the piece-placement field of a FEN string into a Grid.
func ParsePlacement(fen string) (chess.Grid, error) {
	var grid chess.Grid

	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return grid, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidPlacement)
	}

	rows := strings.Split(parts[0], "/")
	if len(rows) != chess.BoardSize {
		return grid, fmt.Errorf("%d ranks, want %d: %w", len(rows), chess.BoardSize, errors.ErrInvalidPlacement)
	}

	for rank, row := range rows {
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind := chess.KindFromLetter(byte(c))
				if kind == chess.NoKind {
					return grid, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidPlacement)
				}
				if file >= chess.BoardSize {
					return grid, fmt.Errorf("rank %d overflows: %w", rank, errors.ErrInvalidPlacement)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				grid[rank][file] = chess.Cell{Kind: kind, Owner: colour}
				file++
			}
		}
		if file != chess.BoardSize {
			return grid, fmt.Errorf("rank %d has %d files: %w", rank, file, errors.ErrInvalidPlacement)
		}
	}

	return grid, nil
}

// PlacementFEN returns the piece-placement field describing the board.
func PlacementFEN(board *chess.Board) string {
	var sb strings.Builder

	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			p, ok := board.OccupantAt(chess.Sq(rank, file))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
