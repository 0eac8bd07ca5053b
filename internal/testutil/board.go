package testutil

import (
	"testing"

	"github.com/lgbarn/oolong/internal/chess"
)

// Placement names a piece to put on a test board.
type Placement struct {
	Square string // Algebraic, e.g. "e2"
	Kind   chess.Kind
	Owner  chess.Colour
}

// W and B build placements for White and Black pieces.
func W(kind chess.Kind, square string) Placement {
	return Placement{Square: square, Kind: kind, Owner: chess.White}
}

// B builds a placement for a Black piece.
func B(kind chess.Kind, square string) Placement {
	return Placement{Square: square, Kind: kind, Owner: chess.Black}
}

// NewBoard builds a board holding exactly the given pieces. Pawns off their
// starting rank are marked as having moved.
func NewBoard(t *testing.T, placements ...Placement) *chess.Board {
	t.Helper()
	var grid chess.Grid
	for _, pl := range placements {
		sq := MustSquare(t, pl.Square)
		if !grid[sq.Rank][sq.File].Empty() {
			t.Fatalf("square %s placed twice", pl.Square)
		}
		grid[sq.Rank][sq.File] = chess.Cell{Kind: pl.Kind, Owner: pl.Owner}
	}
	return chess.NewBoardFromGrid(grid)
}

// MustSquare parses an algebraic square name or fails the test.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("invalid square %q", name)
	}
	return sq
}

// MustPieceAt returns the piece on a square or fails the test.
func MustPieceAt(t *testing.T, board *chess.Board, name string) chess.Piece {
	t.Helper()
	p, ok := board.OccupantAt(MustSquare(t, name))
	if !ok {
		t.Fatalf("no piece on %s", name)
	}
	return p
}
