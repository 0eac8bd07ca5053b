package chess

import "fmt"

// PieceID identifies a piece in a board's arena. NoPiece marks an empty square.
type PieceID int

// NoPiece is the zero PieceID; it never names a piece.
const NoPiece PieceID = 0

// Piece is a piece value as recorded in a board's arena.
type Piece struct {
	ID     PieceID
	Kind   Kind
	Owner  Colour
	Square Square

	// Pawn state. HasMoved gates the two-square first move;
	// EnPassantVulnerable is set only between a two-square advance and the
	// next completed move.
	HasMoved            bool
	EnPassantVulnerable bool
}

// NewPiece constructs an unplaced piece value. It gets an ID and a square
// when added to a board.
func NewPiece(kind Kind, owner Colour) Piece {
	return Piece{Kind: kind, Owner: owner}
}

// Letter returns the FEN letter of the piece: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Owner == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// String returns a short description such as "White Pawn e2".
func (p Piece) String() string {
	return fmt.Sprintf("%s %s %s", p.Owner, p.Kind, p.Square)
}
