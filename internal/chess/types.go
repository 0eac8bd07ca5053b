// Package chess provides the board, piece and geometry types of the move engine.
//
// Squares are addressed by rank and file, both 0-7. Rank 0 is Black's back
// rank and rank 7 is White's, so Black pawns advance towards higher ranks and
// White pawns towards lower ones.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank direction a pawn of the given colour advances in:
// +1 for Black, -1 for White.
func Forward(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// PawnRank returns the rank a colour's pawns start on.
func PawnRank(colour Colour) int {
	if colour == White {
		return BoardSize - 2
	}
	return 1
}

// EndRank returns the rank farthest from a colour's start, where its pawns promote.
func EndRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // No piece / no promotion requested
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Promotable reports whether a pawn may be promoted to this kind.
func (k Kind) Promotable() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// KindFromLetter converts a piece letter (either case) to a kind.
// It returns NoKind for anything else.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// BoardSize is the number of ranks and files.
const BoardSize = 8

// Square is a (rank, file) coordinate. Values outside 0-7 are representable
// but never on the board.
type Square struct {
	Rank int
	File int
}

// Sq builds a square from a rank and a file.
func Sq(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Add offsets the square by a displacement.
func (s Square) Add(d Displacement) Square {
	return Square{Rank: s.Rank + d.DRank, File: s.File + d.DFile}
}

// String returns the algebraic name of the square (a8 is rank 0, file 0).
// Off-board squares are written as (rank,file).
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Rank, s.File)
	}
	return string([]byte{byte('a' + s.File), byte('8' - s.Rank)})
}

// ParseSquare parses an algebraic square name such as "e2".
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	col, row := name[0], name[1]
	if col < 'a' || col > 'h' || row < '1' || row > '8' {
		return Square{}, false
	}
	return Square{Rank: int('8' - row), File: int(col - 'a')}, true
}
