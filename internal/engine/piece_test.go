package engine

import (
	"testing"

	"github.com/lgbarn/oolong/internal/chess"
	"github.com/lgbarn/oolong/internal/testutil"
)

// allSquares lists the 64 squares in rank then file order.
func allSquares() []chess.Square {
	squares := make([]chess.Square, 0, chess.BoardSize*chess.BoardSize)
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			squares = append(squares, chess.Sq(rank, file))
		}
	}
	return squares
}

// loneBoard returns a board holding only one piece on sq.
func loneBoard(p chess.Piece, sq chess.Square) (*chess.Board, chess.Piece) {
	board := chess.NewBoard()
	id := board.Add(p, sq)
	placed, _ := board.Piece(id)
	return board, placed
}

// wantReachable is the movement table written out in plain distances.
func wantReachable(kind chess.Kind, from, to chess.Square) bool {
	dr, df := abs(to.Rank-from.Rank), abs(to.File-from.File)
	straight := (dr == 0) != (df == 0)
	diagonal := dr == df && dr > 0

	switch kind {
	case chess.Rook:
		return straight
	case chess.Bishop:
		return diagonal
	case chess.Queen:
		return straight || diagonal
	case chess.Knight:
		return dr*df == 2
	case chess.King:
		return max(dr, df) == 1
	}
	return false
}

func TestReachable_AllSquarePairs(t *testing.T) {
	kinds := []chess.Kind{chess.Rook, chess.Bishop, chess.Queen, chess.Knight, chess.King}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			for _, from := range allSquares() {
				board, p := loneBoard(chess.NewPiece(kind, chess.White), from)
				for _, to := range allSquares() {
					want := wantReachable(kind, from, to)
					if got := Reachable(board, p, to); got != want {
						t.Errorf("Reachable(%v %v -> %v) = %v, want %v", kind, from, to, got, want)
					}
				}
			}
		})
	}
}

func TestReachable_PawnOnEmptyBoard(t *testing.T) {
	for _, owner := range []chess.Colour{chess.White, chess.Black} {
		for _, hasMoved := range []bool{false, true} {
			forward := chess.Forward(owner)
			for _, from := range allSquares() {
				piece := chess.NewPiece(chess.Pawn, owner)
				piece.HasMoved = hasMoved
				board, p := loneBoard(piece, from)

				for _, to := range allSquares() {
					dr, df := to.Rank-from.Rank, to.File-from.File
					want := df == 0 && (dr == forward || (dr == 2*forward && !hasMoved))
					if got := Reachable(board, p, to); got != want {
						t.Errorf("%v pawn (moved=%v) %v -> %v: Reachable = %v, want %v",
							owner, hasMoved, from, to, got, want)
					}
				}
			}
		}
	}
}

func TestReachable_PawnCaptures(t *testing.T) {
	tests := []struct {
		name  string
		board []testutil.Placement
		from  string
		to    string
		want  bool
	}{
		{"white captures left", []testutil.Placement{testutil.W(chess.Pawn, "e4"), testutil.B(chess.Knight, "d5")}, "e4", "d5", true},
		{"white captures right", []testutil.Placement{testutil.W(chess.Pawn, "e4"), testutil.B(chess.Knight, "f5")}, "e4", "f5", true},
		{"white diagonal onto empty", []testutil.Placement{testutil.W(chess.Pawn, "e4")}, "e4", "f5", false},
		{"white backwards diagonal", []testutil.Placement{testutil.W(chess.Pawn, "e4"), testutil.B(chess.Knight, "f3")}, "e4", "f3", false},
		{"black captures", []testutil.Placement{testutil.B(chess.Pawn, "c7"), testutil.W(chess.Bishop, "b6")}, "c7", "b6", true},
		// Own pieces are reachable; the capture check rejects them.
		{"friendly occupant reachable", []testutil.Placement{testutil.B(chess.Pawn, "c7"), testutil.B(chess.Bishop, "d6")}, "c7", "d6", true},
		{"two files over", []testutil.Placement{testutil.W(chess.Pawn, "e4"), testutil.B(chess.Knight, "g5")}, "e4", "g5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.NewBoard(t, tt.board...)
			p := testutil.MustPieceAt(t, board, tt.from)
			if got := Reachable(board, p, testutil.MustSquare(t, tt.to)); got != tt.want {
				t.Errorf("Reachable(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestReachable_OffBoard(t *testing.T) {
	board, p := loneBoard(chess.NewPiece(chess.Queen, chess.White), chess.Sq(7, 7))
	for _, to := range []chess.Square{chess.Sq(8, 7), chess.Sq(7, 8), chess.Sq(-1, -1), chess.Sq(8, 8)} {
		if Reachable(board, p, to) {
			t.Errorf("Reachable(%v) = true, want false", to)
		}
	}
}

// strictlyBetween reports whether x lies on the line from o to t, excluding both ends.
func strictlyBetween(o, x, t chess.Square) bool {
	toX, toT := chess.Between(o, x), chess.Between(o, t)
	ux, err := toX.UnitDirection()
	if err != nil {
		return false
	}
	ut, err := toT.UnitDirection()
	if err != nil {
		return false
	}
	return ux == ut && toX.Length() < toT.Length()
}

func TestBlocked_SlidingPieces(t *testing.T) {
	kinds := []chess.Kind{chess.Rook, chess.Bishop, chess.Queen}
	origins := []chess.Square{chess.Sq(0, 0), chess.Sq(4, 3), chess.Sq(3, 4), chess.Sq(7, 7)}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			for _, from := range origins {
				for _, blocker := range allSquares() {
					if blocker == from {
						continue
					}
					board := chess.NewBoard()
					id := board.Add(chess.NewPiece(kind, chess.White), from)
					board.Add(chess.NewPiece(chess.Knight, chess.Black), blocker)
					p, _ := board.Piece(id)

					for _, to := range allSquares() {
						if !Reachable(board, p, to) {
							continue
						}
						want := strictlyBetween(from, blocker, to)
						if got := Blocked(board, p, to); got != want {
							t.Errorf("%v %v -> %v with blocker %v: Blocked = %v, want %v",
								kind, from, to, blocker, got, want)
						}
					}
				}
			}
		})
	}
}

func TestBlocked_NeverForJumpers(t *testing.T) {
	for _, kind := range []chess.Kind{chess.Knight, chess.King} {
		t.Run(kind.String(), func(t *testing.T) {
			// Fill the whole board around d4 with enemy pieces.
			board := chess.NewBoard()
			id := board.Add(chess.NewPiece(kind, chess.White), chess.Sq(4, 3))
			for _, sq := range allSquares() {
				if sq != chess.Sq(4, 3) {
					board.Add(chess.NewPiece(chess.Pawn, chess.Black), sq)
				}
			}
			p, _ := board.Piece(id)

			for _, to := range allSquares() {
				if Blocked(board, p, to) {
					t.Errorf("Blocked(%v d4 -> %v) = true, want false", kind, to)
				}
			}
		})
	}
}

func TestBlocked_PawnAdvance(t *testing.T) {
	tests := []struct {
		name  string
		board []testutil.Placement
		to    string
		want  bool
	}{
		{"clear two-square", []testutil.Placement{testutil.W(chess.Pawn, "e2")}, "e4", false},
		{"two-square through piece", []testutil.Placement{testutil.W(chess.Pawn, "e2"), testutil.B(chess.Knight, "e3")}, "e4", true},
		{"occupied target is not between", []testutil.Placement{testutil.W(chess.Pawn, "e2"), testutil.B(chess.Knight, "e4")}, "e4", false},
		{"march has nothing between", []testutil.Placement{testutil.W(chess.Pawn, "e2"), testutil.B(chess.Knight, "e3")}, "e3", false},
		{"diagonal never blocked", []testutil.Placement{testutil.W(chess.Pawn, "e2"), testutil.B(chess.Knight, "d3")}, "d3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.NewBoard(t, tt.board...)
			p := testutil.MustPieceAt(t, board, "e2")
			if got := Blocked(board, p, testutil.MustSquare(t, tt.to)); got != tt.want {
				t.Errorf("Blocked(e2 -> %s) = %v, want %v", tt.to, got, tt.want)
			}
		})
	}
}
