package chess

// Cell is the (kind, owner) content of one square in a Grid.
// A zero Kind means the square is empty.
type Cell struct {
	Kind  Kind
	Owner Colour
}

// Empty reports whether the cell holds no piece.
func (c Cell) Empty() bool {
	return c.Kind == NoKind
}

// Grid is a plain occupancy snapshot, indexed [rank][file].
type Grid [BoardSize][BoardSize]Cell

// Snapshot returns the occupancy of the board as a Grid.
func (b *Board) Snapshot() Grid {
	var g Grid
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p, ok := b.OccupantAt(Sq(rank, file)); ok {
				g[rank][file] = Cell{Kind: p.Kind, Owner: p.Owner}
			}
		}
	}
	return g
}

// NewBoardFromGrid builds a board from a Grid, adding pieces rank by rank.
// A pawn off its starting rank is marked as having moved; a grid carries no
// en passant state.
func NewBoardFromGrid(g Grid) *Board {
	b := NewBoard()
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			c := g[rank][file]
			if c.Empty() {
				continue
			}
			p := NewPiece(c.Kind, c.Owner)
			p.HasMoved = c.Kind == Pawn && rank != PawnRank(c.Owner)
			b.Add(p, Sq(rank, file))
		}
	}
	return b
}
