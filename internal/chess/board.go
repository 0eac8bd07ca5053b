package chess

// slot is one arena entry.
type slot struct {
	piece Piece
	live  bool
}

// Board is an 8x8 grid of piece identifiers backed by an arena of piece values.
//
// Squares hold PieceIDs; the arena holds the pieces themselves. A captured
// piece is retired from the arena and a promoted pawn has its entry
// overwritten, so no piece value outlives the board's bookkeeping.
//
// Coordinates outside 0-7 are treated uniformly: reads report an empty square
// and writes are ignored. Callers that need to reject off-board squares check
// Square.InBounds first.
type Board struct {
	squares [BoardSize][BoardSize]PieceID
	arena   []slot // arena[0] is unused so that NoPiece is never a valid index
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		arena: make([]slot, 1, 33),
	}
}

// OccupantAt returns the piece on a square, if any.
func (b *Board) OccupantAt(sq Square) (Piece, bool) {
	id := b.IDAt(sq)
	if id == NoPiece {
		return Piece{}, false
	}
	return b.Piece(id)
}

// IDAt returns the identifier stored on a square, or NoPiece.
func (b *Board) IDAt(sq Square) PieceID {
	if !sq.InBounds() {
		return NoPiece
	}
	return b.squares[sq.Rank][sq.File]
}

// Occupied reports whether a square holds a piece.
func (b *Board) Occupied(sq Square) bool {
	_, ok := b.OccupantAt(sq)
	return ok
}

// Place writes a piece identifier onto a square, overwriting whatever was there.
// It does not touch the piece's recorded square or the overwritten piece.
func (b *Board) Place(sq Square, id PieceID) {
	if !sq.InBounds() {
		return
	}
	b.squares[sq.Rank][sq.File] = id
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	b.Place(sq, NoPiece)
}

// Add registers a piece in the arena and places it on sq. A piece already on
// sq is retired. It returns NoPiece, and adds nothing, if sq is off the board.
func (b *Board) Add(p Piece, sq Square) PieceID {
	if !sq.InBounds() {
		return NoPiece
	}
	if old := b.IDAt(sq); old != NoPiece {
		b.Retire(old)
	}
	id := PieceID(len(b.arena))
	p.ID = id
	p.Square = sq
	b.arena = append(b.arena, slot{piece: p, live: true})
	b.Place(sq, id)
	return id
}

// Piece returns the arena entry for id. Retired and unknown ids report false.
func (b *Board) Piece(id PieceID) (Piece, bool) {
	if id <= NoPiece || int(id) >= len(b.arena) || !b.arena[id].live {
		return Piece{}, false
	}
	return b.arena[id].piece, true
}

// Update writes a modified piece value back to its arena entry.
// It reports false if the piece is not live on this board.
func (b *Board) Update(p Piece) bool {
	if _, ok := b.Piece(p.ID); !ok {
		return false
	}
	b.arena[p.ID].piece = p
	return true
}

// Replace overwrites the arena entry for id with a fresh piece of another
// kind, keeping the owner and square. The old value is gone afterwards.
func (b *Board) Replace(id PieceID, kind Kind) (Piece, bool) {
	old, ok := b.Piece(id)
	if !ok {
		return Piece{}, false
	}
	p := NewPiece(kind, old.Owner)
	p.ID = id
	p.Square = old.Square
	p.HasMoved = true
	b.arena[id].piece = p
	return p, true
}

// Retire removes a piece from the arena. It does not clear its square.
func (b *Board) Retire(id PieceID) {
	if _, ok := b.Piece(id); ok {
		b.arena[id].live = false
	}
}

// Pieces returns the live pieces in ID order.
func (b *Board) Pieces() []Piece {
	pieces := make([]Piece, 0, len(b.arena))
	for _, s := range b.arena[1:] {
		if s.live {
			pieces = append(pieces, s.piece)
		}
	}
	return pieces
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{squares: b.squares}
	newBoard.arena = make([]slot, len(b.arena), cap(b.arena))
	copy(newBoard.arena, b.arena)
	return newBoard
}
