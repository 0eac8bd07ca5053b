package engine

import (
	"github.com/lgbarn/oolong/internal/chess"
	"github.com/lgbarn/oolong/internal/errors"
)

// pawnReachable accepts a one-square march, a first two-square advance and a
// diagonal step onto an occupied square or an en passant target. Occupancy of
// a march target is not considered here.
func pawnReachable(board *chess.Board, p chess.Piece, target chess.Square) bool {
	forward := chess.Forward(p.Owner)
	d := chess.Between(p.Square, target)

	switch {
	case d.DFile == 0 && d.DRank == forward:
		return true
	case d.DFile == 0 && d.DRank == 2*forward:
		return !p.HasMoved
	case abs(d.DFile) == 1 && d.DRank == forward:
		if board.Occupied(target) {
			return true
		}
		_, ok := enPassantVictim(board, p, target)
		return ok
	}

	return false
}

// pawnBlocked checks the path of a straight advance. Diagonal steps have no
// intermediate squares.
func pawnBlocked(board *chess.Board, p chess.Piece, target chess.Square) bool {
	if chess.Between(p.Square, target).DFile != 0 {
		return false
	}
	return slidingBlocked(board, p.Square, target)
}

// pawnCheck validates a promotion request. It never rejects on the target's
// occupant; an enemy there is captured like any other.
func pawnCheck(p chess.Piece, target chess.Square, opts MoveOptions) error {
	if opts.Promotion == chess.NoKind {
		return nil
	}
	if !opts.Promotion.Promotable() || target.Rank != chess.EndRank(p.Owner) {
		return errors.ErrPromotion
	}
	return nil
}

// enPassantVictim returns the enemy pawn that a diagonal step to an empty
// target would capture en passant: a vulnerable pawn beside p on the target's
// file, so that target is the square directly behind it.
func enPassantVictim(board *chess.Board, p chess.Piece, target chess.Square) (chess.Piece, bool) {
	d := chess.Between(p.Square, target)
	if abs(d.DFile) != 1 || d.DRank != chess.Forward(p.Owner) || board.Occupied(target) {
		return chess.Piece{}, false
	}

	victim, ok := board.OccupantAt(chess.Sq(p.Square.Rank, target.File))
	if !ok || victim.Kind != chess.Pawn || victim.Owner == p.Owner || !victim.EnPassantVulnerable {
		return chess.Piece{}, false
	}
	return victim, true
}

// pawnPreMove removes a pawn captured en passant.
func pawnPreMove(board *chess.Board, p chess.Piece, target chess.Square) (chess.Piece, bool) {
	victim, ok := enPassantVictim(board, p, target)
	if !ok {
		return chess.Piece{}, false
	}
	board.Clear(victim.Square)
	board.Retire(victim.ID)
	return victim, true
}

// pawnPostMove records the first move and en passant vulnerability, and
// promotes a pawn standing on its end rank if a kind was requested. Without a
// request the pawn stays a pawn.
func pawnPostMove(board *chess.Board, p chess.Piece, from chess.Square, opts MoveOptions) chess.Piece {
	p.HasMoved = true
	p.EnPassantVulnerable = abs(chess.Between(from, p.Square).DRank) == 2
	board.Update(p)

	if opts.Promotion == chess.NoKind || p.Square.Rank != chess.EndRank(p.Owner) {
		return p
	}

	promoted, _ := board.Replace(p.ID, opts.Promotion)
	return promoted
}
