// Package engine decides whether a single move is legal and applies it.
//
// Every piece kind implements the same capability set: a reachability test,
// a blocking test and pre- and post-move side effects. The kinds are a closed
// set, so each capability is a switch on chess.Kind; only the kinds that
// deviate from the defaults (reachable, never blocked, no side effects) have
// a case.
package engine

import (
	"github.com/lgbarn/oolong/internal/chess"
	"github.com/lgbarn/oolong/internal/errors"
)

// Reachable reports whether the piece's movement geometry permits a move to
// target, ignoring anything standing in between. Off-board targets are never
// reachable.
func Reachable(board *chess.Board, p chess.Piece, target chess.Square) bool {
	if !target.InBounds() {
		return false
	}
	d := chess.Between(p.Square, target)

	switch p.Kind {
	case chess.Rook:
		return d.IsStraight()
	case chess.Bishop:
		return d.IsDiagonal()
	case chess.Queen:
		return d.IsStraight() || d.IsDiagonal()
	case chess.Knight:
		return d.IsLShape()
	case chess.King:
		return d.IsUnit()
	case chess.Pawn:
		return pawnReachable(board, p, target)
	}

	return true
}

// Blocked reports whether an occupied square lies strictly between the piece
// and target on its line of travel. Knights and kings are never blocked.
func Blocked(board *chess.Board, p chess.Piece, target chess.Square) bool {
	switch p.Kind {
	case chess.Rook, chess.Bishop, chess.Queen:
		return slidingBlocked(board, p.Square, target)
	case chess.Pawn:
		return pawnBlocked(board, p, target)
	}

	return false
}

// checkSideEffects validates the parts of a request that are not geometry,
// which today means promotion. It returns the sentinel to reject with, or nil.
func checkSideEffects(p chess.Piece, target chess.Square, opts MoveOptions) error {
	if opts.Promotion != chess.NoKind && p.Kind != chess.Pawn {
		return errors.ErrPromotion
	}
	if p.Kind == chess.Pawn {
		return pawnCheck(p, target, opts)
	}
	return nil
}

// preMove runs before the piece leaves its square. It returns a piece it
// captured off the target square, if any.
func preMove(board *chess.Board, p chess.Piece, target chess.Square) (chess.Piece, bool) {
	if p.Kind == chess.Pawn {
		return pawnPreMove(board, p, target)
	}
	return chess.Piece{}, false
}

// postMove runs after the piece stands on target with its square updated.
// It returns the piece as it ends the move.
func postMove(board *chess.Board, p chess.Piece, from chess.Square, opts MoveOptions) chess.Piece {
	if p.Kind == chess.Pawn {
		return pawnPostMove(board, p, from, opts)
	}
	return p
}
