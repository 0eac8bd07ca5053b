package engine

import "github.com/lgbarn/oolong/internal/chess"

// slidingBlocked reports whether any square strictly between from and to is
// occupied. Targets that are not on a line from the origin are never blocked;
// the reach check rejects them first.
func slidingBlocked(board *chess.Board, from, to chess.Square) bool {
	path, err := chess.Path(from, to)
	if err != nil {
		return false
	}
	for _, sq := range path {
		if board.Occupied(sq) {
			return true
		}
	}
	return false
}
