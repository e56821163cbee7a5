package engine

import "github.com/sanj0/chessian/internal/board"

// forEachSquare visits the index of every set bit in bb in ascending order,
// clearing the lowest set bit after each visit. Finite, not restartable,
// allocation-free.
func forEachSquare(bb board.Bitboard, f func(board.Square)) {
	bb.ForEach(f)
}
