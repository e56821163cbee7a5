package engine

import "github.com/sanj0/chessian/internal/board"

// priority scores a pseudo-legal move for ordering: the mover's own
// piece-square value at the destination square, plus the value of
// whatever piece sits on that square before the move is made. It is a
// single cheap heuristic, not MVV-LVA, not a killer or history table.
// Captures and squares the PST favors simply sort first.
func priority(pos *board.Position, m board.Move) int {
	mover := pos.PieceAt(m.From())
	pt := mover.Type()
	side := mover.Color()
	score := squareScores[side][pt][m.To()]
	if captured := pos.PieceAt(m.To()); captured != board.NoPiece {
		score += pieceValues[captured.Type()]
	}
	return score
}

// SortMoves orders moves in place, highest priority first, via selection
// sort. A chess position never produces more than a few dozen legal
// moves, so the O(n^2) cost is immaterial.
func SortMoves(pos *board.Position, moves *board.MoveList) {
	n := moves.Len()
	scores := make([]int, n)
	for i := 0; i < n; i++ {
		scores[i] = priority(pos, moves.Get(i))
	}
	for i := 0; i < n-1; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if scores[j] > scores[best] {
				best = j
			}
		}
		if best != i {
			moves.Swap(i, best)
			scores[i], scores[best] = scores[best], scores[i]
		}
	}
}

// PickMove selects the highest-priority move at or after index and moves
// it to index, leaving earlier entries untouched. This is the lazy-sort
// counterpart to SortMoves: a caller that only needs the first move or
// two need not pay for a full sort.
func PickMove(pos *board.Position, moves *board.MoveList, index int) {
	best := index
	bestScore := priority(pos, moves.Get(index))
	for j := index + 1; j < moves.Len(); j++ {
		s := priority(pos, moves.Get(j))
		if s > bestScore {
			best = j
			bestScore = s
		}
	}
	if best != index {
		moves.Swap(index, best)
	}
}
