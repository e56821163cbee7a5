package engine

import "github.com/sanj0/chessian/internal/board"

// MateScore is the magnitude returned for a forced checkmate; Inf is a
// window bound loose enough that no real evaluation or mate score can
// reach it.
const (
	MateScore = 30000
	Inf       = MateScore * 2
)

// negamaxResult carries a search value together with the reply move that
// produced it, or reports that the node was aborted by the time control.
type negamaxResult struct {
	ok    bool
	value int
	reply board.Move
}

var abortedResult = negamaxResult{}

// negamax searches hb to the given depth with the standard alpha-beta
// window (alpha, beta), returning the negamax value from the side to
// move's perspective and the move that produced it. A zero-value,
// not-ok result means the time control aborted the search below this
// point; callers must propagate it unchanged rather than using its
// fields.
func negamax(hb *HistoryBoard, depth int, alpha, beta int, tc TimeControl, t0 int64, nodes *uint64) negamaxResult {
	if depth == 0 {
		*nodes++
		return negamaxResult{ok: true, value: quiescence(hb, alpha, beta)}
	}

	if tc.ShouldStop(nowMillis()-t0, 0) {
		return abortedResult
	}

	switch hb.Status() {
	case StatusCheckmate:
		return negamaxResult{ok: true, value: -MateScore}
	case StatusStalemate:
		return negamaxResult{ok: true, value: drawScore(hb.Pos)}
	}

	moves := hb.Pos.GenerateLegalMoves()
	if depth != 1 {
		SortMoves(hb.Pos, moves)
	}

	var reply board.Move
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		child := negamax(hb.MakeMove(m), depth-1, -beta, -alpha, tc, t0, nodes)
		if !child.ok {
			return abortedResult
		}
		value := -child.value
		if value >= beta {
			return negamaxResult{ok: true, value: beta}
		}
		if value > alpha {
			alpha = value
			reply = m
		}
	}
	return negamaxResult{ok: true, value: alpha, reply: reply}
}
