package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/sanj0/chessian/internal/board"
)

// SearchResult is the outcome of a completed or cancelled search: the
// move to play, an optional predicted reply, the final score, the
// deepest root depth fully completed, and the elapsed wall-clock time.
type SearchResult struct {
	BestMove     board.Move
	Reply        board.Move
	Score        int
	ReachedDepth int
	ElapsedMs    int64
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// Search runs iterative-deepening negamax from hb under tc, writing one
// UCI-style info line per completed depth to infoSink and any diagnostic
// messages to logSink. It returns nil if the root has no legal moves (the
// position is already terminal), or if no root move was committed before
// the search ended: the time control stopped it before the first root
// move was scored, or every root move loses to mate at depth 1. Writes to
// either sink are best-effort: a write error is ignored, never surfaced to the caller.
func Search(hb *HistoryBoard, tc TimeControl, infoSink, logSink io.Writer) *SearchResult {
	root := hb.Pos.GenerateLegalMoves()
	if root.Len() == 0 {
		return nil
	}

	if root.Len() == 1 {
		return &SearchResult{BestMove: root.Get(0), Score: -1, ReachedDepth: 0, ElapsedMs: 0}
	}

	SortMoves(hb.Pos, root)

	var bestMove, reply board.Move
	bestScore := -Inf
	t0 := nowMillis()

	depth := 1
outer:
	for {
		alpha := -Inf
		var currentBest, currentReply board.Move
		currentIndex := 0
		var nodes uint64

		for i := 0; i < root.Len(); i++ {
			m := root.Get(i)
			child := negamax(hb.MakeMove(m), depth, -Inf, -alpha, tc, t0, &nodes)
			if !child.ok {
				fmt.Fprint(logSink, "\nout of time!")
				if alpha > bestScore && currentBest != bestMove {
					bestMove = currentBest
					reply = currentReply
					bestScore = alpha
				}
				break outer
			}
			score := -child.value
			if score > alpha {
				currentBest = m
				currentReply = child.reply
				currentIndex = i
				alpha = score
			}
			if alpha >= MateScore {
				fmt.Fprintf(logSink, "!!! MATE AT DEPTH %d !!!\n", depth)
				bestMove = currentBest
				reply = currentReply
				bestScore = alpha
				break outer
			}
		}

		if alpha <= -MateScore {
			fmt.Fprintf(logSink, "!!! WE LOSE IN MATE IN %d !!!\n", depth)
			break
		}

		elapsed := nowMillis() - t0
		nps := float64(0)
		if elapsed > 0 {
			nps = float64(nodes) / (float64(elapsed) / 1000.0)
		}
		fmt.Fprintf(infoSink, "info depth 2 seldepth %d multipv 1 score cp %d nodes %d nps %.0f time %d pv %s %s\n",
			depth, alpha, nodes, nps, elapsed, moveOrNone(currentBest), moveOrNone(currentReply))

		depth++
		moveToFront(root, currentIndex)
		bestMove = currentBest
		reply = currentReply
		bestScore = alpha

		if tc.ShouldStop(elapsed, depth-1) {
			break
		}
	}

	if bestMove == board.NoMove {
		return nil
	}
	return &SearchResult{
		BestMove:     bestMove,
		Reply:        reply,
		Score:        bestScore,
		ReachedDepth: depth - 1,
		ElapsedMs:    nowMillis() - t0,
	}
}

// moveToFront removes the move at index and reinserts it at the head of
// the list, preserving the relative order of every other move. Used to
// promote the previous iteration's best move to be searched first at the
// next depth.
func moveToFront(moves *board.MoveList, index int) {
	if index == 0 {
		return
	}
	m := moves.Get(index)
	for i := index; i > 0; i-- {
		moves.Set(i, moves.Get(i-1))
	}
	moves.Set(0, m)
}

func moveOrNone(m board.Move) string {
	if m == board.NoMove {
		return "0000"
	}
	return m.String()
}
