package engine

import (
	"fmt"
	"io"

	"github.com/sanj0/chessian/internal/board"
)

// MaxPly bounds the mate-distance adjustment below; it is not a hard
// search-depth cap.
const MaxPly = 128

// ttNodeType records which kind of bound a ttEntry's score represents.
type ttNodeType uint8

const (
	ttExact ttNodeType = iota
	ttLowerBound
	ttUpperBound
)

type ttEntry struct {
	key      uint32
	score    int16
	depth    int8
	nodeType ttNodeType
	age      uint8
}

// experimentalTT is a depth-preferred-replacement transposition table, in
// the shape of the teacher's default-path table, storing the node-type
// classification used by the Rust prototype's historical TT variant
// instead of the teacher's separate lower/upper-bound flags.
type experimentalTT struct {
	entries []ttEntry
	mask    uint64
	age     uint8
}

func newExperimentalTT(sizeMB int) *experimentalTT {
	numEntries := roundDownToPowerOf2(uint64(sizeMB) * 1024 * 1024 / 12)
	if numEntries == 0 {
		numEntries = 1
	}
	return &experimentalTT{entries: make([]ttEntry, numEntries), mask: numEntries - 1}
}

func roundDownToPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

func (tt *experimentalTT) probe(hash uint64) (ttEntry, bool) {
	e := tt.entries[hash&tt.mask]
	if e.depth > 0 && e.key == uint32(hash>>32) {
		return e, true
	}
	return ttEntry{}, false
}

func (tt *experimentalTT) store(hash uint64, depth int, score int, nt ttNodeType) {
	idx := hash & tt.mask
	e := &tt.entries[idx]
	if e.age != tt.age || depth >= int(e.depth) {
		e.key = uint32(hash >> 32)
		e.score = int16(score)
		e.depth = int8(depth)
		e.nodeType = nt
		e.age = tt.age
	}
}

func (tt *experimentalTT) newSearch() { tt.age++ }

// adjustScoreFromTT and adjustScoreToTT translate a mate score between
// its absolute form and a form relative to ply, so a mate found N plies
// from a stored node still reads as a mate N+ply plies from the root
// once it is retrieved higher up the tree.
func adjustScoreFromTT(score, ply int) int {
	if score > MateScore-MaxPly {
		return score - ply
	}
	if score < -MateScore+MaxPly {
		return score + ply
	}
	return score
}

func adjustScoreToTT(score, ply int) int {
	if score > MateScore-MaxPly {
		return score + ply
	}
	if score < -MateScore+MaxPly {
		return score - ply
	}
	return score
}

// ExperimentalTTSearch is a non-default, explicitly alternate search
// entry point: iterative-deepening negamax backed by a depth-preferred
// transposition table. It is never called by Search; a caller opts into
// it directly when they want to compare it against the default,
// TT-free core. It checks threefold repetition through HistoryBoard.Status
// like the default search, but only after probing the table, so a
// repeated position can be answered from a stored entry instead of being
// scored as a draw; this is one reason it remains experimental rather
// than the default.
func ExperimentalTTSearch(hb *HistoryBoard, tc TimeControl, sizeMB int, infoSink, logSink io.Writer) *SearchResult {
	root := hb.Pos.GenerateLegalMoves()
	if root.Len() == 0 {
		return nil
	}
	if root.Len() == 1 {
		return &SearchResult{BestMove: root.Get(0), Score: -1, ReachedDepth: 0, ElapsedMs: 0}
	}

	tt := newExperimentalTT(sizeMB)
	SortMoves(hb.Pos, root)

	var bestMove board.Move
	bestScore := -Inf
	t0 := nowMillis()

	depth := 1
outer:
	for {
		tt.newSearch()
		alpha := -Inf
		var currentBest board.Move
		currentIndex := 0

		for i := 0; i < root.Len(); i++ {
			m := root.Get(i)
			child := hb.MakeMove(m)
			value, ok := expNegamax(child, depth-1, -Inf, -alpha, 1, tc, t0, tt)
			if !ok {
				fmt.Fprint(logSink, "\nout of time!")
				break outer
			}
			value = -value
			if value > alpha {
				currentBest = m
				currentIndex = i
				alpha = value
			}
			if alpha >= MateScore {
				fmt.Fprintf(logSink, "!!! MATE AT DEPTH %d !!!\n", depth)
				bestMove = currentBest
				bestScore = alpha
				break outer
			}
		}

		if alpha <= -MateScore {
			break
		}

		elapsed := nowMillis() - t0
		fmt.Fprintf(infoSink, "info depth %d score cp %d time %d pv %s\n", depth, alpha, elapsed, moveOrNone(currentBest))

		moveToFront(root, currentIndex)
		bestMove = currentBest
		bestScore = alpha
		depth++

		if tc.ShouldStop(elapsed, depth-1) {
			break
		}
	}

	if bestMove == board.NoMove {
		return nil
	}
	return &SearchResult{BestMove: bestMove, Score: bestScore, ReachedDepth: depth - 1, ElapsedMs: nowMillis() - t0}
}

// expNegamax is the TT-backed negamax used only by ExperimentalTTSearch.
// It probes before recursing and stores a depth-preferred entry after
// every interior node, classified exact/lower/upper by how alpha and
// beta moved during the node.
func expNegamax(hb *HistoryBoard, depth int, alpha, beta int, ply int, tc TimeControl, t0 int64, tt *experimentalTT) (int, bool) {
	hash := hb.Pos.Hash
	if entry, found := tt.probe(hash); found && int(entry.depth) >= depth {
		score := adjustScoreFromTT(int(entry.score), ply)
		switch entry.nodeType {
		case ttExact:
			return score, true
		case ttLowerBound:
			if score > alpha {
				alpha = score
			}
		case ttUpperBound:
			if score < beta {
				beta = score
			}
		}
		if alpha >= beta {
			return score, true
		}
	}

	if depth == 0 {
		return quiescence(hb, alpha, beta), true
	}

	if tc.ShouldStop(nowMillis()-t0, 0) {
		return 0, false
	}

	switch hb.Status() {
	case StatusCheckmate:
		return -MateScore + ply, true
	case StatusStalemate:
		return drawScore(hb.Pos), true
	}

	moves := hb.Pos.GenerateLegalMoves()
	if depth != 1 {
		SortMoves(hb.Pos, moves)
	}

	origAlpha := alpha
	best := -Inf
	for i := 0; i < moves.Len(); i++ {
		child := hb.MakeMove(moves.Get(i))
		value, ok := expNegamax(child, depth-1, -beta, -alpha, ply+1, tc, t0, tt)
		if !ok {
			return 0, false
		}
		value = -value
		if value > best {
			best = value
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	var nt ttNodeType
	switch {
	case best <= origAlpha:
		nt = ttUpperBound
	case best >= beta:
		nt = ttLowerBound
	default:
		nt = ttExact
	}
	tt.store(hash, depth, adjustScoreToTT(best, ply), nt)

	return alpha, true
}
