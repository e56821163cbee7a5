package engine

import "github.com/sanj0/chessian/internal/board"

// Status is the three-way terminal classification the search core consumes:
// a position is either ongoing, checkmate, or a draw-shaped stalemate.
type Status int

const (
	StatusOngoing Status = iota
	StatusCheckmate
	StatusStalemate
)

func (s Status) String() string {
	switch s {
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// HistoryBoard pairs a position with a Zobrist-hash repetition count,
// so the search can treat a threefold-repeated position as a terminal
// draw without consulting anything outside the search stack. Values are
// immutable: MakeMove returns a new HistoryBoard, it never mutates the
// receiver, so siblings in the search tree never share state.
type HistoryBoard struct {
	Pos     *board.Position
	history map[uint64]uint8
}

// NewHistoryBoard wraps pos with its hash count at 1.
func NewHistoryBoard(pos *board.Position) *HistoryBoard {
	h := make(map[uint64]uint8, 32)
	h[pos.Hash] = 1
	return &HistoryBoard{Pos: pos, history: h}
}

// MakeMove returns the HistoryBoard reached by playing m: a cloned
// repetition map with the successor's hash count incremented, paired
// with the successor position. The clone is paid on every interior node,
// per spec's resource-discipline note.
func (h *HistoryBoard) MakeMove(m board.Move) *HistoryBoard {
	next := h.Pos.Copy()
	next.MakeMove(m)

	nh := make(map[uint64]uint8, len(h.history)+1)
	for k, v := range h.history {
		nh[k] = v
	}
	nh[next.Hash]++

	return &HistoryBoard{Pos: next, history: nh}
}

// Status returns Stalemate if the current position has occurred three or
// more times in the line leading here. Otherwise it returns Checkmate when
// the rules library reports checkmate, Stalemate when it reports
// stalemate or a draw (fifty-move rule, insufficient material), and
// Ongoing for every other position.
func (h *HistoryBoard) Status() Status {
	if h.history[h.Pos.Hash] >= 3 {
		return StatusStalemate
	}
	if h.Pos.IsCheckmate() {
		return StatusCheckmate
	}
	if h.Pos.IsStalemate() || h.Pos.IsDraw() {
		return StatusStalemate
	}
	return StatusOngoing
}

// RepetitionCount reports how many times the current position's hash has
// been seen so far, including the current occurrence.
func (h *HistoryBoard) RepetitionCount() uint8 {
	return h.history[h.Pos.Hash]
}
