package engine

import "sync/atomic"

// TCMode selects how a search decides when to stop probing deeper.
type TCMode int

const (
	// TCMoveTime stops once elapsed time reaches the given millisecond bound.
	TCMoveTime TCMode = iota
	// TCDepth stops once the root driver has completed the given depth.
	TCDepth
	// TCInfinite never stops on its own; only the cancel flag can end it.
	TCInfinite
)

// TimeControl is a mode tag plus an optional shared cancel flag. Once the
// flag becomes true it stays true for the life of the search; the flag is
// the only shared-mutable datum between the search goroutine and its host.
type TimeControl struct {
	mode     TCMode
	millis   int64
	depth    int
	stopFlag *atomic.Bool
}

// NewMoveTimeControl stops the search once elapsed milliseconds reach ms.
func NewMoveTimeControl(ms int64, stopFlag *atomic.Bool) TimeControl {
	return TimeControl{mode: TCMoveTime, millis: ms, stopFlag: stopFlag}
}

// NewDepthControl stops the root driver once it has completed depth d.
// Interior nodes always pass reached_depth = 0, so depth mode is only
// observed at the root and a Depth search always finishes its current
// iteration.
func NewDepthControl(d int, stopFlag *atomic.Bool) TimeControl {
	return TimeControl{mode: TCDepth, depth: d, stopFlag: stopFlag}
}

// NewInfiniteControl never stops on the mode predicate; only the cancel
// flag (or an external Stop) ends it.
func NewInfiniteControl(stopFlag *atomic.Bool) TimeControl {
	return TimeControl{mode: TCInfinite, stopFlag: stopFlag}
}

// ShouldStop reports whether the search should abort now: true if the
// cancel flag is set, or if the mode predicate fires. elapsedMs is
// wall-clock milliseconds since the search began; reachedDepth is the
// depth just completed by the root driver, or 0 for an interior node.
func (tc TimeControl) ShouldStop(elapsedMs int64, reachedDepth int) bool {
	if tc.stopFlag != nil && tc.stopFlag.Load() {
		return true
	}
	switch tc.mode {
	case TCMoveTime:
		return elapsedMs >= tc.millis
	case TCDepth:
		return reachedDepth >= tc.depth
	default:
		return false
	}
}

// Cancel sets the shared cancel flag, if one was given. It is safe to call
// from any goroutine and has relaxed memory ordering: the only cross-thread
// communication here is monotone (false -> true) and lossy-tolerant.
func (tc TimeControl) Cancel() {
	if tc.stopFlag != nil {
		tc.stopFlag.Store(true)
	}
}

// Cancelled reports whether the shared cancel flag has been set.
func (tc TimeControl) Cancelled() bool {
	return tc.stopFlag != nil && tc.stopFlag.Load()
}
