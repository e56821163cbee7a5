package engine

import (
	"io"
	"log"
	"sync/atomic"
	"time"
)

// Difficulty is a named search-limit preset for hosts that don't want to
// construct a TimeControl themselves.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// DifficultySettings maps a Difficulty to a depth/move-time pair.
// SearchWithDifficulty reads only the move-time bound; the Depth field is
// not used by any search call.
var DifficultySettings = map[Difficulty]struct {
	Depth    int
	MoveTime time.Duration
}{
	Easy:   {Depth: 3, MoveTime: 500 * time.Millisecond},
	Medium: {Depth: 7, MoveTime: 2 * time.Second},
	Hard:   {Depth: 40, MoveTime: 10 * time.Second},
}

// Engine is a thin façade over Search: it owns the cancel flag shared
// with a running search and the difficulty preset used to build a
// TimeControl when the host does not supply one of its own. It holds no
// position state of its own; every call takes the HistoryBoard to
// search explicitly, matching the core's stateless search(board,
// control, ...) contract.
type Engine struct {
	stopFlag   atomic.Bool
	difficulty Difficulty

	// Logger receives lifecycle messages (search start/stop, warnings).
	// Defaults to the standard logger if nil.
	Logger *log.Logger
}

// NewEngine creates an Engine at the Medium difficulty preset.
func NewEngine() *Engine {
	return &Engine{difficulty: Medium, Logger: log.Default()}
}

// SetDifficulty changes the preset used by SearchWithDifficulty.
func (e *Engine) SetDifficulty(d Difficulty) {
	e.difficulty = d
}

// Stop sets the shared cancel flag; a running search observes it on its
// next time-control poll and returns its best progress so far.
func (e *Engine) Stop() {
	e.stopFlag.Store(true)
}

// Reset clears the cancel flag, readying the engine for a new search.
func (e *Engine) Reset() {
	e.stopFlag.Store(false)
}

// SearchWithDifficulty runs Search under the configured difficulty
// preset's move-time bound.
func (e *Engine) SearchWithDifficulty(hb *HistoryBoard, infoSink, logSink io.Writer) *SearchResult {
	settings := DifficultySettings[e.difficulty]
	tc := NewMoveTimeControl(settings.MoveTime.Milliseconds(), &e.stopFlag)
	return e.run(hb, tc, infoSink, logSink)
}

// SearchDepth runs Search to a fixed depth.
func (e *Engine) SearchDepth(hb *HistoryBoard, depth int, infoSink, logSink io.Writer) *SearchResult {
	return e.run(hb, NewDepthControl(depth, &e.stopFlag), infoSink, logSink)
}

// SearchMoveTime runs Search under a fixed move-time bound, in milliseconds.
func (e *Engine) SearchMoveTime(hb *HistoryBoard, ms int64, infoSink, logSink io.Writer) *SearchResult {
	return e.run(hb, NewMoveTimeControl(ms, &e.stopFlag), infoSink, logSink)
}

// SearchInfinite runs Search until Stop is called.
func (e *Engine) SearchInfinite(hb *HistoryBoard, infoSink, logSink io.Writer) *SearchResult {
	return e.run(hb, NewInfiniteControl(&e.stopFlag), infoSink, logSink)
}

func (e *Engine) run(hb *HistoryBoard, tc TimeControl, infoSink, logSink io.Writer) *SearchResult {
	e.Reset()
	if e.Logger != nil {
		e.Logger.Printf("search started, to-move hash=%x", hb.Pos.Hash)
	}
	result := Search(hb, tc, infoSink, logSink)
	if e.Logger != nil {
		if result == nil {
			e.Logger.Printf("search found no legal move")
		} else {
			e.Logger.Printf("search done: best=%s depth=%d score=%d", result.BestMove, result.ReachedDepth, result.Score)
		}
	}
	return result
}
