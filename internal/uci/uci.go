// Package uci is a thin front-end driving the search core over the
// Universal Chess Interface protocol: stdin commands in, info/bestmove
// lines out.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sanj0/chessian/internal/board"
	"github.com/sanj0/chessian/internal/engine"
)

// UCI holds the one thing that survives across commands: the current
// game's HistoryBoard. Everything else is per-search state.
type UCI struct {
	eng     *engine.Engine
	history *engine.HistoryBoard

	searchDone chan struct{}
}

// New creates a UCI handler for eng, starting from the standard opening
// position.
func New(eng *engine.Engine) *UCI {
	pos, _ := board.ParseFEN(board.StartFEN)
	return &UCI{eng: eng, history: engine.NewHistoryBoard(pos)}
}

// Run reads commands from stdin until "quit" or EOF.
func (u *UCI) Run() {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			u.handleStop()
			pos, _ := board.ParseFEN(board.StartFEN)
			u.history = engine.NewHistoryBoard(pos)
		case "position":
			u.handleStop()
			u.handlePosition(args)
		case "go":
			u.handleStop()
			u.handleGo(args)
		case "stop":
			u.handleStop()
		case "quit":
			u.handleStop()
			return
		}
	}
}

func (u *UCI) handleUCI() {
	fmt.Println("id name chessian")
	fmt.Println("id author sanj0")
	fmt.Println("uciok")
}

// handlePosition parses "startpos [moves ...]" or "fen <fen> [moves ...]"
// and rebuilds u.history by replaying each move through HistoryBoard, so
// repetition counting starts fresh from whatever position the host gave
// us.
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var pos *board.Position
	var err error
	idx := 0

	switch args[0] {
	case "startpos":
		pos, err = board.ParseFEN(board.StartFEN)
		idx = 1
	case "fen":
		idx = 1
		start := idx
		for idx < len(args) && args[idx] != "moves" {
			idx++
		}
		pos, err = board.ParseFEN(strings.Join(args[start:idx], " "))
	default:
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "info string invalid position: %v\n", err)
		return
	}

	hb := engine.NewHistoryBoard(pos)
	if idx < len(args) && args[idx] == "moves" {
		for _, moveStr := range args[idx+1:] {
			m, err := board.ParseMove(moveStr, hb.Pos)
			if err != nil {
				fmt.Fprintf(os.Stderr, "info string invalid move %s: %v\n", moveStr, err)
				break
			}
			hb = hb.MakeMove(m)
		}
	}
	u.history = hb
}

// handleGo parses "depth N", "movetime N", or "infinite" and runs the
// matching Search variant on a background goroutine. Control returns to
// the command loop immediately, so "stop" can be read while the search
// is running.
func (u *UCI) handleGo(args []string) {
	mode := "infinite"
	depth := 1
	var moveTimeMs int64

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				i++
				depth, _ = strconv.Atoi(args[i])
				mode = "depth"
			}
		case "movetime":
			if i+1 < len(args) {
				i++
				moveTimeMs, _ = strconv.ParseInt(args[i], 10, 64)
				mode = "movetime"
			}
		case "infinite":
			mode = "infinite"
		}
	}

	u.eng.Reset()
	done := make(chan struct{})
	u.searchDone = done
	hb := u.history

	go func() {
		defer close(done)
		var result *engine.SearchResult
		switch mode {
		case "depth":
			result = u.eng.SearchDepth(hb, depth, os.Stdout, os.Stderr)
		case "movetime":
			result = u.eng.SearchMoveTime(hb, moveTimeMs, os.Stdout, os.Stderr)
		default:
			result = u.eng.SearchInfinite(hb, os.Stdout, os.Stderr)
		}
		printBestMove(result)
	}()
}

// handleStop sets the cancel flag, if a search is running, and awaits
// its completion (which includes printing the bestmove line) before
// returning: the synchronous handoff that guarantees at most one
// active search at a time.
func (u *UCI) handleStop() {
	if u.searchDone == nil {
		return
	}
	u.eng.Stop()
	<-u.searchDone
	u.searchDone = nil
}

func printBestMove(result *engine.SearchResult) {
	if result == nil {
		fmt.Println("bestmove 0000")
		return
	}
	if result.Reply == board.NoMove {
		fmt.Printf("bestmove %s\n", result.BestMove)
		return
	}
	fmt.Printf("bestmove %s ponder %s\n", result.BestMove, result.Reply)
}
