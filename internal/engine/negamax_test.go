package engine

import (
	"sync/atomic"
	"testing"

	"github.com/sanj0/chessian/internal/board"
)

func TestNegamaxDetectsCheckmateAtLeafDirectly(t *testing.T) {
	pos, err := board.ParseFEN("R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	hb := NewHistoryBoard(pos)
	if hb.Status() != StatusCheckmate {
		t.Fatal("test position must be checkmate")
	}

	var nodes uint64
	result := negamax(hb, 3, -Inf, Inf, NewDepthControl(3, nil), nowMillis(), &nodes)
	if !result.ok {
		t.Fatal("expected a completed (non-aborted) negamax result")
	}
	if result.value != -MateScore {
		t.Errorf("expected -MateScore for a mated side to move, got %d", result.value)
	}
}

func TestNegamaxAbortsWhenCancelled(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	hb := NewHistoryBoard(pos)

	var flag atomic.Bool
	tc := NewDepthControl(1, &flag)
	tc.Cancel()

	var nodes uint64
	result := negamax(hb, 4, -Inf, Inf, tc, nowMillis()-1, &nodes)
	if result.ok {
		t.Error("expected an aborted result once the shared cancel flag is set")
	}
}

func TestNegamaxZeroDepthDefersToQuiescence(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	hb := NewHistoryBoard(pos)

	var nodes uint64
	result := negamax(hb, 0, -Inf, Inf, NewDepthControl(0, nil), nowMillis(), &nodes)
	if !result.ok {
		t.Fatal("expected a completed result at depth 0")
	}
	if result.value != quiescence(hb, -Inf, Inf) {
		t.Errorf("depth-0 negamax must match a direct quiescence call, got %d vs %d", result.value, quiescence(hb, -Inf, Inf))
	}
}
