package engine

import (
	"testing"

	"github.com/sanj0/chessian/internal/board"
)

func TestSortMovesPutsCaptureFirst(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	moves := pos.GenerateLegalMoves()
	SortMoves(pos, moves)

	capture, err := board.ParseMove("e4d5", pos)
	if err != nil {
		t.Fatal(err)
	}
	if got := moves.Get(0); got != capture {
		t.Errorf("expected the pawn capture e4d5 to sort first, got %s", got)
	}
}

func TestSortMovesOrdersByDescendingPriority(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	moves := pos.GenerateLegalMoves()
	SortMoves(pos, moves)

	for i := 1; i < moves.Len(); i++ {
		if priority(pos, moves.Get(i-1)) < priority(pos, moves.Get(i)) {
			t.Fatalf("moves not sorted descending by priority at index %d", i)
		}
	}
}

func TestPickMoveAgreesWithSortMovesHead(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatal(err)
	}

	sorted := pos.GenerateLegalMoves()
	SortMoves(pos, sorted)

	picked := pos.GenerateLegalMoves()
	PickMove(pos, picked, 0)

	if picked.Get(0) != sorted.Get(0) {
		t.Errorf("PickMove disagreed with SortMoves on the best move: %s vs %s", picked.Get(0), sorted.Get(0))
	}
}

func TestPickMoveLeavesEarlierEntriesInPlace(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	moves := pos.GenerateLegalMoves()

	PickMove(pos, moves, 0)
	first := moves.Get(0)
	PickMove(pos, moves, 1)

	if moves.Get(0) != first {
		t.Errorf("PickMove(index=1) must not disturb the already-selected head at index 0")
	}
}
