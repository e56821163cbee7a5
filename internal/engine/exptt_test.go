package engine

import (
	"io"
	"testing"

	"github.com/sanj0/chessian/internal/board"
)

func TestExperimentalTTSearchFindsMateInOne(t *testing.T) {
	pos, err := board.ParseFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	hb := NewHistoryBoard(pos)

	result := ExperimentalTTSearch(hb, NewDepthControl(2, nil), 1, io.Discard, io.Discard)
	if result == nil {
		t.Fatal("expected a result for the mate-in-one position")
	}

	want, err := board.ParseMove("a1a8", hb.Pos)
	if err != nil {
		t.Fatal(err)
	}
	if result.BestMove != want {
		t.Errorf("expected the mating move a1a8, got %s", result.BestMove)
	}
	if result.Score < MateScore {
		t.Errorf("expected a mate score >= %d, got %d", MateScore, result.Score)
	}
}

func TestExperimentalTTSearchSingleLegalMoveFastPath(t *testing.T) {
	pos, err := board.ParseFEN("k7/8/8/8/8/8/5nPP/7K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	hb := NewHistoryBoard(pos)
	legal := hb.Pos.GenerateLegalMoves()
	if legal.Len() != 1 {
		t.Fatalf("test position must have exactly one legal move, has %d", legal.Len())
	}

	result := ExperimentalTTSearch(hb, NewDepthControl(5, nil), 1, io.Discard, io.Discard)
	if result == nil {
		t.Fatal("expected a result on the single-legal-move fast path")
	}
	if result.BestMove != legal.Get(0) {
		t.Errorf("expected the fast path to return the only legal move %s, got %s", legal.Get(0), result.BestMove)
	}
	if result.ReachedDepth != 0 {
		t.Errorf("the single-move fast path should not report a real search depth, got %d", result.ReachedDepth)
	}
}

func TestExperimentalTTSearchStartingPositionDepthOne(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	hb := NewHistoryBoard(pos)

	result := ExperimentalTTSearch(hb, NewDepthControl(1, nil), 1, io.Discard, io.Discard)
	if result == nil {
		t.Fatal("expected a result from the starting position")
	}
	legal := hb.Pos.GenerateLegalMoves()
	if !legal.Contains(result.BestMove) {
		t.Errorf("BestMove %s is not a legal move from the starting position", result.BestMove)
	}
	if result.ReachedDepth != 1 {
		t.Errorf("expected ReachedDepth 1, got %d", result.ReachedDepth)
	}
}

func TestRoundDownToPowerOf2(t *testing.T) {
	cases := map[uint64]uint64{
		0:   0,
		1:   1,
		2:   2,
		3:   2,
		4:   4,
		5:   4,
		17:  16,
		1023: 512,
		1024: 1024,
	}
	for in, want := range cases {
		if got := roundDownToPowerOf2(in); got != want {
			t.Errorf("roundDownToPowerOf2(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestExperimentalTTProbeStoreRoundTrip(t *testing.T) {
	tt := newExperimentalTT(1)
	const hash = uint64(0xdeadbeef) << 32
	tt.store(hash, 4, 123, ttExact)

	entry, found := tt.probe(hash)
	if !found {
		t.Fatal("expected the stored entry to be found")
	}
	if entry.score != 123 || int(entry.depth) != 4 || entry.nodeType != ttExact {
		t.Errorf("unexpected entry contents: %+v", entry)
	}

	if _, found := tt.probe(hash ^ 0xff); found {
		t.Error("probing a different hash should not find the entry stored for hash")
	}
}

func TestAdjustScoreToAndFromTTRoundTrips(t *testing.T) {
	const ply = 5
	mateScore := MateScore - 3
	toTT := adjustScoreToTT(mateScore, ply)
	back := adjustScoreFromTT(toTT, ply)
	if back != mateScore {
		t.Errorf("mate score did not round-trip through adjustScoreToTT/FromTT: got %d, want %d", back, mateScore)
	}

	plain := 42
	if got := adjustScoreToTT(plain, ply); got != plain {
		t.Errorf("a non-mate score must pass through adjustScoreToTT unchanged, got %d", got)
	}
}
