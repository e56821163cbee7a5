package engine

import "github.com/sanj0/chessian/internal/board"

// capturedValue returns the material value of whatever sits on m's
// destination square, or 0 for a non-capture. An en passant capture's
// destination square is empty, so it is scored as a 0-value capture here,
// matching chooser.rs's get_capture_value.
func capturedValue(pos *board.Position, m board.Move) int {
	if captured := pos.PieceAt(m.To()); captured != board.NoPiece {
		return pieceValues[captured.Type()]
	}
	return 0
}

// isQuiet reports whether m's static exchange looks losing for the
// mover: PIECE_VALUES[captured] - PIECE_VALUES[mover] < 0. Quiescence
// extends only along non-quiet moves. Every non-capture is quiet by this
// definition (captured value 0, mover value always positive), so
// generating captures only and filtering them is equivalent to filtering
// all legal moves, and cheaper.
func isQuiet(pos *board.Position, m board.Move) bool {
	mover := pos.PieceAt(m.From())
	moverValue := pieceValues[mover.Type()]
	return capturedValue(pos, m)-moverValue < 0
}

// quiescence extends the search past depth 0 along non-quiet moves only,
// to avoid misjudging a position mid-exchange. It never consults the
// time control: the set of non-quiet moves shrinks as material comes off
// the board, so it is expected to terminate quickly on its own.
func quiescence(hb *HistoryBoard, alpha, beta int) int {
	switch hb.Status() {
	case StatusCheckmate:
		return -MateScore
	case StatusStalemate:
		return drawScore(hb.Pos)
	}

	standPat := Evaluate(hb.Pos)
	if hb.Pos.SideToMove == board.Black {
		standPat = -standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := hb.Pos.GenerateCaptures()
	noisy := board.NewMoveList()
	for i := 0; i < captures.Len(); i++ {
		m := captures.Get(i)
		if !isQuiet(hb.Pos, m) {
			noisy.Add(m)
		}
	}
	SortMoves(hb.Pos, noisy)

	for i := 0; i < noisy.Len(); i++ {
		next := hb.MakeMove(noisy.Get(i))
		value := -quiescence(next, -beta, -alpha)
		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}
	return alpha
}

// drawScore returns the biased draw value from the perspective of the
// side to move in pos: a side that is down more than a bishop's worth of
// material prefers the draw, a side that is ahead abhors it.
func drawScore(pos *board.Position) int {
	eval := Evaluate(pos)
	if pos.SideToMove == board.Black {
		eval = -eval
	}
	if eval < -BishopValue {
		return MateScore / 2
	}
	return -MateScore / 2
}
