package engine

import "github.com/sanj0/chessian/internal/board"

// Piece values in centipawns, canonical order pawn, knight, bishop, rook, queen, king.
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 333
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 20000
)

var pieceValues = [6]int{PawnValue, KnightValue, BishopValue, RookValue, QueenValue, KingValue}

// doublePawnSanction is the penalty, in centipawns, for an extra pawn a side
// holds on a file beyond what the opponent holds on the same file.
const doublePawnSanction = 45

// endgamePieceThreshold: a position is endgame iff total piece count is
// strictly below this popcount.
const endgamePieceThreshold = 20

// Evaluate returns an integer centipawn score from White's perspective:
// positive favors White. Deterministic, no randomness or floating point.
func Evaluate(pos *board.Position) int {
	result := 0
	isEndgame := pos.AllOccupied.PopCount() < endgamePieceThreshold

	white := pos.Occupied[board.White]
	black := pos.Occupied[board.Black]

	for pt := board.Pawn; pt <= board.King; pt++ {
		whitePieces := white & pos.Pieces[board.White][pt]
		blackPieces := black & pos.Pieces[board.Black][pt]

		switch pt {
		case board.Pawn:
			if isEndgame {
				forEachSquare(whitePieces, func(sq board.Square) {
					result += squareScores[board.White][board.Pawn][sq] + pieceValues[board.Pawn]
					result += endgamePawnScores[board.White][sq]
				})
				forEachSquare(blackPieces, func(sq board.Square) {
					result -= squareScores[board.Black][board.Pawn][sq] + pieceValues[board.Pawn]
					result -= endgamePawnScores[board.Black][sq]
				})
			} else {
				forEachSquare(whitePieces, func(sq board.Square) {
					result += squareScores[board.White][board.Pawn][sq] + pieceValues[board.Pawn]
				})
				forEachSquare(blackPieces, func(sq board.Square) {
					result -= squareScores[board.Black][board.Pawn][sq] + pieceValues[board.Pawn]
				})
			}
		case board.King:
			if isEndgame {
				forEachSquare(whitePieces, func(sq board.Square) {
					result += endgameKingScores[board.White][sq]
				})
				forEachSquare(blackPieces, func(sq board.Square) {
					result -= endgameKingScores[board.Black][sq]
				})
			} else {
				forEachSquare(whitePieces, func(sq board.Square) {
					result += squareScores[board.White][board.King][sq] + pieceValues[board.King]
				})
				forEachSquare(blackPieces, func(sq board.Square) {
					result -= squareScores[board.Black][board.King][sq] + pieceValues[board.King]
				})
			}
		default:
			forEachSquare(whitePieces, func(sq board.Square) {
				result += squareScores[board.White][pt][sq] + pieceValues[pt]
			})
			forEachSquare(blackPieces, func(sq board.Square) {
				result -= squareScores[board.Black][pt][sq] + pieceValues[pt]
			})
		}
	}

	whitePawns := white & pos.Pieces[board.White][board.Pawn]
	blackPawns := black & pos.Pieces[board.Black][board.Pawn]
	for file := 0; file < 8; file++ {
		fileBB := board.FileMask[file]
		diff := (fileBB & whitePawns).PopCount() - (fileBB & blackPawns).PopCount()
		result -= diff * doublePawnSanction
	}

	return result
}

// squareScores[color][piece][square] holds midgame positional bonuses.
// Color 0 is White, 1 is Black; the same square index is looked up for
// either side. Piece indices follow pawn, knight, bishop, rook, queen, king.
// The Black pawn, bishop and king tables are the White tables mirrored
// vertically. The Black knight and queen tables are unmirrored copies of
// White's, and the Black rook table is White's mirrored with every value
// halved, so Evaluate is not exactly colour-symmetric for those pieces.
var squareScores = [2][6][64]int{
	{ // White
		{ // Pawn
			0, 0, 0, 0, 0, 0, 0, 0,
			5, 10, 10, -20, -20, 10, 10, 5,
			5, -5, -10, 0, 0, -10, -5, 5,
			0, 0, 0, 20, 20, 0, 0, 0,
			5, 5, 10, 25, 25, 10, 5, 5,
			10, 10, 20, 30, 30, 20, 10, 10,
			50, 50, 50, 50, 50, 50, 50, 50,
			0, 0, 0, 0, 0, 0, 0, 0,
		},
		{ // Knight
			-50, -40, -30, -30, -30, -30, -40, -50,
			-40, -20, 0, 5, 5, 0, -20, -40,
			-30, 5, 10, 15, 15, 10, 5, -30,
			-30, 0, 15, 20, 20, 15, 0, -30,
			-30, 5, 15, 20, 20, 15, 5, -30,
			-30, 0, 10, 15, 15, 10, 0, -30,
			-40, -20, 0, 0, 0, 0, -20, -40,
			-50, -40, -30, -30, -30, -30, -40, -50,
		},
		{ // Bishop
			-20, -10, -10, -10, -10, -10, -10, -20,
			-10, 5, 0, 0, 0, 0, 5, -10,
			-10, 10, 10, 10, 10, 10, 10, -10,
			-10, 0, 10, 10, 10, 10, 0, -10,
			-10, 5, 5, 10, 10, 5, 5, -10,
			-10, 0, 5, 10, 10, 5, 0, -10,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-20, -10, -10, -10, -10, -10, -10, -20,
		},
		{ // Rook
			0, 0, 0, 10, 10, 0, 0, 0,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-10, 0, 0, 0, 0, 0, 0, -10,
			10, 20, 20, 20, 20, 20, 20, 10,
			0, 0, 0, 0, 0, 0, 0, 0,
		},
		{ // Queen
			-20, -10, -10, -5, -5, -10, -10, -20,
			-10, 0, 5, 0, 0, 0, 0, -10,
			-10, 5, 5, 5, 5, 5, 0, -10,
			0, 0, 5, 5, 5, 5, 0, -5,
			-5, 0, 5, 5, 5, 5, 0, -5,
			-10, 0, 5, 5, 5, 5, 0, -10,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-20, -10, -10, -5, -5, -10, -10, -20,
		},
		{ // King
			10, 20, 10, 0, 0, 10, 20, 10,
			10, 10, 0, 0, 0, 0, 10, 10,
			-10, -20, -20, -20, -20, -20, -20, -10,
			-20, -30, -30, -40, -40, -30, -30, -20,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
		},
	},
	{ // Black (mirrored, copied or halved per piece; see the note above)
		{ // Pawn
			0, 0, 0, 0, 0, 0, 0, 0,
			50, 50, 50, 50, 50, 50, 50, 50,
			10, 10, 20, 30, 30, 20, 10, 10,
			5, 5, 10, 25, 25, 10, 5, 5,
			0, 0, 0, 20, 20, 0, 0, 0,
			5, -5, -10, 0, 0, -10, -5, 5,
			5, 10, 10, -20, -20, 10, 10, 5,
			0, 0, 0, 0, 0, 0, 0, 0,
		},
		{ // Knight. The source copies White's table verbatim here rather
			// than mirroring it; kept byte-for-byte faithful to that.
			-50, -40, -30, -30, -30, -30, -40, -50,
			-40, -20, 0, 5, 5, 0, -20, -40,
			-30, 5, 10, 15, 15, 10, 5, -30,
			-30, 0, 15, 20, 20, 15, 0, -30,
			-30, 5, 15, 20, 20, 15, 5, -30,
			-30, 0, 10, 15, 15, 10, 0, -30,
			-40, -20, 0, 0, 0, 0, -20, -40,
			-50, -40, -30, -30, -30, -30, -40, -50,
		},
		{ // Bishop
			-20, -10, -10, -10, -10, -10, -10, -20,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-10, 0, 5, 10, 10, 5, 0, -10,
			-10, 5, 5, 10, 10, 5, 5, -10,
			-10, 0, 10, 10, 10, 10, 0, -10,
			-10, 10, 10, 10, 10, 10, 10, -10,
			-10, 5, 0, 0, 0, 0, 5, -10,
			-20, -10, -10, -10, -10, -10, -10, -20,
		},
		{ // Rook
			0, 0, 0, 0, 0, 0, 0, 0,
			5, 10, 10, 10, 10, 10, 10, 5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			0, 0, 0, 5, 5, 0, 0, 0,
		},
		{ // Queen
			-20, -10, -10, -5, -5, -10, -10, -20,
			-10, 0, 5, 0, 0, 0, 0, -10,
			-10, 5, 5, 5, 5, 5, 0, -10,
			0, 0, 5, 5, 5, 5, 0, -5,
			-5, 0, 5, 5, 5, 5, 0, -5,
			-10, 0, 5, 5, 5, 5, 0, -10,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-20, -10, -10, -5, -5, -10, -10, -20,
		},
		{ // King
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-20, -30, -30, -40, -40, -30, -30, -20,
			-10, -20, -20, -20, -20, -20, -20, -10,
			10, 10, 0, 0, 0, 0, 10, 10,
			10, 20, 10, 0, 0, 10, 20, 10,
		},
	},
}

// endgamePawnScores[color][square]: pawns are worth progressively more the
// closer they are to promotion once the position reaches the endgame phase.
var endgamePawnScores = [2][64]int{
	{ // White
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		15, 15, 15, 15, 15, 15, 15, 15,
		20, 20, 20, 20, 20, 20, 20, 20,
		25, 25, 25, 25, 25, 25, 25, 25,
		30, 30, 30, 30, 30, 30, 30, 30,
		35, 35, 35, 35, 35, 35, 35, 35,
		40, 40, 40, 40, 40, 40, 40, 40,
	},
	{ // Black
		40, 40, 40, 40, 40, 40, 40, 40,
		35, 35, 35, 35, 35, 35, 35, 35,
		30, 30, 30, 30, 30, 30, 30, 30,
		25, 25, 25, 25, 25, 25, 25, 25,
		20, 20, 20, 20, 20, 20, 20, 20,
		15, 15, 15, 15, 15, 15, 15, 15,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
}

// endgameKingScores[color][square]: in the endgame the king's midgame square
// score and material value are replaced entirely by this table. An
// endgame king wants to centralize, not hide.
var endgameKingScores = [2][64]int{
	{ // White
		-50, -40, -30, -20, -20, -30, -40, -50,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-50, -30, -30, -30, -30, -30, -30, -50,
	},
	{ // Black
		-50, -30, -30, -30, -30, -30, -30, -50,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-50, -40, -30, -20, -20, -30, -40, -50,
	},
}
