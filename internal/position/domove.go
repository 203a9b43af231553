/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package position

import (
	. "github.com/sayurc/athena/internal/types"
)

// castlingSquares describes the rook's journey for one of the four
// castling move kinds.
type castlingSquares struct {
	rookFrom, rookTo Square
}

var castlingTable = map[MoveKind][ColorLength]castlingSquares{
	KingCastle: {
		White: {rookFrom: SqH1, rookTo: SqF1},
		Black: {rookFrom: SqH8, rookTo: SqF8},
	},
	QueenCastle: {
		White: {rookFrom: SqA1, rookTo: SqD1},
		Black: {rookFrom: SqA8, rookTo: SqD8},
	},
}

// castlingRightsLost maps a square to the castling rights that are
// permanently lost the moment a piece leaves or a rook is captured on it
// (the king's home square revokes both rights for its color, a rook's
// home square revokes the matching single right).
var castlingRightsLost = map[Square]CastlingRights{
	SqE1: CastlingWhiteKing | CastlingWhiteQueen,
	SqE8: CastlingBlackKing | CastlingBlackQueen,
	SqA1: CastlingWhiteQueen,
	SqH1: CastlingWhiteKing,
	SqA8: CastlingBlackQueen,
	SqH8: CastlingBlackKing,
}

// DoMove applies a pseudo-legal move to the position. The caller is
// responsible for only ever passing moves produced by the movegen
// package for the current position; DoMove does not re-validate legality
// beyond what is needed to update state consistently.
func (p *Position) DoMove(m Move) {
	st := state{
		castlingRights: p.castlingRights,
		enPassant:      p.enPassant,
		halfmoveClock:  p.halfmoveClock,
		capturedType:   PtNone,
		zobristKey:     p.zobristKey,
	}

	from, to, kind := m.From(), m.To(), m.Kind()
	us := p.sideToMove
	them := us.Flip()
	pc := p.board[from]
	pt := pc.TypeOf()

	p.enPassant = SqNone
	p.halfmoveClock++
	if pt == Pawn {
		p.halfmoveClock = 0
	}

	switch kind {
	case Quiet:
		p.movePiece(pc, from, to)

	case DoublePawnPush:
		p.movePiece(pc, from, to)
		epSq := to
		if us == White {
			epSq = to.To(South)
		} else {
			epSq = to.To(North)
		}
		p.enPassant = epSq

	case Capture:
		captured := p.board[to]
		st.capturedType = captured.TypeOf()
		p.halfmoveClock = 0
		p.removePiece(captured, to)
		p.movePiece(pc, from, to)
		p.castlingRights &^= castlingRightsLost[to]

	case EnPassantCapture:
		p.halfmoveClock = 0
		var capturedSq Square
		if us == White {
			capturedSq = to.To(South)
		} else {
			capturedSq = to.To(North)
		}
		st.capturedType = Pawn
		p.removePiece(MakePiece(them, Pawn), capturedSq)
		p.movePiece(pc, from, to)

	case KingCastle, QueenCastle:
		p.movePiece(pc, from, to)
		rc := castlingTable[kind][us]
		p.movePiece(MakePiece(us, Rook), rc.rookFrom, rc.rookTo)

	case PromotionKnight, PromotionBishop, PromotionRook, PromotionQueen:
		p.halfmoveClock = 0
		p.removePiece(pc, from)
		p.putPiece(MakePiece(us, kind.PromotionPieceType()), to)

	case PromotionCaptureKnight, PromotionCaptureBishop, PromotionCaptureRook, PromotionCaptureQueen:
		captured := p.board[to]
		st.capturedType = captured.TypeOf()
		p.halfmoveClock = 0
		p.removePiece(captured, to)
		p.removePiece(pc, from)
		p.putPiece(MakePiece(us, kind.PromotionPieceType()), to)
		p.castlingRights &^= castlingRightsLost[to]
	}

	p.castlingRights &^= castlingRightsLost[from]

	if us == Black {
		p.fullmoveNumber++
	}
	p.sideToMove = them

	p.history = append(p.history, st)
	p.keyHistory = append(p.keyHistory, p.ZobristKey())
}

// UndoMove reverses the effect of the most recent DoMove call. The move
// passed must be the exact move that was applied.
func (p *Position) UndoMove(m Move) {
	n := len(p.history)
	st := p.history[n-1]
	p.history = p.history[:n-1]
	p.keyHistory = p.keyHistory[:len(p.keyHistory)-1]

	them := p.sideToMove
	us := them.Flip()
	if us == Black {
		p.fullmoveNumber--
	}
	p.sideToMove = us

	from, to, kind := m.From(), m.To(), m.Kind()

	switch kind {
	case Quiet, DoublePawnPush:
		pc := p.board[to]
		p.movePiece(pc, to, from)

	case Capture:
		pc := p.board[to]
		p.movePiece(pc, to, from)
		p.putPiece(MakePiece(them, st.capturedType), to)

	case EnPassantCapture:
		pc := p.board[to]
		p.movePiece(pc, to, from)
		var capturedSq Square
		if us == White {
			capturedSq = to.To(South)
		} else {
			capturedSq = to.To(North)
		}
		p.putPiece(MakePiece(them, Pawn), capturedSq)

	case KingCastle, QueenCastle:
		pc := p.board[to]
		p.movePiece(pc, to, from)
		rc := castlingTable[kind][us]
		p.movePiece(MakePiece(us, Rook), rc.rookTo, rc.rookFrom)

	case PromotionKnight, PromotionBishop, PromotionRook, PromotionQueen:
		promoted := p.board[to]
		p.removePiece(promoted, to)
		p.putPiece(MakePiece(us, Pawn), from)

	case PromotionCaptureKnight, PromotionCaptureBishop, PromotionCaptureRook, PromotionCaptureQueen:
		promoted := p.board[to]
		p.removePiece(promoted, to)
		p.putPiece(MakePiece(us, Pawn), from)
		p.putPiece(MakePiece(them, st.capturedType), to)
	}

	p.castlingRights = st.castlingRights
	p.enPassant = st.enPassant
	p.halfmoveClock = st.halfmoveClock
	p.zobristKey = st.zobristKey
}

// DoNullMove applies a null move: only the side to move and en-passant
// state change, used by the search's null-move pruning heuristic.
func (p *Position) DoNullMove() {
	p.history = append(p.history, state{
		castlingRights: p.castlingRights,
		enPassant:      p.enPassant,
		halfmoveClock:  p.halfmoveClock,
		capturedType:   PtNone,
		zobristKey:     p.zobristKey,
	})
	p.enPassant = SqNone
	p.sideToMove = p.sideToMove.Flip()
	p.keyHistory = append(p.keyHistory, p.ZobristKey())
}

// UndoNullMove reverses DoNullMove.
func (p *Position) UndoNullMove() {
	n := len(p.history)
	st := p.history[n-1]
	p.history = p.history[:n-1]
	p.keyHistory = p.keyHistory[:len(p.keyHistory)-1]
	p.enPassant = st.enPassant
	p.sideToMove = p.sideToMove.Flip()
}
