/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

// Package position implements the board representation: a dual
// bitboard/mailbox model, Zobrist hashing, FEN parsing/printing and
// make/unmake move application.
package position

import (
	"fmt"
	"strings"

	"github.com/sayurc/athena/internal/magic"
	. "github.com/sayurc/athena/internal/types"
)

// state captures the irreversible parts of a Position so DoMove can be
// undone exactly. It is pushed before a move is applied and popped by
// UndoMove.
type state struct {
	castlingRights CastlingRights
	enPassant      Square
	halfmoveClock  int
	capturedType   PieceType
	zobristKey     uint64
}

// Position is the mutable board state the search walks through via
// DoMove/UndoMove. It keeps both a mailbox (board) and per-color,
// per-piece-type bitboards in sync so callers can pick whichever
// representation is convenient.
type Position struct {
	board   [SqLength]Piece
	pieces  [ColorLength][PtLength]Bitboard
	colors  [ColorLength]Bitboard
	all     Bitboard

	sideToMove     Color
	castlingRights CastlingRights
	enPassant      Square
	halfmoveClock  int
	fullmoveNumber int
	zobristKey     uint64

	history    []state
	keyHistory []uint64
}

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		// The start FEN is a compile-time constant and always parses.
		panic(err)
	}
	return p
}

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// clear resets the Position to an empty board.
func (p *Position) clear() {
	for sq := range p.board {
		p.board[sq] = PieceNone
	}
	p.pieces = [ColorLength][PtLength]Bitboard{}
	p.colors = [ColorLength]Bitboard{}
	p.all = BbZero
	p.sideToMove = White
	p.castlingRights = CastlingNone
	p.enPassant = SqNone
	p.halfmoveClock = 0
	p.fullmoveNumber = 1
	p.zobristKey = 0
	p.history = p.history[:0]
	p.keyHistory = p.keyHistory[:0]
}

// putPiece places pc on sq, which must currently be empty, and updates
// every derived bitboard and the Zobrist key.
func (p *Position) putPiece(pc Piece, sq Square) {
	p.board[sq] = pc
	c, pt := pc.ColorOf(), pc.TypeOf()
	p.pieces[c][pt].PushSquare(sq)
	p.colors[c].PushSquare(sq)
	p.all.PushSquare(sq)
	p.zobristKey ^= keyForPiece(pc, sq)
}

// removePiece clears sq, which must currently hold pc, and updates every
// derived bitboard and the Zobrist key.
func (p *Position) removePiece(pc Piece, sq Square) {
	p.board[sq] = PieceNone
	c, pt := pc.ColorOf(), pc.TypeOf()
	p.pieces[c][pt].PopSquare(sq)
	p.colors[c].PopSquare(sq)
	p.all.PopSquare(sq)
	p.zobristKey ^= keyForPiece(pc, sq)
}

// movePiece relocates pc from 'from' to 'to', both in one step, matching
// the incremental Zobrist update a plain remove+put would also produce.
func (p *Position) movePiece(pc Piece, from, to Square) {
	p.removePiece(pc, from)
	p.putPiece(pc, to)
}

// PieceOn returns the piece occupying sq, or PieceNone if sq is empty.
func (p *Position) PieceOn(sq Square) Piece { return p.board[sq] }

// SideToMove returns the color on move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en-passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassant }

// HalfmoveClock returns the number of halfmoves since the last capture or
// pawn push, for the fifty-move rule.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the current full move number.
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// ZobristKey returns the current Zobrist hash, which incorporates side to
// move, castling rights and en-passant file.
func (p *Position) ZobristKey() uint64 {
	key := p.zobristKey ^ keyForCastle(p.castlingRights)
	if p.enPassant != SqNone {
		key ^= keyForEnPassant(p.enPassant.FileOf())
	}
	if p.sideToMove == Black {
		key ^= keyForSide()
	}
	return key
}

// PiecesBb returns the bitboard of pieces of type pt and color c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.pieces[c][pt] }

// ColorBb returns the bitboard of all pieces of color c.
func (p *Position) ColorBb(c Color) Bitboard { return p.colors[c] }

// OccupiedBb returns the bitboard of all occupied squares.
func (p *Position) OccupiedBb() Bitboard { return p.all }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.pieces[c][King].Lsb()
}

// InCheck reports whether the side to move's king is attacked.
func (p *Position) InCheck() bool {
	return p.IsSquareAttacked(p.KingSquare(p.sideToMove), p.sideToMove.Flip())
}

// IsSquareAttacked reports whether sq is attacked by any piece of color
// by, given the current occupancy.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	occ := p.all
	if magic.GetPawnAttacks(by.Flip(), sq)&p.pieces[by][Pawn] != 0 {
		return true
	}
	if magic.GetPseudoAttacks(Knight, sq)&p.pieces[by][Knight] != 0 {
		return true
	}
	if magic.GetPseudoAttacks(King, sq)&p.pieces[by][King] != 0 {
		return true
	}
	bishopsQueens := p.pieces[by][Bishop] | p.pieces[by][Queen]
	if magic.GetAttacksBb(Bishop, sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.pieces[by][Rook] | p.pieces[by][Queen]
	if magic.GetAttacksBb(Rook, sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// AttackersTo returns the bitboard of every piece, of either color, that
// attacks sq given occupancy occ.
func (p *Position) AttackersTo(sq Square, occ Bitboard) Bitboard {
	var attackers Bitboard
	attackers |= magic.GetPawnAttacks(Black, sq) & p.pieces[White][Pawn]
	attackers |= magic.GetPawnAttacks(White, sq) & p.pieces[Black][Pawn]
	attackers |= magic.GetPseudoAttacks(Knight, sq) & (p.pieces[White][Knight] | p.pieces[Black][Knight])
	attackers |= magic.GetPseudoAttacks(King, sq) & (p.pieces[White][King] | p.pieces[Black][King])
	bishopsQueens := p.pieces[White][Bishop] | p.pieces[Black][Bishop] | p.pieces[White][Queen] | p.pieces[Black][Queen]
	attackers |= magic.GetAttacksBb(Bishop, sq, occ) & bishopsQueens
	rooksQueens := p.pieces[White][Rook] | p.pieces[Black][Rook] | p.pieces[White][Queen] | p.pieces[Black][Queen]
	attackers |= magic.GetAttacksBb(Rook, sq, occ) & rooksQueens
	return attackers
}

// Clone returns a deep copy of p, independent of the receiver's future
// DoMove/UndoMove calls.
func (p *Position) Clone() *Position {
	cp := *p
	cp.history = make([]state, len(p.history))
	copy(cp.history, p.history)
	cp.keyHistory = make([]uint64, len(p.keyHistory))
	copy(cp.keyHistory, p.keyHistory)
	return &cp
}

// IsRepetition reports whether the current position has already
// occurred at least count times earlier in the game, scanning back only
// as far as the halfmove clock guarantees no irreversible move (capture
// or pawn push) could have broken the cycle. keyHistory[n-1] is the
// current position itself (DoMove appends it before returning), so the
// first candidate with the same side to move is at n-3, not n-2.
func (p *Position) IsRepetition(count int) bool {
	n := len(p.keyHistory)
	if n < 3 {
		return false
	}
	current := p.keyHistory[n-1]
	occurrences := 0
	lastHalfmove := p.halfmoveClock
	for i := n - 3; i >= 0; i -= 2 {
		if p.history[i].halfmoveClock >= lastHalfmove {
			break
		}
		lastHalfmove = p.history[i].halfmoveClock
		if p.keyHistory[i] == current {
			occurrences++
			if occurrences >= count {
				return true
			}
		}
	}
	return false
}

// String renders the position as an ASCII board followed by its FEN.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f < File(FileLength); f++ {
			pc := p.board[SquareOf(f, r)]
			ch := byte(' ')
			if pc != PieceNone {
				ch = pc.Char()[0]
			}
			fmt.Fprintf(&sb, "| %c ", ch)
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	fmt.Fprintf(&sb, "Fen: %s\nKey: %016x\n", p.Fen(), p.ZobristKey())
	return sb.String()
}
