/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package types

import "strings"

// MoveKind is the 4-bit move kind carried in a Move.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	DoublePawnPush
	KingCastle
	QueenCastle
	Capture
	EnPassantCapture
	PromotionKnight
	PromotionBishop
	PromotionRook
	PromotionQueen
	PromotionCaptureKnight
	PromotionCaptureBishop
	PromotionCaptureRook
	PromotionCaptureQueen
	moveKindLength
)

// IsValid reports whether k is one of the 14 defined move kinds.
func (k MoveKind) IsValid() bool {
	return k < moveKindLength
}

// IsCapture reports whether a move of this kind removes an enemy piece.
func (k MoveKind) IsCapture() bool {
	switch k {
	case Capture, EnPassantCapture, PromotionCaptureKnight, PromotionCaptureBishop, PromotionCaptureRook, PromotionCaptureQueen:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether a move of this kind promotes a pawn.
func (k MoveKind) IsPromotion() bool {
	return k >= PromotionKnight
}

// IsCastle reports whether a move of this kind is a castling move.
func (k MoveKind) IsCastle() bool {
	return k == KingCastle || k == QueenCastle
}

// PromotionPieceType returns the piece type promoted to for a promotion
// move kind (result undefined for non-promotion kinds).
func (k MoveKind) PromotionPieceType() PieceType {
	switch k {
	case PromotionKnight, PromotionCaptureKnight:
		return Knight
	case PromotionBishop, PromotionCaptureBishop:
		return Bishop
	case PromotionRook, PromotionCaptureRook:
		return Rook
	default:
		return Queen
	}
}

var moveKindNames = [moveKindLength]string{
	"quiet", "double-push", "O-O", "O-O-O", "capture", "ep-capture",
	"promo=N", "promo=B", "promo=R", "promo=Q",
	"promo=N", "promo=B", "promo=R", "promo=Q",
}

func (k MoveKind) String() string {
	if !k.IsValid() {
		return "?"
	}
	return moveKindNames[k]
}

// promotionMoveKind returns the promotion kind for pt, the capturing
// variant when capture is true.
func promotionMoveKind(pt PieceType, capture bool) MoveKind {
	var base MoveKind
	switch pt {
	case Knight:
		base = PromotionKnight
	case Bishop:
		base = PromotionBishop
	case Rook:
		base = PromotionRook
	default:
		base = PromotionQueen
	}
	if capture {
		return base + (PromotionCaptureKnight - PromotionKnight)
	}
	return base
}

// PromotionMoveKind returns the promotion move kind for the given target
// piece type and whether the promotion also captures.
func PromotionMoveKind(pt PieceType, capture bool) MoveKind {
	return promotionMoveKind(pt, capture)
}

// Move is a 16-bit encoded chess move: from(6) | to(6) | kind(4).
//  bit:  15 14 13 12 | 11 10 9 8 7 6 | 5 4 3 2 1 0
//        --- kind -- | ----- from -- | --- to ----
type Move uint16

// MoveNone is the zero value representing "no move" / the null move.
const MoveNone Move = 0

const (
	toShift   = 0
	fromShift = 6
	kindShift = 12

	toMask   Move = 0x3F
	fromMask Move = 0x3F << fromShift
	kindMask Move = 0xF << kindShift
)

// NewMove encodes a move from its components.
func NewMove(from, to Square, kind MoveKind) Move {
	return Move(to)<<toShift | Move(from)<<fromShift | Move(kind)<<kindShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// Kind returns the move kind.
func (m Move) Kind() MoveKind {
	return MoveKind((m & kindMask) >> kindShift)
}

// IsValid reports whether the move has valid squares and a valid kind.
// MoveNone is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.Kind().IsValid()
}

// StringUci renders the move in long algebraic notation, e.g. "e2e4" or
// "a7a8q". The null move renders as the empty string.
func (m Move) StringUci() string {
	if m == MoveNone {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.Kind().IsPromotion() {
		sb.WriteString(strings.ToLower(m.Kind().PromotionPieceType().Char()))
	}
	return sb.String()
}

// String returns a debug representation of the move.
func (m Move) String() string {
	if m == MoveNone {
		return "Move(none)"
	}
	return "Move(" + m.StringUci() + " " + m.Kind().String() + ")"
}
