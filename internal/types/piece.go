/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package types

import "strings"

// Piece encodes a (PieceType, Color) pair as type*2 + color, with
// PieceNone=0 reserved as the sentinel for an empty square.
type Piece uint8

// PieceLength is one past the highest valid piece value (King=6 -> 6*2+1=13).
const (
	PieceNone   Piece = 0
	PieceLength Piece = 14
)

// MakePiece returns the piece for the given color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(pt)*2 + Piece(c)
}

// ColorOf returns the color of the piece. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p & 1)
}

// TypeOf returns the piece type of the piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p >> 1)
}

// IsValid checks whether p encodes a real piece (not PieceNone).
func (p Piece) IsValid() bool {
	return p != PieceNone && p.TypeOf().IsValid()
}

// ValueOf returns the static centipawn value of the piece.
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

var pieceToChar = " PNBRQK pnbrqk"

// PieceFromChar returns the piece for a FEN piece letter, or PieceNone if
// s is not exactly one recognised letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	idx := strings.IndexByte(pieceToChar, s[0])
	if idx <= 0 {
		return PieceNone
	}
	if idx < 8 {
		return MakePiece(White, PieceType(idx))
	}
	return MakePiece(Black, PieceType(idx-7))
}

// Char returns the FEN letter for the piece (upper case for white, lower
// for black), or " " for PieceNone.
func (p Piece) Char() string {
	if p == PieceNone {
		return " "
	}
	c := p.TypeOf().Char()
	if p.ColorOf() == Black {
		return strings.ToLower(c)
	}
	return c
}

// String returns a human readable name, e.g. "WhiteKnight".
func (p Piece) String() string {
	if p == PieceNone {
		return "None"
	}
	colorName := "White"
	if p.ColorOf() == Black {
		colorName = "Black"
	}
	return colorName + p.TypeOf().String()
}
