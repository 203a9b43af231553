/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package types

import "fmt"

// Square represents one of the 64 squares of a chess board, numbered in
// Little-Endian Rank-File (LERF) order: index = 8*rank + file, so SqA1 = 0
// and SqH8 = 63. SqNone is the sentinel for "no square".
type Square uint8

//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SqLength int = 64
)

// IsValid checks whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq < Square(SqLength)
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf returns the square for the given file and rank, or SqNone if
// either is out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square((int(r) << 3) + int(f))
}

// MakeSquare parses a two character algebraic square name (e.g. "e4") and
// returns SqNone if it is not well formed.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

// String returns the algebraic name of the square, e.g. "e4", or "-" if
// the square is not valid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

var squareDistance [SqLength][SqLength]int

func init() {
	for s1 := SqA1; s1 < Square(SqLength); s1++ {
		for s2 := SqA1; s2 < Square(SqLength); s2++ {
			fd := FileDistance(s1.FileOf(), s2.FileOf())
			rd := RankDistance(s1.RankOf(), s2.RankOf())
			if fd > rd {
				squareDistance[s1][s2] = fd
			} else {
				squareDistance[s1][s2] = rd
			}
		}
	}
}

// FileDistance returns the absolute distance in files between f1 and f2.
func FileDistance(f1, f2 File) int {
	return absInt(int(f2) - int(f1))
}

// RankDistance returns the absolute distance in ranks between r1 and r2.
func RankDistance(r1, r2 Rank) int {
	return absInt(int(r2) - int(r1))
}

// SquareDistance returns Chebyshev distance (max of file/rank distance)
// between two squares.
func SquareDistance(s1, s2 Square) int {
	if !s1.IsValid() || !s2.IsValid() {
		return 0
	}
	return squareDistance[s1][s2]
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// to steps one square in direction d, returning SqNone on board overflow
// or file/rank wraparound.
func (sq Square) to(d Direction) Square {
	switch d {
	case North, Northeast, Northwest:
		if sq.RankOf() == Rank8 {
			return SqNone
		}
	case South, Southeast, Southwest:
		if sq.RankOf() == Rank1 {
			return SqNone
		}
	}
	switch d {
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
	}
	res := Square(int(sq) + int(d))
	if !res.IsValid() {
		return SqNone
	}
	return res
}

// To returns the neighbouring square in direction d, or SqNone if that
// would step off the board.
func (sq Square) To(d Direction) Square {
	return sqTo[sq][directionIndex(d)]
}

var sqTo [SqLength][8]Square

func directionIndex(d Direction) int {
	for i, dd := range Directions {
		if dd == d {
			return i
		}
	}
	panic(fmt.Sprintf("invalid direction %d", d))
}

func init() {
	for sq := SqA1; sq < Square(SqLength); sq++ {
		for i, dir := range Directions {
			sqTo[sq][i] = sq.to(dir)
		}
	}
}

var centerDistance [SqLength]int

func init() {
	for sq := SqA1; sq < Square(SqLength); sq++ {
		fd := int(sq.FileOf())
		if fd > 3 {
			fd = 7 - fd
		}
		rd := int(sq.RankOf())
		if rd > 3 {
			rd = 7 - rd
		}
		d := fd
		if rd < d {
			d = rd
		}
		centerDistance[sq] = 3 - d
	}
}

// CenterDistance returns the distance of the square to the nearest of the
// four center squares.
func (sq Square) CenterDistance() int {
	return centerDistance[sq]
}
