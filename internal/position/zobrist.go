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

// Zobrist key material. Every constant is produced once at init time by a
// deterministically seeded PRNG so that the same build always reproduces
// the same keys; this is required for transposition-table entries to stay
// meaningful between runs within a test or a tournament match and for the
// perft/TT tests in the test suite to be reproducible.
var (
	zobristPiece   [PieceLength][SqLength]uint64
	zobristCastle  [16]uint64
	zobristEnPassant [FileLength]uint64
	zobristSide    uint64
)

// zobristPrng is a small splitmix64 generator, independent of the magic
// package's xoshiro256** generator, seeded with a fixed constant so the
// key table is reproducible across processes and platforms.
type zobristPrng struct{ s uint64 }

func newZobristPrng(seed uint64) *zobristPrng { return &zobristPrng{s: seed} }

func (z *zobristPrng) next() uint64 {
	z.s += 0x9E3779B97F4A7C15
	x := z.s
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// zobristSeed is the fixed seed for the Zobrist key table. Changing it
// changes every TT key and breaks reproducibility across builds, so it
// must never be derived from wall-clock time or randomness.
const zobristSeed = 0x5A6F62726973744B

func init() {
	rng := newZobristPrng(zobristSeed)
	for pc := Piece(0); pc < PieceLength; pc++ {
		for sq := SqA1; sq < Square(SqLength); sq++ {
			zobristPiece[pc][sq] = rng.next()
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rng.next()
	}
	for f := FileA; f < File(FileLength); f++ {
		zobristEnPassant[f] = rng.next()
	}
	zobristSide = rng.next()
}

// keyForPiece returns the Zobrist term for piece pc standing on sq.
func keyForPiece(pc Piece, sq Square) uint64 {
	return zobristPiece[pc][sq]
}

// keyForCastle returns the Zobrist term for the given castling rights.
func keyForCastle(cr CastlingRights) uint64 {
	return zobristCastle[cr]
}

// keyForEnPassant returns the Zobrist term for an en-passant target on
// file f.
func keyForEnPassant(f File) uint64 {
	return zobristEnPassant[f]
}

// keyForSide returns the Zobrist term toggled whenever the side to move
// changes.
func keyForSide() uint64 {
	return zobristSide
}
