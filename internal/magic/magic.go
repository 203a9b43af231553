/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package magic

import (
	. "github.com/sayurc/athena/internal/types"
)

// Magic holds the fancy-magic-bitboard lookup parameters for one square of
// one sliding piece type: a relevant-occupancy mask, a magic multiplier, a
// shift and the slice of the flat attack table belonging to this square.
type Magic struct {
	Mask    Bitboard
	Number  Bitboard
	Shift   uint
	Attacks []Bitboard
}

// index computes the attack-table index for the given board occupancy.
func (m *Magic) index(occupied Bitboard) uint {
	return uint(((occupied & m.Mask) * m.Number) >> m.Shift)
}

// AttacksBb returns the bitboard of squares attacked by the magic's piece
// from its square given the full board occupancy.
func (m *Magic) AttacksBb(occupied Bitboard) Bitboard {
	return m.Attacks[m.index(occupied)]
}

var (
	rookMagics   [SqLength]Magic
	bishopMagics [SqLength]Magic

	rookTable   []Bitboard
	bishopTable []Bitboard

	pseudoAttacks [PtLength][SqLength]Bitboard
	pawnAttacks   [ColorLength][SqLength]Bitboard

	rookDirections   = [4]Direction{North, South, East, West}
	bishopDirections = [4]Direction{Northeast, Northwest, Southeast, Southwest}
)

func init() {
	initNonSlidingAttacks()
	rookTable = make([]Bitboard, 102400)
	bishopTable = make([]Bitboard, 5248)
	initMagics(Rook, rookTable, &rookMagics, &rookDirections)
	initMagics(Bishop, bishopTable, &bishopMagics, &bishopDirections)
}

// initNonSlidingAttacks precomputes king, knight and pawn attack sets,
// which never depend on board occupancy.
func initNonSlidingAttacks() {
	knightSteps := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps := Directions

	for sq := SqA1; sq < Square(SqLength); sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())

		var knightBb Bitboard
		for _, s := range knightSteps {
			nf, nr := f+s[0], r+s[1]
			if nf >= 0 && nf < FileLength && nr >= 0 && nr < RankLength {
				knightBb.PushSquare(SquareOf(File(nf), Rank(nr)))
			}
		}
		pseudoAttacks[Knight][sq] = knightBb

		var kingBb Bitboard
		for _, d := range kingSteps {
			if to := sq.To(d); to.IsValid() {
				kingBb.PushSquare(to)
			}
		}
		pseudoAttacks[King][sq] = kingBb

		if to := sq.To(Northeast); to.IsValid() {
			pawnAttacks[White][sq].PushSquare(to)
		}
		if to := sq.To(Northwest); to.IsValid() {
			pawnAttacks[White][sq].PushSquare(to)
		}
		if to := sq.To(Southeast); to.IsValid() {
			pawnAttacks[Black][sq].PushSquare(to)
		}
		if to := sq.To(Southwest); to.IsValid() {
			pawnAttacks[Black][sq].PushSquare(to)
		}
	}
}

// slidingAttack computes, by simple ray-walking, the attack set of a
// slider from sq along directions on the given occupancy. Only used at
// init time to build the reference data the magic search verifies against
// and is never called from the hot move-generation path.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() {
				break
			}
			attacks.PushSquare(next)
			if occupied.Has(next) {
				break
			}
			s = next
		}
	}
	return attacks
}

// edgeMask returns the board edge squares that are irrelevant to a
// sliding piece's occupancy mask on sq (the far edge in each ray
// direction always blocks regardless of what occupies it).
func edgeMask(sq Square) Bitboard {
	return ((Rank1Bb | Rank8Bb) &^ RankBb(sq.RankOf())) | ((FileABb | FileHBb) &^ FileBb(sq.FileOf()))
}

// magicSeeds are tuned per-rank seeds (following the well known Stockfish
// table) that make the randomized search below converge quickly.
var magicSeeds = [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// initMagics computes the magic numbers and attack tables for one sliding
// piece type (rook or bishop) using the Carry-Rippler enumeration of
// occupancy submasks, verifying each magic candidate against the full
// reference attack set before accepting it.
func initMagics(pt PieceType, table []Bitboard, magics *[SqLength]Magic, directions *[4]Direction) {
	var occupancy [4096]Bitboard
	var reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0
	offset := 0

	for sq := SqA1; sq < Square(SqLength); sq++ {
		m := &magics[sq]
		edges := edgeMask(sq)
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())
		m.Attacks = table[offset:]

		// Carry-Rippler: enumerate every submask of Mask.
		size := 0
		b := BbZero
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == BbZero {
				break
			}
		}

		rng := newPrng(magicSeeds[sq.RankOf()])
		for i := 0; i < size; {
			// Candidates with fewer than 6 set bits in the top byte of
			// Mask*Magic are rejected without testing.
			for m.Number = 0; (Bitboard(uint64(m.Mask)*uint64(m.Number)) >> 56).PopCount() < 6; {
				m.Number = Bitboard(rng.sparseRand())
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
		offset += size
	}
}

// GetAttacksBb returns the attack bitboard of a piece of type pt (not
// Pawn) standing on sq, given the full board occupancy. For King and
// Knight the occupancy is ignored.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Rook:
		return rookMagics[sq].AttacksBb(occupied)
	case Bishop:
		return bishopMagics[sq].AttacksBb(occupied)
	case Queen:
		return rookMagics[sq].AttacksBb(occupied) | bishopMagics[sq].AttacksBb(occupied)
	default:
		return pseudoAttacks[pt][sq]
	}
}

// GetPseudoAttacks returns the attacks of a King or Knight from sq as if
// the board were empty.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// PextSupported reports whether the hardware parallel-bit-extract fast
// path is available on this build. Go has no portable PEXT intrinsic
// without platform-specific assembly, so this is always false on the pure
// Go path implemented here (see DESIGN.md); GetAttacksBb always uses the
// multiply-shift magic lookup, which produces identical attack sets to
// what a PEXT-based lookup would.
func PextSupported() bool {
	return false
}
