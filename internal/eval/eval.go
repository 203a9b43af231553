/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

// Package eval implements static position evaluation: tapered material
// plus piece-square scoring, pawn-structure terms, an outpost bonus, and
// static exchange evaluation (SEE) for move ordering and pruning.
package eval

import (
	"github.com/sayurc/athena/internal/config"
	"github.com/sayurc/athena/internal/position"
	. "github.com/sayurc/athena/internal/types"
)

const maxPhase = 256

// totalPhase is the sum of every non-pawn, non-king piece's
// GamePhaseValue weight on a full board (2*(1+1+2)+4 per side): the
// denominator the raw phase accumulator is scaled against.
const totalPhase = 24

// Pawn structure and outpost bonuses, in centipawns, applied identically
// in middlegame and endgame (the tapering happens at the material/PSQT
// level; these terms are deliberately untapered to keep the evaluator
// small).
const (
	doubledPawnPenalty  = 10
	isolatedPawnPenalty = 12
	passedPawnBonus     = 20
	outpostBonus        = 18
)

// Phase returns the game phase of p on a 0..256 scale, 0 being the full
// opening material set and 256 being a bare-kings endgame. The time
// manager uses this to taper how many moves it expects remain in the
// game.
func Phase(p *position.Position) int {
	raw := 0
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			raw += p.PiecesBb(c, pt).PopCount() * pt.GamePhaseValue()
		}
	}
	return scalePhase(raw)
}

// scalePhase converts a raw phase accumulator (0..totalPhase, higher
// means more material left) into the 0..256 scale used for tapering,
// where 0 is the opening and 256 is a bare-kings endgame.
func scalePhase(raw int) int {
	if raw > totalPhase {
		raw = totalPhase
	}
	return (totalPhase - raw) * maxPhase / totalPhase
}

// Evaluate returns a centipawn score for p from the side-to-move's
// perspective: positive favors the side to move.
func Evaluate(p *position.Position) Value {
	var mg, eg [ColorLength]int32
	phase := 0

	pawnScores := [ColorLength]int32{}
	if config.Settings.Eval.UsePawnCache {
		pawnScores[White], pawnScores[Black] = cachedPawnStructureTerms(p)
	} else {
		pawnScores[White] = pawnStructureTerm(p, White)
		pawnScores[Black] = pawnStructureTerm(p, Black)
	}

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.PiecesBb(c, pt)
			phase += bb.PopCount() * pt.GamePhaseValue()
			for b := bb; b != BbZero; {
				sq := b.PopLsb()
				mg[c] += int32(pt.ValueOf()) + int32(psqtMg(c, pt, sq))
				eg[c] += int32(pt.ValueOf()) + int32(psqtEg(c, pt, sq))
			}
		}
		mg[c] += pawnScores[c]
		eg[c] += pawnScores[c]

		outpostScore := outpostTerm(p, c)
		mg[c] += outpostScore
		eg[c] += outpostScore
	}

	phase = scalePhase(phase)

	us := p.SideToMove()
	them := us.Flip()
	mgScore := mg[us] - mg[them]
	egScore := eg[us] - eg[them]

	score := (mgScore*int32(maxPhase-phase) + egScore*int32(phase)) / int32(maxPhase)
	return Value(score)
}

// cachedPawnStructureTerms returns both sides' pawn-structure scores,
// computing and caching them keyed by the combined pawn skeleton when the
// cache misses.
func cachedPawnStructureTerms(p *position.Position) (white, black int32) {
	cache := pawnCacheInstance()
	key := pawnHashKey(p.PiecesBb(White, Pawn), p.PiecesBb(Black, Pawn))
	if w, b, ok := cache.probe(key); ok {
		return w, b
	}
	white = pawnStructureTerm(p, White)
	black = pawnStructureTerm(p, Black)
	cache.store(key, white, black)
	return white, black
}

// pawnStructureTerm scores color c's pawn structure: doubled, isolated
// and passed pawns.
func pawnStructureTerm(p *position.Position, c Color) int32 {
	ownPawns := p.PiecesBb(c, Pawn)
	enemyPawns := p.PiecesBb(c.Flip(), Pawn)
	var score int32

	for f := FileA; f < File(FileLength); f++ {
		count := (ownPawns & FileBb(f)).PopCount()
		if count > 1 {
			score -= int32(doubledPawnPenalty) * int32(count-1)
		}
		if count == 0 {
			continue
		}
		isolated := true
		if f > FileA && (ownPawns&FileBb(f-1)) != BbZero {
			isolated = false
		}
		if f < File(FileLength-1) && (ownPawns&FileBb(f+1)) != BbZero {
			isolated = false
		}
		if isolated {
			score -= int32(isolatedPawnPenalty) * int32(count)
		}
	}

	for b := ownPawns; b != BbZero; {
		sq := b.PopLsb()
		if isPassedPawn(sq, c, enemyPawns) {
			score += int32(passedPawnBonus) * int32(rankProgress(c, sq))
		}
	}

	return score
}

// rankProgress returns how many ranks a pawn of color c on sq has
// advanced past its start rank (1..6), used to scale the passed-pawn
// bonus by how close the pawn is to promoting.
func rankProgress(c Color, sq Square) int {
	if c == White {
		return int(sq.RankOf()) - int(Rank2) + 1
	}
	return int(Rank7) - int(sq.RankOf()) + 1
}

// isPassedPawn reports whether the pawn of color c on sq has no enemy
// pawn able to block or capture it on its way to promotion (same file or
// either adjacent file, ahead of it).
func isPassedPawn(sq Square, c Color, enemyPawns Bitboard) bool {
	f := sq.FileOf()
	var files Bitboard
	files |= FileBb(f)
	if f > FileA {
		files |= FileBb(f - 1)
	}
	if f < File(FileLength-1) {
		files |= FileBb(f + 1)
	}

	var ahead Bitboard
	if c == White {
		for r := sq.RankOf() + 1; r < Rank(RankLength); r++ {
			ahead |= RankBb(r)
		}
	} else {
		if sq.RankOf() == Rank1 {
			return true
		}
		for r := Rank(0); r < sq.RankOf(); r++ {
			ahead |= RankBb(r)
		}
	}

	return enemyPawns&files&ahead == BbZero
}

// outpostTerm scores color c's knight/bishop outposts: a minor piece on
// an advanced square that cannot be challenged by an enemy pawn, or is
// shielded by a friendly pawn from the pawn that could challenge it.
func outpostTerm(p *position.Position, c Color) int32 {
	var lowRank, highRank Rank
	if c == White {
		lowRank, highRank = Rank4, Rank6
	} else {
		lowRank, highRank = Rank3, Rank5
	}

	ownPawns := p.PiecesBb(c, Pawn)
	enemyPawns := p.PiecesBb(c.Flip(), Pawn)
	var score int32

	minors := p.PiecesBb(c, Knight) | p.PiecesBb(c, Bishop)
	for b := minors; b != BbZero; {
		sq := b.PopLsb()
		r := sq.RankOf()
		if r < lowRank || r > highRank {
			continue
		}
		if isOutpostSquare(sq, c, ownPawns, enemyPawns) {
			score += outpostBonus
		}
	}
	return score
}

// isOutpostSquare implements the outpost predicate of 4.5: either no
// enemy pawn on an adjacent file can ever reach a square attacking sq, or
// every such pawn is blocked by a friendly pawn standing on the diagonal
// attack square ahead of sq.
func isOutpostSquare(sq Square, c Color, ownPawns, enemyPawns Bitboard) bool {
	f := sq.FileOf()
	var adjFiles Bitboard
	if f > FileA {
		adjFiles |= FileBb(f - 1)
	}
	if f < File(FileLength-1) {
		adjFiles |= FileBb(f + 1)
	}

	var ahead Bitboard
	if c == White {
		for r := sq.RankOf() + 1; r < Rank(RankLength); r++ {
			ahead |= RankBb(r)
		}
	} else {
		for r := Rank(0); r < sq.RankOf(); r++ {
			ahead |= RankBb(r)
		}
	}

	challengers := enemyPawns & adjFiles & ahead
	if challengers == BbZero {
		return true
	}

	for b := challengers; b != BbZero; {
		challenger := b.PopLsb()
		var shieldDirs [2]Direction
		if c == White {
			shieldDirs = [2]Direction{Northeast, Northwest}
		} else {
			shieldDirs = [2]Direction{Southeast, Southwest}
		}
		shielded := false
		for _, d := range shieldDirs {
			shield := sq.To(d)
			if shield.IsValid() && shield.FileOf() == challenger.FileOf() && ownPawns.Has(shield) {
				shielded = true
				break
			}
		}
		if !shielded {
			return false
		}
	}
	return true
}
