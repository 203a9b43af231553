/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

// Package movegen generates pseudo-legal and legal chess moves from a
// position using the magic-bitboard attack tables in internal/magic.
package movegen

import (
	"github.com/sayurc/athena/internal/magic"
	"github.com/sayurc/athena/internal/moveslice"
	"github.com/sayurc/athena/internal/position"
	. "github.com/sayurc/athena/internal/types"
)

// GenerateMoves appends every pseudo-legal move (quiets, captures,
// castles, promotions, en passant) available to the side to move into
// ml. Pseudo-legal means the moving side's king may be left in check;
// callers that need only legal moves should use GenerateLegalMoves or
// filter with IsLegal.
func GenerateMoves(p *position.Position, ml *moveslice.MoveSlice) {
	generatePawnMoves(p, ml, true, true)
	generatePieceMoves(p, ml, true, true)
	generateCastles(p, ml)
}

// GenerateCaptures appends only capturing moves (including en passant and
// capturing promotions), the set quiescence search explores. Promotions
// that capture nothing are not included.
func GenerateCaptures(p *position.Position, ml *moveslice.MoveSlice) {
	generatePawnMoves(p, ml, true, false)
	generatePieceMoves(p, ml, true, false)
}

// GenerateLegalMoves appends every fully legal move: pseudo-legal moves
// that, after being played, do not leave the mover's own king in check.
func GenerateLegalMoves(p *position.Position, ml *moveslice.MoveSlice) {
	var pseudo moveslice.MoveSlice
	GenerateMoves(p, &pseudo)
	us := p.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		p.DoMove(m)
		if !p.IsSquareAttacked(p.KingSquare(us), us.Flip()) {
			ml.Add(m)
		}
		p.UndoMove(m)
	}
}

// IsLegal reports whether the pseudo-legal move m, played in p, leaves
// the mover's own king safe.
func IsLegal(p *position.Position, m Move) bool {
	us := p.SideToMove()
	p.DoMove(m)
	ok := !p.IsSquareAttacked(p.KingSquare(us), us.Flip())
	p.UndoMove(m)
	return ok
}

// generatePieceMoves generates knight, bishop, rook, queen and king moves.
func generatePieceMoves(p *position.Position, ml *moveslice.MoveSlice, captures, quiets bool) {
	us := p.SideToMove()
	own := p.ColorBb(us)
	enemy := p.ColorBb(us.Flip())
	occ := p.OccupiedBb()

	for _, pt := range [5]PieceType{Knight, Bishop, Rook, Queen, King} {
		bb := p.PiecesBb(us, pt)
		for bb != BbZero {
			from := bb.PopLsb()
			targets := magic.GetAttacksBb(pt, from, occ) &^ own
			if !captures {
				targets &^= enemy
			}
			if !quiets {
				targets &= enemy
			}
			for targets != BbZero {
				to := targets.PopLsb()
				kind := Quiet
				if enemy.Has(to) {
					kind = Capture
				}
				ml.AddScored(NewMove(from, to, kind), 0)
			}
		}
	}
}

// generatePawnMoves generates single/double pushes, captures, en passant
// captures and all four promotion kinds (plain and capturing).
func generatePawnMoves(p *position.Position, ml *moveslice.MoveSlice, captures, quiets bool) {
	us := p.SideToMove()
	pawns := p.PiecesBb(us, Pawn)
	enemy := p.ColorBb(us.Flip())
	occ := p.OccupiedBb()

	forward := North
	startRank := Rank2
	promoRank := Rank8
	if us == Black {
		forward = South
		startRank = Rank7
		promoRank = Rank1
	}

	for bb := pawns; bb != BbZero; {
		from := bb.PopLsb()

		if quiets {
			one := from.To(forward)
			if one.IsValid() && !occ.Has(one) {
				if one.RankOf() == promoRank {
					addPromotions(ml, from, one, false)
				} else {
					ml.AddScored(NewMove(from, one, Quiet), 0)
					if from.RankOf() == startRank {
						two := one.To(forward)
						if two.IsValid() && !occ.Has(two) {
							ml.AddScored(NewMove(from, two, DoublePawnPush), 0)
						}
					}
				}
			}
		}

		if captures {
			for _, d := range pawnCaptureDirections(us) {
				to := from.To(d)
				if !to.IsValid() {
					continue
				}
				if enemy.Has(to) {
					if to.RankOf() == promoRank {
						addPromotions(ml, from, to, true)
					} else {
						ml.AddScored(NewMove(from, to, Capture), 0)
					}
				} else if to == p.EnPassantSquare() {
					ml.AddScored(NewMove(from, to, EnPassantCapture), 0)
				}
			}
		}
	}
}

// pawnCaptureDirections returns the two diagonal attack directions for a
// pawn of color c.
func pawnCaptureDirections(c Color) [2]Direction {
	if c == White {
		return [2]Direction{Northeast, Northwest}
	}
	return [2]Direction{Southeast, Southwest}
}

// addPromotions appends the four promotion move kinds (to knight, bishop,
// rook, queen), capturing or not, for a pawn reaching from->to.
func addPromotions(ml *moveslice.MoveSlice, from, to Square, capture bool) {
	for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		ml.AddScored(NewMove(from, to, PromotionMoveKind(pt, capture)), 0)
	}
}

// castleSpec describes the static squares involved in one castling move:
// the squares that must be empty and the squares that must not be
// attacked by the opponent (including the king's start square).
type castleSpec struct {
	kind            MoveKind
	kingFrom, kingTo Square
	emptySquares    Bitboard
	safeSquares     [3]Square
}

var castleSpecs = map[Color][2]castleSpec{
	White: {
		{kind: KingCastle, kingFrom: SqE1, kingTo: SqG1, emptySquares: SqF1.Bb() | SqG1.Bb(), safeSquares: [3]Square{SqE1, SqF1, SqG1}},
		{kind: QueenCastle, kingFrom: SqE1, kingTo: SqC1, emptySquares: SqB1.Bb() | SqC1.Bb() | SqD1.Bb(), safeSquares: [3]Square{SqE1, SqD1, SqC1}},
	},
	Black: {
		{kind: KingCastle, kingFrom: SqE8, kingTo: SqG8, emptySquares: SqF8.Bb() | SqG8.Bb(), safeSquares: [3]Square{SqE8, SqF8, SqG8}},
		{kind: QueenCastle, kingFrom: SqE8, kingTo: SqC8, emptySquares: SqB8.Bb() | SqC8.Bb() | SqD8.Bb(), safeSquares: [3]Square{SqE8, SqD8, SqC8}},
	},
}

// generateCastles appends the castling moves still available to the side
// to move given its castling rights and the current occupancy/attacks.
func generateCastles(p *position.Position, ml *moveslice.MoveSlice) {
	us := p.SideToMove()
	rights := p.CastlingRights()
	occ := p.OccupiedBb()
	them := us.Flip()

	for _, spec := range castleSpecs[us] {
		right := KingSide(us)
		if spec.kind == QueenCastle {
			right = QueenSide(us)
		}
		if !rights.Has(right) {
			continue
		}
		if occ&spec.emptySquares != BbZero {
			continue
		}
		blocked := false
		for _, sq := range spec.safeSquares {
			if p.IsSquareAttacked(sq, them) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		ml.AddScored(NewMove(spec.kingFrom, spec.kingTo, spec.kind), 0)
	}
}
