/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package eval

import (
	"github.com/sayurc/athena/internal/magic"
	"github.com/sayurc/athena/internal/position"
	. "github.com/sayurc/athena/internal/types"
)

// WinsExchange implements static exchange evaluation: it reports whether
// the side to move wins the capture sequence initiated by m by strictly
// more than threshold centipawns. It simulates the full alternating
// sequence of least-valuable-attacker captures on m's destination square
// without mutating p.
func WinsExchange(p *position.Position, m Move, threshold int) bool {
	from, to := m.From(), m.To()
	us := p.SideToMove()

	var gain [32]int
	depth := 0

	if m.Kind() == EnPassantCapture {
		gain[0] = int(Pawn.ValueOf())
	} else {
		gain[0] = int(p.PieceOn(to).ValueOf())
	}

	attackerValue := int(p.PieceOn(from).ValueOf())
	if m.Kind().IsPromotion() {
		attackerValue = int(m.Kind().PromotionPieceType().ValueOf())
	}

	occ := p.OccupiedBb()
	occ.PopSquare(from)
	if m.Kind() == EnPassantCapture {
		var capSq Square
		if us == White {
			capSq = to.To(South)
		} else {
			capSq = to.To(North)
		}
		occ.PopSquare(capSq)
	}

	bishopsQueens := p.PiecesBb(White, Bishop) | p.PiecesBb(Black, Bishop) | p.PiecesBb(White, Queen) | p.PiecesBb(Black, Queen)
	rooksQueens := p.PiecesBb(White, Rook) | p.PiecesBb(Black, Rook) | p.PiecesBb(White, Queen) | p.PiecesBb(Black, Queen)

	attackers := p.AttackersTo(to, occ) & occ
	side := us.Flip()

	for depth < len(gain)-1 {
		sq, pt, found := leastValuableAttacker(p, attackers&p.ColorBb(side), side)
		if !found {
			break
		}

		if pt == King {
			opponentStillAttacks := attackers&p.ColorBb(side.Flip()) != BbZero
			if opponentStillAttacks {
				// the king cannot capture into check; the exchange stops
				// with this side unable to continue.
				break
			}
		}

		depth++
		gain[depth] = attackerValue - gain[depth-1]
		attackerValue = int(pt.ValueOf())

		occ.PopSquare(sq)
		attackers &^= sq.Bb()
		attackers |= magic.GetAttacksBb(Bishop, to, occ) & bishopsQueens
		attackers |= magic.GetAttacksBb(Rook, to, occ) & rooksQueens
		attackers &= occ

		side = side.Flip()
	}

	// Back-propagate: at each ply a side only continues the exchange if
	// doing so improves on stopping, so gain[d-1] is the minimum of not
	// capturing (gain[d-1] as is) and capturing (-gain[d]).
	for depth > 0 {
		if -gain[depth] < gain[depth-1] {
			gain[depth-1] = -gain[depth]
		}
		depth--
	}

	return gain[0] > threshold
}

// leastValuableAttacker returns the cheapest piece of color side among
// the attackers bitboard, preferring pawn over knight/bishop over rook
// over queen over king.
func leastValuableAttacker(p *position.Position, attackers Bitboard, side Color) (Square, PieceType, bool) {
	for _, pt := range [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
		bb := attackers & p.PiecesBb(side, pt)
		if bb != BbZero {
			return bb.Lsb(), pt, true
		}
	}
	return SqNone, PtNone, false
}
