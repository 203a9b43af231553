/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package movegen

import (
	"github.com/sayurc/athena/internal/moveslice"
	"github.com/sayurc/athena/internal/position"
)

// Perft counts the number of leaf nodes reachable from p in exactly
// depth plies of legal play. It is the standard move-generator
// correctness check: the counts for the standard starting position and a
// handful of well known test positions are published and must match
// exactly.
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var ml moveslice.MoveSlice
	GenerateMoves(p, &ml)

	var nodes uint64
	us := p.SideToMove()
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		p.DoMove(m)
		if !p.IsSquareAttacked(p.KingSquare(us), us.Flip()) {
			nodes += Perft(p, depth-1)
		}
		p.UndoMove(m)
	}
	return nodes
}

// Divide runs Perft one ply at a time, returning the per-root-move leaf
// counts keyed by the move's UCI string. It is used to localise a
// mismatch against a reference perft count to a specific root move.
func Divide(p *position.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth == 0 {
		return result
	}

	var ml moveslice.MoveSlice
	GenerateMoves(p, &ml)

	us := p.SideToMove()
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		p.DoMove(m)
		if !p.IsSquareAttacked(p.KingSquare(us), us.Flip()) {
			result[m.StringUci()] = Perft(p, depth-1)
		}
		p.UndoMove(m)
	}
	return result
}
