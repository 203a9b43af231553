/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

// Package history implements the search's move-ordering memory: a
// per-ply killer-move table and three history tables (butterfly, piece-to
// and capture) of move scores, all read by the move picker and updated on
// beta cutoffs.
package history

import (
	. "github.com/sayurc/athena/internal/types"
)

// maxKillers is the number of distinct killer moves remembered per ply.
const maxKillers = 2

// gravityCap bounds the magnitude a history entry can reach; the gravity
// update formula asymptotically approaches it from either side.
const gravityCap = 16384

// Table holds the killer-move and history state for one search. It is
// owned by a single search invocation and is not safe for concurrent use.
type Table struct {
	killers   [MaxPly][maxKillers]Move
	butterfly [ColorLength][SqLength][SqLength]int32
	pieceTo   [ColorLength][PtLength][SqLength]int32
	capture   [ColorLength][PtLength][SqLength][PtLength]int32
}

// New returns an empty history table.
func New() *Table {
	return &Table{}
}

// Clear resets every killer slot and butterfly score to zero, used
// between searches so stale move-ordering hints from a previous position
// don't bias a new one.
func (t *Table) Clear() {
	*t = Table{}
}

// Killers returns the up to two killer moves recorded for ply.
func (t *Table) Killers(ply int) [maxKillers]Move {
	if ply < 0 || ply >= MaxPly {
		return [maxKillers]Move{}
	}
	return t.killers[ply]
}

// IsKiller reports whether m is one of ply's recorded killer moves.
func (t *Table) IsKiller(ply int, m Move) bool {
	if ply < 0 || ply >= MaxPly {
		return false
	}
	return t.killers[ply][0] == m || t.killers[ply][1] == m
}

// AddKiller records m as a refutation at ply, keeping at most two
// distinct recent killers (most recent first) and doing nothing if m is
// already the most recent killer.
func (t *Table) AddKiller(ply int, m Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	slot := &t.killers[ply]
	if slot[0] == m {
		return
	}
	slot[1] = slot[0]
	slot[0] = m
}

// Score returns the current butterfly history score for a quiet move by
// color c from `from` to `to`.
func (t *Table) Score(c Color, from, to Square) int32 {
	return t.butterfly[c][from][to]
}

// Update applies the gravity update to the butterfly history entry for
// (c, from, to): new = old + delta - old*|delta|/gravityCap. This nudges
// the score toward delta while capping its magnitude near gravityCap
// regardless of how many times the same move is reinforced.
func (t *Table) Update(c Color, from, to Square, delta int32) {
	t.butterfly[c][from][to] = gravity(t.butterfly[c][from][to], delta)
}

// PieceToScore returns the current [side][piece-type][to] history score,
// a move-ordering signal independent of the move's origin square.
func (t *Table) PieceToScore(c Color, pt PieceType, to Square) int32 {
	return t.pieceTo[c][pt][to]
}

// UpdatePieceTo applies the gravity update to the [side][piece-type][to]
// entry for a quiet move that caused a beta cutoff.
func (t *Table) UpdatePieceTo(c Color, pt PieceType, to Square, delta int32) {
	t.pieceTo[c][pt][to] = gravity(t.pieceTo[c][pt][to], delta)
}

// CaptureScore returns the current [side][piece-type][to][captured-type]
// history score used to break ties between otherwise equally-valued
// captures during move ordering.
func (t *Table) CaptureScore(c Color, pt PieceType, to Square, captured PieceType) int32 {
	return t.capture[c][pt][to][captured]
}

// UpdateCapture applies the gravity update to the
// [side][piece-type][to][captured-type] entry for a capture that caused a
// beta cutoff.
func (t *Table) UpdateCapture(c Color, pt PieceType, to Square, captured PieceType, delta int32) {
	t.capture[c][pt][to][captured] = gravity(t.capture[c][pt][to][captured], delta)
}

// gravity nudges old toward old+delta while capping its magnitude near
// gravityCap regardless of how many times the same entry is reinforced.
func gravity(old, delta int32) int32 {
	absDelta := delta
	if absDelta < 0 {
		absDelta = -absDelta
	}
	return old + delta - old*absDelta/gravityCap
}
