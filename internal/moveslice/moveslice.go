/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

// Package moveslice provides a growable, reusable container of scored
// moves shared by move generation and the move picker, avoiding a fresh
// allocation at every node of the search tree.
package moveslice

import (
	. "github.com/sayurc/athena/internal/types"
)

// Entry pairs a move with an ordering score assigned by the move picker.
// Higher scores are tried first.
type Entry struct {
	Move  Move
	Score int32
}

// MoveSlice is a reusable list of move entries. The zero
// value is ready to use. Callers that run many searches reuse one
// MoveSlice per ply via Clear instead of allocating a fresh slice.
type MoveSlice struct {
	entries []Entry
}

// New returns an empty MoveSlice with capacity for a typical number of
// pseudo-legal moves in a middlegame position.
func New() *MoveSlice {
	return &MoveSlice{entries: make([]Entry, 0, 48)}
}

// Add appends m with score 0.
func (ms *MoveSlice) Add(m Move) {
	ms.entries = append(ms.entries, Entry{Move: m})
}

// AddScored appends m with the given ordering score.
func (ms *MoveSlice) AddScored(m Move, score int32) {
	ms.entries = append(ms.entries, Entry{Move: m, Score: score})
}

// Len returns the number of moves currently stored.
func (ms *MoveSlice) Len() int { return len(ms.entries) }

// At returns the move at index i.
func (ms *MoveSlice) At(i int) Move { return ms.entries[i].Move }

// ScoreAt returns the ordering score at index i.
func (ms *MoveSlice) ScoreAt(i int) int32 { return ms.entries[i].Score }

// SetScore overwrites the ordering score at index i.
func (ms *MoveSlice) SetScore(i int, score int32) { ms.entries[i].Score = score }

// Clear empties the list while keeping the underlying array, so the next
// ply's generation reuses the allocation.
func (ms *MoveSlice) Clear() { ms.entries = ms.entries[:0] }

// Swap exchanges the entries at i and j.
func (ms *MoveSlice) Swap(i, j int) { ms.entries[i], ms.entries[j] = ms.entries[j], ms.entries[i] }

// SelectBest moves the highest-scoring entry among [from:Len) into index
// from and returns it, doing one pass of selection sort. The picker calls
// this once per move it hands to the search instead of sorting the whole
// list up front, since most nodes never need every move.
func (ms *MoveSlice) SelectBest(from int) Entry {
	best := from
	for i := from + 1; i < len(ms.entries); i++ {
		if ms.entries[i].Score > ms.entries[best].Score {
			best = i
		}
	}
	ms.Swap(from, best)
	return ms.entries[from]
}

// Contains reports whether m is present in the list.
func (ms *MoveSlice) Contains(m Move) bool {
	for _, e := range ms.entries {
		if e.Move == m {
			return true
		}
	}
	return false
}

// Remove deletes the first occurrence of m, preserving the order of the
// remaining entries.
func (ms *MoveSlice) Remove(m Move) bool {
	for i, e := range ms.entries {
		if e.Move == m {
			ms.entries = append(ms.entries[:i], ms.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Slice returns the underlying entries. The returned slice is valid only
// until the next Clear or Add call.
func (ms *MoveSlice) Slice() []Entry { return ms.entries }
