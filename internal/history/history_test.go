/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/sayurc/athena/internal/types"
)

func TestAddKillerKeepsTwoMostRecentDistinct(t *testing.T) {
	h := New()
	m1 := NewMove(SqE2, SqE4, DoublePawnPush)
	m2 := NewMove(SqG1, SqF3, Quiet)
	m3 := NewMove(SqB1, SqC3, Quiet)

	h.AddKiller(5, m1)
	h.AddKiller(5, m2)

	assert.True(t, h.IsKiller(5, m1))
	assert.True(t, h.IsKiller(5, m2))

	h.AddKiller(5, m3)
	assert.False(t, h.IsKiller(5, m1))
	assert.True(t, h.IsKiller(5, m2))
	assert.True(t, h.IsKiller(5, m3))
}

func TestAddKillerIgnoresRepeatOfMostRecent(t *testing.T) {
	h := New()
	m1 := NewMove(SqE2, SqE4, DoublePawnPush)
	m2 := NewMove(SqG1, SqF3, Quiet)

	h.AddKiller(3, m1)
	h.AddKiller(3, m2)
	h.AddKiller(3, m2)

	killers := h.Killers(3)
	assert.Equal(t, m2, killers[0])
	assert.Equal(t, m1, killers[1])
}

func TestUpdateMovesTowardDeltaAndStaysBounded(t *testing.T) {
	h := New()
	from, to := SqE2, SqE4

	for i := 0; i < 1000; i++ {
		h.Update(White, from, to, 32)
	}
	score := h.Score(White, from, to)
	assert.Greater(t, score, int32(0))
	assert.LessOrEqual(t, score, int32(gravityCap))

	for i := 0; i < 1000; i++ {
		h.Update(White, from, to, -32)
	}
	score = h.Score(White, from, to)
	assert.Less(t, score, int32(0))
}

func TestUpdatePieceToMovesTowardDeltaAndStaysBounded(t *testing.T) {
	h := New()

	for i := 0; i < 1000; i++ {
		h.UpdatePieceTo(White, Knight, SqF3, 32)
	}
	score := h.PieceToScore(White, Knight, SqF3)
	assert.Greater(t, score, int32(0))
	assert.LessOrEqual(t, score, int32(gravityCap))
}

func TestUpdateCaptureMovesTowardDeltaAndStaysBounded(t *testing.T) {
	h := New()

	for i := 0; i < 1000; i++ {
		h.UpdateCapture(White, Knight, SqE5, Pawn, 32)
	}
	score := h.CaptureScore(White, Knight, SqE5, Pawn)
	assert.Greater(t, score, int32(0))
	assert.LessOrEqual(t, score, int32(gravityCap))

	assert.Equal(t, int32(0), h.CaptureScore(White, Knight, SqE5, Queen))
}

func TestClearResetsState(t *testing.T) {
	h := New()
	m := NewMove(SqE2, SqE4, DoublePawnPush)
	h.AddKiller(1, m)
	h.Update(White, SqE2, SqE4, 100)
	h.UpdatePieceTo(White, Pawn, SqE4, 100)
	h.UpdateCapture(White, Knight, SqE5, Pawn, 100)

	h.Clear()

	assert.False(t, h.IsKiller(1, m))
	assert.Equal(t, int32(0), h.Score(White, SqE2, SqE4))
	assert.Equal(t, int32(0), h.PieceToScore(White, Pawn, SqE4))
	assert.Equal(t, int32(0), h.CaptureScore(White, Knight, SqE5, Pawn))
}
