/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAtomicBoolLifecycle(t *testing.T) {
	b := NewAtomicBool()
	assert.False(t, b.IsSet())

	b.Set()
	assert.True(t, b.IsSet())

	b.Reset()
	assert.False(t, b.IsSet())
}

func TestAbsMinMax(t *testing.T) {
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, 2, Min(2, 7))
	assert.Equal(t, 7, Max(2, 7))
}

func TestNps(t *testing.T) {
	assert.EqualValues(t, 2000, Nps(2000, time.Second))
	assert.EqualValues(t, 1000, Nps(1, 0))
}
