/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLoadsDefaultsWithoutAFile(t *testing.T) {
	ConfFile = "./does-not-exist.toml"
	initialized = false
	Setup()

	assert.Equal(t, 64, Settings.Search.HashSizeMb)
	assert.True(t, Settings.Search.UseTT)
	assert.True(t, Settings.Search.UseQuiescence)
	assert.Equal(t, 4, Settings.Log.LogLevel)
	assert.True(t, Settings.Eval.UsePawnCache)
	assert.Equal(t, 16, Settings.Eval.PawnCacheSize)
}

func TestSetupIsIdempotent(t *testing.T) {
	ConfFile = "./does-not-exist.toml"
	initialized = false
	Setup()
	Settings.Search.HashSizeMb = 128
	Setup()

	assert.Equal(t, 128, Settings.Search.HashSizeMb, "a second Setup call must not reset already-initialized settings")
}
