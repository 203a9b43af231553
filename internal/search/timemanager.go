/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package search

import (
	"math"
	"time"

	"github.com/sayurc/athena/internal/eval"
	"github.com/sayurc/athena/internal/position"
)

// allocateTime computes how long to spend on the current move given the
// remaining clock for the side to move and the game's estimated phase.
//
// With a fixed number of moves to the next time control (movesToGo == 1)
// it spends a fraction of the remaining time that shrinks as the clock
// runs low: (T/1000)^1.1 / (T/1000 + 1)^1.1, T in milliseconds.
//
// Otherwise it takes M = movesToGo (capped at 40, or 40 outright when
// movesToGo is unknown), tapers
// that estimate by the game phase p (0 opening .. 256 endgame) into a
// divisor D = (M*(256-p) + 8*p) / 256, and allocates T/D.
func allocateTime(p *position.Position, remaining time.Duration, movesToGo int) time.Duration {
	t := remaining.Milliseconds()
	if t <= 0 {
		return 0
	}

	if movesToGo == 1 {
		secs := float64(t) / 1000.0
		fraction := math.Pow(secs, 1.1) / math.Pow(secs+1, 1.1)
		return time.Duration(float64(t)*fraction) * time.Millisecond
	}

	m := movesToGo
	if m <= 0 {
		m = 40
	} else if m > 40 {
		m = 40
	}
	phase := eval.Phase(p)
	divisor := (m*(256-phase) + 8*phase) / 256
	if divisor < 1 {
		divisor = 1
	}
	return time.Duration(t/int64(divisor)) * time.Millisecond
}
