/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package search

import (
	"time"

	"github.com/sayurc/athena/internal/engine"
)

// limits is the internal, resolved form of an engine.SearchRequest: the
// depth/node/time bounds the iterative deepening loop checks on every
// iteration.
type limits struct {
	maxDepth int
	maxNodes uint64

	timeControl bool
	moveTime    time.Duration

	whiteTime, blackTime time.Duration
	whiteInc, blackInc   time.Duration
	movesToGo            int

	mateDistance int
	infinite     bool
}

// limitsFromRequest translates the external request into the internal
// representation, applying MaxDepth's default.
func limitsFromRequest(req engine.SearchRequest) limits {
	l := limits{
		maxDepth:     req.MaxDepth,
		maxNodes:     req.MaxNodes,
		moveTime:     req.MoveTime,
		whiteTime:    req.WhiteTime,
		blackTime:    req.BlackTime,
		whiteInc:     req.WhiteInc,
		blackInc:     req.BlackInc,
		movesToGo:    req.MovesToGo,
		mateDistance: req.MateDistance,
		infinite:     req.Infinite,
	}
	if l.maxDepth <= 0 {
		l.maxDepth = MaxSearchDepth
	}
	l.timeControl = !req.Infinite && (req.MoveTime > 0 || req.WhiteTime > 0 || req.BlackTime > 0)
	return l
}
