/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

// Package engine defines the external contract between a driver (a UCI
// loop, a test harness, cmd/franky) and internal/search: the request a
// caller issues, the callbacks the search reports progress through, and
// the shared stop flag. It holds no logic of its own.
package engine

import (
	"time"

	"github.com/sayurc/athena/internal/util"
	. "github.com/sayurc/athena/internal/types"
)

// InfoFlags marks which fields of an Info are meaningful for a given
// report, since not every field is populated on every callback.
type InfoFlags uint16

const (
	InfoDepth InfoFlags = 1 << iota
	InfoNodes
	InfoNps
	InfoTime
	InfoCp
	InfoMate
	InfoLowerbound
	InfoPV
	InfoHashFull
)

// Has reports whether flags includes other.
func (f InfoFlags) Has(other InfoFlags) bool { return f&other != 0 }

// Info is one progress report emitted during a search, roughly
// corresponding to a UCI "info" line.
type Info struct {
	Flags    InfoFlags
	Depth    int
	SelDepth int
	Nodes    uint64
	Nps      uint64
	Time     time.Duration
	Score    Value
	Mate     int
	PV       []Move
	HashFull int
}

// Callbacks lets a driver observe a running search without internal/search
// needing to know anything about UCI, a GUI, or a test harness.
type Callbacks struct {
	SendInfo     func(Info)
	SendBestMove func(best, ponder Move)
}

// SearchRequest describes one search: the position to search from and
// the limits controlling how long or how deep to look.
type SearchRequest struct {
	FEN        string
	MovePrefix []string // UCI moves applied to FEN before searching

	MaxDepth int
	MaxNodes uint64

	WhiteTime, BlackTime time.Duration
	WhiteInc, BlackInc   time.Duration
	MovesToGo            int
	MoveTime             time.Duration

	MateDistance int
	Infinite     bool
}

// StopFlag is the cooperative cancellation signal a caller uses to stop
// a running search from another goroutine.
type StopFlag = *util.AtomicBool

// NewStopFlag returns a fresh, unset stop flag.
func NewStopFlag() StopFlag { return util.NewAtomicBool() }
