/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package search

import (
	. "github.com/sayurc/athena/internal/types"
)

// Statistics are extra counters kept alongside a search run, useful for
// understanding move ordering and pruning quality but not needed for the
// search itself to function.
type Statistics struct {
	Nodes      uint64
	QNodes     uint64
	TTHits     uint64
	TTMisses   uint64
	TTCuts     uint64
	BetaCuts   uint64
	BetaCuts1st uint64

	NullMoveCuts uint64
	RfpPrunings  uint64
	FpPrunings   uint64
	StandpatCuts uint64

	Checkmates uint64
	Stalemates uint64

	CurrentDepth    int
	CurrentSelDepth int
	CurrentBestMove Move
	CurrentBestValue Value
}
