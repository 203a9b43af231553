/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package eval

import (
	"sync"

	"github.com/sayurc/athena/internal/config"
	. "github.com/sayurc/athena/internal/types"
)

// pawnCacheEntry holds both sides' pawn-structure scores for one pawn
// skeleton, keyed by a hash of the two pawn bitboards together (a passed
// or isolated pawn for one side depends on the other side's pawns too, so
// the key must cover both).
type pawnCacheEntry struct {
	key         uint64
	valid       bool
	white, black int32
}

// pawnCache is a small direct-mapped cache from pawn skeleton to
// structure score, avoiding the doubled/isolated/passed-pawn scan on
// every call to Evaluate when the pawn structure hasn't changed since the
// last probe (quiescence search revisits the same pawn skeleton very
// often since most of its moves are captures of other piece types).
type pawnCache struct {
	entries []pawnCacheEntry
	mask    uint64
}

var (
	globalPawnCache     *pawnCache
	globalPawnCacheOnce sync.Once
)

const pawnCacheEntrySize = 24 // approximate bytes per entry, used for sizing

func pawnCacheInstance() *pawnCache {
	globalPawnCacheOnce.Do(func() {
		sizeMb := config.Settings.Eval.PawnCacheSize
		if sizeMb < 1 {
			sizeMb = 1
		}
		n := sizeMb * 1024 * 1024 / pawnCacheEntrySize
		capacity := 1
		for capacity*2 <= n {
			capacity *= 2
		}
		globalPawnCache = &pawnCache{
			entries: make([]pawnCacheEntry, capacity),
			mask:    uint64(capacity - 1),
		}
	})
	return globalPawnCache
}

// pawnHashKey mixes both sides' pawn bitboards into a single 64-bit key,
// independent of the position's Zobrist key so unrelated positions
// sharing a pawn skeleton (common in the same game) hit the same entry.
func pawnHashKey(white, black Bitboard) uint64 {
	const (
		mulWhite = 0x9E3779B97F4A7C15
		mulBlack = 0xC2B2AE3D27D4EB4F
	)
	h := uint64(white)*mulWhite ^ uint64(black)*mulBlack
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	return h
}

func (c *pawnCache) probe(key uint64) (white, black int32, ok bool) {
	e := &c.entries[key&c.mask]
	if e.valid && e.key == key {
		return e.white, e.black, true
	}
	return 0, 0, false
}

func (c *pawnCache) store(key uint64, white, black int32) {
	c.entries[key&c.mask] = pawnCacheEntry{key: key, valid: true, white: white, black: black}
}
