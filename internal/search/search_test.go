/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sayurc/athena/internal/engine"
	. "github.com/sayurc/athena/internal/types"
)

func waitForBestMove(t *testing.T, s *Search, req engine.SearchRequest, stop engine.StopFlag) (best, ponder Move) {
	t.Helper()
	var wg sync.WaitGroup
	wg.Add(1)
	cb := engine.Callbacks{
		SendBestMove: func(b, p Move) {
			best, ponder = b, p
			wg.Done()
		},
	}
	s.StartSearch(req, cb, stop)
	wg.Wait()
	return best, ponder
}

func TestSearchFindsMateInOne(t *testing.T) {
	s := NewSearch()
	req := engine.SearchRequest{
		FEN:      "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1",
		MaxDepth: 4,
	}
	best, _ := waitForBestMove(t, s, req, engine.NewStopFlag())

	assert.Equal(t, "a1a8", best.StringUci())
	assert.True(t, s.Statistics().CurrentBestValue.IsMateScore())
}

func TestSearchRespectsMoveTime(t *testing.T) {
	s := NewSearch()
	req := engine.SearchRequest{
		FEN:      "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		MoveTime: 200 * time.Millisecond,
	}
	start := time.Now()
	best, _ := waitForBestMove(t, s, req, engine.NewStopFlag())
	elapsed := time.Since(start)

	assert.NotEqual(t, MoveNone, best)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestSearchStopsOnStopFlag(t *testing.T) {
	s := NewSearch()
	stop := engine.NewStopFlag()
	req := engine.SearchRequest{
		FEN:      "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Infinite: true,
	}

	go func() {
		time.Sleep(100 * time.Millisecond)
		stop.Set()
	}()

	start := time.Now()
	best, _ := waitForBestMove(t, s, req, stop)
	elapsed := time.Since(start)

	assert.NotEqual(t, MoveNone, best)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestSearchDetectsRepetitionDraw(t *testing.T) {
	s := NewSearch()
	req := engine.SearchRequest{
		FEN:        "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		MovePrefix: []string{"g1f3", "g8f6", "f3g1", "f6g8"},
		MaxDepth:   4,
	}
	_, _ = waitForBestMove(t, s, req, engine.NewStopFlag())

	assert.EqualValues(t, ValueDraw, s.Statistics().CurrentBestValue)
}
