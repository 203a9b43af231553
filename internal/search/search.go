/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

// Package search implements iterative-deepening negamax with alpha-beta
// pruning and quiescence search over internal/position, ordered by
// internal/picker and cached in internal/tt.
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/sayurc/athena/internal/config"
	"github.com/sayurc/athena/internal/engine"
	"github.com/sayurc/athena/internal/history"
	mylogging "github.com/sayurc/athena/internal/logging"
	"github.com/sayurc/athena/internal/movegen"
	"github.com/sayurc/athena/internal/moveslice"
	"github.com/sayurc/athena/internal/position"
	"github.com/sayurc/athena/internal/tt"
	. "github.com/sayurc/athena/internal/types"
	"github.com/sayurc/athena/internal/util"
)

// MaxSearchDepth is the iterative-deepening ceiling used when a request
// doesn't set MaxDepth, well short of the MaxPly array bound so ply-based
// extensions never run off the end of the pv/killer tables.
const MaxSearchDepth = 64

var out = message.NewPrinter(language.English)

// Search is one reusable search engine instance: a transposition table,
// history heuristics, and the goroutine-gated state machine that drives
// iterative deepening. The zero value is not usable; construct with
// NewSearch.
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt   *tt.Table
	hist *history.Table

	cb   engine.Callbacks
	stop engine.StopFlag

	startTime time.Time
	nodes     uint64
	lim       limits
	timeLimit time.Duration

	pv         [MaxPly + 1][]Move
	statistics Statistics
}

// NewSearch returns a ready-to-use Search with a transposition table
// sized from config.Settings.Search.HashSizeMb.
func NewSearch() *Search {
	config.Setup()
	return &Search{
		log:           mylogging.GetLog(),
		slog:          mylogging.GetSearchLog(),
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
		tt:            tt.New(config.Settings.Search.HashSizeMb),
		hist:          history.New(),
	}
}

// NewGame clears the transposition table and history heuristics, for use
// between unrelated games.
func (s *Search) NewGame() {
	s.StopSearch()
	s.tt.Clear()
	s.hist.Clear()
}

// StartSearch begins searching req in a new goroutine and returns once
// the search has initialized and is actually running. cb receives
// progress reports and the final best move; stop lets the caller cancel
// the search from another goroutine.
func (s *Search) StartSearch(req engine.SearchRequest, cb engine.Callbacks, stop engine.StopFlag) {
	_ = s.initSemaphore.Acquire(context.Background(), 1)

	p, err := position.NewPositionFen(req.FEN)
	if err != nil {
		s.log.Errorf("search: invalid FEN %q: %v", req.FEN, err)
		s.initSemaphore.Release(1)
		return
	}
	for _, uci := range req.MovePrefix {
		m := findMoveByUci(p, uci)
		if m == MoveNone {
			s.log.Errorf("search: illegal move in prefix: %s", uci)
			break
		}
		p.DoMove(m)
	}

	s.cb = cb
	s.stop = stop

	go s.run(p, limitsFromRequest(req))

	_ = s.initSemaphore.Acquire(context.Background(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch signals a running search to stop and blocks until it has.
func (s *Search) StopSearch() {
	if s.stop != nil {
		s.stop.Set()
	}
	s.WaitWhileSearching()
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any running search has finished.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// Statistics returns a pointer to the statistics of the last (or
// currently running) search.
func (s *Search) Statistics() *Statistics { return &s.statistics }

// NodesVisited returns the node count of the last (or currently running)
// search.
func (s *Search) NodesVisited() uint64 { return s.nodes }

// run drives one complete search: setup, iterative deepening, teardown.
// It always runs in its own goroutine, started by StartSearch.
func (s *Search) run(p *position.Position, lim limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("search: already running")
		s.initSemaphore.Release(1)
		return
	}
	defer s.isRunning.Release(1)

	s.startTime = time.Now()
	s.nodes = 0
	s.lim = lim
	s.statistics = Statistics{}

	if lim.timeControl {
		s.timeLimit = s.setupTimeControl(p, lim)
	} else {
		s.timeLimit = 0
	}

	s.log.Info(out.Sprintf("search: starting on %s", p.Fen()))
	s.initSemaphore.Release(1)

	best, ponder := s.iterativeDeepening(p)

	elapsed := time.Since(s.startTime)
	s.log.Info(out.Sprintf("search: finished after %s, %d nodes, %d nps", elapsed, s.nodes, util.Nps(s.nodes, elapsed)))

	if s.cb.SendBestMove != nil {
		s.cb.SendBestMove(best, ponder)
	}
}

// setupTimeControl resolves the request's time fields into a single
// budget for the current move.
func (s *Search) setupTimeControl(p *position.Position, lim limits) time.Duration {
	if lim.moveTime > 0 {
		return lim.moveTime
	}
	remaining := lim.whiteTime
	inc := lim.whiteInc
	if p.SideToMove() == Black {
		remaining = lim.blackTime
		inc = lim.blackInc
	}
	budget := allocateTime(p, remaining, lim.movesToGo)
	return budget + inc
}

// outOfTime reports whether the allotted time budget has elapsed. It is
// only meaningful when the search is under time control.
func (s *Search) outOfTime() bool {
	return s.lim.timeControl && s.timeLimit > 0 && time.Since(s.startTime) >= s.timeLimit
}

// shouldStop reports whether the search must stop: the stop flag is set,
// the node limit is reached or the time budget is spent. negamax and
// qsearch poll it on entry only every stopPollInterval nodes; the move
// loops also check it after each child search so that a result from an
// aborted subtree is discarded.
func (s *Search) shouldStop() bool {
	if s.stop != nil && s.stop.IsSet() {
		return true
	}
	if s.lim.maxNodes > 0 && s.nodes >= s.lim.maxNodes {
		return true
	}
	return s.outOfTime()
}

// findMoveByUci generates legal moves for p and returns the one matching
// the given UCI string, or MoveNone if none matches.
func findMoveByUci(p *position.Position, uci string) Move {
	var ml moveslice.MoveSlice
	movegen.GenerateLegalMoves(p, &ml)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.StringUci() == uci {
			return m
		}
	}
	return MoveNone
}
