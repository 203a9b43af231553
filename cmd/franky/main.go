/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

// Command franky is a thin driver over internal/search: perft, an NPS
// benchmark, and a single-position timed search, each printing UCI-shaped
// info lines. It is not a UCI protocol implementation.
package main

import (
	"flag"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sayurc/athena/internal/config"
	"github.com/sayurc/athena/internal/engine"
	"github.com/sayurc/athena/internal/movegen"
	"github.com/sayurc/athena/internal/position"
	"github.com/sayurc/athena/internal/search"
	. "github.com/sayurc/athena/internal/types"
	"github.com/sayurc/athena/internal/util"
)

const version = "0.1.0"

var out = message.NewPrinter(language.English)

func main() {
	configFile := flag.String("config", "./athena.toml", "path to configuration settings file")
	fen := flag.String("fen", position.StartFen, "fen to start from for perft, nps and go")
	perft := flag.Int("perft", 0, "run perft to the given depth from -fen and exit")
	nps := flag.Int("nps", 0, "run an NPS benchmark for the given number of seconds from -fen and exit")
	moveTimeMs := flag.Int("movetime", 0, "run a single timed search for the given milliseconds from -fen and exit")
	depth := flag.Int("depth", 0, "depth limit for -movetime (0 = use search.MaxSearchDepth)")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the run to ./cpu.pprof")
	versionInfo := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	switch {
	case *perft > 0:
		runPerft(*fen, *perft)
	case *nps > 0:
		runNps(*fen, time.Duration(*nps)*time.Second)
	case *moveTimeMs > 0:
		runMoveTimeSearch(*fen, time.Duration(*moveTimeMs)*time.Millisecond, *depth)
	default:
		flag.Usage()
	}
}

// runPerft prints leaf-node counts for every depth from 1 up to depth, in
// the conventional "info depth N nodes M time T nps R" shape.
func runPerft(fen string, depth int) {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		out.Printf("invalid fen %q: %v\n", fen, err)
		return
	}
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := movegen.Perft(p, d)
		elapsed := time.Since(start)
		out.Printf("info depth %d nodes %d time %d nps %d\n",
			d, nodes, elapsed.Milliseconds(), util.Nps(nodes, elapsed))
	}
}

// runNps runs a fixed-duration search and reports the resulting nodes per
// second, the standard way to gauge raw search throughput independent of
// evaluation quality.
func runNps(fen string, duration time.Duration) {
	s := search.NewSearch()
	req := engine.SearchRequest{
		FEN:      fen,
		MoveTime: duration,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	cb := engine.Callbacks{SendBestMove: func(best, ponder Move) { wg.Done() }}
	start := time.Now()
	s.StartSearch(req, cb, engine.NewStopFlag())
	wg.Wait()
	elapsed := time.Since(start)

	out.Println()
	out.Printf("NPS : %d\n", util.Nps(s.NodesVisited(), elapsed))
}

// runMoveTimeSearch runs one search and prints each iteration's info line
// plus the final best move, the way a UCI frontend would render "go
// movetime"/"go depth" output.
func runMoveTimeSearch(fen string, moveTime time.Duration, depth int) {
	s := search.NewSearch()
	req := engine.SearchRequest{
		FEN:      fen,
		MoveTime: moveTime,
		MaxDepth: depth,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	cb := engine.Callbacks{
		SendInfo: printInfo,
		SendBestMove: func(best, ponder Move) {
			out.Printf("bestmove %s", best.StringUci())
			if ponder != MoveNone {
				out.Printf(" ponder %s", ponder.StringUci())
			}
			out.Println()
			wg.Done()
		},
	}
	s.StartSearch(req, cb, engine.NewStopFlag())
	wg.Wait()
}

func printInfo(info engine.Info) {
	out.Printf("info depth %d seldepth %d", info.Depth, info.SelDepth)
	switch {
	case info.Flags.Has(engine.InfoMate):
		out.Printf(" score mate %d", info.Mate)
	case info.Flags.Has(engine.InfoCp):
		out.Printf(" score cp %d", info.Score)
	}
	if info.Flags.Has(engine.InfoLowerbound) {
		out.Printf(" lowerbound")
	}
	out.Printf(" nodes %d nps %d time %d hashfull %d pv",
		info.Nodes, info.Nps, info.Time.Milliseconds(), info.HashFull)
	for _, m := range info.PV {
		out.Printf(" %s", m.StringUci())
	}
	out.Println()
}

func printVersionInfo() {
	out.Printf("athena %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
}
