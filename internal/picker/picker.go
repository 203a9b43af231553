/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

// Package picker implements the search's staged, lazily sorted move
// iterator: the transposition-table move first, then good captures, then
// quiet moves ordered by history/killer score, then the captures that
// failed a static-exchange test. Generation and sorting of later stages
// is deferred until an earlier stage is exhausted, so a cutoff early in
// the order never pays for work later stages would have needed.
package picker

import (
	"github.com/sayurc/athena/internal/eval"
	"github.com/sayurc/athena/internal/history"
	"github.com/sayurc/athena/internal/movegen"
	"github.com/sayurc/athena/internal/moveslice"
	"github.com/sayurc/athena/internal/position"
	. "github.com/sayurc/athena/internal/types"
)

type stage int

const (
	stageTT stage = iota
	stageGenCaptures
	stageGoodCaptures
	stageGenQuiets
	stageQuiets
	stageBadCaptures
	stageDone
)

// mvvLvaValue scores a capture by most-valuable-victim minus
// least-valuable-aggressor (victim value times 16 minus aggressor value),
// plus the capture-history score divided by 64 as a nudge between
// captures whose MVV-LVA values are close. The result is negative when
// the victim is worth less than a sixteenth of the aggressor (a king
// capturing anything but a queen).
func mvvLvaValue(p *position.Position, hist *history.Table, m Move) int32 {
	var victim PieceType
	if m.Kind() == EnPassantCapture {
		victim = Pawn
	} else {
		victim = p.PieceOn(m.To()).TypeOf()
	}
	aggressor := p.PieceOn(m.From())
	base := int32(victim.ValueOf())*16 - int32(aggressor.ValueOf())
	base += hist.CaptureScore(p.SideToMove(), aggressor.TypeOf(), m.To(), victim) / 64
	return base
}

// Picker yields pseudo-legal moves for one search node in stages. It does
// not filter for legality; the caller applies movegen.IsLegal (or
// equivalent) after DoMove, as the rest of the search already does for
// every move source.
type Picker struct {
	pos         *position.Position
	hist        *history.Table
	ply         int
	ttMove      Move
	captureOnly bool

	stage stage

	captures    moveslice.MoveSlice
	quiets      moveslice.MoveSlice
	badCaptures moveslice.MoveSlice

	capCursor   int
	quietCursor int
	badCursor   int

	ttYielded bool
}

// New returns a picker for a normal search node: TT move, then captures
// and quiets in stages, then deferred bad captures.
func New(p *position.Position, hist *history.Table, ply int, ttMove Move) *Picker {
	return &Picker{pos: p, hist: hist, ply: ply, ttMove: ttMove}
}

// NewQuiescence returns a picker restricted to captures only, used by
// quiescence search.
func NewQuiescence(p *position.Position, hist *history.Table, ttMove Move) *Picker {
	return &Picker{pos: p, hist: hist, ply: 0, ttMove: ttMove, captureOnly: true}
}

// Next returns the next move in the staged order, or (MoveNone, false)
// once every stage is exhausted.
func (pk *Picker) Next() (Move, bool) {
	for {
		switch pk.stage {
		case stageTT:
			pk.stage = stageGenCaptures
			if pk.ttMove.IsValid() {
				pk.ttYielded = true
				return pk.ttMove, true
			}

		case stageGenCaptures:
			movegen.GenerateCaptures(pk.pos, &pk.captures)
			for i := 0; i < pk.captures.Len(); i++ {
				m := pk.captures.At(i)
				pk.captures.SetScore(i, mvvLvaValue(pk.pos, pk.hist, m))
			}
			pk.stage = stageGoodCaptures

		case stageGoodCaptures:
			if pk.capCursor >= pk.captures.Len() {
				pk.stage = stageGenQuiets
				continue
			}
			e := pk.captures.SelectBest(pk.capCursor)
			pk.capCursor++
			if pk.ttYielded && e.Move == pk.ttMove {
				continue
			}
			if eval.WinsExchange(pk.pos, e.Move, -int(e.Score)/8) {
				return e.Move, true
			}
			pk.badCaptures.AddScored(e.Move, e.Score)

		case stageGenQuiets:
			if pk.captureOnly {
				pk.stage = stageBadCaptures
				continue
			}
			movegen.GenerateMoves(pk.pos, &pk.quiets)
			// GenerateMoves includes captures too; keep only the quiet
			// kinds and score by butterfly history plus a killer bonus.
			filtered := moveslice.MoveSlice{}
			us := pk.pos.SideToMove()
			for i := 0; i < pk.quiets.Len(); i++ {
				m := pk.quiets.At(i)
				if m.Kind().IsCapture() {
					continue
				}
				score := pk.historyScore(us, m)
				filtered.AddScored(m, score)
			}
			pk.quiets = filtered
			pk.stage = stageQuiets

		case stageQuiets:
			if pk.quietCursor >= pk.quiets.Len() {
				pk.stage = stageBadCaptures
				continue
			}
			e := pk.quiets.SelectBest(pk.quietCursor)
			pk.quietCursor++
			if pk.ttYielded && e.Move == pk.ttMove {
				continue
			}
			return e.Move, true

		case stageBadCaptures:
			if pk.badCursor >= pk.badCaptures.Len() {
				pk.stage = stageDone
				continue
			}
			e := pk.badCaptures.Slice()[pk.badCursor]
			pk.badCursor++
			if pk.ttYielded && e.Move == pk.ttMove {
				continue
			}
			return e.Move, true

		case stageDone:
			return MoveNone, false
		}
	}
}

// historyScore scores a quiet move by butterfly history plus the
// piece-to-square history, with a large flat bonus for moves recorded as
// killers at this ply so they are tried before ordinary history-scored
// quiets.
func (pk *Picker) historyScore(us Color, m Move) int32 {
	const killerBonus = 1 << 20
	pt := pk.pos.PieceOn(m.From()).TypeOf()
	score := pk.hist.Score(us, m.From(), m.To()) + pk.hist.PieceToScore(us, pt, m.To())
	if pk.hist.IsKiller(pk.ply, m) {
		score += killerBonus
	}
	return score
}
