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

	"github.com/sayurc/athena/internal/config"
	"github.com/sayurc/athena/internal/engine"
	"github.com/sayurc/athena/internal/eval"
	"github.com/sayurc/athena/internal/movegen"
	"github.com/sayurc/athena/internal/moveslice"
	"github.com/sayurc/athena/internal/picker"
	"github.com/sayurc/athena/internal/position"
	. "github.com/sayurc/athena/internal/types"
	"github.com/sayurc/athena/internal/util"
)

// stopPollInterval is how many nodes pass between stop-flag/clock checks.
// The spec leaves this as an open question between 1024 and 8192 nodes;
// this engine picks the tighter 1024, favoring lower stop/movetime latency
// over the small extra overhead of polling twice as often.
const stopPollInterval = 1024

// iterativeDeepening searches from depth 1 up to s.lim.maxDepth (or until
// a limit fires), returning the best move found and, if available, a
// ponder move to follow it.
func (s *Search) iterativeDeepening(p *position.Position) (best, ponder Move) {
	var rootMoves moveslice.MoveSlice
	movegen.GenerateLegalMoves(p, &rootMoves)

	if rootMoves.Len() == 0 {
		if p.InCheck() {
			s.statistics.Checkmates++
		} else {
			s.statistics.Stalemates++
		}
		return MoveNone, MoveNone
	}

	maxDepth := s.lim.maxDepth
	if maxDepth <= 0 || maxDepth > MaxSearchDepth {
		maxDepth = MaxSearchDepth
	}

	for depth := 1; depth <= maxDepth; depth++ {
		value := s.rootSearch(p, depth, -ValueInf, ValueInf)
		if s.shouldStop() && depth > 1 {
			break
		}

		s.statistics.CurrentDepth = depth
		if s.pv[0] != nil && len(s.pv[0]) > 0 {
			best = s.pv[0][0]
			s.statistics.CurrentBestMove = best
			s.statistics.CurrentBestValue = value
			if len(s.pv[0]) > 1 {
				ponder = s.pv[0][1]
			}
		}

		if s.cb.SendInfo != nil {
			elapsed := time.Since(s.startTime)
			flags := engine.InfoDepth | engine.InfoNodes | engine.InfoNps | engine.InfoTime | engine.InfoPV | engine.InfoHashFull
			info := engine.Info{
				Flags:    flags,
				Depth:    depth,
				SelDepth: s.statistics.CurrentSelDepth,
				Nodes:    s.nodes,
				Nps:      util.Nps(s.nodes, elapsed),
				Time:     elapsed,
				Score:    value,
				PV:       s.pv[0],
				HashFull: s.tt.Hashfull(),
			}
			if value.IsMateScore() {
				info.Flags |= engine.InfoMate
				if value > 0 {
					info.Mate = (int(ValueInf-value) + 1) / 2
				} else {
					info.Mate = -(int(ValueInf+value) + 1) / 2
				}
			} else {
				info.Flags |= engine.InfoCp
			}
			s.cb.SendInfo(info)
		}

		if s.shouldStop() {
			break
		}
		if value.IsMateScore() && !s.lim.infinite {
			break
		}
	}

	return best, ponder
}

// rootSearch searches every legal move at the root and records the best
// one's continuation into s.pv[0].
func (s *Search) rootSearch(p *position.Position, depth int, alpha, beta Value) Value {
	ttMove := MoveNone
	if e, ok := s.tt.Probe(p.ZobristKey(), 0); ok {
		ttMove = e.Move
	}

	pk := picker.New(p, s.hist, 0, ttMove)
	bestValue := -ValueInf
	movesSearched := 0

	for {
		m, ok := pk.Next()
		if !ok {
			break
		}
		if !movegen.IsLegal(p, m) {
			continue
		}

		p.DoMove(m)
		s.nodes++
		movesSearched++

		var value Value
		if p.IsRepetition(1) || p.HalfmoveClock() >= 100 {
			value = ValueDraw
		} else {
			value = -s.negamax(p, depth-1, 1, -beta, -alpha, false)
		}

		p.UndoMove(m)

		if s.shouldStop() && depth > 1 {
			return bestValue
		}

		if value > bestValue {
			bestValue = value
			savePV(s, 0, m)
			if value > alpha {
				alpha = value
			}
		}

		if s.shouldStop() {
			break
		}
	}

	if movesSearched == 0 {
		return bestValue
	}

	bound := ValueTypeExact
	if bestValue >= beta {
		bound = ValueTypeLowerBound
	}
	s.tt.Store(p.ZobristKey(), int8(depth), bound, bestValue, pvMove(s, 0), 0)

	return bestValue
}

// negamax is the normal alpha-beta search below the root (ply > 0). It
// recurses until depth reaches zero, at which point it hands off to
// qsearch. lastWasNull reports whether the move leading to this node was
// itself a null move, so null-move pruning never fires twice in a row.
func (s *Search) negamax(p *position.Position, depth, ply int, alpha, beta Value, lastWasNull bool) Value {
	if s.nodes%stopPollInterval == 0 && s.shouldStop() {
		return ValueZero
	}

	if depth <= 0 || ply >= MaxPly {
		return s.qsearch(p, ply, alpha, beta)
	}

	// Mate distance pruning: a mate already found closer to the root makes
	// any longer mate in this subtree irrelevant.
	if alpha < MatedIn(ply) {
		alpha = MatedIn(ply)
	}
	if beta > MateIn(ply+1) {
		beta = MateIn(ply + 1)
	}
	if alpha >= beta {
		return alpha
	}

	alphaOrig := alpha
	isPV := beta-alpha > 1
	hasCheck := p.InCheck()
	us := p.SideToMove()

	ttMove := MoveNone
	if e, ok := s.tt.Probe(p.ZobristKey(), ply); ok {
		s.statistics.TTHits++
		ttMove = e.Move
		if int(e.Depth) >= depth {
			cut := false
			switch e.Bound {
			case ValueTypeExact:
				cut = true
			case ValueTypeLowerBound:
				cut = e.Score >= beta
			case ValueTypeUpperBound:
				cut = e.Score <= alpha
			}
			if cut {
				s.statistics.TTCuts++
				return e.Score
			}
		}
	} else {
		s.statistics.TTMisses++
	}

	if config.Settings.Search.UseRFP &&
		!isPV && !hasCheck && !beta.IsMateScore() &&
		depth <= config.Settings.Search.RfpMaxDepth {
		staticEval := s.evaluate(p)
		margin := Value(depth * config.Settings.Search.RfpMargin)
		if staticEval-margin >= beta {
			s.statistics.RfpPrunings++
			return staticEval - margin
		}
	}

	if config.Settings.Search.UseNullMove &&
		!isPV && !hasCheck && !lastWasNull &&
		depth >= config.Settings.Search.NmpMinDepth &&
		hasNonPawnMaterial(p, us) &&
		s.evaluate(p) >= beta {

		p.DoNullMove()
		s.nodes++
		reduced := depth - config.Settings.Search.NmpReduction - 1
		if reduced < 0 {
			reduced = 0
		}
		nullValue := -s.negamax(p, reduced, ply+1, -beta, -beta+1, true)
		p.UndoNullMove()

		if s.shouldStop() {
			return ValueZero
		}
		if nullValue >= beta {
			s.statistics.NullMoveCuts++
			return nullValue
		}
	}

	pk := picker.New(p, s.hist, ply, ttMove)
	bestValue := -ValueInf
	bestMove := MoveNone
	movesSearched := 0

	for {
		m, ok := pk.Next()
		if !ok {
			break
		}
		if !movegen.IsLegal(p, m) {
			continue
		}

		isQuiet := !m.Kind().IsCapture() && !m.Kind().IsPromotion()

		if config.Settings.Search.UseFutility &&
			!isPV && !hasCheck && isQuiet &&
			movesSearched > 0 &&
			depth <= config.Settings.Search.FutilityMaxDepth {
			staticEval := s.evaluate(p)
			margin := Value(depth * config.Settings.Search.FutilityMargin)
			if staticEval+margin <= alpha {
				s.statistics.FpPrunings++
				break
			}
		}

		movingType := p.PieceOn(m.From()).TypeOf()
		capturedType := PtNone
		if !isQuiet {
			if m.Kind() == EnPassantCapture {
				capturedType = Pawn
			} else {
				capturedType = p.PieceOn(m.To()).TypeOf()
			}
		}

		p.DoMove(m)
		s.nodes++
		movesSearched++

		var value Value
		if p.IsRepetition(1) || p.HalfmoveClock() >= 100 {
			value = ValueDraw
		} else {
			value = -s.negamax(p, depth-1, ply+1, -beta, -alpha, false)
		}

		p.UndoMove(m)

		if s.shouldStop() {
			return ValueZero
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
				savePV(s, ply, m)
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					bonus := int32(depth * depth)
					if isQuiet {
						s.hist.AddKiller(ply, m)
						s.hist.Update(us, m.From(), m.To(), bonus)
						s.hist.UpdatePieceTo(us, movingType, m.To(), bonus)
					} else {
						s.hist.UpdateCapture(us, movingType, m.To(), capturedType, bonus)
					}
					break
				}
			}
		}
	}

	if movesSearched == 0 {
		if hasCheck {
			s.statistics.Checkmates++
			return MatedIn(ply)
		}
		s.statistics.Stalemates++
		return ValueDraw
	}

	bound := ValueTypeExact
	switch {
	case bestValue <= alphaOrig:
		bound = ValueTypeUpperBound
	case bestValue >= beta:
		bound = ValueTypeLowerBound
	}
	s.tt.Store(p.ZobristKey(), int8(depth), bound, bestValue, bestMove, ply)

	return bestValue
}

// qsearch extends the search through captures only, to avoid misjudging
// a position in the middle of an exchange (the horizon effect).
func (s *Search) qsearch(p *position.Position, ply int, alpha, beta Value) Value {
	if s.nodes%stopPollInterval == 0 && s.shouldStop() {
		return ValueZero
	}
	if ply > s.statistics.CurrentSelDepth {
		s.statistics.CurrentSelDepth = ply
	}
	if ply >= MaxPly {
		return s.evaluate(p)
	}

	standPat := s.evaluate(p)
	if standPat >= beta {
		s.statistics.StandpatCuts++
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	ttMove := MoveNone
	if e, ok := s.tt.Probe(p.ZobristKey(), ply); ok {
		ttMove = e.Move
	}

	pk := picker.NewQuiescence(p, s.hist, ttMove)
	bestValue := standPat

	for {
		m, ok := pk.Next()
		if !ok {
			break
		}
		if !movegen.IsLegal(p, m) {
			continue
		}

		p.DoMove(m)
		s.nodes++
		value := -s.qsearch(p, ply+1, -beta, -alpha)
		p.UndoMove(m)

		if s.shouldStop() {
			return ValueZero
		}

		if value > bestValue {
			bestValue = value
			if value > alpha {
				alpha = value
				if value >= beta {
					break
				}
			}
		}
	}

	return bestValue
}

// evaluate returns eval.Evaluate(p); it does no bookkeeping of its own
// (nodes are counted by the callers).
func (s *Search) evaluate(p *position.Position) Value {
	return eval.Evaluate(p)
}

// hasNonPawnMaterial reports whether color c has any piece besides pawns
// and king, used to avoid null-move pruning in likely zugzwang endgames.
func hasNonPawnMaterial(p *position.Position, c Color) bool {
	for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
		if p.PiecesBb(c, pt) != BbZero {
			return true
		}
	}
	return false
}

// savePV records m as the best move at ply, followed by the continuation
// already found one ply deeper.
func savePV(s *Search, ply int, m Move) {
	line := make([]Move, 0, len(s.pv[ply+1])+1)
	line = append(line, m)
	line = append(line, s.pv[ply+1]...)
	s.pv[ply] = line
}

// pvMove returns the first move of ply's principal variation, or MoveNone.
func pvMove(s *Search, ply int) Move {
	if len(s.pv[ply]) == 0 {
		return MoveNone
	}
	return s.pv[ply][0]
}
