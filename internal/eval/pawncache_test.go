/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package eval

import (
	"testing"

	"github.com/sayurc/athena/internal/position"
	. "github.com/sayurc/athena/internal/types"
)

func TestCachedPawnStructureTermsMatchesDirect(t *testing.T) {
	p, err := position.NewPositionFen("4k3/pp3ppp/8/2p5/2P5/8/PP3PPP/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	wantWhite := pawnStructureTerm(p, White)
	wantBlack := pawnStructureTerm(p, Black)

	gotWhite, gotBlack := cachedPawnStructureTerms(p)
	if gotWhite != wantWhite || gotBlack != wantBlack {
		t.Fatalf("cache miss mismatch: got (%d,%d), want (%d,%d)", gotWhite, gotBlack, wantWhite, wantBlack)
	}

	gotWhite, gotBlack = cachedPawnStructureTerms(p)
	if gotWhite != wantWhite || gotBlack != wantBlack {
		t.Fatalf("cache hit mismatch: got (%d,%d), want (%d,%d)", gotWhite, gotBlack, wantWhite, wantBlack)
	}
}

func TestPawnHashKeyDependsOnBothSides(t *testing.T) {
	a := pawnHashKey(SqE2.Bb()|SqE4.Bb(), SqE7.Bb())
	b := pawnHashKey(SqE2.Bb()|SqE4.Bb(), SqD7.Bb())
	if a == b {
		t.Fatalf("expected different keys for different black pawn placement")
	}
}
