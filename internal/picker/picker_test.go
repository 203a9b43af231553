package picker

import (
	"testing"

	"github.com/sayurc/athena/internal/history"
	"github.com/sayurc/athena/internal/position"
	. "github.com/sayurc/athena/internal/types"
)

func TestTTMoveYieldedFirst(t *testing.T) {
	p := position.NewPosition()
	ttMove := NewMove(SqG1, SqF3, Quiet)
	pk := New(p, history.New(), 0, ttMove)

	m, ok := pk.Next()
	if !ok || m != ttMove {
		t.Fatalf("expected tt move first, got %s ok=%v", m, ok)
	}
}

func TestPickerYieldsEveryLegalMoveOnceFromStart(t *testing.T) {
	p := position.NewPosition()
	pk := New(p, history.New(), 0, MoveNone)

	seen := map[Move]int{}
	for {
		m, ok := pk.Next()
		if !ok {
			break
		}
		seen[m]++
	}
	if len(seen) != 20 {
		t.Fatalf("expected 20 distinct pseudo-legal moves from start, got %d", len(seen))
	}
	for m, count := range seen {
		if count != 1 {
			t.Fatalf("move %s yielded %d times, want exactly once", m, count)
		}
	}
}

func TestQuiescencePickerOnlyYieldsCaptures(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	pk := NewQuiescence(p, history.New(), MoveNone)
	for {
		m, ok := pk.Next()
		if !ok {
			break
		}
		if !m.Kind().IsCapture() {
			t.Fatalf("quiescence picker yielded a non-capture move %s", m)
		}
	}
}
