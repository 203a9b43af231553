package tt

import (
	"testing"

	. "github.com/sayurc/athena/internal/types"
)

func TestStoreProbeRoundtrip(t *testing.T) {
	table := New(1)
	m := NewMove(SqE2, SqE4, DoublePawnPush)
	table.Store(0x1234, 6, ValueTypeExact, 55, m, 3)

	e, ok := table.Probe(0x1234, 3)
	if !ok {
		t.Fatalf("expected entry to be found")
	}
	if e.Score != 55 || e.Move != m || e.Depth != 6 || e.Bound != ValueTypeExact {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestProbeMissOnKeyMismatch(t *testing.T) {
	table := New(1)
	table.Store(0xAAAA, 4, ValueTypeExact, 0, MoveNone, 0)
	if _, ok := table.Probe(0xAAAA + uint64(table.Len()), 0); ok {
		// This key maps to the same slot as 0xAAAA; Probe must reject it
		// via the full-key check.
		t.Fatalf("probe should miss for a colliding key that was never stored")
	}
	if _, ok := table.Probe(0xBBBB, 0); ok {
		t.Fatalf("probe should miss for a key never stored")
	}
}

func TestMateScoreAdjustment(t *testing.T) {
	table := New(1)
	mateScore := ValueInf - 3 // root-relative score: mate 3 plies from the root
	table.Store(0x55, 10, ValueTypeExact, mateScore, MoveNone, 5)

	e, ok := table.Probe(0x55, 2)
	if !ok {
		t.Fatalf("expected entry")
	}
	// Stored at ply 5, retrieved at ply 2: mate distance should shrink by 3.
	if e.Score != mateScore+3 {
		t.Fatalf("expected adjusted mate score %d, got %d", mateScore+3, e.Score)
	}
}

func TestCapacityIsPrime(t *testing.T) {
	table := New(1)
	if !isPrime(table.Len()) {
		t.Fatalf("expected prime capacity, got %d", table.Len())
	}
}

func TestClearEmptiesTable(t *testing.T) {
	table := New(1)
	table.Store(0x99, 1, ValueTypeExact, 10, MoveNone, 0)
	table.Clear()
	if _, ok := table.Probe(0x99, 0); ok {
		t.Fatalf("expected table to be empty after Clear")
	}
}
