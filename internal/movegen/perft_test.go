package movegen

import (
	"testing"

	"github.com/sayurc/athena/internal/position"
)

// The four published perft positions and node counts the move generator
// must reproduce exactly.
var perftCases = []struct {
	fen   string
	depth int
	nodes uint64
}{
	{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 5, 4865609},
	{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4085603},
	{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 6, 11030083},
	{"r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1", 5, 15833292},
}

func TestPerft(t *testing.T) {
	if testing.Short() {
		t.Skip("perft is expensive; skipped with -short")
	}
	for _, tc := range perftCases {
		p, err := position.NewPositionFen(tc.fen)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.fen, err)
		}
		got := Perft(p, tc.depth)
		if got != tc.nodes {
			t.Errorf("perft(%q, %d) = %d, want %d", tc.fen, tc.depth, got, tc.nodes)
		}
	}
}

func TestPerftShallow(t *testing.T) {
	p := position.NewPosition()
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		if got := Perft(p, c.depth); got != c.nodes {
			t.Errorf("perft(start, %d) = %d, want %d", c.depth, got, c.nodes)
		}
	}
}
