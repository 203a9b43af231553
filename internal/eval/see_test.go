package eval

import (
	"testing"

	"github.com/sayurc/athena/internal/position"
	. "github.com/sayurc/athena/internal/types"
)

func TestWinsExchangeScenarios(t *testing.T) {
	cases := []struct {
		fen       string
		from, to  Square
		threshold int
		want      bool
	}{
		{"8/1B6/8/8/4Pk2/2n5/8/7K b - - 0 1", SqC3, SqE4, 0, true},
		{"8/1B6/8/8/4Pk2/2n5/8/4R2K b - - 0 1", SqC3, SqE4, 0, false},
		{"r1bq1rk1/n1p1pp1p/p2p2p1/3P4/PN2n3/3BBN1P/1bP2PP1/R2Q1RK1 b - - 1 13", SqB2, SqA1, 0, true},
	}

	for _, c := range cases {
		p, err := position.NewPositionFen(c.fen)
		if err != nil {
			t.Fatalf("parse %q: %v", c.fen, err)
		}
		m := NewMove(c.from, c.to, Capture)
		got := WinsExchange(p, m, c.threshold)
		if got != c.want {
			t.Errorf("WinsExchange(%s, %s%s, %d) = %v, want %v", c.fen, c.from, c.to, c.threshold, got, c.want)
		}
	}
}

func TestWinsExchangeMonotoneInThreshold(t *testing.T) {
	p, err := position.NewPositionFen("8/1B6/8/8/4Pk2/2n5/8/7K b - - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := NewMove(SqC3, SqE4, Capture)
	if WinsExchange(p, m, 1000) {
		t.Fatalf("should not win exchange with an absurdly high threshold")
	}
	if !WinsExchange(p, m, -1000) {
		t.Fatalf("should win exchange with a very low threshold")
	}
}
