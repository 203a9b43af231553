package eval

import (
	"testing"

	"github.com/sayurc/athena/internal/position"
)

func TestEvaluateStartPositionIsNearZero(t *testing.T) {
	p := position.NewPosition()
	score := Evaluate(p)
	if score < -30 || score > 30 {
		t.Fatalf("expected a roughly symmetric start position score, got %d", score)
	}
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	score := Evaluate(p)
	if score <= 0 {
		t.Fatalf("white up a rook should have a positive score, got %d", score)
	}
}

func TestEvaluateIsSideRelative(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	score := Evaluate(p)
	if score >= 0 {
		t.Fatalf("black to move, down a rook, should see a negative score, got %d", score)
	}
}
