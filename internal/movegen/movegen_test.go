package movegen

import (
	"testing"

	"github.com/sayurc/athena/internal/moveslice"
	"github.com/sayurc/athena/internal/position"
	. "github.com/sayurc/athena/internal/types"
)

func TestStartPositionMoveCount(t *testing.T) {
	p := position.NewPosition()
	var ml moveslice.MoveSlice
	GenerateLegalMoves(p, &ml)
	if ml.Len() != 20 {
		t.Fatalf("expected 20 legal moves from start, got %d", ml.Len())
	}
}

func TestCastlingGeneratedWhenClear(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var ml moveslice.MoveSlice
	GenerateLegalMoves(p, &ml)
	want := NewMove(SqE1, SqG1, KingCastle)
	if !ml.Contains(want) {
		t.Fatalf("expected kingside castle among legal moves")
	}
}

func TestCastlingBlockedByCheck(t *testing.T) {
	// A black queen on f2 checks the white king and attacks f1 and g1,
	// so O-O must not be generated.
	p, err := position.NewPositionFen("r3k2r/8/8/8/8/8/5q2/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var ml moveslice.MoveSlice
	GenerateLegalMoves(p, &ml)
	blocked := NewMove(SqE1, SqG1, KingCastle)
	if ml.Contains(blocked) {
		t.Fatalf("castling through an attacked square must not be generated")
	}
}

func TestPromotionGeneratesFourKinds(t *testing.T) {
	p, err := position.NewPositionFen("8/P7/8/8/8/8/8/k6K w - - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var ml moveslice.MoveSlice
	GenerateMoves(p, &ml)
	kinds := map[MoveKind]bool{}
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.From() == SqA7 && m.To() == SqA8 {
			kinds[m.Kind()] = true
		}
	}
	for _, k := range []MoveKind{PromotionQueen, PromotionRook, PromotionBishop, PromotionKnight} {
		if !kinds[k] {
			t.Fatalf("missing promotion kind %s", k)
		}
	}
}

func TestEnPassantGenerated(t *testing.T) {
	p, err := position.NewPositionFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var ml moveslice.MoveSlice
	GenerateMoves(p, &ml)
	want := NewMove(SqE5, SqD6, EnPassantCapture)
	if !ml.Contains(want) {
		t.Fatalf("expected en passant capture to be generated")
	}
}

func TestGenerateCapturesOnlyReturnsCaptures(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var ml moveslice.MoveSlice
	GenerateCaptures(p, &ml)
	for i := 0; i < ml.Len(); i++ {
		if !ml.At(i).Kind().IsCapture() {
			t.Fatalf("GenerateCaptures produced a non-capture move %s", ml.At(i))
		}
	}
}
