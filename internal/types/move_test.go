package types

import "testing"

func TestMoveEncodeDecode(t *testing.T) {
	m := NewMove(SqE2, SqE4, DoublePawnPush)
	if m.From() != SqE2 || m.To() != SqE4 || m.Kind() != DoublePawnPush {
		t.Fatalf("roundtrip failed: %s", m)
	}
	if m.StringUci() != "e2e4" {
		t.Fatalf("expected e2e4, got %s", m.StringUci())
	}
}

func TestMovePromotionUci(t *testing.T) {
	m := NewMove(SqA7, SqA8, PromotionQueen)
	if m.StringUci() != "a7a8q" {
		t.Fatalf("expected a7a8q, got %s", m.StringUci())
	}
	m = NewMove(SqB7, SqA8, PromotionCaptureKnight)
	if m.StringUci() != "b7a8n" {
		t.Fatalf("expected b7a8n, got %s", m.StringUci())
	}
	if !m.Kind().IsCapture() || !m.Kind().IsPromotion() {
		t.Fatalf("expected capture+promotion kind")
	}
}

func TestMoveNoneIsInvalid(t *testing.T) {
	if MoveNone.IsValid() {
		t.Fatalf("MoveNone must not be valid")
	}
	if MoveNone.StringUci() != "" {
		t.Fatalf("null move must render as empty string")
	}
}
