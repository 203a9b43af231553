package types

import "testing"

func TestBitboardBasics(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqE4)
	if !b.Has(SqE4) {
		t.Fatalf("expected E4 set")
	}
	if b.PopCount() != 1 {
		t.Fatalf("expected popcount 1, got %d", b.PopCount())
	}
	if b.Lsb() != SqE4 {
		t.Fatalf("expected lsb E4, got %s", b.Lsb())
	}
	b.PopSquare(SqE4)
	if b != BbZero {
		t.Fatalf("expected empty bitboard after pop")
	}
}

func TestPopLsb(t *testing.T) {
	b := SqA1.Bb() | SqH8.Bb()
	first := b.PopLsb()
	if first != SqA1 {
		t.Fatalf("expected A1 first, got %s", first)
	}
	second := b.PopLsb()
	if second != SqH8 {
		t.Fatalf("expected H8 second, got %s", second)
	}
	if b != BbZero {
		t.Fatalf("expected bitboard drained")
	}
}

func TestShiftBitboardWraparound(t *testing.T) {
	b := SqH4.Bb()
	if ShiftBitboard(b, East) != BbZero {
		t.Fatalf("east shift off file H must vanish, not wrap")
	}
	b = SqA4.Bb()
	if ShiftBitboard(b, West) != BbZero {
		t.Fatalf("west shift off file A must vanish, not wrap")
	}
	b = SqE4.Bb()
	if ShiftBitboard(b, North) != SqE5.Bb() {
		t.Fatalf("expected north shift of E4 to be E5")
	}
}

func TestSquareDistance(t *testing.T) {
	if SquareDistance(SqA1, SqH8) != 7 {
		t.Fatalf("expected distance 7, got %d", SquareDistance(SqA1, SqH8))
	}
	if SquareDistance(SqA1, SqA1) != 0 {
		t.Fatalf("expected distance 0")
	}
}
