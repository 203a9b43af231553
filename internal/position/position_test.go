package position

import (
	"testing"

	. "github.com/sayurc/athena/internal/types"
)

func TestStartPositionFen(t *testing.T) {
	p := NewPosition()
	if p.Fen() != StartFen {
		t.Fatalf("expected %q, got %q", StartFen, p.Fen())
	}
	if p.SideToMove() != White {
		t.Fatalf("expected white to move")
	}
	if p.CastlingRights() != CastlingAny {
		t.Fatalf("expected all castling rights available")
	}
}

func TestFenRoundtrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		if err != nil {
			t.Fatalf("parse %q: %v", fen, err)
		}
		if got := p.Fen(); got != fen {
			t.Fatalf("roundtrip mismatch: want %q got %q", fen, got)
		}
	}
}

func TestPieceBitboardConsistency(t *testing.T) {
	p := NewPosition()
	for sq := SqA1; sq < Square(SqLength); sq++ {
		pc := p.PieceOn(sq)
		if pc == PieceNone {
			if p.OccupiedBb().Has(sq) {
				t.Fatalf("square %s marked occupied but empty on mailbox", sq)
			}
			continue
		}
		if !p.PiecesBb(pc.ColorOf(), pc.TypeOf()).Has(sq) {
			t.Fatalf("square %s: mailbox/bitboard mismatch for %s", sq, pc)
		}
		if !p.ColorBb(pc.ColorOf()).Has(sq) {
			t.Fatalf("square %s: color bitboard missing piece", sq)
		}
	}
}

func TestDoUndoMoveRestoresKey(t *testing.T) {
	p := NewPosition()
	before := p.ZobristKey()
	beforeFen := p.Fen()

	m := NewMove(SqE2, SqE4, DoublePawnPush)
	p.DoMove(m)
	if p.ZobristKey() == before {
		t.Fatalf("key did not change after move")
	}
	p.UndoMove(m)

	if p.ZobristKey() != before {
		t.Fatalf("key not restored: want %016x got %016x", before, p.ZobristKey())
	}
	if p.Fen() != beforeFen {
		t.Fatalf("fen not restored: want %q got %q", beforeFen, p.Fen())
	}
}

func TestEnPassantCaptureRoundtrip(t *testing.T) {
	p, err := NewPositionFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	before := p.Fen()
	m := NewMove(SqE5, SqD6, EnPassantCapture)
	p.DoMove(m)
	if p.PieceOn(SqD5) != PieceNone {
		t.Fatalf("captured pawn still present on d5")
	}
	if p.PieceOn(SqD6).TypeOf() != Pawn {
		t.Fatalf("expected pawn on d6 after capture")
	}
	p.UndoMove(m)
	if p.Fen() != before {
		t.Fatalf("fen not restored after ep undo: want %q got %q", before, p.Fen())
	}
}

func TestCastlingRightsLostOnRookCapture(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := NewMove(SqA1, SqA8, Capture)
	p.DoMove(m)
	if p.CastlingRights().Has(CastlingBlackQueen) {
		t.Fatalf("black queenside rights should be lost once the rook is captured")
	}
	if !p.CastlingRights().Has(CastlingWhiteKing) {
		t.Fatalf("white kingside rights should survive an unrelated capture")
	}
}

func TestIsRepetitionDetectsThreefold(t *testing.T) {
	p := NewPosition()
	moves := []Move{
		NewMove(SqG1, SqF3, Quiet),
		NewMove(SqG8, SqF6, Quiet),
		NewMove(SqF3, SqG1, Quiet),
		NewMove(SqF6, SqG8, Quiet),
	}
	if p.IsRepetition(2) {
		t.Fatalf("start position should not be a repetition")
	}
	for cycle := 0; cycle < 2; cycle++ {
		for _, m := range moves {
			p.DoMove(m)
		}
	}
	if !p.IsRepetition(2) {
		t.Fatalf("expected position to have repeated after two round trips")
	}
}

func TestIsRepetitionDetectsTwofold(t *testing.T) {
	p := NewPosition()
	moves := []Move{
		NewMove(SqG1, SqF3, Quiet),
		NewMove(SqG8, SqF6, Quiet),
		NewMove(SqF3, SqG1, Quiet),
		NewMove(SqF6, SqG8, Quiet),
	}
	for _, m := range moves {
		p.DoMove(m)
	}
	if !p.IsRepetition(1) {
		t.Fatalf("expected a single round trip back to the start position to already count as a repetition")
	}
}

func TestKingCastleUpdatesBothPieces(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := NewMove(SqE1, SqG1, KingCastle)
	p.DoMove(m)
	if p.PieceOn(SqG1).TypeOf() != King || p.PieceOn(SqF1).TypeOf() != Rook {
		t.Fatalf("expected king on g1 and rook on f1 after castling")
	}
	if p.CastlingRights().Has(CastlingWhiteKing) || p.CastlingRights().Has(CastlingWhiteQueen) {
		t.Fatalf("white should lose both castling rights after castling")
	}
}
