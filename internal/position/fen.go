/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/sayurc/athena/internal/types"
)

// NewPositionFen parses a Forsyth-Edwards Notation string into a fresh
// Position. It rejects malformed input but does not validate full legal
// position reachability (e.g. it accepts positions with two kings of the
// same color only if the mailbox itself is consistent).
func NewPositionFen(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("position: fen %q: need at least 4 fields, got %d", fen, len(fields))
	}

	p := &Position{}
	p.clear()

	if err := p.setBoard(fields[0]); err != nil {
		return nil, fmt.Errorf("position: fen %q: %w", fen, err)
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, fmt.Errorf("position: fen %q: bad side to move %q", fen, fields[1])
	}

	cr, err := parseCastlingRights(fields[2])
	if err != nil {
		return nil, fmt.Errorf("position: fen %q: %w", fen, err)
	}
	p.castlingRights = cr

	p.enPassant = SqNone
	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if !sq.IsValid() {
			return nil, fmt.Errorf("position: fen %q: bad en passant square %q", fen, fields[3])
		}
		if p.enPassantIsRelevant(sq) {
			p.enPassant = sq
		}
	}

	p.halfmoveClock = 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("position: fen %q: bad halfmove clock %q", fen, fields[4])
		}
		p.halfmoveClock = n
	}

	p.fullmoveNumber = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("position: fen %q: bad fullmove number %q", fen, fields[5])
		}
		p.fullmoveNumber = n
	}

	// The parsed position is the first entry of keyHistory, so returning to
	// it counts as a repetition.
	p.keyHistory = append(p.keyHistory, p.ZobristKey())

	return p, nil
}

// enPassantIsRelevant reports whether a pawn of the side to move
// actually attacks the candidate en-passant square; a FEN target square
// that no pawn can capture towards is not stored, since it would pollute
// the Zobrist key with a distinction that carries no game-tree meaning.
func (p *Position) enPassantIsRelevant(sq Square) bool {
	pawns := p.pieces[p.sideToMove][Pawn]
	var from1, from2 Square
	if p.sideToMove == White {
		from1, from2 = sq.To(Southeast), sq.To(Southwest)
	} else {
		from1, from2 = sq.To(Northeast), sq.To(Northwest)
	}
	return (from1.IsValid() && pawns.Has(from1)) || (from2.IsValid() && pawns.Has(from2))
}

// setBoard parses the piece-placement field of a FEN string.
func (p *Position) setBoard(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != RankLength {
		return fmt.Errorf("expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		r := Rank(RankLength - 1 - i)
		f := FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			if f >= File(FileLength) {
				return fmt.Errorf("rank %s overflows", r)
			}
			pc := PieceFromChar(string(ch))
			if pc == PieceNone {
				return fmt.Errorf("rank %s: bad piece letter %q", r, ch)
			}
			p.putPiece(pc, SquareOf(f, r))
			f++
		}
		if f != File(FileLength) {
			return fmt.Errorf("rank %s has wrong square count", r)
		}
	}
	return nil
}

// parseCastlingRights parses the castling-availability field of a FEN
// string (Shredder/X-FEN file letters are not supported, matching the
// standard-chess-only scope of this engine).
func parseCastlingRights(field string) (CastlingRights, error) {
	if field == "-" {
		return CastlingNone, nil
	}
	var cr CastlingRights
	for _, ch := range field {
		switch ch {
		case 'K':
			cr |= CastlingWhiteKing
		case 'Q':
			cr |= CastlingWhiteQueen
		case 'k':
			cr |= CastlingBlackKing
		case 'q':
			cr |= CastlingBlackQueen
		default:
			return CastlingNone, fmt.Errorf("bad castling rights char %q", ch)
		}
	}
	return cr, nil
}

// Fen renders the position back into Forsyth-Edwards Notation.
func (p *Position) Fen() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f < File(FileLength); f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteString(pc.Char())
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
		if r == Rank1 {
			break
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())

	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())

	sb.WriteByte(' ')
	if p.enPassant == SqNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.enPassant.String())
	}

	fmt.Fprintf(&sb, " %d %d", p.halfmoveClock, p.fullmoveNumber)
	return sb.String()
}
