/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/enginecore/internal/types"
)

func TestPositionCreation(t *testing.T) {
	p, err := NewPositionFen(StartFen)
	assert.NoError(t, err)

	assert.Equal(t, SqA1.Bb()|SqH1.Bb()|SqA8.Bb()|SqH8.Bb(), p.pieces[White][Rook]|p.pieces[Black][Rook])
	assert.Equal(t, SqB1.Bb()|SqG1.Bb()|SqB8.Bb()|SqG8.Bb(), p.pieces[White][Knight]|p.pieces[Black][Knight])
	assert.Equal(t, SqC1.Bb()|SqF1.Bb()|SqC8.Bb()|SqF8.Bb(), p.pieces[White][Bishop]|p.pieces[Black][Bishop])
	assert.Equal(t, SqD1.Bb()|SqD8.Bb(), p.pieces[White][Queen]|p.pieces[Black][Queen])
	assert.Equal(t, SqE1.Bb()|SqE8.Bb(), p.pieces[White][King]|p.pieces[Black][King])
	assert.Equal(t, Rank2Bb|Rank7Bb, p.pieces[White][Pawn]|p.pieces[Black][Pawn])
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
	assert.Equal(t, StartFen, p.Fen())
}

func TestPositionCreationEnPassant(t *testing.T) {
	fen := "r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14"
	p, err := NewPositionFen(fen)
	assert.NoError(t, err)

	assert.Equal(t, Black, p.SideToMove())
	assert.Equal(t, CastlingBlack, p.CastlingRights())
	assert.Equal(t, SqE3, p.EnPassantSquare())
	assert.Equal(t, SqG1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
	assert.Equal(t, fen, p.Fen())
}

func TestPositionFenErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", "   "},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1"},
		{"unknown piece letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"rank overflow", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"rank underflow", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad side to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KXkq - 0 1"},
		{"bad en passant", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1"},
		{"bad halfmove clock", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewPositionFen(test.fen)
			assert.Error(t, err)
		})
	}
}

func TestPositionFenOptionalFields(t *testing.T) {
	// placement only: white to move, no castling rights, no en-passant square
	p, err := NewPositionFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	assert.NoError(t, err)
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingNone, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, 0, p.HalfMoveClock())
}

// assertInvariants checks the structural invariants every position
// produced by MakeMove must satisfy: pairwise disjoint piece sets,
// occupancy aggregates equal to the union of their components, exactly
// one king per color and no pawn on a back rank.
func assertInvariants(t *testing.T, p *Position) {
	t.Helper()
	all := BbZero
	for c := White; c <= Black; c++ {
		union := BbZero
		for pt := Pawn; pt < PtLength; pt++ {
			set := p.pieces[c][pt]
			assert.Equal(t, BbZero, all&set, "piece sets must be pairwise disjoint")
			all |= set
			union |= set
		}
		assert.Equal(t, union, p.occupancy[c], "occupancy[%s] must equal union of its piece sets", c)
		assert.Equal(t, 1, p.pieces[c][King].PopCount(), "exactly one %s king", c)
	}
	assert.Equal(t, p.occupancy[White]|p.occupancy[Black], p.OccupiedAll())
	assert.Equal(t, BbZero, (p.pieces[White][Pawn]|p.pieces[Black][Pawn])&(Rank1Bb|Rank8Bb),
		"no pawn on rank 1 or rank 8")

	// the mailbox must mirror the bitboards square by square
	for sq := SqA1; sq <= SqH8; sq++ {
		pc := p.board[sq]
		if pc == PieceNone {
			assert.False(t, p.OccupiedAll().Has(sq))
		} else {
			assert.True(t, p.pieces[pc.ColorOf()][pc.TypeOf()].Has(sq))
		}
	}
}

func TestMakeMoveDoublePushSetsEnPassant(t *testing.T) {
	p := NewPosition()
	next := p.MakeMove(NewMove(SqE2, SqE4, FlagDoublePush))

	assert.Equal(t, SqE3, next.EnPassantSquare())
	assert.Equal(t, Black, next.SideToMove())
	assert.True(t, next.PiecesBb(White, Pawn).Has(SqE4))
	assert.False(t, next.PiecesBb(White, Pawn).Has(SqE2))
	// the parent is untouched
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.True(t, p.PiecesBb(White, Pawn).Has(SqE2))
	assertInvariants(t, &next)

	// a quiet reply clears the en-passant square again
	after := next.MakeMove(NewMove(SqG8, SqF6, FlagQuiet))
	assert.Equal(t, SqNone, after.EnPassantSquare())
	assertInvariants(t, &after)
}

func TestMakeMoveEnPassantCapture(t *testing.T) {
	// white pawn e5, black just played d7d5: white may capture d5 en passant
	p, err := NewPositionFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)

	next := p.MakeMove(NewMove(SqE5, SqD6, FlagEnPassant))
	assert.True(t, next.PiecesBb(White, Pawn).Has(SqD6))
	assert.False(t, next.PiecesBb(Black, Pawn).Has(SqD5), "captured pawn sits behind the target square")
	assert.Equal(t, SqNone, next.EnPassantSquare())
	assert.Equal(t, 0, next.HalfMoveClock())
	assertInvariants(t, &next)
}

func TestMakeMoveCastling(t *testing.T) {
	p, err := NewPositionFen("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	oo := p.MakeMove(NewMove(SqE1, SqG1, FlagCastleKingside))
	assert.True(t, oo.PiecesBb(White, King).Has(SqG1))
	assert.True(t, oo.PiecesBb(White, Rook).Has(SqF1))
	assert.False(t, oo.PiecesBb(White, Rook).Has(SqH1))
	assert.False(t, oo.CastlingRights().Has(CastlingWhiteOO))
	assert.False(t, oo.CastlingRights().Has(CastlingWhiteOOO))
	assert.True(t, oo.CastlingRights().Has(CastlingBlack))
	assert.Equal(t, SqG1, oo.KingSquare(White))
	assertInvariants(t, &oo)

	ooo := p.MakeMove(NewMove(SqE1, SqC1, FlagCastleQueen))
	assert.True(t, ooo.PiecesBb(White, King).Has(SqC1))
	assert.True(t, ooo.PiecesBb(White, Rook).Has(SqD1))
	assert.False(t, ooo.PiecesBb(White, Rook).Has(SqA1))
	assert.Equal(t, CastlingBlack, ooo.CastlingRights())
	assertInvariants(t, &ooo)

	black := oo.MakeMove(NewMove(SqE8, SqC8, FlagCastleQueen))
	assert.True(t, black.PiecesBb(Black, Rook).Has(SqD8))
	assert.Equal(t, CastlingNone, black.CastlingRights())
	assertInvariants(t, &black)
}

func TestMakeMoveRookMovesClearRights(t *testing.T) {
	p, err := NewPositionFen("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	next := p.MakeMove(NewMove(SqH1, SqG1, FlagQuiet))
	assert.False(t, next.CastlingRights().Has(CastlingWhiteOO))
	assert.True(t, next.CastlingRights().Has(CastlingWhiteOOO))

	next = p.MakeMove(NewMove(SqA1, SqB1, FlagQuiet))
	assert.False(t, next.CastlingRights().Has(CastlingWhiteOOO))
	assert.True(t, next.CastlingRights().Has(CastlingWhiteOO))

	// king move clears both of the mover's rights
	next = p.MakeMove(NewMove(SqE1, SqD1, FlagQuiet))
	assert.Equal(t, CastlingBlack, next.CastlingRights())
}

func TestMakeMoveCapturedRookClearsRights(t *testing.T) {
	// white rook takes the rook on h8; black loses kingside castling
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	next := p.MakeMove(NewMove(SqH1, SqH8, FlagCapture))
	assert.False(t, next.CastlingRights().Has(CastlingBlackOO))
	assert.True(t, next.CastlingRights().Has(CastlingBlackOOO))
	// the capturing rook left h1, so white's own kingside right is gone too
	assert.False(t, next.CastlingRights().Has(CastlingWhiteOO))
	assert.Equal(t, 0, next.HalfMoveClock())
	assertInvariants(t, &next)
}

func TestMakeMovePromotion(t *testing.T) {
	p, err := NewPositionFen("2n1k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	quiet := p.MakeMove(NewMove(SqB7, SqB8, FlagPromoQ))
	assert.True(t, quiet.PiecesBb(White, Queen).Has(SqB8))
	assert.Equal(t, BbZero, quiet.PiecesBb(White, Pawn))
	assertInvariants(t, &quiet)

	capture := p.MakeMove(NewMove(SqB7, SqC8, FlagCapturePromoN))
	assert.True(t, capture.PiecesBb(White, Knight).Has(SqC8))
	assert.Equal(t, BbZero, capture.PiecesBb(Black, Knight))
	assert.Equal(t, BbZero, capture.PiecesBb(White, Pawn))
	assertInvariants(t, &capture)
}

func TestMakeMoveHalfMoveClock(t *testing.T) {
	p := NewPosition()
	next := p.MakeMove(NewMove(SqG1, SqF3, FlagQuiet))
	assert.Equal(t, 1, next.HalfMoveClock())
	next = next.MakeMove(NewMove(SqB8, SqC6, FlagQuiet))
	assert.Equal(t, 2, next.HalfMoveClock())
	next = next.MakeMove(NewMove(SqE2, SqE4, FlagDoublePush))
	assert.Equal(t, 0, next.HalfMoveClock(), "pawn move resets the clock")
}

func TestIsSquareAttacked(t *testing.T) {
	p, err := NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	// pawn attacks
	assert.True(t, p.IsSquareAttacked(SqE6, White))
	assert.True(t, p.IsSquareAttacked(SqA3, Black))
	// knight
	assert.True(t, p.IsSquareAttacked(SqG6, White))
	// slider through the open file/diagonal, blocked beyond
	assert.True(t, p.IsSquareAttacked(SqH3, White))
	assert.False(t, p.IsSquareAttacked(SqB4, White))
	// king adjacency
	assert.True(t, p.IsSquareAttacked(SqD1, White))
	assert.False(t, p.IsSquareAttacked(SqD1, Black))
}

func TestPositionValueSemantics(t *testing.T) {
	p := NewPosition()
	q := p
	next := q.MakeMove(NewMove(SqE2, SqE4, FlagDoublePush))
	// neither the copy nor the original observed any mutation
	assert.Equal(t, p.Fen(), q.Fen())
	assert.NotEqual(t, p.Fen(), next.Fen())
}
