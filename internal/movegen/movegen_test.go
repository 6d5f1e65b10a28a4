//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/enginecore/internal/position"
	. "github.com/frankkopp/enginecore/internal/types"
)

func TestGenerateStartPosition(t *testing.T) {
	Init()
	pos := position.NewPosition()
	pseudo := GeneratePseudoLegalMoves(&pos)
	assert.Equal(t, 20, pseudo.Len(), "16 pawn moves and 4 knight moves")
	legal := GenerateLegalMoves(&pos)
	assert.Equal(t, 20, legal.Len())
}

func TestGenerateKiwipete(t *testing.T) {
	Init()
	pos, err := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	legal := GenerateLegalMoves(&pos)
	assert.Equal(t, 48, legal.Len())

	castles := 0
	legal.ForEach(func(m Move) {
		if m.IsCastle() {
			castles++
		}
	})
	assert.Equal(t, 2, castles, "white may castle both ways in kiwipete")
}

func TestGenerateEnPassant(t *testing.T) {
	Init()
	// pawns on e5 and c5 can both take the d5 pawn en passant
	pos, err := position.NewPositionFen("rnbqkbnr/pp2pppp/2p5/2PpP3/8/8/PP1P1PPP/RNBQKBNR w KQkq d6 0 4")
	assert.NoError(t, err)

	var eps []string
	GeneratePseudoLegalMoves(&pos).ForEach(func(m Move) {
		if m.IsEnPassant() {
			eps = append(eps, m.String())
		}
	})
	assert.ElementsMatch(t, []string{"e5d6", "c5d6"}, eps)
}

func TestGeneratePromotions(t *testing.T) {
	Init()
	// pawn on b7 can promote quietly on b8 or capture-promote on a8/c8
	pos, err := position.NewPositionFen("n1n5/1P6/8/8/8/8/8/k2K4 w - - 0 1")
	assert.NoError(t, err)

	quiet, capture := 0, 0
	GeneratePseudoLegalMoves(&pos).ForEach(func(m Move) {
		if !m.IsPromotion() {
			return
		}
		if m.IsCapture() {
			capture++
		} else {
			quiet++
		}
	})
	assert.Equal(t, 4, quiet, "four promotion pieces on b8")
	assert.Equal(t, 8, capture, "four promotion pieces each on a8 and c8")
}

func TestGenerateDoublePushOnlyFromHomeRank(t *testing.T) {
	Init()
	// the e3 pawn has already moved; only the home-rank pawns may double push
	pos, err := position.NewPositionFen("4k3/8/8/8/8/4P3/P7/4K3 w - - 0 1")
	assert.NoError(t, err)

	var doubles []string
	GeneratePseudoLegalMoves(&pos).ForEach(func(m Move) {
		if m.IsDoublePush() {
			doubles = append(doubles, m.String())
		}
	})
	assert.Equal(t, []string{"a2a4"}, doubles)
}

func TestGenerateBlackDoublePush(t *testing.T) {
	Init()
	pos, err := position.NewPositionFen("4k3/p7/8/8/8/8/8/4K3 b - - 0 1")
	assert.NoError(t, err)

	found := false
	GeneratePseudoLegalMoves(&pos).ForEach(func(m Move) {
		if m.IsDoublePush() {
			assert.Equal(t, "a7a5", m.String())
			found = true
		}
	})
	assert.True(t, found)
}

func TestLegalFilterRemovesPinnedPieceMoves(t *testing.T) {
	Init()
	// the e4 knight is pinned against the white king by the e8 rook
	pos, err := position.NewPositionFen("4r1k1/8/8/8/4N3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	legal := GenerateLegalMoves(&pos)
	legal.ForEach(func(m Move) {
		assert.NotEqual(t, SqE4, m.From(), "pinned knight must not move: %s", m)
	})
}

func TestHasLegalMove(t *testing.T) {
	Init()
	pos := position.NewPosition()
	assert.True(t, HasLegalMove(&pos))

	// fool's mate: white is checkmated, no legal move remains
	mate, err := position.NewPositionFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.NoError(t, err)
	assert.False(t, HasLegalMove(&mate))

	// stalemate: black to move has no legal move but is not in check
	stale, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	assert.False(t, HasLegalMove(&stale))
}
