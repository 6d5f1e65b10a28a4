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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// every (from, to, flag) triple must survive the pack/unpack round trip.
func TestMoveRoundTrip(t *testing.T) {
	for from := SqA1; from <= SqH8; from++ {
		for to := SqA1; to <= SqH8; to++ {
			for flag := MoveFlag(0); flag < 16; flag++ {
				m := NewMove(from, to, flag)
				if m.From() != from || m.To() != to || m.Flag() != flag {
					t.Fatalf("round trip failed for from=%d to=%d flag=%d: got %d/%d/%d",
						from, to, flag, m.From(), m.To(), m.Flag())
				}
			}
		}
	}
}

func TestMoveFlags(t *testing.T) {
	tests := []struct {
		flag        MoveFlag
		isCapture   bool
		isPromotion bool
	}{
		{FlagQuiet, false, false},
		{FlagDoublePush, false, false},
		{FlagCastleKingside, false, false},
		{FlagCastleQueen, false, false},
		{FlagCapture, true, false},
		{FlagEnPassant, true, false},
		{FlagPromoN, false, true},
		{FlagPromoB, false, true},
		{FlagPromoR, false, true},
		{FlagPromoQ, false, true},
		{FlagCapturePromoN, true, true},
		{FlagCapturePromoB, true, true},
		{FlagCapturePromoR, true, true},
		{FlagCapturePromoQ, true, true},
	}
	for _, test := range tests {
		m := NewMove(SqE2, SqE4, test.flag)
		assert.Equal(t, test.isCapture, m.IsCapture(), "flag %04b capture", test.flag)
		assert.Equal(t, test.isPromotion, m.IsPromotion(), "flag %04b promotion", test.flag)
	}

	assert.True(t, NewMove(SqE1, SqG1, FlagCastleKingside).IsCastle())
	assert.True(t, NewMove(SqE1, SqC1, FlagCastleQueen).IsCastle())
	assert.False(t, NewMove(SqE2, SqE4, FlagQuiet).IsCastle())
	assert.True(t, NewMove(SqE5, SqD6, FlagEnPassant).IsEnPassant())
	assert.True(t, NewMove(SqE2, SqE4, FlagDoublePush).IsDoublePush())
}

func TestMovePromotionType(t *testing.T) {
	assert.Equal(t, Knight, NewMove(SqA7, SqA8, FlagPromoN).PromotionType())
	assert.Equal(t, Bishop, NewMove(SqA7, SqA8, FlagPromoB).PromotionType())
	assert.Equal(t, Rook, NewMove(SqA7, SqA8, FlagPromoR).PromotionType())
	assert.Equal(t, Queen, NewMove(SqA7, SqA8, FlagPromoQ).PromotionType())
	assert.Equal(t, Queen, NewMove(SqA7, SqB8, FlagCapturePromoQ).PromotionType())

	assert.Equal(t, FlagPromoR, PromotionFlag(Rook, false))
	assert.Equal(t, FlagCapturePromoN, PromotionFlag(Knight, true))
}

func TestMoveStr(t *testing.T) {
	assert.Equal(t, "e2e4", NewMove(SqE2, SqE4, FlagDoublePush).String())
	assert.Equal(t, "e7e5", NewMove(SqE7, SqE5, FlagDoublePush).String())
	assert.Equal(t, "e7e8q", NewMove(SqE7, SqE8, FlagPromoQ).String())
	assert.Equal(t, "a2b1n", NewMove(SqA2, SqB1, FlagCapturePromoN).String())
	assert.Equal(t, "e1g1", NewMove(SqE1, SqG1, FlagCastleKingside).String())
	assert.Equal(t, "0000", MoveNone.String())
}
