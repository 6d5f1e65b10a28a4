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
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPopCount(t *testing.T) {
	tests := []struct {
		value    Bitboard
		expected int
	}{
		{BbZero, 0},
		{BbAll, 64},
		{BbOne, 1},
		{Bitboard(128), 1},
		{Bitboard(7), 3},
		{FileABb, 8},
		{Rank8Bb, 8},
	}
	for _, test := range tests {
		got := test.value.PopCount()
		if got != test.expected {
			t.Errorf("Bit count of %d should be %d. Got %d", test.value, test.expected, got)
		}
		assert.Equal(t, bits.OnesCount64(uint64(test.value)), got)
	}
}

func TestBitboardPushPop(t *testing.T) {
	Init()
	tests := []struct {
		value    Bitboard
		expected Bitboard
	}{
		{PushSquare(BbZero, SqA1), BbOne},
		{PushSquare(BbZero, SqH8), BbOne << 63},
		{PushSquare(BbZero, SqE4), BbOne << 28},
		{PopSquare(PushSquare(BbZero, SqE4), SqE4), BbZero},
		{PopSquare(BbZero, SqA1), BbZero},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.value)
	}

	b := BbZero
	b.PushSquare(SqC3)
	b.PushSquare(SqC3)
	assert.Equal(t, 1, b.PopCount())
	assert.True(t, b.Has(SqC3))
	b.PopSquare(SqC3)
	assert.Equal(t, BbZero, b)
}

func TestBitboardLsbMsb(t *testing.T) {
	Init()
	tests := []struct {
		value Bitboard
		lsb   Square
		msb   Square
	}{
		{BbOne, SqA1, SqA1},
		{SqH8.Bb(), SqH8, SqH8},
		{SqE4.Bb() | SqD5.Bb(), SqE4, SqD5},
		{FileABb, SqA1, SqA8},
		{Rank8Bb, SqA8, SqH8},
	}
	for _, test := range tests {
		assert.Equal(t, test.lsb, test.value.Lsb())
		assert.Equal(t, test.msb, test.value.Msb())
	}
	assert.Equal(t, SqNone, BbZero.Lsb())
	assert.Equal(t, SqNone, BbZero.Msb())
}

// PopLsb on a non-empty set yields a square whose bit was set, decrements
// the count by exactly one, and repeated popping visits every set square
// exactly once in ascending order.
func TestBitboardPopLsb(t *testing.T) {
	Init()
	b := SqB2.Bb() | SqE4.Bb() | SqH8.Bb() | SqA1.Bb()
	want := []Square{SqA1, SqB2, SqE4, SqH8}

	var visited []Square
	for b != BbZero {
		before := b
		count := b.PopCount()
		sq := b.PopLsb()
		assert.True(t, before.Has(sq))
		assert.False(t, b.Has(sq))
		assert.Equal(t, count-1, b.PopCount())
		visited = append(visited, sq)
	}
	assert.Equal(t, want, visited)

	empty := BbZero
	assert.Equal(t, SqNone, empty.PopLsb())
	assert.Equal(t, BbZero, empty)
}

func TestShiftBitboard(t *testing.T) {
	Init()
	tests := []struct {
		start    Bitboard
		dir      Direction
		expected Bitboard
	}{
		{SqE4.Bb(), North, SqE5.Bb()},
		{SqE4.Bb(), South, SqE3.Bb()},
		{SqE4.Bb(), East, SqF4.Bb()},
		{SqE4.Bb(), West, SqD4.Bb()},
		{SqE4.Bb(), Northeast, SqF5.Bb()},
		{SqE4.Bb(), Southeast, SqF3.Bb()},
		{SqE4.Bb(), Southwest, SqD3.Bb()},
		{SqE4.Bb(), Northwest, SqD5.Bb()},
		// wrapping off the board must clear, not wrap around
		{SqH4.Bb(), East, BbZero},
		{SqA4.Bb(), West, BbZero},
		{SqE8.Bb(), North, BbZero},
		{SqE1.Bb(), South, BbZero},
		{SqH8.Bb(), Northeast, BbZero},
		{SqA1.Bb(), Southwest, BbZero},
		{SqA8.Bb(), Northwest, BbZero},
		{SqH1.Bb(), Southeast, BbZero},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, ShiftBitboard(test.start, test.dir),
			"shift %s %s", test.start.StringGrouped(), test.dir)
	}

	// whole-set shift: all of rank 2 pushed north lands on rank 3
	assert.Equal(t, Rank3Bb, ShiftBitboard(Rank2Bb, North))
}

func TestSquareDistances(t *testing.T) {
	Init()
	assert.Equal(t, 0, SquareDistance(SqE4, SqE4))
	assert.Equal(t, 1, SquareDistance(SqE4, SqE5))
	assert.Equal(t, 1, SquareDistance(SqE4, SqD5))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 7, SquareDistance(SqA8, SqH1))
	assert.Equal(t, 3, FileDistance(FileA, FileD))
	assert.Equal(t, 5, RankDistance(Rank7, Rank2))
}

func TestPawnAttacks(t *testing.T) {
	Init()
	assert.Equal(t, SqD3.Bb()|SqF3.Bb(), GetPawnAttacks(White, SqE2))
	assert.Equal(t, SqD6.Bb()|SqF6.Bb(), GetPawnAttacks(Black, SqE7))
	// edge pawns only attack one square
	assert.Equal(t, SqB3.Bb(), GetPawnAttacks(White, SqA2))
	assert.Equal(t, SqG6.Bb(), GetPawnAttacks(Black, SqH7))
}
