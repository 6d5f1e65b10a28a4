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

// Package movelist provides the fixed-capacity move container the move
// generator fills each ply: a plain array sized for the worst case
// (218 legal moves in any standard chess position, rounded up to
// types.MaxMoves) plus a count, so generating a ply's moves never
// allocates.
package movelist

import (
	"strings"

	. "github.com/frankkopp/enginecore/internal/types"
)

// MoveList is a bounded stack of up to MaxMoves moves. The zero value
// is an empty, ready-to-use list.
type MoveList struct {
	moves [MaxMoves]Move
	count int
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int {
	return ml.count
}

// Clear empties the list without releasing the backing array.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// PushBack appends m. Panics if the list is already at MaxMoves, which
// would indicate a move-generation bug since no legal chess position
// has that many pseudo-legal moves.
func (ml *MoveList) PushBack(m Move) {
	if ml.count >= MaxMoves {
		panic("movelist: capacity exceeded")
	}
	ml.moves[ml.count] = m
	ml.count++
}

// At returns the move at index i, which must be in [0, Len()).
func (ml *MoveList) At(i int) Move {
	return ml.moves[i]
}

// Set overwrites the move at index i, which must be in [0, Len()).
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// ForEach calls fn for every move currently stored, in insertion order.
func (ml *MoveList) ForEach(fn func(Move)) {
	for i := 0; i < ml.count; i++ {
		fn(ml.moves[i])
	}
}

// String renders the list as a space-separated sequence of UCI move
// strings, e.g. "e2e4 d2d4 g1f3".
func (ml *MoveList) String() string {
	var b strings.Builder
	for i := 0; i < ml.count; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ml.moves[i].String())
	}
	return b.String()
}
