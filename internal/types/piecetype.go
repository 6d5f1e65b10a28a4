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

// PieceType enumerates the six kinds of chess piece. Discriminants are
// fixed and index all piece-type-keyed arrays directly.
type PieceType uint8

// PieceType constants.
const (
	Pawn     PieceType = 0
	Knight   PieceType = 1
	Bishop   PieceType = 2
	Rook     PieceType = 3
	Queen    PieceType = 4
	King     PieceType = 5
	PtNone   PieceType = 6
	PtLength           = 6
)

// IsValid reports whether pt is one of the six piece types.
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

// IsSlider reports whether the piece type slides along rays (bishop,
// rook, queen).
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

var pieceTypeToString = [PtLength]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns a full name for the piece type.
func (pt PieceType) String() string {
	if pt >= PtLength {
		return "None"
	}
	return pieceTypeToString[pt]
}

const pieceTypeToChar = "nbrqk"

// Char returns the single lowercase letter used in a promotion move's
// UCI notation. Only valid for Knight, Bishop, Rook, Queen, King.
func (pt PieceType) Char() string {
	if pt == Pawn || pt >= PtLength {
		return "-"
	}
	return string(pieceTypeToChar[pt-Knight])
}
