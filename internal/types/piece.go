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

import "strings"

// Piece combines a Color and a PieceType into the value stored on a
// mailbox board square.
type Piece uint8

// Piece constants. White pieces occupy 0-5, black pieces 6-11 mirroring
// PieceType's Pawn..King ordering; PieceNone marks an empty square.
const (
	WhitePawn   Piece = 0
	WhiteKnight Piece = 1
	WhiteBishop Piece = 2
	WhiteRook   Piece = 3
	WhiteQueen  Piece = 4
	WhiteKing   Piece = 5
	BlackPawn   Piece = 6
	BlackKnight Piece = 7
	BlackBishop Piece = 8
	BlackRook   Piece = 9
	BlackQueen  Piece = 10
	BlackKing   Piece = 11
	PieceNone   Piece = 12
	PieceLength       = 13
)

// MakePiece composes the piece for a color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*PtLength + int(pt))
}

// ColorOf returns the color of the piece. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	if p >= BlackPawn {
		return Black
	}
	return White
}

// TypeOf returns the piece type of the piece. Undefined for PieceNone.
func (p Piece) TypeOf() PieceType {
	return PieceType(int(p) % PtLength)
}

// PieceFromChar returns the Piece for a single FEN piece letter, or
// PieceNone if s is not exactly one recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	index := strings.IndexByte(pieceToChar, s[0])
	if index == -1 {
		return PieceNone
	}
	return Piece(index)
}

const pieceToChar = "PNBRQKpnbrqk"

// String returns the single FEN letter for the piece (uppercase for
// White, lowercase for Black), or "-" for PieceNone.
func (p Piece) String() string {
	if p >= PieceNone {
		return "-"
	}
	return string(pieceToChar[p])
}
