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

// Move is a 16-bit packed chess move.
//  BITMAP 16-bit
//  |-flag-|--from--|---to---|
//  1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  -------------------------------
//                    1 1 1 1 1 1  to
//          1 1 1 1 1 1              from
//  1 1 1 1                          flag
type Move uint16

// MoveFlag is the 4-bit move-kind tag packed into a Move.
type MoveFlag uint8

// Move flag constants, per the fixed encoding table.
const (
	FlagQuiet          MoveFlag = 0b0000
	FlagDoublePush     MoveFlag = 0b0001
	FlagCastleKingside MoveFlag = 0b0010
	FlagCastleQueen    MoveFlag = 0b0011
	FlagCapture        MoveFlag = 0b0100
	FlagEnPassant      MoveFlag = 0b0101
	FlagPromoN         MoveFlag = 0b1000
	FlagPromoB         MoveFlag = 0b1001
	FlagPromoR         MoveFlag = 0b1010
	FlagPromoQ         MoveFlag = 0b1011
	FlagCapturePromoN  MoveFlag = 0b1100
	FlagCapturePromoB  MoveFlag = 0b1101
	FlagCapturePromoR  MoveFlag = 0b1110
	FlagCapturePromoQ  MoveFlag = 0b1111

	flagIsPromotion MoveFlag = 0b1000
	flagIsCapture   MoveFlag = 0b0100

	toShift   = 0
	fromShift = 6
	flagShift = 12

	toMask   Move = 0x3F
	fromMask Move = 0x3F << fromShift
	flagMask Move = 0xF << flagShift
)

// MoveNone is the zero value, never a legal move (a1a1 quiet).
const MoveNone Move = 0

// MaxMoves is a safe upper bound on the number of pseudo-legal moves
// in any single chess position (the true maximum is 218), used to
// size move list capacities up front and avoid reallocation.
const MaxMoves = 256

// NewMove packs a (from, to, flag) triple into a Move.
func NewMove(from Square, to Square, flag MoveFlag) Move {
	return Move(to)<<toShift | Move(from)<<fromShift | Move(flag)<<flagShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// Flag returns the move-kind flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag((m & flagMask) >> flagShift)
}

// IsCapture reports whether the move removes an enemy piece, including
// en-passant and capture-promotions.
func (m Move) IsCapture() bool {
	return m.Flag()&flagIsCapture != 0
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag()&flagIsPromotion != 0
}

// IsCastle reports whether the move is a king- or queenside castle.
func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagCastleKingside || f == FlagCastleQueen
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// IsDoublePush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePush() bool {
	return m.Flag() == FlagDoublePush
}

// PromotionType decodes the promoted-to piece type from the flag's
// low two bits. Only meaningful when IsPromotion is true.
func (m Move) PromotionType() PieceType {
	switch m.Flag() & 0b0011 {
	case 0b00:
		return Knight
	case 0b01:
		return Bishop
	case 0b10:
		return Rook
	default:
		return Queen
	}
}

var promoFlagByType = map[PieceType][2]MoveFlag{
	Knight: {FlagPromoN, FlagCapturePromoN},
	Bishop: {FlagPromoB, FlagCapturePromoB},
	Rook:   {FlagPromoR, FlagCapturePromoR},
	Queen:  {FlagPromoQ, FlagCapturePromoQ},
}

// PromotionFlag returns the quiet or capturing promotion flag for pt.
func PromotionFlag(pt PieceType, capture bool) MoveFlag {
	pair := promoFlagByType[pt]
	if capture {
		return pair[1]
	}
	return pair[0]
}

// IsValid reports whether a non-MoveNone move has valid squares.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid()
}

// String returns the UCI notation for the move, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.IsPromotion() {
		b.WriteString(m.PromotionType().Char())
	}
	return b.String()
}
