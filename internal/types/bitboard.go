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

package types

import (
	"fmt"
	"math/bits"
	"strings"
	"sync"

	"github.com/frankkopp/enginecore/internal/util"
)

// Bitboard is a 64 bit unsigned int with 1 bit for each square on the board.
type Bitboard uint64

// Various constant bitboards.
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	FileABb Bitboard = 0x0101010101010101
	FileBBb Bitboard = FileABb << 1
	FileCBb Bitboard = FileABb << 2
	FileDBb Bitboard = FileABb << 3
	FileEBb Bitboard = FileABb << 4
	FileFBb Bitboard = FileABb << 5
	FileGBb Bitboard = FileABb << 6
	FileHBb Bitboard = FileABb << 7

	Rank1Bb Bitboard = 0xFF
	Rank2Bb Bitboard = Rank1Bb << (8 * 1)
	Rank3Bb Bitboard = Rank1Bb << (8 * 2)
	Rank4Bb Bitboard = Rank1Bb << (8 * 3)
	Rank5Bb Bitboard = Rank1Bb << (8 * 4)
	Rank6Bb Bitboard = Rank1Bb << (8 * 5)
	Rank7Bb Bitboard = Rank1Bb << (8 * 6)
	Rank8Bb Bitboard = Rank1Bb << (8 * 7)

	MsbMask   Bitboard = ^(Bitboard(1) << 63)
	Rank8Mask Bitboard = ^Rank8Bb
	FileAMask Bitboard = ^FileABb
	FileHMask Bitboard = ^FileHBb

	CenterFiles   Bitboard = FileDBb | FileEBb
	CenterRanks   Bitboard = Rank4Bb | Rank5Bb
	CenterSquares Bitboard = CenterFiles & CenterRanks
)

// Bb returns the Bitboard with exactly the bit for sq set, read from the
// pre computed square-to-bitboard array.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare sets the corresponding bit of the bitboard for the square.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bb()
}

// PushSquare sets the corresponding bit of the bitboard for the square.
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare removes the corresponding bit of the bitboard for the square.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bb()
}

// PopSquare removes the corresponding bit of the bitboard for the square.
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b = *b &^ s.Bb()
	return *b
}

// Has tests if a square (bit) is set.
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// ShiftBitboard shifts all bits of a bitboard in the given direction by one
// square, clearing the file that would otherwise wrap the board.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (Rank8Mask & b) << 8
	case East:
		return (MsbMask & b) << 1 & FileAMask
	case South:
		return b >> 8
	case West:
		return (b >> 1) & FileHMask
	case Northeast:
		return (Rank8Mask & b) << 9 & FileAMask
	case Southeast:
		return (b >> 7) & FileAMask
	case Southwest:
		return (b >> 9) & FileHMask
	case Northwest:
		return (b << 7) & FileHMask
	}
	return b
}

// Lsb returns the least significant bit of the 64-bit Bb, translated
// directly to the Square it represents. Returns SqNone for an empty board.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant bit of the 64-bit Bb, translated
// directly to the Square it represents. Returns SqNone for an empty board.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the Lsb square and removes it from the bitboard. b is
// modified in place.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b = *b & (*b - 1)
	return lsb
}

// PopCount returns the number of one bits ("population count") in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String returns a string representation of the 64 bits.
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", b)
}

// StringBoard returns a string representation of the Bb as an 8x8 board.
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			if (b & SquareOf(f, Rank8-r).Bb()) > 0 {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// StringGrouped returns a string representation of the 64 bits grouped in
// 8s, ordered Lsb to Msb (a1 b1 ... g8 h8).
func (b Bitboard) StringGrouped() string {
	var os strings.Builder
	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			os.WriteString(".")
		}
		if (b & (BbOne << i)) != 0 {
			os.WriteString("1")
		} else {
			os.WriteString("0")
		}
	}
	os.WriteString(fmt.Sprintf(" (%d)", b))
	return os.String()
}

// FileDistance returns the absolute distance in files between two files.
func FileDistance(f1 File, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute distance in ranks between two ranks.
func RankDistance(r1 Rank, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns the Chebyshev distance in squares between two
// squares.
func SquareDistance(s1 Square, s2 Square) int {
	if !s1.IsValid() || !s2.IsValid() || s1 == s2 {
		return 0
	}
	return squareDistance[s1][s2]
}

// GetAttacksBb returns a bitboard of all squares attacked by a piece of
// the given type pt (not Pawn) placed on sq. Sliding piece types route
// through the magic bitboard tables; Knight and King ignore occupied since
// their pre computed pseudo attacks already are the full attack set.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].attacks(occupied)
	case Rook:
		return rookMagics[sq].attacks(occupied)
	case Queen:
		return bishopMagics[sq].attacks(occupied) | rookMagics[sq].attacks(occupied)
	case Pawn:
		panic(fmt.Sprint("GetAttacksBb called with piece type Pawn, use GetPawnAttacks"))
	default:
		return pseudoAttacks[pt][sq]
	}
}

// GetPseudoAttacks returns the attack set of a piece type on sq as if the
// board were otherwise empty.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the two (or fewer, at the board edge) squares a
// pawn of color c on sq attacks diagonally.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// GetCastlingRights returns the CastlingRights bits affected whenever a
// piece moves onto or off of sq (the king and rook home squares).
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRights[sq]
}

// ////////////////////
// Private
// ////////////////////

var tablesOnce sync.Once

// Init lazily builds every pre computed lookup table, including the magic
// bitboard attack tables (the slowest part: it searches for a working
// magic multiplier for every rook and bishop square). Safe to call from
// multiple goroutines and repeatedly; the actual work runs exactly once.
// Every package that reads square, bitboard or magic lookups must call
// this before using them.
func Init() {
	tablesOnce.Do(initTables)
}

func initTables() {
	squareBitboardsPreCompute()
	rankFileBbPreCompute()
	castlingRightsPreCompute()
	squareDistancePreCompute()
	pseudoAttacksPreCompute()
	initMagicBitboards()
}

// helper arrays, populated once by Init.
var (
	// Internal pre computed square to bitboard array.
	sqBb [SqLength]Bitboard

	// Internal pre computed rank bitboard array, indexed by Rank.
	rankBb [8]Bitboard

	// Internal pre computed file bitboard array, indexed by File.
	fileBb [8]Bitboard

	// Internal pre computed index for quick square distance lookup.
	squareDistance [SqLength][SqLength]int

	// Internal Bb for pawn attacks, indexed by color then square.
	pawnAttacks [2][SqLength]Bitboard

	// Internal Bb for non-pawn attacks, indexed by piece type then square.
	pseudoAttacks [PtLength][SqLength]Bitboard

	// magic bitboards - rook attacks
	rookTable  []Bitboard
	rookMagics [SqLength]Magic

	// magic bitboards - bishop attacks
	bishopTable  []Bitboard
	bishopMagics [SqLength]Magic

	// array to store the CastlingRights affected by a move onto or off
	// of a given square
	castlingRights [SqLength]CastlingRights
)

func (sq Square) bitboard() Bitboard {
	return Bitboard(uint64(1) << sq)
}

func rankFileBbPreCompute() {
	for i := Rank1; i <= Rank8; i++ {
		rankBb[i] = Rank1Bb << (8 * i)
	}
	for i := FileA; i <= FileH; i++ {
		fileBb[i] = FileABb << i
	}
}

func castlingRightsPreCompute() {
	castlingRights[SqE1] = CastlingWhite
	castlingRights[SqA1] = CastlingWhiteOOO
	castlingRights[SqH1] = CastlingWhiteOO
	castlingRights[SqE8] = CastlingBlack
	castlingRights[SqA8] = CastlingBlackOOO
	castlingRights[SqH8] = CastlingBlackOO
}

func squareBitboardsPreCompute() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = sq.bitboard()
	}
}

// Distance between squares index.
func squareDistancePreCompute() {
	for sq1 := SqA1; sq1 <= SqH8; sq1++ {
		for sq2 := SqA1; sq2 <= SqH8; sq2++ {
			if sq1 != sq2 {
				squareDistance[sq1][sq2] =
					util.Max(FileDistance(sq1.FileOf(), sq2.FileOf()), RankDistance(sq1.RankOf(), sq2.RankOf()))
			}
		}
	}
}

// pre compute all possible attacked squares per color, piece and square
// for the non-sliding piece types (king, pawn, knight).
func pseudoAttacksPreCompute() {
	// Step deltas for one "half" of each piece's move set; the other half
	// comes from iterating both colors, whose sign flips the direction.
	var steps = [PtLength][]Direction{
		Pawn:   {Northwest, Northeast},
		Knight: {West + Northwest, East + Northeast, North + Northwest, North + Northeast},
		King:   {Northwest, North, Northeast, East},
	}

	for c := White; c <= Black; c++ {
		sign := 1
		if c == Black {
			sign = -1
		}
		for _, pt := range []PieceType{King, Pawn, Knight} {
			for s := SqA1; s <= SqH8; s++ {
				for i := 0; i < len(steps[pt]); i++ {
					to := Square(int(s) + sign*int(steps[pt][i]))
					if to.IsValid() && squareDistance[s][to] < 3 {
						if pt == Pawn {
							pawnAttacks[c][s] |= sqBb[to]
						} else {
							pseudoAttacks[pt][s] |= sqBb[to]
						}
					}
				}
			}
		}
	}

	for square := SqA1; square <= SqH8; square++ {
		pseudoAttacks[Bishop][square] = slidingAttack(BishopDirections, square, BbZero)
		pseudoAttacks[Rook][square] = slidingAttack(RookDirections, square, BbZero)
		pseudoAttacks[Queen][square] = pseudoAttacks[Bishop][square] | pseudoAttacks[Rook][square]
	}
}

func initMagicBitboards() {
	rookTable = make([]Bitboard, 0x19000, 0x19000)
	bishopTable = make([]Bitboard, 0x1480, 0x1480)

	initMagics(&rookTable, &rookMagics, RookDirections)
	initMagics(&bishopTable, &bishopMagics, BishopDirections)
}
