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

// Magic holds the fancy magic bitboard data for a single square: the
// relevant occupancy mask, the magic multiplier, the shift, and the slice
// of this square's share of the shared rook/bishop attacks table.
// Algorithm taken from Stockfish, see https://stockfishchess.org/about/
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// attacks looks up the sliding attack set for this square given the
// current board occupancy, via the multiply-shift magic index.
func (m *Magic) attacks(occupied Bitboard) Bitboard {
	return m.Attacks[m.index(occupied)]
}

// index computes the table index for occupied via the magic multiply-shift
// perfect hash:
//  occ      &= m.Mask
//  occ      *= m.Magic
//  occ     >>= m.Shift
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

// initMagics computes the magic numbers and fills in the attacks table for
// all 64 squares for one piece type (rook or bishop), identified by its
// four ray directions. Taken from Stockfish.
func initMagics(table *[]Bitboard, magics *[64]Magic, directions [4]Direction) {
	// Optimal PrnG seeds to pick the correct magics in the shortest time,
	// indexed by rank.
	seeds := [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	var edges, b Bitboard
	cnt := 0
	size := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		// Board edges are never relevant occupancy bits: a slider's ray
		// always stops there regardless of what else occupies the square.
		edges = ((Rank1Bb | Rank8Bb) &^ sq.RankOf().Bb()) | ((FileABb | FileHBb) &^ sq.FileOf().Bb())

		// The mask is the attack set from sq on an empty board, minus the
		// edges. Its population count fixes the index width for this
		// square's slice of the shared attacks table.
		m := &(*magics)[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		// Carry-Rippler trick: enumerate every subset of m.Mask and record
		// the sliding attack for that subset as the occupancy's reference
		// answer. https://www.chessprogramming.org/Traversing_Subsets_of_a_Set
		b = 0
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])

		// Try random sparse magics until one maps every occupancy subset to
		// an index that agrees with its reference attack set. epoch[] lets
		// a failed attempt be detected without clearing m.Attacks first:
		// a slot is "unused this attempt" whenever its epoch is stale.
		for i := 0; i < size; {
			// The top-byte dispersion filter is applied only to masks with
			// at least 6 relevant bits.
			for m.Magic = 0; m.Magic == 0 || (m.Mask.PopCount() >= 6 && ((m.Magic*m.Mask)>>56).PopCount() < 6); {
				m.Magic = Bitboard(rng.sparseRand())
			}

			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// PrnG is the xorshift64star pseudo-random number generator used to search
// for magic numbers. Originally written and dedicated to the public domain
// by Sebastiano Vigna (2014); see http://vigna.di.unimi.it/ftp/papers/xorshift.pdf
type PrnG struct {
	s uint64
}

func newPrnG(seed uint64) *PrnG {
	return &PrnG{s: seed}
}

func (r *PrnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand is a special generator used to fast init magic numbers: its
// output values only have about 1/8th of their bits set on average, which
// is what makes the top-byte popcount rejection test in initMagics
// converge quickly.
func (r *PrnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
