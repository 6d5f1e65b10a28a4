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

// Package perftsuite holds the canonical perft regression table: a
// fixed set of FEN/depth/expected-node-count rows drawn from the
// standard chessprogramming.org perft results, used both by the test
// suite and by the perft command's -suite flag.
package perftsuite

// Case is one canonical perft regression row.
type Case struct {
	Name  string
	Fen   string
	Depth int
	Nodes uint64
}

// Cases is the canonical regression table. It exercises captures,
// promotions, en passant, castling (including castling through an
// attacked square), and discovered attacks.
var Cases = []Case{
	{
		Name:  "startpos depth 1",
		Fen:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Depth: 1,
		Nodes: 20,
	},
	{
		Name:  "startpos depth 4",
		Fen:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Depth: 4,
		Nodes: 197281,
	},
	{
		Name:  "startpos depth 5",
		Fen:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Depth: 5,
		Nodes: 4865609,
	},
	{
		Name:  "kiwipete depth 3",
		Fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		Depth: 3,
		Nodes: 97862,
	},
	{
		Name:  "kiwipete depth 4",
		Fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		Depth: 4,
		Nodes: 4085603,
	},
	{
		Name:  "endgame rook depth 5",
		Fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		Depth: 5,
		Nodes: 674624,
	},
	{
		Name:  "castling through check depth 3",
		Fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2pP/R2Q1RK1 w kq - 0 1",
		Depth: 3,
		Nodes: 62379,
	},
}
