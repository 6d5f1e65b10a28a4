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
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/enginecore/internal/config"
	"github.com/frankkopp/enginecore/internal/position"
	. "github.com/frankkopp/enginecore/internal/types"
	"github.com/frankkopp/enginecore/internal/util"
)

var out = message.NewPrinter(language.German)

// NodeCount is the plain perft node counter: the number of leaf
// positions reachable from pos in exactly depth plies, walking
// pseudo-legal moves and discarding any that leave the mover's king
// attacked. depth 0 always counts as a single node.
func NodeCount(pos position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	us := pos.SideToMove()
	total := uint64(0)
	GeneratePseudoLegalMoves(&pos).ForEach(func(m Move) {
		next := pos.MakeMove(m)
		if next.IsSquareAttacked(next.KingSquare(us), next.SideToMove()) {
			return
		}
		total += NodeCount(next, depth-1)
	})
	return total
}

// DivideEntry is one root move's subtree node count, as reported by
// a divide-mode perft run.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide returns the node count for each legal root move at depth-1
// plies below it, plus the grand total. Used to localize move
// generator bugs against a known-good reference perft.
func Divide(pos position.Position, depth int) ([]DivideEntry, uint64) {
	us := pos.SideToMove()
	var entries []DivideEntry
	var total uint64
	GeneratePseudoLegalMoves(&pos).ForEach(func(m Move) {
		next := pos.MakeMove(m)
		if next.IsSquareAttacked(next.KingSquare(us), next.SideToMove()) {
			return
		}
		var n uint64
		if depth > 1 {
			n = NodeCount(next, depth-1)
		} else {
			n = 1
		}
		entries = append(entries, DivideEntry{Move: m, Nodes: n})
		total += n
	})
	return entries, total
}

// Perft drives a full perft run over a position, accumulating the
// breakdown counters (captures, en passant, castles, promotions,
// checks, checkmates) alongside the raw node count.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         *util.Bool
}

// NewPerft creates a new, empty Perft instance.
func NewPerft() *Perft {
	return &Perft{stopFlag: util.NewBool(false)}
}

// Stop requests that a run in progress (when started from a goroutine,
// possibly split across workers) abort as soon as possible. Safe to
// call concurrently with a running perft.
func (perft *Perft) Stop() {
	perft.stopFlag.Store(true)
}

// StartPerft runs perft on the position given by fen to depth and
// prints a German-locale formatted report, in the style the engine
// uses throughout for number output. In the sequential case each root
// move's subtree count is printed as it completes (unless disabled by
// config.Settings.Perft.Divide); if config.Settings.Perft.Workers is
// greater than 1, the root moves are instead split across that many
// goroutines and only the summary is printed.
func (perft *Perft) StartPerft(fen string, depth int) {
	perft.stopFlag.Store(false)
	if depth <= 0 {
		depth = 1
	}
	perft.resetCounters()

	pos, err := position.NewPositionFen(fen)
	if err != nil {
		out.Printf("Invalid FEN %q: %v\n", fen, err)
		return
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	var result uint64
	if config.Settings.Perft.Workers > 1 {
		result = perft.recurseParallel(pos, depth, config.Settings.Perft.Workers)
	} else {
		result = perft.rootDivide(pos, depth, config.Settings.Perft.Divide)
	}
	elapsed := time.Since(start)

	if perft.stopFlag.Load() {
		out.Print("Perft stopped\n")
		return
	}

	perft.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", util.Nps(perft.Nodes, elapsed))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

// rootDivide walks the root moves sequentially, optionally printing the
// subtree node count under each root move as it completes.
func (perft *Perft) rootDivide(pos position.Position, depth int, print bool) uint64 {
	us := pos.SideToMove()
	total := uint64(0)
	GeneratePseudoLegalMoves(&pos).ForEach(func(m Move) {
		if perft.stopFlag.Load() {
			return
		}
		next := pos.MakeMove(m)
		if next.IsSquareAttacked(next.KingSquare(us), next.SideToMove()) {
			return
		}
		var nodes uint64
		if depth > 1 {
			nodes = perft.recurse(next, depth-1)
		} else {
			nodes = 1
			perft.tallyLeaf(m, next, us)
		}
		if print {
			out.Printf("%-6s %d\n", m.String(), nodes)
		}
		total += nodes
	})
	return total
}

// recurse is the copy-make perft walk: each ply hands the next ply a
// fresh Position value rather than mutating and undoing one shared
// position, so nothing needs to be rolled back on the way out.
func (perft *Perft) recurse(pos position.Position, depth int) uint64 {
	if perft.stopFlag.Load() {
		return 0
	}
	us := pos.SideToMove()
	totalNodes := uint64(0)
	GeneratePseudoLegalMoves(&pos).ForEach(func(m Move) {
		if perft.stopFlag.Load() {
			return
		}
		next := pos.MakeMove(m)
		if next.IsSquareAttacked(next.KingSquare(us), next.SideToMove()) {
			return
		}
		if depth > 1 {
			totalNodes += perft.recurse(next, depth-1)
			return
		}
		totalNodes++
		perft.tallyLeaf(m, next, us)
	})
	return totalNodes
}

// tallyLeaf updates the breakdown counters for one leaf move m, whose
// application produced next, made by side us.
func (perft *Perft) tallyLeaf(m Move, next position.Position, us Color) {
	switch {
	case m.IsEnPassant():
		perft.EnpassantCounter++
		perft.CaptureCounter++
	case m.IsCapture():
		perft.CaptureCounter++
	}
	if m.IsCastle() {
		perft.CastleCounter++
	}
	if m.IsPromotion() {
		perft.PromotionCounter++
	}
	them := next.SideToMove()
	if next.IsSquareAttacked(next.KingSquare(them), us) {
		perft.CheckCounter++
		if !HasLegalMove(&next) {
			perft.CheckMateCounter++
		}
	}
}

// recurseParallel splits the root moves across up to workers goroutines
// using errgroup, each running the same recurse walk with its own
// Perft accumulator, merged once every root move has been searched.
func (perft *Perft) recurseParallel(pos position.Position, depth int, workers int) uint64 {
	us := pos.SideToMove()
	roots := GeneratePseudoLegalMoves(&pos)

	type job struct {
		m Move
	}
	jobs := make(chan job, roots.Len())
	roots.ForEach(func(m Move) { jobs <- job{m} })
	close(jobs)

	partials := make([]*Perft, workers)
	for i := range partials {
		partials[i] = NewPerft()
		partials[i].stopFlag = perft.stopFlag
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			acc := partials[w]
			for j := range jobs {
				next := pos.MakeMove(j.m)
				if next.IsSquareAttacked(next.KingSquare(us), next.SideToMove()) {
					continue
				}
				if depth > 1 {
					acc.Nodes += acc.recurse(next, depth-1)
				} else {
					acc.Nodes++
					acc.tallyLeaf(j.m, next, us)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	var total uint64
	for _, p := range partials {
		total += p.Nodes
		perft.CaptureCounter += p.CaptureCounter
		perft.EnpassantCounter += p.EnpassantCounter
		perft.CastleCounter += p.CastleCounter
		perft.PromotionCounter += p.PromotionCounter
		perft.CheckCounter += p.CheckCounter
		perft.CheckMateCounter += p.CheckMateCounter
	}
	return total
}

func (perft *Perft) resetCounters() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
