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

// Command perft runs the move-generator performance/regression test
// (perft): counting the number of leaf positions reachable from a
// starting FEN at a given search depth, and comparing against known
// reference counts where available.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/frankkopp/enginecore/internal/config"
	"github.com/frankkopp/enginecore/internal/logging"
	"github.com/frankkopp/enginecore/internal/movegen"
	"github.com/frankkopp/enginecore/internal/perftsuite"
	"github.com/frankkopp/enginecore/internal/position"
	"github.com/frankkopp/enginecore/internal/types"
)

const startFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	fenFlag := flag.String("fen", startFen, "FEN of the position to search")
	depthFlag := flag.Int("depth", 0, "search depth (0 uses the configured default)")
	divideFlag := flag.Bool("divide", false, "print per-root-move subtree node counts")
	suiteFlag := flag.Bool("suite", false, "run the canonical perft regression table instead of a single FEN")
	workersFlag := flag.Int("workers", 0, "number of goroutines to split the root moves across (0 uses the configured default)")
	configFlag := flag.String("config", "./config.toml", "path to a TOML configuration file")
	flag.Parse()

	config.ConfFile = *configFlag
	config.Setup()
	if *workersFlag > 0 {
		config.Settings.Perft.Workers = *workersFlag
	}

	log := logging.GetPerftLog()
	start := time.Now()
	types.Init()
	log.Debugf("attack tables built in %s", time.Since(start))
	log.Infof("perft starting, workers=%d", config.Settings.Perft.Workers)

	if *suiteFlag {
		runSuite()
		return
	}

	depth := *depthFlag
	if depth <= 0 {
		depth = config.Settings.Perft.DefaultDepth
	}

	if *divideFlag {
		runDivide(*fenFlag, depth)
		return
	}

	p := movegen.NewPerft()
	p.StartPerft(*fenFlag, depth)
}

func runSuite() {
	failures := 0
	for _, c := range perftsuite.Cases {
		pos, err := position.NewPositionFen(c.Fen)
		if err != nil {
			fmt.Printf("FAIL %-30s invalid FEN: %v\n", c.Name, err)
			failures++
			continue
		}
		got := movegen.NodeCount(pos, c.Depth)
		if got != c.Nodes {
			fmt.Printf("FAIL %-30s depth=%d expected=%d got=%d\n", c.Name, c.Depth, c.Nodes, got)
			failures++
			continue
		}
		fmt.Printf("PASS %-30s depth=%d nodes=%d\n", c.Name, c.Depth, got)
	}
	if failures > 0 {
		fmt.Printf("\n%d of %d cases failed\n", failures, len(perftsuite.Cases))
		os.Exit(1)
	}
	fmt.Printf("\nall %d cases passed\n", len(perftsuite.Cases))
}

func runDivide(fen string, depth int) {
	pos, err := position.NewPositionFen(fen)
	if err != nil {
		fmt.Printf("invalid FEN %q: %v\n", fen, err)
		os.Exit(1)
	}
	entries, total := movegen.Divide(pos, depth)
	for _, e := range entries {
		fmt.Printf("%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Printf("\nMoves: %d\n", len(entries))
	fmt.Printf("Total nodes: %d\n", total)
}
