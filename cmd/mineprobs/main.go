package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"mine_probs_go/db"
	"mine_probs_go/internal/generator"
	"mine_probs_go/internal/visualizer"
	"mine_probs_go/solver"
	"mine_probs_go/types"
)

func main() {
	var (
		file    = flag.String("file", "", "board text file to solve")
		gen     = flag.String("gen", "", "generate boards of the given extent, e.g. 8x8")
		mines   = flag.Int("mines", 10, "total mine count")
		count   = flag.Int("count", 1, "number of boards to generate")
		seed    = flag.Int64("seed", 0, "generation seed (0 = random)")
		flagged = flag.Float64("flagged", 0, "fraction of mines pre-flagged on generated boards")
		timeout = flag.Duration("timeout", 10*time.Second, "enumeration time budget")
		workers = flag.Int("workers", 0, "max concurrent regions (0 = all CPUs)")
		upload  = flag.Bool("upload", false, "upload results to PocketBase")
	)
	flag.Parse()

	if *file == "" && *gen == "" {
		fmt.Fprintln(os.Stderr, "need either -file or -gen")
		flag.Usage()
		os.Exit(2)
	}

	s := solver.NewSolver()
	s.SetTimeout(*timeout)
	if *workers > 0 {
		s.SetWorkers(*workers)
	}

	if *upload {
		if err := db.Authenticate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error authenticating: %v\n", err)
			os.Exit(1)
		}
	}

	var boards []*types.Board
	if *file != "" {
		text, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading board: %v\n", err)
			os.Exit(1)
		}
		board, err := types.Parse(string(text), *mines)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing board: %v\n", err)
			os.Exit(1)
		}
		boards = append(boards, board)
	} else {
		width, height, err := parseExtent(*gen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		g := generator.NewBoardGenerator(width, height, *mines)
		if *seed != 0 {
			g.SetSeed(*seed)
		}
		g.SetFlagFraction(*flagged)
		for i := 0; i < *count; i++ {
			board, _, err := g.Generate()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error generating board: %v\n", err)
				os.Exit(1)
			}
			boards = append(boards, board)
		}
	}

	for i, board := range boards {
		fmt.Printf("\n━━━ Board %d/%d (%dx%d, %d mines) ━━━\n",
			i+1, len(boards), board.Width, board.Height, board.Mines)

		viz := visualizer.NewVisualizer(board)
		viz.Print()

		start := time.Now()
		probs, err := s.Solve(context.Background(), board)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Printf("✗ Solve failed after %s: %v\n", formatDuration(elapsed), err)
			continue
		}

		fmt.Printf("✓ Solved in %s\n\nMine probabilities:\n", formatDuration(elapsed))
		viz.PrintProbs(probs)

		if *upload {
			id := newRecordID()
			if _, err := db.UploadSolve(id, board, probs, elapsed); err != nil {
				fmt.Printf("✗ Upload failed: %v\n", err)
			} else {
				fmt.Printf("✓ Uploaded as %s\n", id)
			}
		}
	}
}

func parseExtent(s string) (width, height int, err error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("extent must look like 8x8, got %q", s)
	}
	width, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad width in %q", s)
	}
	height, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad height in %q", s)
	}
	return width, height, nil
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func newRecordID() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}
