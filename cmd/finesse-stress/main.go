package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/finesse/engine"
)

func main() {
	analyses := flag.Int("analyses", 100000, "The number of placement analyses to run.")
	seed := flag.Int64("seed", 1, "Seed for board, piece and target generation.")
	maxStack := flag.Int("max-stack", 8, "Maximum garbage stack height per column.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting finesse engine stress test...")

	rng := rand.New(rand.NewSource(*seed))

	report := &Report{
		Analyses:       *analyses,
		Seed:           *seed,
		MaxStack:       *maxStack,
		GCPauseMetrics: *gcPauseMetrics,
		AnalysisTime: Stats{
			Samples: make([]time.Duration, 0, *analyses),
		},
		LengthHistogram: intmap.New[uint32, int64](16),
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d analyses...\n", *analyses)
	start := time.Now()

	var bag []engine.Piece
	for i := 0; i < *analyses; i++ {
		if len(bag) == 0 {
			bag = engine.RandBag(rng, bag[:0])
		}
		kind := bag[len(bag)-1]
		bag = bag[:len(bag)-1]

		board := randomBoard(rng, *maxStack)
		piece := engine.SpawnPiece(kind)
		if !board.CanPlace(piece) {
			report.ToppedOut++
			continue
		}
		targetX := rng.Intn(engine.BoardWidth+2) - 2
		targetRot := engine.Rotation(rng.Intn(4))
		player := randomPlayerSequence(rng)

		began := time.Now()
		res := engine.Analyze(board, piece, targetX, targetRot, player, engine.SearchConfig{})
		report.AnalysisTime.Samples = append(report.AnalysisTime.Samples, time.Since(began))

		if len(res.OptimalSequences) == 0 {
			report.Unreachable++
			continue
		}
		report.Reachable++
		if !res.Optimal {
			report.Faulty++
		}
		length := uint32(len(res.OptimalSequences[0]))
		count, _ := report.LengthHistogram.Get(length)
		report.LengthHistogram.Put(length, count+1)
		if length > report.MaxLength {
			report.MaxLength = length
		}
	}

	report.TotalTime = time.Since(start)
	report.AnalysisTime.Finalize()

	runtime.GC()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Stress test complete. Generating report...")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("failed to generate report: %v", err)
	}
}

// randomBoard builds a garbage stack with uneven column heights and at least
// one guaranteed hole column, the rough shape of a real mid-game field.
func randomBoard(rng *rand.Rand, maxStack int) engine.Board {
	board := engine.NewBoard()
	if maxStack <= 0 {
		return board
	}
	hole := rng.Intn(engine.BoardWidth)
	for x := 0; x < engine.BoardWidth; x++ {
		if x == hole {
			continue
		}
		h := rng.Intn(maxStack + 1)
		for y := engine.VisibleHeight - h; y < engine.VisibleHeight; y++ {
			board = board.SetCell(x, y, engine.Garbage)
		}
	}
	return board
}

// randomPlayerSequence emulates a normalized input log: a handful of moves
// and rotations, an occasional soft drop, then the lock.
func randomPlayerSequence(rng *rand.Rand) []engine.Action {
	pool := []engine.Action{
		engine.MoveLeft, engine.MoveRight,
		engine.DASLeft, engine.DASRight,
		engine.RotateCW, engine.RotateCCW,
	}
	n := rng.Intn(4)
	seq := make([]engine.Action, 0, n+2)
	for i := 0; i < n; i++ {
		seq = append(seq, pool[rng.Intn(len(pool))])
	}
	if rng.Intn(10) == 0 {
		seq = append(seq, engine.SoftDrop)
	}
	return append(seq, engine.HardDrop)
}
