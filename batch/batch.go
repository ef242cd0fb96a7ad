// Package batch solves dictionary pairs on a pool of workers sharing one
// solver and its candidate cache.
package batch

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"furiganaalign/dictionary"
	"furiganaalign/furigana"
	"furiganaalign/logger"
	"furiganaalign/model"
)

// Outcome is the verdict for one pair. Err is set when the pair could not
// be turned into an entry; Result is zero in that case.
type Outcome struct {
	RunID  string
	Pair   dictionary.Pair
	Result furigana.Result
	Err    error
}

// Sink receives every outcome. It is called from a single goroutine, so it
// needs no locking of its own. Returning an error stops the run.
type Sink func(ctx context.Context, o Outcome) error

type Options struct {
	// Workers defaults to runtime.NumCPU().
	Workers int
	Sink    Sink
	Metrics *Metrics
	Logger  logger.Logger
}

// Stats summarizes a run.
type Stats struct {
	RunID          string        `json:"run_id"`
	Total          int           `json:"total"`
	Solved         int           `json:"solved"`
	Ambiguous      int           `json:"ambiguous"`
	Unsolved       int           `json:"unsolved"`
	BudgetExceeded int           `json:"budget_exceeded"`
	Invalid        int           `json:"invalid"`
	Steps          int64         `json:"steps"`
	Elapsed        time.Duration `json:"elapsed"`
}

func (s *Stats) add(o Outcome) {
	s.Total++
	if o.Err != nil {
		s.Invalid++
		return
	}
	s.Steps += int64(o.Result.Steps)
	switch o.Result.Status {
	case furigana.Solved:
		s.Solved++
	case furigana.Ambiguous:
		s.Ambiguous++
	case furigana.BudgetExceeded:
		s.BudgetExceeded++
	default:
		s.Unsolved++
	}
}

// Run solves every pair and returns the tallies. Pairs not yet handed to a
// worker when ctx is cancelled are skipped and ctx.Err() is returned along
// with the partial stats.
func Run(ctx context.Context, solver *furigana.Solver, pairs []dictionary.Pair, opts Options) (Stats, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	runID := uuid.NewString()
	stats := Stats{RunID: runID}
	started := time.Now()
	parent := logger.WithDefaultArgs(ctx, "run", runID)
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	log.InfoCtx(parent, "batch started", "pairs", len(pairs), "workers", workers)

	jobs := make(chan dictionary.Pair)
	outcomes := make(chan Outcome, workers)

	go func() {
		defer close(jobs)
		for _, p := range pairs {
			select {
			case jobs <- p:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				o := solveOne(ctx, solver, p)
				o.RunID = runID
				select {
				case outcomes <- o:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	var sinkErr error
	for o := range outcomes {
		if sinkErr != nil {
			continue
		}
		stats.add(o)
		opts.Metrics.observe(o)
		if o.Err != nil {
			log.DebugCtx(parent, "invalid pair", "written", o.Pair.Written, "reading", o.Pair.Reading, "err", o.Err)
		}
		if opts.Sink != nil {
			if err := opts.Sink(ctx, o); err != nil {
				sinkErr = err
				cancel()
			}
		}
	}
	stats.Elapsed = time.Since(started)

	if sinkErr != nil {
		log.ErrorCtx(parent, "batch aborted", "err", sinkErr, "total", stats.Total)
		return stats, sinkErr
	}
	if err := parent.Err(); err != nil {
		log.WarnCtx(parent, "batch cancelled", "total", stats.Total)
		return stats, err
	}
	log.InfoCtx(parent, "batch finished",
		"total", stats.Total, "solved", stats.Solved, "ambiguous", stats.Ambiguous,
		"unsolved", stats.Unsolved, "budget_exceeded", stats.BudgetExceeded,
		"invalid", stats.Invalid, "elapsed", stats.Elapsed)
	return stats, nil
}

func solveOne(ctx context.Context, solver *furigana.Solver, p dictionary.Pair) Outcome {
	e, err := model.NewEntry(p.Written, p.Reading, p.Kind)
	if err != nil {
		return Outcome{Pair: p, Err: err}
	}
	return Outcome{Pair: p, Result: solver.SolveEntry(ctx, e)}
}
