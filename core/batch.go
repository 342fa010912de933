package core

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/SebastianMacaluso/EnergyFlow/measure"
)

// Worker-pool sizing.
const (
	// AutoJobs requests one worker per available CPU.
	AutoJobs = -1

	// FallbackJobs is used when CPU detection reports nothing usable.
	FallbackJobs = 4

	// MaxChunkSize caps the number of events a single worker task claims,
	// so very large batches still spread across the pool.
	MaxChunkSize = 10000
)

// EventFunc computes one observable value of type T for one event. It must
// be a pure function of the event: workers run it concurrently and share
// no mutable state.
type EventFunc[T any] func(event measure.Event) (T, error)

// BatchEvaluator applies a component's single-event compute function
// across a sequence of events. The zero value is unusable; construct with
// NewBatchEvaluator, handing it the owning observable's compute function.
type BatchEvaluator[T any] struct {
	fn      EventFunc[T]
	workers int
}

// NewBatchEvaluator wraps fn for batch application.
func NewBatchEvaluator[T any](fn EventFunc[T]) *BatchEvaluator[T] {
	return &BatchEvaluator[T]{fn: fn}
}

// Workers returns the resolved worker count of the most recent
// BatchCompute call, or 0 before the first call.
func (b *BatchEvaluator[T]) Workers() int { return b.workers }

// BatchCompute evaluates the compute function on every event and returns
// the values in input order.
//
// nJobs selects the worker count: AutoJobs (-1) resolves to the number of
// available CPUs (FallbackJobs if detection yields nothing usable), 1
// evaluates sequentially, and any other positive value runs a bounded pool
// of that size. Each pool task processes a contiguous chunk of
// clamp(len(events)/nJobs, 1, MaxChunkSize) events and writes results by
// index, so output order always matches input order.
//
// The pool is joined before returning on every path. If any worker fails,
// the first failure is returned, wrapped with the offending event index,
// and no partial results are exposed.
//
// Errors: ErrBadJobs for nJobs == 0 or nJobs < -1; otherwise whatever the
// compute function returns.
func (b *BatchEvaluator[T]) BatchCompute(events []measure.Event, nJobs int) ([]T, error) {
	if nJobs == 0 || nJobs < AutoJobs {
		return nil, fmt.Errorf("%w: got %d", ErrBadJobs, nJobs)
	}
	if nJobs == AutoJobs {
		nJobs = runtime.NumCPU()
		if nJobs < 1 {
			nJobs = FallbackJobs
		}
	}
	b.workers = nJobs

	results := make([]T, len(events))

	// Not worth a pool.
	if nJobs == 1 {
		for i, ev := range events {
			v, err := b.fn(ev)
			if err != nil {
				return nil, fmt.Errorf("core: event %d: %w", i, err)
			}
			results[i] = v
		}

		return results, nil
	}

	chunk := chunkSize(len(events), nJobs)

	var g errgroup.Group
	g.SetLimit(nJobs)
	for start := 0; start < len(events); start += chunk {
		end := start + chunk
		if end > len(events) {
			end = len(events)
		}
		start := start // capture per-iteration copy; go.mod pins go 1.21 (pre-1.22 loopvar semantics)
		g.Go(func() error {
			for i := start; i < end; i++ {
				v, err := b.fn(events[i])
				if err != nil {
					return fmt.Errorf("core: event %d: %w", i, err)
				}
				results[i] = v
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// chunkSize is the contiguous block of events one pool task claims:
// len(events)/nJobs clamped into [1, MaxChunkSize].
func chunkSize(nEvents, nJobs int) int {
	chunk := nEvents / nJobs
	if chunk < 1 {
		return 1
	}
	if chunk > MaxChunkSize {
		return MaxChunkSize
	}

	return chunk
}
