package sequence

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Fetcher loads a single frame. Implementations must honour ctx cancellation
// where they can; a returned error marks the frame unavailable.
type Fetcher interface {
	Fetch(ctx context.Context, index int) (Frame, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, index int) (Frame, error)

func (f FetcherFunc) Fetch(ctx context.Context, index int) (Frame, error) {
	return f(ctx, index)
}

// Result is the outcome of one fetch.
type Result struct {
	Index int
	Frame Frame
	Err   error
}

// Preloader issues one fetch per index with bounded concurrency and reports
// completions on a channel, in whatever order they finish.
type Preloader struct {
	fetcher Fetcher
	limit   int

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// NewPreloader creates a preloader running at most limit fetches at a time.
// limit <= 0 means unbounded.
func NewPreloader(fetcher Fetcher, limit int) *Preloader {
	return &Preloader{
		fetcher: fetcher,
		limit:   limit,
		done:    make(chan struct{}),
	}
}

// Start fetches every distinct index and returns the result channel. The
// channel is buffered for all results, so fetches never block on a reader
// that went away, and it is closed once every issued fetch has finished.
// Start must be called at most once.
func (p *Preloader) Start(ctx context.Context, indices []int) <-chan Result {
	ctx, p.cancel = context.WithCancel(ctx)
	results := make(chan Result, len(indices))

	go func() {
		defer close(p.done)
		defer close(results)

		g, gctx := errgroup.WithContext(ctx)
		if p.limit > 0 {
			g.SetLimit(p.limit)
		}

		seen := make(map[int]struct{}, len(indices))
		for _, idx := range indices {
			if _, dup := seen[idx]; dup {
				continue
			}
			seen[idx] = struct{}{}
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				frame, err := p.fetcher.Fetch(gctx, idx)
				results <- Result{Index: idx, Frame: frame, Err: err}
				// Per-frame failures must not cancel the siblings.
				return nil
			})
		}
		_ = g.Wait()
	}()

	return results
}

// Stop abandons in-flight fetches. It is safe to call more than once and
// before Start.
func (p *Preloader) Stop() {
	p.once.Do(func() {
		if p.cancel != nil {
			p.cancel()
		}
	})
}

// Wait blocks until every issued fetch has returned.
func (p *Preloader) Wait() {
	<-p.done
}
