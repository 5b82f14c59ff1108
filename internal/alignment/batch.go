package alignment

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchOptions configures a one-against-many alignment.
type BatchOptions struct {
	Scorer    Scorer
	GapOpen   float64
	GapExtend float64
	Mode      Mode
	// Workers bounds the number of alignments computed at once.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultBatchOptions returns local alignment with the default parameters.
func DefaultBatchOptions() BatchOptions {
	p := DefaultParams()
	return BatchOptions{
		Scorer:    p.Scorer(),
		GapOpen:   p.GapOpen,
		GapExtend: p.GapExtend,
		Mode:      Local,
	}
}

// IndexedResult pairs an alignment with the index of its target.
type IndexedResult struct {
	Index  int     `json:"index"`
	Result *Result `json:"result"`
}

// AlignAgainstMultiple aligns query against every target. Results are
// returned in target order. Each pair is aligned independently; at most
// opts.Workers pairs are in flight.
func AlignAgainstMultiple(ctx context.Context, query string, targets []string, opts BatchOptions) ([]IndexedResult, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("target list cannot be empty")
	}
	if opts.Scorer == nil {
		return nil, fmt.Errorf("%w: scorer is nil", ErrInvalidParams)
	}
	if err := validGaps(opts.GapOpen, opts.GapExtend); err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]IndexedResult, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, target := range targets {
		if gctx.Err() != nil {
			break
		}
		i, target := i, target
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Align(query, target, opts.Scorer, opts.GapOpen, opts.GapExtend, opts.Mode)
			if err != nil {
				return fmt.Errorf("target %d: %w", i, err)
			}
			results[i] = IndexedResult{Index: i, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// FindBest returns the highest-scoring result; the lowest index wins ties.
func FindBest(results []IndexedResult) (*IndexedResult, bool) {
	if len(results) == 0 {
		return nil, false
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Result.Score > best.Result.Score {
			best = r
		}
	}
	return &best, true
}

// FindBestAlignment aligns query against every target and returns the best.
func FindBestAlignment(ctx context.Context, query string, targets []string, opts BatchOptions) (*IndexedResult, error) {
	results, err := AlignAgainstMultiple(ctx, query, targets, opts)
	if err != nil {
		return nil, err
	}
	best, _ := FindBest(results)
	return best, nil
}
