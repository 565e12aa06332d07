package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"bankocr/internal/account"
	"bankocr/internal/classify"
	"bankocr/internal/logging"
)

// ProcessAll segments raw, classifies every account and returns the output
// lines in input order.
func ProcessAll(raw string) []string {
	return classify.Lines(classify.All(account.Segment(raw)))
}

// Processor is the compute stage.
type Processor struct {
	// Workers > 1 parses and classifies bands concurrently.
	Workers int
}

// Process runs the compute stage. The only possible error is context
// cancellation.
func (p *Processor) Process(ctx context.Context, raw string) ([]classify.Result, error) {
	bands := account.Bands(raw)
	logging.SegmentDebug("segmented %d account bands", len(bands))

	results := make([]classify.Result, len(bands))
	if p.Workers <= 1 || len(bands) < 2 {
		for i, band := range bands {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = decodeBand(i, band)
		}
		return results, nil
	}

	logging.Pipeline("classifying %d bands across %d workers", len(bands), p.Workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Workers)
	for i, band := range bands {
		i, band := i, band
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each goroutine owns one index, so no locking is needed.
			results[i] = decodeBand(i, band)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func decodeBand(i int, band [account.BandRows]string) classify.Result {
	r := classify.Classify(account.Parse(band))
	logging.ClassifyDebug("account %d: %s", i, r)
	return r
}
