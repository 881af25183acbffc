package ziwei

import (
	"context"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchResult holds the outcome of one batch item. Exactly one of Chart
// and Err is set.
type BatchResult struct {
	Index int
	Input BirthInput
	Chart *Chart
	Err   error
}

// Batch holds the results of one Batch call in input order.
type Batch struct {
	ID      string
	Results []BatchResult
}

// Failed returns the results that carry an error.
func (b *Batch) Failed() []BatchResult {
	var out []BatchResult
	for _, r := range b.Results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// Succeeded counts the results that carry a chart.
func (b *Batch) Succeeded() int {
	n := 0
	for _, r := range b.Results {
		if r.Chart != nil {
			n++
		}
	}
	return n
}

// Batch calculates independent inputs with at most workers in flight.
// A failing input is recorded in its slot and never stops its siblings.
// Cancelling ctx marks the items that have not started yet.
func (c *Calculator) Batch(ctx context.Context, inputs []BirthInput, workers int) *Batch {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	batch := &Batch{
		ID:      uuid.NewString(),
		Results: make([]BatchResult, len(inputs)),
	}
	log := c.logger.With(zap.String("batch", batch.ID))

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i, in := range inputs {
		g.Go(func() error {
			res := BatchResult{Index: i, Input: in}
			if err := ctx.Err(); err != nil {
				res.Err = err
			} else {
				res.Chart, res.Err = c.Calculate(in)
			}
			if res.Err != nil {
				log.Info("batch item failed", zap.Int("index", i), zap.Error(res.Err))
			}
			batch.Results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	log.Debug("batch finished",
		zap.Int("total", len(inputs)),
		zap.Int("succeeded", batch.Succeeded()))
	return batch
}
