// internal/suite/suite.go

// Package suite is the demo workload shipped with benchplot: element-wise
// float32 multiply and divide over slices sized to fit inside the L1 and
// L2 data cache budgets, so the rendered plots show the cache cliff.
package suite

import (
	"fmt"

	"github.com/mwiater/benchplot/bench"
	"github.com/mwiater/benchplot/htmlgraph"
)

// Series summarizes one executed benchmark series for terminal output.
type Series struct {
	Name       string  `json:"name"`
	Epochs     int     `json:"epochs"`
	MedianSecs float64 `json:"median_secs"` // median elapsed seconds per iteration
	ErrPct     float64 `json:"err_pct"`     // median absolute percent error, 0..100
}

// Progress is called with the series name just before it starts running.
type Progress func(name string)

func compute(a, b, out []float32, op func(l, r float32) float32) {
	for i := range a {
		out[i] = op(a[i], b[i])
	}
}

// benchArith registers one series on b: op applied element-wise over
// freshly randomized slices holding sizeBytes/8 bytes worth of float32s.
func benchArith(b *bench.Bench, name string, sizeBytes int, op func(l, r float32) float32) {
	count := sizeBytes / 8 / 4
	if count < 1 {
		count = 1
	}
	x := RandomFloats(1, 1_000_000, count)
	y := RandomFloats(1, 1_000_000, count)
	z := make([]float32, count)

	b.Run(name, func() {
		compute(x, y, z, op)
		bench.DoNotOptimizeAway(z)
	})
}

// Run executes the suite and, when cfg.RenderTo is set, renders every
// plot into that HTML file. progress may be nil. The returned summaries
// are in execution order.
func Run(cfg Config, progress Progress) ([]Series, error) {
	sink := htmlgraph.NewSink(cfg.Plot).
		ShowLegend(cfg.Legend).
		ShowEpochs(cfg.ShowEpochs).
		RangeMode(cfg.RangeMode)
	if cfg.RenderTo != "" {
		if err := sink.Open(cfg.RenderTo); err != nil {
			return nil, err
		}
	}
	defer sink.Close()

	div := func(l, r float32) float32 { return l / r }
	mul := func(l, r float32) float32 { return l * r }

	b := bench.New().
		Title("mult/div float32").
		Unit("float32").
		Epochs(cfg.Epochs).
		MinEpochIterations(cfg.MinEpochIterations).
		Warmup(cfg.Warmup)

	for _, step := range []struct {
		name  string
		bytes int
		op    func(l, r float32) float32
	}{
		{"/ L1", cfg.L1Bytes, div},
		{"/ L2", cfg.L2Bytes, div},
		{"* L1", cfg.L1Bytes, mul},
		{"* L2", cfg.L2Bytes, mul},
	} {
		if progress != nil {
			progress(step.name)
		}
		benchArith(b, step.name, step.bytes, step.op)
	}

	if err := sink.RenderTo(b, "multdiv-float32"); err != nil {
		return nil, fmt.Errorf("could not render suite: %w", err)
	}

	return summarize(b), nil
}

func summarize(b *bench.Bench) []Series {
	results := b.Results()
	out := make([]Series, 0, len(results))
	for _, r := range results {
		out = append(out, Series{
			Name:       r.Name,
			Epochs:     r.Epochs,
			MedianSecs: bench.Median(r.Measurements),
			ErrPct:     100 * bench.MedianAbsolutePercentError(r.Measurements),
		})
	}
	return out
}
