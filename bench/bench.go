// bench/bench.go

// Package bench is a small micro-benchmark engine. A Bench is configured
// through chained setters, executes each registered operation for a fixed
// number of epochs, and keeps the per-iteration elapsed time of every epoch
// so that renderers can plot the full sample distribution rather than a
// single aggregate.
package bench

import "time"

// Result captures the executed measurements of one named series.
type Result struct {
	Name         string    `json:"name"`         // series label, e.g. "/ L1"
	Epochs       int       `json:"epochs"`       // number of measurement batches
	Measurements []float64 `json:"measurements"` // elapsed seconds per iteration, one entry per epoch
}

// Bench runs micro-benchmarks and accumulates their results. The zero
// value is not usable; construct with New.
type Bench struct {
	title              string
	unit               string
	epochs             int
	minEpochIterations uint64
	warmup             uint64
	results            []Result
}

// New returns a Bench with the default configuration: 11 epochs, one
// iteration per epoch, no warmup.
func New() *Bench {
	return &Bench{
		unit:               "op",
		epochs:             11,
		minEpochIterations: 1,
	}
}

// Title sets the benchmark title shown above the rendered plot.
func (b *Bench) Title(title string) *Bench {
	b.title = title
	return b
}

// Unit sets the unit label of a single iteration.
func (b *Bench) Unit(unit string) *Bench {
	b.unit = unit
	return b
}

// Epochs sets how many measurement batches each series runs. Values
// below 1 are clamped to 1.
func (b *Bench) Epochs(n int) *Bench {
	if n < 1 {
		n = 1
	}
	b.epochs = n
	return b
}

// MinEpochIterations sets how many times the operation runs inside one
// epoch. Values below 1 are clamped to 1.
func (b *Bench) MinEpochIterations(n uint64) *Bench {
	if n < 1 {
		n = 1
	}
	b.minEpochIterations = n
	return b
}

// Warmup sets how many unrecorded iterations run before the first epoch.
func (b *Bench) Warmup(n uint64) *Bench {
	b.warmup = n
	return b
}

// Results returns the series executed so far, in execution order.
func (b *Bench) Results() []Result {
	return b.results
}

// Run executes op as one named series: warmup first, then b.epochs
// timed batches of b.minEpochIterations iterations each. The recorded
// measurement of an epoch is the elapsed wall time divided by the
// iteration count.
func (b *Bench) Run(name string, op func()) *Bench {
	for i := uint64(0); i < b.warmup; i++ {
		op()
	}

	res := Result{Name: name, Epochs: b.epochs}
	for e := 0; e < b.epochs; e++ {
		start := time.Now()
		for i := uint64(0); i < b.minEpochIterations; i++ {
			op()
		}
		elapsed := time.Since(start).Seconds() / float64(b.minEpochIterations)
		res.Measurements = append(res.Measurements, elapsed)
	}
	b.results = append(b.results, res)
	return b
}

// Record appends a series of pre-measured samples without running
// anything. This is how recorded measurements are replayed through a
// renderer, e.g. when regenerating a report from saved data.
func (b *Bench) Record(name string, samples ...float64) *Bench {
	b.results = append(b.results, Result{
		Name:         name,
		Epochs:       len(samples),
		Measurements: append([]float64(nil), samples...),
	})
	return b
}

var sink any

// DoNotOptimizeAway keeps v observably alive so the compiler cannot
// elide the benchmarked computation that produced it.
func DoNotOptimizeAway(v any) {
	sink = v
}
