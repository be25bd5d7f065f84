package batch

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Failure records one failed unit of work. Batch is -1 for
// shard-level failures (open, read, or close errors).
type Failure struct {
	Shard string
	Batch int
	Err   error
}

// Report summarizes a run. Completed output is never retracted:
// Games and Shards count what was written even when Failed is
// non-empty.
type Report struct {
	Games  int64
	Shards int
	Failed []Failure

	batchSeconds []float64
}

// Ok reports whether the run completed without failures.
func (r *Report) Ok() bool {
	return len(r.Failed) == 0
}

// DurationSummary describes the batch duration distribution in
// seconds.
type DurationSummary struct {
	Batches int
	Mean    float64
	P50     float64
	P95     float64
}

// Durations summarizes batch timings for the run.
func (r *Report) Durations() DurationSummary {
	if len(r.batchSeconds) == 0 {
		return DurationSummary{}
	}
	xs := append([]float64(nil), r.batchSeconds...)
	sort.Float64s(xs)
	return DurationSummary{
		Batches: len(xs),
		Mean:    stat.Mean(xs, nil),
		P50:     stat.Quantile(0.5, stat.Empirical, xs, nil),
		P95:     stat.Quantile(0.95, stat.Empirical, xs, nil),
	}
}
