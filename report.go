package endgame

import "github.com/discochess/endgame/internal/batch"

// Failure records one failed unit of work. Batch is -1 when a whole
// shard failed before batching (open, read, or close errors).
type Failure struct {
	Shard string
	Batch int
	Err   error
}

// Durations describes the batch duration distribution in seconds.
type Durations struct {
	Batches int
	Mean    float64
	P50     float64
	P95     float64
}

// Report summarizes a run. Completed output is never retracted, so
// Games and Shards count what was written even when Failed is
// non-empty.
type Report struct {
	Games     int64
	Shards    int
	Failed    []Failure
	Durations Durations
}

// Ok reports whether the run completed without failures.
func (r *Report) Ok() bool {
	return len(r.Failed) == 0
}

func newReport(rep *batch.Report) *Report {
	out := &Report{
		Games:  rep.Games,
		Shards: rep.Shards,
	}
	for _, f := range rep.Failed {
		out.Failed = append(out.Failed, Failure{Shard: f.Shard, Batch: f.Batch, Err: f.Err})
	}
	d := rep.Durations()
	out.Durations = Durations{Batches: d.Batches, Mean: d.Mean, P50: d.P50, P95: d.P95}
	return out
}
