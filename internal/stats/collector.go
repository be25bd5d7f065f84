// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Pipeline metrics.
	MetricGames         = "endgame_games_classified_total"
	MetricReplays       = "endgame_replays_total"
	MetricMalformed     = "endgame_malformed_move_lists_total"
	MetricBatchesFailed = "endgame_batches_failed_total"
	MetricShardsWritten = "endgame_shards_written_total"

	// Timing metrics.
	MetricBatchSeconds = "endgame_batch_seconds"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
