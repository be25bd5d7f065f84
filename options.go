package endgame

import (
	"go.uber.org/zap"

	"github.com/discochess/endgame/internal/batch"
	"github.com/discochess/endgame/internal/stats"
)

// Option configures a Classifier.
type Option interface {
	apply(*options)
}

// options holds the classifier configuration.
type options struct {
	workers   int
	batchSize int
	maxGames  int64
	stats     stats.Collector
	logger    *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		workers:   batch.DefaultWorkers,
		batchSize: batch.DefaultBatchSize,
		stats:     stats.NewNoop(),
		logger:    zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithWorkers sets the worker pool size for batch runs.
// Default is 4.
func WithWorkers(n int) Option {
	return optionFunc(func(o *options) {
		o.workers = n
	})
}

// WithBatchSize sets the number of rows per unit of work.
// Default is 1024.
func WithBatchSize(n int) Option {
	return optionFunc(func(o *options) {
		o.batchSize = n
	})
}

// WithMaxGames caps the number of games read in a run, for sampling
// or smoke tests. Zero means unlimited.
func WithMaxGames(n int64) Option {
	return optionFunc(func(o *options) {
		o.maxGames = n
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}
