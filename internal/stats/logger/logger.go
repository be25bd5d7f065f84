// Package logger provides a stats collector that writes metric updates
// to a zap logger. It is the default collector for classification runs
// that have no metrics backend: counters such as games classified or
// replays run show up as debug log events instead.
package logger

import (
	"go.uber.org/zap"

	"github.com/discochess/endgame/internal/stats"
)

// Collector implements stats.Collector by logging metric updates.
type Collector struct {
	logger *zap.Logger
}

// Compile-time check that Collector implements stats.Collector.
var _ stats.Collector = (*Collector)(nil)

// New creates a collector that logs to logger.
// If logger is nil, a no-op logger is used.
func New(logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{logger: logger}
}

// IncCounter logs a counter increment, such as a classified game or a
// written shard.
func (c *Collector) IncCounter(name string, delta int64) {
	c.logger.Debug("pipeline counter",
		zap.String("metric", name),
		zap.Int64("delta", delta),
	)
}

// SetGauge logs a gauge value.
func (c *Collector) SetGauge(name string, value int64) {
	c.logger.Debug("pipeline gauge",
		zap.String("metric", name),
		zap.Int64("value", value),
	)
}

// ObserveHistogram logs a distribution sample, such as a batch
// duration in seconds.
func (c *Collector) ObserveHistogram(name string, value float64) {
	c.logger.Debug("pipeline timing",
		zap.String("metric", name),
		zap.Float64("value", value),
	)
}
