// Package classifierfx provides an fx module for an end-reason
// classifier.
package classifierfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/endgame"
	"github.com/discochess/endgame/internal/stats"
	"github.com/discochess/endgame/internal/stats/logger"
)

// Config holds configuration for the classifier.
type Config struct {
	// Workers is the worker pool size for batch runs.
	// Default is 4.
	Workers int

	// BatchSize is the number of rows per unit of work.
	// Default is 1024.
	BatchSize int

	// MaxGames caps the number of games read per run.
	// Zero means unlimited.
	MaxGames int64
}

// Module provides an end-reason classifier.
// Requires a *zap.Logger to be provided.
var Module = fx.Module("classifier",
	fx.Provide(
		newStatsCollector,
		newClassifier,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("endgame.stats"))
}

// Params holds dependencies for creating the classifier.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
}

// Result holds the provided classifier.
type Result struct {
	fx.Out

	Classifier *endgame.Classifier
}

func newClassifier(p Params) (Result, error) {
	classifier, err := endgame.New(
		endgame.WithWorkers(p.Config.Workers),
		endgame.WithBatchSize(p.Config.BatchSize),
		endgame.WithMaxGames(p.Config.MaxGames),
		endgame.WithStats(p.Collector),
		endgame.WithLogger(p.Logger.Named("endgame")),
	)
	if err != nil {
		return Result{}, err
	}
	return Result{Classifier: classifier}, nil
}
