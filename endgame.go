// Package endgame classifies why recorded chess games ended. Each
// game record carries platform metadata (termination category, result,
// a mate marker) and a move list; metadata alone settles most games,
// and for reported draws the move list is replayed to confirm
// stalemate, threefold repetition, the fifty-move rule, or
// insufficient material. The output is one canonical end-reason code
// per game.
//
// Example usage:
//
//	classifier, err := endgame.New(
//	    endgame.WithWorkers(8),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := classifier.Run(ctx, "games/*.jsonl.zst", "out/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("classified %d games\n", report.Games)
package endgame

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/discochess/endgame/internal/batch"
	"github.com/discochess/endgame/internal/replay"
	"github.com/discochess/endgame/internal/san"
	"github.com/discochess/endgame/internal/shardio"
	"github.com/discochess/endgame/internal/stats"
	"github.com/discochess/endgame/internal/store"
	"github.com/discochess/endgame/internal/store/diskstore"
	"github.com/discochess/endgame/internal/store/gcsstore"
	"github.com/discochess/endgame/internal/store/s3store"
)

// Classifier assigns end reasons to game records. A Classifier is
// safe for concurrent use by multiple goroutines.
type Classifier struct {
	workers   int
	batchSize int
	maxGames  int64
	stats     stats.Collector
	logger    *zap.Logger
}

// New creates a new Classifier with the given options.
// If no options are provided, sensible defaults are used.
func New(opts ...Option) (*Classifier, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	if cfg.workers < 0 {
		return nil, fmt.Errorf("endgame: negative worker count %d", cfg.workers)
	}
	if cfg.batchSize < 0 {
		return nil, fmt.Errorf("endgame: negative batch size %d", cfg.batchSize)
	}

	c := &Classifier{
		workers:   cfg.workers,
		batchSize: cfg.batchSize,
		maxGames:  cfg.maxGames,
		stats:     cfg.stats,
		logger:    cfg.logger,
	}

	c.logger.Debug("classifier initialized",
		zap.Int("workers", c.workers),
		zap.Int("batchSize", c.batchSize),
	)

	return c, nil
}

// Classify returns the end reason for a single game record.
//
// Metadata settles decisive and timeout games outright. For a game
// recorded as a Normal-termination draw the move list is replayed to
// confirm which draw condition actually occurred; a malformed move
// list truncates the replay and classification falls through to the
// metadata rules.
func (c *Classifier) Classify(rec Record) Reason {
	facts := Facts{
		Mated:       rec.Mated,
		Termination: rec.Termination,
		Result:      rec.Result,
	}

	if rec.Termination == TerminationNormal && rec.Result == ResultDraw && rec.Moves != "" {
		c.stats.IncCounter(stats.MetricReplays, 1)
		out := replay.Scan(san.Tokens(rec.Moves))
		if out.State == replay.MalformedTerminal {
			c.stats.IncCounter(stats.MetricMalformed, 1)
			c.logger.Debug("malformed move list",
				zap.String("gameID", rec.GameID),
				zap.Int("plies", out.Plies),
			)
		}
		facts.Detections = Detections{
			Stalemate:            out.Flags.Stalemate,
			Threefold:            out.Flags.Threefold,
			FiftyMove:            out.Flags.FiftyMove,
			InsufficientMaterial: out.Flags.InsufficientMaterial,
		}
	}

	return Resolve(facts)
}

// Run classifies every shard at input and writes one output shard per
// input shard under output. Both locations accept a local path or
// glob, a gs:// URL, or an s3:// URL.
//
// Batch failures do not abort the run; they are listed in the Report
// and already-written output stands. The returned error covers setup
// problems and context cancellation only.
func (c *Classifier) Run(ctx context.Context, input, output string) (*Report, error) {
	in, err := openStore(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("opening input %s: %w", input, err)
	}
	defer in.Close()

	out, err := openStore(ctx, output)
	if err != nil {
		return nil, fmt.Errorf("opening output %s: %w", output, err)
	}
	defer out.Close()

	runner := batch.New(c.classifyRow, batch.Config{
		Workers:   c.workers,
		BatchSize: c.batchSize,
		MaxGames:  c.maxGames,
		Logger:    c.logger,
		Stats:     c.stats,
	})

	rep, err := runner.Run(ctx, in, out)
	if rep == nil {
		return nil, err
	}
	return newReport(rep), err
}

// classifyRow adapts Classify to the batch runner's row signature.
func (c *Classifier) classifyRow(row shardio.Row) shardio.Result {
	reason := c.Classify(RecordFromRow(row))
	return shardio.Result{
		GameID:        row.GameID,
		EndReasonCode: reason.Code(),
		EndReason:     reason.String(),
	}
}

// openStore resolves a location to a storage backend by URL scheme.
func openStore(ctx context.Context, location string) (store.Store, error) {
	switch {
	case strings.HasPrefix(location, "gs://"):
		bucket, prefix := splitBucketURL(strings.TrimPrefix(location, "gs://"))
		return gcsstore.New(ctx, bucket, gcsstore.WithPrefix(prefix))
	case strings.HasPrefix(location, "s3://"):
		bucket, prefix := splitBucketURL(strings.TrimPrefix(location, "s3://"))
		return s3store.New(ctx, bucket, s3store.WithPrefix(prefix))
	default:
		return diskstore.New(location)
	}
}

// splitBucketURL splits "bucket/some/prefix" into its bucket and
// prefix parts.
func splitBucketURL(rest string) (bucket, prefix string) {
	bucket, prefix, _ = strings.Cut(rest, "/")
	return bucket, prefix
}
