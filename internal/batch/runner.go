// Package batch runs the classification pipeline over shards of game
// records using a fixed worker pool.
package batch

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/discochess/endgame/internal/shardio"
	"github.com/discochess/endgame/internal/shardio/jsonlshard"
	"github.com/discochess/endgame/internal/shardio/parquetshard"
	"github.com/discochess/endgame/internal/stats"
	"github.com/discochess/endgame/internal/store"
)

const (
	// DefaultWorkers is the default worker pool size.
	DefaultWorkers = 4

	// DefaultBatchSize is the default number of rows per batch.
	DefaultBatchSize = 1024

	// pendingPerWorker bounds outstanding batches per worker. The
	// dispatcher blocks on the oldest batch when the queue is full,
	// which caps memory and keeps output rows in input order.
	pendingPerWorker = 4
)

// ClassifyFunc classifies one input row. It must be safe for
// concurrent use.
type ClassifyFunc func(shardio.Row) shardio.Result

// Config configures a Runner. Zero values take defaults.
type Config struct {
	Workers   int
	BatchSize int
	MaxGames  int64 // 0 means unlimited
	Logger    *zap.Logger
	Stats     stats.Collector
}

// Runner dispatches row batches to a worker pool, one input shard at a
// time. Shards are processed sequentially; batches within a shard run
// in parallel.
type Runner struct {
	classify  ClassifyFunc
	workers   int
	batchSize int
	maxGames  int64
	logger    *zap.Logger
	stats     stats.Collector
}

// New creates a Runner that classifies rows with classify.
func New(classify ClassifyFunc, cfg Config) *Runner {
	r := &Runner{
		classify:  classify,
		workers:   cfg.Workers,
		batchSize: cfg.BatchSize,
		maxGames:  cfg.MaxGames,
		logger:    cfg.Logger,
		stats:     cfg.Stats,
	}
	if r.workers <= 0 {
		r.workers = DefaultWorkers
	}
	if r.batchSize <= 0 {
		r.batchSize = DefaultBatchSize
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	if r.stats == nil {
		r.stats = stats.NewNoop()
	}
	return r
}

// task is one batch handed to a worker. The result is delivered on
// reply, which is buffered so workers never block on a cancelled
// dispatcher.
type task struct {
	rows  []shardio.Row
	reply chan batchResult
}

type batchResult struct {
	results []shardio.Result
	seconds float64
	err     error
}

type pendingBatch struct {
	index int
	reply chan batchResult
}

// Run classifies every recognized shard in input and writes one output
// shard per input shard under the same name. Batch and shard failures
// are collected in the Report rather than aborting the run; the
// returned error covers only listing failures and context
// cancellation.
func (r *Runner) Run(ctx context.Context, input, output store.Store) (*Report, error) {
	names, err := input.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing input shards: %w", err)
	}

	tasks := make(chan task)
	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go r.worker(&wg, tasks)
	}

	report := &Report{}
	var read int64
	for _, name := range names {
		if ctx.Err() != nil {
			break
		}
		if r.maxGames > 0 && read >= r.maxGames {
			break
		}
		if _, err := shardio.Format(name); err != nil {
			r.logger.Warn("skipping shard", zap.String("shard", name), zap.Error(err))
			continue
		}
		if err := r.processShard(ctx, input, output, name, tasks, report, &read); err != nil {
			r.logger.Error("shard failed", zap.String("shard", name), zap.Error(err))
			report.Failed = append(report.Failed, Failure{Shard: name, Batch: -1, Err: err})
			r.stats.IncCounter(stats.MetricBatchesFailed, 1)
		}
	}

	close(tasks)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// processShard streams one shard through the worker pool. Backpressure
// and output ordering both come from the FIFO pending queue: when it
// is full the oldest batch is drained into the writer before another
// is dispatched.
func (r *Runner) processShard(ctx context.Context, input, output store.Store, name string, tasks chan<- task, report *Report, read *int64) error {
	rc, err := input.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("opening shard: %w", err)
	}
	sr, err := newShardReader(name, rc)
	if err != nil {
		return err
	}
	defer sr.Close()

	wc, err := output.Create(ctx, name)
	if err != nil {
		return fmt.Errorf("creating output shard: %w", err)
	}
	sw, err := newShardWriter(name, wc)
	if err != nil {
		return err
	}

	pendingCap := pendingPerWorker * r.workers
	pending := make([]pendingBatch, 0, pendingCap)
	batchIndex := 0

	drain := func() error {
		oldest := pending[0]
		pending = pending[1:]
		res := <-oldest.reply

		report.batchSeconds = append(report.batchSeconds, res.seconds)
		r.stats.ObserveHistogram(stats.MetricBatchSeconds, res.seconds)

		if res.err != nil {
			r.logger.Error("batch failed",
				zap.String("shard", name),
				zap.Int("batch", oldest.index),
				zap.Error(res.err),
			)
			report.Failed = append(report.Failed, Failure{Shard: name, Batch: oldest.index, Err: res.err})
			r.stats.IncCounter(stats.MetricBatchesFailed, 1)
			return nil
		}

		for _, out := range res.results {
			if err := sw.Write(out); err != nil {
				return fmt.Errorf("writing batch %d: %w", oldest.index, err)
			}
		}
		report.Games += int64(len(res.results))
		r.stats.IncCounter(stats.MetricGames, int64(len(res.results)))
		return nil
	}

	rows := make([]shardio.Row, 0, r.batchSize)
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		if len(pending) == pendingCap {
			if err := drain(); err != nil {
				return err
			}
		}
		reply := make(chan batchResult, 1)
		select {
		case tasks <- task{rows: rows, reply: reply}:
		case <-ctx.Done():
			return ctx.Err()
		}
		pending = append(pending, pendingBatch{index: batchIndex, reply: reply})
		batchIndex++
		rows = make([]shardio.Row, 0, r.batchSize)
		return nil
	}

	var shardErr error
	for {
		if ctx.Err() != nil {
			break
		}
		if r.maxGames > 0 && *read >= r.maxGames {
			break
		}
		row, err := sr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			shardErr = fmt.Errorf("reading shard: %w", err)
			break
		}
		rows = append(rows, row)
		*read++
		if len(rows) == r.batchSize {
			if err := flush(); err != nil {
				shardErr = err
				break
			}
		}
	}
	if shardErr == nil && ctx.Err() == nil {
		shardErr = flush()
	}

	// Unscheduled rows are dropped on cancellation or failure, but
	// everything already dispatched is drained and written.
	for len(pending) > 0 {
		if err := drain(); err != nil && shardErr == nil {
			shardErr = err
		}
	}

	if err := sw.Close(); err != nil {
		if shardErr == nil {
			shardErr = fmt.Errorf("closing output shard: %w", err)
		}
		return shardErr
	}
	if shardErr != nil {
		return shardErr
	}

	report.Shards++
	r.stats.IncCounter(stats.MetricShardsWritten, 1)
	r.logger.Info("shard complete",
		zap.String("shard", name),
		zap.Int("batches", batchIndex),
	)
	return nil
}

func (r *Runner) worker(wg *sync.WaitGroup, tasks <-chan task) {
	defer wg.Done()
	for t := range tasks {
		t.reply <- r.runBatch(t.rows)
	}
}

// runBatch classifies one batch, converting panics into batch
// failures so one poisoned row cannot take down the run.
func (r *Runner) runBatch(rows []shardio.Row) (res batchResult) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res = batchResult{err: fmt.Errorf("batch panic: %v", p)}
		}
		res.seconds = time.Since(start).Seconds()
	}()

	out := make([]shardio.Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.classify(row))
	}
	return batchResult{results: out}
}

func newShardReader(name string, rc io.ReadCloser) (shardio.Reader, error) {
	format, err := shardio.Format(name)
	if err != nil {
		rc.Close()
		return nil, err
	}
	switch format {
	case "parquet":
		return parquetshard.NewReader(rc)
	default:
		return jsonlshard.NewReader(name, rc)
	}
}

func newShardWriter(name string, wc io.WriteCloser) (shardio.Writer, error) {
	format, err := shardio.Format(name)
	if err != nil {
		wc.Close()
		return nil, err
	}
	switch format {
	case "parquet":
		return parquetshard.NewWriter(wc)
	default:
		return jsonlshard.NewWriter(name, wc)
	}
}
