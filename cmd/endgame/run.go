package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/endgame"
	"github.com/discochess/endgame/internal/stats"
	promstats "github.com/discochess/endgame/internal/stats/prometheus"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Classify every shard at the input location",
	Long: `Classify every game in the input shards and write one output shard
per input shard.

Input and output accept a local directory, a file glob, a gs:// URL,
or an s3:// URL. Shards may be JSONL (optionally zstd or gzip
compressed) or parquet; the encoding is chosen by file extension and
the output shard keeps the input shard's name.

Examples:
  # Local directory to local directory
  endgame run --input ./games --output ./out

  # Glob input, capped for a smoke test
  endgame run --input './games/*.jsonl.zst' --output ./out --max-games 10000

  # Cloud storage with metrics exposed during the run
  endgame run --input gs://corpus/games --output gs://corpus/end_reasons --metrics-addr :9090`,
	RunE: runRun,
}

var (
	inputPath   string
	outputPath  string
	batchSize   int
	workers     int
	maxGames    int64
	metricsAddr string
)

func init() {
	runCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input path, glob, or bucket URL (required)")
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output directory or bucket URL (required)")
	runCmd.Flags().IntVar(&batchSize, "batch-size", 0, "rows per unit of work (default 1024)")
	runCmd.Flags().IntVar(&workers, "workers", 0, "worker pool size (default 4)")
	runCmd.Flags().Int64Var(&maxGames, "max-games", 0, "cap on games read, 0 for unlimited")
	runCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "expose Prometheus metrics on this address during the run")
	runCmd.MarkFlagRequired("input")
	runCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, draining outstanding batches...")
		cancel()
	}()

	var collector stats.Collector = stats.NewNoop()
	if metricsAddr != "" {
		collector = promstats.New(prometheus.DefaultRegisterer)
		server := &http.Server{Addr: metricsAddr, Handler: promhttp.Handler()}
		go func() {
			if err := server.ListenAndServe(); err != http.ErrServerClosed {
				logger.Warn("metrics server stopped", zap.Error(err))
			}
		}()
		defer server.Close()
	}

	classifier, err := endgame.New(
		endgame.WithWorkers(workers),
		endgame.WithBatchSize(batchSize),
		endgame.WithMaxGames(maxGames),
		endgame.WithStats(collector),
		endgame.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("creating classifier: %w", err)
	}

	start := time.Now()
	report, err := classifier.Run(ctx, inputPath, outputPath)
	if err != nil {
		return err
	}

	fmt.Printf("Classified %d games across %d shards in %s\n",
		report.Games, report.Shards, time.Since(start).Round(time.Millisecond))
	if d := report.Durations; d.Batches > 0 {
		fmt.Printf("Batches: %d (mean %.1fms, p50 %.1fms, p95 %.1fms)\n",
			d.Batches, d.Mean*1000, d.P50*1000, d.P95*1000)
	}

	if !report.Ok() {
		fmt.Fprintf(os.Stderr, "\n%d failed units:\n", len(report.Failed))
		for _, f := range report.Failed {
			if f.Batch < 0 {
				fmt.Fprintf(os.Stderr, "  %s: %v\n", f.Shard, f.Err)
			} else {
				fmt.Fprintf(os.Stderr, "  %s batch %d: %v\n", f.Shard, f.Batch, f.Err)
			}
		}
		return fmt.Errorf("%d units failed", len(report.Failed))
	}
	return nil
}
