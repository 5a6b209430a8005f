package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Overruler/gs-collections/internal/logging"
	"github.com/Overruler/gs-collections/internal/metrics"
	"github.com/Overruler/gs-collections/parallel"
	"github.com/Overruler/gs-collections/types"
	"github.com/Overruler/gs-collections/workload"
)

// runOptions holds the flags of the run command.
type runOptions struct {
	configPath  string
	size        int
	runs        int
	warmup      int
	ops         []string
	metricsAddr string
	logLevel    string
	seed        uint64
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   CmdRun,
		Short: "Time serial against parallel execution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "engine configuration file (YAML)")
	flags.IntVar(&opts.size, "size", 1_000_000, "number of generated elements")
	flags.IntVar(&opts.runs, "runs", 5, "timed runs per operation")
	flags.IntVar(&opts.warmup, "warmup", 2, "untimed warm-up runs per operation")
	flags.StringSliceVar(&opts.ops, "op", nil, "operations to run (default all, see 'ops')")
	flags.StringVar(&opts.metricsAddr, "metrics", "", "serve Prometheus metrics on this address while running")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.Uint64Var(&opts.seed, "seed", 42, "workload random seed")

	return cmd
}

func (o *runOptions) validate() error {
	if o.size < 0 {
		return fmt.Errorf("--size must be >= 0, got %d", o.size)
	}
	if o.runs <= 0 {
		return fmt.Errorf("--runs must be > 0, got %d", o.runs)
	}
	if o.warmup < 0 {
		return fmt.Errorf("--warmup must be >= 0, got %d", o.warmup)
	}

	return nil
}

func runBench(ctx context.Context, opts *runOptions, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := opts.validate(); err != nil {
		return err
	}

	logger, err := logging.NewSlogText(errOut, opts.logLevel)
	if err != nil {
		return err
	}

	cfg := parallel.DefaultConfig()
	if opts.configPath != "" {
		if cfg, err = parallel.LoadConfig(opts.configPath); err != nil {
			return err
		}
	}

	registry := prometheus.NewRegistry()
	engine, err := parallel.NewEngine(&cfg,
		parallel.WithLogger(logger),
		parallel.WithMetrics(metrics.NewPrometheus(registry, "")),
	)
	if err != nil {
		return err
	}
	defer engine.Shutdown()

	if opts.metricsAddr != "" {
		stop := serveMetrics(opts.metricsAddr, registry, logger)
		defer stop()
	}

	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15)) //nolint:gosec // workload only
	cases, err := selectCases(newCases(workload.ShuffledInterval(rng, opts.size), workload.WordList(rng, opts.size)), opts.ops)
	if err != nil {
		return err
	}

	logger.Info("benchmark starting",
		"size", opts.size,
		"pool_size", engine.PoolSize(),
		"task_count", engine.TaskCount(),
		"min_batch_size", cfg.MinBatchSize,
		"operations", len(cases),
	)

	if err := verify(ctx, engine, cases); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OPERATION\tSERIAL\tPARALLEL\tSPEEDUP")
	for _, c := range cases {
		serial, err := workload.Measure(c.name+"/serial", opts.runs, opts.warmup, func() error {
			c.serial()
			return nil
		})
		if err != nil {
			return err
		}

		par, err := workload.Measure(c.name+"/parallel", opts.runs, opts.warmup, func() error {
			_, err := c.parallel(ctx, engine)
			return err
		})
		if err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}

		logger.Debug("operation measured", "op", c.name, "serial", serial.Average, "parallel", par.Average)
		fmt.Fprintf(tw, "%s\t%v\t%v\t%.2fx\n", c.name, serial.Average, par.Average, speedup(serial, par))
	}

	return tw.Flush()
}

// verify runs every case once on both paths and compares result digests.
// Cases are checked concurrently; they share the engine pool.
func verify(ctx context.Context, engine *parallel.Engine, cases []benchCase) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range cases {
		g.Go(func() error {
			want := c.serial()
			got, err := c.parallel(ctx, engine)
			if err != nil {
				return fmt.Errorf("%s: %w", c.name, err)
			}
			if got != want {
				return fmt.Errorf("%s: parallel digest %x differs from serial digest %x", c.name, got, want)
			}

			return nil
		})
	}

	return g.Wait()
}

func speedup(serial, par workload.Timing) float64 {
	if par.Average <= 0 {
		return 0
	}

	return float64(serial.Average) / float64(par.Average)
}

// serveMetrics exposes the registry on addr until the returned func is called.
func serveMetrics(addr string, registry *prometheus.Registry, logger types.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Warn("metrics server shutdown", "error", err)
		}
	}
}
