package parallel

import (
	"fmt"
	"sync"

	"github.com/Overruler/gs-collections/internal/hooks"
	"github.com/Overruler/gs-collections/internal/logging"
	"github.com/Overruler/gs-collections/internal/metrics"
	"github.com/Overruler/gs-collections/internal/pool"
	"github.com/Overruler/gs-collections/strategy"
	"github.com/Overruler/gs-collections/types"
)

// Engine owns a worker pool and the defaults used by bulk operations.
//
// An Engine is safe for concurrent use: any number of operations may run on
// it at once and share its workers.
type Engine struct {
	cfg     Config
	pool    *pool.Pool
	planner types.BatchPlanner
	hooks   types.Hooks
	metrics types.MetricsCollector
	logger  types.Logger
}

// NewEngine creates an engine and starts its worker pool.
//
// Missing configuration values are filled with defaults before validation.
//
// Parameters:
//   - cfg: Engine configuration (defaults applied in place)
//   - opts: WithLogger, WithMetrics, WithHooks, WithDefaultPlanner
//
// Returns:
//   - *Engine: Running engine; call Shutdown to stop its workers
//   - error: ErrInvalidConfig on a nil or invalid config
//
// Example:
//
//	cfg := parallel.Config{PoolSize: 8, MinBatchSize: 5000}
//	engine, err := parallel.NewEngine(&cfg, parallel.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	defer engine.Shutdown()
func NewEngine(cfg *Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	cfg.ValidateWithWarnings(loggerInstance)

	planner := options.planner
	if planner == nil {
		// name already validated
		planner, _ = plannerByName(cfg.Planner)
	}

	e := &Engine{
		cfg:     *cfg,
		planner: planner,
		hooks:   hooks.Fill(options.hooks),
		metrics: metricsCollector,
		logger:  loggerInstance,
	}
	e.pool = pool.New(cfg.PoolSize, cfg.QueueCapacity,
		pool.WithLogger(loggerInstance),
		pool.WithMetrics(metricsCollector),
	)

	loggerInstance.Info("parallel engine started",
		"pool_size", cfg.PoolSize,
		"task_count", cfg.TaskCount,
		"min_batch_size", cfg.MinBatchSize,
		"queue_capacity", cfg.QueueCapacity,
		"planner", cfg.Planner,
	)

	return e, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// PoolSize returns the number of worker goroutines.
func (e *Engine) PoolSize() int {
	return e.pool.Size()
}

// TaskCount returns the default batch bound.
func (e *Engine) TaskCount() int {
	return e.cfg.TaskCount
}

// Shutdown stops accepting work, waits for running units and stops the
// workers. Operations that need the pool afterwards fail with ErrPoolClosed;
// empty and single-batch operations still succeed since they never submit.
// Calling Shutdown multiple times is safe.
//
// Shutting down the default engine makes the next Default call build a
// fresh one, and lets ConfigureDefault install a new configuration.
func (e *Engine) Shutdown() {
	e.pool.Close()
	e.logger.Info("parallel engine stopped", "pool_size", e.pool.Size())
}

// IsShutdown reports whether Shutdown was called.
func (e *Engine) IsShutdown() bool {
	return e.pool.Closed()
}

func plannerByName(name string) (types.BatchPlanner, error) {
	switch name {
	case PlannerContiguous, "":
		return strategy.NewContiguous(), nil
	case PlannerRoundRobin:
		return strategy.NewRoundRobin(), nil
	default:
		return nil, fmt.Errorf("unknown planner %q (want %q or %q)", name, PlannerContiguous, PlannerRoundRobin)
	}
}

var (
	defaultMu     sync.Mutex
	defaultEngine *Engine
)

// Default returns the process-wide engine, creating it from DefaultConfig on
// first use or when the previous default engine was shut down.
func Default() *Engine {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultEngine == nil || defaultEngine.IsShutdown() {
		cfg := DefaultConfig()
		e, err := NewEngine(&cfg)
		if err != nil {
			// DefaultConfig always validates
			panic(fmt.Sprintf("parallel: default engine: %v", err))
		}
		defaultEngine = e
	}

	return defaultEngine
}

// ConfigureDefault builds the process-wide engine from cfg.
//
// It must be called before the first operation that uses the default engine,
// or after that engine was shut down. While a default engine is running it
// returns ErrDefaultInitialized and leaves the engine unchanged.
//
// Example:
//
//	func main() {
//	    cfg := parallel.Config{PoolSize: 16}
//	    if err := parallel.ConfigureDefault(&cfg, parallel.WithLogger(logger)); err != nil {
//	        log.Fatal(err)
//	    }
//	    ...
//	}
func ConfigureDefault(cfg *Config, opts ...Option) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultEngine != nil && !defaultEngine.IsShutdown() {
		return ErrDefaultInitialized
	}

	e, err := NewEngine(cfg, opts...)
	if err != nil {
		return err
	}
	defaultEngine = e

	return nil
}
