package parallel

import "github.com/Overruler/gs-collections/types"

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	hooks   *types.Hooks
	metrics types.MetricsCollector
	logger  types.Logger
	planner types.BatchPlanner
}

// WithHooks sets dispatcher event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	hooks := &parallel.Hooks{
//	    OnStateChanged: func(ctx context.Context, op string, from, to parallel.State) error {
//	        log.Printf("%s: %s -> %s", op, from, to)
//	        return nil
//	    },
//	}
//	engine, err := parallel.NewEngine(&cfg, parallel.WithHooks(hooks))
func WithHooks(hooks *types.Hooks) Option {
	return func(o *engineOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer, "app")
//	engine, err := parallel.NewEngine(&cfg, parallel.WithMetrics(collector))
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation, e.g. logging.NewSlog(slog.Default())
//
// Returns:
//   - Option: Functional option for NewEngine
func WithLogger(logger types.Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithDefaultPlanner overrides the planner named by Config.Planner.
//
// Parameters:
//   - planner: BatchPlanner used by every call that does not pass WithPlanner
//
// Returns:
//   - Option: Functional option for NewEngine
func WithDefaultPlanner(planner types.BatchPlanner) Option {
	return func(o *engineOptions) {
		o.planner = planner
	}
}

// CallOption configures a single bulk operation.
type CallOption func(*callOptions)

// callOptions holds per-call settings. Unset values fall back to the engine.
type callOptions struct {
	engine *Engine

	taskCount    int
	taskCountSet bool

	minBatchSize    int
	minBatchSizeSet bool

	ordered bool
	planner types.BatchPlanner

	// op overrides the operation name for operations built on another one.
	op string
}

func (o callOptions) opName(op string) string {
	if o.op != "" {
		return o.op
	}

	return op
}

func withOp(op string) CallOption {
	return func(o *callOptions) {
		o.op = op
	}
}

func newCallOptions(opts []CallOption) callOptions {
	co := callOptions{ordered: true}
	for _, opt := range opts {
		opt(&co)
	}
	if co.engine == nil {
		co.engine = Default()
	}

	return co
}

// WithEngine runs the call on engine instead of the process-wide default.
//
// Example:
//
//	cfg := parallel.TestConfig()
//	engine, _ := parallel.NewEngine(&cfg)
//	defer engine.Shutdown()
//	n, err := parallel.Count(ctx, src, isOdd, parallel.WithEngine(engine))
func WithEngine(engine *Engine) CallOption {
	return func(o *callOptions) {
		o.engine = engine
	}
}

// WithTaskCount bounds the number of batches for this call.
// A value <= 0 makes the call fail with ErrInvalidTaskCount.
func WithTaskCount(n int) CallOption {
	return func(o *callOptions) {
		o.taskCount = n
		o.taskCountSet = true
	}
}

// WithMinBatchSize sets the smallest batch worth scheduling for this call.
// A value <= 0 makes the call fail with ErrInvalidBatchSize.
func WithMinBatchSize(n int) CallOption {
	return func(o *callOptions) {
		o.minBatchSize = n
		o.minBatchSizeSet = true
	}
}

// WithOrdered chooses whether select, reject, collect and collectIf results
// keep source order. Ordered is the default. Unordered results are
// concatenated in batch completion order.
func WithOrdered(ordered bool) CallOption {
	return func(o *callOptions) {
		o.ordered = ordered
	}
}

// WithPlanner sets the batch planner for this call.
//
// Planners whose schemes are not ordered (e.g. strategy.RoundRobin) are only
// accepted by order-free operations and by unordered calls.
func WithPlanner(planner types.BatchPlanner) CallOption {
	return func(o *callOptions) {
		o.planner = planner
	}
}
