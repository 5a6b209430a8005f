package parallel

import (
	"context"
	"fmt"
	"runtime/debug"
	"slices"
	"time"

	"github.com/Overruler/gs-collections/internal/pool"
	"github.com/Overruler/gs-collections/types"
)

// Execution modes reported to metrics.
const (
	modeEmpty    = "empty"
	modeSerial   = "serial"
	modeParallel = "parallel"
	modeRejected = "rejected"
)

// validTransitions lists the dispatcher state graph.
var validTransitions = map[types.State][]types.State{
	types.StatePlanning:       {types.StateSubmitting, types.StateSerialFallback, types.StateDone, types.StateFailed},
	types.StateSubmitting:     {types.StateAwaiting, types.StateFailed},
	types.StateAwaiting:       {types.StateCombining, types.StateFailed},
	types.StateCombining:      {types.StateDone},
	types.StateSerialFallback: {types.StateDone, types.StateFailed},
	types.StateDone:           {},
	types.StateFailed:         {},
}

func isValidTransition(from, to types.State) bool {
	return slices.Contains(validTransitions[from], to)
}

// job describes one bulk operation to the dispatcher.
//
// unit processes one batch serially and returns its local accumulator.
// combine merges accumulators that arrive indexed by batch number.
// empty is the identity result for a zero-size source.
type job[A, R any] struct {
	op      string
	ordered bool
	unit    func(b types.Batch) A
	combine func(parts []A) R
	empty   func() R
}

// submitted pairs a pool future with the planner's index of its batch.
type submitted[A any] struct {
	batch  int
	future *pool.Future[A]
}

// dispatch tracks one operation through the state machine.
type dispatch struct {
	ctx    context.Context
	op     string
	engine *Engine
	state  types.State
	mode   string
	start  time.Time
}

func (d *dispatch) transition(to types.State) {
	from := d.state
	if !isValidTransition(from, to) {
		d.engine.logger.Error("invalid state transition attempted",
			"op", d.op,
			"from", from.String(),
			"to", to.String(),
		)

		return
	}

	d.state = to

	d.engine.logger.Debug("state transition",
		"op", d.op,
		"from", from.String(),
		"to", to.String(),
	)

	if err := d.engine.hooks.OnStateChanged(d.ctx, d.op, from, to); err != nil {
		d.engine.logger.Warn("state change hook error", "op", d.op, "from", from, "to", to, "error", err)
	}

	d.engine.metrics.RecordStateTransition(d.op, from, to)
}

// fail moves the dispatch to Failed and reports err.
func (d *dispatch) fail(err error) error {
	d.transition(types.StateFailed)
	d.finish(false)

	if hookErr := d.engine.hooks.OnError(d.ctx, d.op, err); hookErr != nil {
		d.engine.logger.Warn("error hook failed", "op", d.op, "error", hookErr)
	}
	d.engine.logger.Debug("operation failed", "op", d.op, "mode", d.mode, "error", err)

	return err
}

func (d *dispatch) finish(success bool) {
	d.engine.metrics.RecordOperation(d.op, d.mode, time.Since(d.start).Seconds(), success)
}

// run executes j over src.
//
// The source is planned into batches; zero batches return the identity
// without touching the pool, one batch runs on the calling goroutine, and
// anything larger is submitted to the engine's pool. Results are combined in
// batch order once every unit finished.
//
// The caller runs queued units while it waits for a queue slot or a result,
// so run may be called from inside a unit executing on the same engine.
func run[T, A, R any](ctx context.Context, src types.Source[T], co callOptions, j job[A, R]) (R, error) {
	var zero R

	j.op = co.opName(j.op)
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("%s: %w", j.op, err)
	}

	e := co.engine
	d := &dispatch{
		ctx:    ctx,
		op:     j.op,
		engine: e,
		state:  types.StatePlanning,
		mode:   modeParallel,
		start:  time.Now(),
	}

	scheme, err := plan(src.Len(), co, j)
	if err != nil {
		d.mode = modeRejected
		return zero, d.fail(fmt.Errorf("%s: %w", j.op, err))
	}

	e.metrics.RecordBatches(j.op, scheme.Count())

	switch {
	case scheme.IsEmpty():
		d.mode = modeEmpty
		d.transition(types.StateDone)
		d.finish(true)

		return j.empty(), nil

	case scheme.IsSerial():
		d.mode = modeSerial
		d.transition(types.StateSerialFallback)

		part, err := runSerial(j, scheme.Batches[0])
		if err != nil {
			e.metrics.RecordUnitFailure(j.op)
			return zero, d.fail(err)
		}

		result := j.combine([]A{part})
		d.transition(types.StateDone)
		d.finish(true)

		return result, nil
	}

	d.transition(types.StateSubmitting)

	futures := make([]submitted[A], 0, scheme.Count())
	var submitErr error
	for _, b := range scheme.Batches {
		f, err := pool.Submit(ctx, e.pool, func() (A, error) {
			return j.unit(b), nil
		})
		if err != nil {
			submitErr = fmt.Errorf("%s: submit batch %d: %w", j.op, b.Index, err)
			break
		}
		futures = append(futures, submitted[A]{batch: b.Index, future: f})
	}

	if submitErr != nil {
		// Units already accepted run to completion; their results are dropped.
		for _, s := range futures {
			_, _ = s.future.Wait()
		}

		return zero, d.fail(submitErr)
	}

	d.transition(types.StateAwaiting)

	parts := make([]A, len(futures))
	var firstErr error
	for i, s := range futures {
		part, err := s.future.Wait()
		if err != nil {
			e.metrics.RecordUnitFailure(j.op)
			if firstErr == nil {
				firstErr = &types.UnitError{Op: j.op, Batch: s.batch, Cause: err}
			}

			continue
		}
		parts[i] = part
	}

	if firstErr != nil {
		return zero, d.fail(firstErr)
	}

	d.transition(types.StateCombining)
	result := j.combine(parts)
	d.transition(types.StateDone)
	d.finish(true)

	return result, nil
}

// plan resolves the call's planner and limits and computes the scheme.
func plan[A, R any](size int, co callOptions, j job[A, R]) (types.PartitionScheme, error) {
	taskCount := co.engine.cfg.TaskCount
	if co.taskCountSet {
		taskCount = co.taskCount
	}

	minBatchSize := co.engine.cfg.MinBatchSize
	if co.minBatchSizeSet {
		minBatchSize = co.minBatchSize
	}

	planner := co.planner
	if planner == nil {
		planner = co.engine.planner
	}

	scheme, err := planner.Plan(size, taskCount, minBatchSize)
	if err != nil {
		return types.PartitionScheme{}, err
	}

	if j.ordered && !scheme.Ordered {
		return types.PartitionScheme{}, ErrOrderUnsupported
	}

	return scheme, nil
}

// runSerial runs a single batch on the calling goroutine.
func runSerial[A, R any](j job[A, R], b types.Batch) (part A, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &types.UnitError{Op: j.op, Batch: b.Index, Cause: &pool.PanicError{Value: r, Stack: debug.Stack()}}
		}
	}()

	return j.unit(b), nil
}
