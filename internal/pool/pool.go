package pool

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Overruler/gs-collections/internal/logging"
	"github.com/Overruler/gs-collections/internal/metrics"
	"github.com/Overruler/gs-collections/types"
)

// Pool is a fixed-size set of persistent worker goroutines fed by a bounded queue.
type Pool struct {
	size    int
	queue   chan func()
	workers errgroup.Group

	// mu orders sends against close(queue): senders hold the read lock.
	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once

	logger  types.Logger
	metrics types.PoolMetrics
}

// Option configures a Pool.
type Option func(*Pool)

// WithLogger sets the pool logger.
func WithLogger(logger types.Logger) Option {
	return func(p *Pool) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics sets the pool metrics sink.
func WithMetrics(m types.PoolMetrics) Option {
	return func(p *Pool) {
		if m != nil {
			p.metrics = m
		}
	}
}

// New starts a pool with size workers and a queue holding queueCapacity
// pending units.
//
// Parameters:
//   - size: Number of worker goroutines (GOMAXPROCS if <= 0)
//   - queueCapacity: Pending units accepted before Submit blocks (size if <= 0)
//   - opts: WithLogger, WithMetrics
//
// Returns:
//   - *Pool: Running pool; call Close to stop its workers
func New(size, queueCapacity int, opts ...Option) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	if queueCapacity <= 0 {
		queueCapacity = size
	}

	p := &Pool{
		size:    size,
		queue:   make(chan func(), queueCapacity),
		logger:  logging.NewNop(),
		metrics: metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	for range size {
		p.workers.Go(func() error {
			for run := range p.queue {
				run()
			}

			return nil
		})
	}

	p.logger.Debug("worker pool started", "workers", size, "queue_capacity", queueCapacity)

	return p
}

// Size returns the number of worker goroutines.
func (p *Pool) Size() int {
	return p.size
}

// QueueCapacity returns the bounded queue capacity.
func (p *Pool) QueueCapacity() int {
	return cap(p.queue)
}

// Pending returns the number of queued units not yet picked up by a worker.
func (p *Pool) Pending() int {
	return len(p.queue)
}

// Closed reports whether Close was called.
func (p *Pool) Closed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.closed
}

// Close stops accepting submissions, lets queued units finish and waits for
// every worker to exit. Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.queue)
		p.mu.Unlock()

		_ = p.workers.Wait()
		p.logger.Debug("worker pool stopped", "workers", p.size)
	})
}

// enqueue hands run to a worker.
//
// While the queue is full the caller takes the oldest queued unit and runs it
// itself, then tries again. A unit that submits nested work to its own pool
// therefore keeps the queue moving even when every worker is busy.
func (p *Pool) enqueue(ctx context.Context, run func()) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("submit: %w", err)
	}

	sent, err := p.offer(ctx, run, false)
	if err != nil || sent {
		return err
	}

	start := time.Now()
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("submit: %w", err)
		}

		sent, err := p.offer(ctx, run, true)
		if err != nil {
			return err
		}
		if sent {
			p.metrics.RecordSubmitWait(time.Since(start).Seconds())
			return nil
		}
	}
}

// offer tries to queue run. With block set it waits until run is queued, ctx
// ends, or a queued unit can be taken; a taken unit runs on the caller after
// the lock is released.
func (p *Pool) offer(ctx context.Context, run func(), block bool) (bool, error) {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false, ErrPoolClosed
	}

	if !block {
		select {
		case p.queue <- run:
			p.mu.RUnlock()
			p.metrics.RecordQueueDepth(len(p.queue))

			return true, nil
		default:
			p.mu.RUnlock()
			return false, nil
		}
	}

	var queued func()
	select {
	case p.queue <- run:
		p.mu.RUnlock()
		p.metrics.RecordQueueDepth(len(p.queue))

		return true, nil
	case queued = <-p.queue:
	case <-ctx.Done():
	}
	p.mu.RUnlock()

	if queued != nil {
		queued()
	}

	return false, nil
}

// Future is the pending result of a submitted function.
type Future[A any] struct {
	pool *Pool
	done chan struct{}
	val  A
	err  error
}

// Wait blocks until the function finished and returns its result.
// While waiting, the caller runs units still queued on the pool, so a worker
// waiting on its own nested submissions never idles the pool.
// Wait may be called any number of times.
func (f *Future[A]) Wait() (A, error) {
	for {
		select {
		case <-f.done:
			return f.val, f.err
		default:
		}

		select {
		case <-f.done:
		case run, ok := <-f.pool.queue:
			if !ok {
				// closed and drained: f is running on some goroutine
				<-f.done
				continue
			}
			run()
		}
	}
}

// Done returns a channel closed once the result is available.
func (f *Future[A]) Done() <-chan struct{} {
	return f.done
}

// Submit schedules fn on p.
//
// While the queue is full Submit runs queued units on the caller until a slot
// frees. It fails with ErrPoolClosed after Close, or with ctx.Err() if ctx is
// done before fn is queued. Once accepted, fn runs to completion regardless
// of ctx.
//
// Parameters:
//   - ctx: Checked before and while waiting for a queue slot
//   - p: Target pool
//   - fn: Unit of work; a panic is recovered into *PanicError
//
// Returns:
//   - *Future[A]: Handle to the result
//   - error: ErrPoolClosed or a context error
func Submit[A any](ctx context.Context, p *Pool, fn func() (A, error)) (*Future[A], error) {
	f := &Future[A]{pool: p, done: make(chan struct{})}

	run := func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = &PanicError{Value: r, Stack: debug.Stack()}
			}
		}()

		f.val, f.err = fn()
	}

	if err := p.enqueue(ctx, run); err != nil {
		return nil, err
	}

	return f, nil
}
