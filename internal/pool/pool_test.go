package pool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Overruler/gs-collections/internal/logging"
	"github.com/Overruler/gs-collections/types"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := New(0, 0)
		defer p.Close()

		require.Positive(t, p.Size())
		require.Equal(t, p.Size(), p.QueueCapacity())
	})

	t.Run("explicit sizes", func(t *testing.T) {
		p := New(3, 7, WithLogger(logging.NewTest(t)))
		defer p.Close()

		require.Equal(t, 3, p.Size())
		require.Equal(t, 7, p.QueueCapacity())
	})
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("returns result through future", func(t *testing.T) {
		p := New(2, 2)
		defer p.Close()

		f, err := Submit(ctx, p, func() (string, error) { return "ok", nil })
		require.NoError(t, err)

		v, err := f.Wait()
		require.NoError(t, err)
		require.Equal(t, "ok", v)

		// Wait is repeatable
		v, err = f.Wait()
		require.NoError(t, err)
		require.Equal(t, "ok", v)
	})

	t.Run("propagates function error", func(t *testing.T) {
		p := New(1, 1)
		defer p.Close()

		boom := errors.New("boom")
		f, err := Submit(ctx, p, func() (int, error) { return 0, boom })
		require.NoError(t, err)

		_, err = f.Wait()
		require.ErrorIs(t, err, boom)
	})

	t.Run("recovers panics", func(t *testing.T) {
		p := New(1, 1)
		defer p.Close()

		f, err := Submit(ctx, p, func() (int, error) { panic("bad input") })
		require.NoError(t, err)

		_, err = f.Wait()
		var pe *PanicError
		require.ErrorAs(t, err, &pe)
		require.Equal(t, "bad input", pe.Value)
		require.NotEmpty(t, pe.Stack)

		// worker survived the panic
		f2, err := Submit(ctx, p, func() (int, error) { return 42, nil })
		require.NoError(t, err)
		v, err := f2.Wait()
		require.NoError(t, err)
		require.Equal(t, 42, v)
	})

	t.Run("panic with error value unwraps", func(t *testing.T) {
		p := New(1, 1)
		defer p.Close()

		boom := errors.New("boom")
		f, err := Submit(ctx, p, func() (int, error) { panic(boom) })
		require.NoError(t, err)

		_, err = f.Wait()
		require.ErrorIs(t, err, boom)
	})

	t.Run("runs units concurrently", func(t *testing.T) {
		p := New(4, 4)
		defer p.Close()

		var running, peak atomic.Int32
		release := make(chan struct{})
		futures := make([]*Future[struct{}], 0, 4)
		for range 4 {
			f, err := Submit(ctx, p, func() (struct{}, error) {
				n := running.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				<-release
				running.Add(-1)

				return struct{}{}, nil
			})
			require.NoError(t, err)
			futures = append(futures, f)
		}

		require.Eventually(t, func() bool { return peak.Load() == 4 }, time.Second, time.Millisecond)
		close(release)
		for _, f := range futures {
			_, err := f.Wait()
			require.NoError(t, err)
		}
	})
}

func TestSubmit_Backpressure(t *testing.T) {
	// busy occupies the single worker until release is closed.
	busy := func(t *testing.T, p *Pool, release <-chan struct{}) {
		t.Helper()

		_, err := Submit(context.Background(), p, func() (int, error) {
			<-release
			return 0, nil
		})
		require.NoError(t, err)
		require.Eventually(t, func() bool { return p.Pending() == 0 }, time.Second, time.Millisecond)
	}

	t.Run("full queue runs a queued unit on the caller", func(t *testing.T) {
		p := New(1, 1)
		defer p.Close()

		release := make(chan struct{})
		defer close(release)
		busy(t, p, release)

		var queuedRan atomic.Bool
		queued, err := Submit(context.Background(), p, func() (int, error) {
			queuedRan.Store(true)
			return 1, nil
		})
		require.NoError(t, err)
		require.Equal(t, 1, p.Pending())

		next, err := Submit(context.Background(), p, func() (int, error) { return 2, nil })
		require.NoError(t, err)

		// the caller made room by running the queued unit itself
		require.True(t, queuedRan.Load())
		v, err := queued.Wait()
		require.NoError(t, err)
		require.Equal(t, 1, v)
		require.Equal(t, 1, p.Pending())

		// next is picked up by Wait even though the worker is still busy
		v, err = next.Wait()
		require.NoError(t, err)
		require.Equal(t, 2, v)
	})

	t.Run("done context fails without running queued units", func(t *testing.T) {
		p := New(1, 1)
		defer p.Close()

		release := make(chan struct{})
		defer close(release)
		busy(t, p, release)

		var queuedRan atomic.Bool
		_, err := Submit(context.Background(), p, func() (int, error) {
			queuedRan.Store(true)
			return 0, nil
		})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = Submit(ctx, p, func() (int, error) { return 0, nil })
		require.ErrorIs(t, err, context.Canceled)
		require.False(t, queuedRan.Load())
		require.Equal(t, 1, p.Pending())
	})

	t.Run("context ending while the caller helps", func(t *testing.T) {
		p := New(1, 1)
		defer p.Close()

		release := make(chan struct{})
		defer close(release)
		busy(t, p, release)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// the caller takes this unit while waiting for a slot
		_, err := Submit(context.Background(), p, func() (int, error) {
			cancel()
			return 0, nil
		})
		require.NoError(t, err)

		_, err = Submit(ctx, p, func() (int, error) { return 0, nil })
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestFuture_WaitRunsQueuedUnits(t *testing.T) {
	p := New(1, 4)
	defer p.Close()

	release := make(chan struct{})
	_, err := Submit(context.Background(), p, func() (int, error) {
		<-release
		return 0, nil
	})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return p.Pending() == 0 }, time.Second, time.Millisecond)

	futures := make([]*Future[int], 0, 3)
	for i := range 3 {
		f, err := Submit(context.Background(), p, func() (int, error) { return i, nil })
		require.NoError(t, err)
		futures = append(futures, f)
	}

	// the only worker is blocked, so the waiting caller runs the queue
	for i, f := range futures {
		v, err := f.Wait()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	require.Zero(t, p.Pending())

	close(release)
}

func TestSubmit_NestedOnSamePool(t *testing.T) {
	p := New(2, 2)
	defer p.Close()

	outer := make([]*Future[int], 0, 4)
	for range 4 {
		f, err := Submit(context.Background(), p, func() (int, error) {
			inner := make([]*Future[int], 0, 8)
			for j := range 8 {
				f, err := Submit(context.Background(), p, func() (int, error) { return j, nil })
				if err != nil {
					return 0, err
				}
				inner = append(inner, f)
			}

			sum := 0
			for _, f := range inner {
				v, err := f.Wait()
				if err != nil {
					return 0, err
				}
				sum += v
			}

			return sum, nil
		})
		require.NoError(t, err)
		outer = append(outer, f)
	}

	sums := make(chan int, len(outer))
	go func() {
		for _, f := range outer {
			v, err := f.Wait()
			if err != nil {
				v = -1
			}
			sums <- v
		}
	}()

	for range outer {
		select {
		case v := <-sums:
			require.Equal(t, 28, v)
		case <-time.After(5 * time.Second):
			t.Fatal("nested submissions stalled the pool")
		}
	}
}

func TestClose(t *testing.T) {
	t.Run("rejects submissions after close", func(t *testing.T) {
		p := New(2, 2)
		p.Close()

		require.True(t, p.Closed())
		_, err := Submit(context.Background(), p, func() (int, error) { return 1, nil })
		require.ErrorIs(t, err, ErrPoolClosed)
		require.ErrorIs(t, err, types.ErrPoolExhausted)
	})

	t.Run("drains queued units", func(t *testing.T) {
		p := New(1, 8)

		var ran atomic.Int32
		for range 8 {
			_, err := Submit(context.Background(), p, func() (int, error) {
				ran.Add(1)
				return 0, nil
			})
			require.NoError(t, err)
		}

		p.Close()
		require.Equal(t, int32(8), ran.Load())
	})

	t.Run("is idempotent", func(t *testing.T) {
		p := New(1, 1)
		require.NotPanics(t, func() {
			p.Close()
			p.Close()
		})
	})
}
