// Package pool provides the persistent worker pool that runs units of work.
//
// A Pool starts a fixed number of worker goroutines once and reuses them for
// every submission until Close. Submissions go through a bounded queue: when
// the queue is full, Submit blocks the caller until a worker frees a slot or
// the caller's context ends.
//
// Results are delivered through futures:
//
//	f, err := pool.Submit(ctx, p, func() (int, error) { return countBatch(b), nil })
//	if err != nil {
//	    return err // pool closed or ctx cancelled
//	}
//	n, err := f.Wait()
//
// A panic inside a submitted function is recovered and surfaces as a
// *PanicError from Wait; the worker goroutine survives.
package pool
