package workload

import (
	"time"
)

// Timing is the result of Measure.
type Timing struct {
	Name    string
	Runs    int
	Total   time.Duration
	Average time.Duration
}

// Measure runs fn warmup times untimed, then runs times timed, and returns
// the average. The first error stops the measurement.
func Measure(name string, runs, warmup int, fn func() error) (Timing, error) {
	for range warmup {
		if err := fn(); err != nil {
			return Timing{}, err
		}
	}

	t := Timing{Name: name, Runs: runs}
	start := time.Now()
	for range runs {
		if err := fn(); err != nil {
			return Timing{}, err
		}
	}
	t.Total = time.Since(start)
	if runs > 0 {
		t.Average = t.Total / time.Duration(runs)
	}

	return t, nil
}
