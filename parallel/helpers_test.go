package parallel

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Overruler/gs-collections/internal/logging"
	"github.com/Overruler/gs-collections/types"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()

	cfg := TestConfig()
	opts = append([]Option{WithLogger(logging.NewTest(t))}, opts...)
	engine, err := NewEngine(&cfg, opts...)
	require.NoError(t, err)
	t.Cleanup(engine.Shutdown)

	return engine
}

type transition struct {
	op       string
	from, to types.State
}

// transitionRecorder captures dispatcher transitions through hooks.
type transitionRecorder struct {
	mu          sync.Mutex
	transitions []transition
	errors      []error
}

func (r *transitionRecorder) hooks() *types.Hooks {
	return &types.Hooks{
		OnStateChanged: func(_ context.Context, op string, from, to types.State) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.transitions = append(r.transitions, transition{op: op, from: from, to: to})

			return nil
		},
		OnError: func(_ context.Context, _ string, err error) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.errors = append(r.errors, err)

			return nil
		},
	}
}

func (r *transitionRecorder) states() []types.State {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.State, 0, len(r.transitions))
	for _, tr := range r.transitions {
		out = append(out, tr.to)
	}

	return out
}

func (r *transitionRecorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transitions = nil
	r.errors = nil
}

// fixedPlanner returns a preset scheme regardless of the requested limits.
type fixedPlanner struct {
	batches [][2]int // start, len
}

func (p fixedPlanner) Plan(size, _, _ int) (types.PartitionScheme, error) {
	scheme := types.PartitionScheme{SourceSize: size, Ordered: true}
	for i, b := range p.batches {
		scheme.Batches = append(scheme.Batches, types.Batch{Index: i, Start: b[0], Len: b[1], Stride: 1})
	}

	return scheme, nil
}

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i - n/2
	}

	return out
}

func serialFilter[T any](items []T, pred func(T) bool, keep bool) []T {
	out := []T{}
	for _, item := range items {
		if pred(item) == keep {
			out = append(out, item)
		}
	}

	return out
}

func workloadRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}
