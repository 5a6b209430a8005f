// Package hooks provides default hook implementations.
package hooks

import (
	"context"

	"github.com/Overruler/gs-collections/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default used when no custom hooks are provided, so the
// dispatcher never has to nil-check individual callbacks.
type NopHooks struct{}

var (
	_ func(context.Context, string, types.State, types.State) error = (*NopHooks)(nil).OnStateChanged
	_ func(context.Context, string, error) error                    = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnStateChanged: h.OnStateChanged,
		OnError:        h.OnError,
	}
}

// Fill returns h with every nil callback replaced by its no-op counterpart.
func Fill(h *types.Hooks) types.Hooks {
	out := NewNop()
	if h == nil {
		return out
	}
	if h.OnStateChanged != nil {
		out.OnStateChanged = h.OnStateChanged
	}
	if h.OnError != nil {
		out.OnError = h.OnError
	}

	return out
}

// OnStateChanged is a no-op implementation.
func (h *NopHooks) OnStateChanged(_ context.Context, _ string, _, _ types.State) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(_ context.Context, _ string, _ error) error {
	return nil
}
