package logging

import "github.com/Overruler/gs-collections/types"

// NopLogger discards all log messages. It is the engine default.
type NopLogger struct{}

var _ types.Logger = (*NopLogger)(nil)

// NewNop creates a no-op logger.
func NewNop() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Debug(_ string, _ ...any) {}
func (n *NopLogger) Info(_ string, _ ...any)  {}
func (n *NopLogger) Warn(_ string, _ ...any)  {}
func (n *NopLogger) Error(_ string, _ ...any) {}

// Fatal discards the message and does NOT exit.
func (n *NopLogger) Fatal(_ string, _ ...any) {}
