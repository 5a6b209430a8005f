// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/Overruler/gs-collections/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the engine default.
type NopMetrics struct{}

var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	engine, err := parallel.NewEngine(cfg, parallel.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// DispatchMetrics implementation

// RecordStateTransition discards the state transition metric.
func (n *NopMetrics) RecordStateTransition(_ /* op */ string, _ /* from */, _ /* to */ types.State) {}

// RecordOperation discards the operation metric.
func (n *NopMetrics) RecordOperation(_ /* op */, _ /* mode */ string, _ /* duration */ float64, _ /* success */ bool) {
}

// RecordBatches discards the batch count metric.
func (n *NopMetrics) RecordBatches(_ /* op */ string, _ /* count */ int) {}

// RecordUnitFailure discards the unit failure metric.
func (n *NopMetrics) RecordUnitFailure(_ /* op */ string) {}

// PoolMetrics implementation

// RecordSubmitWait discards the submit wait metric.
func (n *NopMetrics) RecordSubmitWait(_ /* duration */ float64) {}

// RecordQueueDepth discards the queue depth metric.
func (n *NopMetrics) RecordQueueDepth(_ /* depth */ int) {}
