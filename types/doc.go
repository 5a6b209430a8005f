// Package types provides core type definitions and interfaces for the parallel
// iteration engine.
//
// This package contains shared types that are used across multiple packages.
// By keeping these types in a separate package, we avoid import cycles between
// the parallel package and its internal implementations (pool, combine,
// metrics, logging).
//
// Key types:
//   - Source: Read-only, index-addressable collection consumed by units of work
//   - Batch / PartitionScheme: Batch boundaries produced by a BatchPlanner
//   - Predicate / Transform / Aggregator: Caller-supplied behaviors
//   - State: Dispatcher state machine states
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
