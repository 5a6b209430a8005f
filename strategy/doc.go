// Package strategy provides built-in batch planner implementations.
//
// Batch planners determine how a source is split into units of work.
// The package includes two built-in planners:
//
//   - Contiguous: dense index ranges, preserves source order (default)
//   - RoundRobin: strided batches, order free
//
// # Planner Selection Guide
//
// Contiguous:
//   - Use for every order-sensitive operation (select, reject, collect)
//   - Each batch touches adjacent memory
//   - Concatenating batch results by index reproduces source order
//
// RoundRobin:
//   - Use when per-element cost grows with the index (e.g. sorted inputs
//     where later elements are more expensive)
//   - Spreads expensive regions across all batches
//   - Only valid for order-free calls (count, groupBy, aggregateBy, or
//     unordered select/collect)
//
// Both planners compute the same batch count:
//
//	count     = min(taskCount, max(1, size/minBatchSize))
//	batchSize = ceil(size/count)
//
// Custom planners can be implemented by satisfying the types.BatchPlanner interface.
package strategy
