package strategy

import "fmt"

// batchLayout validates planner arguments and returns the number of batches
// and the nominal batch size for a source.
//
// The count is first bounded by taskCount and by how many minimum-size
// batches fit in the source, then re-derived from the rounded-up batch size
// so that no trailing batch is empty.
func batchLayout(sourceSize, taskCount, minBatchSize int) (count int, batchSize int, err error) {
	if taskCount <= 0 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrInvalidTaskCount, taskCount)
	}
	if minBatchSize <= 0 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, minBatchSize)
	}
	if sourceSize < 0 {
		return 0, 0, fmt.Errorf("source size must be non-negative: got %d", sourceSize)
	}
	if sourceSize == 0 {
		return 0, 0, nil
	}

	count = min(taskCount, max(1, sourceSize/minBatchSize))
	batchSize = ceilDiv(sourceSize, count)
	count = ceilDiv(sourceSize, batchSize)

	return count, batchSize, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
