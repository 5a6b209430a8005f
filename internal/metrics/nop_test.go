package metrics

import (
	"testing"

	"github.com/Overruler/gs-collections/types"
	"github.com/stretchr/testify/require"
)

func TestNopMetrics(t *testing.T) {
	metrics := NewNop()

	require.NotPanics(t, func() {
		metrics.RecordStateTransition("select", types.StatePlanning, types.StateSubmitting)
		metrics.RecordStateTransition("", types.State(999), types.State(1000))
		metrics.RecordOperation("count", "parallel", 0.5, true)
		metrics.RecordOperation("count", "serial", -1, false)
		metrics.RecordBatches("group_by", 8)
		metrics.RecordUnitFailure("collect")
		metrics.RecordSubmitWait(0.001)
		metrics.RecordQueueDepth(-1)
	})
}
