package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Overruler/gs-collections/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on the first recorded value,
// so constructing a PrometheusCollector that is never used registers nothing.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	stateTransitions *prometheus.CounterVec
	operations       *prometheus.CounterVec
	opDuration       *prometheus.HistogramVec
	batches          *prometheus.HistogramVec
	unitFailures     *prometheus.CounterVec
	submitWait       prometheus.Histogram
	queueDepth       prometheus.Gauge
}

var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "gscollections" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "gscollections"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.stateTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "dispatch",
			Name:      "state_transitions_total",
			Help:      "Dispatcher state transitions by operation and target state.",
		}, []string{"op", "from", "to"})

		p.operations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "dispatch",
			Name:      "operations_total",
			Help:      "Finished bulk operations by op, mode (parallel,serial,empty) and result.",
		}, []string{"op", "mode", "result"})

		p.opDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "dispatch",
			Name:      "operation_duration_seconds",
			Help:      "Wall time of bulk operations in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
		}, []string{"op", "mode"})

		p.batches = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "dispatch",
			Name:      "batches",
			Help:      "Number of batches planned per operation.",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 128},
		}, []string{"op"})

		p.unitFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "dispatch",
			Name:      "unit_failures_total",
			Help:      "Units of work that failed by operation.",
		}, []string{"op"})

		p.submitWait = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "pool",
			Name:      "submit_wait_seconds",
			Help:      "Time submissions spent blocked on a full queue.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		})

		p.queueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "pool",
			Name:      "queue_depth",
			Help:      "Units of work waiting for a worker.",
		})

		p.reg.MustRegister(
			p.stateTransitions,
			p.operations,
			p.opDuration,
			p.batches,
			p.unitFailures,
			p.submitWait,
			p.queueDepth,
		)
	})
}

// RecordStateTransition increments the transition counter.
func (p *PrometheusCollector) RecordStateTransition(op string, from, to types.State) {
	p.ensureRegistered()
	p.stateTransitions.WithLabelValues(op, from.String(), to.String()).Inc()
}

// RecordOperation counts the operation outcome and observes its duration.
func (p *PrometheusCollector) RecordOperation(op string, mode string, duration float64, success bool) {
	p.ensureRegistered()
	result := "success"
	if !success {
		result = "failure"
	}
	p.operations.WithLabelValues(op, mode, result).Inc()
	p.opDuration.WithLabelValues(op, mode).Observe(duration)
}

// RecordBatches observes the planned batch count.
func (p *PrometheusCollector) RecordBatches(op string, count int) {
	p.ensureRegistered()
	p.batches.WithLabelValues(op).Observe(float64(count))
}

// RecordUnitFailure increments the unit failure counter.
func (p *PrometheusCollector) RecordUnitFailure(op string) {
	p.ensureRegistered()
	p.unitFailures.WithLabelValues(op).Inc()
}

// RecordSubmitWait observes a blocked submission.
func (p *PrometheusCollector) RecordSubmitWait(duration float64) {
	p.ensureRegistered()
	p.submitWait.Observe(duration)
}

// RecordQueueDepth sets the queue depth gauge.
func (p *PrometheusCollector) RecordQueueDepth(depth int) {
	p.ensureRegistered()
	p.queueDepth.Set(float64(depth))
}
