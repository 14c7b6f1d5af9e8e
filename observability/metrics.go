package observability

import (
	gu "github.com/xraph/go-utils/metrics"
)

// Metrics holds metric instruments for docuhook, backed by any go-utils
// MetricFactory. Pass fapp.Metrics() from a forge extension, or
// metrics.NewMetricsCollector("docuhook") for standalone usage.
type Metrics struct {
	HandlersRegistered gu.Gauge
	WorkflowsCreated   gu.Counter
	WorkflowsDeleted   gu.Counter
	EventsDispatched   gu.Counter
	DispatchLatency    gu.Histogram
}

// NewMetrics creates docuhook metric instruments using the supplied factory.
func NewMetrics(factory gu.MetricFactory) *Metrics {
	return &Metrics{
		HandlersRegistered: factory.Gauge("docuhook_handlers_registered"),
		WorkflowsCreated:   factory.Counter("docuhook_workflows_created_total"),
		WorkflowsDeleted:   factory.Counter("docuhook_workflows_deleted_total"),
		EventsDispatched:   factory.Counter("docuhook_events_dispatched_total"),
		DispatchLatency:    factory.Histogram("docuhook_dispatch_latency_seconds"),
	}
}

// RecordDispatch records one inbound webhook dispatch with its outcome and
// callback latency.
func (m *Metrics) RecordDispatch(status string, latencySeconds float64) {
	m.EventsDispatched.WithLabels(map[string]string{"status": status}).Inc()
	m.DispatchLatency.Observe(latencySeconds)
}
