package observability

import (
	"testing"

	gu "github.com/xraph/go-utils/metrics"
)

func TestNewMetricsInstruments(t *testing.T) {
	m := NewMetrics(gu.NewMetricsCollector("docuhook/test"))

	if m.HandlersRegistered == nil {
		t.Fatal("HandlersRegistered should not be nil")
	}
	if m.WorkflowsCreated == nil {
		t.Fatal("WorkflowsCreated should not be nil")
	}
	if m.WorkflowsDeleted == nil {
		t.Fatal("WorkflowsDeleted should not be nil")
	}
	if m.EventsDispatched == nil {
		t.Fatal("EventsDispatched should not be nil")
	}
	if m.DispatchLatency == nil {
		t.Fatal("DispatchLatency should not be nil")
	}
}

func TestRecordDispatch(t *testing.T) {
	m := NewMetrics(gu.NewMetricsCollector("docuhook/test"))

	m.RecordDispatch("ok", 0.02)
	m.RecordDispatch("ok", 0.15)
	m.RecordDispatch("error", 0.01)

	m.HandlersRegistered.Set(3)
	m.WorkflowsCreated.Inc()
	m.WorkflowsDeleted.Inc()
}
