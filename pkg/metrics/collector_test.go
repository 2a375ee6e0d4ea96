package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/krisarmstrong/rfc2544-master/pkg/metrics"
)

func TestNewCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	if c.FramesSent == nil {
		t.Error("FramesSent is nil")
	}
	if c.FramesReceived == nil {
		t.Error("FramesReceived is nil")
	}
	if c.CurrentRatePct == nil {
		t.Error("CurrentRatePct is nil")
	}
	if c.CurrentLossPct == nil {
		t.Error("CurrentLossPct is nil")
	}
	if c.ActiveTestType == nil {
		t.Error("ActiveTestType is nil")
	}
	if c.PacerOverruns == nil {
		t.Error("PacerOverruns is nil")
	}
	if c.TrialsCompleted == nil {
		t.Error("TrialsCompleted is nil")
	}

	if _, err := reg.Gather(); err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
}

func TestRecordTrialLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.RecordTrialStart("throughput")
	c.RecordTx("throughput", "64", 100)
	c.RecordRx("throughput", "64", 95)
	c.SetRatePct(50)
	c.SetLossPct(5)
	c.RecordOverrun("throughput", 1)
	c.RecordTrialEnd("throughput")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("expected at least one metric family after recording activity")
	}
}

func TestNewCollectorNilRegistererUsesDefault(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("NewCollector(nil) panicked: %v", r)
		}
	}()
	// Uses a fresh DefaultRegisterer-backed collector; duplicate
	// registration across test runs in the same process would panic,
	// so this only checks construction does not error synchronously
	// for a name unlikely to collide.
	_ = metrics.NewCollector(nil)
}
