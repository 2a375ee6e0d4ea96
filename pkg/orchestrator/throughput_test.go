package orchestrator_test

import (
	"net"
	"testing"
	"time"

	"github.com/krisarmstrong/rfc2544-master/pkg/ioadapter"
	"github.com/krisarmstrong/rfc2544-master/pkg/orchestrator"
	"github.com/krisarmstrong/rfc2544-master/pkg/pacer"
	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
	"github.com/krisarmstrong/rfc2544-master/pkg/wire"
)

func testEndpoints() (wire.Endpoint, wire.Endpoint) {
	src := wire.Endpoint{MAC: net.HardwareAddr{0, 0, 0, 0, 0, 1}, IP: net.IPv4(10, 0, 0, 1), Port: 12345}
	dst := wire.Endpoint{MAC: net.HardwareAddr{0, 0, 0, 0, 0, 2}, IP: net.IPv4(10, 0, 0, 2), Port: 3842}
	return src, dst
}

// E1: throughput on a lossless reflector should find close to 100%.
func TestThroughputLosslessReflector(t *testing.T) {
	lb := ioadapter.NewLoopback(net.HardwareAddr{0, 0, 0, 0, 0, 1})
	src, dst := testEndpoints()
	e := trial.NewEngine(trial.Config{Adapter: lb, Src: src, Dst: dst, LineRateBps: 1_000_000_000})

	result, err := orchestrator.RunThroughput(e, orchestrator.ThroughputParams{
		FrameSize:         512,
		InitialRatePct:    100,
		ResolutionPct:     0.1,
		MaxIterations:     20,
		AcceptableLossPct: 0,
		TrialDuration:     20 * time.Millisecond,
		Warmup:            2 * time.Millisecond,
		LineRateBps:       1_000_000_000,
	})
	if err != nil {
		t.Fatalf("RunThroughput: %v", err)
	}
	if result.MaxRatePct < 99.9 {
		t.Errorf("MaxRatePct = %f, want >= 99.9 on a lossless reflector", result.MaxRatePct)
	}
	if result.Iterations > 20 {
		t.Errorf("Iterations = %d, want <= 20", result.Iterations)
	}
}

// E2: throughput against a DUT that saturates at 70% of max pps.
func TestThroughputSaturatedDUT(t *testing.T) {
	lb := ioadapter.NewLoopback(net.HardwareAddr{0, 0, 0, 0, 0, 1})
	maxPPS := pacer.CalcMaxPPS(1_000_000_000, 512)
	lb.SetCapacityPPS(uint64(float64(maxPPS) * 0.70))

	src, dst := testEndpoints()
	e := trial.NewEngine(trial.Config{Adapter: lb, Src: src, Dst: dst, LineRateBps: 1_000_000_000})

	result, err := orchestrator.RunThroughput(e, orchestrator.ThroughputParams{
		FrameSize:         512,
		InitialRatePct:    100,
		ResolutionPct:     0.1,
		MaxIterations:     20,
		AcceptableLossPct: 0,
		TrialDuration:     20 * time.Millisecond,
		Warmup:            2 * time.Millisecond,
		LineRateBps:       1_000_000_000,
	})
	if err != nil {
		t.Fatalf("RunThroughput: %v", err)
	}
	if result.MaxRatePct < 69 || result.MaxRatePct > 71 {
		t.Errorf("MaxRatePct = %f, want roughly 70 against a 70%%-capacity DUT", result.MaxRatePct)
	}
}
