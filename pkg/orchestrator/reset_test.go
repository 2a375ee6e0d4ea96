package orchestrator_test

import (
	"net"
	"testing"

	"github.com/krisarmstrong/rfc2544-master/pkg/ioadapter"
	"github.com/krisarmstrong/rfc2544-master/pkg/orchestrator"
	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
)

func TestResetOnLosslessReflector(t *testing.T) {
	lb := ioadapter.NewLoopback(net.HardwareAddr{0, 0, 0, 0, 0, 1})
	src, dst := testEndpoints()
	e := trial.NewEngine(trial.Config{Adapter: lb, Src: src, Dst: dst, LineRateBps: 1_000_000_000})

	result, err := orchestrator.RunReset(e, orchestrator.ResetParams{
		FrameSize:    512,
		ProbeRatePct: 50,
	})
	if err != nil {
		t.Fatalf("RunReset: %v", err)
	}
	if result.ResetTimeMs < 0 {
		t.Errorf("ResetTimeMs = %d, want detection on a lossless reflector", result.ResetTimeMs)
	}
}
