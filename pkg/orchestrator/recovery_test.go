package orchestrator_test

import (
	"net"
	"testing"
	"time"

	"github.com/krisarmstrong/rfc2544-master/pkg/ioadapter"
	"github.com/krisarmstrong/rfc2544-master/pkg/orchestrator"
	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
)

func TestRecoveryOnLosslessReflector(t *testing.T) {
	lb := ioadapter.NewLoopback(net.HardwareAddr{0, 0, 0, 0, 0, 1})
	src, dst := testEndpoints()
	e := trial.NewEngine(trial.Config{Adapter: lb, Src: src, Dst: dst, LineRateBps: 1_000_000_000})

	result, err := orchestrator.RunRecovery(e, orchestrator.RecoveryParams{
		FrameSize:          512,
		ThroughputRateMbps: 500,
		OverloadSec:        20 * time.Millisecond,
		LineRateBps:        1_000_000_000,
	})
	if err != nil {
		t.Fatalf("RunRecovery: %v", err)
	}
	if result.RecoveryTimeMs < 0 {
		t.Errorf("RecoveryTimeMs = %d, want a DUT that never drops to recover promptly", result.RecoveryTimeMs)
	}
}
