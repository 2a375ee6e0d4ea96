package orchestrator_test

import (
	"net"
	"testing"

	"github.com/krisarmstrong/rfc2544-master/pkg/ioadapter"
	"github.com/krisarmstrong/rfc2544-master/pkg/orchestrator"
	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
)

// E5: back-to-back on a lossless reflector should reach the defensive cap
// within 20 doublings.
func TestBackToBackLosslessReflectorReachesCap(t *testing.T) {
	lb := ioadapter.NewLoopback(net.HardwareAddr{0, 0, 0, 0, 0, 1})
	src, dst := testEndpoints()
	e := trial.NewEngine(trial.Config{Adapter: lb, Src: src, Dst: dst, LineRateBps: 1_000_000_000})

	result, err := orchestrator.RunBackToBack(e, orchestrator.BackToBackParams{
		FrameSize:    64,
		InitialBurst: 2,
		BurstTrials:  1,
		LineRateBps:  1_000_000_000,
	})
	if err != nil {
		t.Fatalf("RunBackToBack: %v", err)
	}
	if result.MaxBurst != 1<<20 {
		t.Errorf("MaxBurst = %d, want defensive cap %d", result.MaxBurst, 1<<20)
	}
	if result.Trials > 20 {
		t.Errorf("Trials (successful doublings) = %d, want <= 20", result.Trials)
	}
}

func TestBackToBackStopsAtFirstLoss(t *testing.T) {
	lb := ioadapter.NewLoopback(net.HardwareAddr{0, 0, 0, 0, 0, 1})
	lb.SetCapacityPPS(50)
	src, dst := testEndpoints()
	e := trial.NewEngine(trial.Config{Adapter: lb, Src: src, Dst: dst, LineRateBps: 1_000_000_000})

	result, err := orchestrator.RunBackToBack(e, orchestrator.BackToBackParams{
		FrameSize:    64,
		InitialBurst: 2,
		BurstTrials:  1,
		LineRateBps:  1_000_000_000,
	})
	if err != nil {
		t.Fatalf("RunBackToBack: %v", err)
	}
	if result.MaxBurst >= 1<<20 {
		t.Errorf("MaxBurst = %d, want it to stop well short of the defensive cap against a limited DUT", result.MaxBurst)
	}
}
