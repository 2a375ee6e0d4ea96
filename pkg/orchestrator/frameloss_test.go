package orchestrator_test

import (
	"net"
	"testing"
	"time"

	"github.com/krisarmstrong/rfc2544-master/pkg/ioadapter"
	"github.com/krisarmstrong/rfc2544-master/pkg/orchestrator"
	"github.com/krisarmstrong/rfc2544-master/pkg/pacer"
	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
)

// E4: frame loss from 100% down to 10% in 10% steps should produce 10
// points with non-increasing loss as offered rate decreases.
func TestFrameLossSweep(t *testing.T) {
	lb := ioadapter.NewLoopback(net.HardwareAddr{0, 0, 0, 0, 0, 1})
	maxPPS := pacer.CalcMaxPPS(1_000_000_000, 512)
	lb.SetCapacityPPS(uint64(float64(maxPPS) * 0.55))

	src, dst := testEndpoints()
	e := trial.NewEngine(trial.Config{Adapter: lb, Src: src, Dst: dst, LineRateBps: 1_000_000_000})

	points, err := orchestrator.RunFrameLoss(e, orchestrator.FrameLossParams{
		FrameSize:     512,
		StartPct:      100,
		EndPct:        10,
		StepPct:       10,
		LineRateBps:   1_000_000_000,
		TrialDuration: 15 * time.Millisecond,
		Warmup:        0,
	})
	if err != nil {
		t.Fatalf("RunFrameLoss: %v", err)
	}
	if len(points) != 10 {
		t.Fatalf("got %d points, want 10", len(points))
	}

	for i := 1; i < len(points); i++ {
		if points[i].LossPct > points[i-1].LossPct+1 {
			t.Errorf("loss increased as offered rate decreased: %+v then %+v", points[i-1], points[i])
		}
	}
}
