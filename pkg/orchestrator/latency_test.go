package orchestrator_test

import (
	"net"
	"testing"
	"time"

	"github.com/krisarmstrong/rfc2544-master/pkg/ioadapter"
	"github.com/krisarmstrong/rfc2544-master/pkg/orchestrator"
	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
)

// E3: latency sweep at 10/50/90% should each produce a populated, ordered
// LatencyStats.
func TestLatencySweep(t *testing.T) {
	lb := ioadapter.NewLoopback(net.HardwareAddr{0, 0, 0, 0, 0, 1})
	src, dst := testEndpoints()
	e := trial.NewEngine(trial.Config{Adapter: lb, Src: src, Dst: dst, LineRateBps: 1_000_000_000})

	results, err := orchestrator.RunLatency(e, orchestrator.LatencyParams{
		FrameSize:     512,
		LoadPcts:      []float64{10, 50, 90},
		TrialDuration: 20 * time.Millisecond,
		Warmup:        2 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("RunLatency: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for _, r := range results {
		if r.Latency.Count == 0 {
			t.Errorf("load %f%%: Count = 0, want > 0", r.OfferedRatePct)
		}
		if r.Latency.MinNs > int64(r.Latency.AvgNs) || int64(r.Latency.AvgNs) > r.Latency.MaxNs {
			t.Errorf("load %f%%: min/avg/max ordering violated: %+v", r.OfferedRatePct, r.Latency)
		}
	}
}
