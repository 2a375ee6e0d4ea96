package orchestrator

import (
	"time"

	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
	"github.com/krisarmstrong/rfc2544-master/pkg/wire"
)

// LatencyParams configures a latency-at-offered-loads sweep.
type LatencyParams struct {
	FrameSize     uint32
	LoadPcts      []float64
	TrialDuration time.Duration
	Warmup        time.Duration
}

// LatencyResult is one offered-load measurement point.
type LatencyResult struct {
	FrameSize      uint32
	OfferedRatePct float64
	Latency        trial.LatencyStats
}

// RunLatency measures round-trip latency at each of LoadPcts independently;
// no state carries between loads.
func RunLatency(e *trial.Engine, p LatencyParams) ([]LatencyResult, error) {
	results := make([]LatencyResult, 0, len(p.LoadPcts))

	for _, load := range p.LoadPcts {
		result, err := e.Run(trial.Params{
			FrameSize:       p.FrameSize,
			RatePct:         load,
			Duration:        p.TrialDuration,
			Warmup:          p.Warmup,
			Signature:       wire.SignatureRFC2544,
			StreamID:        1,
			Measure:         true,
			LatencyCapacity: 10_000,
		})
		if isCancelled(err) {
			return results, err
		}
		if err != nil {
			return results, err
		}

		var stats trial.LatencyStats
		if result.Latency != nil {
			stats = *result.Latency
		}
		results = append(results, LatencyResult{
			FrameSize:      p.FrameSize,
			OfferedRatePct: load,
			Latency:        stats,
		})
	}

	return results, nil
}
