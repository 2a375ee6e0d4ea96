package orchestrator

import (
	"time"

	"github.com/krisarmstrong/rfc2544-master/pkg/pacer"
	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
	"github.com/krisarmstrong/rfc2544-master/pkg/wire"
)

// ThroughputParams configures the binary-search throughput test.
type ThroughputParams struct {
	FrameSize         uint32
	InitialRatePct    float64 // default 100
	ResolutionPct     float64 // default 0.1
	MaxIterations     int     // default 20
	AcceptableLossPct float64 // default 0
	TrialDuration     time.Duration
	Warmup            time.Duration
	LineRateBps       uint64
}

// ThroughputResult is the maximum loss-free rate found by the search.
type ThroughputResult struct {
	FrameSize     uint32
	MaxRatePct    float64
	MaxRateMbps   float64
	MaxRatePPS    uint64
	Iterations    int
	LatencyAtBest *trial.LatencyStats
}

// RunThroughput binary-searches [0, InitialRatePct] for the highest
// offered rate whose measured loss stays within AcceptableLossPct,
// terminating when the search window narrows to ResolutionPct, the
// iteration budget is exhausted, or cancellation is observed.
func RunThroughput(e *trial.Engine, p ThroughputParams) (ThroughputResult, error) {
	low, high := 0.0, p.InitialRatePct
	var best float64
	var bestLatency *trial.LatencyStats
	iterations := 0

	for iterations < p.MaxIterations && high-low > p.ResolutionPct {
		mid := (low + high) / 2
		result, err := e.Run(trial.Params{
			FrameSize: p.FrameSize,
			RatePct:   mid,
			Duration:  p.TrialDuration,
			Warmup:    p.Warmup,
			Signature: wire.SignatureRFC2544,
			StreamID:  1,
			Measure:   true,
		})
		iterations++

		if isCancelled(err) {
			return finishThroughput(p.FrameSize, best, bestLatency, iterations, p.LineRateBps), err
		}
		if err != nil {
			return ThroughputResult{}, err
		}

		if result.LossPct <= p.AcceptableLossPct {
			best = mid
			low = mid
			bestLatency = result.Latency
		} else {
			high = mid
		}
	}

	return finishThroughput(p.FrameSize, best, bestLatency, iterations, p.LineRateBps), nil
}

func finishThroughput(frameSize uint32, best float64, latency *trial.LatencyStats, iterations int, lineRateBps uint64) ThroughputResult {
	return ThroughputResult{
		FrameSize:     frameSize,
		MaxRatePct:    best,
		MaxRateMbps:   float64(lineRateBps) * best / 100 / 1e6,
		MaxRatePPS:    uint64(float64(pacer.CalcMaxPPS(lineRateBps, frameSize)) * best / 100),
		Iterations:    iterations,
		LatencyAtBest: latency,
	}
}
