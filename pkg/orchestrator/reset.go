package orchestrator

import (
	"time"

	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
	"github.com/krisarmstrong/rfc2544-master/pkg/wire"
)

// resetProbeInterval and resetTimeout mirror the recovery test's probing
// cadence: a reset test is a recovery test whose overload phase is the
// operator power-cycling or reloading the DUT rather than an offered-load
// overload.
const (
	resetProbeInterval = 100 * time.Millisecond
	resetProbeDuration  = time.Second
	resetTimeout        = 60 * time.Second
)

// ResetParams configures the reset-detection test.
type ResetParams struct {
	FrameSize   uint32
	ProbeRatePct float64
	ManualReset bool
}

// ResetResult reports whether and when the DUT came back after a reset.
type ResetResult struct {
	FrameSize   uint32
	ResetTimeMs int64
	FramesLost  uint64
	ProbeTrials int
	ManualReset bool
}

// RunReset probes the DUT at ProbeRatePct once every 100ms until loss
// drops to or below recoveryLossThreshold (indicating the DUT has
// finished resetting and is forwarding again) or resetTimeout elapses.
func RunReset(e *trial.Engine, p ResetParams) (ResetResult, error) {
	result := ResetResult{
		FrameSize:   p.FrameSize,
		ResetTimeMs: -1,
		ManualReset: p.ManualReset,
	}

	start := time.Now()
	deadline := start.Add(resetTimeout)

	for time.Now().Before(deadline) {
		probe, err := e.Run(trial.Params{
			FrameSize: p.FrameSize,
			RatePct:   p.ProbeRatePct,
			Duration:  resetProbeDuration,
			Warmup:    0,
			Signature: wire.SignatureRFC2544,
			StreamID:  1,
		})
		result.ProbeTrials++
		if isCancelled(err) {
			return result, err
		}
		if err != nil {
			return result, err
		}

		if probe.PacketsSent > probe.PacketsRecv {
			result.FramesLost += probe.PacketsSent - probe.PacketsRecv
		}

		if probe.LossPct <= recoveryLossThreshold {
			result.ResetTimeMs = time.Since(start).Milliseconds()
			return result, nil
		}

		time.Sleep(resetProbeInterval)
	}

	return result, nil
}
