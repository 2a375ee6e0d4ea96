package orchestrator

import (
	"time"

	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
	"github.com/krisarmstrong/rfc2544-master/pkg/wire"
)

// recoveryPollInterval is how often Phase 2 re-probes the DUT.
const recoveryPollInterval = 100 * time.Millisecond

// recoveryProbeDuration is the duration of each Phase 2 probe trial.
const recoveryProbeDuration = time.Second

// recoveryTimeout bounds Phase 2; past it, recovery is reported as absent.
const recoveryTimeout = 60 * time.Second

// recoveryLossThreshold is the loss percentage at or below which the DUT
// is considered recovered.
const recoveryLossThreshold = 0.001

// RecoveryParams configures the two-phase system-recovery test.
type RecoveryParams struct {
	FrameSize          uint32
	ThroughputRateMbps float64
	OverloadSec        time.Duration
	LineRateBps        uint64
}

// RecoveryResult reports how long the DUT took to recover after overload.
type RecoveryResult struct {
	FrameSize       uint32
	OverloadRatePct float64
	RecoveryRatePct float64
	OverloadSec     float64
	RecoveryTimeMs  int64
	FramesLost      uint64
	ProbeTrials     int
}

// RunRecovery overloads the DUT at 110% of its previously measured
// throughput, then probes every 100ms at 50% of throughput until loss
// falls to or below recoveryLossThreshold or recoveryTimeout elapses.
func RunRecovery(e *trial.Engine, p RecoveryParams) (RecoveryResult, error) {
	overloadPct := clampPct(ratePctOf(p.ThroughputRateMbps*1.10, p.LineRateBps))
	recoveryPct := clampPct(ratePctOf(p.ThroughputRateMbps*0.50, p.LineRateBps))

	result := RecoveryResult{
		FrameSize:       p.FrameSize,
		OverloadRatePct: overloadPct,
		RecoveryRatePct: recoveryPct,
		OverloadSec:     p.OverloadSec.Seconds(),
		RecoveryTimeMs:  -1,
	}

	_, err := e.Run(trial.Params{
		FrameSize: p.FrameSize,
		RatePct:   overloadPct,
		Duration:  p.OverloadSec,
		Warmup:    0,
		Signature: wire.SignatureRFC2544,
		StreamID:  1,
	})
	if isCancelled(err) {
		return result, err
	}
	if err != nil {
		return result, err
	}

	phase2Start := time.Now()
	deadline := phase2Start.Add(recoveryTimeout)
	for time.Now().Before(deadline) {
		probe, err := e.Run(trial.Params{
			FrameSize: p.FrameSize,
			RatePct:   recoveryPct,
			Duration:  recoveryProbeDuration,
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
			result.RecoveryTimeMs = time.Since(phase2Start).Milliseconds()
			return result, nil
		}

		time.Sleep(recoveryPollInterval)
	}

	return result, nil
}

// ratePctOf converts a target Mb/s rate into a percentage of lineRateBps.
func ratePctOf(targetMbps float64, lineRateBps uint64) float64 {
	if lineRateBps == 0 {
		return 0
	}
	return targetMbps * 1e6 / float64(lineRateBps) * 100
}

// clampPct bounds a rate percentage to the pacer's accepted (0, 100] range.
func clampPct(pct float64) float64 {
	if pct > 100 {
		return 100
	}
	if pct <= 0 {
		return 0.01
	}
	return pct
}
