package orchestrator

import (
	"time"

	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
	"github.com/krisarmstrong/rfc2544-master/pkg/wire"
)

// FrameLossParams configures a frame-loss-vs-offered-load sweep.
type FrameLossParams struct {
	FrameSize     uint32
	StartPct      float64
	EndPct        float64
	StepPct       float64
	LineRateBps   uint64
	TrialDuration time.Duration
	Warmup        time.Duration
}

// FrameLossPoint is one step of the sweep.
type FrameLossPoint struct {
	OfferedRatePct float64
	ActualRateMbps float64
	FramesTx       uint64
	FramesRx       uint64
	LossPct        float64
}

// RunFrameLoss sweeps offered load from StartPct down to EndPct in StepPct
// decrements, one trial per step.
func RunFrameLoss(e *trial.Engine, p FrameLossParams) ([]FrameLossPoint, error) {
	var points []FrameLossPoint

	for load := p.StartPct; load >= p.EndPct; load -= p.StepPct {
		result, err := e.Run(trial.Params{
			FrameSize: p.FrameSize,
			RatePct:   load,
			Duration:  p.TrialDuration,
			Warmup:    p.Warmup,
			Signature: wire.SignatureRFC2544,
			StreamID:  1,
		})
		if isCancelled(err) {
			return points, err
		}
		if err != nil {
			return points, err
		}

		points = append(points, FrameLossPoint{
			OfferedRatePct: load,
			ActualRateMbps: result.AchievedMbps,
			FramesTx:       result.PacketsSent,
			FramesRx:       result.PacketsRecv,
			LossPct:        result.LossPct,
		})
	}

	return points, nil
}
