package orchestrator

import (
	"time"

	"github.com/krisarmstrong/rfc2544-master/pkg/pacer"
	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
	"github.com/krisarmstrong/rfc2544-master/pkg/wire"
)

// maxBurstFrames is the defensive cap on the doubling probe.
const maxBurstFrames = 1 << 20

// BackToBackParams configures the burst-doubling capacity probe.
type BackToBackParams struct {
	FrameSize     uint32
	InitialBurst  uint64 // default 2
	BurstTrials   int    // default 50
	LineRateBps   uint64
}

// BackToBackResult is the discovered maximum burst size.
type BackToBackResult struct {
	FrameSize      uint32
	MaxBurst       uint64
	BurstDurationUs float64
	Trials         int
}

// RunBackToBack doubles the candidate burst size for as long as every one
// of BurstTrials short trials at full rate reports zero loss, stopping at
// the first trial with any loss or at the defensive cap.
func RunBackToBack(e *trial.Engine, p BackToBackParams) (BackToBackResult, error) {
	burst := p.InitialBurst
	if burst == 0 {
		burst = 2
	}
	trials := p.BurstTrials
	if trials == 0 {
		trials = 50
	}

	maxPPS := pacer.CalcMaxPPS(p.LineRateBps, p.FrameSize)
	var maxBurstAchieved uint64
	successfulDoublings := 0

	for burst <= maxBurstFrames {
		duration := burstDuration(burst, maxPPS)

		lossFree := true
		for i := 0; i < trials; i++ {
			result, err := e.Run(trial.Params{
				FrameSize: p.FrameSize,
				RatePct:   100,
				Duration:  duration,
				Warmup:    0,
				Signature: wire.SignatureRFC2544,
				StreamID:  1,
			})
			if isCancelled(err) {
				return composeBackToBack(p.FrameSize, maxBurstAchieved, maxPPS, successfulDoublings), err
			}
			if err != nil {
				return BackToBackResult{}, err
			}
			if result.LossPct > 0 {
				lossFree = false
				break
			}
		}

		if !lossFree {
			break
		}

		maxBurstAchieved = burst
		successfulDoublings++
		burst *= 2
	}

	return composeBackToBack(p.FrameSize, maxBurstAchieved, maxPPS, successfulDoublings), nil
}

// burstDuration is the minimum trial duration that transmits burst frames
// at the measured max packets-per-second rate.
func burstDuration(burst, maxPPS uint64) time.Duration {
	if maxPPS == 0 {
		maxPPS = 1
	}
	return time.Duration(float64(burst) / float64(maxPPS) * float64(time.Second))
}

func composeBackToBack(frameSize uint32, maxBurst, maxPPS uint64, trials int) BackToBackResult {
	var durationUs float64
	if maxPPS > 0 {
		durationUs = float64(maxBurst) * 1e6 / float64(maxPPS)
	}
	return BackToBackResult{
		FrameSize:       frameSize,
		MaxBurst:        maxBurst,
		BurstDurationUs: durationUs,
		Trials:          trials,
	}
}
