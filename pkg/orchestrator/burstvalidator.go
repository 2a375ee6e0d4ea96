package orchestrator

import (
	"time"

	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
	"github.com/krisarmstrong/rfc2544-master/pkg/wire"
)

// defaultBurstTolerance is the acceptable fractional deviation of a
// measured burst from its configured size, used when
// BurstValidatorParams.Tolerance is left at zero.
const defaultBurstTolerance = 0.10

// burstCalibrationDuration is how long the validator drives line-rate
// traffic to observe the CBS/EBS transition.
const burstCalibrationDuration = 2 * time.Second

// BurstValidatorParams configures a CBS/EBS calibration burst.
type BurstValidatorParams struct {
	Service Service

	// Tolerance is the acceptable fractional deviation (0.10 = 10%) of a
	// measured burst from its configured CBS/EBS; 0 selects
	// defaultBurstTolerance.
	Tolerance float64
}

// BurstValidatorResult reports the measured green/yellow run lengths
// against the service's configured CBS/EBS.
type BurstValidatorResult struct {
	ServiceID      uint32
	MeasuredCBS    uint64
	MeasuredEBS    uint64
	CBSValid       bool
	EBSValid       bool
}

// RunBurstValidator sends a calibration burst at line rate and counts the
// longest consecutive run of green frames (the measured CBS) and the
// longest consecutive run of yellow frames immediately following it (the
// measured EBS), then checks each against its configured size within
// p.Tolerance (or defaultBurstTolerance if left at zero).
func RunBurstValidator(e *trial.Engine, p BurstValidatorParams) (BurstValidatorResult, error) {
	tolerance := p.Tolerance
	if tolerance == 0 {
		tolerance = defaultBurstTolerance
	}

	meter := NewColorMeter(p.Service.SLA, time.Now())

	var (
		greenRun, yellowRun       uint64
		maxGreenRun, maxYellowRun uint64
	)

	metered := e.WithOnSend(func(frameSize uint32, sentAt time.Time) {
		switch meter.Meter(sentAt, frameSize) {
		case ColorGreen:
			greenRun++
			if greenRun > maxGreenRun {
				maxGreenRun = greenRun
			}
			yellowRun = 0
		case ColorYellow:
			yellowRun++
			if yellowRun > maxYellowRun {
				maxYellowRun = yellowRun
			}
			greenRun = 0
		default:
			greenRun, yellowRun = 0, 0
		}
	})

	_, err := metered.Run(trial.Params{
		FrameSize: p.Service.FrameSize,
		RatePct:   100,
		Duration:  burstCalibrationDuration,
		Warmup:    0,
		Signature: wire.SignatureY1564,
		StreamID:  p.Service.ID,
	})
	if isCancelled(err) {
		return BurstValidatorResult{}, err
	}
	if err != nil {
		return BurstValidatorResult{}, err
	}

	measuredCBS := maxGreenRun * uint64(p.Service.FrameSize)
	measuredEBS := maxYellowRun * uint64(p.Service.FrameSize)

	result := BurstValidatorResult{
		ServiceID:   p.Service.ID,
		MeasuredCBS: measuredCBS,
		MeasuredEBS: measuredEBS,
		CBSValid:    withinTolerance(measuredCBS, p.Service.SLA.CBSBytes, tolerance),
	}

	if p.Service.SLA.EBSBytes == 0 {
		result.EBSValid = true
	} else {
		result.EBSValid = withinTolerance(measuredEBS, p.Service.SLA.EBSBytes, tolerance)
	}

	return result, nil
}

func withinTolerance(measured, configured uint64, tolerance float64) bool {
	if configured == 0 {
		return measured == 0
	}
	lo := float64(configured) * (1 - tolerance)
	hi := float64(configured) * (1 + tolerance)
	return float64(measured) >= lo && float64(measured) <= hi
}
