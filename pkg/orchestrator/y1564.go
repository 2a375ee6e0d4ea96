package orchestrator

import (
	"time"

	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
	"github.com/krisarmstrong/rfc2544-master/pkg/wire"
)

// sustainedLatencyCapacity is the latency sample cap for SLA trials,
// larger than the core tests' since a sustained trial runs far longer.
const sustainedLatencyCapacity = 100_000

// defaultStepPcts are the standard Y.1564 service-activation step levels.
var defaultStepPcts = []float64{25, 50, 75, 100}

// Y1564StepParams configures the SLA step (service configuration) test.
type Y1564StepParams struct {
	Service      Service
	StepPcts     []float64 // defaults to 25/50/75/100 when nil
	StepDuration time.Duration // default 60s
	Warmup       time.Duration // default 2s
	LineRateBps  uint64
}

// Y1564StepResult is one step's measured performance against the SLA.
type Y1564StepResult struct {
	Step     float64
	FramesTx uint64
	FramesRx uint64
	FLRPct   float64
	FDAvgMs  float64
	FDVMs    float64
	FLRPass  bool
	FDPass   bool
	FDVPass  bool
	StepPass bool
}

// Y1564ConfigResult is the full step test's outcome.
type Y1564ConfigResult struct {
	ServiceID   uint32
	Steps       []Y1564StepResult
	ServicePass bool
}

// RunY1564Step runs one trial per configured step at sla.CIRMbps*step/100,
// evaluating each step's frame-loss, delay and delay-variation against the
// service's SLA thresholds. ServicePass is the AND of every step's pass.
func RunY1564Step(e *trial.Engine, p Y1564StepParams) (Y1564ConfigResult, error) {
	steps := p.StepPcts
	if steps == nil {
		steps = defaultStepPcts
	}

	result := Y1564ConfigResult{ServiceID: p.Service.ID, ServicePass: true}

	for _, step := range steps {
		ratePct := clampPct(ratePctOf(p.Service.SLA.CIRMbps*step/100, p.LineRateBps))

		tr, err := e.Run(trial.Params{
			FrameSize:       p.Service.FrameSize,
			RatePct:         ratePct,
			Duration:        p.StepDuration,
			Warmup:          p.Warmup,
			Signature:       wire.SignatureY1564,
			StreamID:        p.Service.ID,
			Measure:         true,
			LatencyCapacity: sustainedLatencyCapacity,
		})
		if isCancelled(err) {
			result.ServicePass = false
			return result, err
		}
		if err != nil {
			return result, err
		}

		stepResult := evaluateStep(step, tr, p.Service.SLA)
		result.Steps = append(result.Steps, stepResult)
		result.ServicePass = result.ServicePass && stepResult.StepPass
	}

	return result, nil
}

func evaluateStep(step float64, tr trial.Result, sla ServiceSLA) Y1564StepResult {
	var fdAvgMs, fdvMs float64
	if tr.Latency != nil {
		fdAvgMs = tr.Latency.AvgNs / 1e6
		fdvMs = float64(tr.Latency.MaxNs-tr.Latency.MinNs) / 1e6
	}

	flrPass := tr.LossPct <= sla.FLRThresholdPct
	fdPass := fdAvgMs <= sla.FDThresholdMs
	fdvPass := fdvMs <= sla.FDVThresholdMs

	return Y1564StepResult{
		Step:     step,
		FramesTx: tr.PacketsSent,
		FramesRx: tr.PacketsRecv,
		FLRPct:   tr.LossPct,
		FDAvgMs:  fdAvgMs,
		FDVMs:    fdvMs,
		FLRPass:  flrPass,
		FDPass:   fdPass,
		FDVPass:  fdvPass,
		StepPass: flrPass && fdPass && fdvPass,
	}
}

// Y1564PerfParams configures the sustained performance test.
type Y1564PerfParams struct {
	Service     Service
	Duration    time.Duration // default 15m
	Warmup      time.Duration // default 5s
	LineRateBps uint64
}

// Y1564PerfResult is the sustained test's measured performance.
type Y1564PerfResult struct {
	ServiceID   uint32
	DurationSec float64
	FramesTx    uint64
	FramesRx    uint64
	FLRPct      float64
	FDAvgMs     float64
	FDVMs       float64
	FLRPass     bool
	FDPass      bool
	FDVPass     bool
	ServicePass bool
}

// RunY1564Sustained runs one long trial at sla.CIRMbps, applying the same
// pass predicate as the step test.
func RunY1564Sustained(e *trial.Engine, p Y1564PerfParams) (Y1564PerfResult, error) {
	ratePct := clampPct(ratePctOf(p.Service.SLA.CIRMbps, p.LineRateBps))

	tr, err := e.Run(trial.Params{
		FrameSize:       p.Service.FrameSize,
		RatePct:         ratePct,
		Duration:        p.Duration,
		Warmup:          p.Warmup,
		Signature:       wire.SignatureY1564,
		StreamID:        p.Service.ID,
		Measure:         true,
		LatencyCapacity: sustainedLatencyCapacity,
	})
	if isCancelled(err) {
		return Y1564PerfResult{ServiceID: p.Service.ID}, err
	}
	if err != nil {
		return Y1564PerfResult{}, err
	}

	step := evaluateStep(100, tr, p.Service.SLA)
	return Y1564PerfResult{
		ServiceID:   p.Service.ID,
		DurationSec: tr.ElapsedSec,
		FramesTx:    tr.PacketsSent,
		FramesRx:    tr.PacketsRecv,
		FLRPct:      step.FLRPct,
		FDAvgMs:     step.FDAvgMs,
		FDVMs:       step.FDVMs,
		FLRPass:     step.FLRPass,
		FDPass:      step.FDPass,
		FDVPass:     step.FDVPass,
		ServicePass: step.StepPass,
	}, nil
}
