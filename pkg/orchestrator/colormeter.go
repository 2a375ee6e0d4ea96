package orchestrator

import (
	"time"

	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
	"github.com/krisarmstrong/rfc2544-master/pkg/wire"
)

// bucket is a single token bucket refilled continuously from bytesPerSec,
// capped at burstBytes.
type bucket struct {
	tokens      float64
	burstBytes  float64
	bytesPerSec float64
	lastUpdate  time.Time
}

func newBucket(burstBytes, bytesPerSec float64, now time.Time) bucket {
	return bucket{tokens: burstBytes, burstBytes: burstBytes, bytesPerSec: bytesPerSec, lastUpdate: now}
}

func (b *bucket) refill(now time.Time) {
	if b.bytesPerSec <= 0 {
		b.lastUpdate = now
		return
	}
	elapsed := now.Sub(b.lastUpdate).Seconds()
	b.tokens += elapsed * b.bytesPerSec
	if b.tokens > b.burstBytes {
		b.tokens = b.burstBytes
	}
	b.lastUpdate = now
}

func (b *bucket) take(n float64) bool {
	if b.tokens >= n {
		b.tokens -= n
		return true
	}
	return false
}

// Color is the dual-bucket meter's per-packet verdict.
type Color int

const (
	ColorGreen Color = iota
	ColorYellow
	ColorRed
)

// ColorMeter implements the CIR/EIR dual-token-bucket service meter: every
// metered packet consumes from the CIR bucket if it has enough tokens
// (green), else the EIR bucket (yellow), else is marked red.
type ColorMeter struct {
	cir, eir           bucket
	green, yellow, red uint64
}

// NewColorMeter creates a meter for sla, baselined at now. An SLA with
// EIRMbps=0 and EBSBytes=0 yields a meter that never marks yellow.
func NewColorMeter(sla ServiceSLA, now time.Time) *ColorMeter {
	cirBytesPerSec := sla.CIRMbps * 1e6 / 8
	eirBytesPerSec := sla.EIRMbps * 1e6 / 8
	return &ColorMeter{
		cir: newBucket(float64(sla.CBSBytes), cirBytesPerSec, now),
		eir: newBucket(float64(sla.EBSBytes), eirBytesPerSec, now),
	}
}

// Meter refills both buckets to now and classifies one frame of frameSize
// bytes.
func (m *ColorMeter) Meter(now time.Time, frameSize uint32) Color {
	m.cir.refill(now)
	m.eir.refill(now)

	size := float64(frameSize)
	switch {
	case m.cir.take(size):
		m.green++
		return ColorGreen
	case m.eir.take(size):
		m.yellow++
		return ColorYellow
	default:
		m.red++
		return ColorRed
	}
}

// MeterTotals is the cumulative per-color packet count over a trial.
type MeterTotals struct {
	Green, Yellow, Red uint64
}

// Total returns green+yellow+red, the total packets metered.
func (t MeterTotals) Total() uint64 { return t.Green + t.Yellow + t.Red }

// Totals returns the meter's cumulative per-color counts.
func (m *ColorMeter) Totals() MeterTotals {
	return MeterTotals{Green: m.green, Yellow: m.yellow, Red: m.red}
}

// ColorMeterParams configures a metered trial.
type ColorMeterParams struct {
	Service  Service
	RatePct  float64
	Duration time.Duration
}

// RunColorMeter runs one trial at RatePct offered load while metering
// every transmitted packet against the service's CIR/EIR buckets, and
// returns the cumulative per-color totals.
func RunColorMeter(e *trial.Engine, p ColorMeterParams) (MeterTotals, error) {
	meter := NewColorMeter(p.Service.SLA, time.Now())

	metered := e.WithOnSend(func(frameSize uint32, sentAt time.Time) {
		meter.Meter(sentAt, frameSize)
	})

	_, err := metered.Run(trial.Params{
		FrameSize: p.Service.FrameSize,
		RatePct:   p.RatePct,
		Duration:  p.Duration,
		Warmup:    0,
		Signature: wire.SignatureY1564,
		StreamID:  p.Service.ID,
	})
	if isCancelled(err) {
		return meter.Totals(), err
	}
	if err != nil {
		return MeterTotals{}, err
	}

	return meter.Totals(), nil
}
