// Package metrics exposes the benchmark engine's live counters and
// gauges as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "rfc2544"
	subsystem = "trial"
)

const (
	labelTestType  = "test_type"
	labelFrameSize = "frame_size"
)

// Collector holds all benchmark-engine Prometheus metrics.
type Collector struct {
	// FramesSent counts transmitted frames per test type and frame size.
	FramesSent *prometheus.CounterVec

	// FramesReceived counts received frames per test type and frame size.
	FramesReceived *prometheus.CounterVec

	// CurrentRatePct is the pacer's current offered rate as a percentage
	// of line rate, for the active trial.
	CurrentRatePct prometheus.Gauge

	// CurrentLossPct is the most recently measured frame loss percentage.
	CurrentLossPct prometheus.Gauge

	// ActiveTestType is 1 while a trial of that test type is running, 0
	// otherwise.
	ActiveTestType *prometheus.GaugeVec

	// PacerOverruns counts pacer deadline-miss recoveries, labeled by test
	// type.
	PacerOverruns *prometheus.CounterVec

	// TrialsCompleted counts finished trials per test type.
	TrialsCompleted *prometheus.CounterVec
}

// NewCollector creates a Collector with all metrics registered against reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := newMetrics()

	reg.MustRegister(
		c.FramesSent,
		c.FramesReceived,
		c.CurrentRatePct,
		c.CurrentLossPct,
		c.ActiveTestType,
		c.PacerOverruns,
		c.TrialsCompleted,
	)

	return c
}

func newMetrics() *Collector {
	frameLabels := []string{labelTestType, labelFrameSize}

	return &Collector{
		FramesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "frames_sent_total",
			Help:      "Total frames transmitted during trials.",
		}, frameLabels),

		FramesReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "frames_received_total",
			Help:      "Total frames received during trials.",
		}, frameLabels),

		CurrentRatePct: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "current_rate_pct",
			Help:      "Current offered load as a percentage of line rate.",
		}),

		CurrentLossPct: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "current_loss_pct",
			Help:      "Most recently measured frame loss percentage.",
		}),

		ActiveTestType: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "active_test_type",
			Help:      "1 while a trial of this test type is running.",
		}, []string{labelTestType}),

		PacerOverruns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pacer_overruns_total",
			Help:      "Total pacer deadline-miss recoveries.",
		}, []string{labelTestType}),

		TrialsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "trials_completed_total",
			Help:      "Total trials completed per test type.",
		}, []string{labelTestType}),
	}
}

// RecordTrialStart marks testType as active and zeroes nothing else;
// counters keep accumulating across trials by design.
func (c *Collector) RecordTrialStart(testType string) {
	c.ActiveTestType.WithLabelValues(testType).Set(1)
}

// RecordTrialEnd marks testType as inactive and increments its completed
// counter.
func (c *Collector) RecordTrialEnd(testType string) {
	c.ActiveTestType.WithLabelValues(testType).Set(0)
	c.TrialsCompleted.WithLabelValues(testType).Inc()
}

// RecordTx adds n frames to the sent counter for testType/frameSize.
func (c *Collector) RecordTx(testType, frameSize string, n uint64) {
	c.FramesSent.WithLabelValues(testType, frameSize).Add(float64(n))
}

// RecordRx adds n frames to the received counter for testType/frameSize.
func (c *Collector) RecordRx(testType, frameSize string, n uint64) {
	c.FramesReceived.WithLabelValues(testType, frameSize).Add(float64(n))
}

// SetRatePct updates the live offered-rate gauge.
func (c *Collector) SetRatePct(pct float64) {
	c.CurrentRatePct.Set(pct)
}

// SetLossPct updates the live loss-percentage gauge.
func (c *Collector) SetLossPct(pct float64) {
	c.CurrentLossPct.Set(pct)
}

// RecordOverrun adds n pacer deadline-miss recoveries to testType's overrun
// counter.
func (c *Collector) RecordOverrun(testType string, n uint64) {
	c.PacerOverruns.WithLabelValues(testType).Add(float64(n))
}
