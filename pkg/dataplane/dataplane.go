// Package dataplane wires the wire, pacer, trial and orchestrator packages
// into the Context/Config surface the CLI, TUI and web front ends drive. A
// Context owns one packet adapter for its lifetime; SetFrameSize switches
// frame sizes between sweeps without reopening it.
package dataplane

import (
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/krisarmstrong/rfc2544-master/pkg/ioadapter"
	"github.com/krisarmstrong/rfc2544-master/pkg/metrics"
	"github.com/krisarmstrong/rfc2544-master/pkg/nic"
	"github.com/krisarmstrong/rfc2544-master/pkg/orchestrator"
	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
	"github.com/krisarmstrong/rfc2544-master/pkg/wire"
)

// Sentinel errors, matching the rfc2544_err_t return-code taxonomy this
// Context replaces.
var (
	ErrInvalidArgument = errors.New("dataplane: invalid argument")
	ErrBusy            = errors.New("dataplane: context busy")
	ErrIo              = ioadapter.ErrIo
	ErrOutOfMemory     = errors.New("dataplane: out of memory")
	ErrCancelled       = trial.ErrCancelled
	ErrUnsupported     = errors.New("dataplane: unsupported test type")
	ErrTimeout         = errors.New("dataplane: timed out")
)

// TestType selects which RFC 2544 / Y.1564 test a Context runs. The
// ordering is part of the wire contract with the CLI/web config layers and
// must not change.
type TestType int

const (
	TestThroughput TestType = iota
	TestLatency
	TestFrameLoss
	TestBackToBack
	TestSystemRecovery
	TestReset
	TestY1564Config
	TestY1564Perf
	TestY1564Full
	TestColorMeter
	TestBurstValidator
)

func (t TestType) String() string {
	switch t {
	case TestThroughput:
		return "throughput"
	case TestLatency:
		return "latency"
	case TestFrameLoss:
		return "frame_loss"
	case TestBackToBack:
		return "back_to_back"
	case TestSystemRecovery:
		return "system_recovery"
	case TestReset:
		return "reset"
	case TestY1564Config:
		return "y1564_config"
	case TestY1564Perf:
		return "y1564_perf"
	case TestY1564Full:
		return "y1564"
	case TestColorMeter:
		return "y1564_color"
	case TestBurstValidator:
		return "y1564_burst"
	default:
		return "unknown"
	}
}

// Config configures a Context's interface, line rate and default timing
// parameters. Per-test parameters (load levels, sweep bounds, burst size)
// are supplied to the individual Run*Test calls.
type Config struct {
	Interface      string
	LineRate       uint64 // bits/sec; 0 lets AutoDetect (or a fallback) pick it
	AutoDetect     bool
	TestType       TestType
	FrameSize      uint32
	IncludeJumbo   bool
	TrialDuration  time.Duration
	WarmupPeriod   time.Duration
	InitialRatePct float64
	ResolutionPct  float64
	MaxIterations  uint32
	AcceptableLoss float64
	HWTimestamp    bool
	MeasureLatency bool

	// Adapter selects the packet I/O backend: "auto" (the default, picks
	// loopback for an empty/"loopback" Interface and pcap otherwise),
	// "pcap", or "loopback" to force the in-process self-test reflector
	// regardless of Interface.
	Adapter string

	// BurstTolerancePct is the acceptable percentage deviation between a
	// measured CBS/EBS burst and its configured size, used by
	// RunBurstValidatorTest; 0 lets the orchestrator apply its own
	// default.
	BurstTolerancePct float64
}

const (
	defaultTrialDuration = 60 * time.Second
	defaultWarmup        = 2 * time.Second
	defaultInitialRate   = 100.0
	defaultResolution    = 0.1
	defaultMaxIterations = 20
	defaultLineRateBps   = 1_000_000_000
)

// docSrcIP and docDstIP are RFC 5737 documentation addresses used to frame
// the benchmark's own UDP test stream; they never need to route.
var (
	docSrcIP = net.IPv4(192, 0, 2, 1)
	docDstIP = net.IPv4(198, 51, 100, 1)
)

const (
	srcPort = 12345
	dstPort = 3842
)

// Context binds a network interface and a default test configuration to
// the trial engine. One Context drives every test of a CLI/TUI/web run;
// SetFrameSize mutates the active frame size between sweeps.
type Context struct {
	cfg     Config
	adapter ioadapter.Adapter
	nicInfo nic.Info
	metrics *metrics.Collector
	log     *zap.Logger
	runID   string

	mu        sync.Mutex
	frameSize uint32
	cancelled atomic.Bool
}

// New opens cfg.Interface (or, for an empty/"loopback" interface, an
// in-process reflector used by the CLI's self-test mode) and discovers its
// link rate and MAC concurrently, returning a Context ready to run tests.
func New(cfg Config) (*Context, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	runID := uuid.NewString()

	c := &Context{
		cfg:       cfg,
		frameSize: cfg.FrameSize,
		metrics:   metrics.NewCollector(nil),
		log:       logger.With(zap.String("run_id", runID), zap.String("interface", cfg.Interface)),
		runID:     runID,
	}

	useLoopback := cfg.Adapter == "loopback" ||
		(cfg.Adapter != "pcap" && (cfg.Interface == "" || cfg.Interface == "loopback"))

	if useLoopback {
		mac := net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}
		c.adapter = ioadapter.NewLoopback(mac)
		rate := cfg.LineRate
		if rate == 0 {
			rate = defaultLineRateBps
		}
		c.nicInfo = nic.Info{MAC: mac, LinkRateBps: rate}
		c.log.Info("using in-process loopback adapter (self-test mode)")
		return c, nil
	}

	var adapter *ioadapter.Pcap
	var g errgroup.Group
	g.Go(func() error {
		a, err := ioadapter.NewPcap(cfg.Interface, 10*time.Millisecond)
		if err != nil {
			return fmt.Errorf("dataplane: open %s: %w", cfg.Interface, err)
		}
		adapter = a
		return nil
	})
	g.Go(func() error {
		info, err := nic.Discover(cfg.Interface, cfg.AutoDetect, cfg.LineRate)
		if err != nil {
			return fmt.Errorf("dataplane: discover %s: %w", cfg.Interface, err)
		}
		c.nicInfo = info
		return nil
	})
	if err := g.Wait(); err != nil {
		if adapter != nil {
			adapter.Close()
		}
		return nil, err
	}

	c.adapter = adapter
	c.log.Info("opened interface", zap.Uint64("link_rate_bps", c.nicInfo.LinkRateBps))
	return c, nil
}

// SetFrameSize changes the frame size used by subsequent Run*Test calls.
func (c *Context) SetFrameSize(fs uint32) {
	c.mu.Lock()
	c.frameSize = fs
	c.mu.Unlock()
}

func (c *Context) currentFrameSize() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frameSize == 0 {
		return 1518
	}
	return c.frameSize
}

// Cancel requests cooperative cancellation of whatever test is running.
func (c *Context) Cancel() {
	c.cancelled.Store(true)
	c.log.Info("cancellation requested")
}

// Close releases the adapter's resources.
func (c *Context) Close() error {
	c.cancelled.Store(false)
	if c.adapter == nil {
		return nil
	}
	return c.adapter.Close()
}

// Metrics returns the Context's Prometheus collector, so pkg/web can mount
// it on a /metrics endpoint.
func (c *Context) Metrics() *metrics.Collector {
	return c.metrics
}

// NICInfo returns the MAC address and discovered (or fallback) link rate
// used to seed the pacer and the throughput search ceiling.
func (c *Context) NICInfo() nic.Info {
	return c.nicInfo
}

// RunID returns the UUID this Context was stamped with at New, used to
// correlate progress callbacks and results across one test run.
func (c *Context) RunID() string {
	return c.runID
}

// engine builds a trial engine bound to this Context's adapter, line rate
// and cancellation flag, stamping frames with dscp (0 for plain RFC 2544
// traffic, a service's configured CoS for Y.1564 traffic).
func (c *Context) engine(dscp uint8, testLabel string) *trial.Engine {
	mac := c.nicInfo.MAC
	src := wire.Endpoint{MAC: mac, IP: docSrcIP, Port: srcPort}
	dst := wire.Endpoint{MAC: mac, IP: docDstIP, Port: dstPort}

	return trial.NewEngine(trial.Config{
		Adapter:     c.adapter,
		Src:         src,
		Dst:         dst,
		LineRateBps: c.lineRateBps(),
		DSCP:        dscp,
		Cancelled:   c.cancelled.Load,
		Metrics:     c.metrics,
		TestLabel:   testLabel,
	})
}

func (c *Context) lineRateBps() uint64 {
	if c.nicInfo.LinkRateBps == 0 {
		return defaultLineRateBps
	}
	return c.nicInfo.LinkRateBps
}

func (c *Context) trialDuration() time.Duration {
	if c.cfg.TrialDuration <= 0 {
		return defaultTrialDuration
	}
	return c.cfg.TrialDuration
}

func (c *Context) warmup() time.Duration {
	if c.cfg.WarmupPeriod <= 0 {
		return defaultWarmup
	}
	return c.cfg.WarmupPeriod
}

func (c *Context) initialRatePct() float64 {
	if c.cfg.InitialRatePct <= 0 {
		return defaultInitialRate
	}
	return c.cfg.InitialRatePct
}

func (c *Context) resolutionPct() float64 {
	if c.cfg.ResolutionPct <= 0 {
		return defaultResolution
	}
	return c.cfg.ResolutionPct
}

func (c *Context) maxIterations() int {
	if c.cfg.MaxIterations == 0 {
		return defaultMaxIterations
	}
	return int(c.cfg.MaxIterations)
}

// errCancelledOK lets a Run*Test method return its partial result alongside
// a cancellation error without the caller treating it as an outright
// failure; only isOtherError distinguishes a genuine failure.
func isOtherError(err error) bool {
	return err != nil && !errors.Is(err, orchestrator.ErrCancelled)
}

// LatencyCLI is the latency summary shape returned across the
// CLI/TUI/web boundary.
type LatencyCLI struct {
	Count    int
	MinNs    float64
	MaxNs    float64
	AvgNs    float64
	JitterNs float64
	P50Ns    float64
	P95Ns    float64
	P99Ns    float64
}

func toLatencyCLI(s *trial.LatencyStats) LatencyCLI {
	if s == nil {
		return LatencyCLI{}
	}
	return LatencyCLI{
		Count:    s.Count,
		MinNs:    float64(s.MinNs),
		MaxNs:    float64(s.MaxNs),
		AvgNs:    s.AvgNs,
		JitterNs: s.JitterNs,
		P50Ns:    float64(s.P50Ns),
		P95Ns:    float64(s.P95Ns),
		P99Ns:    float64(s.P99Ns),
	}
}

// ThroughputResultCLI is the binary-search throughput test's result.
type ThroughputResultCLI struct {
	FrameSize   uint32
	MaxRatePct  float64
	MaxRateMbps float64
	MaxRatePPS  float64
	Iterations  int
	Latency     LatencyCLI
}

// RunThroughputTest runs Section 26.1's binary-search throughput test at
// the Context's current frame size.
func (c *Context) RunThroughputTest() (*ThroughputResultCLI, error) {
	fs := c.currentFrameSize()
	c.metrics.RecordTrialStart(TestThroughput.String())
	defer c.metrics.RecordTrialEnd(TestThroughput.String())

	result, err := orchestrator.RunThroughput(c.engine(0, TestThroughput.String()), orchestrator.ThroughputParams{
		FrameSize:         fs,
		InitialRatePct:    c.initialRatePct(),
		ResolutionPct:     c.resolutionPct(),
		MaxIterations:     c.maxIterations(),
		AcceptableLossPct: c.cfg.AcceptableLoss,
		TrialDuration:     c.trialDuration(),
		Warmup:            c.warmup(),
		LineRateBps:       c.lineRateBps(),
	})
	if isOtherError(err) {
		return nil, err
	}

	return &ThroughputResultCLI{
		FrameSize:   result.FrameSize,
		MaxRatePct:  result.MaxRatePct,
		MaxRateMbps: result.MaxRateMbps,
		MaxRatePPS:  float64(result.MaxRatePPS),
		Iterations:  result.Iterations,
		Latency:     toLatencyCLI(result.LatencyAtBest),
	}, err
}

// LatencyResultCLI is one offered-load point of a latency sweep.
type LatencyResultCLI struct {
	FrameSize uint32
	LoadPct   float64
	Latency   LatencyCLI
}

// RunLatencyTest measures round-trip latency at each of loadLevels
// independently, at the Context's current frame size.
func (c *Context) RunLatencyTest(loadLevels []float64) ([]LatencyResultCLI, error) {
	fs := c.currentFrameSize()
	c.metrics.RecordTrialStart(TestLatency.String())
	defer c.metrics.RecordTrialEnd(TestLatency.String())

	results, err := orchestrator.RunLatency(c.engine(0, TestLatency.String()), orchestrator.LatencyParams{
		FrameSize:     fs,
		LoadPcts:      loadLevels,
		TrialDuration: c.trialDuration(),
		Warmup:        c.warmup(),
	})
	if isOtherError(err) {
		return nil, err
	}

	out := make([]LatencyResultCLI, len(results))
	for i, r := range results {
		out[i] = LatencyResultCLI{
			FrameSize: r.FrameSize,
			LoadPct:   r.OfferedRatePct,
			Latency:   toLatencyCLI(&r.Latency),
		}
	}
	return out, err
}

// FrameLossResultCLI is one step of a frame-loss-vs-load sweep.
type FrameLossResultCLI struct {
	FrameSize  uint32
	OfferedPct float64
	FramesTx   uint64
	FramesRx   uint64
	LossPct    float64
}

// RunFrameLossTest sweeps offered load from startPct down to endPct in
// stepPct decrements, at the Context's current frame size.
func (c *Context) RunFrameLossTest(startPct, endPct, stepPct float64) ([]FrameLossResultCLI, error) {
	fs := c.currentFrameSize()
	c.metrics.RecordTrialStart(TestFrameLoss.String())
	defer c.metrics.RecordTrialEnd(TestFrameLoss.String())

	points, err := orchestrator.RunFrameLoss(c.engine(0, TestFrameLoss.String()), orchestrator.FrameLossParams{
		FrameSize:     fs,
		StartPct:      startPct,
		EndPct:        endPct,
		StepPct:       stepPct,
		LineRateBps:   c.lineRateBps(),
		TrialDuration: c.trialDuration(),
		Warmup:        c.warmup(),
	})
	if isOtherError(err) {
		return nil, err
	}

	out := make([]FrameLossResultCLI, len(points))
	for i, p := range points {
		out[i] = FrameLossResultCLI{
			FrameSize:  fs,
			OfferedPct: p.OfferedRatePct,
			FramesTx:   p.FramesTx,
			FramesRx:   p.FramesRx,
			LossPct:    p.LossPct,
		}
	}
	return out, err
}

// BackToBackResultCLI is the discovered maximum loss-free burst size.
type BackToBackResultCLI struct {
	FrameSize       uint32
	MaxBurstFrames  uint64
	BurstDurationUs int64
	Trials          int
}

// RunBackToBackTest doubles the candidate burst size starting from
// initialBurst for as long as trials consecutive trials report zero loss.
func (c *Context) RunBackToBackTest(initialBurst uint64, trials uint32) (*BackToBackResultCLI, error) {
	fs := c.currentFrameSize()
	c.metrics.RecordTrialStart(TestBackToBack.String())
	defer c.metrics.RecordTrialEnd(TestBackToBack.String())

	result, err := orchestrator.RunBackToBack(c.engine(0, TestBackToBack.String()), orchestrator.BackToBackParams{
		FrameSize:    fs,
		InitialBurst: initialBurst,
		BurstTrials:  int(trials),
		LineRateBps:  c.lineRateBps(),
	})
	if isOtherError(err) {
		return nil, err
	}

	return &BackToBackResultCLI{
		FrameSize:       result.FrameSize,
		MaxBurstFrames:  result.MaxBurst,
		BurstDurationUs: int64(result.BurstDurationUs),
		Trials:          result.Trials,
	}, err
}

// RecoveryResultCLI is the two-phase system-recovery test's result.
type RecoveryResultCLI struct {
	FrameSize       uint32
	OverloadRatePct float64
	RecoveryRatePct float64
	OverloadSec     int
	RecoveryTimeMs  float64
	FramesLost      uint64
	Trials          int
}

// RunSystemRecoveryTest overloads the DUT at 110% of throughputPct's
// implied Mbps rate for overloadSec seconds, then probes at 50% of that
// rate until the DUT recovers or the 60s detection window elapses.
func (c *Context) RunSystemRecoveryTest(throughputPct float64, overloadSec uint32) (*RecoveryResultCLI, error) {
	fs := c.currentFrameSize()
	c.metrics.RecordTrialStart(TestSystemRecovery.String())
	defer c.metrics.RecordTrialEnd(TestSystemRecovery.String())

	throughputMbps := throughputPct / 100 * float64(c.lineRateBps()) / 1e6

	result, err := orchestrator.RunRecovery(c.engine(0, TestSystemRecovery.String()), orchestrator.RecoveryParams{
		FrameSize:          fs,
		ThroughputRateMbps: throughputMbps,
		OverloadSec:        time.Duration(overloadSec) * time.Second,
		LineRateBps:        c.lineRateBps(),
	})
	if isOtherError(err) {
		return nil, err
	}

	return &RecoveryResultCLI{
		FrameSize:       result.FrameSize,
		OverloadRatePct: result.OverloadRatePct,
		RecoveryRatePct: result.RecoveryRatePct,
		OverloadSec:     int(result.OverloadSec),
		RecoveryTimeMs:  float64(result.RecoveryTimeMs),
		FramesLost:      result.FramesLost,
		Trials:          result.ProbeTrials,
	}, err
}

// ResetResultCLI is the reset-detection test's result.
type ResetResultCLI struct {
	FrameSize   uint32
	ResetTimeMs float64
	FramesLost  uint64
	Trials      int
	ManualReset bool
}

// RunResetTest probes the DUT at 50% of line rate once every 100ms until
// it resumes forwarding (indicating a manual reset completed) or the 60s
// detection window elapses.
func (c *Context) RunResetTest() (*ResetResultCLI, error) {
	fs := c.currentFrameSize()
	c.metrics.RecordTrialStart(TestReset.String())
	defer c.metrics.RecordTrialEnd(TestReset.String())

	result, err := orchestrator.RunReset(c.engine(0, TestReset.String()), orchestrator.ResetParams{
		FrameSize:    fs,
		ProbeRatePct: 50,
		ManualReset:  true,
	})
	if isOtherError(err) {
		return nil, err
	}

	return &ResetResultCLI{
		FrameSize:   result.FrameSize,
		ResetTimeMs: float64(result.ResetTimeMs),
		FramesLost:  result.FramesLost,
		Trials:      result.ProbeTrials,
		ManualReset: result.ManualReset,
	}, err
}

// Y1564SLA mirrors a service's committed/excess rate, burst and threshold
// parameters at the CLI/config boundary.
type Y1564SLA struct {
	CIRMbps         float64
	EIRMbps         float64
	CBSBytes        uint32
	EBSBytes        uint32
	FDThresholdMs   float64
	FDVThresholdMs  float64
	FLRThresholdPct float64
}

// Y1564Service is one service under Y.1564 service-activation test.
type Y1564Service struct {
	ServiceID   uint32
	ServiceName string
	FrameSize   uint32
	CoS         uint8
	Enabled     bool
	SLA         Y1564SLA
}

func (s *Y1564Service) toOrchestratorService() orchestrator.Service {
	return orchestrator.Service{
		ID:        s.ServiceID,
		FrameSize: s.FrameSize,
		SLA: orchestrator.ServiceSLA{
			CIRMbps:         s.SLA.CIRMbps,
			EIRMbps:         s.SLA.EIRMbps,
			CBSBytes:        uint64(s.SLA.CBSBytes),
			EBSBytes:        uint64(s.SLA.EBSBytes),
			FDThresholdMs:   s.SLA.FDThresholdMs,
			FDVThresholdMs:  s.SLA.FDVThresholdMs,
			FLRThresholdPct: s.SLA.FLRThresholdPct,
		},
	}
}

// Y1564StepResult is one step test step's measured performance.
type Y1564StepResult struct {
	Step           int
	OfferedRatePct float64
	FramesTx       uint64
	FramesRx       uint64
	FLRPct         float64
	FDAvgMs        float64
	FDVMs          float64
	StepPass       bool
}

// Y1564ConfigResult is the full service configuration (step) test outcome.
type Y1564ConfigResult struct {
	ServiceID   uint32
	Steps       []Y1564StepResult
	ServicePass bool
}

// RunY1564ConfigTest runs the Y.1564 step test against svc: one trial per
// configured step percentage of its CIR, evaluated against its SLA
// thresholds.
func (c *Context) RunY1564ConfigTest(svc *Y1564Service) (*Y1564ConfigResult, error) {
	label := TestY1564Config.String()
	c.metrics.RecordTrialStart(label)
	defer c.metrics.RecordTrialEnd(label)

	result, err := orchestrator.RunY1564Step(c.engine(svc.CoS, label), orchestrator.Y1564StepParams{
		Service:      svc.toOrchestratorService(),
		StepDuration: c.trialDuration(),
		Warmup:       c.warmup(),
		LineRateBps:  c.lineRateBps(),
	})
	if isOtherError(err) {
		return nil, err
	}

	out := &Y1564ConfigResult{ServiceID: result.ServiceID, ServicePass: result.ServicePass}
	for i, s := range result.Steps {
		out.Steps = append(out.Steps, Y1564StepResult{
			Step:           i + 1,
			OfferedRatePct: s.Step,
			FramesTx:       s.FramesTx,
			FramesRx:       s.FramesRx,
			FLRPct:         s.FLRPct,
			FDAvgMs:        s.FDAvgMs,
			FDVMs:          s.FDVMs,
			StepPass:       s.StepPass,
		})
	}
	return out, err
}

// ColorResult is the CIR/EIR color-metering test's cumulative outcome.
type ColorResult struct {
	ServiceID    uint32
	GreenFrames  uint64
	YellowFrames uint64
	RedFrames    uint64
	GreenPct     float64
	YellowPct    float64
	RedPct       float64
}

// RunColorMeterTest runs svc's traffic at ratePct offered load for duration
// while classifying every transmitted frame against its CIR/EIR buckets.
func (c *Context) RunColorMeterTest(svc *Y1564Service, ratePct float64, duration time.Duration) (*ColorResult, error) {
	label := "color_meter"
	c.metrics.RecordTrialStart(label)
	defer c.metrics.RecordTrialEnd(label)

	totals, err := orchestrator.RunColorMeter(c.engine(svc.CoS, label), orchestrator.ColorMeterParams{
		Service:  svc.toOrchestratorService(),
		RatePct:  ratePct,
		Duration: duration,
	})
	if isOtherError(err) {
		return nil, err
	}

	total := totals.Total()
	result := &ColorResult{
		ServiceID:    svc.ServiceID,
		GreenFrames:  totals.Green,
		YellowFrames: totals.Yellow,
		RedFrames:    totals.Red,
	}
	if total > 0 {
		result.GreenPct = float64(totals.Green) / float64(total) * 100
		result.YellowPct = float64(totals.Yellow) / float64(total) * 100
		result.RedPct = float64(totals.Red) / float64(total) * 100
	}
	return result, err
}

// BurstValidatorResult reports the measured CBS/EBS against svc's
// configured values.
type BurstValidatorResult struct {
	ServiceID          uint32
	MeasuredCBSBytes   uint64
	MeasuredEBSBytes   uint64
	CBSWithinTolerance bool
	EBSWithinTolerance bool
}

// RunBurstValidatorTest drives svc's traffic at line rate and measures the
// longest consecutive green (CBS) and yellow (EBS) runs against its
// configured burst sizes.
func (c *Context) RunBurstValidatorTest(svc *Y1564Service) (*BurstValidatorResult, error) {
	label := "burst_validator"
	c.metrics.RecordTrialStart(label)
	defer c.metrics.RecordTrialEnd(label)

	result, err := orchestrator.RunBurstValidator(c.engine(svc.CoS, label), orchestrator.BurstValidatorParams{
		Service:   svc.toOrchestratorService(),
		Tolerance: c.cfg.BurstTolerancePct / 100,
	})
	if isOtherError(err) {
		return nil, err
	}

	return &BurstValidatorResult{
		ServiceID:          result.ServiceID,
		MeasuredCBSBytes:   result.MeasuredCBS,
		MeasuredEBSBytes:   result.MeasuredEBS,
		CBSWithinTolerance: result.CBSValid,
		EBSWithinTolerance: result.EBSValid,
	}, err
}

// Y1564PerfResult is the sustained performance test's outcome.
type Y1564PerfResult struct {
	ServiceID   uint32
	DurationSec uint32
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

// RunY1564PerfTest runs one sustained trial at svc's CIR for durationSec
// seconds, evaluated against its SLA thresholds.
func (c *Context) RunY1564PerfTest(svc *Y1564Service, durationSec uint32) (*Y1564PerfResult, error) {
	label := TestY1564Perf.String()
	c.metrics.RecordTrialStart(label)
	defer c.metrics.RecordTrialEnd(label)

	result, err := orchestrator.RunY1564Sustained(c.engine(svc.CoS, label), orchestrator.Y1564PerfParams{
		Service:     svc.toOrchestratorService(),
		Duration:    time.Duration(durationSec) * time.Second,
		Warmup:      c.warmup(),
		LineRateBps: c.lineRateBps(),
	})
	if isOtherError(err) {
		return nil, err
	}

	return &Y1564PerfResult{
		ServiceID:   result.ServiceID,
		DurationSec: durationSec,
		FramesTx:    result.FramesTx,
		FramesRx:    result.FramesRx,
		FLRPct:      result.FLRPct,
		FDAvgMs:     result.FDAvgMs,
		FDVMs:       result.FDVMs,
		FLRPass:     result.FLRPass,
		FDPass:      result.FDPass,
		FDVPass:     result.FDVPass,
		ServicePass: result.ServicePass,
	}, err
}
