// Package trial implements the single paced send/receive loop that every
// benchmark test runs on top of: warmup-gated measurement, non-blocking
// receive, sequence tracking and latency accumulation.
package trial

import (
	"errors"
	"strconv"
	"time"

	"github.com/krisarmstrong/rfc2544-master/pkg/ioadapter"
	"github.com/krisarmstrong/rfc2544-master/pkg/metrics"
	"github.com/krisarmstrong/rfc2544-master/pkg/pacer"
	"github.com/krisarmstrong/rfc2544-master/pkg/wire"
)

// ErrCancelled is returned when the run's cancellation flag was observed
// true during the trial.
var ErrCancelled = errors.New("trial: cancelled")

// rxBatchSize is how many packets RecvBatch is asked for per poll.
const rxBatchSize = 64

// stragglerIterations and stragglerSleep implement the post-TX drain that
// gives in-flight replies a chance to arrive after sending stops.
const stragglerIterations = 10

var stragglerSleep = 10 * time.Millisecond

// Config is the run-scoped state every trial on one worker shares: the
// packet I/O adapter, the frame's endpoints, and the worker's
// cancellation flag.
type Config struct {
	Adapter     ioadapter.Adapter
	Src, Dst    wire.Endpoint
	LineRateBps uint64
	DSCP        uint8

	// Cancelled, if set, is polled between sends and at RX-batch
	// boundaries. A nil func means the trial can never be cancelled.
	Cancelled func() bool

	// Metrics, if set, receives live counters for the duration of every
	// trial this engine runs.
	Metrics   *metrics.Collector
	TestLabel string

	// OnSend, if set, is called for every packet actually handed to the
	// adapter, regardless of warmup/measurement state. The color meter
	// and burst validator use this to classify offered load packet by
	// packet instead of only counting measurement-window packets.
	OnSend func(frameSize uint32, sentAt time.Time)
}

// Engine runs trials against one Config.
type Engine struct {
	cfg Config
}

// NewEngine creates an Engine bound to cfg.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// WithOnSend returns a new Engine sharing this one's Config except that
// hook is called for every transmitted packet in addition to any hook
// already configured. Used by orchestrators (the color meter, the burst
// validator) that need per-packet visibility without the trial engine
// itself knowing about them.
func (e *Engine) WithOnSend(hook func(frameSize uint32, sentAt time.Time)) *Engine {
	cfg := e.cfg
	prev := cfg.OnSend
	cfg.OnSend = func(frameSize uint32, sentAt time.Time) {
		hook(frameSize, sentAt)
		if prev != nil {
			prev(frameSize, sentAt)
		}
	}
	return &Engine{cfg: cfg}
}

// Params describes one trial.
type Params struct {
	FrameSize uint32
	RatePct   float64
	Duration  time.Duration
	Warmup    time.Duration
	Signature string
	StreamID  uint32

	// Measure enables the latency accumulator; LatencyCapacity bounds it
	// (the core uses 10000, SLA orchestrators use 100000).
	Measure         bool
	LatencyCapacity int
}

// Result is the statistics produced by one trial.
type Result struct {
	PacketsSent  uint64
	PacketsRecv  uint64
	BytesSent    uint64
	ElapsedSec   float64
	AchievedPPS  float64
	AchievedMbps float64
	LossPct      float64
	Latency      *LatencyStats
}

func (e *Engine) cancelled() bool {
	return e.cfg.Cancelled != nil && e.cfg.Cancelled()
}

// Run executes the single loop that powers every test: paced transmit,
// best-effort receive, warmup-gated measurement, straggler drain, and
// statistics composition.
func (e *Engine) Run(p Params) (Result, error) {
	tmpl, err := wire.NewTemplate(e.cfg.Src, e.cfg.Dst, p.Signature, p.StreamID, p.FrameSize, e.cfg.DSCP)
	if err != nil {
		return Result{}, err
	}

	pc, err := pacer.New(e.cfg.LineRateBps, p.FrameSize, p.RatePct)
	if err != nil {
		return Result{}, err
	}
	defer pc.Close()

	timer := NewTimer(p.Duration, p.Warmup)

	expected := pc.Snapshot().TargetPPS * uint64(p.Duration.Seconds()+1)
	tracker := NewSeqTracker(0, uint32(expected)+1000)

	var latency *LatencyAccumulator
	if p.Measure {
		cap := p.LatencyCapacity
		if cap <= 0 {
			cap = 10_000
		}
		latency = NewLatencyAccumulator(cap)
	}

	timer.Start()
	pc.Reset()

	if e.cfg.Metrics != nil {
		e.cfg.Metrics.SetRatePct(p.RatePct)
	}

	var (
		packetsSent, packetsRecv, bytesSent uint64
		seq                                 uint32
		inMeasurement                       = p.Warmup == 0
		wasInWarmup                         = p.Warmup > 0
	)

	frameSizeLabel := frameSizeString(p.FrameSize)

	for !timer.Expired() && !e.cancelled() {
		if wasInWarmup && !timer.InWarmup() {
			wasInWarmup = false
			inMeasurement = true
			packetsSent, packetsRecv, bytesSent = 0, 0, 0
			seq = 0
			tracker.Reset(0)
			if latency != nil {
				latency = NewLatencyAccumulator(latency.capacity)
			}
			pc.Reset()
		}

		txTs := pc.Wait()
		frame := tmpl.Stamp(seq, txTs, wire.FlagRequestTimestamp)
		sent, _ := e.cfg.Adapter.SendBatch([][]byte{frame})
		if sent > 0 {
			if inMeasurement {
				packetsSent++
				bytesSent += uint64(tmpl.Len())
				if e.cfg.Metrics != nil {
					e.cfg.Metrics.RecordTx(e.cfg.TestLabel, frameSizeLabel, 1)
				}
			}
			seq++
			pc.RecordTx(1, uint64(tmpl.Len()))
			if e.cfg.OnSend != nil {
				e.cfg.OnSend(p.FrameSize, txTs)
			}
		}

		pkts, _ := e.cfg.Adapter.RecvBatch(rxBatchSize)
		e.processRx(pkts, p.Signature, p.StreamID, inMeasurement, tracker, latency, &packetsRecv, frameSizeLabel)
	}

	for i := 0; i < stragglerIterations; i++ {
		time.Sleep(stragglerSleep)
		pkts, _ := e.cfg.Adapter.RecvBatch(rxBatchSize)
		e.processRx(pkts, p.Signature, p.StreamID, inMeasurement, tracker, latency, &packetsRecv, frameSizeLabel)
	}

	elapsedSec := timer.Elapsed().Seconds()
	result := composeResult(packetsSent, packetsRecv, bytesSent, elapsedSec)

	if e.cfg.Metrics != nil {
		e.cfg.Metrics.SetLossPct(result.LossPct)
		if overruns := pc.Snapshot().Overruns; overruns > 0 {
			e.cfg.Metrics.RecordOverrun(e.cfg.TestLabel, overruns)
		}
	}

	if latency != nil {
		stats, err := latency.Stats()
		if err != nil {
			return result, err
		}
		result.Latency = &stats
	}

	if e.cancelled() {
		return result, ErrCancelled
	}
	return result, nil
}

func (e *Engine) processRx(
	pkts []ioadapter.Packet,
	signature string,
	streamID uint32,
	inMeasurement bool,
	tracker *SeqTracker,
	latency *LatencyAccumulator,
	packetsRecv *uint64,
	frameSizeLabel string,
) {
	if !inMeasurement {
		return
	}
	for _, pkt := range pkts {
		parsed, err := wire.ParseFrame(pkt.Data, signature)
		if err != nil || parsed.StreamID != streamID {
			continue
		}
		tracker.Record(parsed.Seq)
		*packetsRecv++
		if e.cfg.Metrics != nil {
			e.cfg.Metrics.RecordRx(e.cfg.TestLabel, frameSizeLabel, 1)
		}
		if latency != nil {
			latency.Add(parsed.TxTime, pkt.Timestamp)
		}
	}
}

// composeResult turns raw counters into the trial's statistics, clamping
// loss to zero so reorder/delay noise at the RX side never reports
// negative loss.
func composeResult(packetsSent, packetsRecv, bytesSent uint64, elapsedSec float64) Result {
	r := Result{
		PacketsSent: packetsSent,
		PacketsRecv: packetsRecv,
		BytesSent:   bytesSent,
		ElapsedSec:  elapsedSec,
	}

	if packetsSent == 0 {
		r.LossPct = 0
	} else {
		loss := 100 * (float64(packetsSent) - float64(packetsRecv)) / float64(packetsSent)
		if loss < 0 {
			loss = 0
		}
		r.LossPct = loss
	}

	if elapsedSec > 0 {
		r.AchievedPPS = float64(packetsSent) / elapsedSec
		r.AchievedMbps = float64(bytesSent) * 8 / (elapsedSec * 1e6)
	}

	return r
}

func frameSizeString(fs uint32) string {
	return strconv.Itoa(int(fs))
}
