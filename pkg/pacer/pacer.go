// Package pacer implements the rate pacer: precise inter-packet scheduling
// from a bits-per-second target, with hybrid sleep/spin convergence and
// overrun recovery.
package pacer

import (
	"errors"
	"sync"
	"time"
)

// ErrInvalidArgument is returned by New/SetRate for an out-of-range rate
// percentage or frame size.
var ErrInvalidArgument = errors.New("pacer: invalid argument")

// overheadBytes is the wire overhead per frame used for rate math: 8 bytes
// preamble + 12 bytes inter-frame gap.
const overheadBytes = 20

// sleepSlackNs is subtracted from the remaining wait before sleeping, so
// the final approach to the deadline is a tight spin rather than a sleep
// that risks overshooting.
const sleepSlackNs = 10 * 1000

// sleepThresholdNs is the minimum remaining wait that's worth sleeping for
// at all; below it, Wait spins the whole remainder.
const sleepThresholdNs = 50 * 1000

// CalcMaxPPS returns the maximum packets-per-second a line of lineRateBps
// can sustain for frames of frameSize bytes, accounting for the 20-byte
// preamble/inter-frame-gap overhead per frame, using integer division.
func CalcMaxPPS(lineRateBps uint64, frameSize uint32) uint64 {
	wireBits := uint64(frameSize+overheadBytes) * 8
	if wireBits == 0 {
		return 0
	}
	return lineRateBps / wireBits
}

// CalcUtilization returns the fraction of line rate (0..100) that pps
// packets/sec of frameSize bytes represents on a line of lineRateBps.
func CalcUtilization(pps uint64, frameSize uint32, lineRateBps uint64) float64 {
	if lineRateBps == 0 {
		return 0
	}
	offeredBps := float64(pps) * float64(frameSize+overheadBytes) * 8
	return offeredBps / float64(lineRateBps) * 100
}

// now is overridden in tests; production code always uses the monotonic
// clock via time.Now (whose Sub retains monotonic readings).
var now = time.Now

// Pacer schedules transmissions at a target rate derived from a line rate
// and a percentage of it. All timestamps are monotonic (time.Time values
// produced by time.Now); arithmetic is done with Sub, never UnixNano, so
// the monotonic reading is preserved.
type Pacer struct {
	mu sync.Mutex

	lineRateBps uint64
	frameSize   uint32
	ratePct     float64

	targetBps uint64
	targetPPS uint64
	interval  time.Duration

	start    time.Time
	nextTx   time.Time
	packetsSent uint64
	bytesSent   uint64
	delays      uint64
	overruns    uint64
}

// New creates a Pacer for a line of lineRateBps bits/sec carrying frames of
// frameSize bytes, initially paced at ratePct percent of line rate.
func New(lineRateBps uint64, frameSize uint32, ratePct float64) (*Pacer, error) {
	if frameSize < 64 {
		return nil, ErrInvalidArgument
	}
	p := &Pacer{lineRateBps: lineRateBps, frameSize: frameSize}
	if err := p.SetRate(ratePct); err != nil {
		return nil, err
	}
	p.Reset()
	return p, nil
}

// SetRate recomputes target rate, target PPS and inter-packet interval
// from the stored line rate. It preserves nextTx so a mid-trial rate
// change does not take effect until the following Wait — avoiding a burst
// at the transition.
func (p *Pacer) SetRate(ratePct float64) error {
	if ratePct <= 0 || ratePct > 100 {
		return ErrInvalidArgument
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ratePct = ratePct
	p.targetBps = uint64(float64(p.lineRateBps) * ratePct / 100)
	p.targetPPS = CalcMaxPPS(p.targetBps, p.frameSize)
	pps := p.targetPPS
	if pps < 1 {
		pps = 1
	}
	p.interval = time.Duration(1e9 / pps)
	return nil
}

// Reset re-baselines the pacer: start and nextTx both become now.
func (p *Pacer) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := now()
	p.start = n
	p.nextTx = n
	p.packetsSent = 0
	p.bytesSent = 0
	p.delays = 0
	p.overruns = 0
}

// Wait blocks until the next transmit deadline and returns the time it
// returned control, then advances the internal deadline by one interval.
//
// If the deadline has already passed, Wait uses a two-phase strategy: when
// the remaining wait is at least sleepThresholdNs, it sleeps for
// (remaining - sleepSlackNs) and then spins to the exact deadline; below
// that threshold it spins the whole remainder. If the caller stalled past
// 10 intervals, Wait jumps the deadline to now and counts an overrun
// instead of trying to catch up — catching up would break offered-load
// semantics.
func (p *Pacer) Wait() time.Time {
	p.mu.Lock()
	target := p.nextTx
	interval := p.interval
	p.mu.Unlock()

	n := now()
	if n.Before(target) {
		remaining := target.Sub(n)
		p.mu.Lock()
		p.delays++
		p.mu.Unlock()
		if remaining >= sleepThresholdNs {
			time.Sleep(remaining - sleepSlackNs)
		}
		for now().Before(target) {
		}
		n = now()
	} else if n.Sub(target) > 10*interval {
		p.mu.Lock()
		p.overruns++
		p.mu.Unlock()
		target = n
	}

	p.mu.Lock()
	p.nextTx = target.Add(interval)
	p.mu.Unlock()
	return n
}

// WaitBatch waits for the deadline of the n-th packet in a batch of n
// packets sent back to back, without advancing the per-packet deadline n
// separate times; it is equivalent to calling Wait once for the batch.
func (p *Pacer) WaitBatch(n int) time.Time {
	if n <= 1 {
		return p.Wait()
	}
	t := p.Wait()
	p.mu.Lock()
	p.nextTx = p.nextTx.Add(p.interval * time.Duration(n-1))
	p.mu.Unlock()
	return t
}

// RecordTx accounts for packets/bytes actually transmitted.
func (p *Pacer) RecordTx(packets, bytes uint64) {
	p.mu.Lock()
	p.packetsSent += packets
	p.bytesSent += bytes
	p.mu.Unlock()
}

// Stats is a point-in-time snapshot of pacer counters.
type Stats struct {
	TargetBps   uint64
	TargetPPS   uint64
	PacketsSent uint64
	BytesSent   uint64
	Delays      uint64
	Overruns    uint64
}

// Snapshot returns the current pacer counters.
func (p *Pacer) Snapshot() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		TargetBps:   p.targetBps,
		TargetPPS:   p.targetPPS,
		PacketsSent: p.packetsSent,
		BytesSent:   p.bytesSent,
		Delays:      p.delays,
		Overruns:    p.overruns,
	}
}

// Close releases pacer resources. The software pacer holds none, but the
// method exists to mirror the create/destroy lifecycle other components
// share.
func (p *Pacer) Close() {}
