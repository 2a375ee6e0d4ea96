package ioadapter

import (
	"net"
	"sync"
	"time"
)

// Loopback is an in-process reflector adapter used by orchestrator tests
// and the CLI's self-test mode: every accepted frame is queued for
// RecvBatch exactly as sent, optionally rate-limited by a token bucket so
// tests can model a DUT that saturates at a fixed capacity.
//
// With no capacity configured (the default), Loopback is lossless: every
// sent frame is reflected.
type Loopback struct {
	mu sync.Mutex

	mac     net.HardwareAddr
	pending [][]byte

	capacityPPS uint64
	tokens      float64
	lastRefill  time.Time
}

// NewLoopback creates a lossless loopback adapter bound to mac.
func NewLoopback(mac net.HardwareAddr) *Loopback {
	return &Loopback{mac: mac, lastRefill: time.Now()}
}

// SetCapacityPPS bounds the adapter's sustained accept rate to pps
// packets/sec, modeling a DUT that starts dropping once offered load
// exceeds its forwarding capacity. A value of 0 removes the bound
// (lossless).
func (l *Loopback) SetCapacityPPS(pps uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.capacityPPS = pps
	l.tokens = float64(pps)
	l.lastRefill = time.Now()
}

func (l *Loopback) refillLocked() {
	if l.capacityPPS == 0 {
		return
	}
	n := time.Now()
	elapsed := n.Sub(l.lastRefill).Seconds()
	l.lastRefill = n
	l.tokens += elapsed * float64(l.capacityPPS)
	if cap := float64(l.capacityPPS); l.tokens > cap {
		l.tokens = cap
	}
}

// SendBatch accepts each packet in turn, subject to the capacity token
// bucket, and queues accepted frames for RecvBatch with a receive
// timestamp taken immediately (the loopback has no propagation delay).
func (l *Loopback) SendBatch(packets [][]byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refillLocked()
	accepted := 0
	for _, p := range packets {
		if l.capacityPPS != 0 {
			if l.tokens < 1 {
				continue
			}
			l.tokens--
		}
		cp := make([]byte, len(p))
		copy(cp, p)
		l.pending = append(l.pending, cp)
		accepted++
	}
	return accepted, nil
}

// RecvBatch returns up to max queued frames, stamped with the current
// time as their receive timestamp.
func (l *Loopback) RecvBatch(max int) ([]Packet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.pending)
	if n > max {
		n = max
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]Packet, n)
	now := time.Now()
	for i := 0; i < n; i++ {
		out[i] = Packet{Data: l.pending[i], Timestamp: now}
	}
	l.pending = l.pending[n:]
	return out, nil
}

// MAC returns the adapter's bound hardware address.
func (l *Loopback) MAC() net.HardwareAddr { return l.mac }

// Close discards any queued frames. Loopback holds no external resources.
func (l *Loopback) Close() error {
	l.mu.Lock()
	l.pending = nil
	l.mu.Unlock()
	return nil
}
