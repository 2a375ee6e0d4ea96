package ioadapter

import (
	"net"
	"testing"
	"time"
)

func TestLoopbackLossless(t *testing.T) {
	l := NewLoopback(net.HardwareAddr{0, 0, 0, 0, 0, 1})
	pkts := [][]byte{{1, 2, 3}, {4, 5, 6}}

	n, err := l.SendBatch(pkts)
	if err != nil {
		t.Fatalf("SendBatch: %v", err)
	}
	if n != 2 {
		t.Fatalf("SendBatch accepted = %d, want 2", n)
	}

	got, err := l.RecvBatch(10)
	if err != nil {
		t.Fatalf("RecvBatch: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("RecvBatch returned %d packets, want 2", len(got))
	}
}

func TestLoopbackRecvBatchRespectsMax(t *testing.T) {
	l := NewLoopback(net.HardwareAddr{0, 0, 0, 0, 0, 1})
	pkts := make([][]byte, 10)
	for i := range pkts {
		pkts[i] = []byte{byte(i)}
	}
	l.SendBatch(pkts)

	got, _ := l.RecvBatch(3)
	if len(got) != 3 {
		t.Errorf("RecvBatch(3) returned %d, want 3", len(got))
	}
	rest, _ := l.RecvBatch(100)
	if len(rest) != 7 {
		t.Errorf("remaining RecvBatch returned %d, want 7", len(rest))
	}
}

func TestLoopbackCapacityDropsExcess(t *testing.T) {
	l := NewLoopback(net.HardwareAddr{0, 0, 0, 0, 0, 1})
	l.SetCapacityPPS(10)

	pkts := make([][]byte, 1000)
	for i := range pkts {
		pkts[i] = []byte{byte(i)}
	}
	n, _ := l.SendBatch(pkts)
	if n > 15 {
		t.Errorf("capacity-limited SendBatch accepted %d of 1000 with cap=10pps, want a small burst only", n)
	}
}

func TestLoopbackCapacityReplenishes(t *testing.T) {
	l := NewLoopback(net.HardwareAddr{0, 0, 0, 0, 0, 1})
	l.SetCapacityPPS(1000)
	l.SendBatch(make([][]byte, 1000))
	time.Sleep(20 * time.Millisecond)
	n, _ := l.SendBatch(make([][]byte, 5))
	if n == 0 {
		t.Errorf("expected tokens to replenish after sleeping, got 0 accepted")
	}
}
