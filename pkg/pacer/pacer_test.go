package pacer

import (
	"testing"
	"time"
)

func TestCalcMaxPPS(t *testing.T) {
	tests := []struct {
		lineRate  uint64
		frameSize uint32
		want      uint64
	}{
		{1_000_000_000, 64, 1_488_095},
	}
	for _, tt := range tests {
		got := CalcMaxPPS(tt.lineRate, tt.frameSize)
		if got != tt.want {
			t.Errorf("CalcMaxPPS(%d, %d) = %d, want %d", tt.lineRate, tt.frameSize, got, tt.want)
		}
	}

	got := CalcMaxPPS(10_000_000_000, 1518)
	if got != 812_743 && got != 812_744 {
		t.Errorf("CalcMaxPPS(10e9, 1518) = %d, want 812743 or 812744", got)
	}
}

func TestCalcUtilizationIdempotent(t *testing.T) {
	lineRate := uint64(10_000_000_000)
	frameSize := uint32(1518)
	pps := CalcMaxPPS(lineRate, frameSize)
	util := CalcUtilization(pps, frameSize, lineRate)
	if util < 99.9 || util > 100.0 {
		t.Errorf("CalcUtilization at max pps = %.4f, want ~100", util)
	}
}

func TestCalcUtilizationZeroLineRate(t *testing.T) {
	if got := CalcUtilization(1000, 64, 0); got != 0 {
		t.Errorf("CalcUtilization with zero line rate = %v, want 0", got)
	}
}

func TestNewRejectsSmallFrame(t *testing.T) {
	if _, err := New(1_000_000_000, 32, 100); err != ErrInvalidArgument {
		t.Errorf("New with frame size 32 = %v, want ErrInvalidArgument", err)
	}
}

func TestSetRateRejectsOutOfRange(t *testing.T) {
	p, err := New(1_000_000_000, 1518, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.SetRate(0); err != ErrInvalidArgument {
		t.Errorf("SetRate(0) = %v, want ErrInvalidArgument", err)
	}
	if err := p.SetRate(101); err != ErrInvalidArgument {
		t.Errorf("SetRate(101) = %v, want ErrInvalidArgument", err)
	}
}

func TestWaitAdvancesDeadline(t *testing.T) {
	p, err := New(1_000_000_000, 1518, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first := p.nextTx
	p.Wait()
	if !p.nextTx.After(first) {
		t.Errorf("nextTx did not advance after Wait")
	}
}

func TestOverrunRecovery(t *testing.T) {
	p, err := New(1_000_000_000, 1518, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p.mu.Lock()
	p.nextTx = now().Add(-20 * p.interval)
	p.mu.Unlock()

	before := p.Snapshot().Overruns
	start := time.Now()
	p.Wait()
	elapsed := time.Since(start)

	after := p.Snapshot().Overruns
	if after != before+1 {
		t.Errorf("overruns = %d, want %d", after, before+1)
	}
	if elapsed > 5*time.Millisecond {
		t.Errorf("Wait took %v after overrun, want immediate return", elapsed)
	}
}

func TestRecordTx(t *testing.T) {
	p, err := New(1_000_000_000, 1518, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p.RecordTx(5, 500)
	snap := p.Snapshot()
	if snap.PacketsSent != 5 || snap.BytesSent != 500 {
		t.Errorf("Snapshot = %+v, want PacketsSent=5 BytesSent=500", snap)
	}
}
