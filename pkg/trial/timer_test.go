package trial

import (
	"testing"
	"time"
)

func withFakeClock(t *testing.T, start time.Time) *time.Time {
	t.Helper()
	cur := start
	orig := now
	now = func() time.Time { return cur }
	t.Cleanup(func() { now = orig })
	return &cur
}

func TestTimerWarmupTransition(t *testing.T) {
	base := time.Unix(1000, 0)
	cur := withFakeClock(t, base)

	tm := NewTimer(1*time.Second, 200*time.Millisecond)
	tm.Start()

	if !tm.InWarmup() {
		t.Fatal("expected InWarmup() true immediately after Start")
	}
	if tm.Expired() {
		t.Fatal("expected Expired() false immediately after Start")
	}

	*cur = base.Add(200 * time.Millisecond)
	if tm.InWarmup() {
		t.Error("expected InWarmup() false at warmup boundary")
	}
	if tm.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, want 0 at warmup boundary", tm.Elapsed())
	}

	*cur = base.Add(700 * time.Millisecond)
	if tm.Elapsed() != 500*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 500ms", tm.Elapsed())
	}
	if tm.Expired() {
		t.Error("expected Expired() false before full duration elapses")
	}

	*cur = base.Add(1200 * time.Millisecond)
	if !tm.Expired() {
		t.Error("expected Expired() true after warmup+duration elapses")
	}
}

func TestTimerZeroWarmup(t *testing.T) {
	base := time.Unix(2000, 0)
	withFakeClock(t, base)

	tm := NewTimer(time.Second, 0)
	tm.Start()
	if tm.InWarmup() {
		t.Error("expected InWarmup() false with zero warmup")
	}
}
