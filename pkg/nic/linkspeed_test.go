package nic

import "testing"

func TestDiscoverUnknownInterfaceErrors(t *testing.T) {
	if _, err := Discover("no-such-iface-xyz", false, 1_000_000_000); err == nil {
		t.Fatal("expected error for nonexistent interface")
	}
}

func TestDiscoverFallsBackWithoutAutoDetect(t *testing.T) {
	// lo is present on essentially every Linux host this runs on.
	info, err := Discover("lo", false, 1_000_000_000)
	if err != nil {
		t.Skipf("no loopback interface available: %v", err)
	}
	if info.LinkRateBps != 1_000_000_000 {
		t.Errorf("LinkRateBps = %d, want fallback 1_000_000_000 when autoDetect=false", info.LinkRateBps)
	}
}
