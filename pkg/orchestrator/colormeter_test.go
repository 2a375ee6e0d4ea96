package orchestrator_test

import (
	"net"
	"testing"
	"time"

	"github.com/krisarmstrong/rfc2544-master/pkg/ioadapter"
	"github.com/krisarmstrong/rfc2544-master/pkg/orchestrator"
	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
)

// Property 10: green+yellow+red sums to total packets metered; with
// eir_mbps=0, ebs_bytes=0, yellow is always zero.
func TestColorMeterConservationAndNoEIR(t *testing.T) {
	lb := ioadapter.NewLoopback(net.HardwareAddr{0, 0, 0, 0, 0, 1})
	src, dst := testEndpoints()
	e := trial.NewEngine(trial.Config{Adapter: lb, Src: src, Dst: dst, LineRateBps: 1_000_000_000})

	svc := orchestrator.Service{
		ID:        9,
		FrameSize: 512,
		SLA: orchestrator.ServiceSLA{
			CIRMbps:  50,
			CBSBytes: 12_000,
			EIRMbps:  0,
			EBSBytes: 0,
		},
	}

	totals, err := orchestrator.RunColorMeter(e, orchestrator.ColorMeterParams{
		Service:  svc,
		RatePct:  80,
		Duration: 20 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("RunColorMeter: %v", err)
	}
	if totals.Yellow != 0 {
		t.Errorf("Yellow = %d, want 0 with eir_mbps=0, ebs_bytes=0", totals.Yellow)
	}
	if totals.Total() != totals.Green+totals.Yellow+totals.Red {
		t.Errorf("Total() inconsistent with components: %+v", totals)
	}
	if totals.Total() == 0 {
		t.Fatal("expected some packets metered")
	}
}

func TestColorMeterClassifiesOverCIR(t *testing.T) {
	lb := ioadapter.NewLoopback(net.HardwareAddr{0, 0, 0, 0, 0, 1})
	src, dst := testEndpoints()
	e := trial.NewEngine(trial.Config{Adapter: lb, Src: src, Dst: dst, LineRateBps: 1_000_000_000})

	svc := orchestrator.Service{
		ID:        10,
		FrameSize: 512,
		SLA: orchestrator.ServiceSLA{
			CIRMbps:  10,
			CBSBytes: 1_000,
			EIRMbps:  10,
			EBSBytes: 1_000,
		},
	}

	totals, err := orchestrator.RunColorMeter(e, orchestrator.ColorMeterParams{
		Service:  svc,
		RatePct:  100,
		Duration: 20 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("RunColorMeter: %v", err)
	}
	if totals.Green == 0 {
		t.Error("expected some green packets within CIR burst allowance")
	}
	if totals.Yellow == 0 && totals.Red == 0 {
		t.Error("expected some packets to overflow into yellow or red once CIR/EIR buckets drain")
	}
}
