package orchestrator_test

import (
	"net"
	"testing"

	"github.com/krisarmstrong/rfc2544-master/pkg/ioadapter"
	"github.com/krisarmstrong/rfc2544-master/pkg/orchestrator"
	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
)

// Property 11: measured CBS within +-10% of configured CBS; EBS=0 reports
// valid.
func TestBurstValidatorNoEIR(t *testing.T) {
	lb := ioadapter.NewLoopback(net.HardwareAddr{0, 0, 0, 0, 0, 1})
	src, dst := testEndpoints()
	e := trial.NewEngine(trial.Config{Adapter: lb, Src: src, Dst: dst, LineRateBps: 1_000_000_000})

	svc := orchestrator.Service{
		ID:        11,
		FrameSize: 256,
		SLA: orchestrator.ServiceSLA{
			CIRMbps:  100,
			CBSBytes: 25_600, // 100 frames of 256 bytes
			EIRMbps:  0,
			EBSBytes: 0,
		},
	}

	result, err := orchestrator.RunBurstValidator(e, orchestrator.BurstValidatorParams{Service: svc})
	if err != nil {
		t.Fatalf("RunBurstValidator: %v", err)
	}
	if !result.EBSValid {
		t.Error("EBSValid = false, want true when EBSBytes = 0")
	}
	if !result.CBSValid {
		t.Errorf("CBSValid = false: measured=%d configured=%d", result.MeasuredCBS, svc.SLA.CBSBytes)
	}
}

// A configured CBS far above what the loopback trial can produce fails
// validation under a tight custom tolerance, even though the default
// tolerance would have passed it.
func TestBurstValidatorCustomTolerance(t *testing.T) {
	lb := ioadapter.NewLoopback(net.HardwareAddr{0, 0, 0, 0, 0, 1})
	src, dst := testEndpoints()
	e := trial.NewEngine(trial.Config{Adapter: lb, Src: src, Dst: dst, LineRateBps: 1_000_000_000})

	svc := orchestrator.Service{
		ID:        12,
		FrameSize: 256,
		SLA: orchestrator.ServiceSLA{
			CIRMbps:  100,
			CBSBytes: 1_000_000_000,
			EIRMbps:  0,
			EBSBytes: 0,
		},
	}

	result, err := orchestrator.RunBurstValidator(e, orchestrator.BurstValidatorParams{
		Service:   svc,
		Tolerance: 0.01,
	})
	if err != nil {
		t.Fatalf("RunBurstValidator: %v", err)
	}
	if result.CBSValid {
		t.Error("CBSValid = true, want false when measured CBS is far below configured under a 1% tolerance")
	}
}
