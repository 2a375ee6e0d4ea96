// Package orchestrator converts a test specification into the sequence of
// trials that produces a benchmark result: binary search for throughput,
// sweeps for latency and frame loss, burst doubling for back-to-back,
// two-phase probing for system recovery, and the Y.1564 SLA tests.
package orchestrator

import (
	"errors"

	"github.com/krisarmstrong/rfc2544-master/pkg/trial"
)

// ErrCancelled is returned (wrapping trial.ErrCancelled) when a cancellation
// is observed between trials; any results gathered up to that point are
// still returned alongside the error.
var ErrCancelled = trial.ErrCancelled

// isCancelled reports whether err is the trial engine's cancellation
// sentinel.
func isCancelled(err error) bool {
	return errors.Is(err, trial.ErrCancelled)
}
