// Package decide implements the scheduling decision: given when a tag last
// ran and how often it should run, is it allowed to run now?
package decide

import "go.trai.ch/evry/internal/core/domain"

// Evaluate classifies a single scheduling evaluation.
//
// The function is pure: it owns no state and performs no I/O, so the caller
// is responsible for persisting now as the new last-run value whenever the
// outcome permits execution.
//
// The threshold comparison is strictly greater-than: an elapsed time exactly
// equal to the threshold does not permit a run, which guarantees the full
// threshold passes between permitted runs even when invocations land on the
// boundary millisecond.
//
// A clock that moved backward (now earlier than lastRun) counts as zero
// elapsed time rather than wrapping the unsigned subtraction, so the result
// is NotElapsed with the full threshold remaining.
func Evaluate(now domain.Milliseconds, exists bool, lastRun, threshold domain.Milliseconds) domain.Outcome {
	if !exists {
		return domain.Outcome{
			Decision:  domain.DecisionFirstRun,
			Now:       now,
			Threshold: threshold,
		}
	}

	var elapsed domain.Milliseconds
	if now > lastRun {
		elapsed = now - lastRun
	}

	if elapsed > threshold {
		return domain.Outcome{
			Decision:  domain.DecisionElapsed,
			LastRun:   lastRun,
			Now:       now,
			Threshold: threshold,
		}
	}

	return domain.Outcome{
		Decision:  domain.DecisionNotElapsed,
		LastRun:   lastRun,
		Now:       now,
		Threshold: threshold,
		Remaining: threshold - elapsed,
	}
}
