package decide_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/evry/internal/core/domain"
	"go.trai.ch/evry/internal/engine/decide"
)

// Elapsed time exactly equal to the threshold must not permit a run.
func TestEvaluate_StrictBoundary(t *testing.T) {
	atBoundary := decide.Evaluate(1_000, true, 0, 1_000)
	assert.Equal(t, domain.DecisionNotElapsed, atBoundary.Decision)
	assert.Equal(t, domain.Milliseconds(0), atBoundary.Remaining)

	pastBoundary := decide.Evaluate(1_001, true, 0, 1_000)
	assert.Equal(t, domain.DecisionElapsed, pastBoundary.Decision)
}

// A clock that moved backward must not wrap the unsigned subtraction: the
// outcome is NotElapsed with the full threshold remaining, never an
// astronomical value.
func TestEvaluate_BackwardClock(t *testing.T) {
	got := decide.Evaluate(500, true, 10_000, 2_000)
	assert.Equal(t, domain.DecisionNotElapsed, got.Decision)
	assert.Equal(t, domain.Milliseconds(2_000), got.Remaining)
}

func TestEvaluate_ZeroThreshold(t *testing.T) {
	// Zero threshold still needs strictly more than zero elapsed.
	same := decide.Evaluate(1_000, true, 1_000, 0)
	assert.Equal(t, domain.DecisionNotElapsed, same.Decision)

	later := decide.Evaluate(1_001, true, 1_000, 0)
	assert.Equal(t, domain.DecisionElapsed, later.Decision)
}

func TestEvaluate_LargeValues(t *testing.T) {
	const max = domain.Milliseconds(1<<64 - 1)

	// Maximum now against zero last run.
	got := decide.Evaluate(max, true, 0, domain.Year)
	assert.Equal(t, domain.DecisionElapsed, got.Decision)

	// Maximum threshold never elapses.
	got = decide.Evaluate(max, true, 1, max)
	assert.Equal(t, domain.DecisionNotElapsed, got.Decision)
	assert.Equal(t, max-(max-1), got.Remaining)
}
