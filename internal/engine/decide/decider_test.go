package decide_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/evry/internal/core/domain"
	"go.trai.ch/evry/internal/engine/decide"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		now       domain.Milliseconds
		exists    bool
		lastRun   domain.Milliseconds
		threshold domain.Milliseconds
		want      domain.Decision
		remaining domain.Milliseconds
	}{
		{
			name:   "first run with zero inputs",
			now:    0,
			exists: false,
			want:   domain.DecisionFirstRun,
		},
		{
			name:      "first run ignores threshold",
			now:       50,
			exists:    false,
			threshold: 1_000_000,
			want:      domain.DecisionFirstRun,
		},
		{
			name:      "elapsed well past threshold",
			now:       10_000,
			exists:    true,
			lastRun:   1_000,
			threshold: 2_000,
			want:      domain.DecisionElapsed,
		},
		{
			name:      "not elapsed midway",
			now:       1_500,
			exists:    true,
			lastRun:   1_000,
			threshold: 2_000,
			want:      domain.DecisionNotElapsed,
			remaining: 1_500,
		},
		{
			name:      "not elapsed immediately after run",
			now:       1_000,
			exists:    true,
			lastRun:   1_000,
			threshold: 2_000,
			want:      domain.DecisionNotElapsed,
			remaining: 2_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decide.Evaluate(tt.now, tt.exists, tt.lastRun, tt.threshold)
			assert.Equal(t, tt.want, got.Decision)
			assert.Equal(t, tt.remaining, got.Remaining)
			assert.Equal(t, tt.now, got.Now)
			assert.Equal(t, tt.threshold, got.Threshold)
		})
	}
}

func TestEvaluate_Permission(t *testing.T) {
	assert.True(t, decide.Evaluate(0, false, 0, 0).Permitted())
	assert.True(t, decide.Evaluate(2_001, true, 1_000, 1_000).Permitted())
	assert.False(t, decide.Evaluate(1_500, true, 1_000, 1_000).Permitted())
}

// Repeated evaluations with unchanged inputs return identical outcomes.
func TestEvaluate_Idempotent(t *testing.T) {
	first := decide.Evaluate(1_500, true, 1_000, 2_000)
	for range 5 {
		assert.Equal(t, first, decide.Evaluate(1_500, true, 1_000, 2_000))
	}
}
