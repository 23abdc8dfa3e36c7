package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/evry/internal/core/domain"
	"go.trai.ch/evry/internal/engine/parse"
)

func TestResolveUnit(t *testing.T) {
	tests := []struct {
		spelling string
		want     domain.Milliseconds
		ok       bool
	}{
		{spelling: "year", want: domain.Year, ok: true},
		{spelling: "years", want: domain.Year, ok: true},
		{spelling: "month", want: domain.Month, ok: true},
		{spelling: "months", want: domain.Month, ok: true},
		{spelling: "week", want: domain.Week, ok: true},
		{spelling: "weeks", want: domain.Week, ok: true},
		{spelling: "wk", want: domain.Week, ok: true},
		{spelling: "wks", want: domain.Week, ok: true},
		{spelling: "day", want: domain.Day, ok: true},
		{spelling: "days", want: domain.Day, ok: true},
		{spelling: "d", want: domain.Day, ok: true},
		{spelling: "hour", want: domain.Hour, ok: true},
		{spelling: "hours", want: domain.Hour, ok: true},
		{spelling: "hr", want: domain.Hour, ok: true},
		{spelling: "hrs", want: domain.Hour, ok: true},
		{spelling: "minute", want: domain.Minute, ok: true},
		{spelling: "minutes", want: domain.Minute, ok: true},
		{spelling: "min", want: domain.Minute, ok: true},
		{spelling: "mins", want: domain.Minute, ok: true},
		{spelling: "second", want: domain.Second, ok: true},
		{spelling: "seconds", want: domain.Second, ok: true},
		{spelling: "sec", want: domain.Second, ok: true},
		{spelling: "secs", want: domain.Second, ok: true},

		// Case folding.
		{spelling: "Week", want: domain.Week, ok: true},
		{spelling: "HOURS", want: domain.Hour, ok: true},

		// Rejected spellings.
		{spelling: "", ok: false},
		{spelling: "s", ok: false},
		{spelling: "fortnight", ok: false},
		{spelling: "weekss", ok: false},
		{spelling: "w", ok: false},
		{spelling: "mo", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			got, ok := parse.ResolveUnit(tt.spelling)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
