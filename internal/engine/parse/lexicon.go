// Package parse implements the human duration grammar: an additive,
// order-independent sequence of "<quantity> <unit>" terms, e.g.
// "2 weeks, 5hrs" or "5wk 5d".
package parse

import (
	"strings"

	"go.trai.ch/evry/internal/core/domain"
)

// unitMillis maps canonical (singular, lowercase) unit spellings to their
// fixed-length millisecond values.
var unitMillis = map[string]domain.Milliseconds{
	"year":   domain.Year,
	"month":  domain.Month,
	"week":   domain.Week,
	"wk":     domain.Week,
	"day":    domain.Day,
	"d":      domain.Day,
	"hour":   domain.Hour,
	"hr":     domain.Hour,
	"minute": domain.Minute,
	"min":    domain.Minute,
	"second": domain.Second,
	"sec":    domain.Second,
}

// ResolveUnit maps a unit spelling to its millisecond value. Matching is
// case-insensitive; plurals normalize by stripping one trailing 's' and
// retrying, so the longest spelling always wins ("weeks" never matches as
// "week" plus a stray character). Unknown spellings are rejected, never
// guessed at.
func ResolveUnit(spelling string) (domain.Milliseconds, bool) {
	s := strings.ToLower(spelling)
	if ms, ok := unitMillis[s]; ok {
		return ms, true
	}
	if stem, found := strings.CutSuffix(s, "s"); found && stem != "" {
		if ms, ok := unitMillis[stem]; ok {
			return ms, true
		}
	}
	return 0, false
}
