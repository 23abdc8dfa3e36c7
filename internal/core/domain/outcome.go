package domain

// Decision classifies a scheduling evaluation.
type Decision string

const (
	// DecisionFirstRun indicates no prior run is recorded for the tag.
	DecisionFirstRun Decision = "FirstRun"
	// DecisionElapsed indicates strictly more than the threshold has passed
	// since the last recorded run.
	DecisionElapsed Decision = "Elapsed"
	// DecisionNotElapsed indicates the threshold has not fully passed yet.
	DecisionNotElapsed Decision = "NotElapsed"
)

// Outcome is the result of one scheduling evaluation. It is a pure value:
// persisting the new timestamp on a permitted outcome is the caller's job.
type Outcome struct {
	Decision  Decision
	LastRun   Milliseconds // zero and meaningless for FirstRun
	Now       Milliseconds
	Threshold Milliseconds
	Remaining Milliseconds // non-zero only for NotElapsed
}

// Permitted reports whether the guarded command may run.
func (o Outcome) Permitted() bool {
	return o.Decision == DecisionFirstRun || o.Decision == DecisionElapsed
}
