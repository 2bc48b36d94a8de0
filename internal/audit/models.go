package audit

import "time"

// Outcome classifies how a screening check concluded.
const (
	OutcomeMatch       = "match"
	OutcomeNoMatch     = "no_match"
	OutcomeUnavailable = "unavailable"
)

// Event records one screening check for compliance traceability. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        string
	Timestamp time.Time
	Query     string
	Mode      string
	Threshold int
	Matches   int
	// Stale marks checks answered from a dataset past its freshness window,
	// so degraded responses stay visible after the fact.
	Stale   bool
	Outcome string
}
