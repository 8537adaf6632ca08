package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrSource  = "source"
	AttrOutcome = "outcome"
)

// Outcome attribute values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
