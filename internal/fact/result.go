// Package fact fetches a random fact from the configured upstream API.
// A fetch never fails from the caller's perspective: every failure mode
// collapses into a degraded Result carrying only its reason.
package fact

// Reason categorizes why a fetch attempt degraded.
// Reasons are logged and counted, never surfaced to API clients.
type Reason string

const (
	// ReasonTimeout means the upstream did not answer within the deadline.
	ReasonTimeout Reason = "timeout"
	// ReasonTransport covers DNS, connection, and other network errors.
	ReasonTransport Reason = "transport"
	// ReasonStatus means the upstream answered with a non-200 status.
	ReasonStatus Reason = "status"
	// ReasonMalformed means the body was not JSON with a non-empty "fact".
	ReasonMalformed Reason = "malformed"
)

// Result is the outcome of a single upstream fetch attempt.
// It is either a successful fact or a degradation reason, never both.
type Result struct {
	fact   string
	reason Reason
}

// Success wraps a fetched fact.
func Success(fact string) Result {
	return Result{fact: fact}
}

// Degrade marks the attempt as failed for the given reason.
func Degrade(reason Reason) Result {
	return Result{reason: reason}
}

// Degraded reports whether the attempt failed.
func (r Result) Degraded() bool {
	return r.reason != ""
}

// Fact returns the fetched fact. Empty when degraded.
func (r Result) Fact() string {
	return r.fact
}

// Reason returns the degradation reason. Empty on success.
func (r Result) Reason() Reason {
	return r.reason
}
