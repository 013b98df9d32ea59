package errortypes

// BadInput should be used when the ad unit configuration handed to an adapter is
// missing or malformed. No network call is attempted for these.
type BadInput struct {
	Message string
}

func (err *BadInput) Error() string {
	return err.Message
}

func (err *BadInput) Code() int {
	return BadInputErrorCode
}

func (err *BadInput) Severity() Severity {
	return SeverityFatal
}

// InvalidContext should be used when a load is requested from an execution context
// that lacks a capability the network SDK needs (e.g. a foreground activity).
type InvalidContext struct {
	Message string
}

func (err *InvalidContext) Error() string {
	return err.Message
}

func (err *InvalidContext) Code() int {
	return InvalidContextErrorCode
}

func (err *InvalidContext) Severity() Severity {
	return SeverityFatal
}

// NetworkFailure wraps an error returned, or a panic raised, by a network SDK call.
// Panics are recovered at the call boundary.
type NetworkFailure struct {
	Call  string
	Cause error
}

func (err *NetworkFailure) Error() string {
	return "network sdk call " + err.Call + " failed: " + err.Cause.Error()
}

func (err *NetworkFailure) Unwrap() error {
	return err.Cause
}

func (err *NetworkFailure) Code() int {
	return NetworkFailureErrorCode
}

func (err *NetworkFailure) Severity() Severity {
	return SeverityFatal
}

// NotReady should be used when a show is requested for an instance the network
// has no cached ad for.
type NotReady struct {
	Message string
}

func (err *NotReady) Error() string {
	return err.Message
}

func (err *NotReady) Code() int {
	return NotReadyErrorCode
}

func (err *NotReady) Severity() Severity {
	return SeverityFatal
}

// Warning is a generic non-fatal error.
type Warning struct {
	Message     string
	WarningCode int
}

func (err *Warning) Error() string {
	return err.Message
}

func (err *Warning) Code() int {
	return err.WarningCode
}

func (err *Warning) Severity() Severity {
	return SeverityWarning
}
