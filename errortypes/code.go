package errortypes

// Defines numeric codes for well-known adapter errors.
const (
	UnknownErrorCode  = 999
	BadInputErrorCode = iota
	InvalidContextErrorCode
	NetworkFailureErrorCode
	NotReadyErrorCode
	MalformedConsentErrorCode
)

// Defines numeric codes for well-known warnings.
const (
	UnknownWarningCode          = 10999
	InstanceMismatchWarningCode = iota + 10000
	InvalidConfigWarningCode
)

// Coder provides an error or warning code with severity.
type Coder interface {
	Code() int
	Severity() Severity
}

// ReadCode returns the error or warning code, or UnknownErrorCode if unavailable.
func ReadCode(err error) int {
	if e, ok := err.(Coder); ok {
		return e.Code()
	}
	return UnknownErrorCode
}
