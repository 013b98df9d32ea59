package ironsource

import "fmt"

// Error codes reported by the SDK.
const (
	ErrorCodeNoConfigurationAvailable = 501
	ErrorCodeUsingCachedConfiguration = 502
	ErrorCodeKeyNotSet                = 505
	ErrorCodeInvalidKeyValue          = 506
	ErrorCodeInitFailed               = 508
	ErrorCodeNoAdsToShow              = 509
	ErrorCodeGeneric                  = 510
	ErrorNoInternetConnection         = 520
)

// Error is a failure reported by the SDK through a listener callback.
type Error struct {
	Code    int
	Message string
}

// NewError builds an Error.
func NewError(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	return fmt.Sprintf("ironsource error %d: %s", e.Code, e.Message)
}

// ErrorMessage returns the SDK message, tolerating a nil receiver.
func (e *Error) ErrorMessage() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}
