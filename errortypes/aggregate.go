package errortypes

import (
	"fmt"
	"strings"
)

// AggregateErrors collects every problem found in one input, e.g. a configuration.
// It is fatal when any member is fatal and a warning otherwise.
type AggregateErrors struct {
	Message string
	Errors  []error
}

// NewAggregateErrors builds a AggregateErrors struct.
func NewAggregateErrors(msg string, errs []error) AggregateErrors {
	return AggregateErrors{
		Message: msg,
		Errors:  errs,
	}
}

// Error lists the members, one per line, marking warnings.
func (e AggregateErrors) Error() string {
	if len(e.Errors) == 0 {
		return ""
	}

	noun := "errors"
	if len(e.Errors) == 1 {
		noun = "error"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d %s):\n", e.Message, len(e.Errors), noun)
	for i, err := range e.Errors {
		label := ""
		if IsWarning(err) {
			label = "warning: "
		}
		fmt.Fprintf(&b, "  %d: %s%s\n", i+1, label, err.Error())
	}
	return b.String()
}

// Code returns the code of the first fatal member, or of the first member if
// all of them are warnings.
func (e AggregateErrors) Code() int {
	for _, err := range e.Errors {
		if isFatal(err) {
			return ReadCode(err)
		}
	}
	if len(e.Errors) > 0 {
		return ReadCode(e.Errors[0])
	}
	return UnknownErrorCode
}

func (e AggregateErrors) Severity() Severity {
	if ContainsFatalError(e.Errors) {
		return SeverityFatal
	}
	return SeverityWarning
}
