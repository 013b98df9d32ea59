package gdpr

import (
	"fmt"
	"strings"

	"github.com/prebid/prebid-mediation/errortypes"
)

// Signal is the mediator's answer to whether GDPR applies to the current user.
type Signal int

const (
	// SignalAmbiguous means the mediator has not determined it yet.
	SignalAmbiguous Signal = -1
	SignalNo        Signal = 0
	SignalYes       Signal = 1
)

func (s Signal) String() string {
	switch s {
	case SignalNo:
		return "does_not_apply"
	case SignalYes:
		return "applies"
	default:
		return "unknown"
	}
}

// SignalParse reads the gdpr applies state reported by the mediator, either in
// numeric ("0", "1") or boolean ("true", "false") form. An empty value is
// ambiguous.
func SignalParse(rawSignal string) (Signal, error) {
	switch strings.ToLower(strings.TrimSpace(rawSignal)) {
	case "":
		return SignalAmbiguous, nil
	case "0", "false":
		return SignalNo, nil
	case "1", "true":
		return SignalYes, nil
	}
	return SignalAmbiguous, &errortypes.BadInput{
		Message: fmt.Sprintf("gdpr applies signal %q must be 0, 1, true, false or empty", rawSignal),
	}
}

// SignalNormalize resolves an ambiguous signal with the host's default: "0" means
// GDPR does not apply, anything else that it does.
func SignalNormalize(signal Signal, defaultValue string) Signal {
	if signal != SignalAmbiguous {
		return signal
	}
	if defaultValue == "0" {
		return SignalNo
	}
	return SignalYes
}
