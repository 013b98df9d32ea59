package metrics

import (
	"time"

	"github.com/prebid/prebid-mediation/mopub"
)

// LoadOutcome labels what a load request led to.
type LoadOutcome string

const (
	// LoadCached means the network already held an ad for the instance.
	LoadCached LoadOutcome = "cached"
	// LoadRequested means a fresh load was issued to the network.
	LoadRequested LoadOutcome = "requested"
	// LoadRejected means the request failed locally, before reaching the network.
	LoadRejected LoadOutcome = "rejected"
	// LoadError means a network SDK call failed.
	LoadError LoadOutcome = "error"
)

func LoadOutcomes() []LoadOutcome {
	return []LoadOutcome{LoadCached, LoadRequested, LoadRejected, LoadError}
}

// ShowOutcome labels what a show request led to.
type ShowOutcome string

const (
	ShowRequested ShowOutcome = "requested"
	ShowNoFill    ShowOutcome = "no_fill"
	ShowError     ShowOutcome = "error"
)

func ShowOutcomes() []ShowOutcome {
	return []ShowOutcome{ShowRequested, ShowNoFill, ShowError}
}

// CallbackEvent names a network listener callback.
type CallbackEvent string

const (
	CallbackAdReady       CallbackEvent = "ad_ready"
	CallbackLoadFailed    CallbackEvent = "load_failed"
	CallbackOpened        CallbackEvent = "opened"
	CallbackClosed        CallbackEvent = "closed"
	CallbackShowSucceeded CallbackEvent = "show_succeeded"
	CallbackShowFailed    CallbackEvent = "show_failed"
	CallbackClicked       CallbackEvent = "clicked"
)

func CallbackEvents() []CallbackEvent {
	return []CallbackEvent{
		CallbackAdReady,
		CallbackLoadFailed,
		CallbackOpened,
		CallbackClosed,
		CallbackShowSucceeded,
		CallbackShowFailed,
		CallbackClicked,
	}
}

// MetricsEngine is a generic interface to record adapter metrics into the desired backend.
type MetricsEngine interface {
	RecordSDKInit()
	RecordLoad(outcome LoadOutcome)
	RecordShow(outcome ShowOutcome)
	// RecordCallback counts a network callback. dropped is true when the callback
	// referred to another instance and was not forwarded to the mediator.
	RecordCallback(event CallbackEvent, dropped bool)
	RecordMediatorError(code mopub.ErrorCode)
	// RecordLoadTime records the time between a network load request and the
	// ad_ready or load_failed callback answering it.
	RecordLoadTime(event CallbackEvent, length time.Duration)
}
