package metrics

import (
	"fmt"
	"time"

	"github.com/prebid/prebid-mediation/mopub"
	gometrics "github.com/rcrowley/go-metrics"
)

// Metrics is the go-metrics implementation of MetricsEngine.
type Metrics struct {
	MetricsRegistry gometrics.Registry

	SDKInitMeter     gometrics.Meter
	LoadMeter        map[LoadOutcome]gometrics.Meter
	ShowMeter        map[ShowOutcome]gometrics.Meter
	CallbackMeter    map[CallbackEvent]gometrics.Meter
	DroppedMeter     map[CallbackEvent]gometrics.Meter
	MediatorErrMeter map[mopub.ErrorCode]gometrics.Meter
	LoadTimer        map[CallbackEvent]gometrics.Timer
}

// NewBlankMetrics creates a new Metrics object with all blank metrics object. This may also be useful for
// testing routines to ensure that no metrics are written anywhere.
func NewBlankMetrics(registry gometrics.Registry) *Metrics {
	m := &Metrics{
		MetricsRegistry:  registry,
		SDKInitMeter:     blankMeter,
		LoadMeter:        make(map[LoadOutcome]gometrics.Meter),
		ShowMeter:        make(map[ShowOutcome]gometrics.Meter),
		CallbackMeter:    make(map[CallbackEvent]gometrics.Meter),
		DroppedMeter:     make(map[CallbackEvent]gometrics.Meter),
		MediatorErrMeter: make(map[mopub.ErrorCode]gometrics.Meter),
		LoadTimer:        make(map[CallbackEvent]gometrics.Timer),
	}
	for _, o := range LoadOutcomes() {
		m.LoadMeter[o] = blankMeter
	}
	for _, o := range ShowOutcomes() {
		m.ShowMeter[o] = blankMeter
	}
	for _, e := range CallbackEvents() {
		m.CallbackMeter[e] = blankMeter
		m.DroppedMeter[e] = blankMeter
	}
	for _, c := range mopub.ErrorCodes() {
		m.MediatorErrMeter[c] = blankMeter
	}
	m.LoadTimer[CallbackAdReady] = blankTimer
	m.LoadTimer[CallbackLoadFailed] = blankTimer
	return m
}

var blankMeter = &gometrics.NilMeter{}
var blankTimer = &gometrics.NilTimer{}

// NewMetrics creates a new Metrics object with needed metrics defined. In time we may develop to the point
// where Metrics contains all the metrics we might want to record, and then we build the actual
// metrics object to contain only the metrics we are interested in. This would allow for debug
// mode metrics.
func NewMetrics(registry gometrics.Registry) *Metrics {
	m := NewBlankMetrics(registry)
	m.SDKInitMeter = gometrics.GetOrRegisterMeter("sdk_init", registry)
	for _, o := range LoadOutcomes() {
		m.LoadMeter[o] = gometrics.GetOrRegisterMeter(fmt.Sprintf("load.%s", o), registry)
	}
	for _, o := range ShowOutcomes() {
		m.ShowMeter[o] = gometrics.GetOrRegisterMeter(fmt.Sprintf("show.%s", o), registry)
	}
	for _, e := range CallbackEvents() {
		m.CallbackMeter[e] = gometrics.GetOrRegisterMeter(fmt.Sprintf("callback.%s", e), registry)
		m.DroppedMeter[e] = gometrics.GetOrRegisterMeter(fmt.Sprintf("callback.%s.dropped", e), registry)
	}
	for _, c := range mopub.ErrorCodes() {
		m.MediatorErrMeter[c] = gometrics.GetOrRegisterMeter(fmt.Sprintf("mediator_error.%s", c), registry)
	}
	m.LoadTimer[CallbackAdReady] = gometrics.GetOrRegisterTimer("load_time.ad_ready", registry)
	m.LoadTimer[CallbackLoadFailed] = gometrics.GetOrRegisterTimer("load_time.load_failed", registry)
	return m
}

func (me *Metrics) RecordSDKInit() {
	me.SDKInitMeter.Mark(1)
}

func (me *Metrics) RecordLoad(outcome LoadOutcome) {
	if meter, ok := me.LoadMeter[outcome]; ok {
		meter.Mark(1)
	}
}

func (me *Metrics) RecordShow(outcome ShowOutcome) {
	if meter, ok := me.ShowMeter[outcome]; ok {
		meter.Mark(1)
	}
}

func (me *Metrics) RecordCallback(event CallbackEvent, dropped bool) {
	meters := me.CallbackMeter
	if dropped {
		meters = me.DroppedMeter
	}
	if meter, ok := meters[event]; ok {
		meter.Mark(1)
	}
}

func (me *Metrics) RecordMediatorError(code mopub.ErrorCode) {
	if meter, ok := me.MediatorErrMeter[code]; ok {
		meter.Mark(1)
	}
}

func (me *Metrics) RecordLoadTime(event CallbackEvent, length time.Duration) {
	if timer, ok := me.LoadTimer[event]; ok {
		timer.Update(length)
	}
}
