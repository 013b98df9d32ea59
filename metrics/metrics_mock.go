package metrics

import (
	"time"

	"github.com/prebid/prebid-mediation/mopub"
	"github.com/stretchr/testify/mock"
)

// MetricsEngineMock is mock for the MetricsEngine interface
type MetricsEngineMock struct {
	mock.Mock
}

// RecordSDKInit mock
func (me *MetricsEngineMock) RecordSDKInit() {
	me.Called()
}

// RecordLoad mock
func (me *MetricsEngineMock) RecordLoad(outcome LoadOutcome) {
	me.Called(outcome)
}

// RecordShow mock
func (me *MetricsEngineMock) RecordShow(outcome ShowOutcome) {
	me.Called(outcome)
}

// RecordCallback mock
func (me *MetricsEngineMock) RecordCallback(event CallbackEvent, dropped bool) {
	me.Called(event, dropped)
}

// RecordMediatorError mock
func (me *MetricsEngineMock) RecordMediatorError(code mopub.ErrorCode) {
	me.Called(code)
}

// RecordLoadTime mock
func (me *MetricsEngineMock) RecordLoadTime(event CallbackEvent, length time.Duration) {
	me.Called(event, length)
}
