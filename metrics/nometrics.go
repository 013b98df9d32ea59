package metrics

import (
	"time"

	"github.com/prebid/prebid-mediation/mopub"
)

// This file provides a no-op implementation of MetricsEngine.
// Hosts can use this if they don't want to export metrics anywhere.

// NilMetricsEngine implements MetricsEngine by doing nothing.
type NilMetricsEngine struct{}

func (me *NilMetricsEngine) RecordSDKInit() {}

func (me *NilMetricsEngine) RecordLoad(outcome LoadOutcome) {}

func (me *NilMetricsEngine) RecordShow(outcome ShowOutcome) {}

func (me *NilMetricsEngine) RecordCallback(event CallbackEvent, dropped bool) {}

func (me *NilMetricsEngine) RecordMediatorError(code mopub.ErrorCode) {}

func (me *NilMetricsEngine) RecordLoadTime(event CallbackEvent, length time.Duration) {}
