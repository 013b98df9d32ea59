package config

import (
	"time"

	mainConfig "github.com/prebid/prebid-mediation/config"
	"github.com/prebid/prebid-mediation/metrics"
	prometheusmetrics "github.com/prebid/prebid-mediation/metrics/prometheus"
	"github.com/prebid/prebid-mediation/mopub"
	gometrics "github.com/rcrowley/go-metrics"
)

// NewMetricsEngine reads the configuration and returns the appropriate metrics engine
// for this instance.
func NewMetricsEngine(cfg *mainConfig.Configuration) *DetailedMetricsEngine {
	// Create a list of metrics engines to use.
	// Capacity of 2, as unlikely to have more than 2 metrics backends, and in the case
	// of 1 we won't use the list so it will be garbage collected.
	engineList := make(MultiMetricsEngine, 0, 2)
	returnEngine := DetailedMetricsEngine{}

	if cfg.Metrics.GoMetrics.Enabled {
		returnEngine.GoMetrics = metrics.NewMetrics(gometrics.NewPrefixedRegistry(cfg.Metrics.GoMetrics.Prefix))
		engineList = append(engineList, returnEngine.GoMetrics)
	}
	if cfg.Metrics.Prometheus.Enabled {
		returnEngine.PrometheusMetrics = prometheusmetrics.NewMetrics(cfg.Metrics.Prometheus)
		engineList = append(engineList, returnEngine.PrometheusMetrics)
	}

	// Now return the proper metrics engine
	if len(engineList) > 1 {
		returnEngine.MetricsEngine = &engineList
	} else if len(engineList) == 1 {
		returnEngine.MetricsEngine = engineList[0]
	} else {
		returnEngine.MetricsEngine = &DummyMetricsEngine{}
	}

	return &returnEngine
}

// DetailedMetricsEngine is a MultiMetricsEngine that preserves links to underlying metrics engines.
type DetailedMetricsEngine struct {
	metrics.MetricsEngine
	GoMetrics         *metrics.Metrics
	PrometheusMetrics *prometheusmetrics.Metrics
}

// MultiMetricsEngine logs metrics to multiple metrics databases The can be useful in transitioning
// an instance from one engine to another, you can run both in parallel to verify stats match up.
type MultiMetricsEngine []metrics.MetricsEngine

func (me *MultiMetricsEngine) RecordSDKInit() {
	for _, thisME := range *me {
		thisME.RecordSDKInit()
	}
}

func (me *MultiMetricsEngine) RecordLoad(outcome metrics.LoadOutcome) {
	for _, thisME := range *me {
		thisME.RecordLoad(outcome)
	}
}

func (me *MultiMetricsEngine) RecordShow(outcome metrics.ShowOutcome) {
	for _, thisME := range *me {
		thisME.RecordShow(outcome)
	}
}

func (me *MultiMetricsEngine) RecordCallback(event metrics.CallbackEvent, dropped bool) {
	for _, thisME := range *me {
		thisME.RecordCallback(event, dropped)
	}
}

func (me *MultiMetricsEngine) RecordMediatorError(code mopub.ErrorCode) {
	for _, thisME := range *me {
		thisME.RecordMediatorError(code)
	}
}

func (me *MultiMetricsEngine) RecordLoadTime(event metrics.CallbackEvent, length time.Duration) {
	for _, thisME := range *me {
		thisME.RecordLoadTime(event, length)
	}
}

// DummyMetricsEngine is a Noop metrics engine in case no metrics are configured. (may also be useful for tests)
type DummyMetricsEngine = metrics.NilMetricsEngine
