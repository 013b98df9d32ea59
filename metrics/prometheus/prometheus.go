package prometheusmetrics

import (
	"strconv"
	"time"

	"github.com/prebid/prebid-mediation/config"
	"github.com/prebid/prebid-mediation/metrics"
	"github.com/prebid/prebid-mediation/mopub"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics defines the Prometheus metrics backing the MetricsEngine implementation.
type Metrics struct {
	Registry *prometheus.Registry

	sdkInits       prometheus.Counter
	loads          *prometheus.CounterVec
	shows          *prometheus.CounterVec
	callbacks      *prometheus.CounterVec
	mediatorErrors *prometheus.CounterVec
	loadTimer      *prometheus.HistogramVec
}

const (
	outcomeLabel   = "outcome"
	eventLabel     = "event"
	droppedLabel   = "dropped"
	errorCodeLabel = "error_code"
)

// NewMetrics initializes a new Prometheus metrics instance with preloaded label values.
func NewMetrics(cfg config.PrometheusMetrics) *Metrics {
	loadTimeBuckets := []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

	registry := prometheus.NewRegistry()
	m := &Metrics{Registry: registry}

	m.sdkInits = newCounterWithoutLabels(cfg, registry,
		"sdk_inits",
		"Count of one-time network SDK initializations.")

	m.loads = newCounter(cfg, registry,
		"loads",
		"Count of interstitial load requests by outcome.",
		[]string{outcomeLabel})

	m.shows = newCounter(cfg, registry,
		"shows",
		"Count of interstitial show requests by outcome.",
		[]string{outcomeLabel})

	m.callbacks = newCounter(cfg, registry,
		"callbacks",
		"Count of network listener callbacks by event and whether they were dropped for an instance mismatch.",
		[]string{eventLabel, droppedLabel})

	m.mediatorErrors = newCounter(cfg, registry,
		"mediator_errors",
		"Count of failures reported to the mediator by error code.",
		[]string{errorCodeLabel})

	m.loadTimer = newHistogramVec(cfg, registry,
		"load_time_seconds",
		"Seconds between a network load request and the callback answering it.",
		[]string{eventLabel},
		loadTimeBuckets)

	preloadLabelValues(m)

	return m
}

func newCounter(cfg config.PrometheusMetrics, registry *prometheus.Registry, name, help string, labels []string) *prometheus.CounterVec {
	opts := prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
	}
	counter := prometheus.NewCounterVec(opts, labels)
	registry.MustRegister(counter)
	return counter
}

func newCounterWithoutLabels(cfg config.PrometheusMetrics, registry *prometheus.Registry, name, help string) prometheus.Counter {
	opts := prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
	}
	counter := prometheus.NewCounter(opts)
	registry.MustRegister(counter)
	return counter
}

func newHistogramVec(cfg config.PrometheusMetrics, registry *prometheus.Registry, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	opts := prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}
	histogram := prometheus.NewHistogramVec(opts, labels)
	registry.MustRegister(histogram)
	return histogram
}

func preloadLabelValues(m *Metrics) {
	for _, o := range metrics.LoadOutcomes() {
		m.loads.WithLabelValues(string(o))
	}
	for _, o := range metrics.ShowOutcomes() {
		m.shows.WithLabelValues(string(o))
	}
	for _, e := range metrics.CallbackEvents() {
		m.callbacks.WithLabelValues(string(e), "false")
		m.callbacks.WithLabelValues(string(e), "true")
	}
	for _, c := range mopub.ErrorCodes() {
		m.mediatorErrors.WithLabelValues(c.String())
	}
	m.loadTimer.WithLabelValues(string(metrics.CallbackAdReady))
	m.loadTimer.WithLabelValues(string(metrics.CallbackLoadFailed))
}

func (m *Metrics) RecordSDKInit() {
	m.sdkInits.Inc()
}

func (m *Metrics) RecordLoad(outcome metrics.LoadOutcome) {
	m.loads.With(prometheus.Labels{
		outcomeLabel: string(outcome),
	}).Inc()
}

func (m *Metrics) RecordShow(outcome metrics.ShowOutcome) {
	m.shows.With(prometheus.Labels{
		outcomeLabel: string(outcome),
	}).Inc()
}

func (m *Metrics) RecordCallback(event metrics.CallbackEvent, dropped bool) {
	m.callbacks.With(prometheus.Labels{
		eventLabel:   string(event),
		droppedLabel: strconv.FormatBool(dropped),
	}).Inc()
}

func (m *Metrics) RecordMediatorError(code mopub.ErrorCode) {
	m.mediatorErrors.With(prometheus.Labels{
		errorCodeLabel: code.String(),
	}).Inc()
}

func (m *Metrics) RecordLoadTime(event metrics.CallbackEvent, length time.Duration) {
	m.loadTimer.With(prometheus.Labels{
		eventLabel: string(event),
	}).Observe(length.Seconds())
}
