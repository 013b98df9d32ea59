package config

import (
	"testing"
	"time"

	mainConfig "github.com/prebid/prebid-mediation/config"
	"github.com/prebid/prebid-mediation/metrics"
	prometheusmetrics "github.com/prebid/prebid-mediation/metrics/prometheus"
	"github.com/prebid/prebid-mediation/mopub"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
)

// Start a simple test to insure we get valid MetricsEngines for various configurations
func TestDummyMetricsEngine(t *testing.T) {
	cfg := mainConfig.Configuration{}
	testEngine := NewMetricsEngine(&cfg)
	_, ok := testEngine.MetricsEngine.(*DummyMetricsEngine)
	if !ok {
		t.Error("Expected a DummyMetricsEngine, but didn't get it")
	}
}

func TestGoMetricsEngine(t *testing.T) {
	cfg := mainConfig.Configuration{}
	cfg.Metrics.GoMetrics.Enabled = true
	testEngine := NewMetricsEngine(&cfg)
	_, ok := testEngine.MetricsEngine.(*metrics.Metrics)
	if !ok {
		t.Error("Expected a go-metrics Metrics as MetricsEngine, but didn't get it")
	}
}

func TestPrometheusMetricsEngine(t *testing.T) {
	cfg := mainConfig.Configuration{}
	cfg.Metrics.Prometheus.Enabled = true
	cfg.Metrics.Prometheus.Namespace = "mediation"
	testEngine := NewMetricsEngine(&cfg)
	_, ok := testEngine.MetricsEngine.(*prometheusmetrics.Metrics)
	if !ok {
		t.Error("Expected a Prometheus Metrics as MetricsEngine, but didn't get it")
	}
}

// Test the multiengine
func TestMultiMetricsEngine(t *testing.T) {
	cfg := mainConfig.Configuration{}
	cfg.Metrics.GoMetrics.Enabled = true
	cfg.Metrics.Prometheus.Enabled = true
	cfg.Metrics.Prometheus.Namespace = "mediation"
	testEngine := NewMetricsEngine(&cfg)
	_, ok := testEngine.MetricsEngine.(*MultiMetricsEngine)
	if !ok {
		t.Fatal("Expected a MultiMetricsEngine, but didn't get it")
	}

	testEngine.RecordSDKInit()
	testEngine.RecordLoad(metrics.LoadRequested)
	testEngine.RecordShow(metrics.ShowRequested)
	testEngine.RecordCallback(metrics.CallbackAdReady, false)
	testEngine.RecordMediatorError(mopub.ErrorCodeInternalError)
	testEngine.RecordLoadTime(metrics.CallbackAdReady, time.Second)

	goEngine := testEngine.GoMetrics
	assert.Equal(t, int64(1), goEngine.SDKInitMeter.Count())
	assert.Equal(t, int64(1), goEngine.LoadMeter[metrics.LoadRequested].Count())
	assert.Equal(t, int64(1), goEngine.ShowMeter[metrics.ShowRequested].Count())
	assert.Equal(t, int64(1), goEngine.CallbackMeter[metrics.CallbackAdReady].Count())
	assert.Equal(t, int64(1), goEngine.MediatorErrMeter[mopub.ErrorCodeInternalError].Count())
	assert.Equal(t, int64(1), goEngine.LoadTimer[metrics.CallbackAdReady].Count())
	assert.NotNil(t, testEngine.PrometheusMetrics)
}

func TestMultiMetricsEngineFansOut(t *testing.T) {
	first := gometrics.NewRegistry()
	second := gometrics.NewRegistry()
	engines := MultiMetricsEngine{metrics.NewMetrics(first), metrics.NewMetrics(second)}

	engines.RecordLoad(metrics.LoadCached)

	for _, e := range engines {
		assert.Equal(t, int64(1), e.(*metrics.Metrics).LoadMeter[metrics.LoadCached].Count())
	}
}
