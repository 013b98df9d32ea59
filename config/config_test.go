package config

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/prebid/prebid-mediation/errortypes"
	"github.com/prebid/prebid-mediation/logger"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fullConfig = []byte(`
adapters:
  ironsource:
    mediation_type: custom
    default_instance_id: "7"
dispatch:
  queue_size: 16
metrics:
  prometheus:
    enabled: true
    namespace: ads
    subsystem: is
  go_metrics:
    enabled: true
    prefix: "mobile."
gdpr:
  default_value: "0"
`)

func newViper(t *testing.T, yaml []byte) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetupViper(v, "")
	if yaml != nil {
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(bytes.NewBuffer(yaml)))
	}
	return v
}

func TestDefaults(t *testing.T) {
	cfg, err := New(newViper(t, nil))
	require.NoError(t, err)

	assert.False(t, cfg.Adapters.IronSource.Disabled)
	assert.Equal(t, "mopub", cfg.Adapters.IronSource.MediationType)
	assert.Equal(t, "0", cfg.Adapters.IronSource.DefaultInstanceID)
	assert.Equal(t, 64, cfg.Dispatch.QueueSize)
	assert.False(t, cfg.Metrics.Prometheus.Enabled)
	assert.Equal(t, "mediation", cfg.Metrics.Prometheus.Namespace)
	assert.False(t, cfg.Metrics.GoMetrics.Enabled)
	assert.Equal(t, "1", cfg.GDPR.DefaultValue)
}

func TestFullConfig(t *testing.T) {
	cfg, err := New(newViper(t, fullConfig))
	require.NoError(t, err)

	assert.Equal(t, "custom", cfg.Adapters.IronSource.MediationType)
	assert.Equal(t, "7", cfg.Adapters.IronSource.DefaultInstanceID)
	assert.Equal(t, 16, cfg.Dispatch.QueueSize)
	assert.True(t, cfg.Metrics.Prometheus.Enabled)
	assert.Equal(t, "ads", cfg.Metrics.Prometheus.Namespace)
	assert.Equal(t, "is", cfg.Metrics.Prometheus.Subsystem)
	assert.True(t, cfg.Metrics.GoMetrics.Enabled)
	assert.Equal(t, "mobile.", cfg.Metrics.GoMetrics.Prefix)
	assert.Equal(t, "0", cfg.GDPR.DefaultValue)
}

func TestEnvOverride(t *testing.T) {
	os.Setenv("MEDIATION_ADAPTERS_IRONSOURCE_DEFAULT_INSTANCE_ID", "42")
	defer os.Unsetenv("MEDIATION_ADAPTERS_IRONSOURCE_DEFAULT_INSTANCE_ID")

	cfg, err := New(newViper(t, nil))
	require.NoError(t, err)
	assert.Equal(t, "42", cfg.Adapters.IronSource.DefaultInstanceID)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		description    string
		config         []byte
		expectedErrors int
	}{
		{
			description: "empty mediation type and instance id",
			config: []byte(`
adapters:
  ironsource:
    mediation_type: ""
    default_instance_id: ""
`),
			expectedErrors: 2,
		},
		{
			description: "disabled adapter skips adapter validation",
			config: []byte(`
adapters:
  ironsource:
    disabled: true
    mediation_type: ""
`),
			expectedErrors: 0,
		},
		{
			description: "negative queue size",
			config: []byte(`
dispatch:
  queue_size: -1
`),
			expectedErrors: 1,
		},
		{
			description: "zero queue size",
			config: []byte(`
dispatch:
  queue_size: 0
`),
			expectedErrors: 0,
		},
		{
			description: "empty go-metrics prefix only warns",
			config: []byte(`
metrics:
  go_metrics:
    enabled: true
    prefix: ""
`),
			expectedErrors: 0,
		},
		{
			description: "warnings are reported along with fatal errors",
			config: []byte(`
dispatch:
  queue_size: -1
metrics:
  go_metrics:
    enabled: true
    prefix: ""
`),
			expectedErrors: 2,
		},
		{
			description: "bad gdpr default",
			config: []byte(`
gdpr:
  default_value: "maybe"
`),
			expectedErrors: 1,
		},
		{
			description: "prometheus without namespace",
			config: []byte(`
metrics:
  prometheus:
    enabled: true
    namespace: ""
`),
			expectedErrors: 1,
		},
	}

	for _, test := range tests {
		_, err := New(newViper(t, test.config))
		if test.expectedErrors == 0 {
			assert.NoError(t, err, test.description)
			continue
		}
		aggregate, ok := err.(errortypes.AggregateErrors)
		if assert.True(t, ok, test.description) {
			assert.Len(t, aggregate.Errors, test.expectedErrors, test.description)
			assert.Equal(t, errortypes.BadInputErrorCode, errortypes.ReadCode(err), test.description)
		}
	}
}

type warningRecorder struct {
	warnings []string
}

func (r *warningRecorder) Debugf(msg string, args ...any) {}
func (r *warningRecorder) Infof(msg string, args ...any)  {}
func (r *warningRecorder) Errorf(msg string, args ...any) {}
func (r *warningRecorder) Warnf(msg string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(msg, args...))
}

func TestWarningsAreLogged(t *testing.T) {
	rec := &warningRecorder{}
	prev := logger.SetLogger(rec)
	defer logger.SetLogger(prev)

	cfg, err := New(newViper(t, []byte(`
metrics:
  go_metrics:
    enabled: true
    prefix: ""
`)))
	require.NoError(t, err)
	assert.True(t, cfg.Metrics.GoMetrics.Enabled)
	require.Len(t, rec.warnings, 1)
	assert.Contains(t, rec.warnings[0], "metrics.go_metrics.prefix")
}
