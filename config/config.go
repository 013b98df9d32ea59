package config

import (
	"fmt"
	"strings"

	"github.com/prebid/prebid-mediation/errortypes"
	"github.com/prebid/prebid-mediation/logger"
	"github.com/spf13/viper"
)

// Configuration
type Configuration struct {
	Adapters Adapters `mapstructure:"adapters"`
	Dispatch Dispatch `mapstructure:"dispatch"`
	Metrics  Metrics  `mapstructure:"metrics"`
	GDPR     GDPR     `mapstructure:"gdpr"`
}

// Dispatch configures the serial queue listener callbacks are delivered on.
type Dispatch struct {
	// QueueSize presizes the pending callback buffer. The buffer grows as needed,
	// so posting a callback never blocks.
	QueueSize int `mapstructure:"queue_size"`
}

type Metrics struct {
	Prometheus PrometheusMetrics `mapstructure:"prometheus"`
	GoMetrics  GoMetrics         `mapstructure:"go_metrics"`
}

type PrometheusMetrics struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
	Subsystem string `mapstructure:"subsystem"`
}

type GoMetrics struct {
	Enabled bool   `mapstructure:"enabled"`
	Prefix  string `mapstructure:"prefix"`
}

// GDPR holds the host's fallback when the mediator cannot tell whether GDPR applies.
type GDPR struct {
	DefaultValue string `mapstructure:"default_value"`
}

// New uses viper to get our adapter configurations.
func New(v *viper.Viper) (*Configuration, error) {
	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("viper failed to unmarshal app config: %v", err)
	}

	errs := c.validate()
	if errortypes.ContainsFatalError(errs) {
		return &c, errortypes.NewAggregateErrors("validation errors", errs)
	}
	for _, err := range errs {
		if errortypes.IsWarning(err) {
			logger.Warnf("config: %v", err)
		}
	}

	return &c, nil
}

func (cfg *Configuration) validate() []error {
	var errs []error
	errs = cfg.Adapters.IronSource.validate(errs)

	if cfg.Dispatch.QueueSize < 0 {
		errs = append(errs, &errortypes.BadInput{Message: fmt.Sprintf("dispatch.queue_size must be >= 0. Got %d", cfg.Dispatch.QueueSize)})
	}
	if cfg.GDPR.DefaultValue != "0" && cfg.GDPR.DefaultValue != "1" {
		errs = append(errs, &errortypes.BadInput{Message: fmt.Sprintf("gdpr.default_value must be 0 or 1. Got %q", cfg.GDPR.DefaultValue)})
	}
	if cfg.Metrics.Prometheus.Enabled && cfg.Metrics.Prometheus.Namespace == "" {
		errs = append(errs, &errortypes.BadInput{Message: "metrics.prometheus.namespace must be set when prometheus metrics are enabled"})
	}
	if cfg.Metrics.GoMetrics.Enabled && cfg.Metrics.GoMetrics.Prefix == "" {
		errs = append(errs, &errortypes.Warning{
			Message:     "metrics.go_metrics.prefix is empty, go-metrics names will not be namespaced",
			WarningCode: errortypes.InvalidConfigWarningCode,
		})
	}
	return errs
}

// SetupViper sets the defaults and bindings every configuration value relies on.
// If filename is not empty, the named config file is read from the working
// directory or /etc/config.
func SetupViper(v *viper.Viper, filename string) {
	if filename != "" {
		v.SetConfigName(filename)
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/config")
	}

	v.SetDefault("adapters.ironsource.disabled", false)
	v.SetDefault("adapters.ironsource.mediation_type", "mopub")
	v.SetDefault("adapters.ironsource.default_instance_id", "0")
	v.SetDefault("dispatch.queue_size", 64)
	v.SetDefault("metrics.prometheus.enabled", false)
	v.SetDefault("metrics.prometheus.namespace", "mediation")
	v.SetDefault("metrics.prometheus.subsystem", "adapter")
	v.SetDefault("metrics.go_metrics.enabled", false)
	v.SetDefault("metrics.go_metrics.prefix", "mediation.")
	v.SetDefault("gdpr.default_value", "1")

	v.SetEnvPrefix("MEDIATION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if filename != "" {
		v.ReadInConfig()
	}
}
