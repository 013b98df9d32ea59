package config

import "github.com/prebid/prebid-mediation/errortypes"

type Adapters struct {
	IronSource IronSource `mapstructure:"ironsource"`
}

// IronSource configures the ironSource demand-only adapters.
type IronSource struct {
	Disabled bool `mapstructure:"disabled"`
	// MediationType is reported to the SDK once, when it is initialized.
	MediationType string `mapstructure:"mediation_type"`
	// DefaultInstanceID is used when an ad unit's server extras carry no instanceId.
	DefaultInstanceID string `mapstructure:"default_instance_id"`
}

func (a IronSource) validate(errs []error) []error {
	if a.Disabled {
		return errs
	}
	if a.MediationType == "" {
		errs = append(errs, &errortypes.BadInput{Message: "adapters.ironsource.mediation_type must be set"})
	}
	if a.DefaultInstanceID == "" {
		errs = append(errs, &errortypes.BadInput{Message: "adapters.ironsource.default_instance_id must be set"})
	}
	return errs
}
