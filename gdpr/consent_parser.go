package gdpr

import (
	"errors"
	"fmt"

	"github.com/prebid/go-gdpr/api"
	"github.com/prebid/go-gdpr/vendorconsent"
	tcf2 "github.com/prebid/go-gdpr/vendorconsent/tcf2"
)

// parseConsent parses a TCF consent string. Only TCF2 strings are accepted; the
// result is nil whenever err is set.
func parseConsent(consent string) (api.VendorConsents, error) {
	parsedConsent, err := vendorconsent.ParseString(consent)
	if err != nil {
		return nil, &ErrorMalformedConsent{
			Consent: consent,
			Cause:   err,
		}
	}

	if err := validateVersions(parsedConsent); err != nil {
		return nil, &ErrorMalformedConsent{
			Consent: consent,
			Cause:   err,
		}
	}

	cm, ok := parsedConsent.(tcf2.ConsentMetadata)
	if !ok {
		return nil, &ErrorMalformedConsent{
			Consent: consent,
			Cause:   errors.New("unable to access TCF2 parsed consent"),
		}
	}
	return cm, nil
}

// validateVersions ensures the consent string is a TCF2 string under a supported policy.
func validateVersions(pc api.VendorConsents) error {
	version := pc.Version()
	if version != 2 {
		return fmt.Errorf("invalid encoding format version: %d", version)
	}
	policyVersion := pc.TCFPolicyVersion()
	if policyVersion > 4 {
		return fmt.Errorf("invalid TCF policy version: %d", policyVersion)
	}
	return nil
}
