// Package gdpr derives the mediator's personal information policy from its GDPR
// signal and TCF consent string.
package gdpr

import (
	"sync"

	"github.com/prebid/go-gdpr/api"
	"github.com/prebid/go-gdpr/consentconstants"
	"github.com/prebid/prebid-mediation/errortypes"
	"github.com/prebid/prebid-mediation/logger"
)

// purposeStorageAccess is TCF purpose 1, "store and/or access information on a device".
const purposeStorageAccess = consentconstants.Purpose(1)

// An ErrorMalformedConsent is returned when the consent string could not be used.
type ErrorMalformedConsent struct {
	Consent string
	Cause   error
}

func (e *ErrorMalformedConsent) Error() string {
	return "malformed consent string " + e.Consent + ": " + e.Cause.Error()
}

func (e *ErrorMalformedConsent) Code() int {
	return errortypes.MalformedConsentErrorCode
}

func (e *ErrorMalformedConsent) Severity() errortypes.Severity {
	return errortypes.SeverityWarning
}

// PersonalInfoManager tracks the privacy state the mediator collected from the user
// and implements mopub.PersonalInfoManager on top of it.
//
// Personal information may be collected when GDPR does not apply, or when it applies
// and the consent string grants storage access (purpose 1).
type PersonalInfoManager struct {
	mu           sync.RWMutex
	signal       Signal
	consent      string
	defaultValue string
}

// NewPersonalInfoManager creates a manager with an ambiguous GDPR signal. defaultValue
// ("0" or "1") decides whether an ambiguous signal means GDPR applies.
func NewPersonalInfoManager(defaultValue string) *PersonalInfoManager {
	return &PersonalInfoManager{
		signal:       SignalAmbiguous,
		defaultValue: defaultValue,
	}
}

// SetGDPR records the raw gdpr signal and consent string. The previous state is kept
// if the signal is malformed.
func (m *PersonalInfoManager) SetGDPR(rawSignal, consent string) error {
	signal, err := SignalParse(rawSignal)
	if err != nil {
		return err
	}

	logger.Debugf("gdpr %s, consent string of %d bytes", signal, len(consent))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.signal = signal
	m.consent = consent
	return nil
}

func (m *PersonalInfoManager) CanCollectPersonalInformation() bool {
	m.mu.RLock()
	signal := SignalNormalize(m.signal, m.defaultValue)
	consent := m.consent
	m.mu.RUnlock()

	if signal == SignalNo {
		return true
	}

	parsed, err := parseConsent(consent)
	if err != nil {
		logger.Warnf("gdpr applies and consent could not be used: %v", err)
		return false
	}
	return storageAccessAllowed(parsed)
}

func storageAccessAllowed(consent api.VendorConsents) bool {
	return consent.PurposeAllowed(purposeStorageAccess)
}
