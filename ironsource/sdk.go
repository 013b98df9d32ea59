// Package ironsource describes the surface of the ironSource mediation SDK that the
// demand-only adapters talk to. The SDK itself is closed source and initialized once
// per process; implementations of SDK bind to it.
package ironsource

import "github.com/prebid/prebid-mediation/mopub"

// AdUnit selects which ad formats the SDK is initialized for.
type AdUnit string

const (
	AdUnitInterstitial  AdUnit = "interstitial"
	AdUnitRewardedVideo AdUnit = "rewarded_video"
	AdUnitBanner        AdUnit = "banner"
)

// SDK is the process wide ironSource SDK singleton.
//
// Methods returning an error report a synchronous rejection by the SDK. Load and
// show outcomes arrive later on the registered DemandOnlyInterstitialListener,
// on a goroutine owned by the SDK.
type SDK interface {
	SetConsent(consent bool)
	SetMediationType(mediationType string)
	InitDemandOnly(activity mopub.Activity, appKey string, adUnits ...AdUnit) error

	SetDemandOnlyInterstitialListener(listener DemandOnlyInterstitialListener)
	IsDemandOnlyInterstitialReady(instanceID string) bool
	LoadDemandOnlyInterstitial(instanceID string) error
	ShowDemandOnlyInterstitial(instanceID string) error
	ShowDemandOnlyInterstitialWithPlacement(instanceID, placementName string) error

	OnPause(activity mopub.Activity)
	OnResume(activity mopub.Activity)
}

// DemandOnlyInterstitialListener receives demand-only interstitial events.
// Every event carries the instance id it refers to.
type DemandOnlyInterstitialListener interface {
	OnInterstitialAdReady(instanceID string)
	OnInterstitialAdLoadFailed(instanceID string, err *Error)
	OnInterstitialAdOpened(instanceID string)
	OnInterstitialAdClosed(instanceID string)
	OnInterstitialAdShowSucceeded(instanceID string)
	OnInterstitialAdShowFailed(instanceID string, err *Error)
	OnInterstitialAdClicked(instanceID string)
}
