package adapters

import "github.com/prebid/prebid-mediation/mopub"

// InterstitialBuilder creates the mediator facing custom event for one ad network.
type InterstitialBuilder interface {
	// Name uniquely identifies the ad network behind the adapters.
	Name() string
	// NewInterstitial returns a fresh custom event for a single interstitial ad unit.
	NewInterstitial() mopub.CustomEventInterstitial
}
