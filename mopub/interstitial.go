package mopub

// Context is the platform execution context handed to an adapter on load.
type Context interface {
	// Name identifies the context in logs.
	Name() string
}

// Activity is a Context that owns a foreground UI. Network SDKs which render
// full screen ads can only be initialized from an Activity.
type Activity interface {
	Context
	IsFinishing() bool
}

// InterstitialListener receives the outcome of an interstitial custom event.
// The mediator requires every call to happen on its UI-affine thread.
type InterstitialListener interface {
	OnInterstitialLoaded()
	OnInterstitialFailed(code ErrorCode)
	OnInterstitialShown()
	OnInterstitialDismissed()
	OnInterstitialClicked()
}

// CustomEventInterstitial is implemented by third party network adapters.
//
// The mediator serializes calls to a single CustomEventInterstitial: LoadInterstitial
// is followed by at most one ShowInterstitial, and OnInvalidate ends the ad unit's life.
type CustomEventInterstitial interface {
	LoadInterstitial(ctx Context, listener InterstitialListener, localExtras map[string]interface{}, serverExtras map[string]string)
	ShowInterstitial()
	OnInvalidate()
}

// PersonalInfoManager exposes the mediator's privacy compliance state.
type PersonalInfoManager interface {
	CanCollectPersonalInformation() bool
}
