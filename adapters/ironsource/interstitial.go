package ironsource

import (
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prebid/prebid-mediation/errortypes"
	issdk "github.com/prebid/prebid-mediation/ironsource"
	"github.com/prebid/prebid-mediation/logger"
	"github.com/prebid/prebid-mediation/metrics"
	"github.com/prebid/prebid-mediation/mopub"
)

// InterstitialAdapter serves MoPub interstitial ad units from ironSource demand-only
// instances. It is a mopub.CustomEventInterstitial towards the mediator and an
// issdk.DemandOnlyInterstitialListener towards the SDK.
type InterstitialAdapter struct {
	state             *SDKState
	personalInfo      mopub.PersonalInfoManager
	metrics           metrics.MetricsEngine
	clock             clock.Clock
	mediationType     string
	defaultInstanceID string

	mu            sync.Mutex
	instanceID    string
	placementName string
	loadStarted   time.Time
}

var (
	_ mopub.CustomEventInterstitial        = (*InterstitialAdapter)(nil)
	_ issdk.DemandOnlyInterstitialListener = (*InterstitialAdapter)(nil)
)

// LoadInterstitial validates the ad unit configuration, initializes the SDK once per
// process and either reports an ad the SDK already holds or requests a new one.
// Every outcome reaches listener through the dispatch executor.
func (a *InterstitialAdapter) LoadInterstitial(ctx mopub.Context, listener mopub.InterstitialListener, localExtras map[string]interface{}, serverExtras map[string]string) {
	a.state.setListener(listener)

	outcome, err := a.load(ctx, serverExtras)
	if err != nil {
		if errortypes.ReadCode(err) == errortypes.NetworkFailureErrorCode {
			logger.Errorf("ironsource: interstitial load failed: %v", err)
		} else {
			logger.Warnf("ironsource: interstitial load rejected: %v", err)
		}
		a.failed(mediatorErrorCodeForAdapterError(err))
	}
	a.metrics.RecordLoad(outcome)
}

func (a *InterstitialAdapter) load(ctx mopub.Context, rawExtras map[string]string) (metrics.LoadOutcome, error) {
	activity, ok := ctx.(mopub.Activity)
	if !ok {
		return metrics.LoadRejected, &errortypes.InvalidContext{
			Message: "ironsource load interstitial must be called from an Activity context",
		}
	}

	extras, err := parseServerExtras(rawExtras, a.defaultInstanceID)
	if err != nil {
		return metrics.LoadRejected, err
	}

	a.mu.Lock()
	a.instanceID = extras.instanceID
	a.placementName = extras.placementName
	a.mu.Unlock()

	sdk := a.state.sdk
	outcome := metrics.LoadError
	err = callSDK("loadInterstitial", func() error {
		sdk.SetConsent(a.personalInfo.CanCollectPersonalInformation())
		sdk.SetDemandOnlyInterstitialListener(a)

		initialized, err := a.state.initDemandOnly(activity, extras.applicationKey, a.mediationType)
		if err != nil {
			return err
		}
		if initialized {
			logger.Infof("ironsource: SDK initialized for interstitial with mediation type %s", a.mediationType)
			a.metrics.RecordSDKInit()
		}

		if sdk.IsDemandOnlyInterstitialReady(extras.instanceID) {
			outcome = metrics.LoadCached
			a.mu.Lock()
			a.loadStarted = time.Time{}
			a.mu.Unlock()
			a.OnInterstitialAdReady(extras.instanceID)
			return nil
		}

		a.mu.Lock()
		a.loadStarted = a.clock.Now()
		a.mu.Unlock()
		if err := sdk.LoadDemandOnlyInterstitial(extras.instanceID); err != nil {
			return err
		}
		outcome = metrics.LoadRequested
		return nil
	})
	if err != nil {
		return metrics.LoadError, err
	}
	return outcome, nil
}

// ShowInterstitial shows the ad the SDK holds for the configured instance, or
// reports NoFill if there is none.
func (a *InterstitialAdapter) ShowInterstitial() {
	instanceID, placementName := a.target()
	sdk := a.state.sdk

	err := callSDK("showInterstitial", func() error {
		if !sdk.IsDemandOnlyInterstitialReady(instanceID) {
			return &errortypes.NotReady{
				Message: "ironsource interstitial not ready for instance " + instanceID,
			}
		}
		if placementName == "" {
			return sdk.ShowDemandOnlyInterstitial(instanceID)
		}
		return sdk.ShowDemandOnlyInterstitialWithPlacement(instanceID, placementName)
	})

	if err == nil {
		a.metrics.RecordShow(metrics.ShowRequested)
		return
	}

	if errortypes.ReadCode(err) == errortypes.NotReadyErrorCode {
		logger.Infof("ironsource: %v", err)
		a.metrics.RecordShow(metrics.ShowNoFill)
	} else {
		logger.Errorf("ironsource: interstitial show failed: %v", err)
		a.metrics.RecordShow(metrics.ShowError)
	}
	a.failed(mediatorErrorCodeForAdapterError(err))
}

// OnInvalidate releases the mediator listener. Notifications still queued are dropped.
func (a *InterstitialAdapter) OnInvalidate() {
	a.state.setListener(nil)
}

// InstanceID returns the ironSource instance this adapter serves.
func (a *InterstitialAdapter) InstanceID() string {
	id, _ := a.target()
	return id
}

func (a *InterstitialAdapter) target() (string, string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.instanceID, a.placementName
}

// checkInstance returns an InstanceMismatch warning when a load callback refers
// to an instance this adapter does not serve.
func (a *InterstitialAdapter) checkInstance(event metrics.CallbackEvent, instanceID string) error {
	id, _ := a.target()
	if id == instanceID {
		return nil
	}
	return &errortypes.Warning{
		Message:     fmt.Sprintf("ironsource: %s for instance %s ignored, adapter serves instance %s", event, instanceID, id),
		WarningCode: errortypes.InstanceMismatchWarningCode,
	}
}

func (a *InterstitialAdapter) dropped(event metrics.CallbackEvent, warning error) {
	logger.Debugf("%v", warning)
	a.metrics.RecordCallback(event, true)
}

func (a *InterstitialAdapter) failed(code mopub.ErrorCode) {
	a.metrics.RecordMediatorError(code)
	a.state.post(func(listener mopub.InterstitialListener) {
		listener.OnInterstitialFailed(code)
	})
}

// recordLoadTime reports the time since the pending load request, if any.
func (a *InterstitialAdapter) recordLoadTime(event metrics.CallbackEvent) {
	a.mu.Lock()
	started := a.loadStarted
	a.loadStarted = time.Time{}
	a.mu.Unlock()

	if !started.IsZero() {
		a.metrics.RecordLoadTime(event, a.clock.Since(started))
	}
}

func (a *InterstitialAdapter) OnInterstitialAdReady(instanceID string) {
	logger.Debugf("ironsource: interstitial loaded successfully for instance %s", instanceID)
	if err := a.checkInstance(metrics.CallbackAdReady, instanceID); err != nil {
		a.dropped(metrics.CallbackAdReady, err)
		return
	}
	a.metrics.RecordCallback(metrics.CallbackAdReady, false)
	a.recordLoadTime(metrics.CallbackAdReady)

	a.state.post(func(listener mopub.InterstitialListener) {
		listener.OnInterstitialLoaded()
	})
}

func (a *InterstitialAdapter) OnInterstitialAdLoadFailed(instanceID string, err *issdk.Error) {
	logger.Debugf("ironsource: interstitial failed to load for instance %s error: %s", instanceID, err.ErrorMessage())
	if err := a.checkInstance(metrics.CallbackLoadFailed, instanceID); err != nil {
		a.dropped(metrics.CallbackLoadFailed, err)
		return
	}
	a.metrics.RecordCallback(metrics.CallbackLoadFailed, false)
	a.recordLoadTime(metrics.CallbackLoadFailed)

	a.failed(mediatorErrorCode(err))
}

func (a *InterstitialAdapter) OnInterstitialAdOpened(instanceID string) {
	logger.Debugf("ironsource: interstitial opened ad for instance %s", instanceID)
	a.metrics.RecordCallback(metrics.CallbackOpened, false)

	a.state.post(func(listener mopub.InterstitialListener) {
		listener.OnInterstitialShown()
	})
}

func (a *InterstitialAdapter) OnInterstitialAdClosed(instanceID string) {
	logger.Debugf("ironsource: interstitial closed ad for instance %s", instanceID)
	a.metrics.RecordCallback(metrics.CallbackClosed, false)

	a.state.post(func(listener mopub.InterstitialListener) {
		listener.OnInterstitialDismissed()
	})
}

// OnInterstitialAdShowSucceeded is not forwarded; OnInterstitialAdOpened already reports the ad as shown.
func (a *InterstitialAdapter) OnInterstitialAdShowSucceeded(instanceID string) {
	a.metrics.RecordCallback(metrics.CallbackShowSucceeded, false)
}

func (a *InterstitialAdapter) OnInterstitialAdShowFailed(instanceID string, err *issdk.Error) {
	logger.Debugf("ironsource: interstitial failed to show for instance %s error: %s", instanceID, err.ErrorMessage())
	a.metrics.RecordCallback(metrics.CallbackShowFailed, false)
}

func (a *InterstitialAdapter) OnInterstitialAdClicked(instanceID string) {
	logger.Debugf("ironsource: interstitial clicked ad for instance %s", instanceID)
	a.metrics.RecordCallback(metrics.CallbackClicked, false)

	a.state.post(func(listener mopub.InterstitialListener) {
		listener.OnInterstitialClicked()
	})
}
