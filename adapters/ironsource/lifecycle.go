package ironsource

import (
	"github.com/prebid/prebid-mediation/logger"
	"github.com/prebid/prebid-mediation/mopub"
)

// OnActivityPaused forwards the host activity's pause to the SDK.
func (s *SDKState) OnActivityPaused(activity mopub.Activity) {
	err := callSDK("onPause", func() error {
		s.sdk.OnPause(activity)
		return nil
	})
	if err != nil {
		logger.Errorf("ironsource: %v", err)
	}
}

// OnActivityResumed forwards the host activity's resume to the SDK.
func (s *SDKState) OnActivityResumed(activity mopub.Activity) {
	err := callSDK("onResume", func() error {
		s.sdk.OnResume(activity)
		return nil
	})
	if err != nil {
		logger.Errorf("ironsource: %v", err)
	}
}
