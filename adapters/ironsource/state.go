package ironsource

import (
	"sync"

	issdk "github.com/prebid/prebid-mediation/ironsource"
	"github.com/prebid/prebid-mediation/logger"
	"github.com/prebid/prebid-mediation/mopub"
	"github.com/prebid/prebid-mediation/util/task"
)

// SDKState is the process wide state of one ironSource SDK singleton. Every
// InterstitialAdapter built against the same SDK shares it.
//
// The mediator listener slot is shared: the most recent load owns it and
// invalidating any adapter clears it. Callbacks read the slot when they run on
// the executor, so a listener cleared after a callback was queued is never called.
type SDKState struct {
	sdk      issdk.SDK
	executor task.Executor

	// initialized is only written by LoadInterstitial. The host serializes ad unit
	// lifecycle calls, so the flag is not locked.
	initialized bool

	mu       sync.RWMutex
	listener mopub.InterstitialListener
}

// NewSDKState binds state to sdk. Listener notifications are posted to executor.
func NewSDKState(sdk issdk.SDK, executor task.Executor) *SDKState {
	return &SDKState{
		sdk:      sdk,
		executor: executor,
	}
}

// Initialized reports whether the SDK has been initialized for interstitials.
func (s *SDKState) Initialized() bool {
	return s.initialized
}

func (s *SDKState) setListener(listener mopub.InterstitialListener) {
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()
}

func (s *SDKState) currentListener() mopub.InterstitialListener {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listener
}

// post schedules notify on the executor. notify runs only if a listener is
// registered at that point.
func (s *SDKState) post(notify func(listener mopub.InterstitialListener)) {
	posted := s.executor.Post(func() {
		if listener := s.currentListener(); listener != nil {
			notify(listener)
		}
	})
	if !posted {
		logger.Warnf("ironsource: dispatch queue stopped, listener notification dropped")
	}
}

// initDemandOnly initializes the SDK for interstitials the first time it is called.
func (s *SDKState) initDemandOnly(activity mopub.Activity, appKey, mediationType string) (bool, error) {
	if s.initialized {
		return false, nil
	}
	s.sdk.SetMediationType(mediationType)
	if err := s.sdk.InitDemandOnly(activity, appKey, issdk.AdUnitInterstitial); err != nil {
		return false, err
	}
	s.initialized = true
	return true, nil
}
