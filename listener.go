package main

import (
	"github.com/golang/glog"

	"github.com/prebid/prebid-mediation/mopub"
)

type simulatedActivity struct{}

func (simulatedActivity) Name() string      { return "SimulatorActivity" }
func (simulatedActivity) IsFinishing() bool { return false }

// loggingListener stands in for the mediator and logs every signal it receives.
type loggingListener struct{}

func (loggingListener) OnInterstitialLoaded()    { glog.Info("mediator received loaded") }
func (loggingListener) OnInterstitialShown()     { glog.Info("mediator received shown") }
func (loggingListener) OnInterstitialClicked()   { glog.Info("mediator received clicked") }
func (loggingListener) OnInterstitialDismissed() { glog.Info("mediator received dismissed") }

func (loggingListener) OnInterstitialFailed(code mopub.ErrorCode) {
	glog.Infof("mediator received failed: %s", code)
}
