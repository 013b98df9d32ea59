// Package ironsourcetest provides an in-memory ironsource.SDK that delivers
// listener callbacks on its own goroutines, like the real SDK.
package ironsourcetest

import (
	"sync"

	"github.com/prebid/prebid-mediation/ironsource"
	"github.com/prebid/prebid-mediation/mopub"
)

// Call is one recorded SDK invocation.
type Call struct {
	Method string
	Args   []interface{}
}

// FakeSDK is a thread safe ironsource.SDK double.
type FakeSDK struct {
	mu       sync.Mutex
	calls    []Call
	ready    map[string]bool
	listener ironsource.DemandOnlyInterstitialListener
	inflight sync.WaitGroup
}

var _ ironsource.SDK = (*FakeSDK)(nil)

func NewFakeSDK() *FakeSDK {
	return &FakeSDK{ready: make(map[string]bool)}
}

func (f *FakeSDK) record(method string, args ...interface{}) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Method: method, Args: args})
	f.mu.Unlock()
}

// Calls returns every recorded call in order.
func (f *FakeSDK) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallCount returns how often method was invoked.
func (f *FakeSDK) CallCount(method string) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Method == method {
			n++
		}
	}
	return n
}

func (f *FakeSDK) SetConsent(consent bool) {
	f.record("SetConsent", consent)
}

func (f *FakeSDK) SetMediationType(mediationType string) {
	f.record("SetMediationType", mediationType)
}

func (f *FakeSDK) InitDemandOnly(activity mopub.Activity, appKey string, adUnits ...ironsource.AdUnit) error {
	f.record("InitDemandOnly", appKey, adUnits)
	return nil
}

func (f *FakeSDK) SetDemandOnlyInterstitialListener(listener ironsource.DemandOnlyInterstitialListener) {
	f.record("SetDemandOnlyInterstitialListener")
	f.mu.Lock()
	f.listener = listener
	f.mu.Unlock()
}

func (f *FakeSDK) IsDemandOnlyInterstitialReady(instanceID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ready[instanceID]
}

func (f *FakeSDK) LoadDemandOnlyInterstitial(instanceID string) error {
	f.record("LoadDemandOnlyInterstitial", instanceID)
	return nil
}

func (f *FakeSDK) ShowDemandOnlyInterstitial(instanceID string) error {
	f.record("ShowDemandOnlyInterstitial", instanceID)
	f.show(instanceID)
	return nil
}

func (f *FakeSDK) ShowDemandOnlyInterstitialWithPlacement(instanceID, placementName string) error {
	f.record("ShowDemandOnlyInterstitialWithPlacement", instanceID, placementName)
	f.show(instanceID)
	return nil
}

func (f *FakeSDK) OnPause(activity mopub.Activity) {
	f.record("OnPause")
}

func (f *FakeSDK) OnResume(activity mopub.Activity) {
	f.record("OnResume")
}

// show consumes the cached ad and plays the open, click and close sequence.
func (f *FakeSDK) show(instanceID string) {
	f.mu.Lock()
	delete(f.ready, instanceID)
	f.mu.Unlock()

	f.emit(func(l ironsource.DemandOnlyInterstitialListener) {
		l.OnInterstitialAdOpened(instanceID)
		l.OnInterstitialAdShowSucceeded(instanceID)
		l.OnInterstitialAdClicked(instanceID)
		l.OnInterstitialAdClosed(instanceID)
	})
}

// Fill caches an ad for instanceID and reports it ready.
func (f *FakeSDK) Fill(instanceID string) {
	f.mu.Lock()
	f.ready[instanceID] = true
	f.mu.Unlock()

	f.emit(func(l ironsource.DemandOnlyInterstitialListener) {
		l.OnInterstitialAdReady(instanceID)
	})
}

// SetReady caches an ad for instanceID without notifying the listener.
func (f *FakeSDK) SetReady(instanceID string) {
	f.mu.Lock()
	f.ready[instanceID] = true
	f.mu.Unlock()
}

// FailLoad reports a load failure for instanceID.
func (f *FakeSDK) FailLoad(instanceID string, err *ironsource.Error) {
	f.emit(func(l ironsource.DemandOnlyInterstitialListener) {
		l.OnInterstitialAdLoadFailed(instanceID, err)
	})
}

// Wait blocks until every callback emitted so far has returned.
func (f *FakeSDK) Wait() {
	f.inflight.Wait()
}

func (f *FakeSDK) emit(deliver func(l ironsource.DemandOnlyInterstitialListener)) {
	f.mu.Lock()
	listener := f.listener
	f.mu.Unlock()
	if listener == nil {
		return
	}

	f.inflight.Add(1)
	go func() {
		defer f.inflight.Done()
		deliver(listener)
	}()
}
