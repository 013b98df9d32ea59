package ironsource

import (
	"reflect"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/prebid/prebid-mediation/adapters"
	"github.com/prebid/prebid-mediation/config"
	"github.com/prebid/prebid-mediation/gdpr"
	issdk "github.com/prebid/prebid-mediation/ironsource"
	"github.com/prebid/prebid-mediation/metrics"
	"github.com/prebid/prebid-mediation/mopub"
	"github.com/prebid/prebid-mediation/util/task"
)

const adapterName = "ironsource"

// Dependencies are the collaborators a Builder wires into its adapters.
type Dependencies struct {
	// SDK is required.
	SDK issdk.SDK
	// PersonalInfo defaults to a gdpr.PersonalInfoManager using the configured GDPR default.
	PersonalInfo mopub.PersonalInfoManager
	// Metrics defaults to a no-op engine.
	Metrics metrics.MetricsEngine
	// Executor receives listener notifications. When nil the Builder runs its own
	// SerialQueue sized by the dispatch configuration.
	Executor task.Executor
	Clock    clock.Clock
}

// Builder creates interstitial adapters that share one SDKState.
type Builder struct {
	cfg          config.IronSource
	state        *SDKState
	queue        *task.SerialQueue
	personalInfo mopub.PersonalInfoManager
	metrics      metrics.MetricsEngine
	clock        clock.Clock
}

var _ adapters.InterstitialBuilder = (*Builder)(nil)

// boundSDKs holds the SDK singletons owned by a live Builder.
var boundSDKs sync.Map

// bindSDK claims sdk for one Builder. SDK values of non comparable types cannot
// be tracked and are always accepted.
func bindSDK(sdk issdk.SDK) bool {
	if !reflect.TypeOf(sdk).Comparable() {
		return true
	}
	_, taken := boundSDKs.LoadOrStore(sdk, struct{}{})
	return !taken
}

func releaseSDK(sdk issdk.SDK) {
	if reflect.TypeOf(sdk).Comparable() {
		boundSDKs.Delete(sdk)
	}
}

// NewBuilder validates deps against cfg and binds a new SDKState to deps.SDK.
//
// The SDK is a process singleton and its SDKState, including the init-once flag,
// lives in the Builder, so an SDK can be bound to only one Builder at a time.
// Shutdown releases it.
func NewBuilder(cfg *config.Configuration, deps Dependencies) (*Builder, error) {
	if cfg.Adapters.IronSource.Disabled {
		return nil, errors.New("ironsource adapter is disabled")
	}
	if deps.SDK == nil {
		return nil, errors.New("ironsource adapter requires an SDK")
	}
	if !bindSDK(deps.SDK) {
		return nil, errors.New("ironsource SDK is already bound to another builder")
	}

	b := &Builder{
		cfg:          cfg.Adapters.IronSource,
		personalInfo: deps.PersonalInfo,
		metrics:      deps.Metrics,
		clock:        deps.Clock,
	}
	if b.personalInfo == nil {
		b.personalInfo = gdpr.NewPersonalInfoManager(cfg.GDPR.DefaultValue)
	}
	if b.metrics == nil {
		b.metrics = &metrics.NilMetricsEngine{}
	}
	if b.clock == nil {
		b.clock = clock.New()
	}

	executor := deps.Executor
	if executor == nil {
		b.queue = task.NewSerialQueue(cfg.Dispatch.QueueSize)
		executor = b.queue
	}
	b.state = NewSDKState(deps.SDK, executor)
	return b, nil
}

func (b *Builder) Name() string {
	return adapterName
}

// NewInterstitial returns an adapter for one interstitial ad unit.
func (b *Builder) NewInterstitial() mopub.CustomEventInterstitial {
	return b.newInterstitialAdapter()
}

func (b *Builder) newInterstitialAdapter() *InterstitialAdapter {
	return &InterstitialAdapter{
		state:             b.state,
		personalInfo:      b.personalInfo,
		metrics:           b.metrics,
		clock:             b.clock,
		mediationType:     b.cfg.MediationType,
		defaultInstanceID: b.cfg.DefaultInstanceID,
		instanceID:        b.cfg.DefaultInstanceID,
	}
}

// State exposes the shared SDK state, e.g. to forward activity lifecycle events.
func (b *Builder) State() *SDKState {
	return b.state
}

// Shutdown stops the Builder's own dispatch queue and releases the SDK. Pending
// notifications are dropped.
func (b *Builder) Shutdown() {
	if b.queue != nil {
		b.queue.Stop()
	}
	releaseSDK(b.state.sdk)
}
