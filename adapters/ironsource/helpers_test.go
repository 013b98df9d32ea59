package ironsource

import (
	"sync"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/prebid/prebid-mediation/config"
	issdk "github.com/prebid/prebid-mediation/ironsource"
	"github.com/prebid/prebid-mediation/metrics"
	"github.com/prebid/prebid-mediation/mopub"
	"github.com/prebid/prebid-mediation/util/task"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sdkMock struct {
	mock.Mock
}

func (m *sdkMock) SetConsent(consent bool) {
	m.Called(consent)
}

func (m *sdkMock) SetMediationType(mediationType string) {
	m.Called(mediationType)
}

func (m *sdkMock) InitDemandOnly(activity mopub.Activity, appKey string, adUnits ...issdk.AdUnit) error {
	args := m.Called(activity, appKey, adUnits)
	return args.Error(0)
}

func (m *sdkMock) SetDemandOnlyInterstitialListener(listener issdk.DemandOnlyInterstitialListener) {
	m.Called(listener)
}

func (m *sdkMock) IsDemandOnlyInterstitialReady(instanceID string) bool {
	args := m.Called(instanceID)
	return args.Bool(0)
}

func (m *sdkMock) LoadDemandOnlyInterstitial(instanceID string) error {
	args := m.Called(instanceID)
	return args.Error(0)
}

func (m *sdkMock) ShowDemandOnlyInterstitial(instanceID string) error {
	args := m.Called(instanceID)
	return args.Error(0)
}

func (m *sdkMock) ShowDemandOnlyInterstitialWithPlacement(instanceID, placementName string) error {
	args := m.Called(instanceID, placementName)
	return args.Error(0)
}

func (m *sdkMock) OnPause(activity mopub.Activity) {
	m.Called(activity)
}

func (m *sdkMock) OnResume(activity mopub.Activity) {
	m.Called(activity)
}

// expectInit sets up the calls a load makes before checking readiness.
func (m *sdkMock) expectInit(consent bool, appKey string) {
	m.On("SetConsent", consent).Return()
	m.On("SetDemandOnlyInterstitialListener", mock.Anything).Return()
	m.On("SetMediationType", "mopub").Return()
	m.On("InitDemandOnly", mock.Anything, appKey, []issdk.AdUnit{issdk.AdUnitInterstitial}).Return(nil)
}

type testActivity struct{}

func (testActivity) Name() string      { return "MainActivity" }
func (testActivity) IsFinishing() bool { return false }

type testAppContext struct{}

func (testAppContext) Name() string { return "Application" }

type staticPersonalInfo bool

func (s staticPersonalInfo) CanCollectPersonalInformation() bool {
	return bool(s)
}

// listenerRecorder collects mediator signals. It is only touched from the dispatch
// goroutine, or after the queue was synced.
type listenerRecorder struct {
	mu     sync.Mutex
	events []string
}

func (r *listenerRecorder) add(event string) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

func (r *listenerRecorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.events...)
}

func (r *listenerRecorder) OnInterstitialLoaded()                     { r.add("loaded") }
func (r *listenerRecorder) OnInterstitialFailed(code mopub.ErrorCode) { r.add("failed:" + code.String()) }
func (r *listenerRecorder) OnInterstitialShown()                      { r.add("shown") }
func (r *listenerRecorder) OnInterstitialDismissed()                  { r.add("dismissed") }
func (r *listenerRecorder) OnInterstitialClicked()                    { r.add("clicked") }

// manualExecutor holds posted tasks until RunAll.
type manualExecutor struct {
	tasks []func()
}

func (e *manualExecutor) Post(fn func()) bool {
	e.tasks = append(e.tasks, fn)
	return true
}

func (e *manualExecutor) RunAll() {
	tasks := e.tasks
	e.tasks = nil
	for _, fn := range tasks {
		fn()
	}
}

type fixture struct {
	sdk      issdk.SDK
	queue    *task.SerialQueue
	clock    *clock.Mock
	listener *listenerRecorder
	builder  *Builder
}

func testConfig() *config.Configuration {
	return &config.Configuration{
		Adapters: config.Adapters{
			IronSource: config.IronSource{
				MediationType:     "mopub",
				DefaultInstanceID: "0",
			},
		},
		Dispatch: config.Dispatch{QueueSize: 16},
		GDPR:     config.GDPR{DefaultValue: "1"},
	}
}

func newFixture(t *testing.T, sdk issdk.SDK, consent bool, engine metrics.MetricsEngine) *fixture {
	t.Helper()
	return newFixtureWithQueue(t, sdk, consent, engine, task.NewSerialQueue(16))
}

func newFixtureWithQueue(t *testing.T, sdk issdk.SDK, consent bool, engine metrics.MetricsEngine, queue *task.SerialQueue) *fixture {
	t.Helper()

	t.Cleanup(queue.Stop)
	mockClock := clock.NewMock()

	builder, err := NewBuilder(testConfig(), Dependencies{
		SDK:          sdk,
		PersonalInfo: staticPersonalInfo(consent),
		Metrics:      engine,
		Executor:     queue,
		Clock:        mockClock,
	})
	require.NoError(t, err)
	t.Cleanup(builder.Shutdown)

	return &fixture{
		sdk:      sdk,
		queue:    queue,
		clock:    mockClock,
		listener: &listenerRecorder{},
		builder:  builder,
	}
}

// events waits for pending notifications and returns what the listener saw.
func (f *fixture) events() []string {
	f.queue.Sync()
	return f.listener.Events()
}

func (f *fixture) load(ad *InterstitialAdapter, extras map[string]string) {
	ad.LoadInterstitial(testActivity{}, f.listener, nil, extras)
}
