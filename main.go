package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/viper"

	"github.com/prebid/prebid-mediation/adapters"
	"github.com/prebid/prebid-mediation/adapters/ironsource"
	"github.com/prebid/prebid-mediation/config"
	"github.com/prebid/prebid-mediation/errortypes"
	"github.com/prebid/prebid-mediation/gdpr"
	"github.com/prebid/prebid-mediation/ironsource/ironsourcetest"
	metricsconfig "github.com/prebid/prebid-mediation/metrics/config"
	"github.com/prebid/prebid-mediation/mopub"
	"github.com/prebid/prebid-mediation/util/task"
)

// Rev holds binary revision string
// Set manually at build time using:
//
//	go build -ldflags "-X main.Rev=`git rev-parse --short HEAD`"
var Rev string

var (
	extrasFlag  = flag.String("extras", `{"applicationKey":"demo","instanceId":"0"}`, "custom event data of the simulated ad unit, as JSON")
	gdprFlag    = flag.String("gdpr", "", "gdpr signal reported by the mediator: 0, 1 or empty")
	consentFlag = flag.String("consent", "", "TCF2 consent string reported by the mediator")
	fillFlag    = flag.Bool("fill", true, "whether the simulated network fills the load")
)

func main() {
	flag.Parse() // required for glog flags and testing package flags

	cfg, err := loadConfig()
	if err != nil {
		glog.Exitf("Configuration could not be loaded or did not pass validation (code %d): %v", errortypes.ReadCode(err), err)
	}

	if err := simulate(Rev, cfg); err != nil {
		glog.Exitf("mediation simulation failed: %v", err)
	}
	glog.Flush()
}

const configFileName = "mediation"

func loadConfig() (*config.Configuration, error) {
	v := viper.New()
	config.SetupViper(v, configFileName)
	return config.New(v)
}

// simulate runs one load and show of an ironSource interstitial against an
// in-memory network SDK and logs what the mediator observes.
func simulate(revision string, cfg *config.Configuration) error {
	glog.Infof("mediation simulator revision %q", revision)

	serverExtras, err := mopub.ServerExtrasFromJSON([]byte(*extrasFlag))
	if err != nil {
		return errors.Wrap(err, "invalid -extras")
	}

	privacy := gdpr.NewPersonalInfoManager(cfg.GDPR.DefaultValue)
	if err := privacy.SetGDPR(*gdprFlag, *consentFlag); err != nil {
		return errors.Wrap(err, "invalid -gdpr")
	}

	metricsEngine := metricsconfig.NewMetricsEngine(cfg)
	queue := task.NewSerialQueue(cfg.Dispatch.QueueSize)
	defer queue.Stop()

	sdk := ironsourcetest.NewFakeSDK()
	builder, err := ironsource.NewBuilder(cfg, ironsource.Dependencies{
		SDK:          sdk,
		PersonalInfo: privacy,
		Metrics:      metricsEngine,
		Executor:     queue,
	})
	if err != nil {
		return errors.Wrap(err, "building ironsource adapter")
	}
	defer builder.Shutdown()

	registry, err := adapters.NewRegistry(builder)
	if err != nil {
		return err
	}
	ad, err := registry.NewInterstitial(builder.Name())
	if err != nil {
		return err
	}

	activity := simulatedActivity{}
	builder.State().OnActivityResumed(activity)
	defer builder.State().OnActivityPaused(activity)

	ad.LoadInterstitial(activity, loggingListener{}, nil, serverExtras)

	instanceID := cfg.Adapters.IronSource.DefaultInstanceID
	if id := serverExtras["instanceId"]; id != "" {
		instanceID = id
	}
	if *fillFlag {
		sdk.Fill(instanceID)
	} else {
		sdk.FailLoad(instanceID, nil)
	}
	sdk.Wait()
	queue.Sync()

	ad.ShowInterstitial()
	sdk.Wait()
	queue.Sync()
	ad.OnInvalidate()

	if metricsEngine.GoMetrics != nil {
		gometrics.WriteOnce(metricsEngine.GoMetrics.MetricsRegistry, os.Stderr)
	}
	return nil
}
