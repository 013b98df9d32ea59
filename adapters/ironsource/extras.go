package ironsource

import (
	"github.com/prebid/prebid-mediation/errortypes"
)

// Server extras keys configured per ad unit in the mediator dashboard.
const (
	applicationKeyKey = "applicationKey"
	placementNameKey  = "placementName"
	instanceIDKey     = "instanceId"
)

type serverExtras struct {
	applicationKey string
	placementName  string
	instanceID     string
}

// parseServerExtras reads the ad unit configuration. An absent or empty
// instanceId falls back to defaultInstanceID.
func parseServerExtras(extras map[string]string, defaultInstanceID string) (serverExtras, error) {
	parsed := serverExtras{
		applicationKey: extras[applicationKeyKey],
		placementName:  extras[placementNameKey],
		instanceID:     extras[instanceIDKey],
	}
	if parsed.instanceID == "" {
		parsed.instanceID = defaultInstanceID
	}
	if parsed.applicationKey == "" {
		return parsed, &errortypes.BadInput{
			Message: "ironsource initialization failed, make sure that the '" + applicationKeyKey + "' server parameter is added",
		}
	}
	return parsed, nil
}
