package mopub

import (
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/prebid/prebid-mediation/errortypes"
)

// ServerExtrasFromJSON decodes the custom event data configured for an ad unit
// in the MoPub dashboard into the string map handed to LoadInterstitial.
//
// Scalar values are kept in their textual form, so {"instanceId": 3} and
// {"instanceId": "3"} yield the same extras. Nulls are skipped. Nested objects
// and arrays are rejected.
func ServerExtrasFromJSON(data []byte) (map[string]string, error) {
	extras := make(map[string]string)
	if len(data) == 0 {
		return extras, nil
	}

	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		switch dataType {
		case jsonparser.String:
			s, err := jsonparser.ParseString(value)
			if err != nil {
				return err
			}
			extras[string(key)] = s
		case jsonparser.Number, jsonparser.Boolean:
			extras[string(key)] = string(value)
		case jsonparser.Null:
		default:
			return fmt.Errorf("server extra %q must be a scalar", string(key))
		}
		return nil
	})
	if err != nil {
		return nil, &errortypes.BadInput{
			Message: fmt.Sprintf("malformed custom event data: %v", err),
		}
	}
	return extras, nil
}
