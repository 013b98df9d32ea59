package ironsource

import (
	"fmt"

	"github.com/prebid/prebid-mediation/errortypes"
	issdk "github.com/prebid/prebid-mediation/ironsource"
	"github.com/prebid/prebid-mediation/mopub"
)

// mediatorErrorCode translates an error reported by the SDK into the code the
// mediator understands.
func mediatorErrorCode(err *issdk.Error) mopub.ErrorCode {
	if err == nil {
		return mopub.ErrorCodeInternalError
	}
	switch err.Code {
	case issdk.ErrorCodeNoConfigurationAvailable,
		issdk.ErrorCodeKeyNotSet,
		issdk.ErrorCodeInvalidKeyValue,
		issdk.ErrorCodeInitFailed:
		return mopub.ErrorCodeAdapterConfigurationError
	case issdk.ErrorCodeUsingCachedConfiguration:
		return mopub.ErrorCodeVideoCacheError
	case issdk.ErrorCodeNoAdsToShow:
		return mopub.ErrorCodeNetworkNoFill
	case issdk.ErrorCodeGeneric:
		return mopub.ErrorCodeInternalError
	case issdk.ErrorNoInternetConnection:
		return mopub.ErrorCodeNoConnection
	default:
		return mopub.ErrorCodeUnspecified
	}
}

// mediatorErrorCodeForAdapterError translates an adapter side failure.
func mediatorErrorCodeForAdapterError(err error) mopub.ErrorCode {
	switch errortypes.ReadCode(err) {
	case errortypes.NotReadyErrorCode:
		return mopub.ErrorCodeNoFill
	default:
		return mopub.ErrorCodeInternalError
	}
}

// callSDK runs fn, converting a panic or an untyped error into a NetworkFailure.
// Typed adapter errors pass through unchanged.
func callSDK(call string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &errortypes.NetworkFailure{Call: call, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	if err = fn(); err == nil {
		return nil
	}
	if _, ok := err.(errortypes.Coder); ok {
		return err
	}
	return &errortypes.NetworkFailure{Call: call, Cause: err}
}
