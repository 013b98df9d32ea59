package mopub

// ErrorCode is the failure reason reported to the mediator through
// InterstitialListener.OnInterstitialFailed.
type ErrorCode int

const (
	ErrorCodeUnspecified ErrorCode = iota
	ErrorCodeInternalError
	ErrorCodeNoFill
	ErrorCodeNetworkNoFill
	ErrorCodeAdapterConfigurationError
	ErrorCodeVideoCacheError
	ErrorCodeNoConnection
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCodeUnspecified:               "unspecified",
	ErrorCodeInternalError:             "internal_error",
	ErrorCodeNoFill:                    "no_fill",
	ErrorCodeNetworkNoFill:             "network_no_fill",
	ErrorCodeAdapterConfigurationError: "adapter_configuration_error",
	ErrorCodeVideoCacheError:           "video_cache_error",
	ErrorCodeNoConnection:              "no_connection",
}

// ErrorCodes returns every error code the mediator understands.
func ErrorCodes() []ErrorCode {
	return []ErrorCode{
		ErrorCodeUnspecified,
		ErrorCodeInternalError,
		ErrorCodeNoFill,
		ErrorCodeNetworkNoFill,
		ErrorCodeAdapterConfigurationError,
		ErrorCodeVideoCacheError,
		ErrorCodeNoConnection,
	}
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return errorCodeNames[ErrorCodeUnspecified]
}
