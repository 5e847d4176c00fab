package exceptions

import "errors"

// Kind classifies a CustomError so callers can branch with errors.Is.
type Kind string

func (k Kind) Error() string {
	return string(k)
}

const (
	KindDeviceUnavailable  Kind = "DEVICE_UNAVAILABLE"
	KindInvalidState       Kind = "INVALID_STATE"
	KindAuthExpired        Kind = "AUTH_EXPIRED"
	KindValidationFailed   Kind = "VALIDATION_FAILED"
	KindBackendUnavailable Kind = "BACKEND_UNAVAILABLE"
	KindStartRejected      Kind = "START_REJECTED"
	KindCompletionRejected Kind = "COMPLETION_REJECTED"
	KindOperationInFlight  Kind = "OPERATION_IN_FLIGHT"
	KindSessionAbandoned   Kind = "SESSION_ABANDONED"
	KindNotFound           Kind = "NOT_FOUND"
	KindCapacityExhausted  Kind = "CAPACITY_EXHAUSTED"
	KindInternal           Kind = "INTERNAL"
)

// KindOf returns the Kind of err, or KindInternal when err carries none.
func KindOf(err error) Kind {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.Kind != "" {
		return customErr.Kind
	}
	return KindInternal
}
