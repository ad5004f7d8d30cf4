package gpu

import (
	"errors"
	"fmt"
)

// Sentinel errors for the runtime error codes that callers commonly branch
// on. Both vendor runtimes use the same numeric codes for these conditions.
var (
	// ErrNotBuilt is returned by every runtime operation when the binary
	// was built without a vendor GPU runtime (neither the cuda nor the hip
	// build tag).
	ErrNotBuilt = errors.New("gpu: no vendor runtime built into this binary")

	// ErrInvalidValue corresponds to runtime error code 1.
	ErrInvalidValue = errors.New("gpu: invalid value")

	// ErrMemoryAllocation corresponds to runtime error code 2.
	ErrMemoryAllocation = errors.New("gpu: memory allocation failed")

	// ErrInitialization corresponds to runtime error code 3.
	ErrInitialization = errors.New("gpu: runtime initialization failed")

	// ErrNoDevice corresponds to runtime error code 100.
	ErrNoDevice = errors.New("gpu: no GPU device available")

	// ErrInvalidDevice corresponds to runtime error code 101.
	ErrInvalidDevice = errors.New("gpu: invalid device ordinal")
)

// RuntimeError is a vendor runtime error code without a sentinel mapping.
type RuntimeError struct {
	// Code is the raw vendor error code.
	Code int32

	// Detail is the vendor-provided error string, if any.
	Detail string
}

func (e *RuntimeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("gpu: runtime error %d", e.Code)
	}
	return fmt.Sprintf("gpu: runtime error %d: %s", e.Code, e.Detail)
}

// codeError maps a nonzero vendor error code plus its error string to a Go
// error. Codes with a sentinel are wrapped so callers can errors.Is against
// them; everything else becomes a *RuntimeError.
func codeError(code int32, detail string) error {
	var base error
	switch code {
	case 1:
		base = ErrInvalidValue
	case 2:
		base = ErrMemoryAllocation
	case 3:
		base = ErrInitialization
	case 100:
		base = ErrNoDevice
	case 101:
		base = ErrInvalidDevice
	default:
		return &RuntimeError{Code: code, Detail: detail}
	}
	if detail == "" {
		return base
	}
	return fmt.Errorf("%w: %s", base, detail)
}
