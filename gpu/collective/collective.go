// Package collective exposes the configuration surface of the collective
// communication library paired with the built-in GPU runtime: NCCL under
// the "cuda" build tag, RCCL under the "hip" build tag. RCCL is
// API-compatible with NCCL, so the two builds present an identical Go
// surface.
//
// The package deliberately stops at configuration and bootstrap material
// (default config blob, tuning overrides, unique IDs, enum values).
// Communicator lifecycle and the collective operations themselves are the
// training framework's business, not this library's.
package collective

import (
	"errors"
	"fmt"
)

// UndefInt is the value the vendor's default initializer assigns to every
// integer tuning field, meaning "library decides". It tracks
// NCCL_CONFIG_UNDEF_INT (INT_MIN) in the vendor header.
const UndefInt = -2147483648

// UniqueIDBytes is the wire size of a communicator bootstrap ID, fixed by
// the vendor ABI (NCCL_UNIQUE_ID_BYTES).
const UniqueIDBytes = 128

// UniqueID identifies one communicator clique. It is generated once by a
// root rank and distributed out-of-band to every participant. The contents
// are opaque.
type UniqueID [UniqueIDBytes]byte

// Tuning holds the communicator knobs an application may want to override,
// with Go-typed fields. The zero value means "library decides" for
// everything; Default returns the values the original deployment used.
type Tuning struct {
	// Blocking selects blocking communicator behavior. Non-blocking
	// communicators return in-progress from init and require polling.
	Blocking bool `json:"blocking"`

	// CGAClusterSize sets the cooperative group array cluster size.
	CGAClusterSize uint8 `json:"cga_cluster_size"`

	// MinCTAs and MaxCTAs bound how many thread blocks the library may
	// use per collective.
	MinCTAs uint8 `json:"min_ctas"`
	MaxCTAs uint8 `json:"max_ctas"`

	// NetName forces a specific network transport (e.g. "Socket", "IB").
	// Empty leaves the choice to the library.
	NetName string `json:"net_name,omitempty"`

	// SplitShare lets communicators created by splitting share resources
	// with their parent.
	SplitShare bool `json:"split_share"`
}

// DefaultTuning returns the tuning values used in production.
func DefaultTuning() Tuning {
	return Tuning{
		Blocking:       true,
		CGAClusterSize: 4,
		MinCTAs:        1,
		MaxCTAs:        32,
		SplitShare:     false,
	}
}

// ReduceOp selects the reduction applied by reducing collectives. The
// numeric values are the vendor's.
type ReduceOp int32

const (
	ReduceSum  ReduceOp = 0
	ReduceProd ReduceOp = 1
	ReduceMax  ReduceOp = 2
	ReduceMin  ReduceOp = 3
	ReduceAvg  ReduceOp = 4
)

func (op ReduceOp) String() string {
	switch op {
	case ReduceSum:
		return "sum"
	case ReduceProd:
		return "prod"
	case ReduceMax:
		return "max"
	case ReduceMin:
		return "min"
	case ReduceAvg:
		return "avg"
	}
	return fmt.Sprintf("ReduceOp(%d)", int32(op))
}

// DataType identifies an element type in a collective call. The numeric
// values are the vendor's.
type DataType int32

const (
	Int8     DataType = 0
	Uint8    DataType = 1
	Int32    DataType = 2
	Uint32   DataType = 3
	Int64    DataType = 4
	Uint64   DataType = 5
	Float16  DataType = 6
	Float32  DataType = 7
	Float64  DataType = 8
	Bfloat16 DataType = 9
)

func (dt DataType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Bfloat16:
		return "bfloat16"
	}
	return fmt.Sprintf("DataType(%d)", int32(dt))
}

// Sentinel errors for the collective library's result codes.
var (
	// ErrNotBuilt is returned when the binary carries no collective
	// library (neither the cuda nor the hip build tag).
	ErrNotBuilt = errors.New("collective: no collective library built into this binary")

	// ErrUnhandledRuntime corresponds to result code 1: a GPU runtime
	// call made by the library failed.
	ErrUnhandledRuntime = errors.New("collective: unhandled GPU runtime error")

	// ErrSystem corresponds to result code 2.
	ErrSystem = errors.New("collective: system call failed")

	// ErrInternal corresponds to result code 3.
	ErrInternal = errors.New("collective: internal check failed")

	// ErrInvalidArgument corresponds to result code 4.
	ErrInvalidArgument = errors.New("collective: invalid argument")

	// ErrInvalidUsage corresponds to result code 5.
	ErrInvalidUsage = errors.New("collective: invalid usage")

	// ErrRemote corresponds to result code 6, usually a network failure
	// on a peer.
	ErrRemote = errors.New("collective: remote peer error")
)

// resultError maps a library result code to a Go error. Code 0 is success
// and code 7 is in-progress; neither is an error.
func resultError(code int32, detail string) error {
	var base error
	switch code {
	case 0, 7:
		return nil
	case 1:
		base = ErrUnhandledRuntime
	case 2:
		base = ErrSystem
	case 3:
		base = ErrInternal
	case 4:
		base = ErrInvalidArgument
	case 5:
		base = ErrInvalidUsage
	case 6:
		base = ErrRemote
	default:
		return fmt.Errorf("collective: result code %d: %s", code, detail)
	}
	if detail == "" {
		return base
	}
	return fmt.Errorf("%w: %s", base, detail)
}
