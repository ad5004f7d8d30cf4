//go:build !cuda && !hip

package gpu

// Stub backend, compiled when neither vendor build tag is set. Every
// runtime operation fails with ErrNotBuilt so that the library, the CLI,
// and the tests build and run on machines without a GPU toolchain.

const (
	runtimeName  = "none"
	runtimeBuilt = false

	// Flag values mirror the vendor headers; CUDA and HIP agree on the
	// numbers.
	eventDefault       = uint32(0x0)
	eventBlockingSync  = uint32(0x1)
	eventDisableTiming = uint32(0x2)
	eventInterprocess  = uint32(0x4)
)

const defaultStreamHandle uintptr = 0

func runtimeEventCreate(flags uint32) (uintptr, error) {
	return 0, ErrNotBuilt
}

func runtimeEventDestroy(event uintptr) error {
	return ErrNotBuilt
}

func runtimeEventRecord(event, stream uintptr) error {
	return ErrNotBuilt
}

func runtimeEventQuery(event uintptr) (bool, error) {
	return false, ErrNotBuilt
}

func runtimeEventSynchronize(event uintptr) error {
	return ErrNotBuilt
}

func runtimeEventElapsed(start, end uintptr) (float32, error) {
	return 0, ErrNotBuilt
}

func runtimeStreamWaitEvent(stream, event uintptr) error {
	return ErrNotBuilt
}

func runtimeStreamCreate(priority int) (uintptr, error) {
	return 0, ErrNotBuilt
}

func runtimeStreamQuery(stream uintptr) (bool, error) {
	return false, ErrNotBuilt
}

func runtimeStreamSynchronize(stream uintptr) error {
	return ErrNotBuilt
}

func runtimeSetDevice(index int) error {
	return ErrNotBuilt
}

func runtimeGetDevice() (int, error) {
	return 0, ErrNotBuilt
}

func runtimeDeviceCount() (int, error) {
	return 0, ErrNotBuilt
}

func runtimeDeviceProps(index int) (string, uint64, error) {
	return "", 0, ErrNotBuilt
}

func runtimeStreamPriorityRange() (int, int, error) {
	return 0, 0, ErrNotBuilt
}
