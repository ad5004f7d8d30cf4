//go:build hip

package gpu

/*
#cgo CFLAGS: -D__HIP_PLATFORM_AMD__
#cgo LDFLAGS: -lamdhip64
#include <hip/hip_runtime_api.h>
*/
import "C"

import "unsafe"

const (
	runtimeName  = "hip"
	runtimeBuilt = true

	eventDefault       = uint32(C.hipEventDefault)
	eventBlockingSync  = uint32(C.hipEventBlockingSync)
	eventDisableTiming = uint32(C.hipEventDisableTiming)
	eventInterprocess  = uint32(C.hipEventInterprocess)
)

// The default stream is the null stream on both vendor runtimes.
const defaultStreamHandle uintptr = 0

func check(code C.hipError_t) error {
	if code == C.hipSuccess {
		return nil
	}
	return codeError(int32(code), C.GoString(C.hipGetErrorString(code)))
}

func runtimeEventCreate(flags uint32) (uintptr, error) {
	var event C.hipEvent_t
	if err := check(C.hipEventCreateWithFlags(&event, C.uint(flags))); err != nil {
		return 0, err
	}
	return uintptr(unsafe.Pointer(event)), nil
}

func runtimeEventDestroy(event uintptr) error {
	return check(C.hipEventDestroy(C.hipEvent_t(unsafe.Pointer(event))))
}

func runtimeEventRecord(event, stream uintptr) error {
	return check(C.hipEventRecord(
		C.hipEvent_t(unsafe.Pointer(event)),
		C.hipStream_t(unsafe.Pointer(stream))))
}

func runtimeEventQuery(event uintptr) (bool, error) {
	code := C.hipEventQuery(C.hipEvent_t(unsafe.Pointer(event)))
	if code == C.hipErrorNotReady {
		return false, nil
	}
	if err := check(code); err != nil {
		return false, err
	}
	return true, nil
}

func runtimeEventSynchronize(event uintptr) error {
	return check(C.hipEventSynchronize(C.hipEvent_t(unsafe.Pointer(event))))
}

func runtimeEventElapsed(start, end uintptr) (float32, error) {
	var ms C.float
	err := check(C.hipEventElapsedTime(&ms,
		C.hipEvent_t(unsafe.Pointer(start)),
		C.hipEvent_t(unsafe.Pointer(end))))
	return float32(ms), err
}

func runtimeStreamWaitEvent(stream, event uintptr) error {
	return check(C.hipStreamWaitEvent(
		C.hipStream_t(unsafe.Pointer(stream)),
		C.hipEvent_t(unsafe.Pointer(event)),
		0))
}

// Pooled streams are created non-blocking so they never implicitly
// synchronize with the null stream.
func runtimeStreamCreate(priority int) (uintptr, error) {
	var stream C.hipStream_t
	err := check(C.hipStreamCreateWithPriority(&stream, C.hipStreamNonBlocking, C.int(priority)))
	if err != nil {
		return 0, err
	}
	return uintptr(unsafe.Pointer(stream)), nil
}

func runtimeStreamQuery(stream uintptr) (bool, error) {
	code := C.hipStreamQuery(C.hipStream_t(unsafe.Pointer(stream)))
	if code == C.hipErrorNotReady {
		return false, nil
	}
	if err := check(code); err != nil {
		return false, err
	}
	return true, nil
}

func runtimeStreamSynchronize(stream uintptr) error {
	return check(C.hipStreamSynchronize(C.hipStream_t(unsafe.Pointer(stream))))
}

func runtimeSetDevice(index int) error {
	return check(C.hipSetDevice(C.int(index)))
}

func runtimeGetDevice() (int, error) {
	var index C.int
	err := check(C.hipGetDevice(&index))
	return int(index), err
}

func runtimeDeviceCount() (int, error) {
	var count C.int
	err := check(C.hipGetDeviceCount(&count))
	return int(count), err
}

func runtimeDeviceProps(index int) (string, uint64, error) {
	var prop C.hipDeviceProp_t
	if err := check(C.hipGetDeviceProperties(&prop, C.int(index))); err != nil {
		return "", 0, err
	}
	return C.GoString(&prop.name[0]), uint64(prop.totalGlobalMem), nil
}

func runtimeStreamPriorityRange() (int, int, error) {
	var least, greatest C.int
	err := check(C.hipDeviceGetStreamPriorityRange(&least, &greatest))
	return int(least), int(greatest), err
}
