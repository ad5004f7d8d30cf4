//go:build cuda

package gpu

/*
#cgo LDFLAGS: -lcudart
#include <cuda_runtime.h>
*/
import "C"

import "unsafe"

const (
	runtimeName  = "cuda"
	runtimeBuilt = true

	eventDefault       = uint32(C.cudaEventDefault)
	eventBlockingSync  = uint32(C.cudaEventBlockingSync)
	eventDisableTiming = uint32(C.cudaEventDisableTiming)
	eventInterprocess  = uint32(C.cudaEventInterprocess)
)

// The default stream is the null stream on both vendor runtimes.
const defaultStreamHandle uintptr = 0

func check(code C.cudaError_t) error {
	if code == C.cudaSuccess {
		return nil
	}
	return codeError(int32(code), C.GoString(C.cudaGetErrorString(code)))
}

func runtimeEventCreate(flags uint32) (uintptr, error) {
	var event C.cudaEvent_t
	if err := check(C.cudaEventCreateWithFlags(&event, C.uint(flags))); err != nil {
		return 0, err
	}
	return uintptr(unsafe.Pointer(event)), nil
}

func runtimeEventDestroy(event uintptr) error {
	return check(C.cudaEventDestroy(C.cudaEvent_t(unsafe.Pointer(event))))
}

func runtimeEventRecord(event, stream uintptr) error {
	return check(C.cudaEventRecord(
		C.cudaEvent_t(unsafe.Pointer(event)),
		C.cudaStream_t(unsafe.Pointer(stream))))
}

func runtimeEventQuery(event uintptr) (bool, error) {
	code := C.cudaEventQuery(C.cudaEvent_t(unsafe.Pointer(event)))
	if code == C.cudaErrorNotReady {
		return false, nil
	}
	if err := check(code); err != nil {
		return false, err
	}
	return true, nil
}

func runtimeEventSynchronize(event uintptr) error {
	return check(C.cudaEventSynchronize(C.cudaEvent_t(unsafe.Pointer(event))))
}

func runtimeEventElapsed(start, end uintptr) (float32, error) {
	var ms C.float
	err := check(C.cudaEventElapsedTime(&ms,
		C.cudaEvent_t(unsafe.Pointer(start)),
		C.cudaEvent_t(unsafe.Pointer(end))))
	return float32(ms), err
}

func runtimeStreamWaitEvent(stream, event uintptr) error {
	return check(C.cudaStreamWaitEvent(
		C.cudaStream_t(unsafe.Pointer(stream)),
		C.cudaEvent_t(unsafe.Pointer(event)),
		C.cudaEventWaitDefault))
}

// Pooled streams are created non-blocking so they never implicitly
// synchronize with the null stream.
func runtimeStreamCreate(priority int) (uintptr, error) {
	var stream C.cudaStream_t
	err := check(C.cudaStreamCreateWithPriority(&stream, C.cudaStreamNonBlocking, C.int(priority)))
	if err != nil {
		return 0, err
	}
	return uintptr(unsafe.Pointer(stream)), nil
}

func runtimeStreamQuery(stream uintptr) (bool, error) {
	code := C.cudaStreamQuery(C.cudaStream_t(unsafe.Pointer(stream)))
	if code == C.cudaErrorNotReady {
		return false, nil
	}
	if err := check(code); err != nil {
		return false, err
	}
	return true, nil
}

func runtimeStreamSynchronize(stream uintptr) error {
	return check(C.cudaStreamSynchronize(C.cudaStream_t(unsafe.Pointer(stream))))
}

func runtimeSetDevice(index int) error {
	return check(C.cudaSetDevice(C.int(index)))
}

func runtimeGetDevice() (int, error) {
	var index C.int
	err := check(C.cudaGetDevice(&index))
	return int(index), err
}

func runtimeDeviceCount() (int, error) {
	var count C.int
	err := check(C.cudaGetDeviceCount(&count))
	return int(count), err
}

func runtimeDeviceProps(index int) (string, uint64, error) {
	var prop C.struct_cudaDeviceProp
	if err := check(C.cudaGetDeviceProperties(&prop, C.int(index))); err != nil {
		return "", 0, err
	}
	return C.GoString(&prop.name[0]), uint64(prop.totalGlobalMem), nil
}

func runtimeStreamPriorityRange() (int, int, error) {
	var least, greatest C.int
	err := check(C.cudaDeviceGetStreamPriorityRange(&least, &greatest))
	return int(least), int(greatest), err
}
