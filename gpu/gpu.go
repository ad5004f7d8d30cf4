// Package gpu provides a vendor-neutral interface to GPU stream and event
// primitives.
//
// The package compiles against exactly one vendor runtime, selected at build
// time:
//   - the "cuda" build tag binds to the CUDA runtime (libcudart)
//   - the "hip" build tag binds to the HIP runtime (libamdhip64)
//   - with neither tag, a stub backend is compiled in and every runtime
//     operation reports ErrNotBuilt
//
// The exported API is identical under all three configurations; only the
// runtime_*.go file that backs it changes. Application code therefore never
// references a vendor type or constant directly.
//
// Streams and events are handles to driver-managed resources. The package
// adds no locking or validation around runtime calls: error conditions are
// whatever the vendor runtime reports, surfaced unchanged. Record/wait
// operations act on the GPU command queue and return immediately; they never
// block the calling goroutine.
package gpu

// DeviceIndex identifies a GPU device by ordinal.
//
// The value CurrentDevice (-1) can be passed wherever a DeviceIndex is
// expected to mean "whichever device is currently active".
type DeviceIndex int32

// CurrentDeviceIndex selects the currently active device.
const CurrentDeviceIndex DeviceIndex = -1

// Built reports whether a vendor GPU runtime was compiled into this binary.
func Built() bool {
	return runtimeBuilt
}

// Runtime returns the name of the vendor runtime this binary was built
// against: "cuda", "hip", or "none" for stub builds.
func Runtime() string {
	return runtimeName
}

// DeviceCount returns the number of GPU devices visible to the runtime.
func DeviceCount() (int, error) {
	return runtimeDeviceCount()
}

// SetDevice makes the given device the active device for subsequent runtime
// calls.
func SetDevice(device DeviceIndex) error {
	return runtimeSetDevice(int(device))
}

// CurrentDevice returns the index of the currently active device.
func CurrentDevice() (DeviceIndex, error) {
	index, err := runtimeGetDevice()
	return DeviceIndex(index), err
}

// DeviceName returns the runtime-reported name of the given device.
func DeviceName(device DeviceIndex) (string, error) {
	name, _, err := runtimeDeviceProps(int(device))
	return name, err
}

// DeviceTotalMemory returns the total global memory of the given device in
// bytes.
func DeviceTotalMemory(device DeviceIndex) (uint64, error) {
	_, total, err := runtimeDeviceProps(int(device))
	return total, err
}

// StreamPriorityRange returns the least and greatest stream priorities
// supported by the active device. Lower numeric values mean higher priority
// on both vendor runtimes, but the exact range is runtime-defined.
func StreamPriorityRange() (least, greatest int, err error) {
	return runtimeStreamPriorityRange()
}

// resolveDevice maps CurrentDeviceIndex to the active device ordinal.
func resolveDevice(device DeviceIndex) (DeviceIndex, error) {
	if device >= 0 {
		return device, nil
	}
	index, err := runtimeGetDevice()
	if err != nil {
		return 0, err
	}
	return DeviceIndex(index), nil
}
