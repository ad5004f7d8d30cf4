// Package api defines the shared types used by the gpukit CLI and the
// device detection layer.
//
// All types in this package are JSON-serializable so command output can be
// rendered either as tables or as machine-readable JSON.
package api

// Vendor identifies a GPU vendor family.
//
// Vendor values are brand-level: the runtime a binary is built against
// (cuda vs hip) determines which vendor's devices it can actually drive,
// while PCI detection can report devices from either vendor.
type Vendor string

const (
	// VendorNVIDIA covers devices driven by the CUDA runtime family.
	VendorNVIDIA Vendor = "nvidia"

	// VendorAMD covers devices driven by the HIP/ROCm runtime family.
	VendorAMD Vendor = "amd"

	// VendorUnknown is reported for display-class PCI devices from other
	// vendors.
	VendorUnknown Vendor = "unknown"
)

// DeviceInfo describes one detected GPU device.
type DeviceInfo struct {
	// Index is the runtime device ordinal, or -1 when the device was
	// found via PCI scan only and the built-in runtime cannot drive it.
	Index int `json:"index"`

	// Name is the device name as reported by the runtime, or the vendor
	// name when only PCI information is available.
	Name string `json:"name"`

	// Vendor is the brand-level vendor family.
	Vendor Vendor `json:"vendor"`

	// BusAddress is the PCI bus address (e.g. "0000:01:00.0"), when known.
	BusAddress string `json:"bus_address,omitempty"`

	// TotalMemory is the device's total global memory in bytes; zero when
	// unknown.
	TotalMemory uint64 `json:"total_memory,omitempty"`

	// Driveable indicates the built-in runtime can issue work to this
	// device.
	Driveable bool `json:"driveable"`

	// Properties holds additional vendor-specific metadata.
	Properties map[string]string `json:"properties,omitempty"`
}

// RuntimeInfo describes the GPU runtime this binary was built against.
type RuntimeInfo struct {
	// Runtime is "cuda", "hip", or "none".
	Runtime string `json:"runtime"`

	// Built is false for stub builds.
	Built bool `json:"built"`

	// Collective is the collective library paired with the runtime:
	// "nccl", "rccl", or "none".
	Collective string `json:"collective"`

	// DeviceCount is the number of devices the runtime reports; zero for
	// stub builds.
	DeviceCount int `json:"device_count"`
}
