// Package device provides GPU device detection and management.
package device

import (
	"strings"

	"github.com/tsingmao/gpukit/internal/api"
)

// GPUVendor maps a PCI vendor ID to a brand-level vendor family.
type GPUVendor struct {
	// VendorID is the PCI vendor ID (e.g. "0x10de" for NVIDIA)
	VendorID string

	// VendorName is the human-readable vendor name
	VendorName string

	// Vendor is the api-level vendor family
	Vendor api.Vendor

	// Runtime is the runtime family that drives this vendor's devices
	Runtime string
}

// KnownVendors lists the GPU vendors gpukit can identify by PCI ID.
var KnownVendors = []GPUVendor{
	{VendorID: "0x10de", VendorName: "NVIDIA Corporation", Vendor: api.VendorNVIDIA, Runtime: "cuda"},
	{VendorID: "0x1002", VendorName: "Advanced Micro Devices", Vendor: api.VendorAMD, Runtime: "hip"},
}

// displayClassPrefix is the PCI base class for display controllers (VGA,
// 3D, and other display devices all share base class 0x03).
const displayClassPrefix = "0x03"

// LookupVendor returns the known vendor entry for a PCI vendor ID.
func LookupVendor(vendorID string) (GPUVendor, bool) {
	normalized := strings.ToLower(strings.TrimSpace(vendorID))
	for _, v := range KnownVendors {
		if v.VendorID == normalized {
			return v, true
		}
	}
	return GPUVendor{}, false
}

// IsDisplayClass reports whether a PCI class belongs to the display base
// class.
func IsDisplayClass(class string) bool {
	return strings.HasPrefix(strings.ToLower(class), displayClassPrefix)
}
