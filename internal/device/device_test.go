package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsingmao/gpukit/internal/api"
)

func TestLookupVendor(t *testing.T) {
	nvidia, ok := LookupVendor("0x10de")
	assert.True(t, ok)
	assert.Equal(t, api.VendorNVIDIA, nvidia.Vendor)
	assert.Equal(t, "cuda", nvidia.Runtime)

	// Lookup normalizes case and whitespace.
	amd, ok := LookupVendor(" 0x1002\n")
	assert.True(t, ok)
	assert.Equal(t, api.VendorAMD, amd.Vendor)

	_, ok = LookupVendor("0x8086")
	assert.False(t, ok)
}

func TestFilterGPUs(t *testing.T) {
	devices := []PCIDevice{
		// NVIDIA VGA controller
		{VendorID: "0x10de", DeviceID: "0x20b0", BusAddress: "0000:01:00.0", Class: "0x030000"},
		// AMD 3D controller
		{VendorID: "0x1002", DeviceID: "0x740f", BusAddress: "0000:02:00.0", Class: "0x030200"},
		// NVIDIA audio function on the same card: not display class
		{VendorID: "0x10de", DeviceID: "0x10f0", BusAddress: "0000:01:00.1", Class: "0x040300"},
		// Intel integrated graphics: display class, unknown vendor
		{VendorID: "0x8086", DeviceID: "0x4680", BusAddress: "0000:00:02.0", Class: "0x030000"},
	}

	gpus := filterGPUs(devices)
	assert.Len(t, gpus, 2)

	assert.Equal(t, api.VendorNVIDIA, gpus[0].Vendor)
	assert.Equal(t, "0000:01:00.0", gpus[0].BusAddress)
	assert.Equal(t, -1, gpus[0].Index)
	assert.Equal(t, "cuda", gpus[0].Properties["runtime"])

	assert.Equal(t, api.VendorAMD, gpus[1].Vendor)
	assert.Equal(t, "hip", gpus[1].Properties["runtime"])
}

func TestManagerMergesSources(t *testing.T) {
	runtime := []api.DeviceInfo{
		{Index: 0, Name: "Device 0", Vendor: api.VendorNVIDIA, Driveable: true},
	}
	pci := []api.DeviceInfo{
		{Index: -1, Vendor: api.VendorNVIDIA, BusAddress: "0000:01:00.0"},
		{Index: -1, Vendor: api.VendorAMD, BusAddress: "0000:00:02.0"},
	}

	m := &Manager{}
	m.detect(runtime, pci, api.VendorNVIDIA)

	// The runtime's own vendor is deduplicated; foreign hardware is kept.
	devices := m.Devices()
	assert.Len(t, devices, 2)
	assert.True(t, devices[0].Driveable)
	assert.Equal(t, "0000:00:02.0", devices[1].BusAddress)

	driveable := m.Driveable()
	assert.Len(t, driveable, 1)
	assert.Equal(t, 0, driveable[0].Index)
}

func TestManagerWithoutRuntimeKeepsAllPCI(t *testing.T) {
	pci := []api.DeviceInfo{
		{Index: -1, Vendor: api.VendorNVIDIA, BusAddress: "0000:01:00.0"},
		{Index: -1, Vendor: api.VendorAMD, BusAddress: "0000:02:00.0"},
	}

	m := &Manager{}
	m.detect(nil, pci, api.VendorNVIDIA)

	assert.Len(t, m.Devices(), 2)
	assert.Empty(t, m.Driveable())
}

func TestDevicesReturnsCopy(t *testing.T) {
	m := &Manager{}
	m.detect([]api.DeviceInfo{{Index: 0, Name: "a", Driveable: true}}, nil, api.VendorNVIDIA)

	devices := m.Devices()
	devices[0].Name = "mutated"
	assert.Equal(t, "a", m.Devices()[0].Name)
}
