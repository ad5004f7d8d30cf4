// Package device provides GPU device detection and management.
//
// This package merges two sources of device information:
//   - the built-in GPU runtime (when the binary carries one), which knows
//     the devices it can actually drive
//   - the PCI bus, which reveals GPU hardware regardless of which runtime
//     the binary was built against
//
// The Manager performs detection once at creation and provides thread-safe
// access to the result.
package device

import (
	"sync"

	"github.com/tsingmao/gpukit/gpu"
	"github.com/tsingmao/gpukit/internal/api"
	"github.com/tsingmao/gpukit/internal/logger"
)

// Manager maintains the detected GPU device set.
//
// Detection happens synchronously in NewManager so device information is
// available immediately after creation. A RWMutex guards the device slice
// to allow concurrent readers.
type Manager struct {
	mu      sync.RWMutex
	devices []api.DeviceInfo
}

// NewManager creates a device manager and performs detection.
func NewManager() *Manager {
	m := &Manager{}
	m.detect(runtimeDevices(), pciDevices(), runtimeVendor())
	return m
}

// Devices returns a copy of the detected device list.
func (m *Manager) Devices() []api.DeviceInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	devices := make([]api.DeviceInfo, len(m.devices))
	copy(devices, m.devices)
	return devices
}

// Driveable returns the subset of devices the built-in runtime can issue
// work to.
func (m *Manager) Driveable() []api.DeviceInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var driveable []api.DeviceInfo
	for _, d := range m.devices {
		if d.Driveable {
			driveable = append(driveable, d)
		}
	}
	return driveable
}

// detect merges runtime-reported and PCI-discovered devices into the
// manager's list. Runtime devices are authoritative; PCI entries for the
// runtime's own vendor are only kept when the runtime reported nothing,
// since a bus address cannot be matched to a runtime ordinal without
// vendor management libraries.
func (m *Manager) detect(runtime, pci []api.DeviceInfo, vendor api.Vendor) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.devices = append([]api.DeviceInfo(nil), runtime...)
	for _, d := range pci {
		if len(runtime) > 0 && d.Vendor == vendor {
			continue
		}
		m.devices = append(m.devices, d)
	}
}

// runtimeDevices enumerates the devices the built-in runtime reports, with
// names and memory sizes.
func runtimeDevices() []api.DeviceInfo {
	if !gpu.Built() {
		return nil
	}

	count, err := gpu.DeviceCount()
	if err != nil {
		logger.Warn("GPU runtime device enumeration failed: %v", err)
		return nil
	}

	var devices []api.DeviceInfo
	for i := 0; i < count; i++ {
		info := api.DeviceInfo{
			Index:     i,
			Vendor:    runtimeVendor(),
			Driveable: true,
		}
		if name, err := gpu.DeviceName(gpu.DeviceIndex(i)); err == nil {
			info.Name = name
		} else {
			logger.Debug("device %d: name query failed: %v", i, err)
		}
		if total, err := gpu.DeviceTotalMemory(gpu.DeviceIndex(i)); err == nil {
			info.TotalMemory = total
		}
		devices = append(devices, info)
	}
	return devices
}

// pciDevices scans the PCI bus for GPU hardware.
func pciDevices() []api.DeviceInfo {
	gpus, err := FindGPUs()
	if err != nil {
		logger.Debug("PCI scan unavailable: %v", err)
		return nil
	}
	return gpus
}

// runtimeVendor maps the built-in runtime to its vendor family.
func runtimeVendor() api.Vendor {
	switch gpu.Runtime() {
	case "cuda":
		return api.VendorNVIDIA
	case "hip":
		return api.VendorAMD
	}
	return api.VendorUnknown
}
