package device

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsingmao/gpukit/internal/api"
)

// PCIDevice represents a PCI device with its identifiers
type PCIDevice struct {
	// VendorID is the PCI vendor ID (e.g., "0x10de")
	VendorID string

	// DeviceID is the PCI device ID
	DeviceID string

	// BusAddress is the PCI bus address (e.g., "0000:01:00.0")
	BusAddress string

	// Class is the PCI device class
	Class string
}

// pciDevicesPath is the sysfs location of PCI devices on Linux.
const pciDevicesPath = "/sys/bus/pci/devices"

// ScanPCIDevices scans the system for PCI devices
//
// This function reads PCI device information from /sys/bus/pci/devices
// which is the standard location on Linux systems.
//
// Returns:
//   - Slice of PCIDevice found on the system
//   - Error if scanning fails
func ScanPCIDevices() ([]PCIDevice, error) {
	if _, err := os.Stat(pciDevicesPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("PCI devices path not found: %s", pciDevicesPath)
	}

	entries, err := os.ReadDir(pciDevicesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read PCI devices: %w", err)
	}

	var devices []PCIDevice
	for _, entry := range entries {
		devicePath := filepath.Join(pciDevicesPath, entry.Name())
		device, err := readPCIDevice(devicePath, entry.Name())
		if err != nil {
			// Skip individual devices that cannot be read
			continue
		}
		devices = append(devices, device)
	}

	return devices, nil
}

// readPCIDevice reads PCI device information from sysfs
func readPCIDevice(devicePath, busAddress string) (PCIDevice, error) {
	device := PCIDevice{
		BusAddress: busAddress,
	}

	vendorID, err := readPCIFile(filepath.Join(devicePath, "vendor"))
	if err != nil {
		return device, err
	}
	device.VendorID = vendorID

	deviceID, err := readPCIFile(filepath.Join(devicePath, "device"))
	if err != nil {
		return device, err
	}
	device.DeviceID = deviceID

	// Class is optional
	if class, err := readPCIFile(filepath.Join(devicePath, "class")); err == nil {
		device.Class = class
	}

	return device, nil
}

// readPCIFile reads a single line from a PCI sysfs file
func readPCIFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// FindGPUs scans the PCI bus for display-class devices from known GPU
// vendors.
//
// Returns:
//   - Slice of DeviceInfo, one per GPU found (Index -1: PCI presence says
//     nothing about whether the built-in runtime can drive the device)
//   - Error if scanning fails
func FindGPUs() ([]api.DeviceInfo, error) {
	devices, err := ScanPCIDevices()
	if err != nil {
		return nil, fmt.Errorf("failed to scan PCI devices: %w", err)
	}
	return filterGPUs(devices), nil
}

// filterGPUs keeps display-class devices from known vendors.
func filterGPUs(devices []PCIDevice) []api.DeviceInfo {
	var gpus []api.DeviceInfo
	for _, device := range devices {
		if !IsDisplayClass(device.Class) {
			continue
		}
		vendor, known := LookupVendor(device.VendorID)
		if !known {
			continue
		}
		gpus = append(gpus, api.DeviceInfo{
			Index:      -1,
			Name:       vendor.VendorName,
			Vendor:     vendor.Vendor,
			BusAddress: device.BusAddress,
			Properties: map[string]string{
				"pci_vendor": device.VendorID,
				"pci_device": device.DeviceID,
				"runtime":    vendor.Runtime,
			},
		})
	}
	return gpus
}
