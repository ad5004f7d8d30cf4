package app

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tsingmao/gpukit/internal/device"
)

// NewDeviceCommand creates the device command for hardware detection
//
// The device command provides subcommands for detecting and listing GPU
// hardware on the system.
//
// Usage:
//
//	gpukit device list        # List detected GPUs
//	gpukit device scan        # Raw PCI scan
//	gpukit device supported   # Show known GPU vendors
//
// Parameters:
//   - globalOpts: Global options shared across commands
//
// Returns:
//   - A configured cobra.Command for device operations
func NewDeviceCommand(globalOpts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "device",
		Short: "GPU device detection and listing",
		Long: `Detect and list GPU devices.

Detection merges what the built-in GPU runtime reports with a PCI bus scan,
so hardware from the other vendor family still shows up (marked as not
driveable by this binary).`,
		Example: `  # List detected GPUs
  gpukit device list

  # Scan all PCI devices
  gpukit device scan

  # Show known GPU vendors
  gpukit device supported`,
	}

	cmd.AddCommand(
		newDeviceListCommand(globalOpts),
		newDeviceScanCommand(globalOpts),
		newDeviceSupportedCommand(globalOpts),
	)

	return cmd
}

// newDeviceListCommand creates the 'device list' subcommand
func newDeviceListCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List detected GPUs",
		Long:  `Detect GPU devices via the built-in runtime and the PCI bus, and list them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := device.NewManager()
			devices := manager.Devices()

			if globalOpts.JSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(devices)
			}

			if len(devices) == 0 {
				fmt.Println("No GPU devices detected on this system.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "INDEX\tNAME\tVENDOR\tPCI ADDRESS\tMEMORY\tDRIVEABLE")
			fmt.Fprintln(w, "-----\t----\t------\t-----------\t------\t---------")
			for _, d := range devices {
				index := fmt.Sprintf("%d", d.Index)
				if d.Index < 0 {
					index = "-"
				}
				memory := "-"
				if d.TotalMemory > 0 {
					memory = fmt.Sprintf("%.1f GiB", float64(d.TotalMemory)/(1<<30))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%v\n",
					index, d.Name, d.Vendor, d.BusAddress, memory, d.Driveable)
			}
			w.Flush()

			fmt.Printf("\nTotal: %d GPU device(s) detected\n", len(devices))
			return nil
		},
	}
}

// newDeviceScanCommand creates the 'device scan' subcommand
func newDeviceScanCommand(globalOpts *GlobalOptions) *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan PCI devices",
		Long:  `Scan all PCI devices on the system, optionally including non-display devices.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			devices, err := device.ScanPCIDevices()
			if err != nil {
				return fmt.Errorf("failed to scan PCI devices: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PCI ADDRESS\tVENDOR:DEVICE\tCLASS")
			fmt.Fprintln(w, "-----------\t-------------\t-----")
			shown := 0
			for _, d := range devices {
				if !showAll && !device.IsDisplayClass(d.Class) {
					continue
				}
				fmt.Fprintf(w, "%s\t%s:%s\t%s\n", d.BusAddress, d.VendorID, d.DeviceID, d.Class)
				shown++
			}
			w.Flush()

			fmt.Printf("\n%d device(s) shown (of %d scanned)\n", shown, len(devices))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAll, "all", "a", false,
		"show all PCI devices, not just display controllers")

	return cmd
}

// newDeviceSupportedCommand creates the 'device supported' subcommand
func newDeviceSupportedCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "supported",
		Short: "Show known GPU vendors",
		Long:  `Show the GPU vendors gpukit identifies by PCI ID and the runtime family that drives each.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "VENDOR ID\tVENDOR\tRUNTIME")
			fmt.Fprintln(w, "---------\t------\t-------")
			for _, v := range device.KnownVendors {
				fmt.Fprintf(w, "%s\t%s\t%s\n", v.VendorID, v.VendorName, v.Runtime)
			}
			w.Flush()
			return nil
		},
	}
}
