package app

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tsingmao/gpukit/gpu"
	"github.com/tsingmao/gpukit/gpu/collective"
	"github.com/tsingmao/gpukit/internal/api"
)

// NewRuntimeCommand creates the runtime command.
//
// The runtime command reports which vendor GPU runtime this binary was
// built against and, when one is present, per-device stream information.
//
// Usage:
//
//	gpukit runtime [--device N]
//
// Parameters:
//   - globalOpts: Global options shared across commands
//
// Returns:
//   - A configured cobra.Command for runtime inspection
func NewRuntimeCommand(globalOpts *GlobalOptions) *cobra.Command {
	var deviceIndex int

	cmd := &cobra.Command{
		Use:   "runtime",
		Short: "Show the built-in GPU runtime",
		Long: `Show which GPU runtime family (CUDA or HIP) this gpukit binary was built
against, how many devices it reports, and the stream priority range of the
selected device.

A binary built without a vendor tag reports runtime "none"; this is not an
error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("device") {
				deviceIndex = globalOpts.Config.DefaultDevice
			}
			return runRuntime(globalOpts, deviceIndex)
		},
	}

	cmd.Flags().IntVarP(&deviceIndex, "device", "d", 0,
		"device ordinal to inspect")

	return cmd
}

// runRuntime executes the runtime command logic.
func runRuntime(opts *GlobalOptions, deviceIndex int) error {
	info := api.RuntimeInfo{
		Runtime:    gpu.Runtime(),
		Built:      gpu.Built(),
		Collective: collective.Library(),
	}
	if count, err := gpu.DeviceCount(); err == nil {
		info.DeviceCount = count
	}

	if opts.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Runtime:\t%s\n", info.Runtime)
	fmt.Fprintf(w, "Collective:\t%s\n", info.Collective)
	fmt.Fprintf(w, "Devices:\t%d\n", info.DeviceCount)

	if info.Built && info.DeviceCount > 0 {
		if err := gpu.SetDevice(gpu.DeviceIndex(deviceIndex)); err != nil {
			w.Flush()
			return fmt.Errorf("failed to select device %d: %w", deviceIndex, err)
		}
		if name, err := gpu.DeviceName(gpu.DeviceIndex(deviceIndex)); err == nil {
			fmt.Fprintf(w, "Device %d:\t%s\n", deviceIndex, name)
		}
		if least, greatest, err := gpu.StreamPriorityRange(); err == nil {
			// Lower values mean higher priority on both runtimes.
			fmt.Fprintf(w, "Stream priorities:\t%d (least) to %d (greatest)\n", least, greatest)
		}
	}
	w.Flush()

	if !info.Built {
		fmt.Println("\nThis binary was built without a GPU runtime (no cuda or hip build tag).")
	}
	return nil
}
