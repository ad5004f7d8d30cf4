package app

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tsingmao/gpukit/gpu/collective"
)

// NewCollectiveCommand creates the collective command.
//
// The collective command inspects the configuration surface of the
// collective communication library (NCCL or RCCL) paired with the built-in
// runtime.
//
// Usage:
//
//	gpukit collective defaults
//	gpukit collective tuning
//
// Parameters:
//   - globalOpts: Global options shared across commands
//
// Returns:
//   - A configured cobra.Command for collective configuration inspection
func NewCollectiveCommand(globalOpts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collective",
		Short: "Collective library configuration",
		Long: `Inspect the collective communication library's configuration surface.

'defaults' shows the library's own initializer values (requires a binary
built with a vendor runtime); 'tuning' shows the production tuning values
gpukit applies on top of them.`,
	}

	cmd.AddCommand(
		newCollectiveDefaultsCommand(globalOpts),
		newCollectiveTuningCommand(globalOpts),
	)

	return cmd
}

// newCollectiveDefaultsCommand creates the 'collective defaults' subcommand
func newCollectiveDefaultsCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Show the library's default configuration",
		Long: `Show the collective library's default communicator configuration, taken
directly from the vendor's initializer macro. Integer fields reported as
"unset" are left for the library to decide at communicator creation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := collective.DefaultConfig()
			if err != nil {
				return fmt.Errorf("collective defaults unavailable: %w", err)
			}

			fields := []struct {
				name  string
				value int
			}{
				{"blocking", config.Blocking()},
				{"cga_cluster_size", config.CGAClusterSize()},
				{"min_ctas", config.MinCTAs()},
				{"max_ctas", config.MaxCTAs()},
				{"split_share", config.SplitShare()},
			}

			if globalOpts.JSON {
				out := make(map[string]interface{}, len(fields)+2)
				out["library"] = collective.Library()
				for _, f := range fields {
					if f.value == collective.UndefInt {
						out[f.name] = nil
					} else {
						out[f.name] = f.value
					}
				}
				out["net_name"] = config.NetName()
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Library:\t%s\n", collective.Library())
			for _, f := range fields {
				if f.value == collective.UndefInt {
					fmt.Fprintf(w, "%s:\tunset\n", f.name)
				} else {
					fmt.Fprintf(w, "%s:\t%d\n", f.name, f.value)
				}
			}
			if name := config.NetName(); name != "" {
				fmt.Fprintf(w, "net_name:\t%s\n", name)
			} else {
				fmt.Fprintf(w, "net_name:\tunset\n")
			}
			w.Flush()
			return nil
		},
	}
}

// newCollectiveTuningCommand creates the 'collective tuning' subcommand
func newCollectiveTuningCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tuning",
		Short: "Show the production tuning values",
		Long: `Show the tuning values gpukit applies to communicator configurations in
production deployments. Available in every build; these are gpukit's own
values, not the library's.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tuning := collective.DefaultTuning()

			if globalOpts.JSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(tuning)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "blocking:\t%v\n", tuning.Blocking)
			fmt.Fprintf(w, "cga_cluster_size:\t%d\n", tuning.CGAClusterSize)
			fmt.Fprintf(w, "min_ctas:\t%d\n", tuning.MinCTAs)
			fmt.Fprintf(w, "max_ctas:\t%d\n", tuning.MaxCTAs)
			fmt.Fprintf(w, "split_share:\t%v\n", tuning.SplitShare)
			w.Flush()
			return nil
		},
	}
}
