package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tsingmao/gpukit/gpu"
	"github.com/tsingmao/gpukit/gpu/collective"
)

// Version information, overridable at build time with -ldflags.
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "dev"
)

// NewVersionCommand creates the version command.
//
// The version command displays the CLI version together with the runtime
// family this binary was built against, since two gpukit binaries of the
// same version can carry different vendor runtimes.
//
// Usage:
//
//	gpukit version
//
// Parameters:
//   - globalOpts: Global options shared across commands
//
// Returns:
//   - A configured cobra.Command for displaying version info
func NewVersionCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long: `Display version information for gpukit, including which GPU runtime
family this binary was built against.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(globalOpts)
		},
	}
}

// runVersion executes the version command logic.
func runVersion(opts *GlobalOptions) error {
	if opts.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]string{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
			"runtime":    gpu.Runtime(),
			"collective": collective.Library(),
		})
	}

	fmt.Println("gpukit:")
	fmt.Printf("  Version:    %s\n", Version)
	fmt.Printf("  Build Time: %s\n", BuildTime)
	fmt.Printf("  Git Commit: %s\n", GitCommit)
	fmt.Printf("  Runtime:    %s\n", gpu.Runtime())
	fmt.Printf("  Collective: %s\n", collective.Library())
	return nil
}
