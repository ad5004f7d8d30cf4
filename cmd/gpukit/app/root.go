// Package app provides the command-line interface implementation for gpukit.
//
// This package contains all CLI commands and their implementations, following
// the Kubernetes CLI architecture pattern with cobra. Commands are organized
// hierarchically with a root command and subcommands.
package app

import (
	"github.com/spf13/cobra"
	"github.com/tsingmao/gpukit/internal/config"
	"github.com/tsingmao/gpukit/internal/logger"
)

const (
	// cliName is the name of the CLI application
	cliName = "gpukit"

	// cliDescription is the short description shown in help text
	cliDescription = "gpukit - GPU runtime diagnostics for CUDA and HIP"
)

// GlobalOptions holds options that are common to all commands
type GlobalOptions struct {
	// ConfigPath is the configuration file path; empty selects the
	// default location
	ConfigPath string

	// Verbose enables debug logging
	Verbose bool

	// JSON switches command output to JSON
	JSON bool

	// Config is the loaded configuration, populated before any command runs
	Config config.Config
}

// NewGPUKitCommand creates the root gpukit command with all subcommands.
//
// The root command provides the main entry point for the CLI. It sets up
// global flags, loads the user configuration, and registers all subcommands.
//
// Returns:
//   - A configured cobra.Command ready for execution
func NewGPUKitCommand() *cobra.Command {
	opts := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:   cliName,
		Short: cliDescription,
		Long: `gpukit is a command-line tool for inspecting the GPU runtime a binary
was built against and the GPU hardware present on the system.

A gpukit binary carries exactly one vendor runtime, chosen at build time:
build with -tags cuda for the CUDA/NCCL family, -tags hip for the HIP/RCCL
family, or with neither tag for a hardware-independent stub. All commands
work in every configuration; runtime-dependent output degrades gracefully
when no runtime is built in.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadGlobalConfig(opts)
		},
	}

	// Add global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "",
		"config file (default: ~/.gpukit/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false,
		"verbose output")
	cmd.PersistentFlags().BoolVar(&opts.JSON, "json", false,
		"output as JSON")

	// Add subcommands
	cmd.AddCommand(
		NewDeviceCommand(opts),
		NewRuntimeCommand(opts),
		NewCollectiveCommand(opts),
		NewVersionCommand(opts),
	)

	return cmd
}

// loadGlobalConfig resolves and loads the configuration file, then applies
// the logging settings derived from it and the global flags.
func loadGlobalConfig(opts *GlobalOptions) error {
	path := opts.ConfigPath
	if path == "" {
		resolved, err := config.DefaultPath()
		if err != nil {
			// No home directory: run on defaults
			opts.Config = config.Default()
			logger.SetDebug(opts.Verbose)
			return nil
		}
		path = resolved
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	opts.Config = cfg

	logger.SetDebug(opts.Verbose || cfg.Debug)
	if cfg.Output == "json" && !opts.JSON {
		opts.JSON = true
	}
	return nil
}
