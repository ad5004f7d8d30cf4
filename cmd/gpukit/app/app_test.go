package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiring(t *testing.T) {
	cmd := NewGPUKitCommand()

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"device", "runtime", "collective", "version"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}

	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("json"))
}

func TestDeviceCommandHasSubcommands(t *testing.T) {
	cmd := NewDeviceCommand(&GlobalOptions{})

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["list"])
	assert.True(t, names["scan"])
	assert.True(t, names["supported"])
}

func TestCollectiveTuningRuns(t *testing.T) {
	// The tuning subcommand is build-independent and must succeed even in
	// a stub binary.
	cmd := NewCollectiveCommand(&GlobalOptions{})
	cmd.SetArgs([]string{"tuning"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())
}

func TestHelpDoesNotError(t *testing.T) {
	cmd := NewGPUKitCommand()
	cmd.SetArgs([]string{"--help"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "gpukit")
}
