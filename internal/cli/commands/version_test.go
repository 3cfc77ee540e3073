package commands

import (
	"runtime"
	"testing"

	"github.com/leapstack-labs/devreg/internal/cli/config"
	"github.com/leapstack-labs/devreg/internal/cli/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantOut []string
	}{
		{name: "release", version: "0.1.0", wantOut: []string{"devreg v0.1.0", "instrumentation layer"}},
		{name: "dev build", version: "dev", wantOut: []string{"devreg vdev"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(config.ResetConfig)
			out, _, err := execute(t, NewVersionCommand(tt.version))
			require.NoError(t, err)
			for _, want := range tt.wantOut {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestVersionCommand_JSON(t *testing.T) {
	setupProject(t, output.ModeJSON)

	out, _, err := execute(t, NewVersionCommand("1.2.3"))
	require.NoError(t, err)

	info := decode[output.VersionInfo](t, out)
	assert.Equal(t, output.VersionInfo{
		Name:     "devreg",
		Version:  "1.2.3",
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}, info)
}

func TestVersionCommand_MarkdownIsPlain(t *testing.T) {
	setupProject(t, output.ModeMarkdown)

	out, _, err := execute(t, NewVersionCommand("1.2.3"))
	require.NoError(t, err)
	assert.Equal(t, "devreg v1.2.3\nComponent registry and instrumentation layer\n", out)
}

func TestVersionCommandMetadata(t *testing.T) {
	cmd := NewVersionCommand("test")
	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Contains(t, cmd.Long, "-o json")
}
