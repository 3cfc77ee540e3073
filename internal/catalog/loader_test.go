package catalog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/devreg/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_Builtin(t *testing.T) {
	reg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, registry.ID("stat-card-3"), reg.Resolve(registry.GroupStatCard, 3))
}

func TestLoad_File(t *testing.T) {
	path := writeCatalog(t, `
groups:
  - name: stat-card
    description: Statistic cards
    entries:
      - stat-card-0
      - id: stat-card-1
        name: Active Users
        description: Count of active users
elements:
  - id: main-header
    name: Header
  - main_footer
`)

	reg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"stat-card"}, reg.Groups())
	assert.Equal(t, registry.ID("stat-card-0"), reg.Resolve("stat-card", 0))
	assert.Equal(t, registry.ID("stat-card-1"), reg.Resolve("stat-card", 1))
	assert.Equal(t, registry.NoID, reg.Resolve("stat-card", 2))

	e, ok := reg.Describe("stat-card-0")
	require.True(t, ok)
	assert.Equal(t, "Stat Card 0", e.Name, "name derived from id")

	e, ok = reg.Describe("stat-card-1")
	require.True(t, ok)
	assert.Equal(t, "Active Users", e.Name)
	assert.Equal(t, "Count of active users", e.Description)

	e, ok = reg.Describe("main_footer")
	require.True(t, ok)
	assert.Equal(t, "Main Footer", e.Name)

	c, ok := reg.Catalog("stat-card")
	require.True(t, ok)
	assert.Equal(t, "Statistic cards", c.Description())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantIs  error
		wantMsg string
	}{
		{
			name: "sentinel entry",
			content: `
groups:
  - name: stat-card
    entries: [stat-card-0, noID]
`,
			wantIs: registry.ErrSentinelID,
		},
		{
			name: "duplicate ids",
			content: `
groups:
  - name: a
    entries: [x]
  - name: b
    entries: [x]
`,
			wantIs: registry.ErrDuplicateID,
		},
		{
			name: "unsupported entry",
			content: `
groups:
  - name: a
    entries:
      - [nested, list]
`,
			wantMsg: "unsupported entry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalog(t, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), path)
			if tt.wantIs != nil {
				assert.True(t, errors.Is(err, tt.wantIs), "got %v", err)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading catalog file")
}

func TestEncode_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, registry.Landing()))
	assert.Contains(t, buf.String(), "name: stat-card")
	assert.Contains(t, buf.String(), "id: main-wrapper")

	path := filepath.Join(t.TempDir(), "nested", "registry.yaml")
	require.NoError(t, WriteFile(path, registry.Landing()))

	reg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, registry.Diff(registry.Landing(), reg))
}

func TestDisplayName(t *testing.T) {
	tests := map[registry.ID]string{
		"stat-card-0":      "Stat Card 0",
		"hero_title":       "Hero Title",
		"nav.login-button": "Nav Login Button",
		"x":                "X",
	}
	for id, want := range tests {
		assert.Equal(t, want, DisplayName(id), "DisplayName(%q)", id)
	}
}
