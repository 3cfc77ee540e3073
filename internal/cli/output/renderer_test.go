package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(mode Mode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{name: "auto tty", mode: ModeAuto, isTTY: true, want: ModeText},
		{name: "auto piped", mode: ModeAuto, isTTY: false, want: ModeMarkdown},
		{name: "empty is auto", mode: "", isTTY: false, want: ModeMarkdown},
		{name: "explicit text", mode: ModeText, isTTY: false, want: ModeText},
		{name: "explicit json", mode: ModeJSON, isTTY: true, want: ModeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestRenderer(tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestHeader(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown, false)
	r.Header(2, "Groups")
	assert.Equal(t, "## Groups\n\n", out.String())

	r, out, _ = newTestRenderer(ModeText, false)
	r.Header(1, "Groups")
	assert.Equal(t, "Groups\n", out.String(), "no color without a terminal")
}

func TestMessages(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeMarkdown, false)
	r.Success("saved")
	r.Muted("3 entries")
	r.Warning("careful")
	r.Error("broken")

	assert.Equal(t, "**saved**\n_3 entries_\n", out.String())
	assert.Equal(t, "> **Warning:** careful\n> **Error:** broken\n", errOut.String())

	r, out, errOut = newTestRenderer(ModeText, false)
	r.Success("saved")
	r.Error("broken")
	assert.Equal(t, "✓ saved\n", out.String())
	assert.Equal(t, "✗ broken\n", errOut.String())
}

func TestTable(t *testing.T) {
	rows := [][]string{{"stat-card", "4"}, {"tech-badge", "6"}}

	r, out, _ := newTestRenderer(ModeMarkdown, false)
	r.Table([]string{"Group", "Size"}, rows)
	md := out.String()
	assert.Contains(t, md, "| Group | Size |")
	assert.Contains(t, md, "| stat-card | 4 |")

	r, out, _ = newTestRenderer(ModeText, false)
	r.Table([]string{"Group", "Size"}, rows)
	text := out.String()
	assert.Contains(t, text, "┌")
	assert.Contains(t, text, "tech-badge")
}

func TestJSON(t *testing.T) {
	r, out, _ := newTestRenderer(ModeJSON, false)
	require.NoError(t, r.JSON(map[string]int{"size": 4}))
	assert.Equal(t, "{\n  \"size\": 4\n}\n", out.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(0, "Title"))
	assert.Equal(t, "### Title", FormatHeader(3, "Title"))
	assert.Equal(t, "- **Group:** stat-card", FormatKeyValue("Group", "stat-card"))
	assert.False(t, strings.Contains(FormatKeyValue("a", "b"), "\x1b"))
}
