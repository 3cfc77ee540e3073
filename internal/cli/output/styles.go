package output

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A4FCF", Dark: "#9D8CFF"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#1E8E3E", Dark: "#5FD38D"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#FFB454"}
	colorError   = lipgloss.AdaptiveColor{Light: "#C5221F", Dark: "#FF6B6B"}
	colorInfo    = lipgloss.AdaptiveColor{Light: "#1967D2", Dark: "#6CB6FF"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"}
)

// Styles holds the lipgloss styles used by CLI output.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// ID renders an assigned dev ID; Sentinel renders the "noID" fallback.
	ID       lipgloss.Style
	Sentinel lipgloss.Style
}

// NewStyles builds the style set for a lipgloss renderer.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1:  r.NewStyle().Bold(true).Foreground(colorPrimary).Underline(true),
		Header2:  r.NewStyle().Bold(true).Foreground(colorPrimary),
		Bold:     r.NewStyle().Bold(true),
		Muted:    r.NewStyle().Foreground(colorMuted),
		Success:  r.NewStyle().Foreground(colorSuccess),
		Warning:  r.NewStyle().Foreground(colorWarning),
		Error:    r.NewStyle().Foreground(colorError).Bold(true),
		Info:     r.NewStyle().Foreground(colorInfo),
		ID:       r.NewStyle().Foreground(colorInfo),
		Sentinel: r.NewStyle().Foreground(colorWarning).Italic(true),
	}
}
