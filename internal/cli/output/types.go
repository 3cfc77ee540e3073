package output

import (
	"time"

	"github.com/leapstack-labs/devreg/pkg/registry"
)

// Resolution is the JSON form of one resolved position.
type Resolution struct {
	Group    string      `json:"group"`
	Index    int         `json:"index"`
	ID       registry.ID `json:"id"`
	Assigned bool        `json:"assigned"`
	Miss     string      `json:"miss,omitempty"`
}

// GroupInfo describes one catalog.
type GroupInfo struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Size        int              `json:"size"`
	Entries     []registry.Entry `json:"entries,omitempty"`
}

// ListOutput is the JSON output of the list command.
type ListOutput struct {
	Groups   []GroupInfo      `json:"groups"`
	Elements []registry.Entry `json:"elements,omitempty"`
	Summary  ListSummary      `json:"summary"`
}

// ListSummary holds registry totals.
type ListSummary struct {
	Groups   int `json:"groups"`
	Elements int `json:"elements"`
	IDs      int `json:"ids"`
}

// VersionInfo is the JSON output of the version command.
type VersionInfo struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
}

// DescribeOutput is the JSON output of the describe command.
// Static elements have no group and position -1.
type DescribeOutput struct {
	ID          registry.ID `json:"id"`
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Group       string      `json:"group,omitempty"`
	Position    int         `json:"position"`
	Static      bool        `json:"static"`
}

// ValidateOutput is the JSON output of the validate command.
type ValidateOutput struct {
	Valid  bool     `json:"valid"`
	File   string   `json:"file"`
	Groups int      `json:"groups"`
	IDs    int      `json:"ids"`
	Errors []string `json:"errors,omitempty"`
}

// SnapshotInfo describes a stored snapshot.
type SnapshotInfo struct {
	ID        string    `json:"id"`
	Label     string    `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Groups    int       `json:"groups"`
	Entries   int       `json:"entries"`
}

// CheckOutput is the JSON output of the check command.
type CheckOutput struct {
	Baseline SnapshotInfo     `json:"baseline"`
	Drifts   []registry.Drift `json:"drifts"`
	Breaking int              `json:"breaking"`
	Stable   bool             `json:"stable"`
}
