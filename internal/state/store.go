// Package state records published registries in SQLite.
// Snapshots are the baseline used to verify that registry IDs stay stable
// across deployments.
package state

import (
	"context"
	"time"

	"github.com/leapstack-labs/devreg/pkg/registry"
)

// Snapshot describes one stored registry.
type Snapshot struct {
	ID        string    `json:"id"`
	Label     string    `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Groups    int       `json:"groups"`
	Entries   int       `json:"entries"`
}

// Store defines the snapshot persistence operations.
type Store interface {
	Open(path string) error
	Close() error
	Migrate() error

	SaveSnapshot(ctx context.Context, label string, reg *registry.Registry) (*Snapshot, error)
	GetSnapshot(ctx context.Context, id string) (*Snapshot, error)
	LatestSnapshot(ctx context.Context) (*Snapshot, error)
	ListSnapshots(ctx context.Context) ([]*Snapshot, error)
	LoadRegistry(ctx context.Context, id string) (*registry.Registry, error)
	DeleteSnapshot(ctx context.Context, id string) error
}

var _ Store = (*SQLiteStore)(nil)
