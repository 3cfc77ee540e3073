package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/leapstack-labs/devreg/pkg/registry"
)

// ErrSnapshotNotFound is returned when a snapshot ID does not exist.
var ErrSnapshotNotFound = errors.New("snapshot not found")

const (
	kindGroup   = "group"
	kindElement = "element"
)

// SaveSnapshot stores every group position and static element of reg.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, label string, reg *registry.Registry) (*Snapshot, error) {
	if s.db == nil {
		return nil, errNotOpened
	}

	snap := &Snapshot{
		ID:        generateID(),
		Label:     label,
		CreatedAt: time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, label, created_at) VALUES (?, ?, ?)`,
		snap.ID, snap.Label, snap.CreatedAt.UnixNano(),
	); err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	for gi, c := range reg.Catalogs() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot_groups (snapshot_id, group_name, group_index, description) VALUES (?, ?, ?, ?)`,
			snap.ID, c.Group(), gi, c.Description(),
		); err != nil {
			return nil, fmt.Errorf("insert group %s: %w", c.Group(), err)
		}
		for i, e := range c.Entries() {
			if err := insertEntry(ctx, tx, snap.ID, kindGroup, c.Group(), i, e); err != nil {
				return nil, err
			}
			snap.Entries++
		}
		snap.Groups++
	}

	for i, e := range reg.Elements() {
		if err := insertEntry(ctx, tx, snap.ID, kindElement, "", i, e); err != nil {
			return nil, err
		}
		snap.Entries++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	s.logger.Debug("saved snapshot", "id", snap.ID, "groups", snap.Groups, "entries", snap.Entries)
	return snap, nil
}

func insertEntry(ctx context.Context, tx *sql.Tx, snapshotID, kind, group string, position int, e registry.Entry) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO snapshot_entries
		(snapshot_id, registry_id, kind, group_name, position, name, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, snapshotID, e.ID.String(), kind, group, position, e.Name, e.Description)
	if err != nil {
		return fmt.Errorf("insert entry %s: %w", e.ID, err)
	}
	return nil
}

const snapshotColumns = `
	SELECT s.id, s.label, s.created_at,
		(SELECT COUNT(*) FROM snapshot_groups g WHERE g.snapshot_id = s.id),
		(SELECT COUNT(*) FROM snapshot_entries e WHERE e.snapshot_id = s.id)
	FROM snapshots s
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*Snapshot, error) {
	snap := &Snapshot{}
	var createdAt int64
	if err := row.Scan(&snap.ID, &snap.Label, &createdAt, &snap.Groups, &snap.Entries); err != nil {
		return nil, err
	}
	snap.CreatedAt = time.Unix(0, createdAt).UTC()
	return snap, nil
}

// GetSnapshot retrieves a snapshot by ID.
func (s *SQLiteStore) GetSnapshot(ctx context.Context, id string) (*Snapshot, error) {
	if s.db == nil {
		return nil, errNotOpened
	}

	snap, err := scanSnapshot(s.db.QueryRowContext(ctx, snapshotColumns+` WHERE s.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return snap, nil
}

// LatestSnapshot returns the most recent snapshot, or nil if none exist.
func (s *SQLiteStore) LatestSnapshot(ctx context.Context) (*Snapshot, error) {
	if s.db == nil {
		return nil, errNotOpened
	}

	snap, err := scanSnapshot(s.db.QueryRowContext(ctx,
		snapshotColumns+` ORDER BY s.created_at DESC, s.rowid DESC LIMIT 1`))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	return snap, nil
}

// ListSnapshots returns all snapshots, newest first.
func (s *SQLiteStore) ListSnapshots(ctx context.Context) ([]*Snapshot, error) {
	if s.db == nil {
		return nil, errNotOpened
	}

	rows, err := s.db.QueryContext(ctx, snapshotColumns+` ORDER BY s.created_at DESC, s.rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var snaps []*Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return snaps, nil
}

// LoadRegistry rebuilds the registry stored under a snapshot.
func (s *SQLiteStore) LoadRegistry(ctx context.Context, id string) (*registry.Registry, error) {
	if _, err := s.GetSnapshot(ctx, id); err != nil {
		return nil, err
	}

	groupRows, err := s.db.QueryContext(ctx, `
		SELECT group_name, description FROM snapshot_groups
		WHERE snapshot_id = ?
		ORDER BY group_index
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query groups: %w", err)
	}

	type groupInfo struct {
		name, description string
	}
	var groups []groupInfo
	for groupRows.Next() {
		var g groupInfo
		if err := groupRows.Scan(&g.name, &g.description); err != nil {
			_ = groupRows.Close()
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := groupRows.Err(); err != nil {
		_ = groupRows.Close()
		return nil, fmt.Errorf("rows error: %w", err)
	}
	_ = groupRows.Close()

	rows, err := s.db.QueryContext(ctx, `
		SELECT registry_id, kind, group_name, name, description FROM snapshot_entries
		WHERE snapshot_id = ?
		ORDER BY kind, group_name, position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	byGroup := make(map[string][]registry.Entry)
	var elements []registry.Entry
	for rows.Next() {
		var (
			e           registry.Entry
			rid         string
			kind, group string
		)
		if err := rows.Scan(&rid, &kind, &group, &e.Name, &e.Description); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.ID = registry.ID(rid)
		if kind == kindElement {
			elements = append(elements, e)
		} else {
			byGroup[group] = append(byGroup[group], e)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	catalogs := make([]*registry.Catalog, 0, len(groups))
	for _, g := range groups {
		catalogs = append(catalogs, registry.NewCatalog(g.name, g.description, byGroup[g.name]...))
	}

	reg, err := registry.New(catalogs, elements)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s is not a valid registry: %w", id, err)
	}
	return reg, nil
}

// DeleteSnapshot removes a snapshot and its entries.
func (s *SQLiteStore) DeleteSnapshot(ctx context.Context, id string) error {
	if s.db == nil {
		return errNotOpened
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	return nil
}
