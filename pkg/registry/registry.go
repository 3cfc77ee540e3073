// Package registry provides stable registry IDs for addressable UI elements.
//
// A Registry maps (group, position) pairs to hand-authored identifiers so that
// external tooling (visual editors, inspectors, test harnesses) can address
// elements of a repeated UI group across re-renders and deployments. It also
// indexes static, non-repeated elements by ID.
//
// Resolution is total: positions without an assigned identifier resolve to
// NoID, never to an error. A Registry is immutable once built and safe for
// concurrent use without locking.
package registry

import (
	"errors"
	"fmt"
)

// ID is an opaque registry identifier attached to a UI element instance.
type ID string

// NoID is the sentinel returned when no identifier is assigned.
// It tells the rendering layer not to instrument the element.
const NoID ID = "noID"

// String returns the token as a plain string.
func (id ID) String() string {
	return string(id)
}

// Assigned reports whether id is a real identifier rather than the sentinel.
func (id ID) Assigned() bool {
	return id != NoID && id != ""
}

// Entry is a registry ID with its human-readable metadata.
type Entry struct {
	ID          ID     `json:"id" yaml:"id"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Miss explains why a lookup produced the sentinel.
type Miss int

const (
	// MissNone means the lookup found an assigned entry.
	MissNone Miss = iota
	// MissUnknownGroup means no catalog is registered under the group.
	MissUnknownGroup
	// MissOutOfRange means the position is negative or past the end of the catalog.
	MissOutOfRange
)

// String returns the string representation of the miss reason.
func (m Miss) String() string {
	switch m {
	case MissNone:
		return "none"
	case MissUnknownGroup:
		return "unknown-group"
	case MissOutOfRange:
		return "out-of-range"
	default:
		return "unknown"
	}
}

// Validation errors returned by New.
var (
	ErrEmptyGroup     = errors.New("group name is empty")
	ErrDuplicateGroup = errors.New("duplicate group")
	ErrEmptyID        = errors.New("registry id is empty")
	ErrSentinelID     = errors.New("registry id collides with the sentinel")
	ErrDuplicateID    = errors.New("duplicate registry id")
)

// MaxResolveCount bounds the list length callers should accept from users
// before calling ResolveAll.
const MaxResolveCount = 10000

// Resolver resolves positions within one group.
type Resolver func(index int) ID

// Registry maps (group, position) to registry IDs.
type Registry struct {
	// groups keeps catalogs in declaration order
	groups []*Catalog

	// byGroup maps group names to catalogs: "stat-card" → *Catalog
	byGroup map[string]*Catalog

	// elements keeps static elements in declaration order
	elements []Entry

	// byID indexes every registered ID, positional or static
	byID map[ID]located
}

// located is an entry with the place it was declared.
// Static elements have an empty group and position -1.
type located struct {
	entry    Entry
	group    string
	position int
}

// New builds a registry from catalogs and static elements.
// Every problem found is reported; the returned error joins them all.
func New(catalogs []*Catalog, elements []Entry) (*Registry, error) {
	r := &Registry{
		byGroup: make(map[string]*Catalog, len(catalogs)),
		byID:    make(map[ID]located),
	}

	var errs []error
	for _, c := range catalogs {
		if c == nil {
			continue
		}
		if c.group == "" {
			errs = append(errs, ErrEmptyGroup)
			continue
		}
		if _, ok := r.byGroup[c.group]; ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateGroup, c.group))
			continue
		}
		r.byGroup[c.group] = c
		r.groups = append(r.groups, c)

		for i, e := range c.entries {
			if err := r.index(located{entry: e, group: c.group, position: i}); err != nil {
				errs = append(errs, fmt.Errorf("group %s position %d: %w", c.group, i, err))
			}
		}
	}

	for _, e := range elements {
		if err := r.index(located{entry: e, position: -1}); err != nil {
			errs = append(errs, fmt.Errorf("element: %w", err))
			continue
		}
		r.elements = append(r.elements, e)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return r, nil
}

// MustNew is like New but panics on invalid input.
// Intended for registries declared as package-level constants.
func MustNew(catalogs []*Catalog, elements []Entry) *Registry {
	r, err := New(catalogs, elements)
	if err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
	return r
}

func (r *Registry) index(l located) error {
	id := l.entry.ID
	switch {
	case id == "":
		return ErrEmptyID
	case id == NoID:
		return ErrSentinelID
	}
	if prev, ok := r.byID[id]; ok {
		if prev.group != "" {
			return fmt.Errorf("%w: %s (already at %s position %d)", ErrDuplicateID, id, prev.group, prev.position)
		}
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	r.byID[id] = l
	return nil
}

// Lookup returns the entry at index within group and why it missed, if it did.
// On a miss the returned entry carries NoID.
func (r *Registry) Lookup(group string, index int) (Entry, Miss) {
	if r == nil {
		return Entry{ID: NoID}, MissUnknownGroup
	}
	c, ok := r.byGroup[group]
	if !ok {
		return Entry{ID: NoID}, MissUnknownGroup
	}
	e, ok := c.At(index)
	if !ok {
		return Entry{ID: NoID}, MissOutOfRange
	}
	return e, MissNone
}

// Resolve returns the registry ID for the element at index within group,
// or NoID when nothing is assigned there.
func (r *Registry) Resolve(group string, index int) ID {
	e, _ := r.Lookup(group, index)
	return e.ID
}

// Resolver returns a resolver bound to group.
// The group does not need to exist; an unknown group resolves everything to NoID.
func (r *Registry) Resolver(group string) Resolver {
	return func(index int) ID {
		return r.Resolve(group, index)
	}
}

// ResolveAll resolves a rendered list of count items, in order.
// The list length need not match the catalog length.
func (r *Registry) ResolveAll(group string, count int) []ID {
	if count <= 0 {
		return nil
	}
	ids := make([]ID, count)
	for i := range ids {
		ids[i] = r.Resolve(group, i)
	}
	return ids
}

// Describe returns the metadata registered for id.
func (r *Registry) Describe(id ID) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	l, ok := r.byID[id]
	return l.entry, ok
}

// Locate returns where id is declared. Static elements report an empty
// group and position -1.
func (r *Registry) Locate(id ID) (group string, position int, ok bool) {
	if r == nil {
		return "", -1, false
	}
	l, ok := r.byID[id]
	if !ok {
		return "", -1, false
	}
	return l.group, l.position, true
}

// Catalog returns the catalog registered under group.
func (r *Registry) Catalog(group string) (*Catalog, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.byGroup[group]
	return c, ok
}

// Groups returns all group names in declaration order.
func (r *Registry) Groups() []string {
	if r == nil {
		return nil
	}
	names := make([]string, len(r.groups))
	for i, c := range r.groups {
		names[i] = c.group
	}
	return names
}

// Catalogs returns all catalogs in declaration order.
func (r *Registry) Catalogs() []*Catalog {
	if r == nil {
		return nil
	}
	return append([]*Catalog(nil), r.groups...)
}

// Elements returns the static elements in declaration order.
func (r *Registry) Elements() []Entry {
	if r == nil {
		return nil
	}
	return append([]Entry(nil), r.elements...)
}

// Count returns the number of registered IDs, positional and static.
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	return len(r.byID)
}
