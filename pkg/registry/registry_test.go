package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statCardRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := New([]*Catalog{Sequence(GroupStatCard, "stats", 4)}, nil)
	require.NoError(t, err)
	return r
}

func TestRegistry_Resolve(t *testing.T) {
	r := statCardRegistry(t)

	tests := []struct {
		name  string
		group string
		index int
		want  ID
	}{
		{name: "first position", group: GroupStatCard, index: 0, want: "stat-card-0"},
		{name: "last position", group: GroupStatCard, index: 3, want: "stat-card-3"},
		{name: "one past the end", group: GroupStatCard, index: 4, want: NoID},
		{name: "far past the end", group: GroupStatCard, index: 1000, want: NoID},
		{name: "negative", group: GroupStatCard, index: -1, want: NoID},
		{name: "unknown group", group: "hero-card", index: 0, want: NoID},
		{name: "empty group", group: "", index: 0, want: NoID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.group, tt.index), "Resolve(%q, %d)", tt.group, tt.index)
		})
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := statCardRegistry(t)

	e, miss := r.Lookup(GroupStatCard, 2)
	assert.Equal(t, MissNone, miss)
	assert.Equal(t, ID("stat-card-2"), e.ID)

	e, miss = r.Lookup(GroupStatCard, 4)
	assert.Equal(t, MissOutOfRange, miss)
	assert.Equal(t, NoID, e.ID)

	e, miss = r.Lookup(GroupStatCard, -1)
	assert.Equal(t, MissOutOfRange, miss)
	assert.Equal(t, NoID, e.ID)

	e, miss = r.Lookup("missing", 0)
	assert.Equal(t, MissUnknownGroup, miss)
	assert.Equal(t, NoID, e.ID)
}

func TestRegistry_Locate(t *testing.T) {
	r, err := New(
		[]*Catalog{Sequence(GroupStatCard, "stats", 4), Sequence(GroupTechBadge, "", 2)},
		[]Entry{{ID: "hero-title"}},
	)
	require.NoError(t, err)

	tests := []struct {
		name         string
		id           ID
		wantGroup    string
		wantPosition int
		wantOK       bool
	}{
		{name: "first of group", id: "stat-card-0", wantGroup: GroupStatCard, wantPosition: 0, wantOK: true},
		{name: "second group", id: "tech-badge-1", wantGroup: GroupTechBadge, wantPosition: 1, wantOK: true},
		{name: "static element", id: "hero-title", wantGroup: "", wantPosition: -1, wantOK: true},
		{name: "sentinel", id: NoID, wantGroup: "", wantPosition: -1},
		{name: "unknown", id: "carousel-0", wantGroup: "", wantPosition: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, position, ok := r.Locate(tt.id)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantGroup, group)
			assert.Equal(t, tt.wantPosition, position)
		})
	}

	// Every positional ID locates back to the position that resolves to it.
	for _, c := range r.Catalogs() {
		for i, id := range c.IDs() {
			group, position, ok := r.Locate(id)
			require.True(t, ok)
			assert.Equal(t, id, r.Resolve(group, position))
			assert.Equal(t, i, position)
		}
	}
}

func TestRegistry_NilIsTotal(t *testing.T) {
	var r *Registry

	assert.Equal(t, NoID, r.Resolve(GroupStatCard, 0))
	assert.Empty(t, r.Groups())
	assert.Zero(t, r.Count())
	_, ok := r.Describe("stat-card-0")
	assert.False(t, ok)
	_, _, ok = r.Locate("stat-card-0")
	assert.False(t, ok)
}

func TestRegistry_ResolveAll(t *testing.T) {
	r := statCardRegistry(t)

	t.Run("exact length", func(t *testing.T) {
		ids := r.ResolveAll(GroupStatCard, 4)
		assert.Equal(t, []ID{"stat-card-0", "stat-card-1", "stat-card-2", "stat-card-3"}, ids)

		seen := make(map[ID]struct{})
		for _, id := range ids {
			assert.True(t, id.Assigned())
			seen[id] = struct{}{}
		}
		assert.Len(t, seen, 4, "ids should be distinct")
	})

	t.Run("longer than catalog", func(t *testing.T) {
		ids := r.ResolveAll(GroupStatCard, 5)
		assert.Equal(t, []ID{"stat-card-0", "stat-card-1", "stat-card-2", "stat-card-3", NoID}, ids)
	})

	t.Run("shorter than catalog", func(t *testing.T) {
		assert.Equal(t, []ID{"stat-card-0", "stat-card-1"}, r.ResolveAll(GroupStatCard, 2))
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Empty(t, r.ResolveAll(GroupStatCard, 0))
		assert.Empty(t, r.ResolveAll(GroupStatCard, -3))
	})
}

func TestRegistry_Resolver(t *testing.T) {
	r := Landing()

	resolve := r.Resolver(GroupTechBadge)
	assert.Equal(t, ID("tech-badge-5"), resolve(5))
	assert.Equal(t, NoID, resolve(6))

	// Same input, same output.
	assert.Equal(t, resolve(1), resolve(1))

	unknown := r.Resolver("nope")
	assert.Equal(t, NoID, unknown(0))
}

func TestRegistry_ConcurrentResolve(t *testing.T) {
	r := Landing()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := -2; i < 10; i++ {
				_ = r.Resolve(GroupFeatureCard, i)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, ID("feature-card-3"), r.Resolve(GroupFeatureCard, 3))
}

func TestLanding_CatalogInvariants(t *testing.T) {
	r := Landing()

	sizes := map[string]int{
		GroupStatCard:    4,
		GroupFeatureCard: 4,
		GroupTechLetter:  6,
		GroupTechBadge:   6,
		GroupTestCard:    4,
	}
	assert.Equal(t, []string{GroupStatCard, GroupFeatureCard, GroupTechLetter, GroupTechBadge, GroupTestCard}, r.Groups())

	for group, size := range sizes {
		c, ok := r.Catalog(group)
		require.True(t, ok, "group %s", group)
		assert.Equal(t, size, c.Len(), "group %s", group)

		seen := make(map[ID]struct{})
		for i := 0; i < size; i++ {
			id := r.Resolve(group, i)
			assert.NotEqual(t, NoID, id, "%s[%d] must not be the sentinel", group, i)
			assert.Equal(t, c.IDs()[i], id)
			seen[id] = struct{}{}
		}
		assert.Len(t, seen, size, "%s ids must be unique", group)
		assert.Equal(t, NoID, r.Resolve(group, size))
		assert.Equal(t, NoID, r.Resolve(group, -1))
	}

	e, ok := r.Describe("hero-title")
	require.True(t, ok)
	assert.Equal(t, "Hero Title", e.Name)

	_, ok = r.Describe(NoID)
	assert.False(t, ok, "the sentinel is never registered")
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name     string
		catalogs []*Catalog
		elements []Entry
		wantErrs []error
	}{
		{
			name:     "empty group name",
			catalogs: []*Catalog{Sequence("", "", 1)},
			wantErrs: []error{ErrEmptyGroup},
		},
		{
			name:     "duplicate group",
			catalogs: []*Catalog{Sequence("a", "", 1), NewCatalog("a", "", Entry{ID: "other"})},
			wantErrs: []error{ErrDuplicateGroup},
		},
		{
			name:     "empty id",
			catalogs: []*Catalog{NewCatalog("a", "", Entry{ID: ""})},
			wantErrs: []error{ErrEmptyID},
		},
		{
			name:     "sentinel id",
			catalogs: []*Catalog{NewCatalog("a", "", Entry{ID: "a-0"}, Entry{ID: NoID})},
			wantErrs: []error{ErrSentinelID},
		},
		{
			name:     "duplicate within catalog",
			catalogs: []*Catalog{NewCatalog("a", "", Entry{ID: "x"}, Entry{ID: "x"})},
			wantErrs: []error{ErrDuplicateID},
		},
		{
			name:     "duplicate across catalog and element",
			catalogs: []*Catalog{Sequence("a", "", 2)},
			elements: []Entry{{ID: "a-1"}},
			wantErrs: []error{ErrDuplicateID},
		},
		{
			name:     "every problem reported",
			catalogs: []*Catalog{NewCatalog("a", "", Entry{ID: NoID}), Sequence("", "", 1)},
			elements: []Entry{{ID: ""}},
			wantErrs: []error{ErrSentinelID, ErrEmptyGroup, ErrEmptyID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.catalogs, tt.elements)
			require.Error(t, err)
			assert.Nil(t, r)
			for _, want := range tt.wantErrs {
				assert.True(t, errors.Is(err, want), "error %q should wrap %q", err, want)
			}
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew([]*Catalog{NewCatalog("a", "", Entry{ID: NoID})}, nil)
	})
}

func TestCatalog_Immutable(t *testing.T) {
	entries := []Entry{{ID: "a-0"}, {ID: "a-1"}}
	c := NewCatalog("a", "", entries...)

	entries[0].ID = "mutated"
	got := c.Entries()
	got[1].ID = "mutated"

	assert.Equal(t, []ID{"a-0", "a-1"}, c.IDs())
}

func TestMiss_String(t *testing.T) {
	assert.Equal(t, "none", MissNone.String())
	assert.Equal(t, "unknown-group", MissUnknownGroup.String())
	assert.Equal(t, "out-of-range", MissOutOfRange.String())
	assert.Equal(t, "unknown", Miss(42).String())
}
