package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name         string
		old          []*Catalog
		oldElements  []Entry
		new          []*Catalog
		newElements  []Entry
		want         []Drift
		wantBreaking bool
	}{
		{
			name: "identical",
			old:  []*Catalog{Sequence("a", "", 2)},
			new:  []*Catalog{Sequence("a", "", 2)},
		},
		{
			name:         "grown catalog",
			old:          []*Catalog{Sequence("a", "", 1)},
			new:          []*Catalog{Sequence("a", "", 2)},
			want:         []Drift{{Kind: DriftAdded, Group: "a", Position: 1, New: "a-1"}},
			wantBreaking: false,
		},
		{
			name:         "shrunk catalog",
			old:          []*Catalog{Sequence("a", "", 2)},
			new:          []*Catalog{Sequence("a", "", 1)},
			want:         []Drift{{Kind: DriftRemoved, Group: "a", Position: 1, Old: "a-1"}},
			wantBreaking: true,
		},
		{
			name:         "renamed position",
			old:          []*Catalog{NewCatalog("a", "", Entry{ID: "x"})},
			new:          []*Catalog{NewCatalog("a", "", Entry{ID: "y"})},
			want:         []Drift{{Kind: DriftChanged, Group: "a", Position: 0, Old: "x", New: "y"}},
			wantBreaking: true,
		},
		{
			name: "group swapped",
			old:  []*Catalog{Sequence("a", "", 1)},
			new:  []*Catalog{Sequence("b", "", 1)},
			want: []Drift{
				{Kind: DriftRemoved, Group: "a", Position: 0, Old: "a-0"},
				{Kind: DriftAdded, Group: "b", Position: 0, New: "b-0"},
			},
			wantBreaking: true,
		},
		{
			name:        "static elements",
			oldElements: []Entry{{ID: "header"}, {ID: "footer"}},
			newElements: []Entry{{ID: "header"}, {ID: "nav"}},
			want: []Drift{
				{Kind: DriftRemoved, Position: -1, Old: "footer"},
				{Kind: DriftAdded, Position: -1, New: "nav"},
			},
			wantBreaking: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldReg, err := New(tt.old, tt.oldElements)
			require.NoError(t, err)
			newReg, err := New(tt.new, tt.newElements)
			require.NoError(t, err)

			got := Diff(oldReg, newReg)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.wantBreaking, HasBreaking(got))
		})
	}
}

func TestDiff_LandingAgainstItself(t *testing.T) {
	assert.Empty(t, Diff(Landing(), Landing()))
}
