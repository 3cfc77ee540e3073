package registry

// DriftKind classifies a difference between two registries.
type DriftKind string

// Drift kinds reported by Diff.
const (
	// DriftChanged means a position now resolves to a different ID.
	DriftChanged DriftKind = "changed"
	// DriftRemoved means a position or element that used to have an ID no longer does.
	DriftRemoved DriftKind = "removed"
	// DriftAdded means a new position or element was assigned an ID.
	DriftAdded DriftKind = "added"
)

// Drift is one difference between two registries.
// Static elements are reported with an empty Group and Position -1.
type Drift struct {
	Kind     DriftKind `json:"kind"`
	Group    string    `json:"group,omitempty"`
	Position int       `json:"position"`
	Old      ID        `json:"old,omitempty"`
	New      ID        `json:"new,omitempty"`
}

// Breaking reports whether the drift invalidates an ID external tools may hold.
func (d Drift) Breaking() bool {
	return d.Kind != DriftAdded
}

// Diff compares old against new position by position.
// Groups are walked in old's order, then groups only present in new.
func Diff(old, new *Registry) []Drift {
	var drifts []Drift

	for _, oc := range old.Catalogs() {
		nc, ok := new.Catalog(oc.Group())
		for i, oe := range oc.entries {
			if !ok {
				drifts = append(drifts, Drift{Kind: DriftRemoved, Group: oc.Group(), Position: i, Old: oe.ID})
				continue
			}
			ne, found := nc.At(i)
			switch {
			case !found:
				drifts = append(drifts, Drift{Kind: DriftRemoved, Group: oc.Group(), Position: i, Old: oe.ID})
			case ne.ID != oe.ID:
				drifts = append(drifts, Drift{Kind: DriftChanged, Group: oc.Group(), Position: i, Old: oe.ID, New: ne.ID})
			}
		}
		if ok {
			for i := oc.Len(); i < nc.Len(); i++ {
				drifts = append(drifts, Drift{Kind: DriftAdded, Group: oc.Group(), Position: i, New: nc.entries[i].ID})
			}
		}
	}

	for _, nc := range new.Catalogs() {
		if _, ok := old.Catalog(nc.Group()); ok {
			continue
		}
		for i, ne := range nc.entries {
			drifts = append(drifts, Drift{Kind: DriftAdded, Group: nc.Group(), Position: i, New: ne.ID})
		}
	}

	newElements := make(map[ID]struct{})
	for _, e := range new.Elements() {
		newElements[e.ID] = struct{}{}
	}
	oldElements := make(map[ID]struct{})
	for _, e := range old.Elements() {
		oldElements[e.ID] = struct{}{}
		if _, ok := newElements[e.ID]; !ok {
			drifts = append(drifts, Drift{Kind: DriftRemoved, Position: -1, Old: e.ID})
		}
	}
	for _, e := range new.Elements() {
		if _, ok := oldElements[e.ID]; !ok {
			drifts = append(drifts, Drift{Kind: DriftAdded, Position: -1, New: e.ID})
		}
	}

	return drifts
}

// HasBreaking reports whether any drift is breaking.
func HasBreaking(drifts []Drift) bool {
	for _, d := range drifts {
		if d.Breaking() {
			return true
		}
	}
	return false
}
