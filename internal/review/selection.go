// Package review implements the two-phase monitoring review engine:
// selection of healthy items, problem-form collection, validation,
// payload building and submission orchestration.
package review

// SelectionSet is the set of item ids marked healthy ("OK"). It is the sole
// source of truth for the OK/problem split. An empty set means the user has
// not excluded anything, which the classifier interprets as "everything OK".
type SelectionSet struct {
	ids map[int64]struct{}
}

func NewSelectionSet() *SelectionSet {
	return &SelectionSet{ids: make(map[int64]struct{})}
}

// Has reports whether id is selected.
func (s *SelectionSet) Has(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

// Size returns the current cardinality.
func (s *SelectionSet) Size() int {
	return len(s.ids)
}

// Toggle flips membership of id and returns the new snapshot.
func (s *SelectionSet) Toggle(id int64) map[int64]struct{} {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
	return s.Snapshot()
}

// SelectAllVisible adds every id in visible to the set. Ids already selected
// but outside visible are kept; the search filter never deselects.
func (s *SelectionSet) SelectAllVisible(visible []int64) map[int64]struct{} {
	for _, id := range visible {
		s.ids[id] = struct{}{}
	}
	return s.Snapshot()
}

// ClearAll empties the set.
func (s *SelectionSet) ClearAll() map[int64]struct{} {
	s.ids = make(map[int64]struct{})
	return s.Snapshot()
}

// Snapshot returns an independent copy of the current membership so a
// consuming UI layer can diff against previous state.
func (s *SelectionSet) Snapshot() map[int64]struct{} {
	out := make(map[int64]struct{}, len(s.ids))
	for id := range s.ids {
		out[id] = struct{}{}
	}
	return out
}
