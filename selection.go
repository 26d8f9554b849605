package ranged

import "sort"

// SelectionBatch is one delivery to a SelectionSink.
type SelectionBatch struct {
	Selected bool
	Indices  []int
}

// SelectionSet is a SelectionSink that keeps the current selection and marks
// tracked entities' Selected flag.
type SelectionSet struct {
	selected map[int]struct{}
	entities map[int]*Entity
	batches  []SelectionBatch
}

// NewSelectionSet creates an empty selection.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{
		selected: make(map[int]struct{}),
		entities: make(map[int]*Entity),
	}
}

// Track registers indexed entities so their Selected flag follows the set.
func (s *SelectionSet) Track(entities ...*Entity) {
	for _, e := range entities {
		if e.Index >= 0 {
			s.entities[e.Index] = e
		}
	}
}

// EntitiesSelected implements SelectionSink.
func (s *SelectionSet) EntitiesSelected(indices []int) {
	s.apply(true, indices)
}

// EntitiesDeselected implements SelectionSink.
func (s *SelectionSet) EntitiesDeselected(indices []int) {
	s.apply(false, indices)
}

func (s *SelectionSet) apply(selected bool, indices []int) {
	s.batches = append(s.batches, SelectionBatch{
		Selected: selected,
		Indices:  append([]int(nil), indices...),
	})
	for _, i := range indices {
		if selected {
			s.selected[i] = struct{}{}
		} else {
			delete(s.selected, i)
		}
		if e, ok := s.entities[i]; ok {
			e.Selected = selected
		}
	}
}

// IsSelected reports whether index i is selected.
func (s *SelectionSet) IsSelected(i int) bool {
	_, ok := s.selected[i]
	return ok
}

// Selected returns the selected indices in ascending order.
func (s *SelectionSet) Selected() []int {
	out := make([]int, 0, len(s.selected))
	for i := range s.selected {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Batches returns every batch received so far. The returned slice MUST NOT be
// mutated by the caller.
func (s *SelectionSet) Batches() []SelectionBatch {
	return s.batches
}

// Clear deselects everything without recording a batch.
func (s *SelectionSet) Clear() {
	for i := range s.selected {
		if e, ok := s.entities[i]; ok {
			e.Selected = false
		}
	}
	s.selected = make(map[int]struct{})
}
