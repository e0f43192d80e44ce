package form

import "sort"

// State tracks collected values for one form instance, keyed by field key.
// Scalar types and single-select options fields live in the scalar map;
// multi-select options fields live in the selection-set map. It is
// intentionally small; lifecycle orchestration lives in Session.
type State struct {
	scalars    map[string]string
	selections map[string]map[string]struct{}
	touched    bool
}

// NewState returns an empty state for a fresh form instance. State is owned
// by exactly one instance and is discarded on submit or cancel, never reused
// across schemas.
func NewState() *State {
	return &State{
		scalars:    make(map[string]string),
		selections: make(map[string]map[string]struct{}),
	}
}

// SetScalar overwrites the scalar value stored under key unconditionally.
// Used for text-like inputs and for single-select options fields, which
// store the chosen option string directly.
func (s *State) SetScalar(key, value string) {
	if s == nil {
		return
	}
	s.touched = true
	s.scalars[key] = value
}

// ToggleOption records a choice interaction. With multiple false it behaves
// exactly like SetScalar: selecting an option always sets, never clears, so
// re-selecting is a no-op under overwrite semantics. With multiple true it
// toggles membership in the key's selection set, treating an absent key as
// the empty set.
func (s *State) ToggleOption(key, option string, multiple bool) {
	if s == nil {
		return
	}
	if !multiple {
		s.SetScalar(key, option)
		return
	}
	s.touched = true
	set, ok := s.selections[key]
	if !ok {
		set = make(map[string]struct{})
		s.selections[key] = set
	}
	if _, member := set[option]; member {
		delete(set, option)
		return
	}
	set[option] = struct{}{}
}

// Scalar returns the scalar stored under key.
func (s *State) Scalar(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	value, ok := s.scalars[key]
	return value, ok
}

// Selected reports whether option is a member of the key's selection set.
func (s *State) Selected(key, option string) bool {
	if s == nil {
		return false
	}
	_, ok := s.selections[key][option]
	return ok
}

// Selections returns the selection set for key as a sorted slice. Toggle
// order is not preserved; the set has no inherent order.
func (s *State) Selections(key string) []string {
	if s == nil {
		return nil
	}
	set := s.selections[key]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for option := range set {
		out = append(out, option)
	}
	sort.Strings(out)
	return out
}

// Touched reports whether any mutation has been applied since creation.
func (s *State) Touched() bool {
	return s != nil && s.touched
}
