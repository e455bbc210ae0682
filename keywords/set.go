package keywords

import "sort"

// Set is an ordered keyword set. The first occurrence of a name wins; names
// added after construction are marked as changed.
type Set struct {
	names   []string
	members map[string]bool
	changed map[string]bool
}

// NewSet creates a Set holding existing, in order, with duplicates dropped.
// None of them count as changed.
func NewSet(existing ...string) *Set {
	s := &Set{
		members: make(map[string]bool, len(existing)),
		changed: make(map[string]bool),
	}
	for _, name := range existing {
		if name == "" || s.members[name] {
			continue
		}
		s.members[name] = true
		s.names = append(s.names, name)
	}
	return s
}

// Add appends name and marks it changed. It returns false, leaving the set
// untouched, when name is already present or empty.
func (s *Set) Add(name string) bool {
	if name == "" || s.members[name] {
		return false
	}
	s.members[name] = true
	s.changed[name] = true
	s.names = append(s.names, name)
	return true
}

// Contains reports whether name is in the set.
func (s *Set) Contains(name string) bool {
	return s.members[name]
}

// Changed reports whether name was added after construction.
func (s *Set) Changed(name string) bool {
	return s.changed[name]
}

// ChangedCount returns how many names were added after construction.
func (s *Set) ChangedCount() int {
	return len(s.changed)
}

// Len returns the number of names.
func (s *Set) Len() int {
	return len(s.names)
}

// Names returns a copy of the names in set order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Sort orders the names lexicographically. Changed marks follow their names.
func (s *Set) Sort() {
	sort.Strings(s.names)
}
