// Package cset provides the small consumer set used by cache entries.
package cset

// Set is an unordered set of comparable values.
type Set[T comparable] map[T]struct{}

func New[T comparable]() Set[T] { return make(Set[T]) }

// Add inserts v and reports whether it was not already present.
func (s Set[T]) Add(v T) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

// Remove deletes v and reports whether it was present.
func (s Set[T]) Remove(v T) bool {
	if _, ok := s[v]; !ok {
		return false
	}
	delete(s, v)
	return true
}

func (s Set[T]) Has(v T) bool { _, ok := s[v]; return ok }

func (s Set[T]) Len() int { return len(s) }
