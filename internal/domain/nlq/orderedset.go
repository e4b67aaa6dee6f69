package nlq

// OrderedSet keeps unique values in insertion order.
type OrderedSet[T comparable] struct {
	index  map[T]struct{}
	values []T
}

// NewOrderedSet returns an empty set.
func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{index: make(map[T]struct{})}
}

// Add appends v unless it is already present. It reports whether v was added.
func (s *OrderedSet[T]) Add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.values = append(s.values, v)
	return true
}

// Contains reports whether v is in the set.
func (s *OrderedSet[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of values.
func (s *OrderedSet[T]) Len() int {
	return len(s.values)
}

// Values returns a copy of the values in insertion order. It never returns nil.
func (s *OrderedSet[T]) Values() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}
