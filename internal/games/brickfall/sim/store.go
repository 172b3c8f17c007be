package sim

// Store is a side table holding one component type keyed by entity handle.
// Entities are kept in insertion order so iteration is deterministic.
// The simulation is single-threaded; Store does no locking.
type Store[T any] struct {
	components map[EntityID]T
	entities   []EntityID
}

// NewStore creates an empty store for component type T.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[EntityID]T),
		entities:   make([]EntityID, 0, 64),
	}
}

// Set inserts or replaces the component for e.
func (s *Store[T]) Set(e EntityID, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get returns the component for e.
func (s *Store[T]) Get(e EntityID) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// MustGet returns the component for e or the zero value.
func (s *Store[T]) MustGet(e EntityID) T {
	return s.components[e]
}

// Has reports whether e carries this component.
func (s *Store[T]) Has(e EntityID) bool {
	_, ok := s.components[e]
	return ok
}

// Remove drops the component of e, keeping the order of the rest.
func (s *Store[T]) Remove(e EntityID) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, id := range s.entities {
		if id == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// RemoveBatch drops several entities in one compaction pass.
func (s *Store[T]) RemoveBatch(ids []EntityID) {
	if len(ids) == 0 || len(s.components) == 0 {
		return
	}

	toRemove := make(map[EntityID]struct{}, len(ids))
	for _, e := range ids {
		if _, exists := s.components[e]; exists {
			toRemove[e] = struct{}{}
			delete(s.components, e)
		}
	}
	if len(toRemove) == 0 {
		return
	}

	writeIdx := 0
	for _, e := range s.entities {
		if _, remove := toRemove[e]; !remove {
			s.entities[writeIdx] = e
			writeIdx++
		}
	}
	s.entities = s.entities[:writeIdx]
}

// Entities returns a copy of the handles in insertion order.
func (s *Store[T]) Entities() []EntityID {
	out := make([]EntityID, len(s.entities))
	copy(out, s.entities)
	return out
}

// Len returns the number of stored components.
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Clear removes every component.
func (s *Store[T]) Clear() {
	s.components = make(map[EntityID]T)
	s.entities = s.entities[:0]
}
