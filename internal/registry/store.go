// Package registry holds the eleven typed, per-kind stores (C2) that sit
// on top of the shared OID registry: one store per schema-entity kind,
// each enforcing only local uniqueness (no cross-kind knowledge), with
// copy-on-write cloning so a transactional mutation can be built against
// a private snapshot and discarded on failure.
package registry

import "dirschema/internal/schema"

// Store holds every entity of one kind, keyed by OID.
type Store[T schema.Entity] struct {
	byOID map[string]T
}

func NewStore[T schema.Entity]() *Store[T] {
	return &Store[T]{byOID: make(map[string]T)}
}

func (s *Store[T]) Get(oid string) (T, bool) {
	v, ok := s.byOID[oid]
	return v, ok
}

func (s *Store[T]) Put(v T) {
	s.byOID[v.Oid()] = v
}

func (s *Store[T]) Delete(oid string) {
	delete(s.byOID, oid)
}

func (s *Store[T]) Has(oid string) bool {
	_, ok := s.byOID[oid]
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.byOID)
}

// All returns every entity in the store, in an unspecified order.
func (s *Store[T]) All() []T {
	out := make([]T, 0, len(s.byOID))
	for _, v := range s.byOID {
		out = append(out, v)
	}
	return out
}

// BySchema returns every entity contributed by the named schema.
func (s *Store[T]) BySchema(name string) []T {
	var out []T
	for _, v := range s.byOID {
		if v.Schema() == name {
			out = append(out, v)
		}
	}
	return out
}

// Clone returns a shallow copy of the store: entity values are not deep
// copied (they are treated as immutable once built by the factory), but
// the map itself is private so mutating the clone never touches s.
func (s *Store[T]) Clone() *Store[T] {
	c := NewStore[T]()
	for k, v := range s.byOID {
		c.byOID[k] = v
	}
	return c
}
