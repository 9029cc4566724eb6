package obstacle

// Set is an insertion-ordered collection of obstacles keyed by id.
// Iteration order is stable so that simulations stay reproducible.
type Set struct {
	byID  map[ID]*Obstacle
	order []ID
}

// NewSet creates an empty set with room for capacity obstacles.
func NewSet(capacity int) *Set {
	return &Set{
		byID:  make(map[ID]*Obstacle, capacity),
		order: make([]ID, 0, capacity),
	}
}

// Add inserts o. Adding an id that is already present replaces it in place.
func (s *Set) Add(o *Obstacle) {
	if _, ok := s.byID[o.ID]; !ok {
		s.order = append(s.order, o.ID)
	}
	s.byID[o.ID] = o
}

// Remove deletes the obstacle with the given id and returns it.
// The second result is false if the id was not present.
func (s *Set) Remove(id ID) (*Obstacle, bool) {
	o, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return o, true
}

// Get looks up an obstacle by id.
func (s *Set) Get(id ID) (*Obstacle, bool) {
	o, ok := s.byID[id]
	return o, ok
}

// Contains reports whether id is in the set.
func (s *Set) Contains(id ID) bool {
	_, ok := s.byID[id]
	return ok
}

// Len returns the number of obstacles in the set.
func (s *Set) Len() int {
	return len(s.order)
}

// All returns a snapshot of the obstacles in insertion order.
// The slice may be iterated while the set is modified.
func (s *Set) All() []*Obstacle {
	out := make([]*Obstacle, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Sequence hands out obstacle ids. Sharing one sequence across runs keeps ids
// unique for the lifetime of a game.
type Sequence struct {
	last ID
}

// Next returns a fresh id.
func (s *Sequence) Next() ID {
	s.last++
	return s.last
}
