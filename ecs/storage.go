package ecs

// entityStore tracks slot generations and recycles freed slots.
type entityStore struct {
	gen   []uint32
	alive []bool
	free  []uint32
	count int
}

func (s *entityStore) create() Entity {
	var id uint32
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		s.alive = append(s.alive, false)
		id = uint32(len(s.gen))
	}
	s.alive[id-1] = true
	s.count++
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.ID() - 1
	s.gen[idx]++
	s.alive[idx] = false
	s.free = append(s.free, e.ID())
	s.count--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.ID()
	if id == 0 || int(id) > len(s.gen) {
		return false
	}
	return s.alive[id-1] && s.gen[id-1] == e.Generation()
}

// handle returns the live Entity for a slot id.
func (s *entityStore) handle(id uint32) (Entity, bool) {
	if id == 0 || int(id) > len(s.gen) || !s.alive[id-1] {
		return 0, false
	}
	return makeEntity(id, s.gen[id-1]), true
}

func (s *entityStore) all() []Entity {
	out := make([]Entity, 0, s.count)
	for i := range s.gen {
		if s.alive[i] {
			out = append(out, makeEntity(uint32(i+1), s.gen[i]))
		}
	}
	return out
}
