package ecs

// Entity is a generation-checked handle. The zero Entity is never valid.
type Entity struct {
	ID  int
	Gen int
}

// Valid reports whether the handle could refer to a live entity.
func (e Entity) Valid() bool {
	return e.ID > 0
}

// entityStore tracks entity generations and recycled ids.
type entityStore struct {
	nextID int
	gen    []int
	free   []int
}

func (s *entityStore) create() Entity {
	if s == nil {
		return Entity{}
	}
	var id int
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.nextID++
		id = s.nextID
	}
	for id > len(s.gen) {
		s.gen = append(s.gen, 0)
	}
	return Entity{ID: id, Gen: s.gen[id-1]}
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	s.gen[e.ID-1]++
	s.free = append(s.free, e.ID)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil || e.ID <= 0 || e.ID > len(s.gen) {
		return false
	}
	return s.gen[e.ID-1] == e.Gen
}
