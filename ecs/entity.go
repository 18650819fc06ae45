package ecs

import "strconv"

// Entity is an opaque handle into the world's component tables. It packs a
// recyclable 32-bit id with a 32-bit generation so stale handles can be told
// apart from live ones after an id is reused.
type Entity uint64

const entityIDBits = 32

func makeEntity(id uint32, gen uint32) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() uint32 {
	return uint32(e)
}

func (e Entity) generation() uint32 {
	return uint32(uint64(e) >> entityIDBits)
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// Valid reports whether e was ever produced by CreateEntity. The zero Entity
// is never valid.
func (e Entity) Valid() bool {
	return e.id() != 0
}

// entityStore tracks generations and recycles freed ids. Id 0 is reserved.
type entityStore struct {
	gens []uint32 // gens[0] unused
	free []uint32
}

func (s *entityStore) create() Entity {
	if len(s.free) > 0 {
		id := s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
		return makeEntity(id, s.gens[id])
	}
	if len(s.gens) == 0 {
		s.gens = append(s.gens, 0)
	}
	s.gens = append(s.gens, 0)
	id := uint32(len(s.gens) - 1)
	return makeEntity(id, 0)
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	s.gens[e.id()]++
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) >= len(s.gens) {
		return false
	}
	return s.gens[id] == e.generation()
}

// entityFor rebuilds the live handle for a raw id, used when walking
// component tables that only record ids.
func (s *entityStore) entityFor(id uint32) (Entity, bool) {
	if id == 0 || int(id) >= len(s.gens) {
		return 0, false
	}
	return makeEntity(id, s.gens[id]), true
}
