package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

// System mutates the world once per simulation tick.
type System interface {
	Update(w *World)
}

// World owns entities, component tables, shared resources, and system order.
// Component access goes through the generic helpers (Add, Get, ForEach) so
// each kind gets its own packed table.
type World struct {
	entities  entityStore
	tables    *intmap.Map[KindID, *table]
	tableIDs  []KindID
	resources map[reflect.Type]any
	systems   []System
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		tables:    intmap.New[KindID, *table](16),
		resources: make(map[reflect.Type]any),
	}
}

// CreateEntity allocates a fresh entity with no components attached.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes e and every component attached to it. Destroying a
// stale or never-created handle reports false and changes nothing.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, id := range w.tableIDs {
		if t, ok := w.tables.Get(id); ok {
			t.remove(e.id())
		}
	}
	return true
}

// IsAlive reports whether e refers to a live entity.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

func (w *World) tableFor(id KindID, create bool) *table {
	if t, ok := w.tables.Get(id); ok {
		return t
	}
	if !create {
		return nil
	}
	t := &table{}
	w.tables.Put(id, t)
	w.tableIDs = append(w.tableIDs, id)
	return t
}

// AddSystem appends s to the per-tick update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs every registered system once, in registration order.
func (w *World) Update() {
	for _, s := range w.systems {
		s.Update(w)
	}
}
