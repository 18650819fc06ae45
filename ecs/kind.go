package ecs

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrEntityNotAlive is returned when attaching data to a destroyed or
	// never-created entity.
	ErrEntityNotAlive = errors.New("ecs: entity is not alive")
	// ErrNilComponent is returned when attaching a nil component value.
	ErrNilComponent = errors.New("ecs: component value is nil")
)

// KindID identifies a registered component kind for the whole process.
type KindID uint32

var nextKindID atomic.Uint32

// Kind is a typed handle for one component kind. Declare kinds once as
// package variables and pass them to Add, Get and the iteration helpers.
type Kind[T any] struct {
	id KindID
}

// NewKind registers a component kind and returns its handle.
func NewKind[T any]() Kind[T] {
	return Kind[T]{id: KindID(nextKindID.Add(1))}
}

// ID returns the process-wide identifier for this kind.
func (k Kind[T]) ID() KindID {
	return k.id
}
