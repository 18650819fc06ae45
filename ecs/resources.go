package ecs

import (
	"fmt"
	"reflect"
)

// SetResource stores v as the world's single shared value of type T,
// replacing any previous one. Resources hold world-global state that does
// not belong to any one entity, such as screen dimensions.
func SetResource[T any](w *World, v T) {
	w.resources[reflect.TypeOf((*T)(nil)).Elem()] = v
}

// Resource returns the shared value of type T, if one was set.
func Resource[T any](w *World) (T, bool) {
	v, ok := w.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// MustResource returns the shared value of type T and panics when it was
// never set. Use it where a missing resource means a wiring bug.
func MustResource[T any](w *World) T {
	v, ok := Resource[T](w)
	if !ok {
		panic(fmt.Sprintf("ecs: missing resource %s", reflect.TypeOf((*T)(nil)).Elem()))
	}
	return v
}
