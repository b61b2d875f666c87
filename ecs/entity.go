package ecs

import (
	"fmt"
	"reflect"

	"github.com/kamstrup/intmap"
)

// EntityId uniquely identifies an entity. Ids are issued by a Sequence and are
// never zero.
type EntityId uint64

// Entity is a unique id plus an open set of components, at most one per type.
//
// Deleted entities stay in their holder until the next garbage collection pass
// of the owning engine.
type Entity struct {
	id         EntityId
	deleted    bool
	components *intmap.Map[typeKey, iComponent]
}

// NewEntity creates a free-standing entity with the next id from seq. The
// entity can be registered with any holder later; AddExisting refuses ids the
// holder already stores and keeps its own sequence ahead of the ones it accepts.
func NewEntity(seq *Sequence) *Entity {
	return newEntity(EntityId(seq.Next()))
}

func newEntity(id EntityId) *Entity {
	return &Entity{
		id:         id,
		components: intmap.New[typeKey, iComponent](4),
	}
}

// Id returns the entity's identifier.
func (e *Entity) Id() EntityId {
	return e.id
}

// IsDeleted reports whether the entity has been marked for deletion.
func (e *Entity) IsDeleted() bool {
	return e.deleted
}

// MarkForDeletion flags the entity so the next garbage collection pass
// removes it.
func (e *Entity) MarkForDeletion() {
	e.deleted = true
}

// HasTypes reports whether the entity holds a component of every given type.
func (e *Entity) HasTypes(types ...reflect.Type) bool {
	for _, t := range types {
		if !e.components.Has(keyOf(t)) {
			return false
		}
	}
	return true
}

// ComponentCount returns the number of attached components.
func (e *Entity) ComponentCount() int {
	return e.components.Len()
}

// ComponentTypes returns the types of all attached components, in no
// particular order.
func (e *Entity) ComponentTypes() []reflect.Type {
	types := make([]reflect.Type, 0, e.components.Len())
	e.components.ForEach(func(_ typeKey, c iComponent) bool {
		types = append(types, c.Type())
		return true
	})
	return types
}

// component returns the pointer to the stored component of type t, or nil.
func (e *Entity) component(t reflect.Type) any {
	c, ok := e.components.Get(keyOf(t))
	if !ok {
		return nil
	}
	return c.Pointer()
}

// Has reports whether the entity holds a component of type T.
func Has[T any](e *Entity) bool {
	return e.components.Has(keyFor[T]())
}

// Has2 reports whether the entity holds components of both types.
func Has2[A, B any](e *Entity) bool {
	return Has[A](e) && Has[B](e)
}

// Has3 reports whether the entity holds components of all three types.
func Has3[A, B, C any](e *Entity) bool {
	return Has[A](e) && Has[B](e) && Has[C](e)
}

// AddComponent attaches value to the entity and returns a pointer to the
// stored copy. It fails with ErrDuplicateComponent if a T is already attached,
// leaving the existing component untouched.
func AddComponent[T any](e *Entity, value T) (*T, error) {
	key := keyFor[T]()
	if e.components.Has(key) {
		return nil, fmt.Errorf("entity %d already holds %s: %w", e.id, reflect.TypeFor[T](), ErrDuplicateComponent)
	}

	box := newComponentBox(value, e.id)
	e.components.Put(key, box)
	return &box.value, nil
}

// RemoveComponent detaches the entity's T. It fails with ErrMissingComponent
// if no T is attached.
func RemoveComponent[T any](e *Entity) error {
	key := keyFor[T]()
	if !e.components.Has(key) {
		return fmt.Errorf("entity %d does not hold %s: %w", e.id, reflect.TypeFor[T](), ErrMissingComponent)
	}

	e.components.Del(key)
	return nil
}

// Get returns a pointer to the entity's T, or nil if none is attached.
// The pointer aliases the stored component and stays valid until the component
// is removed or the entity is purged.
func Get[T any](e *Entity) *T {
	c, ok := e.components.Get(keyFor[T]())
	if !ok {
		return nil
	}
	box, ok := c.(*componentBox[T])
	if !ok {
		return nil
	}
	return &box.value
}
