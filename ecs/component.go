package ecs

import "reflect"

// iComponent is a type-erased handle to a component owned by an entity.
type iComponent interface {
	Type() reflect.Type
	// Pointer returns a *T pointing at the stored value.
	Pointer() any
}

// componentBox stores a single component of type T.
type componentBox[T any] struct {
	value T
}

func newComponentBox[T any](value T, owner EntityId) *componentBox[T] {
	b := &componentBox[T]{value: value}
	if o, ok := any(&b.value).(ownerSetter); ok {
		o.setOwner(owner)
	}
	return b
}

func (b *componentBox[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

func (b *componentBox[T]) Pointer() any {
	return &b.value
}

type ownerSetter interface {
	setOwner(id EntityId)
}

// Owner can be embedded in a component struct to record which entity the
// component was attached to.
//
//	type Health struct {
//		ecs.Owner
//		Current, Max int
//	}
type Owner struct {
	entity EntityId
}

// OwnerId returns the id of the entity the component is attached to, or zero
// if the component was never attached.
func (o Owner) OwnerId() EntityId {
	return o.entity
}

func (o *Owner) setOwner(id EntityId) {
	o.entity = id
}
