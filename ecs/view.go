package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View resolves a fixed combination of components for entities of a holder.
// The type T should be a struct with embedded or named pointer fields for each
// component type. Named fields can be marked as optional using the
// `ecs:"optional"` struct tag; optional components do not take part in matching
// and are nil when absent.
//
//	view := ecs.NewView[struct {
//		*Position
//		*Velocity
//		Health *Health `ecs:"optional"`
//	}](holder)
type View[T any] struct {
	holder      *EntityHolder
	types       []reflect.Type
	required    []reflect.Type
	optional    []bool
	fieldOffset []uintptr
}

// NewView creates a new view for the given struct type.
// It panics if T is not a struct of pointer fields.
func NewView[T any](holder *EntityHolder) *View[T] {
	structType := reflect.TypeFor[T]()

	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{
		holder:      holder,
		types:       make([]reflect.Type, 0, structType.NumField()),
		optional:    make([]bool, 0, structType.NumField()),
		fieldOffset: make([]uintptr, 0, structType.NumField()),
	}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		componentType := field.Type.Elem()
		v.types = append(v.types, componentType)
		v.fieldOffset = append(v.fieldOffset, field.Offset)

		// Embedded fields are always required
		isOptional := false
		if !field.Anonymous {
			if tag := field.Tag.Get("ecs"); tag != "" {
				if tag != "optional" {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
				isOptional = true
			}
		}
		v.optional = append(v.optional, isOptional)
		if !isOptional {
			v.required = append(v.required, componentType)
		}
	}

	return v
}

// Types returns the component types required by the view.
func (v *View[T]) Types() []reflect.Type {
	return v.required
}

// Matches reports whether the entity holds every required component.
func (v *View[T]) Matches(entity *Entity) bool {
	return entity.HasTypes(v.required...)
}

// Fill populates the provided struct pointer with component data for the given
// entity. Returns false if the entity is missing any required component.
func (v *View[T]) Fill(entity *Entity, ptr *T) bool {
	structPtr := unsafe.Pointer(ptr)

	for i, componentType := range v.types {
		fieldPtr := unsafe.Add(structPtr, v.fieldOffset[i])

		component := entity.component(componentType)
		if component == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		*(*unsafe.Pointer)(fieldPtr) = dataPointer(component)
	}

	return true
}

// Get returns a populated view struct for the given entity, or nil if the
// entity doesn't have all the required components.
func (v *View[T]) Get(entity *Entity) *T {
	if entity == nil {
		return nil
	}
	var result T
	if !v.Fill(entity, &result) {
		return nil
	}
	return &result
}

// Iter returns an iterator over all matching entities and their resolved
// components. Entities marked for deletion are skipped unless includeDeleted
// is set.
func (v *View[T]) Iter(includeDeleted bool) iter.Seq2[*Entity, T] {
	return func(yield func(*Entity, T) bool) {
		var result T
		for entity := range v.holder.Matching(includeDeleted, v.required...) {
			if !v.Fill(entity, &result) {
				continue
			}
			if !yield(entity, result) {
				return
			}
		}
	}
}

// Values returns an iterator over just the view structs.
func (v *View[T]) Values(includeDeleted bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter(includeDeleted) {
			if !yield(value) {
				return
			}
		}
	}
}

// Each calls fn for every matching entity with its components resolved.
func (v *View[T]) Each(fn func(*Entity, T), includeDeleted bool) {
	for entity, value := range v.Iter(includeDeleted) {
		fn(entity, value)
	}
}

// Entities returns the matching entities in store order.
func (v *View[T]) Entities(includeDeleted bool) []*Entity {
	var result []*Entity
	v.Each(func(entity *Entity, _ T) {
		result = append(result, entity)
	}, includeDeleted)
	return result
}
