package ecs_test

import (
	"reflect"

	"github.com/plus3/lazarus/ecs"
)

// Common test component types
type Position struct {
	X, Y int
}

type Velocity struct {
	DX, DY int
}

type Name struct {
	Value string
}

type Health struct {
	ecs.Owner
	Current int
	Max     int
}

type PlayerController struct{}

// Custom primitive types for testing non-struct components
type Score int32
type Tag string

// Common test event types
type DamageEvent struct {
	Target ecs.EntityId
	Amount int
}

type DeathEvent struct {
	Entity ecs.EntityId
}

// recorder is an event listener that records what it receives.
type recorder[E any] struct {
	name     string
	received []E
	log      *[]string
}

func (r *recorder[E]) Receive(engine *ecs.Engine, event E) {
	r.received = append(r.received, event)
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
}

// funcUpdateable adapts a closure to ecs.Updateable.
type funcUpdateable struct {
	fn    func(*ecs.Engine)
	calls int
}

func (f *funcUpdateable) Update(engine *ecs.Engine) {
	f.calls++
	if f.fn != nil {
		f.fn(engine)
	}
}

func mustAdd[T any](e *ecs.Entity, value T) *T {
	ptr, err := ecs.AddComponent(e, value)
	if err != nil {
		panic(err)
	}
	return ptr
}

func reflectType[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
