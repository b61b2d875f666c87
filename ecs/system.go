package ecs

// SystemId uniquely identifies a system within the engine's system sequence.
type SystemId uint64

// Updateable is anything the Engine invokes once per tick.
type Updateable interface {
	Update(engine *Engine)
}

// EventListener receives events of type E emitted on an Engine it is
// subscribed to.
type EventListener[E any] interface {
	Receive(engine *Engine, event E)
}

// System is the base for user-defined systems. Embed it in a struct to get a
// unique id and a handle to the engine the system lives in:
//
//	type MovementSystem struct {
//		ecs.System
//		Movers ecs.Query[struct{ *Position; *Velocity }]
//	}
//
// The embedded no-op Update makes every system an Updateable; override it to
// do work each tick. Systems are never destroyed by the engine.
type System struct {
	id     SystemId
	engine *Engine
}

// NewSystem creates a system bound to engine with the engine's next system id.
func NewSystem(engine *Engine) System {
	return System{
		id:     SystemId(engine.systemIds.Next()),
		engine: engine,
	}
}

// Id returns the system's identifier.
func (s *System) Id() SystemId {
	return s.id
}

// Engine returns the engine the system is bound to.
func (s *System) Engine() *Engine {
	return s.engine
}

// Update does nothing.
func (s *System) Update(engine *Engine) {}

// SubscribeSystem subscribes listener to events of type E on the engine s is
// bound to. Pass the struct embedding s as the listener:
//
//	ecs.SubscribeSystem[DamageEvent](&combat.System, combat)
func SubscribeSystem[E any](s *System, listener EventListener[E]) {
	Subscribe[E](s.engine, listener)
}

// UnsubscribeSystem undoes SubscribeSystem. It fails with ErrNotSubscribed if
// listener is not subscribed on the system's engine.
func UnsubscribeSystem[E any](s *System, listener EventListener[E]) error {
	return Unsubscribe[E](s.engine, listener)
}
