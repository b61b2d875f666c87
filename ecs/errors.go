package ecs

import "errors"

var (
	// ErrDuplicateComponent is returned when attaching a component type the
	// entity already holds.
	ErrDuplicateComponent = errors.New("ecs: duplicate component")

	// ErrMissingComponent is returned when removing a component type the
	// entity does not hold.
	ErrMissingComponent = errors.New("ecs: missing component")

	// ErrNotSubscribed is returned when unsubscribing a listener that is not
	// subscribed to the event type.
	ErrNotSubscribed = errors.New("ecs: listener not subscribed")
)
