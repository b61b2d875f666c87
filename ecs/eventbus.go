package ecs

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// iSubscriberList is a type-erased list of listeners for one event type.
type iSubscriberList interface {
	Len() int
}

type subscriberList[E any] struct {
	listeners []EventListener[E]
}

func (l *subscriberList[E]) Len() int {
	return len(l.listeners)
}

func subscribersFor[E any](engine *Engine, create bool) *subscriberList[E] {
	eventType := reflect.TypeFor[E]()
	if list, ok := engine.subscribers[eventType].(*subscriberList[E]); ok {
		return list
	}
	if !create {
		return nil
	}
	list := &subscriberList[E]{}
	engine.subscribers[eventType] = list
	return list
}

// sameListener compares listeners by identity. Listeners that cannot be
// compared never match, including comparable structs whose interface fields
// hold funcs, maps or slices.
func sameListener[E any](a, b EventListener[E]) (same bool) {
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

// Subscribe appends listener to the subscribers of events of type E.
// Subscribing the same listener twice makes it receive each event twice.
func Subscribe[E any](engine *Engine, listener EventListener[E]) {
	if listener == nil {
		panic("cannot subscribe a nil listener")
	}

	list := subscribersFor[E](engine, true)
	// Copy on write: an Emit in progress keeps iterating its own slice
	listeners := make([]EventListener[E], len(list.listeners), len(list.listeners)+1)
	copy(listeners, list.listeners)
	list.listeners = append(listeners, listener)
}

// Unsubscribe removes the first subscription of listener to events of type E.
// It fails with ErrNotSubscribed if the listener is not subscribed.
func Unsubscribe[E any](engine *Engine, listener EventListener[E]) error {
	list := subscribersFor[E](engine, false)
	if list != nil && listener != nil {
		for i, l := range list.listeners {
			if sameListener(l, listener) {
				list.listeners = slices.Delete(slices.Clone(list.listeners), i, i+1)
				return nil
			}
		}
	}

	err := fmt.Errorf("%T is not subscribed to %s: %w", listener, reflect.TypeFor[E](), ErrNotSubscribed)
	engine.logger.Debug("unsubscribe failed", "error", err)
	return err
}

// Emit delivers event synchronously to every listener subscribed to E, in
// subscription order. The listener set is fixed when Emit starts; listeners
// subscribed or unsubscribed during dispatch only affect later emits.
func Emit[E any](engine *Engine, event E) {
	list := subscribersFor[E](engine, false)
	if list == nil || len(list.listeners) == 0 {
		return
	}
	engine.eventsEmitted++

	for _, listener := range list.listeners {
		listener.Receive(engine, event)
	}
}

// SubscriberCount returns how many subscriptions exist for events of type E.
func SubscriberCount[E any](engine *Engine) int {
	list := subscribersFor[E](engine, false)
	if list == nil {
		return 0
	}
	return list.Len()
}

// EventTypes returns the event types that currently have subscribers.
func (e *Engine) EventTypes() []reflect.Type {
	types := make([]reflect.Type, 0, len(e.subscribers))
	for t, list := range e.subscribers {
		if list.Len() > 0 {
			types = append(types, t)
		}
	}
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})
	return types
}
