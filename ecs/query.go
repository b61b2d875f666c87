package ecs

import "iter"

// Query wraps a View with a cached result set. The holder performs a full
// scan on every match; a Query lets a system pay for that scan once per tick
// and iterate the result as often as it likes.
type Query[T any] struct {
	view *View[T]

	cachedEntities   []*Entity
	cachedComponents []T
	cacheValid       bool
}

// NewQuery creates a new Query over the given holder.
func NewQuery[T any](holder *EntityHolder) *Query[T] {
	return &Query[T]{
		view: NewView[T](holder),
	}
}

// Init binds the Query to a holder. Called by the Engine when an updateable
// holding a Query field is registered.
func (q *Query[T]) Init(holder *EntityHolder) {
	q.view = NewView[T](holder)
	q.cachedEntities = nil
	q.cachedComponents = nil
	q.cacheValid = false
}

// Execute rebuilds the cache. Entities marked for deletion are left out.
func (q *Query[T]) Execute() {
	if q.view == nil {
		panic("Query.Execute() called on a Query without a holder")
	}

	q.cachedEntities = q.cachedEntities[:0]
	q.cachedComponents = q.cachedComponents[:0]

	for entity, item := range q.view.Iter(false) {
		q.cachedEntities = append(q.cachedEntities, entity)
		q.cachedComponents = append(q.cachedComponents, item)
	}

	q.cacheValid = true
}

// Invalidate drops the cache; the next Iter panics until Execute runs again.
func (q *Query[T]) Invalidate() {
	q.cacheValid = false
}

// Len returns the number of cached matches.
func (q *Query[T]) Len() int {
	return len(q.cachedEntities)
}

// Iter returns an iterator over cached entities and component data.
// Panics if Execute() has not been called since the last Invalidate.
func (q *Query[T]) Iter() iter.Seq2[*Entity, T] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(*Entity, T) bool) {
		for i := range q.cachedEntities {
			if !yield(q.cachedEntities[i], q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over cached component data only.
// Panics if Execute() has not been called since the last Invalidate.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.cacheValid {
		panic("Query.Values() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for i := range q.cachedComponents {
			if !yield(q.cachedComponents[i]) {
				return
			}
		}
	}
}
