// Package ecs is an entity-component-system runtime for small turn-based or
// grid simulations.
//
// Entities are ids with an open set of typed components. Systems hold the
// behavior: an Engine ticks every registered Updateable once per Update, then
// purges the entities marked for deletion. Systems talk to each other through
// a synchronous, strongly typed event bus (Subscribe, Unsubscribe, Emit).
//
// Nothing in the package is safe for concurrent use.
package ecs
