package ecs

import (
	"context"
	"reflect"
	"time"
)

// EngineStats provides statistics about engine execution.
type EngineStats struct {
	Ticks           uint64
	UpdateableCount int
	TotalExecutions int64
	EventsEmitted   int64 // emits that reached at least one listener
	Updateables     []UpdateableStats
}

// UpdateableStats provides execution statistics for a single updateable.
type UpdateableStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type updateableStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// queryField is implemented by *Query[T] fields of updateables.
type queryField interface {
	Init(holder *EntityHolder)
	Execute()
}

type registeredUpdateable struct {
	updateable Updateable
	name       string
	queries    []queryField
	stats      updateableStatsInternal
}

// AddUpdateable registers u to be ticked by Update. Updateables run in
// registration order. Query fields of a struct updateable are bound to the
// engine's holder and re-executed right before each of its updates.
func (e *Engine) AddUpdateable(u Updateable) {
	if u == nil {
		panic("cannot register a nil updateable")
	}

	updateType := reflect.TypeOf(u)
	if updateType.Kind() == reflect.Ptr {
		updateType = updateType.Elem()
	}

	e.updateables = append(e.updateables, registeredUpdateable{
		updateable: u,
		name:       updateType.Name(),
		queries:    e.initializeQueries(u),
		stats: updateableStatsInternal{
			minDuration: time.Duration(1<<63 - 1),
		},
	})
}

func (e *Engine) initializeQueries(u Updateable) []queryField {
	value := reflect.ValueOf(u)
	if value.Kind() != reflect.Ptr || value.IsNil() {
		return nil
	}
	value = value.Elem()
	if value.Kind() != reflect.Struct {
		return nil
	}

	var queries []queryField
	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		if !field.CanAddr() || !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		q, ok := field.Addr().Interface().(queryField)
		if !ok {
			continue
		}
		q.Init(e.entities)
		queries = append(queries, q)
	}
	return queries
}

// Update runs one tick: every updateable is invoked once in registration
// order, then entities marked for deletion are purged.
func (e *Engine) Update() {
	e.tick++

	for i := range e.updateables {
		r := &e.updateables[i]
		for _, q := range r.queries {
			q.Execute()
		}

		start := time.Now()
		r.updateable.Update(e)
		duration := time.Since(start)

		// Update may have registered more updateables and moved the slice
		r = &e.updateables[i]
		r.stats.executionCount++
		r.stats.lastDuration = duration
		r.stats.totalDuration += duration
		if duration < r.stats.minDuration {
			r.stats.minDuration = duration
		}
		if duration > r.stats.maxDuration {
			r.stats.maxDuration = duration
		}
	}

	e.GarbageCollect()
}

// GarbageCollect removes every entity marked for deletion and returns how
// many were removed. Update calls it at the end of every tick.
func (e *Engine) GarbageCollect() int {
	removed := e.entities.Collect()
	if removed > 0 {
		e.logger.Debug("purged deleted entities", "count", removed, "tick", e.tick)
	}
	return removed
}

// Run calls Update at the given interval until the context is cancelled.
func (e *Engine) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.Update()
		}
	}
}

// Tick returns the number of completed or in-progress Update calls.
func (e *Engine) Tick() uint64 {
	return e.tick
}

// Stats returns statistics about engine execution.
func (e *Engine) Stats() *EngineStats {
	stats := &EngineStats{
		Ticks:           e.tick,
		UpdateableCount: len(e.updateables),
		EventsEmitted:   e.eventsEmitted,
		Updateables:     make([]UpdateableStats, len(e.updateables)),
	}

	var totalExecs int64
	for i, r := range e.updateables {
		avgDuration := time.Duration(0)
		if r.stats.executionCount > 0 {
			avgDuration = r.stats.totalDuration / time.Duration(r.stats.executionCount)
		}

		stats.Updateables[i] = UpdateableStats{
			Name:           r.name,
			ExecutionCount: r.stats.executionCount,
			MinDuration:    r.stats.minDuration,
			MaxDuration:    r.stats.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   r.stats.lastDuration,
			TotalDuration:  r.stats.totalDuration,
		}
		totalExecs += r.stats.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
