package ecs

import (
	"log/slog"
	"reflect"
)

// Engine is the composition root of the ECS. It owns the entity population,
// the ordered set of updateables and the event subscriber registry.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	entities  *EntityHolder
	systemIds *Sequence
	logger    *slog.Logger

	updateables []registeredUpdateable
	tick        uint64

	subscribers   map[reflect.Type]iSubscriberList
	eventsEmitted int64
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	logger         *slog.Logger
	entityIds      *Sequence
	systemIds      *Sequence
	entityCapacity int
}

// WithLogger sets the logger used for engine diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithEntitySequence makes the engine issue entity ids from seq.
func WithEntitySequence(seq *Sequence) Option {
	return func(c *engineConfig) {
		c.entityIds = seq
	}
}

// WithSystemSequence makes the engine issue system ids from seq.
func WithSystemSequence(seq *Sequence) Option {
	return func(c *engineConfig) {
		c.systemIds = seq
	}
}

// WithEntityCapacity presizes the entity index.
func WithEntityCapacity(capacity int) Option {
	return func(c *engineConfig) {
		c.entityCapacity = capacity
	}
}

// NewEngine creates an engine with an empty population.
func NewEngine(opts ...Option) *Engine {
	cfg := engineConfig{
		entityCapacity: 256,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	if cfg.systemIds == nil {
		cfg.systemIds = NewSequence(0)
	}

	return &Engine{
		entities:    newEntityHolder(cfg.entityIds, cfg.entityCapacity),
		systemIds:   cfg.systemIds,
		logger:      cfg.logger,
		subscribers: make(map[reflect.Type]iSubscriberList),
	}
}

// Entities returns the engine's entity holder.
func (e *Engine) Entities() *EntityHolder {
	return e.entities
}

// AddEntity creates and stores a new entity.
func (e *Engine) AddEntity() *Entity {
	return e.entities.AddEntity()
}

// AddExistingEntity stores a pre-built entity; it is a no-op returning false
// when the id is already taken.
func (e *Engine) AddExistingEntity(entity *Entity) bool {
	return e.entities.AddExisting(entity)
}

// GetEntity returns the entity with the given id, or nil.
func (e *Engine) GetEntity(id EntityId) *Entity {
	return e.entities.GetEntity(id)
}

// EntitiesWithComponents returns the entities holding all the given types.
func (e *Engine) EntitiesWithComponents(includeDeleted bool, types ...reflect.Type) []*Entity {
	return e.entities.EntitiesWithComponents(includeDeleted, types...)
}

// ApplyToEach calls fn for every entity holding all the given types.
func (e *Engine) ApplyToEach(fn func(*Entity), includeDeleted bool, types ...reflect.Type) {
	e.entities.ApplyToEach(fn, includeDeleted, types...)
}

// Logger returns the engine's logger.
func (e *Engine) Logger() *slog.Logger {
	return e.logger
}
