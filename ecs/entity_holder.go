package ecs

import (
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

// EntityHolder owns a population of entities keyed by id.
//
// Entities are kept in insertion order. Deleted entities remain visible to
// lookups until Collect removes them.
type EntityHolder struct {
	ids   *Sequence
	slots slotStorage[*Entity]
	index *intmap.Map[EntityId, int]

	purged      int64
	collections int64
}

// NewEntityHolder creates an empty holder issuing ids from seq. A nil seq
// gets a fresh sequence starting at 1.
func NewEntityHolder(seq *Sequence) *EntityHolder {
	return newEntityHolder(seq, 256)
}

func newEntityHolder(seq *Sequence, capacity int) *EntityHolder {
	if seq == nil {
		seq = NewSequence(0)
	}
	return &EntityHolder{
		ids:   seq,
		index: intmap.New[EntityId, int](capacity),
	}
}

// Sequence returns the id sequence used for new entities.
func (h *EntityHolder) Sequence() *Sequence {
	return h.ids
}

// AddEntity creates and stores a new entity with the next free id.
func (h *EntityHolder) AddEntity() *Entity {
	id := EntityId(h.ids.Next())
	// A shared sequence may lag behind ids registered through AddExisting
	for h.index.Has(id) {
		id = EntityId(h.ids.Next())
	}
	entity := newEntity(id)
	h.store(entity)
	return entity
}

// AddExisting stores a pre-built entity under its own id. It does nothing and
// returns false if an entity with that id is already stored. The holder's
// sequence is moved past the entity's id, so AddEntity never reissues it.
func (h *EntityHolder) AddExisting(entity *Entity) bool {
	if entity == nil || h.index.Has(entity.id) {
		return false
	}
	h.ids.Observe(uint64(entity.id))
	h.store(entity)
	return true
}

func (h *EntityHolder) store(entity *Entity) {
	h.index.Put(entity.id, h.slots.Append(entity))
}

// GetEntity returns the entity with the given id, or nil if there is none.
func (h *EntityHolder) GetEntity(id EntityId) *Entity {
	slot, ok := h.index.Get(id)
	if !ok {
		return nil
	}
	entity, _ := h.slots.Get(slot)
	return entity
}

// Len returns the number of stored entities, including those marked for
// deletion.
func (h *EntityHolder) Len() int {
	return h.slots.Len()
}

// All iterates over every stored entity, including those marked for deletion.
func (h *EntityHolder) All() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for slot := range h.slots.Iter() {
			entity, ok := h.slots.Get(slot)
			if !ok {
				continue
			}
			if !yield(entity) {
				return
			}
		}
	}
}

// Matching iterates over the entities holding every given component type.
// Entities marked for deletion are skipped unless includeDeleted is set.
func (h *EntityHolder) Matching(includeDeleted bool, types ...reflect.Type) iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for entity := range h.All() {
			if entity.deleted && !includeDeleted {
				continue
			}
			if !entity.HasTypes(types...) {
				continue
			}
			if !yield(entity) {
				return
			}
		}
	}
}

// ApplyToEach calls fn for every entity holding all the given component types.
// Entities marked for deletion are skipped unless includeDeleted is set.
// Use a View to receive the components already resolved.
func (h *EntityHolder) ApplyToEach(fn func(*Entity), includeDeleted bool, types ...reflect.Type) {
	for entity := range h.Matching(includeDeleted, types...) {
		fn(entity)
	}
}

// EntitiesWithComponents returns the entities holding all the given component
// types, in store order.
func (h *EntityHolder) EntitiesWithComponents(includeDeleted bool, types ...reflect.Type) []*Entity {
	var result []*Entity
	h.ApplyToEach(func(entity *Entity) {
		result = append(result, entity)
	}, includeDeleted, types...)
	return result
}

// Collect removes every entity marked for deletion and returns how many were
// removed.
func (h *EntityHolder) Collect() int {
	h.collections++

	removed := 0
	for slot := range h.slots.Iter() {
		entity, _ := h.slots.Get(slot)
		if !entity.deleted {
			continue
		}
		h.slots.Delete(slot)
		h.index.Del(entity.id)
		removed++
	}

	if removed == 0 {
		return 0
	}

	for oldSlot, newSlot := range h.slots.Compact() {
		if oldSlot == newSlot {
			continue
		}
		entity, _ := h.slots.Get(newSlot)
		h.index.Put(entity.id, newSlot)
	}

	h.purged += int64(removed)
	return removed
}
