package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/lazarus/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIds(t *testing.T) {
	seq := ecs.NewSequence(0)

	first := ecs.NewEntity(seq)
	second := ecs.NewEntity(seq)
	third := ecs.NewEntity(seq)

	assert.Equal(t, ecs.EntityId(1), first.Id())
	assert.Equal(t, first.Id()+1, second.Id())
	assert.Equal(t, first.Id()+2, third.Id())
	assert.Equal(t, ecs.EntityId(1), first.Id(), "existing ids never change")
}

func TestEntityIdsFromSeed(t *testing.T) {
	seq := ecs.NewSequence(41)

	entity := ecs.NewEntity(seq)

	assert.Equal(t, ecs.EntityId(42), entity.Id())
	assert.Equal(t, uint64(42), seq.Last())
}

func TestSequenceObserve(t *testing.T) {
	seq := ecs.NewSequence(0)

	seq.Observe(7)
	assert.Equal(t, uint64(8), seq.Next())

	seq.Observe(3)
	assert.Equal(t, uint64(9), seq.Next())
}

func TestNewEntityIsEmpty(t *testing.T) {
	entity := ecs.NewEntity(ecs.NewSequence(0))

	assert.False(t, ecs.Has[Position](entity))
	assert.False(t, ecs.Has[Velocity](entity))
	assert.False(t, entity.IsDeleted())
	assert.Zero(t, entity.ComponentCount())
	assert.Nil(t, ecs.Get[Position](entity))
}

func TestAddComponent(t *testing.T) {
	t.Run("struct component", func(t *testing.T) {
		entity := ecs.NewEntity(ecs.NewSequence(0))

		pos, err := ecs.AddComponent(entity, Position{X: 25})
		require.NoError(t, err)
		require.NotNil(t, pos)

		assert.True(t, ecs.Has[Position](entity))
		assert.Equal(t, 25, pos.X)
	})

	t.Run("empty component", func(t *testing.T) {
		entity := ecs.NewEntity(ecs.NewSequence(0))

		_, err := ecs.AddComponent(entity, PlayerController{})
		require.NoError(t, err)

		assert.True(t, ecs.Has[PlayerController](entity))
	})

	t.Run("primitive component", func(t *testing.T) {
		entity := ecs.NewEntity(ecs.NewSequence(0))

		_, err := ecs.AddComponent(entity, Score(32))
		require.NoError(t, err)
		_, err = ecs.AddComponent(entity, Tag("hero"))
		require.NoError(t, err)

		assert.Equal(t, Score(32), *ecs.Get[Score](entity))
		assert.Equal(t, Tag("hero"), *ecs.Get[Tag](entity))
		assert.Equal(t, 2, entity.ComponentCount())
	})

	t.Run("duplicate component keeps the original", func(t *testing.T) {
		entity := ecs.NewEntity(ecs.NewSequence(0))
		mustAdd(entity, Position{X: 1, Y: 2})

		pos, err := ecs.AddComponent(entity, Position{X: 9, Y: 9})

		assert.ErrorIs(t, err, ecs.ErrDuplicateComponent)
		assert.Nil(t, pos)
		assert.Equal(t, Position{X: 1, Y: 2}, *ecs.Get[Position](entity))
		assert.Equal(t, 1, entity.ComponentCount())
	})

	t.Run("distinct named types are distinct components", func(t *testing.T) {
		entity := ecs.NewEntity(ecs.NewSequence(0))
		mustAdd(entity, Tag("a"))

		_, err := ecs.AddComponent(entity, "plain string")

		assert.NoError(t, err)
		assert.True(t, ecs.Has[string](entity))
		assert.True(t, ecs.Has[Tag](entity))
	})
}

func TestRemoveComponent(t *testing.T) {
	t.Run("removing existing component", func(t *testing.T) {
		entity := ecs.NewEntity(ecs.NewSequence(0))
		mustAdd(entity, Position{})

		require.NoError(t, ecs.RemoveComponent[Position](entity))

		assert.False(t, ecs.Has[Position](entity))
		assert.Nil(t, ecs.Get[Position](entity))
	})

	t.Run("removing missing component", func(t *testing.T) {
		entity := ecs.NewEntity(ecs.NewSequence(0))
		mustAdd(entity, Position{})

		err := ecs.RemoveComponent[Velocity](entity)

		assert.ErrorIs(t, err, ecs.ErrMissingComponent)
		assert.True(t, ecs.Has[Position](entity))
	})

	t.Run("can add same type after removing", func(t *testing.T) {
		entity := ecs.NewEntity(ecs.NewSequence(0))
		mustAdd(entity, Position{X: 1})

		require.NoError(t, ecs.RemoveComponent[Position](entity))
		_, err := ecs.AddComponent(entity, Position{X: 99})

		require.NoError(t, err)
		assert.Equal(t, 99, ecs.Get[Position](entity).X)
	})
}

func TestGetComponentAliases(t *testing.T) {
	entity := ecs.NewEntity(ecs.NewSequence(0))
	mustAdd(entity, Name{Value: "test"})

	ecs.Get[Name](entity).Value = "changed"

	assert.Equal(t, "changed", ecs.Get[Name](entity).Value)
	assert.Same(t, ecs.Get[Name](entity), ecs.Get[Name](entity))
}

func TestAddComponentReturnsStoredCopy(t *testing.T) {
	entity := ecs.NewEntity(ecs.NewSequence(0))
	original := Position{X: 1}

	stored := mustAdd(entity, original)
	stored.X = 5

	assert.Equal(t, 1, original.X)
	assert.Same(t, stored, ecs.Get[Position](entity))
}

func TestComponentOwner(t *testing.T) {
	seq := ecs.NewSequence(0)
	entity := ecs.NewEntity(seq)

	health := mustAdd(entity, Health{Current: 10, Max: 10})

	assert.Equal(t, entity.Id(), health.OwnerId())
	assert.Equal(t, ecs.EntityId(0), Health{}.OwnerId())
}

func TestHasMultipleComponents(t *testing.T) {
	entity := ecs.NewEntity(ecs.NewSequence(0))
	mustAdd(entity, Position{})
	mustAdd(entity, Velocity{})

	assert.True(t, ecs.Has2[Position, Velocity](entity))
	assert.False(t, ecs.Has2[Position, Health](entity))
	assert.False(t, ecs.Has3[Position, Velocity, Health](entity))

	mustAdd(entity, Health{})
	assert.True(t, ecs.Has3[Position, Velocity, Health](entity))

	assert.True(t, entity.HasTypes(reflect.TypeFor[Position](), reflect.TypeFor[Velocity]()))
	assert.False(t, entity.HasTypes(reflect.TypeFor[Position](), reflect.TypeFor[Name]()))
	assert.True(t, entity.HasTypes(), "empty conjunction holds")
}

func TestComponentTypes(t *testing.T) {
	entity := ecs.NewEntity(ecs.NewSequence(0))
	mustAdd(entity, Position{})
	mustAdd(entity, Score(1))

	assert.ElementsMatch(t,
		[]reflect.Type{reflect.TypeFor[Position](), reflect.TypeFor[Score]()},
		entity.ComponentTypes())
}

func TestMarkForDeletion(t *testing.T) {
	entity := ecs.NewEntity(ecs.NewSequence(0))
	mustAdd(entity, Position{X: 3})

	entity.MarkForDeletion()

	assert.True(t, entity.IsDeleted())
	assert.Equal(t, 3, ecs.Get[Position](entity).X, "deletion is not applied until collection")
}
