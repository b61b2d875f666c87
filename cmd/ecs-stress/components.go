package main

import (
	"math/rand"

	"github.com/plus3/lazarus/ecs"
)

type Position struct {
	X, Y int
}

type Velocity struct {
	DX, DY int
}

type Health struct {
	ecs.Owner
	Current, Max int
}

type Lifetime struct {
	Ticks int
}

type Glyph rune

// Expired is emitted when an entity runs out of lifetime.
type Expired struct {
	Entity ecs.EntityId
}

// SpawnRandomEntity creates an entity with a Lifetime and up to four more
// randomly chosen components.
func SpawnRandomEntity(engine *ecs.Engine, rng *rand.Rand, extra int) *ecs.Entity {
	entity := engine.AddEntity()
	ecs.AddComponent(entity, Lifetime{Ticks: 1 + rng.Intn(200)})

	adders := []func(){
		func() { ecs.AddComponent(entity, Position{X: rng.Intn(80), Y: rng.Intn(25)}) },
		func() { ecs.AddComponent(entity, Velocity{DX: rng.Intn(3) - 1, DY: rng.Intn(3) - 1}) },
		func() { ecs.AddComponent(entity, Health{Current: 10, Max: 10}) },
		func() { ecs.AddComponent(entity, Glyph('a'+rune(rng.Intn(26)))) },
	}
	rng.Shuffle(len(adders), func(i, j int) { adders[i], adders[j] = adders[j], adders[i] })

	for i := 0; i < extra && i < len(adders); i++ {
		adders[i]()
	}
	return entity
}
