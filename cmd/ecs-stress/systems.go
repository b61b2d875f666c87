package main

import (
	"math/rand"

	"github.com/plus3/lazarus/ecs"
)

const (
	mapWidth  = 80
	mapHeight = 25
)

// MovementSystem moves entities and wraps them around the map edges.
type MovementSystem struct {
	ecs.System
	Movers ecs.Query[struct {
		*Position
		*Velocity
	}]
}

func (s *MovementSystem) Update(engine *ecs.Engine) {
	for item := range s.Movers.Values() {
		item.Position.X = (item.Position.X + item.Velocity.DX + mapWidth) % mapWidth
		item.Position.Y = (item.Position.Y + item.Velocity.DY + mapHeight) % mapHeight
	}
}

// AgingSystem counts down lifetimes and retires expired entities.
type AgingSystem struct {
	ecs.System
	Aging ecs.Query[struct{ *Lifetime }]
}

func (s *AgingSystem) Update(engine *ecs.Engine) {
	for entity, item := range s.Aging.Iter() {
		item.Lifetime.Ticks--
		if item.Lifetime.Ticks > 0 {
			continue
		}
		entity.MarkForDeletion()
		ecs.Emit(engine, Expired{Entity: entity.Id()})
	}
}

// DecaySystem drains health of entities standing on the top row.
type DecaySystem struct {
	ecs.System
	Exposed ecs.Query[struct {
		*Position
		*Health
	}]
}

func (s *DecaySystem) Update(engine *ecs.Engine) {
	for entity, item := range s.Exposed.Iter() {
		if item.Position.Y != 0 {
			continue
		}
		item.Health.Current--
		if item.Health.Current <= 0 && !entity.IsDeleted() {
			entity.MarkForDeletion()
			ecs.Emit(engine, Expired{Entity: item.Health.OwnerId()})
		}
	}
}

// Respawner keeps the population stable by spawning a replacement for every
// expired entity.
type Respawner struct {
	ecs.System
	rng     *rand.Rand
	Spawned int
}

func (r *Respawner) Receive(engine *ecs.Engine, event Expired) {
	SpawnRandomEntity(engine, r.rng, r.rng.Intn(5))
	r.Spawned++
}

// RegisterSystems wires the stress test systems into the engine.
func RegisterSystems(engine *ecs.Engine, rng *rand.Rand) *Respawner {
	engine.AddUpdateable(&MovementSystem{System: ecs.NewSystem(engine)})
	engine.AddUpdateable(&DecaySystem{System: ecs.NewSystem(engine)})
	engine.AddUpdateable(&AgingSystem{System: ecs.NewSystem(engine)})

	respawner := &Respawner{System: ecs.NewSystem(engine), rng: rng}
	ecs.SubscribeSystem[Expired](&respawner.System, respawner)
	return respawner
}
