package main

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/plus3/lazarus/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()

	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)
}

func TestSimulationKeepsPopulationStable(t *testing.T) {
	engine := ecs.NewEngine()
	rng := rand.New(rand.NewSource(1))
	respawner := RegisterSystems(engine, rng)

	for i := 0; i < 100; i++ {
		SpawnRandomEntity(engine, rng, rng.Intn(5))
	}

	for i := 0; i < 250; i++ {
		engine.Update()
	}

	// Every lifetime is at most 200 ticks, so every initial entity expired
	// and was replaced one for one.
	assert.Equal(t, 100, engine.Entities().Len())
	assert.GreaterOrEqual(t, respawner.Spawned, 100)
	assert.Equal(t, int64(respawner.Spawned), engine.Entities().CollectStats().TotalPurged)
}

func TestReportGenerate(t *testing.T) {
	engine := ecs.NewEngine()
	rng := rand.New(rand.NewSource(7))
	RegisterSystems(engine, rng)
	for i := 0; i < 10; i++ {
		SpawnRandomEntity(engine, rng, 4)
	}
	engine.Update()

	report := &Report{
		Duration: time.Second,
		Entities: 10,
		Seed:     7,
		Engine:   engine.Stats(),
		Storage:  engine.Entities().CollectStats(),
	}

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# ECS Stress Test Report")
	assert.Contains(t, out, "| MovementSystem | 1 |")
	assert.Contains(t, out, "main.Lifetime: 10")
}
