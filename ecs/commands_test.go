package ecs_test

import (
	"testing"

	"github.com/plus3/pong/ecs"
	"github.com/stretchr/testify/assert"
)

type spawnSystem struct{}

func (s *spawnSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 0.5})
	frame.Commands.Spawn(Position{X: 3, Y: 4})
}

type countSystem struct {
	Positions ecs.Query[struct{ *Position }]
	seen      []int
}

func (s *countSystem) Execute(frame *ecs.UpdateFrame) {
	s.seen = append(s.seen, s.Positions.Len())
}

type deleteSystem struct {
	target ecs.EntityId
}

func (s *deleteSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Delete(s.target)
}

func TestCommandsApplyAfterFrame(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	counter := &countSystem{}
	scheduler.Register(&spawnSystem{})
	scheduler.Register(counter)

	scheduler.Once(0)
	scheduler.Once(0)

	// Spawns from frame one become visible in frame two.
	assert.Equal(t, []int{0, 2}, counter.seen)
	assert.Equal(t, 4, storage.CollectStats().TotalEntityCount)
}

func TestCommandsDelete(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	target := storage.Spawn(Position{})
	keep := storage.Spawn(Position{})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&deleteSystem{target: target})
	scheduler.Once(0)

	assert.False(t, storage.Alive(target))
	assert.True(t, storage.Alive(keep))
}

func TestCommandsDeferRunsLast(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var commands ecs.Commands
	var entitiesAtDefer int
	commands.Spawn(Position{})
	commands.Defer(func() {
		entitiesAtDefer = storage.CollectStats().TotalEntityCount
	})
	assert.True(t, commands.Pending())

	commands.Flush(storage)

	assert.Equal(t, 1, entitiesAtDefer)
	assert.False(t, commands.Pending())
}
