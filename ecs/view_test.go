package ecs_test

import (
	"testing"

	"github.com/plus3/pong/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movable struct {
	*Position
	*Velocity
}

func TestViewIterMatchesSupersets(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1}, Velocity{DX: 1})
	storage.Spawn(Position{X: 2}, Velocity{DX: 1}, Health{Current: 5})
	storage.Spawn(Position{X: 3})
	storage.Spawn(Velocity{DX: 9})

	view := ecs.NewView[movable](storage)

	var xs []float32
	for _, item := range view.Iter() {
		xs = append(xs, item.Position.X)
	}
	assert.Equal(t, []float32{1, 2}, xs)
}

func TestViewWritesThrough(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1, Y: 1}, Velocity{DX: 2, DY: 3})
	view := ecs.NewView[movable](storage)

	for item := range view.Values() {
		item.Position.X += item.Velocity.DX
		item.Position.Y += item.Velocity.DY
	}

	assert.Equal(t, Position{X: 3, Y: 4}, *ecs.ReadComponent[Position](storage, id))
}

func TestViewGet(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	full := storage.Spawn(Position{X: 5}, Velocity{DX: 1})
	partial := storage.Spawn(Position{X: 6})
	view := ecs.NewView[movable](storage)

	item := view.Get(full)
	require.NotNil(t, item)
	assert.Equal(t, float32(5), item.Position.X)

	assert.Nil(t, view.Get(partial))

	storage.Delete(full)
	assert.Nil(t, view.Get(full))
	assert.Nil(t, view.Get(ecs.NewEntityId(1, 1)))
}

func TestViewSkipsDeleted(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{X: 1})
	storage.Spawn(Position{X: 2})
	storage.Delete(a)

	count := 0
	for range ecs.NewView[struct{ *Position }](storage).Iter() {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestViewEarlyBreak(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	for range 10 {
		storage.Spawn(Position{})
	}

	count := 0
	for range ecs.NewView[struct{ *Position }](storage).Iter() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestNewViewPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { ecs.NewView[Position](storage) })
	assert.Panics(t, func() {
		ecs.NewView[struct {
			P Position
		}](storage)
	})
}
