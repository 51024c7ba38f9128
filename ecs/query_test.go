package ecs_test

import (
	"testing"

	"github.com/plus3/pong/ecs"
	"github.com/stretchr/testify/assert"
)

func TestQuery(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 0.5, DY: 0.5})
	storage.Spawn(Position{X: 3, Y: 4}, Velocity{DX: 1.0, DY: 1.0})
	storage.Spawn(Position{X: 5, Y: 6}, Velocity{DX: 1.5, DY: 1.5}, Health{Current: 100, Max: 100})
	storage.Spawn(Position{X: 7, Y: 8})

	query := ecs.NewQuery[movable](storage)

	t.Run("refresh collects matches", func(t *testing.T) {
		query.Refresh()
		assert.Equal(t, 3, query.Len())
	})

	t.Run("panics without refresh", func(t *testing.T) {
		fresh := ecs.NewQuery[movable](storage)
		assert.Panics(t, func() { fresh.Iter() })
		assert.Panics(t, func() { fresh.Values() })
	})

	t.Run("iterations are stable between refreshes", func(t *testing.T) {
		query.Refresh()

		var first, second []ecs.EntityId
		for id := range query.Iter() {
			first = append(first, id)
		}
		for id := range query.Iter() {
			second = append(second, id)
		}
		assert.Equal(t, first, second)
	})

	t.Run("new archetypes are picked up", func(t *testing.T) {
		storage.Spawn(Position{}, Velocity{}, Name("late"))
		assert.Equal(t, 3, query.Len(), "not visible before refresh")

		query.Refresh()
		assert.Equal(t, 4, query.Len())
	})

	t.Run("deleted entities drop out", func(t *testing.T) {
		query.Refresh()
		var victim ecs.EntityId
		for id := range query.Iter() {
			victim = id
			break
		}
		storage.Delete(victim)

		query.Refresh()
		for id := range query.Iter() {
			assert.NotEqual(t, victim, id)
		}
		assert.Equal(t, 3, query.Len())
	})
}
