package ecs

import "iter"

// Query is a View whose results are collected once per frame. Declare it as
// an exported field on a System; the Scheduler binds it on Register and
// refreshes it right before the system runs.
type Query[T any] struct {
	view     *View[T]
	storage  *Storage
	matched  []*Archetype
	seen     int
	ids      []EntityId
	rows     []T
	prepared bool
}

// NewQuery creates a query outside of a scheduler. Call Refresh before
// iterating it.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.bind(storage)
	return q
}

func (q *Query[T]) bind(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.matched = nil
	q.seen = -1
	q.prepared = false
}

// Refresh re-collects matching entities. Archetype matching is redone only
// when new archetypes have appeared since the previous refresh.
func (q *Query[T]) Refresh() {
	archetypes := q.storage.Archetypes()
	if len(archetypes) != q.seen {
		q.matched = q.matched[:0]
		for _, archetype := range archetypes {
			if q.view.matches(archetype) {
				q.matched = append(q.matched, archetype)
			}
		}
		q.seen = len(archetypes)
	}

	q.ids = q.ids[:0]
	q.rows = q.rows[:0]
	for _, archetype := range q.matched {
		q.view.iterArchetype(archetype, func(id EntityId, row T) bool {
			q.ids = append(q.ids, id)
			q.rows = append(q.rows, row)
			return true
		})
	}
	q.prepared = true
}

// Len returns the number of entities collected by the last Refresh.
func (q *Query[T]) Len() int {
	return len(q.ids)
}

// Iter yields the entities collected by the last Refresh. It panics if the
// query has never been refreshed.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.prepared {
		panic("ecs: Query.Iter called before Query.Refresh")
	}
	return func(yield func(EntityId, T) bool) {
		for i := range q.ids {
			if !yield(q.ids[i], q.rows[i]) {
				return
			}
		}
	}
}

// Values is Iter without the entity ids.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.prepared {
		panic("ecs: Query.Values called before Query.Refresh")
	}
	return func(yield func(T) bool) {
		for _, row := range q.rows {
			if !yield(row) {
				return
			}
		}
	}
}
