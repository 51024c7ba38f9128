package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View iterates entities that hold every component named by T. T must be a
// struct whose fields are all pointers to component types, usually embedded:
//
//	ecs.NewView[struct {
//		*Position
//		*Velocity
//	}](storage)
//
// The pointers written into T address live component storage, so writes
// through them mutate the entity.
type View[T any] struct {
	storage *Storage
	types   []reflect.Type
	offsets []uintptr
}

// NewView builds a view over storage. It panics if T is not a struct of
// pointer fields.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("ecs: view type parameter must be a struct")
	}

	v := &View[T]{
		storage: storage,
		types:   make([]reflect.Type, 0, structType.NumField()),
		offsets: make([]uintptr, 0, structType.NumField()),
	}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Pointer {
			panic("ecs: view field " + field.Name + " must be a pointer type")
		}
		v.types = append(v.types, field.Type.Elem())
		v.offsets = append(v.offsets, field.Offset)
	}
	return v
}

func (v *View[T]) matches(archetype *Archetype) bool {
	for _, t := range v.types {
		if !archetype.HasComponent(t) {
			return false
		}
	}
	return true
}

// columnsFor maps each view field to its column in archetype.
func (v *View[T]) columnsFor(archetype *Archetype) []column {
	columns := make([]column, len(v.types))
	for i, t := range v.types {
		columns[i] = archetype.columns[archetype.columnIndex(t)]
	}
	return columns
}

func (v *View[T]) fill(dst *T, columns []column, index int) bool {
	base := unsafe.Pointer(dst)
	for i, c := range columns {
		component := c.get(index)
		if component == nil {
			return false
		}
		field := unsafe.Add(base, v.offsets[i])
		*(*unsafe.Pointer)(field) = (*iface)(unsafe.Pointer(&component)).data
	}
	return true
}

// Get returns the populated struct for id, or nil if the entity is dead or
// lacks one of the components.
func (v *View[T]) Get(id EntityId) *T {
	archetype := v.storage.Archetype(id.ArchetypeId())
	if archetype == nil || !v.matches(archetype) {
		return nil
	}

	var result T
	if !v.fill(&result, v.columnsFor(archetype), int(id.Index())) {
		return nil
	}
	return &result
}

// Iter yields every matching entity, archetypes in creation order and
// entities in slot order.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range v.storage.Archetypes() {
			if !v.matches(archetype) {
				continue
			}
			if !v.iterArchetype(archetype, yield) {
				return
			}
		}
	}
}

func (v *View[T]) iterArchetype(archetype *Archetype, yield func(EntityId, T) bool) bool {
	columns := v.columnsFor(archetype)
	for index := range archetype.columns[0].indices() {
		var result T
		if !v.fill(&result, columns, index) {
			continue
		}
		if !yield(NewEntityId(archetype.id, uint32(index)), result) {
			return false
		}
	}
	return true
}

// Values is Iter without the entity ids.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}
