package ecs

import (
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage owns every entity, component and singleton of one world.
type Storage struct {
	registry   *ComponentRegistry
	archetypes *intmap.Map[uint32, *Archetype]
	// order keeps archetypes in creation order so that iteration, and with it
	// draw order, is stable from frame to frame.
	order      []*Archetype
	singletons map[reflect.Type]*singletonEntry
}

type singletonEntry struct {
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// NewStorage creates an empty storage using the given registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		archetypes: intmap.New[uint32, *Archetype](16),
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Registry returns the registry the storage was built with.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// Spawn creates an entity from the given component values (or pointers to
// them). It panics on an empty list, a duplicated type, a reference-kind
// component, or an unregistered type.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("ecs: cannot spawn entity without components")
	}

	types := make([]reflect.Type, 0, len(components))
	for _, component := range components {
		t := componentType(component)
		switch t.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func:
			panic("ecs: components cannot be pointers, maps, channels, or functions")
		}
		for _, seen := range types {
			if seen == t {
				panic("ecs: duplicate component type " + t.String())
			}
		}
		types = append(types, t)
	}
	sortTypes(types)

	archetype := s.archetypeFor(types)
	return NewEntityId(archetype.id, archetype.spawn(components))
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	id := hashTypes(types)
	if archetype, ok := s.archetypes.Get(id); ok {
		return archetype
	}
	archetype := newArchetype(id, types, s.registry)
	s.archetypes.Put(id, archetype)
	s.order = append(s.order, archetype)
	return archetype
}

// Delete removes the entity. Deleting an unknown or dead id is a no-op.
func (s *Storage) Delete(id EntityId) {
	if archetype, ok := s.archetypes.Get(id.ArchetypeId()); ok {
		archetype.remove(id.Index())
	}
}

// Alive reports whether id names a live entity.
func (s *Storage) Alive(id EntityId) bool {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	return ok && archetype.alive(id.Index())
}

// GetComponent returns a pointer to the entity's component of type t, or nil.
func (s *Storage) GetComponent(id EntityId, t reflect.Type) any {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return nil
	}
	return archetype.Component(id.Index(), t)
}

// HasComponent reports whether the live entity id carries t.
func (s *Storage) HasComponent(id EntityId, t reflect.Type) bool {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	return ok && archetype.alive(id.Index()) && archetype.HasComponent(t)
}

// Archetypes returns every archetype in creation order.
func (s *Storage) Archetypes() []*Archetype {
	return s.order
}

// Archetype returns the archetype with the given id, or nil.
func (s *Storage) Archetype(id uint32) *Archetype {
	archetype, _ := s.archetypes.Get(id)
	return archetype
}

// AddSingleton stores value as the single instance of its type, replacing
// any previous instance in place so existing Singleton handles stay valid.
func (s *Storage) AddSingleton(value any) {
	t := componentType(value)
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	if entry, ok := s.singletons[t]; ok {
		entry.value.Elem().Set(v)
		return
	}

	ptr := reflect.New(t)
	ptr.Elem().Set(v)
	s.singletons[t] = &singletonEntry{
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	}
}

func (s *Storage) singleton(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// ComponentReader is implemented by anything that can resolve components.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's T component, or nil when it has none.
func ReadComponent[T any](reader ComponentReader, id EntityId) *T {
	component, _ := reader.GetComponent(id, reflect.TypeFor[T]()).(*T)
	return component
}
