package ecs

import (
	"iter"
	"reflect"
	"slices"
	"strings"
	"unsafe"
)

// Archetype stores every entity that has exactly one particular set of
// component types. Columns are kept in lockstep, so a slot index addresses
// the same entity in each of them.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []column
}

func newArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]column, len(types)),
	}
	for i, t := range types {
		a.columns[i] = registry.newColumn(t)
	}
	return a
}

// ID returns the archetype's hash id.
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the component types of this archetype sorted by name.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].count()
}

// HasComponent reports whether the archetype carries t.
func (a *Archetype) HasComponent(t reflect.Type) bool {
	return slices.Contains(a.types, t)
}

func (a *Archetype) columnIndex(t reflect.Type) int {
	return slices.Index(a.types, t)
}

// spawn appends one entity. components must already match a.types one for one.
func (a *Archetype) spawn(components []any) uint32 {
	var slot int
	for _, component := range components {
		slot = a.columns[a.columnIndex(componentType(component))].append(component)
	}
	return uint32(slot)
}

// Component returns a pointer to the entity's component of type t, or nil.
func (a *Archetype) Component(index uint32, t reflect.Type) any {
	i := a.columnIndex(t)
	if i == -1 {
		return nil
	}
	return a.columns[i].get(int(index))
}

func (a *Archetype) remove(index uint32) {
	for _, c := range a.columns {
		c.remove(int(index))
	}
}

func (a *Archetype) alive(index uint32) bool {
	return len(a.columns) > 0 && a.columns[0].has(int(index))
}

// Iter yields the id of every live entity in slot order.
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for index := range a.columns[0].indices() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}

// String renders the component set, e.g. "pong.Position,pong.Velocity".
func (a *Archetype) String() string {
	names := make([]string, len(a.types))
	for i, t := range a.types {
		names[i] = t.String()
	}
	return strings.Join(names, ",")
}

func componentType(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// sortTypes orders component types by name so that any permutation of the
// same set hashes to the same archetype.
func sortTypes(types []reflect.Type) {
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})
}

// iface mirrors the runtime layout of an interface value.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// hashTypes is FNV-1a over the runtime type pointers of a sorted type set.
func hashTypes(types []reflect.Type) uint32 {
	var h uint32 = 2166136261
	const prime uint32 = 16777619

	for _, t := range types {
		ptr := uintptr((*iface)(unsafe.Pointer(&t)).data)
		v := uint32(ptr)
		if unsafe.Sizeof(ptr) == 8 {
			v ^= uint32(uint64(ptr) >> 32)
		}
		h ^= v
		h *= prime
	}
	return h
}
