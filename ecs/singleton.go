package ecs

import (
	"reflect"
	"unsafe"
)

// Singleton gives typed access to a value that belongs to the world rather
// than to any entity, such as configuration or input state.
type Singleton[T any] struct {
	storage *Storage
	ptr     unsafe.Pointer
}

// NewSingleton returns a handle for T, creating the value from initializer
// (or the zero value) if the storage does not hold one yet.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	if storage.singleton(reflect.TypeFor[T]()) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}

	s := &Singleton[T]{}
	s.bind(storage)
	return s
}

func (s *Singleton[T]) bind(storage *Storage) {
	s.storage = storage
	s.ptr = nil
}

// Get returns the value, or nil if it has not been added to the storage.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil && s.storage != nil {
		if entry := s.storage.singleton(reflect.TypeFor[T]()); entry != nil {
			s.ptr = entry.dataPtr
		}
	}
	return (*T)(s.ptr)
}

// Exists reports whether the storage holds a T.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
