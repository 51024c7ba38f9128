package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

// FieldInfo describes one exported field of a component struct.
type FieldInfo struct {
	Name  string
	Type  reflect.Type
	Index int
}

// Editable reports whether the inspector offers an input widget for f.
func (f FieldInfo) Editable() bool {
	switch f.Type.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

type fieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]FieldInfo
}

var fieldsByType = &fieldCache{fields: make(map[reflect.Type][]FieldInfo)}

// Fields returns the exported fields of t, or nil if t is not a struct.
func Fields(t reflect.Type) []FieldInfo {
	fieldsByType.mu.RLock()
	cached, ok := fieldsByType.fields[t]
	fieldsByType.mu.RUnlock()
	if ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, FieldInfo{Name: field.Name, Type: field.Type, Index: i})
		}
	}

	fieldsByType.mu.Lock()
	fieldsByType.fields[t] = fields
	fieldsByType.mu.Unlock()
	return fields
}

// fieldValue returns the settable value of field f inside the component that
// ptr points to.
func fieldValue(ptr any, f FieldInfo) reflect.Value {
	return reflect.ValueOf(ptr).Elem().Field(f.Index)
}

// SetNumber writes v into a numeric field, converting to the field's type.
func SetNumber(ptr any, f FieldInfo, v float64) error {
	field := fieldValue(ptr, f)
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		field.SetFloat(v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		field.SetInt(int64(v))
	default:
		return fmt.Errorf("field %s is %s, not a number", f.Name, field.Kind())
	}
	return nil
}

// SetBool writes v into a bool field.
func SetBool(ptr any, f FieldInfo, v bool) error {
	field := fieldValue(ptr, f)
	if field.Kind() != reflect.Bool {
		return fmt.Errorf("field %s is %s, not a bool", f.Name, field.Kind())
	}
	field.SetBool(v)
	return nil
}

// FormatField renders a read-only field value.
func FormatField(ptr any, f FieldInfo) string {
	field := fieldValue(ptr, f)
	switch field.Kind() {
	case reflect.Func:
		if field.IsNil() {
			return "nil func"
		}
		return "func"
	case reflect.Slice, reflect.Map:
		return fmt.Sprintf("[%d items]", field.Len())
	default:
		return fmt.Sprintf("%v", field.Interface())
	}
}
