package schema

import (
	"encoding/json"
	"reflect"
	"slices"
)

// Normalize converts plain Go values into decoded document values. Maps become
// objects with their keys sorted since Go maps have no order, every integer and
// float type becomes float64 and every slice or array becomes []any. A map or
// slice that contains itself is cut off at the repeat and replaced with nil.
func Normalize(v any) any {
	return normalize(reflect.ValueOf(v), map[uintptr]bool{})
}

func normalize(rv reflect.Value, visiting map[uintptr]bool) any {
	if !rv.IsValid() {
		return nil
	}
	switch val := rv.Interface().(type) {
	case *Object:
		return val
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return string(val)
		}
		return f
	}

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem(), visiting)
	case reflect.Slice:
		if rv.IsNil() {
			return []any{}
		}
		ptr := rv.Pointer()
		if visiting[ptr] {
			return nil
		}
		visiting[ptr] = true
		defer delete(visiting, ptr)
		return normalizeList(rv, visiting)
	case reflect.Array:
		return normalizeList(rv, visiting)
	case reflect.Map:
		if rv.IsNil() {
			return NewObject()
		}
		ptr := rv.Pointer()
		if visiting[ptr] {
			return nil
		}
		visiting[ptr] = true
		defer delete(visiting, ptr)
		return normalizeMap(rv, visiting)
	default:
		return nil
	}
}

func normalizeList(rv reflect.Value, visiting map[uintptr]bool) []any {
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = normalize(rv.Index(i), visiting)
	}
	return items
}

func normalizeMap(rv reflect.Value, visiting map[uintptr]bool) *Object {
	keys := make([]string, 0, rv.Len())
	values := make(map[string]reflect.Value, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, ok := iter.Key().Interface().(string)
		if !ok {
			if iter.Key().Kind() != reflect.String {
				continue
			}
			key = iter.Key().String()
		}
		keys = append(keys, key)
		values[key] = iter.Value()
	}
	slices.Sort(keys)
	obj := NewObject()
	for _, key := range keys {
		obj.Set(key, normalize(values[key], visiting))
	}
	return obj
}
