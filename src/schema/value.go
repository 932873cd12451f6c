// Package schema holds the decoded form of a schema document. JSON objects are
// kept as ordered *Object values because the order of declared properties is
// the order of the generated object members. Every decoded value is one of nil,
// bool, float64, string, []any or *Object.
package schema

import "slices"

type (
	// Object is a JSON object that remembers the order of its keys.
	Object struct {
		keys   []string
		values map[string]any
	}
	// Member is a single key value pair of an Object.
	Member struct {
		Key   string
		Value any
	}
)

// NewObject creates an object from members in order. Later duplicates replace
// the value of the earlier key but keep its position.
func NewObject(members ...Member) *Object {
	obj := &Object{values: make(map[string]any, len(members))}
	for _, m := range members {
		obj.Set(m.Key, m.Value)
	}
	return obj
}

// Set stores value under key, appending the key if it is new.
func (o *Object) Set(key string, value any) {
	if o.values == nil {
		o.values = map[string]any{}
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value for key and whether the key was present. A key that is
// present with a null value returns (nil, true).
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	val, ok := o.values[key]
	return val, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Keys returns the keys in document order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// Members returns the key value pairs in document order.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	members := make([]Member, len(o.keys))
	for i, key := range o.keys {
		members[i] = Member{Key: key, Value: o.values[key]}
	}
	return members
}

// Len is the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// AsObject returns v as an object if it is one.
func AsObject(v any) (*Object, bool) {
	obj, ok := v.(*Object)
	return obj, ok && obj != nil
}

// AsArray returns v as an array if it is one.
func AsArray(v any) ([]any, bool) {
	arr, ok := v.([]any)
	return arr, ok
}

// AsString returns v as a string if it is one.
func AsString(v any) (string, bool) {
	str, ok := v.(string)
	return str, ok
}
