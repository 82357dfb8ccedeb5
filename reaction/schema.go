package reaction

import (
	"fmt"
	"reflect"
	"sort"
)

// Message-level helpers: field enumeration, presence queries and the
// initialization check. Field names are the snake_case strings carried in
// ord struct tags.

// MessageName returns the schema name of a message value, e.g. "Reaction".
func MessageName(msg any) string {
	t := reflect.TypeOf(msg)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return ""
	}
	return t.Name()
}

// Fields returns the sorted field names of a message.
func Fields(msg any) []string {
	t := reflect.TypeOf(msg)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	var names []string
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("ord"); tag != "" {
			names = append(names, tag)
		}
	}
	sort.Strings(names)
	return names
}

// HasField reports whether the named optional field is set on the message.
// Unknown field names are an error, as are fields that do not track presence
// (plain scalars, repeated fields, maps).
func HasField(msg any, name string) (bool, error) {
	v := reflect.ValueOf(msg)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return false, fmt.Errorf("reaction: nil %s message", MessageName(msg))
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return false, fmt.Errorf("reaction: %T is not a message", msg)
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("ord") != name {
			continue
		}
		f := v.Field(i)
		if f.Kind() != reflect.Pointer {
			return false, fmt.Errorf("reaction: field %s of %s does not track presence", name, t.Name())
		}
		return !f.IsNil(), nil
	}
	return false, fmt.Errorf("reaction: %s has no field %s", t.Name(), name)
}

type knownValuer interface {
	KnownValue() bool
}

// IsInitialized reports whether every enum field reachable from the message
// holds a known value. Messages are always structurally complete (optional
// fields may be unset); an out-of-range enum number is the one way a record
// in memory can be incomplete.
func IsInitialized(msg any) bool {
	return initialized(reflect.ValueOf(msg))
}

// IsInitialized on Reaction mirrors the message-level completeness check.
func (r *Reaction) IsInitialized() bool { return IsInitialized(r) }

func initialized(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return true
		}
		return initialized(v.Elem())
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !initialized(v.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !initialized(v.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		for _, k := range v.MapKeys() {
			if !initialized(v.MapIndex(k)) {
				return false
			}
		}
		return true
	default:
		if v.CanInterface() {
			if kv, ok := v.Interface().(knownValuer); ok {
				return kv.KnownValue()
			}
		}
		return true
	}
}
