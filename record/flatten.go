package record

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"openreaction.dev/ordkit/reaction"
)

// The REACTION section stores the reaction message as dotted-path pairs:
// struct fields contribute their ord tag, repeated fields their index and
// map fields their escaped key, e.g.
//
//	identifiers.0.type: REACTION_SMILES
//	inputs.ethanol.components.0.identifiers.0.value: CCO
//
// Pairs sort lexicographically in the rendered section; Unflatten accepts
// them in any order, so the byte-level canonical form stays stable.

type knownValuer interface{ KnownValue() bool }

// Flatten converts a reaction message into dotted-path pairs. Unset fields
// produce no pair. Enum values outside the stable name tables are rejected
// because they cannot be restored.
func Flatten(r *reaction.Reaction) (map[string]string, error) {
	out := make(map[string]string)
	if r == nil {
		return out, nil
	}
	if err := flattenValue(out, "", reflect.ValueOf(r).Elem()); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenValue(out map[string]string, prefix string, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return flattenValue(out, prefix, v.Elem())

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("ord")
			if tag == "" {
				continue
			}
			if err := flattenValue(out, joinPath(prefix, tag), v.Field(i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			if v.Len() > 0 {
				out[prefix] = base64.StdEncoding.EncodeToString(v.Bytes())
			}
			return nil
		}
		for i := 0; i < v.Len(); i++ {
			if err := flattenValue(out, joinPath(prefix, strconv.Itoa(i)), v.Index(i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		keys := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		for _, k := range keys {
			if k == "" || !isASCII(k) {
				return newError(KindFlatten, "ORD-FLAT-001", fmt.Sprintf("unencodable map key %q at %s", k, prefix))
			}
			ek := escapeMapKey(k)
			if err := flattenValue(out, joinPath(prefix, ek), v.MapIndex(reflect.ValueOf(k))); err != nil {
				return err
			}
		}
		return nil

	case reflect.String:
		if s := v.String(); s != "" {
			out[prefix] = encodeValue(s)
		}
		return nil

	case reflect.Bool:
		out[prefix] = strconv.FormatBool(v.Bool())
		return nil

	case reflect.Float64:
		out[prefix] = strconv.FormatFloat(v.Float(), 'g', -1, 64)
		return nil

	case reflect.Int32:
		if kv, ok := v.Interface().(knownValuer); ok {
			if v.Int() == 0 {
				return nil
			}
			if !kv.KnownValue() {
				return newError(KindFlatten, "ORD-FLAT-002", fmt.Sprintf("unknown enum value %d at %s", v.Int(), prefix))
			}
			out[prefix] = fmt.Sprintf("%v", v.Interface())
			return nil
		}
		if v.Int() != 0 {
			out[prefix] = strconv.FormatInt(v.Int(), 10)
		}
		return nil

	default:
		return newError(KindFlatten, "ORD-FLAT-003", fmt.Sprintf("unsupported field kind %s at %s", v.Kind(), prefix))
	}
}

// Unflatten rebuilds a reaction message from dotted-path pairs. Repeated
// fields must use dense indices starting at 0: Flatten never emits a gap, so
// a pair set with one is not the image of any message and is rejected.
func Unflatten(pairs map[string]string) (*reaction.Reaction, error) {
	r := &reaction.Reaction{}
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := assign(reflect.ValueOf(r).Elem(), strings.Split(k, "."), pairs[k]); err != nil {
			return nil, wrapError(KindFlatten, "ORD-FLAT-010", "cannot restore "+k, err)
		}
	}
	if path, sparse := sparsePath(reflect.ValueOf(r).Elem(), ""); sparse {
		return nil, newError(KindFlatten, "ORD-FLAT-011", "sparse repeated field entry at "+path)
	}
	return r, nil
}

// sparsePath finds the first repeated-field entry no pair assigned: a nil
// submessage or empty string inside a slice. Skipped indices leave exactly
// these behind, and downstream consumers assume slice entries are populated.
func sparsePath(v reflect.Value, prefix string) (string, bool) {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return "", false
		}
		return sparsePath(v.Elem(), prefix)

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("ord")
			if tag == "" {
				continue
			}
			if p, sparse := sparsePath(v.Field(i), joinPath(prefix, tag)); sparse {
				return p, true
			}
		}
		return "", false

	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return "", false
		}
		for i := 0; i < v.Len(); i++ {
			e := v.Index(i)
			p := joinPath(prefix, strconv.Itoa(i))
			switch e.Kind() {
			case reflect.Pointer:
				if e.IsNil() {
					return p, true
				}
			case reflect.String:
				if e.String() == "" {
					return p, true
				}
			}
			if p2, sparse := sparsePath(e, p); sparse {
				return p2, true
			}
		}
		return "", false

	case reflect.Map:
		keys := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		for _, k := range keys {
			ek := escapeMapKey(k)
			if p, sparse := sparsePath(v.MapIndex(reflect.ValueOf(k)), joinPath(prefix, ek)); sparse {
				return p, true
			}
		}
		return "", false

	default:
		return "", false
	}
}

func assign(v reflect.Value, path []string, val string) error {
	if len(path) == 0 {
		return setLeaf(v, val)
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return assign(v.Elem(), path, val)

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).Tag.Get("ord") == path[0] {
				return assign(v.Field(i), path[1:], val)
			}
		}
		return fmt.Errorf("%s has no field %s", t.Name(), path[0])

	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return fmt.Errorf("bytes field cannot be indexed")
		}
		i, err := strconv.Atoi(path[0])
		if err != nil || i < 0 {
			return fmt.Errorf("invalid index %q", path[0])
		}
		for v.Len() <= i {
			v.Set(reflect.Append(v, reflect.Zero(v.Type().Elem())))
		}
		return assign(v.Index(i), path[1:], val)

	case reflect.Map:
		key, err := unescapeMapKey(path[0])
		if err != nil {
			return fmt.Errorf("invalid map key %q: %w", path[0], err)
		}
		if v.IsNil() {
			v.Set(reflect.MakeMap(v.Type()))
		}
		elemType := v.Type().Elem()
		if elemType.Kind() == reflect.Pointer {
			ev := v.MapIndex(reflect.ValueOf(key))
			if !ev.IsValid() || ev.IsNil() {
				ev = reflect.New(elemType.Elem())
			}
			if err := assign(ev.Elem(), path[1:], val); err != nil {
				return err
			}
			v.SetMapIndex(reflect.ValueOf(key), ev)
			return nil
		}
		tmp := reflect.New(elemType).Elem()
		if ev := v.MapIndex(reflect.ValueOf(key)); ev.IsValid() {
			tmp.Set(ev)
		}
		if err := assign(tmp, path[1:], val); err != nil {
			return err
		}
		v.SetMapIndex(reflect.ValueOf(key), tmp)
		return nil

	default:
		return fmt.Errorf("cannot descend into %s", v.Kind())
	}
}

func setLeaf(v reflect.Value, val string) error {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return setLeaf(v.Elem(), val)
	}
	if v.CanAddr() {
		if u, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return u.UnmarshalText([]byte(val))
		}
	}

	switch v.Kind() {
	case reflect.String:
		s, err := decodeValue(val)
		if err != nil {
			return err
		}
		v.SetString(s)
		return nil
	case reflect.Bool:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return err
		}
		v.SetBool(b)
		return nil
	case reflect.Float64:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return err
		}
		v.SetFloat(f)
		return nil
	case reflect.Int32:
		i, err := strconv.ParseInt(val, 10, 32)
		if err != nil {
			return err
		}
		v.SetInt(i)
		return nil
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.Uint8 {
			return fmt.Errorf("cannot set slice leaf")
		}
		b, err := base64.StdEncoding.DecodeString(val)
		if err != nil {
			return err
		}
		v.SetBytes(b)
		return nil
	default:
		return fmt.Errorf("cannot set leaf of kind %s", v.Kind())
	}
}

func joinPath(prefix, elem string) string {
	if prefix == "" {
		return elem
	}
	return prefix + "." + elem
}

// Map keys are query-escaped so they cannot collide with the path and
// key-value syntax; '.' is escaped on top because it is the path separator.
func escapeMapKey(k string) string {
	return strings.ReplaceAll(url.QueryEscape(k), ".", "%2E")
}

func unescapeMapKey(k string) (string, error) {
	return url.QueryUnescape(k)
}

// String values that would break the single-line canonical form are quoted.
func encodeValue(s string) string {
	if strings.ContainsAny(s, "\n\r\t") ||
		strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") ||
		strings.HasPrefix(s, `"`) {
		return strconv.Quote(s)
	}
	return s
}

func decodeValue(s string) (string, error) {
	if strings.HasPrefix(s, `"`) {
		return strconv.Unquote(s)
	}
	return s, nil
}
