package ir

import (
	"fmt"
	"reflect"
	"sort"
)

// FromAny converts a native Go value to a Node. Exactly one category
// may claim a value, resolved in fixed priority order: string-like,
// then object-like (maps with string keys), then array-like (slices
// and arrays), then bool, then nil, then anything numerically
// convertible. []byte counts as string-like.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case Node:
		return &x, nil
	case string:
		return FromString(x), nil
	case []byte:
		return FromString(string(x)), nil
	case bool:
		return FromBool(x), nil
	case float64:
		return FromFloat(x), nil
	case int:
		return FromInt(int64(x)), nil
	case map[string]any:
		return fromAnyMap(x)
	case []any:
		return fromAnySlice(x)
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromAnyMap(m map[string]any) (*Node, error) {
	res := &Node{Type: ObjectType}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v, err := FromAny(m[k])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		res.Set(k, v)
	}
	return res, nil
}

func fromAnySlice(s []any) (*Node, error) {
	res := &Node{Type: ArrayType}
	for i, e := range s {
		v, err := FromAny(e)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		res.Append(v)
	}
	return res, nil
}

func fromReflect(rv reflect.Value) (*Node, error) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Null(), nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrConvert, rv.Type().Key())
		}
		res := &Node{Type: ObjectType}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		for _, k := range keys {
			v, err := fromReflect(rv.MapIndex(k))
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k.String(), err)
			}
			res.Set(k.String(), v)
		}
		return res, nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return FromString(string(rv.Bytes())), nil
		}
		res := &Node{Type: ArrayType}
		for i := range rv.Len() {
			v, err := fromReflect(rv.Index(i))
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			res.Append(v)
		}
		return res, nil
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.Invalid:
		return Null(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return FromFloat(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrConvert, rv.Type())
	}
}
