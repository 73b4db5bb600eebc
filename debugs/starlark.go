package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// toStarlarkValue converts engine snapshots and helper functions into starlark values.
// Named types with a String method become strings, structs become dicts keyed by exported field names.
func toStarlarkValue(v any) starlark.Value {
	if v == nil {
		return starlark.None
	}

	switch v := v.(type) {
	case starlark.Value:
		return v
	case []byte:
		return starlark.Bytes(v)
	case string:
		return starlark.String(v)
	}

	value := reflect.ValueOf(v)
	if stringer, ok := v.(fmt.Stringer); ok && value.Kind() != reflect.Pointer && value.Kind() != reflect.Struct {
		return starlark.String(stringer.String())
	}

	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(typ.NumField())
		for i := range typ.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlarkValue(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return starlark.None
		}
		return toStarlarkValue(value.Elem().Interface())

	case reflect.Func:
		if value.IsNil() {
			return starlark.None
		}
		return starlarkutil.MakeFunc("", v)

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

func toStringDict(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}
