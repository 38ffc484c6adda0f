package dsl

import (
	"reflect"

	"github.com/reoring/runtype"
	js "github.com/reoring/runtype/jsonschema"
)

// Array returns a codec for sequences whose elements are decoded by elem.
// Every element is decoded; failures of all elements are accumulated in index
// order. A non-array input fails once, without per-index errors.
func Array[O, I any](elem runtype.Codec[O, I]) runtype.Codec[[]O, []I] {
	return runtype.New[[]O, []I](
		"Array<"+elem.Name()+">",
		func(v any) bool {
			xs, ok := v.([]O)
			if !ok {
				return false
			}
			for _, x := range xs {
				if !elem.Is(x) {
					return false
				}
			}
			return true
		},
		func(v any, c runtype.Context) runtype.Result[[]O] {
			items, ok := asSlice(v)
			if !ok {
				return runtype.Fail[[]O](v, c)
			}
			out := make([]O, 0, len(items))
			var errs runtype.Errors
			for i, it := range items {
				r := elem.Validate(it, c.Index(i, elem.Name(), it))
				if o, ok := r.Value(); ok {
					out = append(out, o)
					continue
				}
				errs = runtype.AppendErrors(errs, r.Errors()...)
			}
			if len(errs) > 0 {
				return runtype.Failures[[]O](errs)
			}
			return runtype.Success(out)
		},
		func(xs []O) []I {
			if xs == nil {
				return nil
			}
			out := make([]I, len(xs))
			for i, x := range xs {
				out[i] = elem.Encode(x)
			}
			return out
		},
	).WithSchema(func(defs *runtype.Definitions) *js.Schema {
		return &js.Schema{Type: "array", Items: runtype.ProjectSchema(elem, defs)}
	})
}

// asSlice views []any and any other Go slice or array as []any.
func asSlice(v any) ([]any, bool) {
	if xs, ok := v.([]any); ok {
		return xs, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asObject views map[string]any and any other Go map with string keys as
// map[string]any.
func asObject(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
