package dsl

import (
	"sort"

	"github.com/reoring/runtype"
	js "github.com/reoring/runtype/jsonschema"
)

// Record returns a codec for maps whose keys are decoded by key and whose
// values are decoded by val. Entries are visited in ascending key order and
// their failures accumulated.
func Record[O, I any](key runtype.Codec[string, string], val runtype.Codec[O, I]) runtype.Codec[map[string]O, map[string]I] {
	return runtype.New[map[string]O, map[string]I](
		"{ [K in "+key.Name()+"]: "+val.Name()+" }",
		func(v any) bool {
			m, ok := v.(map[string]O)
			if !ok {
				return false
			}
			for k, x := range m {
				if !key.Is(k) || !val.Is(x) {
					return false
				}
			}
			return true
		},
		func(v any, c runtype.Context) runtype.Result[map[string]O] {
			src, ok := asObject(v)
			if !ok {
				return runtype.Fail[map[string]O](v, c)
			}
			keys := make([]string, 0, len(src))
			for k := range src {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			out := make(map[string]O, len(src))
			var errs runtype.Errors
			for _, k := range keys {
				x := src[k]
				kr := key.Validate(k, c.Field(k, key.Name(), k))
				dk, kok := kr.Value()
				if !kok {
					errs = runtype.AppendErrors(errs, kr.Errors()...)
				}
				vr := val.Validate(x, c.Field(k, val.Name(), x))
				dv, vok := vr.Value()
				if !vok {
					errs = runtype.AppendErrors(errs, vr.Errors()...)
				}
				if kok && vok {
					out[dk] = dv
				}
			}
			if len(errs) > 0 {
				return runtype.Failures[map[string]O](errs)
			}
			return runtype.Success(out)
		},
		func(m map[string]O) map[string]I {
			if m == nil {
				return nil
			}
			out := make(map[string]I, len(m))
			for k, x := range m {
				out[key.Encode(k)] = val.Encode(x)
			}
			return out
		},
	).WithSchema(func(defs *runtype.Definitions) *js.Schema {
		return &js.Schema{
			Type:                 "object",
			PropertyNames:        runtype.ProjectSchema(key, defs),
			AdditionalProperties: runtype.ProjectSchema(val, defs),
		}
	})
}
