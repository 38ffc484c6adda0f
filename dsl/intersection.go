package dsl

import (
	"slices"

	"github.com/reoring/runtype"
	js "github.com/reoring/runtype/jsonschema"
)

// Intersection decodes the input with every member, each under a member entry,
// and succeeds only if all members succeed. Failures accumulate across
// members. When every output is an object the outputs are merged with the
// later members overriding earlier keys (last write wins); otherwise the last
// member's output is returned. An empty name derives one from the members,
// e.g. "(A & B)".
func Intersection(name string, members ...runtype.Mixed) runtype.Codec[any, any] {
	ms := slices.Clone(members)
	if name == "" {
		name = joinNames(ms, " & ")
	}
	return runtype.New[any, any](
		name,
		func(v any) bool {
			for _, m := range ms {
				if !m.Is(v) {
					return false
				}
			}
			return true
		},
		func(v any, c runtype.Context) runtype.Result[any] {
			outs := make([]any, 0, len(ms))
			var errs runtype.Errors
			for i, m := range ms {
				r := m.ValidateAny(v, c.Member(i, m.Name(), v))
				if o, ok := r.Value(); ok {
					outs = append(outs, o)
					continue
				}
				errs = runtype.AppendErrors(errs, r.Errors()...)
			}
			if len(errs) > 0 {
				return runtype.Failures[any](errs)
			}
			return runtype.Success(mergeAll(v, outs))
		},
		func(v any) any {
			outs := make([]any, len(ms))
			for i, m := range ms {
				outs[i] = m.EncodeAny(v)
			}
			return mergeAll(v, outs)
		},
	).WithSchema(func(defs *runtype.Definitions) *js.Schema {
		out := &js.Schema{AllOf: make([]*js.Schema, 0, len(ms))}
		for _, m := range ms {
			out.AllOf = append(out.AllOf, runtype.ProjectSchema(m, defs))
		}
		return out
	})
}

// mergeAll merges object outputs left to right. Non-object outputs resolve to
// the last one; no outputs resolve to the input itself.
func mergeAll(v any, outs []any) any {
	if len(outs) == 0 {
		return v
	}
	merged := map[string]any{}
	for _, o := range outs {
		m, ok := o.(map[string]any)
		if !ok {
			return outs[len(outs)-1]
		}
		for k, x := range m {
			merged[k] = x
		}
	}
	return merged
}
