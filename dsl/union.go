package dsl

import (
	"slices"

	"github.com/reoring/runtype"
	js "github.com/reoring/runtype/jsonschema"
)

// Union tries branches in declaration order and returns the output of the
// first one that decodes the input. When every branch fails the errors of all
// branches are returned, each under a branch entry naming its index. An empty
// name derives one from the branches, e.g. "(string | number)".
func Union(name string, branches ...runtype.Mixed) runtype.Codec[any, any] {
	bs := slices.Clone(branches)
	if name == "" {
		name = joinNames(bs, " | ")
	}
	return runtype.New[any, any](
		name,
		func(v any) bool {
			for _, b := range bs {
				if b.Is(v) {
					return true
				}
			}
			return false
		},
		func(v any, c runtype.Context) runtype.Result[any] {
			if len(bs) == 0 {
				return runtype.Fail[any](v, c)
			}
			var errs runtype.Errors
			for i, b := range bs {
				r := b.ValidateAny(v, c.Branch(i, b.Name(), v))
				if r.IsSuccess() {
					return r
				}
				errs = runtype.AppendErrors(errs, r.Errors()...)
			}
			return runtype.Failures[any](errs)
		},
		func(v any) any {
			for _, b := range bs {
				if b.Is(v) {
					return b.EncodeAny(v)
				}
			}
			return v
		},
	).WithSchema(func(defs *runtype.Definitions) *js.Schema {
		out := &js.Schema{AnyOf: make([]*js.Schema, 0, len(bs))}
		for _, b := range bs {
			out.AnyOf = append(out.AnyOf, runtype.ProjectSchema(b, defs))
		}
		return out
	})
}
