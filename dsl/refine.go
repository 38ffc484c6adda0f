package dsl

import (
	"github.com/reoring/runtype"
	js "github.com/reoring/runtype/jsonschema"
)

// Refine narrows c to the values satisfying pred. Base failures propagate
// unchanged; a rejected value is reported with code refinement, carrying the
// decoded value, at the current context. Encoding is delegated to c.
func Refine[O, I any](c runtype.Codec[O, I], pred func(O) bool, name string) runtype.Codec[O, I] {
	return runtype.New[O, I](
		name,
		func(v any) bool {
			o, ok := v.(O)
			return ok && c.Is(v) && pred(o)
		},
		func(v any, ctx runtype.Context) runtype.Result[O] {
			return runtype.Chain(c.Validate(v, ctx), func(o O) runtype.Result[O] {
				if !pred(o) {
					return runtype.FailCode[O](runtype.CodeRefinement, o, ctx, "")
				}
				return runtype.Success(o)
			})
		},
		c.Encode,
	).WithSchema(func(defs *runtype.Definitions) *js.Schema {
		base := *runtype.ProjectSchema(c, defs)
		if base.Description == "" {
			base.Description = name
		}
		return &base
	})
}

// Named renames c without changing its behaviour.
func Named[O, I any](name string, c runtype.Codec[O, I]) runtype.Codec[O, I] {
	return runtype.New[O, I](name, c.Is, c.Validate, c.Encode).
		WithSchema(func(defs *runtype.Definitions) *js.Schema {
			s := *runtype.ProjectSchema(c, defs)
			s.Title = name
			return &s
		})
}
