package dsl

import (
	"fmt"

	"github.com/reoring/runtype"
	js "github.com/reoring/runtype/jsonschema"
)

// WithDefault substitutes def whenever the raw input is absent (nil or
// runtype.Undefined). The default is decoded through c like any other input, so
// it keeps satisfying c's rules. def is given in c's transport representation.
func WithDefault[O, I any](c runtype.Codec[O, I], def I) runtype.Codec[O, I] {
	return runtype.New[O, I](
		defaultName(c, def),
		c.Is,
		func(v any, ctx runtype.Context) runtype.Result[O] {
			if runtype.IsAbsent(v) {
				return c.Validate(def, ctx)
			}
			return c.Validate(v, ctx)
		},
		c.Encode,
	).WithSchema(defaultSchema(c, def))
}

// withDefaultAny is WithDefault for type-erased codecs (object fields).
func withDefaultAny(c runtype.Mixed, def any) runtype.Mixed {
	return runtype.New[any, any](
		defaultName(c, def),
		c.Is,
		func(v any, ctx runtype.Context) runtype.Result[any] {
			if runtype.IsAbsent(v) {
				return c.ValidateAny(def, ctx)
			}
			return c.ValidateAny(v, ctx)
		},
		c.EncodeAny,
	).WithSchema(defaultSchema(c, def))
}

func defaultName(c runtype.Mixed, def any) string {
	return fmt.Sprintf("withDefault(%s, %s)", c.Name(), stringify(def))
}

func defaultSchema(c runtype.Mixed, def any) func(*runtype.Definitions) *js.Schema {
	return func(defs *runtype.Definitions) *js.Schema {
		s := *runtype.ProjectSchema(c, defs)
		s.Default = def
		return &s
	}
}
