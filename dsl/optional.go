package dsl

import (
	"github.com/reoring/runtype"
	js "github.com/reoring/runtype/jsonschema"
)

// Optional accepts runtype.Undefined as a nil pointer and otherwise decodes
// with c. Encoded values (*I) are accepted too, so Decode(Encode(x)) holds for
// nil and non-nil x.
func Optional[O, I any](c runtype.Codec[O, I]) runtype.Codec[*O, *I] {
	return pointerOf(c, "("+c.Name()+" | undefined)", func(v any) bool { return v == runtype.Undefined }, nil)
}

// Nullable accepts nil as a nil pointer and otherwise decodes with c.
func Nullable[O, I any](c runtype.Codec[O, I]) runtype.Codec[*O, *I] {
	return pointerOf(c, "("+c.Name()+" | null)", func(v any) bool { return v == nil }, &js.Schema{Type: "null"})
}

func pointerOf[O, I any](c runtype.Codec[O, I], name string, empty func(any) bool, emptySchema *js.Schema) runtype.Codec[*O, *I] {
	return runtype.New[*O, *I](
		name,
		func(v any) bool {
			if v == nil {
				return true
			}
			p, ok := v.(*O)
			if !ok {
				return false
			}
			return p == nil || c.Is(*p)
		},
		func(v any, ctx runtype.Context) runtype.Result[*O] {
			if empty(v) {
				return runtype.Success[*O](nil)
			}
			// Encoded form: a nil *I is absent, otherwise decode what it points to.
			if p, ok := v.(*I); ok {
				if p == nil {
					return runtype.Success[*O](nil)
				}
				v = *p
			}
			return runtype.Map(c.Validate(v, ctx), func(o O) *O { return &o })
		},
		func(p *O) *I {
			if p == nil {
				return nil
			}
			i := c.Encode(*p)
			return &i
		},
	).WithSchema(func(defs *runtype.Definitions) *js.Schema {
		inner := runtype.ProjectSchema(c, defs)
		if emptySchema == nil {
			return inner
		}
		return &js.Schema{AnyOf: []*js.Schema{inner, emptySchema}}
	})
}
