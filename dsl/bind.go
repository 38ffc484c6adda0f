package dsl

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/reoring/runtype"
	js "github.com/reoring/runtype/jsonschema"
)

// Bind projects the output of c into the Go type T through a JSON round trip.
// A value c accepts but T cannot hold fails with invalid_type. Binding is
// lossy: Encode goes back through JSON, so numbers come out as float64 and
// structs as map[string]any before c encodes them.
func Bind[T, O, I any](c runtype.Codec[O, I]) runtype.Codec[T, I] {
	var zero T
	name := fmt.Sprintf("%s as %T", c.Name(), zero)
	return runtype.New[T, I](
		name,
		nil,
		func(v any, ctx runtype.Context) runtype.Result[T] {
			return runtype.Chain(c.Validate(v, ctx), func(o O) runtype.Result[T] {
				var t T
				if err := convert(o, &t); err != nil {
					return runtype.FailCode[T](runtype.CodeInvalidType, v, ctx, err.Error())
				}
				return runtype.Success(t)
			})
		},
		func(t T) I {
			var o O
			if err := convert(t, &o); err != nil {
				var i I
				return i
			}
			return c.Encode(o)
		},
	).WithSchema(func(defs *runtype.Definitions) *js.Schema { return runtype.ProjectSchema(c, defs) })
}

func convert(src, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
