package dsl

import (
	"sync"

	"github.com/reoring/runtype"
	js "github.com/reoring/runtype/jsonschema"
)

// Lazy defers building a codec until it is first used. thunk runs at most once,
// on the first Is, Validate, Decode, Encode or schema projection; Name never
// forces it. Concurrent first calls all observe the same fully built codec.
func Lazy[O, I any](name string, thunk func() runtype.Codec[O, I]) runtype.Codec[O, I] {
	resolve := sync.OnceValue(thunk)
	key := &lazyKey{name: name}
	return runtype.New[O, I](
		name,
		func(v any) bool { return resolve().Is(v) },
		func(v any, c runtype.Context) runtype.Result[O] { return resolve().Validate(v, c) },
		func(o O) I { return resolve().Encode(o) },
	).WithSchema(func(defs *runtype.Definitions) *js.Schema {
		return defs.Ref(key, name, func() *js.Schema { return runtype.ProjectSchema(resolve(), defs) })
	})
}

// lazyKey identifies one Lazy codec in schema definitions.
type lazyKey struct{ name string }

// Recursive builds a self-referential codec. define receives the codec being
// defined and may embed it anywhere; it is called once, on first use.
//
//	tree := dsl.Recursive("Tree", func(self runtype.Codec[map[string]any, map[string]any]) runtype.Codec[map[string]any, map[string]any] {
//	    return dsl.Object("").
//	        Field("value", dsl.Number()).
//	        Field("children", dsl.Array(self)).
//	        MustBuild()
//	})
func Recursive[O, I any](name string, define func(self runtype.Codec[O, I]) runtype.Codec[O, I]) runtype.Codec[O, I] {
	var self runtype.Codec[O, I]
	self = Lazy(name, func() runtype.Codec[O, I] { return define(self) })
	return self
}
