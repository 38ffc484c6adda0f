// Package dsl provides the primitives and combinators used to declare codecs.
//
// Scalars are package-level values (String, Number, Bool, ...). Composite
// codecs are built from them:
//
//	person := dsl.Object("Person").
//	    Field("name", dsl.String()).Required().
//	    Field("age", dsl.Integer()).Optional().
//	    Field("tags", dsl.Array(dsl.String())).Default([]any{}).
//	    UnknownStrict().
//	    MustBuild()
//
//	r := person.Decode(raw)
//
// Composite codecs decode every child and accumulate failures; a single child
// stops at its first failure. Object fields, union branches and intersection
// members are held as runtype.Mixed so children of different output types can
// be mixed.
package dsl
