// Package catalog registers the named codecs exposed by the runtype CLI.
package catalog

import (
	"sort"

	"github.com/reoring/runtype"
	"github.com/reoring/runtype/codec"
	"github.com/reoring/runtype/dsl"
)

// Entry is a codec published under a stable identifier. The identifier is
// independent of the codec name, which is for diagnostics only.
type Entry struct {
	ID          string
	Description string
	Codec       runtype.Mixed
}

type object = runtype.Codec[map[string]any, map[string]any]

// Person is a user profile with an exact shape.
func Person() object {
	return dsl.Object("Person").
		Field("name", dsl.Refine(dsl.String(), func(s string) bool { return s != "" }, "NonEmptyString")).
		Field("age", dsl.Integer()).
		Field("email", dsl.String()).Optional().
		Field("tags", dsl.Array(dsl.String())).Default([]any{}).
		UnknownStrict().
		MustBuild()
}

// Tree is a recursive labelled tree.
func Tree() object {
	return dsl.Recursive("Tree", func(self object) object {
		return dsl.Object("").
			Field("label", dsl.String()).
			Field("children", dsl.Array(self)).Default([]any{}).
			MustBuild()
	})
}

// Shape is a union of tagged shapes.
func Shape() runtype.Codec[any, any] {
	circle := dsl.Object("Circle").
		Field("kind", dsl.Literal("circle")).
		Field("radius", dsl.Number()).
		MustBuild()
	rect := dsl.Object("Rect").
		Field("kind", dsl.Literal("rect")).
		Field("width", dsl.Number()).
		Field("height", dsl.Number()).
		MustBuild()
	return dsl.Union("Shape", circle, rect)
}

// Event combines an envelope with a payload; timestamps travel as RFC3339
// strings and counters as decimal strings.
func Event() runtype.Codec[any, any] {
	envelope := dsl.Object("Envelope").
		Field("id", dsl.String()).
		Field("at", codec.TimeFromRFC3339()).
		MustBuild()
	payload := dsl.Object("Payload").
		Field("type", dsl.Enum("created", "updated", "deleted")).
		Field("count", codec.IntegerFromString()).Optional().
		MustBuild()
	return dsl.Intersection("Event", envelope, payload)
}

var entries = []Entry{
	{ID: "person", Description: "user profile, unknown keys rejected", Codec: Person()},
	{ID: "tree", Description: "recursive labelled tree", Codec: Tree()},
	{ID: "shape", Description: "circle or rect, tagged by kind", Codec: Shape()},
	{ID: "event", Description: "envelope & payload with RFC3339 time", Codec: Event()},
}

// All returns the registered entries sorted by ID.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup finds an entry by ID.
func Lookup(id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
