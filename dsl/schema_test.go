package dsl_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/runtype"
	g "github.com/reoring/runtype/dsl"
)

func schemaJSON(t *testing.T, c runtype.Mixed) string {
	t.Helper()
	b, err := json.Marshal(runtype.JSONSchema(c))
	require.NoError(t, err)
	return string(b)
}

func TestJSONSchema_Combinators(t *testing.T) {
	t.Parallel()
	shape := g.Object("Shape").
		Field("kind", g.Enum("circle", "square")).
		Field("size", g.Nullable(g.Number())).
		Field("meta", g.Record(g.String(), g.Bool())).Optional().
		UnknownStrict().
		MustBuild()

	assert.JSONEq(t, `{
		"type": "object",
		"properties": {
			"kind": {"type": "string", "enum": ["circle", "square"]},
			"size": {"anyOf": [{"type": "number"}, {"type": "null"}]},
			"meta": {"type": "object", "propertyNames": {"type": "string"}, "additionalProperties": {"type": "boolean"}}
		},
		"required": ["kind", "size"],
		"additionalProperties": false
	}`, schemaJSON(t, shape))
}

func TestJSONSchema_UnionIntersectionLiteral(t *testing.T) {
	t.Parallel()
	u := g.Union("", g.Literal("a"), g.Integer())
	assert.JSONEq(t, `{"anyOf": [{"const": "a"}, {"type": "number", "description": "Integer"}]}`, schemaJSON(t, u))

	i := g.Intersection("", g.Object("A").Field("a", g.String()).MustBuild(), g.Object("B").MustBuild())
	assert.JSONEq(t, `{"allOf": [
		{"type": "object", "properties": {"a": {"type": "string"}}, "required": ["a"], "additionalProperties": true},
		{"type": "object", "additionalProperties": true}
	]}`, schemaJSON(t, i))

	d := g.Object("D").Field("n", g.Number()).Default(2).MustBuild()
	assert.JSONEq(t, `{"type": "object", "properties": {"n": {"type": "number", "default": 2}}, "additionalProperties": true}`, schemaJSON(t, d))
}
