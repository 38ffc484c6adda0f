package dsl_test

import (
	"sync"
	"sync/atomic"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/runtype"
	g "github.com/reoring/runtype/dsl"
	"github.com/reoring/runtype/validationtest"
)

type node = runtype.Codec[map[string]any, map[string]any]

func newTree(calls *atomic.Int32) node {
	return g.Recursive("Tree", func(self node) node {
		calls.Add(1)
		return g.Object("").
			Field("value", g.Number()).
			Field("children", g.Array(self)).
			MustBuild()
	})
}

func TestRecursive_Decode(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	tree := newTree(&calls)

	in := map[string]any{
		"value": 1,
		"children": []any{
			map[string]any{"value": 2, "children": []any{}},
		},
	}
	want := map[string]any{
		"value": 1.0,
		"children": []map[string]any{
			{"value": 2.0, "children": []map[string]any{}},
		},
	}
	v := validationtest.AssertSuccess(t, tree.Decode(in), want)
	assert.True(t, tree.Is(v))

	validationtest.AssertFailure(t, tree, map[string]any{
		"value":    1,
		"children": []any{map[string]any{"value": "x", "children": []any{}}},
	}, []string{`Invalid value "x" supplied to Tree.children[0].value: number`})
	assert.Equal(t, int32(1), calls.Load())
}

func TestLazy_NameDoesNotForce(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	tree := newTree(&calls)
	assert.Equal(t, "Tree", tree.Name())
	assert.Equal(t, int32(0), calls.Load())
}

func TestLazy_ConcurrentFirstUse(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	tree := newTree(&calls)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := tree.Decode(map[string]any{"value": 1, "children": []any{}})
			assert.True(t, r.IsSuccess())
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestRecursive_JSONSchema(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	s := runtype.JSONSchema(newTree(&calls))
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"$ref": "#/$defs/Tree",
		"$defs": {
			"Tree": {
				"type": "object",
				"properties": {
					"value": {"type": "number"},
					"children": {"type": "array", "items": {"$ref": "#/$defs/Tree"}}
				},
				"required": ["children", "value"],
				"additionalProperties": true
			}
		}
	}`, string(b))
}

func TestRecursive_Encode(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	tree := newTree(&calls)
	v := map[string]any{"value": 1.0, "children": []map[string]any{{"value": 2.0, "children": []map[string]any{}}}}
	out := tree.Encode(v)
	assert.Equal(t, v, out)
	validationtest.AssertRoundTrip(t, tree, v)
}

func TestLazy_SameNameDistinctDefinitions(t *testing.T) {
	t.Parallel()
	str := g.Lazy("Node", func() runtype.Codec[string, string] { return g.String() })
	num := g.Lazy("Node", func() runtype.Codec[float64, float64] { return g.Number() })
	u := g.Union("", str, num, str)

	s := runtype.JSONSchema(u)
	require.Len(t, s.AnyOf, 3)
	assert.Equal(t, "#/$defs/Node", s.AnyOf[0].Ref)
	assert.Equal(t, "#/$defs/Node_2", s.AnyOf[1].Ref)
	assert.Equal(t, "#/$defs/Node", s.AnyOf[2].Ref)
	require.Len(t, s.Defs, 2)
	assert.Equal(t, "string", s.Defs["Node"].Type)
	assert.Equal(t, "number", s.Defs["Node_2"].Type)
}
