package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/runtype"
	"github.com/reoring/runtype/reporter"
)

func TestAll_SortedAndLookup(t *testing.T) {
	t.Parallel()
	all := All()
	require.Len(t, all, 4)
	assert.Equal(t, []string{"event", "person", "shape", "tree"},
		[]string{all[0].ID, all[1].ID, all[2].ID, all[3].ID})

	e, ok := Lookup("person")
	require.True(t, ok)
	assert.Equal(t, "Person", e.Codec.Name())
	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestPerson(t *testing.T) {
	t.Parallel()
	v, err := Person().Decode(map[string]any{"name": "ann", "age": 3}).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "ann", "age": 3.0, "tags": []string{}}, v)

	r := Person().Decode(map[string]any{"name": "", "age": 1.5, "extra": true})
	assert.Equal(t, []string{
		`Invalid value "" supplied to Person.name: NonEmptyString`,
		"Invalid value 1.5 supplied to Person.age: Integer",
		"Invalid value true supplied to Person.extra: never",
	}, reporter.Report(r))
}

func TestShape(t *testing.T) {
	t.Parallel()
	v, err := Shape().Decode(map[string]any{"kind": "rect", "width": 1, "height": 2}).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"kind": "rect", "width": 1.0, "height": 2.0}, v)

	r := Shape().Decode(map[string]any{"kind": "circle"})
	assert.Equal(t, []string{
		"Invalid value undefined supplied to Shape|0.radius: number",
		`Invalid value "circle" supplied to Shape|1.kind: "rect"`,
		"Invalid value undefined supplied to Shape|1.width: number",
		"Invalid value undefined supplied to Shape|1.height: number",
	}, reporter.Report(r))
}

func TestEvent(t *testing.T) {
	t.Parallel()
	raw := map[string]any{"id": "e1", "at": "2025-01-02T03:04:05Z", "type": "created", "count": "2"}
	v, err := Event().Decode(raw).Unwrap()
	require.NoError(t, err)
	m := v.(map[string]any)
	assert.True(t, m["at"].(time.Time).Equal(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)))
	assert.Equal(t, 2.0, m["count"])
	assert.Equal(t, raw, Event().Encode(v))
}

func TestTree(t *testing.T) {
	t.Parallel()
	r := Tree().Decode(map[string]any{"label": "root", "children": []any{map[string]any{"label": 1}}})
	require.True(t, r.IsFailure())
	assert.Equal(t, "/children/0/label", r.Errors()[0].Pointer())

	v, err := Tree().Decode(map[string]any{"label": "leaf"}).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"label": "leaf", "children": []map[string]any{}}, v)
	_ = runtype.JSONSchema(Tree())
}
