package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/runtype"
	g "github.com/reoring/runtype/dsl"
	"github.com/reoring/runtype/validationtest"
)

func TestRefine(t *testing.T) {
	t.Parallel()
	nonEmpty := g.Refine(g.String(), func(s string) bool { return s != "" }, "NonEmptyString")
	assert.Equal(t, "NonEmptyString", nonEmpty.Name())

	validationtest.AssertStrictSuccess(t, nonEmpty.Decode("a"), "a")
	validationtest.AssertFailure(t, nonEmpty, "", []string{`Invalid value "" supplied to NonEmptyString`})

	// base failures propagate unchanged
	r := nonEmpty.Decode(1)
	require.True(t, r.IsFailure())
	assert.Equal(t, runtype.CodeInvalidType, r.Errors()[0].Code)

	assert.True(t, nonEmpty.Is("a"))
	assert.False(t, nonEmpty.Is(""))
	assert.False(t, nonEmpty.Is(1))
	assert.Equal(t, "a", nonEmpty.Encode("a"))
}

func TestRefine_InsideObjectNamesRefinement(t *testing.T) {
	t.Parallel()
	positive := g.Refine(g.Number(), func(f float64) bool { return f > 0 }, "Positive")
	o := g.Object("Order").Field("qty", positive).MustBuild()
	validationtest.AssertFailure(t, o, map[string]any{"qty": -1}, []string{
		"Invalid value -1 supplied to Order.qty: Positive",
	})
}

func TestNamed(t *testing.T) {
	t.Parallel()
	id := g.Named("UserID", g.String())
	assert.Equal(t, "UserID", id.Name())
	validationtest.AssertFailure(t, id, 1, []string{"Invalid value 1 supplied to UserID"})
	assert.Equal(t, "UserID", runtype.JSONSchema(id).Title)
}

func TestWithDefault(t *testing.T) {
	t.Parallel()
	c := g.WithDefault(g.String(), "x")
	assert.Equal(t, `withDefault(string, "x")`, c.Name())
	validationtest.AssertStrictSuccess(t, c.Decode(nil), "x")
	validationtest.AssertStrictSuccess(t, c.Decode("y"), "y")
	validationtest.AssertFailure(t, c, 1, []string{`Invalid value 1 supplied to withDefault(string, "x")`})

	// defaults are decoded too
	bad := g.WithDefault(g.Integer(), 1.5)
	assert.True(t, bad.Decode(nil).IsFailure())

	assert.Equal(t, "x", runtype.JSONSchema(c).Default)
}
