package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/runtype"
	"github.com/reoring/runtype/codec"
	"github.com/reoring/runtype/reporter"
	"github.com/reoring/runtype/validationtest"
)

func TestNumberFromString_Decode(t *testing.T) {
	t.Parallel()
	c := codec.NumberFromString()

	validationtest.AssertStrictSuccess(t, c.Decode("1"), 1.0)
	validationtest.AssertStrictSuccess(t, c.Decode(" -2.5 "), -2.5)
	validationtest.AssertStrictSuccess(t, c.Decode("1e3"), 1000.0)
	validationtest.AssertFailure(t, c, "a", []string{"cannot parse to a number"})
}

func TestNumberFromString_RejectsNonFinite(t *testing.T) {
	t.Parallel()
	c := codec.NumberFromString()
	for _, in := range []string{"", "   ", "NaN", "Inf", "-Infinity"} {
		r := c.Decode(in)
		require.True(t, r.IsFailure(), "input %q", in)
		assert.Equal(t, runtype.CodeInvalidFormat, r.Errors()[0].Code)
		assert.Equal(t, in, r.Errors()[0].Value)
	}
}

func TestNumberFromString_NonStringIsTypeError(t *testing.T) {
	t.Parallel()
	r := codec.NumberFromString().Decode(1)
	require.True(t, r.IsFailure())
	assert.Equal(t, runtype.CodeInvalidType, r.Errors()[0].Code)
	assert.Equal(t, []string{"Invalid value 1 supplied to NumberFromString"}, reporter.Report(r))
}

func TestNumberFromString_IsAndEncode(t *testing.T) {
	t.Parallel()
	c := codec.NumberFromString()
	assert.True(t, c.Is(1.5))
	assert.False(t, c.Is("1.5"))
	assert.Equal(t, "1.5", c.Encode(1.5))
	assert.Equal(t, "100", c.Encode(100))
	validationtest.AssertRoundTrip(t, c, 42.25)
}

func TestIntegerFromString(t *testing.T) {
	t.Parallel()
	c := codec.IntegerFromString()

	validationtest.AssertStrictSuccess(t, c.Decode("3"), 3.0)

	r := c.Decode("1.5")
	require.True(t, r.IsFailure())
	require.Len(t, r.Errors(), 1)
	e := r.Errors()[0]
	assert.Equal(t, runtype.CodeRefinement, e.Code)
	assert.Equal(t, 1.5, e.Value)
	assert.Equal(t, "IntegerFromString", e.Expected())
	assert.Equal(t, []string{"Invalid value 1.5 supplied to IntegerFromString"}, reporter.Report(r))

	// parse failures surface unchanged from the base codec
	validationtest.AssertFailure(t, c, "x", []string{"cannot parse to a number"})
	assert.False(t, c.Is(1.5))
	assert.True(t, c.Is(2.0))
}

func TestBooleanFromString(t *testing.T) {
	t.Parallel()
	c := codec.BooleanFromString()
	validationtest.AssertStrictSuccess(t, c.Decode("true"), true)
	validationtest.AssertStrictSuccess(t, c.Decode("false"), false)
	validationtest.AssertFailure(t, c, "yes", []string{"cannot parse to a boolean"})
	assert.Equal(t, "false", c.Encode(false))
}
