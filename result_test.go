package runtype_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/runtype"
)

func TestResult_SuccessAndFailureAreExclusive(t *testing.T) {
	t.Parallel()
	ok := runtype.Success(3)
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsFailure())
	assert.Nil(t, ok.Errors())
	v, has := ok.Value()
	assert.True(t, has)
	assert.Equal(t, 3, v)

	bad := runtype.Fail[int]("x", runtype.Root("int", "x"))
	assert.True(t, bad.IsFailure())
	_, has = bad.Value()
	assert.False(t, has)
	require.Len(t, bad.Errors(), 1)
	assert.Equal(t, runtype.CodeInvalidType, bad.Errors()[0].Code)
}

func TestFailures_PanicsOnEmpty(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { runtype.Failures[int](nil) })
}

func TestResult_Unwrap(t *testing.T) {
	t.Parallel()
	v, err := runtype.Success("a").Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	_, err = runtype.FailWith[string](1, runtype.Root("string", 1), "boom").Unwrap()
	require.Error(t, err)
	errs, ok := runtype.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, "boom", errs[0].Message)
	assert.Equal(t, runtype.CodeCustom, errs[0].Code)
}

func TestMapAndChain(t *testing.T) {
	t.Parallel()
	c := runtype.Root("n", "2")
	parse := func(s string) runtype.Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return runtype.FailWith[int](s, c, "not an int")
		}
		return runtype.Success(n)
	}

	r := runtype.Map(runtype.Chain(runtype.Success("2"), parse), func(n int) int { return n * 10 })
	v, _ := r.Value()
	assert.Equal(t, 20, v)

	called := false
	r = runtype.Map(runtype.Chain(runtype.Success("x"), parse), func(n int) int { called = true; return n })
	assert.True(t, r.IsFailure())
	assert.False(t, called, "map must not run on failure")
	assert.Equal(t, "not an int", r.Errors()[0].Message)
}

func TestMapErrorsAltFold(t *testing.T) {
	t.Parallel()
	c := runtype.Root("x", nil)
	first := runtype.FailWith[int](nil, c, "first")
	second := runtype.FailWith[int](nil, c, "second")

	r := runtype.MapErrors(first, func(errs runtype.Errors) runtype.Errors {
		errs = append(runtype.Errors{}, errs...)
		errs[0].Message = "mapped"
		return errs
	})
	assert.Equal(t, "mapped", r.Errors()[0].Message)
	assert.Equal(t, "first", first.Errors()[0].Message)

	both := runtype.Alt(first, func() runtype.Result[int] { return second })
	require.Len(t, both.Errors(), 2)
	assert.Equal(t, "second", both.Errors()[1].Message)

	ok := runtype.Alt(first, func() runtype.Result[int] { return runtype.Success(1) })
	assert.True(t, ok.IsSuccess())

	out := runtype.Fold(both,
		func(errs runtype.Errors) string { return strconv.Itoa(len(errs)) },
		func(int) string { return "ok" },
	)
	assert.Equal(t, "2", out)
}

func TestErrors_Error(t *testing.T) {
	t.Parallel()
	c := runtype.Root("Person", nil).Field("tags", "Array<string>", nil)
	errs := runtype.Errors{
		{Code: runtype.CodeRequired, Context: runtype.Root("Person", nil).Field("name", "string", runtype.Undefined)},
		{Code: runtype.CodeInvalidType, Context: c.Index(0, "string", 1)},
		{Code: runtype.CodeInvalidType, Context: c.Index(2, "string", 2)},
		{Code: runtype.CodeUnknownKey, Context: runtype.Root("Person", nil).Field("x", "never", 1)},
	}
	assert.Equal(t,
		"required at /name (expected string); invalid_type at /tags/0 (expected string); invalid_type at /tags/2 (expected string); ... (total 4)",
		errs.Error())

	var err error = errs
	wrapped := errors.Join(errors.New("decode"), err)
	got, ok := runtype.AsErrors(wrapped)
	require.True(t, ok)
	assert.Len(t, got, 4)

	_, ok = runtype.AsErrors(nil)
	assert.False(t, ok)
}
