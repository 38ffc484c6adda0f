// Package validationtest provides testify based assertions for codecs.
package validationtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/runtype"
	"github.com/reoring/runtype/reporter"
)

// AssertSuccess requires r to be a success and returns its value. When an
// expected value is given the decoded value must equal it (deep equality).
func AssertSuccess[T any](tb testing.TB, r runtype.Result[T], expected ...T) T {
	tb.Helper()
	v, ok := r.Value()
	require.Truef(tb, ok, "expected success, got %v", reporter.Report(r))
	if len(expected) > 0 {
		require.Equal(tb, expected[0], v)
	}
	return v
}

// AssertStrictSuccess requires r to succeed with a value == expected.
func AssertStrictSuccess[T comparable](tb testing.TB, r runtype.Result[T], expected T) {
	tb.Helper()
	v := AssertSuccess(tb, r)
	require.Truef(tb, v == expected, "expected %#v, got %#v", expected, v)
}

// AssertStrictEqual requires r to succeed with a value deeply equal to
// expected.
func AssertStrictEqual[T any](tb testing.TB, r runtype.Result[T], expected T) {
	tb.Helper()
	AssertSuccess(tb, r, expected)
}

// AssertFailure decodes value with c and requires the reported messages to be
// exactly messages, in order.
func AssertFailure[O, I any](tb testing.TB, c runtype.Codec[O, I], value any, messages []string) {
	tb.Helper()
	r := c.Decode(value)
	require.Truef(tb, r.IsFailure(), "expected %s to reject %#v", c.Name(), value)
	require.Equal(tb, messages, reporter.Report(r))
}

// AssertRoundTrip requires Decode(Encode(v)) to succeed with v and v to
// satisfy c.Is.
func AssertRoundTrip[O, I any](tb testing.TB, c runtype.Codec[O, I], v O) {
	tb.Helper()
	require.Truef(tb, c.Is(v), "%s.Is rejected %#v", c.Name(), v)
	AssertSuccess(tb, c.Decode(c.Encode(v)), v)
}
