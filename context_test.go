package runtype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/runtype"
)

func TestContext_AppendCopies(t *testing.T) {
	t.Parallel()
	base := make(runtype.Context, 1, 4)
	base[0] = runtype.Entry{Kind: runtype.KeyRoot, Name: "T"}

	a := base.Field("a", "string", 1)
	b := base.Field("b", "number", 2)
	assert.Len(t, base, 1)
	assert.Equal(t, "a", a[1].Key)
	assert.Equal(t, "b", b[1].Key)
}

func TestContext_Pointer(t *testing.T) {
	t.Parallel()
	c := runtype.Root("T", nil).
		Field("a/b", "U", nil).
		Branch(1, "V", nil).
		Index(3, "W", nil).
		Member(0, "X", nil).
		Field("m~n", "string", nil)
	assert.Equal(t, "/a~1b/3/m~0n", c.Pointer())
	assert.Equal(t, "/", runtype.Root("T", nil).Pointer())

	last, ok := c.Last()
	assert.True(t, ok)
	assert.Equal(t, runtype.KeyField, last.Kind)
	_, ok = runtype.Context(nil).Last()
	assert.False(t, ok)
}

func TestKeyKind_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "branch", runtype.KeyBranch.String())
	assert.Equal(t, "unknown", runtype.KeyKind(99).String())
	assert.Equal(t, "passthrough", runtype.UnknownPassthrough.String())
	assert.Equal(t, "strip", runtype.UnknownStrip.String())
}
