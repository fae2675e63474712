package sema

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ylc/internal/diag"
	"ylc/internal/frontend"
)

func checkFile(t *testing.T, path string) *diag.Sink {
	t.Helper()
	src, err := os.ReadFile(path)
	require.NoError(t, err)
	fns, err := frontend.Parse(path, string(src))
	require.NoError(t, err)
	var sink diag.Sink
	ResolveProgram(fns, &sink)
	return &sink
}

func TestFlowNonReturningSomePaths(t *testing.T) {
	sink := checkFile(t, "../../testdata/non_returning.yl")
	require.NotEmpty(t, sink.Entries())
	assert.Equal(t, diag.NonReturningSomePaths, sink.Entries()[0].Kind)
}

func TestFlowUninitializedUse(t *testing.T) {
	sink := checkFile(t, "../../testdata/uninitialized_use.yl")
	require.NotEmpty(t, sink.Entries())
	assert.Equal(t, diag.UninitializedUse, sink.Entries()[0].Kind)
}

func TestFlowImmutableMutation(t *testing.T) {
	sink := checkFile(t, "../../testdata/immutable_mutation.yl")
	require.NotEmpty(t, sink.Entries())
	assert.Equal(t, diag.ImmutableMutation, sink.Entries()[0].Kind)
}

func TestFlowMutableLoopIsClean(t *testing.T) {
	sink := checkFile(t, "../../testdata/mutable_ok.yl")
	assert.Empty(t, sink.Entries())
}

func TestFlowConstantFoldedConditionIsClean(t *testing.T) {
	sink := checkFile(t, "../../testdata/constant_fold.yl")
	assert.Empty(t, sink.Entries())
}

func TestFlowNonReturningNoReturnAtAll(t *testing.T) {
	fns := parseSrc(t, `
fn f(): number {
  var x: number = 1.0;
}
`)
	var sink diag.Sink
	_, ok := ResolveProgram(fns, &sink)
	require.False(t, ok)
	assert.Equal(t, diag.NonReturning, sink.Entries()[0].Kind)
}

func TestFlowReturnOnAllPathsBothBranches(t *testing.T) {
	fns := parseSrc(t, `
fn f(x: number): number {
  if (x < 0.0) {
    return -x;
  } else {
    return x;
  }
}
`)
	var sink diag.Sink
	_, ok := ResolveProgram(fns, &sink)
	require.True(t, ok)
	assert.Empty(t, sink.Entries())
}
