package span

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type causeError struct {
	code int
}

func (r *causeError) Error() string {
	return "cause"
}

func TestErrorChainKeepsCause(t *testing.T) {
	cause := &causeError{code: 7}
	err := NewError(nil, "parse row", cause)
	err = NewError(nil, "render table", err)

	assert.Equal(t, "render table: parse row: cause", err.Error())

	var target *causeError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, 7, target.code)

	var chain *Error
	require.True(t, errors.As(err, &chain))
	assert.Len(t, chain.Items, 2)
}

func TestErrorWithoutCause(t *testing.T) {
	err := NewError(nil, "unknown category", nil)
	assert.Equal(t, "unknown category", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestErrorTraceNamesCaller(t *testing.T) {
	err := NewError(nil, "boom", nil)

	var chain *Error
	require.True(t, errors.As(err, &chain))
	assert.True(t, strings.HasSuffix(*chain.Items[0].Trace.Name, "TestErrorTraceNamesCaller"))
}

func TestWithNestsChildren(t *testing.T) {
	parent, ctx := With(context.Background(), "command")
	child, _ := With(ctx, "render")
	child.Variable("category", "VODKA")
	child.End()
	parent.End()

	require.Len(t, parent.Children, 1)
	assert.Same(t, child, parent.Children[0])
	require.Len(t, child.Path, 1)
	assert.Equal(t, *parent.Name, *child.Path[0])
	assert.Equal(t, "VODKA", child.Variables["category"])
	assert.NotNil(t, child.Ended)
}

func TestSpanErrorTracesCallSite(t *testing.T) {
	s, _ := With(context.Background(), "command")
	err := s.Error("load table", errors.New("missing file"))

	var chain *Error
	require.True(t, errors.As(err, &chain))
	assert.Same(t, s, chain.Items[0].Span)
	assert.True(t, strings.HasSuffix(*chain.Items[0].Trace.Name, "TestSpanErrorTracesCallSite"))
	assert.Equal(t, "load table: missing file", err.Error())
}
