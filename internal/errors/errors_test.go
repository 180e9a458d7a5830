package errors

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	t.Parallel()

	err := Wrap(&codedError{code: "E1"}, "load vendor")

	target, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, "E1", target.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestIsAny(t *testing.T) {
	t.Parallel()

	err := Wrapf(context.DeadlineExceeded, "query %s", "stats")

	assert.True(t, IsAny(err, io.EOF, context.DeadlineExceeded))
	assert.False(t, IsAny(err, io.EOF, context.Canceled))
	assert.False(t, IsAny(err))
}

func TestCause(t *testing.T) {
	t.Parallel()

	root := New("root")
	assert.Same(t, root, Cause(WithStack(Wrap(root, "outer"))))
	assert.EqualError(t, Errorf("slice %q", "stats"), `slice "stats"`)
}
