package errors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	e1 := New("cause1")
	e2 := New("cause2").Wrap(e1)
	e := New("dummy").Wrap(e2)
	e3 := e.Unwrap()
	assert.True(t, Is(e, e1))
	assert.True(t, Is(e, e2))
	assert.True(t, e3 == e2)
}

func TestWrapKeepsSentinel(t *testing.T) {
	sentinel := New("read failed")

	wrapped := sentinel.Wrap(io.ErrUnexpectedEOF)
	require.NotSame(t, sentinel, wrapped)
	assert.Nil(t, sentinel.Unwrap(), "wrapping must not mutate the sentinel")

	assert.True(t, Is(wrapped, sentinel))
	assert.True(t, Is(wrapped, io.ErrUnexpectedEOF))
	assert.Equal(t, "read failed: unexpected EOF", wrapped.Error())

	again := wrapped.Wrapf("key %q", "a.md")
	assert.True(t, Is(again, sentinel))
	assert.Equal(t, `read failed: key "a.md"`, again.Error())
	assert.False(t, Is(again, New("read failed")))
}

func TestAs(t *testing.T) {
	var target *Error
	err := New("outer").Wrap(io.EOF)
	require.True(t, As(err, &target))
	assert.Equal(t, "outer: EOF", target.Error())
}
