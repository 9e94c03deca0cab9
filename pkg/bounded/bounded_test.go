package bounded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuffer(t *testing.T) {
	b := New[int](8)
	assert.Equal(t, 8, b.Cap())
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Prefix())
}

func TestNewBufferRejectsNonPositiveCapacity(t *testing.T) {
	assert.Panics(t, func() { New[int](0) })
	assert.Panics(t, func() { New[int](-1) })
}

func TestSetLen(t *testing.T) {
	b := New[int](4)

	b.SetLen(3)
	assert.Equal(t, 3, b.Len())
	assert.Len(t, b.Prefix(), 3)

	b.SetLen(0)
	assert.Equal(t, 0, b.Len())
}

func TestSetLenBeyondCapacityPanics(t *testing.T) {
	b := New[int](4)
	assert.Panics(t, func() { b.SetLen(5) })
	assert.Panics(t, func() { b.SetLen(-1) })
}

func TestAppendStopsAtCapacity(t *testing.T) {
	b := New[string](2)

	require.True(t, b.Append("a"))
	require.True(t, b.Append("b"))
	assert.False(t, b.Append("c"), "append past capacity must be refused")

	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []string{"a", "b"}, b.Prefix())
}

func TestAccessBeyondLenRejected(t *testing.T) {
	b := New[int](8)
	b.Append(10)
	b.Append(20)

	assert.Equal(t, 10, b.At(0))
	assert.Equal(t, 20, b.At(1))

	// Backing capacity exists at index 2 but the element is not valid.
	assert.Panics(t, func() { b.At(2) })
	assert.Panics(t, func() { b.At(-1) })
	assert.Panics(t, func() { b.Set(2, 30) })
}

func TestPrefixExposesExactlyLenElements(t *testing.T) {
	b := New[int](16)
	for i := 0; i < 5; i++ {
		b.Append(i)
	}

	view := b.Prefix()
	require.Len(t, view, 5)
	assert.Equal(t, 5, cap(view), "view capacity must be clamped to its length")

	assert.Panics(t, func() { _ = view[5] })
}

func TestPrefixAppendCannotReachBacking(t *testing.T) {
	b := New[int](4)
	b.Append(1)
	b.Append(2)

	view := append(b.Prefix(), 99)
	_ = view

	b.SetLen(3)
	assert.Equal(t, 0, b.At(2), "spare backing element must be untouched by view appends")
}

func TestReset(t *testing.T) {
	b := New[int](4)
	b.Append(7)
	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 4, b.Cap())
}
