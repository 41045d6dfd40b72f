package arena_test

import (
	"testing"

	"deedles.dev/linked/internal/arena"
	"github.com/stretchr/testify/require"
)

func TestAllocGet(t *testing.T) {
	var a arena.Arena[string]
	h1, err := a.Alloc("one")
	require.NoError(t, err)
	h2, err := a.Alloc("two")
	require.NoError(t, err)

	require.NotEqual(t, arena.Nil, h1)
	require.NotEqual(t, h1, h2)
	require.Equal(t, "one", *a.Get(h1))
	require.Equal(t, "two", *a.Get(h2))
	require.Equal(t, 2, a.Len())

	*a.Get(h1) = "uno"
	require.Equal(t, "uno", *a.Get(h1))
}

func TestFreeReuse(t *testing.T) {
	var a arena.Arena[int]
	h1, _ := a.Alloc(1)
	h2, _ := a.Alloc(2)
	h3, _ := a.Alloc(3)

	a.Free(h2)
	a.Free(h1)
	require.Equal(t, 1, a.Len())

	r1, err := a.Alloc(10)
	require.NoError(t, err)
	require.Equal(t, h1, r1)
	r2, err := a.Alloc(20)
	require.NoError(t, err)
	require.Equal(t, h2, r2)

	r3, err := a.Alloc(30)
	require.NoError(t, err)
	require.NotContains(t, []arena.Handle{h1, h2, h3}, r3)
	require.Equal(t, 4, a.Len())
}

func TestLimit(t *testing.T) {
	var a arena.Arena[int]
	a.SetLimit(2)
	require.Equal(t, 2, a.Limit())

	h, err := a.Alloc(1)
	require.NoError(t, err)
	_, err = a.Alloc(2)
	require.NoError(t, err)

	_, err = a.Alloc(3)
	require.ErrorIs(t, err, arena.ErrExhausted)
	require.Equal(t, 2, a.Len())

	a.Free(h)
	_, err = a.Alloc(3)
	require.NoError(t, err)

	a.SetLimit(-5)
	require.Equal(t, 0, a.Limit())
	_, err = a.Alloc(4)
	require.NoError(t, err)
}

func TestReset(t *testing.T) {
	var a arena.Arena[int]
	a.SetLimit(3)
	for i := range 3 {
		_, err := a.Alloc(i)
		require.NoError(t, err)
	}

	a.Reset()
	require.Equal(t, 0, a.Len())
	require.Equal(t, 3, a.Limit())

	h, err := a.Alloc(7)
	require.NoError(t, err)
	require.Equal(t, 7, *a.Get(h))
}

func TestStaleHandle(t *testing.T) {
	var a arena.Arena[int]
	h, _ := a.Alloc(1)
	a.Free(h)

	require.Panics(t, func() { a.Get(h) })
	require.Panics(t, func() { a.Get(arena.Nil) })
	require.Panics(t, func() { a.Free(h + 5) })
}
