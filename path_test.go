package jsoncomplete

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceToPath(t *testing.T) {
	input := []any{1, "foo", 0}
	const expected = `[1]["foo"][0]`
	p := SliceToPath(input)
	assert.Equal(t, expected, p.String())
	assert.Equal(t, 3, p.Len())
}

func TestPathToSlice(t *testing.T) {
	p := Path{elems: []any{15, "foo", 0}}
	assert.Equal(t, []any{15, "foo", 0}, PathToSlice(p))
}

func TestPathString(t *testing.T) {
	assert.Equal(t, ``, Path{}.String())
	assert.Equal(t, `["a\"b"][2]`, SliceToPath([]any{`a"b`, 2}).String())
}

func TestPathEquals(t *testing.T) {
	t.Run("simple case where equality holds", func(t *testing.T) {
		assert.True(t, PathEquals(Path{elems: []any{15, "foo", 0}}, []any{15, "foo", 0}))
	})

	t.Run("compare empty path to empty slice", func(t *testing.T) {
		var path Path
		assert.True(t, PathEquals(path, []any{}))
	})

	t.Run("compare non-empty path to empty slice", func(t *testing.T) {
		assert.False(t, PathEquals(Path{elems: []any{0}}, []any{}))
	})

	t.Run("compare non-empty slice to empty path", func(t *testing.T) {
		var path Path
		assert.False(t, PathEquals(path, []any{1}))
	})

	t.Run("index does not equal key", func(t *testing.T) {
		assert.False(t, PathEquals(Path{elems: []any{"0"}}, []any{0}))
	})
}

func TestSliceToPathPanicsOnBadElement(t *testing.T) {
	assert.Panics(t, func() { SliceToPath([]any{1.5}) })
}
