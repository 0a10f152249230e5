package jsoncomplete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePartial(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		v, state, err := ParsePartial("")
		require.NoError(t, err)
		assert.Nil(t, v)
		assert.Equal(t, ParseStateUndefined, state)
	})

	t.Run("complete document", func(t *testing.T) {
		v, state, err := ParsePartial(`{"a": [1, "x"]}`)
		require.NoError(t, err)
		assert.Equal(t, ParseStateSuccessful, state)
		assert.Equal(t, map[string]any{"a": []any{1.0, "x"}}, v)
	})

	t.Run("truncated document", func(t *testing.T) {
		v, state, err := ParsePartial(`{"name": "John", "tags": ["a", "b`)
		require.NoError(t, err)
		assert.Equal(t, ParseStateCompleted, state)
		assert.Equal(t, map[string]any{"name": "John", "tags": []any{"a", "b"}}, v)
	})

	t.Run("dangling key is dropped", func(t *testing.T) {
		v, state, err := ParsePartial(`{"a": true, "b": `)
		require.NoError(t, err)
		assert.Equal(t, ParseStateCompleted, state)
		assert.Equal(t, map[string]any{"a": true}, v)
	})

	t.Run("malformed without repair", func(t *testing.T) {
		v, state, err := ParsePartial(`{"a": 1}}`)
		assert.ErrorIs(t, err, ErrMalformed)
		assert.Nil(t, v)
		assert.Equal(t, ParseStateFailed, state)
	})

	t.Run("malformed with repair", func(t *testing.T) {
		v, state, err := ParsePartial(`{"a": 1}}`, WithRepair())
		require.NoError(t, err)
		assert.Equal(t, ParseStateRepaired, state)
		assert.Equal(t, map[string]any{"a": 1.0}, v)
	})

	t.Run("bracket-only mode can fail to parse", func(t *testing.T) {
		_, state, err := ParsePartial(`{"a`, WithMode(BracketOnly))
		assert.Error(t, err)
		assert.Equal(t, ParseStateFailed, state)
	})
}
