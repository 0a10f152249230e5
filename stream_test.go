package jsoncomplete

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream(t *testing.T) {
	chunks := []string{`{"na`, `me": "Bo`, `b", "tags": [`, `"x", `, `"y"]}`}
	want := []string{
		`{}`,
		`{"name": "Bo"}`,
		`{"name": "Bob", "tags": []}`,
		`{"name": "Bob", "tags": ["x"]}`,
		`{"name": "Bob", "tags": ["x", "y"]}`,
	}

	var s Stream
	for i, chunk := range chunks {
		n, err := s.WriteString(chunk)
		require.NoError(t, err)
		assert.Equal(t, len(chunk), n)

		got, err := s.Complete()
		require.NoError(t, err)
		assert.Equal(t, want[i], got, "after chunk %d", i)
	}

	comp, err := s.Completion()
	require.NoError(t, err)
	assert.True(t, comp.Complete())
	assert.Equal(t, s.Len(), comp.Kept)
}

func TestStreamWriter(t *testing.T) {
	var s Stream
	_, err := fmt.Fprintf(&s, `[%d, %d`, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, `[1, 2`, s.String())

	got, err := s.Complete()
	require.NoError(t, err)
	assert.Equal(t, `[1, 2]`, got)

	s.Reset()
	assert.Equal(t, 0, s.Len())
}

func TestStreamMalformed(t *testing.T) {
	s := Stream{Completer: Completer{Mode: BracketOnly}}
	_, _ = s.WriteString(`[1]]`)
	_, err := s.Completion()
	assert.ErrorIs(t, err, ErrMalformed)
}
