package jsoncomplete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAndSuggestClose(t *testing.T) {
	cases := []struct {
		name, input, want string
	}{
		{"empty", ``, ``},
		{"balanced", `{"a": [1, 2]}`, ``},
		{"open string", `["abc`, `"]`},
		{"escaped quote stays in string", `{"a": "x\"`, `"}`},
		{"escaped backslash ends escape", `{"a": "x\\`, `"}`},
		{"brackets inside strings are inert", `{"a": "]}", "b": [`, `]}`},
		{"closed string", `[{"a": "b"`, `}]`},
		// The scanner ignores tokens; Complete handles these.
		{"partial literal", `[tru`, `]`},
		{"dangling comma", `[1,`, `]`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := CheckAndSuggestClose(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestScan(t *testing.T) {
	closers, inString, err := scan(`[{"a": "`)
	require.NoError(t, err)
	assert.Equal(t, []byte("]}"), closers)
	assert.True(t, inString)

	_, _, err = scan(`[1]]`)
	assert.ErrorIs(t, err, ErrMalformed)
}
