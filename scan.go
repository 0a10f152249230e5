package jsoncomplete

import (
	"errors"
)

// ErrMalformed is returned when the input contains a closing '}' or ']' that
// does not match the innermost open delimiter, or that has nothing to close.
// Such input is corrupt rather than truncated and is never repaired.
var ErrMalformed = errors.New("jsoncomplete: malformed JSON")

// CheckAndSuggestClose checks text for structural corruption and returns the
// closing delimiters that balance it: a '"' if the text ends inside a string,
// followed by the pending '}' and ']' closers, innermost first.
//
// The suggestion does not look at tokens. It is a valid completion when the
// text ends on a complete number or literal, but not when it ends inside a
// partial literal, number or escape sequence. Use Complete for those.
func CheckAndSuggestClose(text string) (string, error) {
	closers, inString, err := scan(text)
	if err != nil {
		return "", err
	}

	suggestion := make([]byte, 0, len(closers)+1)
	if inString {
		suggestion = append(suggestion, '"')
	}
	for i := len(closers) - 1; i >= 0; i-- {
		suggestion = append(suggestion, closers[i])
	}
	return string(suggestion), nil
}

// scan returns the stack of expected closers, outermost first, and whether
// text ends inside a string.
func scan(text string) ([]byte, bool, error) {
	var stack []byte
	var inString, escape bool

	for i := 0; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escape:
				escape = false
			case c == '\\':
				escape = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '"':
			inString = true
		case '}', ']':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return nil, false, ErrMalformed
			}
			stack = stack[:len(stack)-1]
		}
	}

	return stack, inString, nil
}
