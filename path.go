package jsoncomplete

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Path represents a sequence of strings and integers >= 0 that gives the path
// to a value inside a JSON document. For example, the sequence {1, "foo", 0}
// is the path to document[1]["foo"][0]. The zero Path is the document itself.
type Path struct {
	elems []any
}

// Len returns the number of elements in the path.
func (p Path) Len() int {
	return len(p.elems)
}

// PathToSlice converts a Path to a slice of int and string values.
func PathToSlice(p Path) []any {
	return append([]any(nil), p.elems...)
}

// SliceToPath converts a slice of int and string values to a Path.
func SliceToPath(elems []any) Path {
	for _, e := range elems {
		switch e.(type) {
		case int, string:
		default:
			panic("SliceToPath: invalid element type; must be int or string")
		}
	}
	return Path{append([]any(nil), elems...)}
}

// PathEquals returns true iff the given path is equivalent to the given
// sequence of int and string values.
func PathEquals(path Path, elems []any) bool {
	if len(path.elems) != len(elems) {
		return false
	}
	for i, elem := range elems {
		switch e := elem.(type) {
		case int:
			if idx, ok := path.elems[i].(int); !ok || idx != e {
				return false
			}
		case string:
			if key, ok := path.elems[i].(string); !ok || key != e {
				return false
			}
		default:
			panic("PathEquals: invalid element type; must be int or string")
		}
	}
	return true
}

// String returns a string representation of the path. The string is a
// sequence of JavaScript indexation operators that can be used to access the
// value (e.g. [0]["foo"][1]).
func (p Path) String() string {
	var sb strings.Builder
	for _, elem := range p.elems {
		switch e := elem.(type) {
		case int:
			fmt.Fprintf(&sb, "[%d]", e)
		case string:
			kb, err := json.Marshal(e)
			if err != nil {
				panic("Error marshaling string in jsoncomplete.Path.String()")
			}
			fmt.Fprintf(&sb, "[%s]", kb)
		}
	}
	return sb.String()
}
