package jsoncomplete

import (
	"strings"
)

// synthesize returns the text that closes every context in frames, innermost
// first.
func synthesize(frames []frame) string {
	var sb strings.Builder
	for i := len(frames) - 1; i >= 0; i-- {
		f := &frames[i]
		switch f.ctx {
		case TopLevel:
			// Only reachable for empty or all-whitespace input.
			if f.n == 0 {
				sb.WriteString("null")
			}
		case InString:
			sb.WriteByte('"')
		case NumberNeedsDigit, NumberNeedsExponentDigit:
			sb.WriteByte('0')
		case InLiteralTrue, InLiteralFalse, InLiteralNull:
			if w := f.ctx.literal(); f.n < len(w) {
				sb.WriteString(w[f.n:])
			}
		case ArrayAwaitingValue, ArrayAwaitingComma:
			sb.WriteByte(']')
		case ObjectAwaitingKey, ObjectAwaitingColon, ObjectAwaitingValue, ObjectAwaitingComma:
			sb.WriteByte('}')
		}
	}
	return sb.String()
}

// pathOf returns the location that the frames are currently writing: the
// current element of each open array and the current member of each open
// object whose key has been read.
func pathOf(frames []frame) Path {
	var elems []any
	for i := range frames {
		f := &frames[i]
		switch f.ctx {
		case ArrayAwaitingComma:
			elems = append(elems, f.n-1)
		case ObjectAwaitingValue, ObjectAwaitingComma:
			elems = append(elems, f.key)
		}
	}
	return Path{elems: elems}
}
