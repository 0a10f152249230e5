package jsoncomplete

import (
	"encoding/json"
)

// RespawnReason says why a RespawnPoint was recorded.
type RespawnReason int

const (
	// A '\' was read inside a string and the escape sequence is not yet
	// complete.
	StringEscapeStarted RespawnReason = iota
	// A ',' was read in a collection, or the opening quote of an object key,
	// and the new item has no value yet.
	CollectionItemStarted
	numRespawnReasons = iota
)

func (r RespawnReason) String() string {
	switch r {
	case StringEscapeStarted:
		return "StringEscapeStarted"
	case CollectionItemStarted:
		return "CollectionItemStarted"
	}
	return "<unknown RespawnReason>"
}

// RespawnPoint marks the last input position at which the parse state was
// unambiguous. Completing a truncated document discards all input at or after
// Offset.
type RespawnPoint struct {
	Offset int // byte offset of the character that opened the ambiguity
	Depth  int // context stack depth when the point was recorded
	Reason RespawnReason
}

type respawn struct {
	RespawnPoint
	set      bool
	snapshot []frame
}

// automaton holds the state of a single completion pass over text. It is
// created, run and discarded by one call.
type automaton struct {
	mode    Mode
	text    string
	pos     int
	stack   contextStack
	pending [numRespawnReasons]respawn
	halted  bool
}

func newAutomaton(text string, mode Mode) *automaton {
	return &automaton{
		mode:  mode,
		text:  text,
		stack: newContextStack(),
	}
}

func (a *automaton) run() {
	for a.pos = 0; a.pos < len(a.text) && !a.halted; a.pos++ {
		c := a.text[a.pos]
		// step returns false when a token ended just before c, in which case c is
		// dispatched again in the context that is now on top.
		for !a.step(c) {
		}
	}
}

// finish applies the rollback rule and returns the number of input bytes to
// keep together with the respawn point that was used, if any.
func (a *automaton) finish() (int, *RespawnPoint) {
	if a.mode == BracketOnly {
		return len(a.text), nil
	}

	var best *respawn
	for i := range a.pending {
		p := &a.pending[i]
		if p.set && (best == nil || p.Offset < best.Offset) {
			best = p
		}
	}
	if best == nil {
		return len(a.text), nil
	}

	a.stack.frames = best.snapshot
	rp := best.RespawnPoint
	return rp.Offset, &rp
}

func (a *automaton) step(c byte) bool {
	f := a.stack.top()

	switch f.ctx {
	case TopLevel:
		a.startValue(c)
	case InString:
		switch c {
		case '"':
			a.closeString()
		case '\\':
			a.record(StringEscapeStarted)
			a.stack.push(InStringEscape)
		}
	case InStringEscape:
		if c == 'u' {
			a.stack.replace(InStringUnicodeEscape)
		} else {
			a.stack.pop()
			a.clear(StringEscapeStarted)
		}
	case InStringUnicodeEscape:
		if hexVal(c) == -1 {
			// Bad '\uXXXX' escape. Nothing after the '\' can be trusted, so the
			// rollback-aware completer stops here and rolls back at the end.
			if a.mode != BracketOnly {
				a.halted = true
				return true
			}
			a.stack.pop()
			return false
		}
		f.n++
		if f.n == 4 {
			a.stack.pop()
			a.clear(StringEscapeStarted)
		}
	case InNumber:
		switch {
		case isDigit(c):
		case c == '.':
			a.stack.replace(NumberNeedsDigit)
		case c == 'e' || c == 'E':
			a.stack.replace(NumberNeedsExponentDigit)
		default:
			a.stack.pop()
			return false
		}
	case NumberNeedsDigit:
		if !isDigit(c) {
			a.stack.pop()
			return false
		}
		a.stack.replace(InNumber)
	case NumberNeedsExponentDigit:
		switch {
		case c == '+' || c == '-':
			a.stack.replace(NumberNeedsDigit)
		case isDigit(c):
			a.stack.replace(InNumber)
		default:
			a.stack.pop()
			return false
		}
	case InLiteralTrue, InLiteralFalse, InLiteralNull:
		if c < 'a' || c > 'z' {
			a.stack.pop()
			return false
		}
		f.n++
	case ArrayAwaitingValue:
		switch {
		case c == ']':
			a.stack.pop()
		case isWhitespace(c):
		default:
			a.clear(CollectionItemStarted)
			f.n++
			a.stack.replace(ArrayAwaitingComma)
			a.startValue(c)
		}
	case ArrayAwaitingComma:
		switch c {
		case ']':
			a.stack.pop()
		case ',':
			a.record(CollectionItemStarted)
			a.stack.replace(ArrayAwaitingValue)
		}
	case ObjectAwaitingKey:
		switch c {
		case '}':
			a.stack.pop()
		case '"':
			a.record(CollectionItemStarted)
			f.keyStart = a.pos
			a.stack.replace(ObjectAwaitingColon)
			a.stack.push(InString)
		}
	case ObjectAwaitingColon:
		if c == ':' {
			a.stack.replace(ObjectAwaitingValue)
		}
	case ObjectAwaitingValue:
		if !isWhitespace(c) {
			a.clear(CollectionItemStarted)
			a.stack.replace(ObjectAwaitingComma)
			a.startValue(c)
		}
	case ObjectAwaitingComma:
		switch c {
		case '}':
			a.stack.pop()
		case ',':
			a.record(CollectionItemStarted)
			a.stack.replace(ObjectAwaitingKey)
		}
	}

	return true
}

// startValue pushes the context for the value that c begins. Characters that
// cannot begin a value (whitespace, mostly) are ignored.
func (a *automaton) startValue(c byte) {
	var next Context
	switch c {
	case '"':
		next = InString
	case '-':
		next = NumberNeedsDigit
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		next = InNumber
	case 't':
		next = InLiteralTrue
	case 'f':
		next = InLiteralFalse
	case 'n':
		next = InLiteralNull
	case '[':
		next = ArrayAwaitingValue
	case '{':
		next = ObjectAwaitingKey
	default:
		return
	}

	if a.stack.depth() == 1 {
		a.stack.top().n = 1
	}
	a.stack.push(next)
	if next.literal() != "" {
		a.stack.top().n = 1
	}
}

// closeString pops an InString context. If the string was an object key, the
// key is stored on the object's frame.
func (a *automaton) closeString() {
	a.stack.pop()
	p := a.stack.top()
	if p.ctx == ObjectAwaitingColon {
		p.key = decodeKey(a.text[p.keyStart : a.pos+1])
	}
}

// record sets a respawn point at the current position unless one is already
// pending for the same reason.
func (a *automaton) record(reason RespawnReason) {
	if a.mode == BracketOnly || a.pending[reason].set {
		return
	}
	a.pending[reason] = respawn{
		RespawnPoint: RespawnPoint{
			Offset: a.pos,
			Depth:  a.stack.depth(),
			Reason: reason,
		},
		set:      true,
		snapshot: a.stack.clone(),
	}
}

func (a *automaton) clear(reason RespawnReason) {
	a.pending[reason] = respawn{}
}

func decodeKey(quoted string) string {
	var k string
	if err := json.Unmarshal([]byte(quoted), &k); err != nil {
		return quoted[1 : len(quoted)-1]
	}
	return k
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexVal(d byte) int {
	if d >= '0' && d <= '9' {
		return int(d) - '0'
	}
	if d >= 'a' && d <= 'f' {
		return int(d) - 'a' + 10
	}
	if d >= 'A' && d <= 'F' {
		return int(d) - 'A' + 10
	}
	return -1
}
