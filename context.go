package jsoncomplete

// Context identifies one level of syntactic nesting in a partially read JSON
// document.
type Context int

const (
	// Outside any value. The bottom of every context stack.
	TopLevel Context = iota
	// Inside a string
	InString
	// Immediately after a '\' inside a string
	InStringEscape
	// Inside a "\uXXXX" escape
	InStringUnicodeEscape
	// Inside a number that is complete as it stands
	InNumber
	// After a '-', '.' or an exponent sign; at least one more digit is needed.
	NumberNeedsDigit
	// After an 'e' or 'E'
	NumberNeedsExponentDigit
	// Inside the literal true
	InLiteralTrue
	// Inside the literal false
	InLiteralFalse
	// Inside the literal null
	InLiteralNull
	// After '[' or ','
	ArrayAwaitingValue
	// After an array element
	ArrayAwaitingComma
	// After '{' or ','
	ObjectAwaitingKey
	// After an object key (or while reading it)
	ObjectAwaitingColon
	// After ':'
	ObjectAwaitingValue
	// After an object member's value
	ObjectAwaitingComma
)

func (c Context) String() string {
	switch c {
	case TopLevel:
		return "TopLevel"
	case InString:
		return "InString"
	case InStringEscape:
		return "InStringEscape"
	case InStringUnicodeEscape:
		return "InStringUnicodeEscape"
	case InNumber:
		return "InNumber"
	case NumberNeedsDigit:
		return "NumberNeedsDigit"
	case NumberNeedsExponentDigit:
		return "NumberNeedsExponentDigit"
	case InLiteralTrue:
		return "InLiteral(true)"
	case InLiteralFalse:
		return "InLiteral(false)"
	case InLiteralNull:
		return "InLiteral(null)"
	case ArrayAwaitingValue:
		return "ArrayAwaitingValue"
	case ArrayAwaitingComma:
		return "ArrayAwaitingComma"
	case ObjectAwaitingKey:
		return "ObjectAwaitingKey"
	case ObjectAwaitingColon:
		return "ObjectAwaitingColon"
	case ObjectAwaitingValue:
		return "ObjectAwaitingValue"
	case ObjectAwaitingComma:
		return "ObjectAwaitingComma"
	}
	return "<unknown Context>"
}

// IsArray returns true for the Array* contexts.
func (c Context) IsArray() bool {
	return c == ArrayAwaitingValue || c == ArrayAwaitingComma
}

// IsObject returns true for the Object* contexts.
func (c Context) IsObject() bool {
	return c >= ObjectAwaitingKey && c <= ObjectAwaitingComma
}

// literal returns the full spelling of an InLiteral* context, or "" for any
// other context.
func (c Context) literal() string {
	switch c {
	case InLiteralTrue:
		return "true"
	case InLiteralFalse:
		return "false"
	case InLiteralNull:
		return "null"
	}
	return ""
}

// frame is one entry of the context stack. The meaning of n depends on ctx:
// hex digits read for InStringUnicodeEscape, letters read for InLiteral*,
// elements started for arrays, and 1 once TopLevel has begun a value. For
// objects, key holds the decoded key of the current member and keyStart the
// offset of the opening quote of the key being read.
type frame struct {
	ctx      Context
	n        int
	key      string
	keyStart int
}

type contextStack struct {
	frames []frame
}

func newContextStack() contextStack {
	s := contextStack{frames: make([]frame, 1, 16)}
	s.frames[0] = frame{ctx: TopLevel}
	return s
}

func (s *contextStack) push(c Context) {
	s.frames = append(s.frames, frame{ctx: c})
}

func (s *contextStack) pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

// replace changes the context of the top frame, keeping its counters.
func (s *contextStack) replace(c Context) {
	s.frames[len(s.frames)-1].ctx = c
}

func (s *contextStack) top() *frame {
	return &s.frames[len(s.frames)-1]
}

func (s *contextStack) depth() int {
	return len(s.frames)
}

// contexts returns the contexts of the stack, outermost first.
func (s *contextStack) contexts() []Context {
	cs := make([]Context, len(s.frames))
	for i, f := range s.frames {
		cs[i] = f.ctx
	}
	return cs
}

func (s *contextStack) clone() []frame {
	return append([]frame(nil), s.frames...)
}
