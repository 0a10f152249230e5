// Package jsoncomplete turns truncated JSON text into valid JSON. It is meant
// for documents that are still being produced (for example the output of a
// streaming API): re-run Complete on the whole accumulated buffer every time
// more text arrives to get a parseable snapshot of the document so far.
//
// Truncation is distinguished from corruption. Text with a mismatched or
// unbalanced closing '}' or ']' is reported with ErrMalformed and is never
// repaired.
//
// The completion is syntactic. A trailing token that cannot be finished
// without guessing its content (a half-written escape sequence, an object key
// with no value yet, a dangling ',') is dropped rather than invented. Numbers
// and literals are finished deterministically: "1." becomes "1.0" and "tr"
// becomes "true".
package jsoncomplete

import (
	xjson "github.com/charmbracelet/x/json"
)

// Mode selects how a Completer treats an ambiguous trailing token.
type Mode int

const (
	// Drop trailing tokens that cannot be completed without guessing. This is
	// the default.
	RollbackAware Mode = iota
	// Close whatever is open at the end of the input, even mid-escape or
	// mid-key. Faster, but the result is not always valid JSON.
	BracketOnly
)

func (m Mode) String() string {
	switch m {
	case RollbackAware:
		return "RollbackAware"
	case BracketOnly:
		return "BracketOnly"
	}
	return "<unknown Mode>"
}

// Completer completes truncated JSON. It is valid when default initialized and
// safe for concurrent use.
type Completer struct {
	Mode Mode
}

// Completion describes how a piece of text was completed.
type Completion struct {
	Text     string        // the completed document: the kept input followed by Suffix
	Suffix   string        // the text appended to the kept input
	Kept     int           // number of input bytes kept; less than the input length after a rollback
	Rollback *RespawnPoint // the point the input was rolled back to, or nil
	Path     Path          // location of the value being written when the input ended
	Stack    []Context     // the open contexts at the end of the kept input, outermost first
}

// Complete reports whether the input was already a complete document.
func (c Completion) Complete() bool {
	return c.Suffix == "" && c.Rollback == nil
}

// Valid reports whether Text parses as JSON. It is always true for
// completions made in RollbackAware mode from a prefix of a valid document.
func (c Completion) Valid() bool {
	return xjson.IsValid(c.Text)
}

// Completion checks text for corruption and then completes it.
func (c Completer) Completion(text string) (Completion, error) {
	if _, _, err := scan(text); err != nil {
		return Completion{}, err
	}
	return c.untruncate(text), nil
}

// Complete checks text for corruption and returns the completed document.
func (c Completer) Complete(text string) (string, error) {
	comp, err := c.Completion(text)
	if err != nil {
		return "", err
	}
	return comp.Text, nil
}

func (c Completer) untruncate(text string) Completion {
	a := newAutomaton(text, c.Mode)
	a.run()
	kept, rp := a.finish()
	suffix := synthesize(a.stack.frames)

	return Completion{
		Text:     text[:kept] + suffix,
		Suffix:   suffix,
		Kept:     kept,
		Rollback: rp,
		Path:     pathOf(a.stack.frames),
		Stack:    a.stack.contexts(),
	}
}

// Complete returns text completed to a valid JSON document, or ErrMalformed
// if text contains a mismatched closing delimiter. A document that is already
// complete is returned unchanged.
func Complete(text string) (string, error) {
	return Completer{}.Complete(text)
}

// CompleteBracketOnly is like Complete but never rolls back. Whatever is open
// at the end of the input is closed in place, so a truncated escape sequence
// or an object key with no value can yield invalid JSON.
func CompleteBracketOnly(text string) (string, error) {
	return Completer{Mode: BracketOnly}.Complete(text)
}

// Untruncate completes text without first checking it for corruption. It
// never fails; for corrupt input the result is unspecified.
func Untruncate(text string) string {
	return Completer{}.untruncate(text).Text
}
