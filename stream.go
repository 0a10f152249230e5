package jsoncomplete

import (
	"strings"
)

// Stream accumulates a document that arrives in chunks. Each call to
// Completion completes the whole buffer received so far; no parse state is
// carried between calls. A Stream is valid when default initialized and is not
// safe for concurrent use.
type Stream struct {
	Completer Completer
	buf       strings.Builder
}

// Write appends p to the buffer. It never fails.
func (s *Stream) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// WriteString appends str to the buffer. It never fails.
func (s *Stream) WriteString(str string) (int, error) {
	return s.buf.WriteString(str)
}

// Completion completes everything written so far.
func (s *Stream) Completion() (Completion, error) {
	return s.Completer.Completion(s.buf.String())
}

// Complete returns everything written so far, completed.
func (s *Stream) Complete() (string, error) {
	return s.Completer.Complete(s.buf.String())
}

// String returns the raw text written so far.
func (s *Stream) String() string {
	return s.buf.String()
}

// Len returns the number of bytes written so far.
func (s *Stream) Len() int {
	return s.buf.Len()
}

// Reset discards the buffer.
func (s *Stream) Reset() {
	s.buf.Reset()
}
