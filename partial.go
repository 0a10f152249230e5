package jsoncomplete

import (
	"encoding/json"
	"errors"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	xjson "github.com/charmbracelet/x/json"
)

// ParseState reports how ParsePartial obtained its value.
type ParseState string

const (
	// ParseStateUndefined means the input was empty.
	ParseStateUndefined ParseState = "undefined"

	// ParseStateSuccessful means the input was already a complete document.
	ParseStateSuccessful ParseState = "successful"

	// ParseStateCompleted means the input was truncated and parsed after
	// completion.
	ParseStateCompleted ParseState = "completed"

	// ParseStateRepaired means the input was malformed and parsed after repair.
	ParseStateRepaired ParseState = "repaired"

	// ParseStateFailed means no value could be obtained.
	ParseStateFailed ParseState = "failed"
)

// Option configures ParsePartial.
type Option func(*options)

type options struct {
	mode   Mode
	repair bool
}

// WithMode sets the completion mode. The default is RollbackAware.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithRepair makes ParsePartial fall back to a general purpose JSON repairer
// when the input is malformed, instead of failing with ErrMalformed.
func WithRepair() Option {
	return func(o *options) {
		o.repair = true
	}
}

// ParsePartial decodes a possibly truncated document into the values that
// encoding/json produces for an `any` target.
//
// Example:
//
//	v, state, err := ParsePartial(`{"name": "John", "tags": ["a", "b`)
//	// v: map[string]any{"name": "John", "tags": []any{"a", "b"}}
//	// state: ParseStateCompleted
func ParsePartial(text string, opts ...Option) (any, ParseState, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if text == "" {
		return nil, ParseStateUndefined, nil
	}

	var result any
	if xjson.IsValid(text) {
		if err := json.Unmarshal([]byte(text), &result); err != nil {
			return nil, ParseStateFailed, fmt.Errorf("failed to parse json: %w", err)
		}
		return result, ParseStateSuccessful, nil
	}

	completed, err := Completer{Mode: o.mode}.Complete(text)
	if errors.Is(err, ErrMalformed) && o.repair {
		repaired, rerr := jsonrepair.RepairJSON(text)
		if rerr != nil {
			return nil, ParseStateFailed, fmt.Errorf("json repair failed: %w", rerr)
		}
		if err := json.Unmarshal([]byte(repaired), &result); err != nil {
			return nil, ParseStateFailed, fmt.Errorf("failed to parse repaired json: %w", err)
		}
		return result, ParseStateRepaired, nil
	}
	if err != nil {
		return nil, ParseStateFailed, err
	}

	if err := json.Unmarshal([]byte(completed), &result); err != nil {
		return nil, ParseStateFailed, fmt.Errorf("failed to parse completed json: %w", err)
	}
	return result, ParseStateCompleted, nil
}
