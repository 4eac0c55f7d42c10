// Package reply turns free-form model output into validated JSON values.
package reply

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/qri-io/jsonschema"
)

var ErrNoJSONArray = errors.New("reply contains no JSON array")

// SchemaError lists every way a reply broke its schema.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return "reply violates schema: " + strings.Join(e.Problems, "; ")
}

// ExtractArray returns the first well-formed JSON array in text, skipping
// brackets in surrounding commentary or code fences.
func ExtractArray(text string) (string, error) {
	arrays := candidates(text)
	if len(arrays) == 0 {
		return "", ErrNoJSONArray
	}
	return arrays[0], nil
}

// candidates lists every top-level well-formed JSON array in text, in order.
func candidates(text string) []string {
	var out []string
	for i := 0; i < len(text); i++ {
		if text[i] != '[' {
			continue
		}
		var raw json.RawMessage
		if err := json.NewDecoder(strings.NewReader(text[i:])).Decode(&raw); err != nil {
			continue
		}
		out = append(out, string(raw))
		i += len(raw) - 1
	}
	return out
}

type Schema struct {
	rs *jsonschema.Schema
}

func Compile(raw string) (*Schema, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(raw), rs); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Schema{rs: rs}, nil
}

func MustCompile(raw string) *Schema {
	s, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// Decode validates each JSON array in text in order and unmarshals the first
// one that satisfies the schema into out. When none does, the problems of the
// first array are reported.
func (s *Schema) Decode(ctx context.Context, text string, out interface{}) error {
	arrays := candidates(text)
	if len(arrays) == 0 {
		return ErrNoJSONArray
	}

	var first error
	for _, payload := range arrays {
		err := s.decodeOne(ctx, payload, out)
		if err == nil {
			return nil
		}
		if first == nil {
			first = err
		}
	}
	return first
}

func (s *Schema) decodeOne(ctx context.Context, payload string, out interface{}) error {
	keyErrs, err := s.rs.ValidateBytes(ctx, []byte(payload))
	if err != nil {
		return &SchemaError{Problems: []string{err.Error()}}
	}
	if len(keyErrs) > 0 {
		problems := make([]string, len(keyErrs))
		for i, ke := range keyErrs {
			problems[i] = fmt.Sprintf("%s: %s", ke.PropertyPath, ke.Message)
		}
		return &SchemaError{Problems: problems}
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return &SchemaError{Problems: []string{err.Error()}}
	}
	return nil
}
