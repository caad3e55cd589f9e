/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package format implements the textual encoding and decoding core of the
// chrono library: the two-digit-year codec together with the value types it
// shares with the surrounding formatting engine (element identity, leniency
// modes, formatting attributes, the parse cursor and the parsed-value sink).
//
// The package is designed to be driven by a composite, field-by-field
// formatter which is NOT part of this library. That external engine owns
// pattern compilation and locale resources; this package only contributes
// the per-field print and parse machinery for abbreviated year fields, and
// the configuration types the engine passes down.
//
// All exported types except ParseLog and ParsedValues are immutable after
// construction and safe for concurrent use. ParseLog and ParsedValues are
// caller-owned mutable state and MUST NOT be shared across concurrent
// invocations without external synchronization.
package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/chrono/chronocore/errors"
	"dirpx.dev/chrono/chronocore/model"
	"gopkg.in/yaml.v3"
)

// Element identifies a chronological field by a stable name. It is the
// capability surface the surrounding chronology engine provides for field
// identity: the codec never inspects anything beyond the name.
//
// Names are conventionally upper-case with underscores ("YEAR",
// "YEAR_OF_ERA", "MONTH_OF_YEAR"). The two-digit-year codec requires the
// name of its bound element to start with "YEAR".
type Element interface {
	// Name returns the stable identifier of the chronological field.
	//
	// The name MUST be constant for a given element and MUST NOT be empty.
	Name() string
}

// ElementID is the trivial Element implementation: the element IS its name.
// It is the form used by callers that do not carry a richer element
// implementation of their own, and the form under which printed positions
// are recorded.
//
// This type implements the model.Model interface. The zero value (empty
// string) is invalid and fails validation; IsZero reports it.
type ElementID string

// Compile-time assertions that ElementID implements Element and model.Model.
var (
	_ Element     = ElementID("")
	_ model.Model = (*ElementID)(nil)
)

// Name implements the Element interface by returning the identifier itself.
func (id ElementID) Name() string {
	return string(id)
}

// String returns the element identifier for display or logging.
func (id ElementID) String() string {
	return string(id)
}

// Redacted returns the element identifier unchanged. Field names carry no
// sensitive information, so the redacted form equals the full form.
func (id ElementID) Redacted() string {
	return id.String()
}

// TypeName returns "ElementID". This method implements the
// model.Identifiable contract.
func (id ElementID) TypeName() string {
	return "ElementID"
}

// IsZero reports whether the identifier is empty.
func (id ElementID) IsZero() bool {
	return id == ""
}

// Equal reports whether two element identifiers name the same field.
func (id ElementID) Equal(other ElementID) bool {
	return id == other
}

// IsYearLike reports whether the identifier names a year field, meaning
// the name starts with the literal prefix "YEAR". Only year-like elements
// may be bound to a TwoDigitYearCodec.
func (id ElementID) IsYearLike() bool {
	return strings.HasPrefix(string(id), "YEAR")
}

// Validate checks that the identifier is non-empty and consists only of
// upper-case ASCII letters, digits and underscores, the conventional shape
// of chronological field names. This method implements the
// model.Validatable contract.
func (id ElementID) Validate() error {
	if id == "" {
		return &errors.ValidationError{Type: "ElementID", Reason: "must not be empty"}
	}
	for _, r := range id {
		ok := (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
		if !ok {
			return &errors.ValidationError{
				Type:   "ElementID",
				Reason: fmt.Sprintf("contains invalid character %q (allowed: A-Z, 0-9, _)", r),
				Value:  string(id),
			}
		}
	}
	return nil
}

// MarshalJSON serializes the ElementID as a JSON string after validation.
func (id ElementID) MarshalJSON() ([]byte, error) {
	if err := id.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", id.TypeName(), err)
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON deserializes the ElementID from a JSON string and validates
// the result. On failure the receiver is not modified.
func (id *ElementID) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", id.TypeName(), err)
	}
	parsed := ElementID(str)
	if err := parsed.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", id.TypeName(), err)
	}
	*id = parsed
	return nil
}

// MarshalYAML serializes the ElementID as a YAML string after validation.
func (id ElementID) MarshalYAML() (interface{}, error) {
	if err := id.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", id.TypeName(), err)
	}
	return string(id), nil
}

// UnmarshalYAML deserializes the ElementID from a YAML string and validates
// the result. On failure the receiver is not modified.
func (id *ElementID) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", id.TypeName(), err)
	}
	parsed := ElementID(str)
	if err := parsed.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", id.TypeName(), err)
	}
	*id = parsed
	return nil
}

// ElementPosition records the half-open byte range [Start, End) that one
// element occupied in a printed output buffer. The codec emits a position
// for every successful print when the output buffer exposes its current
// length and the caller supplied a tracker.
//
// This type implements the model.Model interface. Offsets are byte offsets
// into the output buffer, so multi-byte digit glyphs (for example
// Arabic-Indic digits) occupy more than one unit per character.
type ElementPosition struct {
	// Element names the field that was printed into the range.
	Element ElementID `json:"element" yaml:"element"`

	// Start is the inclusive byte offset at which the field begins.
	Start int `json:"start" yaml:"start"`

	// End is the exclusive byte offset at which the field ends.
	End int `json:"end" yaml:"end"`
}

// Compile-time assertion that ElementPosition implements model.Model.
var _ model.Model = (*ElementPosition)(nil)

// String returns a human-readable representation such as
// "YEAR_OF_ERA[4:6)".
func (p ElementPosition) String() string {
	return fmt.Sprintf("%s[%d:%d)", p.Element, p.Start, p.End)
}

// Redacted returns the same representation as String; printed positions
// carry no sensitive information.
func (p ElementPosition) Redacted() string {
	return p.String()
}

// TypeName returns "ElementPosition". This method implements the
// model.Identifiable contract.
func (p ElementPosition) TypeName() string {
	return "ElementPosition"
}

// IsZero reports whether the position is the zero value: no element and a
// degenerate empty range at offset zero.
func (p ElementPosition) IsZero() bool {
	return p.Element.IsZero() && p.Start == 0 && p.End == 0
}

// Equal reports whether two positions record the same element over the
// same range.
func (p ElementPosition) Equal(other ElementPosition) bool {
	return p == other
}

// Validate checks that the element is valid and that the range is
// well-formed: Start non-negative and strictly less than End. This method
// implements the model.Validatable contract.
func (p ElementPosition) Validate() error {
	if err := p.Element.Validate(); err != nil {
		return fmt.Errorf("invalid ElementPosition.Element: %w", err)
	}
	if p.Start < 0 {
		return &errors.ValidationError{Type: "ElementPosition", Field: "Start", Reason: "must be non-negative", Value: p.Start}
	}
	if p.End <= p.Start {
		return &errors.ValidationError{Type: "ElementPosition", Field: "End", Reason: "must be greater than Start", Value: p.End}
	}
	return nil
}

// MarshalJSON serializes the position after validation.
func (p ElementPosition) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	type alias ElementPosition
	return json.Marshal((alias)(p))
}

// UnmarshalJSON deserializes the position and validates the result.
func (p *ElementPosition) UnmarshalJSON(data []byte) error {
	type alias ElementPosition
	var temp alias
	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("failed to unmarshal ElementPosition: %w", err)
	}
	*p = ElementPosition(temp)
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid ElementPosition after unmarshal: %w", err)
	}
	return nil
}

// MarshalYAML serializes the position after validation.
func (p ElementPosition) MarshalYAML() (interface{}, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	type alias ElementPosition
	return (alias)(p), nil
}

// UnmarshalYAML deserializes the position and validates the result.
func (p *ElementPosition) UnmarshalYAML(node *yaml.Node) error {
	type alias ElementPosition
	var temp alias
	if err := node.Decode(&temp); err != nil {
		return fmt.Errorf("failed to unmarshal ElementPosition: %w", err)
	}
	*p = ElementPosition(temp)
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid ElementPosition after unmarshal: %w", err)
	}
	return nil
}

// PositionTracker receives the positions of printed elements. The output
// side of the codec calls Add once per successfully printed field when a
// tracker is supplied and the output buffer exposes its length.
type PositionTracker interface {
	// Add records one printed element position.
	Add(p ElementPosition)
}

// Positions is the slice-backed PositionTracker used by callers that just
// want to collect positions in print order.
type Positions []ElementPosition

// Compile-time assertion that *Positions implements PositionTracker.
var _ PositionTracker = (*Positions)(nil)

// Add appends the position to the slice.
func (ps *Positions) Add(p ElementPosition) {
	*ps = append(*ps, p)
}
