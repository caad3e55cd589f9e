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

// Package interval implements a generic temporal interval algebra: typed
// boundaries (closed, open or infinite), intervals over any comparable
// temporal type, containment and emptiness queries, canonicalization to the
// half-open form used for duration computation, and bracket-notation
// rendering.
//
// The package is chronology-agnostic. It never inspects the temporal values
// themselves; ordering and stepping are supplied by a Timeline
// implementation, so the same algebra works over dates, timestamps or any
// other discrete axis.
//
// All value types in this package are immutable after construction and safe
// for concurrent use.
package interval

import (
	"encoding/json"
	"fmt"
	"strings"

	chronoerr "dirpx.dev/chrono/chronocore/errors"
	"dirpx.dev/chrono/chronocore/model"
	"gopkg.in/yaml.v3"
)

// Edge describes whether a finite boundary includes its temporal value.
// A closed edge contains the value, an open edge excludes it. Infinite
// boundaries carry no edge; see Boundary.
//
// This type implements the model.Model interface. The zero value is
// EdgeClosed, matching the convention that date intervals default to closed
// boundaries. JSON and YAML serialization uses the string names ("closed",
// "open").
type Edge uint8

const (
	// EdgeClosed marks a boundary that includes its temporal value.
	//
	// This is the zero value for Edge.
	EdgeClosed Edge = iota

	// EdgeOpen marks a boundary that excludes its temporal value.
	EdgeOpen
)

const (
	// EdgeClosedStr is the string representation of EdgeClosed.
	EdgeClosedStr = "closed"

	// EdgeOpenStr is the string representation of EdgeOpen.
	EdgeOpenStr = "open"
)

// ParseEdge parses a string into a validated Edge value.
//
// The input is normalized by trimming surrounding whitespace and lowering
// the case, then matched against the known names "closed" and "open".
// Unknown names yield EdgeClosed and a *errors.ParseError.
func ParseEdge(s string) (Edge, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	switch normalized {
	case EdgeClosedStr:
		return EdgeClosed, nil
	case EdgeOpenStr:
		return EdgeOpen, nil
	default:
		return EdgeClosed, &chronoerr.ParseError{Type: "Edge", Value: s}
	}
}

// Compile-time assertion that Edge implements model.Model.
var _ model.Model = (*Edge)(nil)

// IsClosed reports whether the edge includes its value.
func (e Edge) IsClosed() bool {
	return e == EdgeClosed
}

// String returns the lowercase edge name: "closed" or "open".
func (e Edge) String() string {
	switch e {
	case EdgeClosed:
		return EdgeClosedStr
	case EdgeOpen:
		return EdgeOpenStr
	default:
		return fmt.Sprintf("Edge(%d)", uint8(e))
	}
}

// Redacted returns the same representation as String; edges are not
// sensitive.
func (e Edge) Redacted() string {
	return e.String()
}

// TypeName returns "Edge". This method implements the model.Identifiable
// contract.
func (e Edge) TypeName() string {
	return "Edge"
}

// IsZero reports whether this Edge is the zero value, which is the default
// EdgeClosed.
func (e Edge) IsZero() bool {
	return e == EdgeClosed
}

// Equal reports whether two Edge values are the same.
func (e Edge) Equal(other Edge) bool {
	return e == other
}

// Validate checks that the Edge is one of the defined constants. This
// method implements the model.Validatable contract.
func (e Edge) Validate() error {
	switch e {
	case EdgeClosed, EdgeOpen:
		return nil
	default:
		return fmt.Errorf("Edge value %d is not a known edge (valid range: 0-%d)", uint8(e), uint8(EdgeOpen))
	}
}

// MarshalJSON serializes the Edge as its string name after validation.
func (e Edge) MarshalJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", e.TypeName(), err)
	}
	return json.Marshal(e.String())
}

// UnmarshalJSON deserializes an Edge from its JSON string name. On failure
// the receiver is not modified.
func (e *Edge) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", e.TypeName(), err)
	}

	parsed, err := ParseEdge(str)
	if err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", e.TypeName(), err)
	}

	*e = parsed
	return nil
}

// MarshalYAML serializes the Edge as its string name after validation.
func (e Edge) MarshalYAML() (interface{}, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", e.TypeName(), err)
	}
	return e.String(), nil
}

// UnmarshalYAML deserializes an Edge from its YAML string name. On failure
// the receiver is not modified.
func (e *Edge) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", e.TypeName(), err)
	}

	parsed, err := ParseEdge(str)
	if err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", e.TypeName(), err)
	}

	*e = parsed
	return nil
}
