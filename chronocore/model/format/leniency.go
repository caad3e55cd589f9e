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

package format

import (
	"encoding/json"
	"fmt"
	"strings"

	chronoerr "dirpx.dev/chrono/chronocore/errors"
	"dirpx.dev/chrono/chronocore/model"
	"gopkg.in/yaml.v3"
)

// Leniency controls how strictly textual input must conform to the
// expected digit width of a numeric field before extra digits are
// tolerated.
//
// For the two-digit-year codec the leniency determines the maximum number
// of digits a single parse may consume: strict mode caps the run at
// exactly 2 digits, while smart and lax modes allow up to 9 digits and
// interpret longer runs as already-absolute years.
//
// This type implements the model.Model interface. The zero value is
// LeniencySmart, the library default, so an unset leniency in a
// configuration struct behaves like the default without any extra
// plumbing. JSON and YAML serialization uses the string names ("smart",
// "strict", "lax") rather than numeric values for readability and forward
// compatibility.
type Leniency uint8

const (
	// LeniencySmart is the default mode: up to 9 digits may be consumed,
	// and runs longer than 2 digits are interpreted as absolute years.
	//
	// This is the zero value for Leniency.
	LeniencySmart Leniency = iota

	// LeniencyStrict caps a two-digit-year parse at exactly 2 digits,
	// leaving any following digits for subsequent fields.
	LeniencyStrict

	// LeniencyLax behaves like LeniencySmart for digit consumption; the
	// distinction matters to composite parsers that relax separator and
	// range checks, which are outside this package.
	LeniencyLax
)

const (
	// LeniencySmartStr is the string representation of LeniencySmart.
	LeniencySmartStr = "smart"

	// LeniencyStrictStr is the string representation of LeniencyStrict.
	LeniencyStrictStr = "strict"

	// LeniencyLaxStr is the string representation of LeniencyLax.
	LeniencyLaxStr = "lax"
)

// ParseLeniency parses a string into a validated Leniency value.
//
// The input is normalized by trimming surrounding whitespace and lowering
// the case, then matched against the known mode names "smart", "strict"
// and "lax". Unknown names yield LeniencySmart and a *errors.ParseError.
//
// Example usage:
//
//	mode, err := format.ParseLeniency("  STRICT ")
//	// mode = LeniencyStrict, err = nil
func ParseLeniency(s string) (Leniency, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	switch normalized {
	case LeniencySmartStr:
		return LeniencySmart, nil
	case LeniencyStrictStr:
		return LeniencyStrict, nil
	case LeniencyLaxStr:
		return LeniencyLax, nil
	default:
		return LeniencySmart, &chronoerr.ParseError{Type: "Leniency", Value: s}
	}
}

// Compile-time assertion that Leniency implements model.Model.
var _ model.Model = (*Leniency)(nil)

// IsStrict reports whether this is the strict mode. The two-digit-year
// codec uses it to pick the 2-digit consumption cap.
func (l Leniency) IsStrict() bool {
	return l == LeniencyStrict
}

// String returns the lowercase mode name: "smart", "strict" or "lax".
func (l Leniency) String() string {
	switch l {
	case LeniencySmart:
		return LeniencySmartStr
	case LeniencyStrict:
		return LeniencyStrictStr
	case LeniencyLax:
		return LeniencyLaxStr
	default:
		return fmt.Sprintf("Leniency(%d)", uint8(l))
	}
}

// Redacted returns the same representation as String; leniency modes are
// not sensitive.
func (l Leniency) Redacted() string {
	return l.String()
}

// TypeName returns "Leniency". This method implements the
// model.Identifiable contract.
func (l Leniency) TypeName() string {
	return "Leniency"
}

// IsZero reports whether this Leniency is the zero value, which is the
// default LeniencySmart.
func (l Leniency) IsZero() bool {
	return l == LeniencySmart
}

// Equal reports whether two Leniency values are the same mode.
func (l Leniency) Equal(other Leniency) bool {
	return l == other
}

// Validate checks that the Leniency is one of the defined constants.
// This method implements the model.Validatable contract.
func (l Leniency) Validate() error {
	switch l {
	case LeniencySmart, LeniencyStrict, LeniencyLax:
		return nil
	default:
		return fmt.Errorf("Leniency value %d is not a known mode (valid range: 0-%d)", uint8(l), uint8(LeniencyLax))
	}
}

// MarshalJSON serializes the Leniency as its string name after validation.
func (l Leniency) MarshalJSON() ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", l.TypeName(), err)
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON deserializes a Leniency from its JSON string name. The
// input is normalized the same way ParseLeniency normalizes it. On failure
// the receiver is not modified.
func (l *Leniency) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", l.TypeName(), err)
	}

	parsed, err := ParseLeniency(str)
	if err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", l.TypeName(), err)
	}

	*l = parsed
	return nil
}

// MarshalYAML serializes the Leniency as its string name after validation.
func (l Leniency) MarshalYAML() (interface{}, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", l.TypeName(), err)
	}
	return l.String(), nil
}

// UnmarshalYAML deserializes a Leniency from its YAML string name. On
// failure the receiver is not modified.
func (l *Leniency) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", l.TypeName(), err)
	}

	parsed, err := ParseLeniency(str)
	if err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", l.TypeName(), err)
	}

	*l = parsed
	return nil
}
