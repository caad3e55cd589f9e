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
	"unicode/utf8"

	"dirpx.dev/chrono/chronocore/errors"
	"dirpx.dev/chrono/chronocore/model"
	"gopkg.in/yaml.v3"
)

// DefaultZeroDigit is the zero-digit glyph assumed when no attribute
// overrides it: the ASCII digit '0'.
const DefaultZeroDigit = '0'

// AttributeQuery is the typed configuration lookup the surrounding
// formatting engine supplies to the codec: every accessor takes the
// default to fall back to when the attribute is unset. This mirrors how
// the codec is driven in practice, where most attributes are absent and
// defaults dominate.
//
// Implementations MUST be safe for concurrent reads; the codec may query
// the same AttributeQuery from many goroutines at once.
type AttributeQuery interface {
	// QueryZeroDigit returns the glyph representing the digit zero, or
	// def when unset. Non-ASCII decimal digit systems are supported via a
	// constant per-digit offset from this glyph.
	QueryZeroDigit(def rune) rune

	// QueryLeniency returns the configured leniency mode, or def when
	// unset.
	QueryLeniency(def Leniency) Leniency

	// QueryProtectedCharacters returns the count of trailing input
	// characters reserved for later fields, or def when unset. The count
	// is never negative.
	QueryProtectedCharacters(def int) int

	// QueryPivotYear returns the configured pivot year, or def when
	// unset. A pivot year of 100 is the sentinel for "do not window".
	QueryPivotYear(def int) int
}

// Attributes is the declarative, serializable AttributeQuery
// implementation: a flat configuration value with one field per supported
// attribute, where the zero value of every field means "unset, use the
// default".
//
// This type implements the model.Model interface and is the shape under
// which formatting configuration travels through YAML and JSON files:
//
//	zero_digit: "٠"
//	leniency: strict
//	protected_characters: 4
//	pivot_year: 2050
//
// The zero value of Attributes is valid and means "all defaults".
type Attributes struct {
	// ZeroDigit is the glyph representing the digit zero, encoded as a
	// one-rune string. Empty means unset (ASCII '0' by default).
	ZeroDigit string `json:"zero_digit,omitempty" yaml:"zero_digit,omitempty"`

	// Leniency is the parsing leniency mode. The zero value is
	// LeniencySmart, which is also the default.
	Leniency Leniency `json:"leniency,omitempty" yaml:"leniency,omitempty"`

	// ProtectedCharacters is the count of trailing input characters
	// reserved for fields parsed later in the same pass. Zero means no
	// protection.
	ProtectedCharacters int `json:"protected_characters,omitempty" yaml:"protected_characters,omitempty"`

	// PivotYear is the reference year used to disambiguate two-digit
	// years. Zero means unset; the value 100 means "do not window"; any
	// other value MUST be at least 100.
	PivotYear int `json:"pivot_year,omitempty" yaml:"pivot_year,omitempty"`
}

// Compile-time assertions that Attributes implements AttributeQuery and
// model.Model.
var (
	_ AttributeQuery = Attributes{}
	_ model.Model    = (*Attributes)(nil)
)

// QueryZeroDigit implements AttributeQuery. It returns the first rune of
// the ZeroDigit field, or def when the field is empty.
func (a Attributes) QueryZeroDigit(def rune) rune {
	if a.ZeroDigit == "" {
		return def
	}
	r, _ := utf8.DecodeRuneInString(a.ZeroDigit)
	return r
}

// QueryLeniency implements AttributeQuery. The Leniency field's zero value
// is LeniencySmart, which coincides with the library default, so an unset
// field and an explicit "smart" are indistinguishable and equivalent.
func (a Attributes) QueryLeniency(def Leniency) Leniency {
	if a.Leniency == LeniencySmart {
		return def
	}
	return a.Leniency
}

// QueryProtectedCharacters implements AttributeQuery. A zero field falls
// back to def.
func (a Attributes) QueryProtectedCharacters(def int) int {
	if a.ProtectedCharacters == 0 {
		return def
	}
	return a.ProtectedCharacters
}

// QueryPivotYear implements AttributeQuery. A zero field falls back to
// def; the sentinel 100 and real pivot years pass through unchanged.
func (a Attributes) QueryPivotYear(def int) int {
	if a.PivotYear == 0 {
		return def
	}
	return a.PivotYear
}

// String returns a human-readable representation listing every attribute,
// with unset fields shown via their defaults.
func (a Attributes) String() string {
	return fmt.Sprintf("Attributes{ZeroDigit:%q, Leniency:%s, ProtectedCharacters:%d, PivotYear:%d}",
		string(a.QueryZeroDigit(DefaultZeroDigit)), a.Leniency, a.ProtectedCharacters, a.PivotYear)
}

// Redacted returns the same representation as String; formatting
// configuration is not sensitive.
func (a Attributes) Redacted() string {
	return a.String()
}

// TypeName returns "Attributes". This method implements the
// model.Identifiable contract.
func (a Attributes) TypeName() string {
	return "Attributes"
}

// IsZero reports whether every attribute is unset, meaning the instance
// behaves exactly like the library defaults.
func (a Attributes) IsZero() bool {
	return a.ZeroDigit == "" && a.Leniency == LeniencySmart && a.ProtectedCharacters == 0 && a.PivotYear == 0
}

// Equal reports whether two attribute sets are field-wise identical.
// Note that an unset field and an explicitly-set default value compare as
// different here even though they behave identically; use the Query
// accessors when behavioral equivalence is what matters.
func (a Attributes) Equal(other Attributes) bool {
	return a == other
}

// Validate checks all attribute constraints: ZeroDigit empty or exactly
// one rune, Leniency a known mode, ProtectedCharacters non-negative, and
// PivotYear either unset (0) or at least 100. This method implements the
// model.Validatable contract.
func (a Attributes) Validate() error {
	if a.ZeroDigit != "" && utf8.RuneCountInString(a.ZeroDigit) != 1 {
		return &errors.ValidationError{
			Type:   "Attributes",
			Field:  "ZeroDigit",
			Reason: "must be exactly one character",
			Value:  a.ZeroDigit,
		}
	}
	if err := a.Leniency.Validate(); err != nil {
		return fmt.Errorf("invalid Attributes.Leniency: %w", err)
	}
	if a.ProtectedCharacters < 0 {
		return &errors.ValidationError{
			Type:   "Attributes",
			Field:  "ProtectedCharacters",
			Reason: "must be non-negative",
			Value:  a.ProtectedCharacters,
		}
	}
	if a.PivotYear != 0 && a.PivotYear < 100 {
		return &errors.ValidationError{
			Type:   "Attributes",
			Field:  "PivotYear",
			Reason: "must be 0 (unset) or >= 100",
			Value:  a.PivotYear,
		}
	}
	return nil
}

// MarshalJSON serializes the attribute set after validation.
func (a Attributes) MarshalJSON() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", a.TypeName(), err)
	}
	type alias Attributes
	return json.Marshal((alias)(a))
}

// UnmarshalJSON deserializes the attribute set and validates the result.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	type alias Attributes
	var temp alias
	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("failed to unmarshal Attributes: %w", err)
	}
	*a = Attributes(temp)
	if err := a.Validate(); err != nil {
		return fmt.Errorf("invalid Attributes after unmarshal: %w", err)
	}
	return nil
}

// MarshalYAML serializes the attribute set after validation.
func (a Attributes) MarshalYAML() (interface{}, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", a.TypeName(), err)
	}
	type alias Attributes
	return (alias)(a), nil
}

// UnmarshalYAML deserializes the attribute set and validates the result.
func (a *Attributes) UnmarshalYAML(node *yaml.Node) error {
	type alias Attributes
	var temp alias
	if err := node.Decode(&temp); err != nil {
		return fmt.Errorf("failed to unmarshal Attributes: %w", err)
	}
	*a = Attributes(temp)
	if err := a.Validate(); err != nil {
		return fmt.Errorf("invalid Attributes after unmarshal: %w", err)
	}
	return nil
}
