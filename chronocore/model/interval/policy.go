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

package interval

import (
	"encoding/json"
	"fmt"
	"strings"

	chronoerr "dirpx.dev/chrono/chronocore/errors"
	"dirpx.dev/chrono/chronocore/model"
	"gopkg.in/yaml.v3"
)

// BracketPolicy controls whether rendered intervals carry their boundary
// brackets. The standard convention is a closed (or infinite past) start
// together with an open (or infinite future) end; intervals in that shape
// can omit brackets without ambiguity.
//
// This type implements the model.Model interface. The zero value is
// BracketShowWhenNonStandard, the library default. JSON and YAML
// serialization uses the string names ("when-non-standard", "never",
// "always").
type BracketPolicy uint8

const (
	// BracketShowWhenNonStandard shows brackets only for intervals that
	// deviate from the closed-start/open-end convention.
	//
	// This is the zero value for BracketPolicy.
	BracketShowWhenNonStandard BracketPolicy = iota

	// BracketShowNever suppresses brackets unconditionally.
	BracketShowNever

	// BracketShowAlways shows brackets unconditionally.
	BracketShowAlways
)

const (
	// BracketShowWhenNonStandardStr is the string representation of
	// BracketShowWhenNonStandard.
	BracketShowWhenNonStandardStr = "when-non-standard"

	// BracketShowNeverStr is the string representation of BracketShowNever.
	BracketShowNeverStr = "never"

	// BracketShowAlwaysStr is the string representation of
	// BracketShowAlways.
	BracketShowAlwaysStr = "always"
)

// ParseBracketPolicy parses a string into a validated BracketPolicy value.
//
// The input is normalized by trimming surrounding whitespace and lowering
// the case, then matched against the known names "when-non-standard",
// "never" and "always". Unknown names yield BracketShowWhenNonStandard and
// a *errors.ParseError.
func ParseBracketPolicy(s string) (BracketPolicy, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	switch normalized {
	case BracketShowWhenNonStandardStr:
		return BracketShowWhenNonStandard, nil
	case BracketShowNeverStr:
		return BracketShowNever, nil
	case BracketShowAlwaysStr:
		return BracketShowAlways, nil
	default:
		return BracketShowWhenNonStandard, &chronoerr.ParseError{Type: "BracketPolicy", Value: s}
	}
}

// Compile-time assertion that BracketPolicy implements model.Model.
var _ model.Model = (*BracketPolicy)(nil)

// Display reports whether the policy shows brackets for the given
// interval. This is a package-level function because methods cannot take
// type parameters of their own.
func Display[T comparable](p BracketPolicy, iv Interval[T]) bool {
	switch p {
	case BracketShowAlways:
		return true
	case BracketShowNever:
		return false
	default:
		return !isStandardShape(iv)
	}
}

// isStandardShape reports the closed-start/open-end convention: an
// infinite boundary on either side also counts as standard for that side.
func isStandardShape[T comparable](iv Interval[T]) bool {
	startOK := iv.Start().IsInfinite() || iv.Start().IsClosed()
	endOK := iv.End().IsInfinite() || iv.End().IsOpen()
	return startOK && endOK
}

// String returns the lowercase policy name.
func (p BracketPolicy) String() string {
	switch p {
	case BracketShowWhenNonStandard:
		return BracketShowWhenNonStandardStr
	case BracketShowNever:
		return BracketShowNeverStr
	case BracketShowAlways:
		return BracketShowAlwaysStr
	default:
		return fmt.Sprintf("BracketPolicy(%d)", uint8(p))
	}
}

// Redacted returns the same representation as String; bracket policies are
// not sensitive.
func (p BracketPolicy) Redacted() string {
	return p.String()
}

// TypeName returns "BracketPolicy". This method implements the
// model.Identifiable contract.
func (p BracketPolicy) TypeName() string {
	return "BracketPolicy"
}

// IsZero reports whether this BracketPolicy is the zero value, which is
// the default BracketShowWhenNonStandard.
func (p BracketPolicy) IsZero() bool {
	return p == BracketShowWhenNonStandard
}

// Equal reports whether two BracketPolicy values are the same.
func (p BracketPolicy) Equal(other BracketPolicy) bool {
	return p == other
}

// Validate checks that the BracketPolicy is one of the defined constants.
// This method implements the model.Validatable contract.
func (p BracketPolicy) Validate() error {
	switch p {
	case BracketShowWhenNonStandard, BracketShowNever, BracketShowAlways:
		return nil
	default:
		return fmt.Errorf("BracketPolicy value %d is not a known policy (valid range: 0-%d)", uint8(p), uint8(BracketShowAlways))
	}
}

// MarshalJSON serializes the BracketPolicy as its string name after
// validation.
func (p BracketPolicy) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	return json.Marshal(p.String())
}

// UnmarshalJSON deserializes a BracketPolicy from its JSON string name. On
// failure the receiver is not modified.
func (p *BracketPolicy) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", p.TypeName(), err)
	}

	parsed, err := ParseBracketPolicy(str)
	if err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", p.TypeName(), err)
	}

	*p = parsed
	return nil
}

// MarshalYAML serializes the BracketPolicy as its string name after
// validation.
func (p BracketPolicy) MarshalYAML() (interface{}, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	return p.String(), nil
}

// UnmarshalYAML deserializes a BracketPolicy from its YAML string name. On
// failure the receiver is not modified.
func (p *BracketPolicy) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", p.TypeName(), err)
	}

	parsed, err := ParseBracketPolicy(str)
	if err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", p.TypeName(), err)
	}

	*p = parsed
	return nil
}
