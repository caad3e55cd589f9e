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

// Package errors provides reusable error types for chrono enum-like and
// configuration types.
//
// This package defines common error types used across the chrono packages
// (such as format, interval) when parsing, marshaling, unmarshaling and
// configuring strongly typed chronological values. By centralizing these
// types, the package eliminates code duplication and provides a consistent
// error handling story across the entire chrono surface.
//
// The errors in this package are intentionally simple value carriers with
// stable message formats. They are designed to be:
//
//   - easy to construct from parsing / marshaling / configuration code,
//   - easy to recognize via errors.As and type assertions,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into an enum-like type fails.
//     Use this when implementing ParseXxx helpers that accept textual input
//     (for example, from configuration files or pattern attributes).
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//     Use this in MarshalJSON / MarshalText implementations to reject values
//     that do not correspond to known constants.
//
//   - UnmarshalError
//     Returned when unmarshaling data into an enum-like type fails due to
//     invalid input, parse errors or constraint violations.
//
//   - ValidationError
//     Returned when validation of a model type fails.
//     Use this in Validate() methods to report constraint violations,
//     missing required fields, or invalid field values.
//
//   - ConfigError
//     Returned when a codec or interval operation is misused at the
//     configuration level: binding a year codec to a non-year element,
//     resolving a pivot year below 100, constructing an interval with
//     contradictory boundaries, or requesting a duration base on an
//     infinite interval. A ConfigError always indicates a programming or
//     configuration mistake, never bad runtime input; recoverable parse
//     failures are reported through the parse cursor instead and never
//     use this package.
//
// # Usage
//
// Each package that defines enum-like types can use these error types
// directly or create type aliases for better API clarity:
//
//	import "dirpx.dev/chrono/chronocore/errors"
//
//	func ParseLeniency(s string) (Leniency, error) {
//	    switch s {
//	    case "strict":
//	        return LeniencyStrict, nil
//	    case "smart":
//	        return LeniencySmart, nil
//	    default:
//	        return 0, &errors.ParseError{Type: "Leniency", Value: s}
//	    }
//	}
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed
// enum-like value fails.
//
// Type identifies the logical type being parsed (for example, "Leniency",
// "Edge", "BracketPolicy"), and Value contains the exact string that could
// not be interpreted. Callers MAY pattern-match on Type to provide
// type-specific guidance or to translate errors into friendlier messages.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Leniency").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"chrono: invalid {Type} value: {Value}"
//
// For example:
//
//	"chrono: invalid Leniency value: sloppy"
//
// The format is intentionally stable so that callers can rely on it for
// diagnostics, while still preferring type assertions where possible.
func (e *ParseError) Error() string {
	return "chrono: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it
// being outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example, "Edge"),
// and Value contains the underlying numeric value that was deemed invalid.
//
// This error is primarily used as a guardrail: it prevents invalid
// enum-like values from being silently emitted into JSON, YAML or other
// serialized forms. In most cases a MarshalError indicates a programming
// error (for example, a corrupted value that was never validated).
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "Edge").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"chrono: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "chrono: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value
// fails.
//
// Type identifies the logical type being populated (for example,
// "Attributes"), Data contains the original raw payload (typically a JSON
// fragment), and Reason provides a human-readable description of what went
// wrong (for example, parse errors, invalid numeric value or empty input).
//
// This struct is intended to be surfaced directly in diagnostics or logs
// so that users can understand why their configuration or payload could
// not be interpreted. Callers MAY wrap UnmarshalError with additional
// context when propagating it further up the stack.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on privacy
	// and size considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	//
	// Reason SHOULD describe what went wrong (for example, "empty data" or
	// "unknown value 'foo'") rather than repeating the type name; the type
	// name is already available in the Type field and reflected in Error().
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"chrono: cannot unmarshal {Type}: {Reason}"
//
// The Data field is intentionally not included in the formatted message to
// avoid excessively verbose or sensitive logs; callers can log it
// separately when appropriate.
func (e *UnmarshalError) Error() string {
	return "chrono: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for
// example, "Attributes", "ElementID"), Field optionally identifies which
// field failed validation, Reason provides a human-readable explanation of
// the validation failure, and Value optionally contains the problematic
// value that failed validation.
//
// This error is used by Validate() methods in model types to report
// constraint violations, missing required fields, or invalid field values.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable or if the value should not be logged.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"chrono: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"chrono: invalid {Type}: {Reason}" (when Field is empty)
//
// For example:
//
//	"chrono: invalid Attributes.PivotYear: must be 0 or >= 100"
//	"chrono: invalid ElementID: must not be empty"
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "chrono: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "chrono: invalid " + e.Type + ": " + e.Reason
}

// ConfigError is returned when a codec or interval operation is misused at
// the configuration level, as opposed to receiving unparseable runtime
// input.
//
// Op names the operation that was misconfigured (for example,
// "NewTwoDigitYearCodec", "Parse", "CalculationBase"), and Reason explains
// the misuse. The distinction matters: recoverable parse failures are
// reported through the caller-owned parse cursor and never surface as Go
// errors, while a ConfigError means the caller wired the component
// incorrectly and retrying with the same configuration cannot succeed.
//
// Examples of conditions reported as ConfigError:
//
//   - binding a two-digit-year codec to an element whose name does not
//     start with "YEAR",
//   - resolving a pivot year smaller than 100,
//   - constructing an interval whose start is after its end,
//   - constructing an interval with two open, simultaneous boundaries,
//   - requesting a duration calculation base on an infinite interval.
type ConfigError struct {
	// Op is the name of the misused operation.
	Op string

	// Reason is a short, human-readable explanation of the misuse.
	Reason string
}

// Error implements the error interface for ConfigError.
//
// The error message format is:
//
//	"chrono: {Op}: {Reason}"
//
// For example:
//
//	"chrono: NewTwoDigitYearCodec: year element required, got \"MONTH\""
//	"chrono: CalculationBase: an infinite interval has no finite duration"
func (e *ConfigError) Error() string {
	return "chrono: " + e.Op + ": " + e.Reason
}
