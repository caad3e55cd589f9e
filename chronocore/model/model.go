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

// Package model defines the core contracts and interfaces that all chrono
// domain model types MUST implement to ensure consistency, type safety, and
// proper behavior across the entire library.
//
// Every value type representing chronological configuration or structure
// (such as Leniency, Edge, Attributes, ElementID, BracketPolicy) SHOULD
// implement the Model interface or its constituent parts (Validatable,
// Serializable, Loggable, Identifiable, ZeroCheckable). These interfaces
// establish a common contract for validation, serialization, logging, and
// identity that enables generic operations and guarantees safety at compile
// time.
//
// The contracts defined in this package prioritize data integrity and
// debuggability. Validation ensures that invalid states cannot be
// constructed or persisted. Serialization provides round-trip guarantees
// for configuration files and API payloads. Loggable keeps potentially
// sensitive representations out of production logs. Identifiable enables
// structured logging and clear diagnostics. ZeroCheckable supports optional
// field detection and default value handling.
//
// Unless explicitly documented otherwise, implementations are not
// thread-safe for concurrent mutation. Chrono model types are designed as
// immutable value types, making them naturally safe for concurrent read
// access. Callers MUST synchronize any concurrent writes to mutable
// instances such as parse cursors.
//
// Types implementing Model can be used with the generic helper functions
// provided in this package, such as ValidateAll, FilterZero, ToJSON,
// ToYAML, Clone, and Equal. These helpers rely on the Model contract and
// will fail at compile time if applied to types that do not implement
// Model.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for chrono domain types. Any type implementing Model gains automatic
// support for validation, serialization to JSON and YAML, safe logging,
// type identification, and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// data integrity by checking invariants; Serializable provides round-trip
// JSON and YAML encoding; Loggable offers both safe (redacted) and full
// string representations; Identifiable supplies a canonical type name; and
// ZeroCheckable detects empty or uninitialized instances.
//
// Model instances are treated as immutable value types. Methods defined on
// Model MUST NOT mutate the receiver unless explicitly documented (the
// Unmarshal methods being the documented exception). Concurrent reads are
// safe; concurrent writes require external synchronization.
//
// Example implementation:
//
//	type Mode struct {
//	    Name string
//	}
//
//	func (m Mode) Validate() error {
//	    if m.Name == "" {
//	        return errors.New("name required")
//	    }
//	    return nil
//	}
//
//	func (m Mode) TypeName() string { return "Mode" }
//	func (m Mode) IsZero() bool { return m.Name == "" }
//	func (m Mode) Redacted() string { return "Mode{...}" }
//	func (m Mode) String() string { return "Mode{Name:" + m.Name + "}" }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*Mode)(nil)  // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state
// to ensure data integrity. Every model type MUST implement Validate to
// verify that all invariants hold and that the instance is in a consistent
// state suitable for use in chronological computations, persistence, or
// transmission.
//
// The Validate method MUST check all required fields for non-empty or
// in-range values, verify cross-field consistency (for example, ensuring
// that a configured pivot year is either unset or at least 100), and
// return nil if and only if the instance is fully valid. When validation
// fails, the returned error MUST describe what is invalid in a way that
// helps callers diagnose and fix the problem. Generic error messages such
// as "validation failed" are discouraged; prefer specific messages like
// "Attributes.ProtectedCharacters MUST be non-negative".
//
// Validate MUST be fast, deterministic and idempotent. It MUST NOT mutate
// the receiver, MUST NOT have side effects such as logging, and MUST NOT
// depend on external mutable state.
//
// Callers SHOULD invoke Validate at critical boundaries: immediately after
// unmarshaling data from JSON or YAML; after constructing instances from
// user input; and at any API boundary where data crosses trust or
// ownership boundaries.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	//
	// This method MUST NOT mutate the receiver and MUST NOT have side
	// effects. It MUST be safe to call concurrently with other reads
	// but not with concurrent writes.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to
// and deserialized from JSON and YAML formats. All model types MUST
// support both formats to enable configuration files (typically YAML),
// API payloads (typically JSON), and debugging output.
//
// Implementations MUST call Validate before marshaling so that only valid
// instances are serialized, and MUST call Validate after unmarshaling so
// that deserialized data meets all invariants. If either check fails, the
// marshal or unmarshal method MUST return the validation error.
//
// A value serialized to JSON and then deserialized MUST equal the
// original value, and the same MUST hold for YAML.
//
// Implementations SHOULD use the "type alias" pattern to avoid infinite
// recursion: define a local type alias to the model type, cast the
// receiver to the alias, and delegate to the standard library's marshal
// or unmarshal function.
//
// Marshal methods are safe for concurrent use on immutable receivers.
// Unmarshal methods mutate the receiver and are not safe for concurrent
// use; callers MUST ensure exclusive access to the receiver during
// unmarshaling.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide safe string
// representations for logging and debugging.
//
// The Redacted method returns a string representation suitable for
// production logging. Chrono model types rarely carry secrets, but the
// contract is kept uniform across the library so that composite types can
// delegate redaction to their parts without special cases. Redacted MUST
// be fast, MUST NOT perform I/O, MUST be safe to call concurrently, and
// MUST NOT mutate the receiver.
//
// The String method returns a human-readable representation that MAY
// include every field verbatim. It is intended for development, debugging,
// test assertions, and internal tooling. Production logging SHOULD go
// through Redacted so that the object graph stays consistently redacted
// even when nested types do carry sensitive values.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging
	// in production. Nested Loggable values SHOULD be rendered via their
	// own Redacted methods.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	Redacted() string

	// String returns a human-readable representation of the instance.
	// Use Redacted instead for production logging.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name. All model types MUST provide a type name to
// enable debugging, logging, and clear diagnostics.
//
// The type name returned by TypeName MUST be constant for a given type:
// all instances of the same type MUST return the same name. The name MUST
// be unique within the chrono domain, SHOULD follow CamelCase convention
// (for example, "Leniency", "Attributes", "BracketPolicy") and MUST NOT
// include a package prefix. The name identifies the type, not the
// instance.
//
// TypeName MUST be fast and MUST NOT allocate memory. It SHOULD typically
// return a string constant. It MUST NOT have side effects and MUST be
// safe to call concurrently.
type Identifiable interface {
	// TypeName returns the canonical name of this model type. The name
	// MUST be constant for the type, unique within chrono, in CamelCase,
	// and without a package prefix.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether
// they are in a zero or default state. This enables optional field
// detection, default value handling, and conditional logic based on
// whether an instance carries meaningful configuration.
//
// An instance is considered zero if all of its fields are at their type's
// zero value and no meaningful data is present. For chrono enum types the
// zero value is deliberately the library default (for example, a zero
// Leniency is Smart), so IsZero doubles as "is this the default?".
//
// IsZero MUST be fast, deterministic, idempotent and allocation-free. It
// MUST NOT have side effects and MUST be safe to call concurrently.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or default state,
	// meaning it contains no meaningful data beyond the library defaults.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// equality. This interface is optional but recommended for value types
// that require equality testing in tests, assertions, or chronological
// logic.
//
// The Equal method MUST be reflexive, symmetric, transitive and
// consistent. Equal SHOULD compare all semantically significant fields;
// internal or cached fields that do not affect the logical value SHOULD
// be ignored. Where a type documents a narrower identity (for example,
// the two-digit-year codec compares only its bound element), that
// narrowing MUST be documented on the implementing type.
//
// Equal MUST NOT mutate the receiver or the argument, MUST NOT have side
// effects, and MUST be safe to call concurrently.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can create deep copies of
// themselves. This interface is optional; immutable value types MAY simply
// return the receiver when sharing is safe.
//
// The Clone method MUST create a copy that shares no mutable references
// with the original. The cloned instance MUST be valid (it MUST pass
// Validate) if the original is valid, and cloning a clone MUST produce an
// instance equal to the first clone.
//
// Clone MUST NOT mutate the receiver, MUST NOT have side effects, and
// MUST be safe to call concurrently.
type Cloneable[T any] interface {
	// Clone creates a deep copy of this instance.
	Clone() T
}
