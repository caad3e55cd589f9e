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

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered during the batch validation process. This function provides a
// convenient way to validate multiple model instances in a single operation
// while collecting comprehensive error information about all validation
// failures rather than stopping at the first error.
//
// The function iterates through each model in the provided slice and
// invokes its Validate method. When a model fails validation, the error is
// wrapped with contextual information including the model's position in the
// slice (zero-indexed) and its type name obtained from TypeName. This
// allows callers to identify exactly which models failed validation and
// why, which is useful when checking a batch of attribute sets or element
// identifiers loaded from configuration.
//
// If one or more models fail validation, ValidateAll returns a single
// combined error that aggregates all individual validation failures using
// rxmerr.Collector. If all models pass validation, the function returns
// nil. The function never panics and always processes the entire slice
// even when early elements fail validation, ensuring complete error
// reporting. Empty slices are considered valid and return nil.
//
// Example usage for batch validation of configuration models:
//
//	attrs := []format.Attributes{a1, a2, a3}
//	if err := model.ValidateAll(attrs); err != nil {
//	    return fmt.Errorf("bad formatting configuration: %w", err)
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only non-zero models by
// removing all instances where IsZero returns true. This provides a
// convenient way to clean slices of empty or default values before
// processing or serialization.
//
// The returned slice is always a new allocation and never shares a backing
// array with the input, so callers may mutate either slice independently.
// The relative order of the surviving elements is preserved.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))
	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}
	return result
}

// MustValidate validates the model and panics if validation fails. It is
// intended for package initialization and test fixtures where an invalid
// model indicates a programming error rather than bad input; library code
// paths MUST return errors instead of calling MustValidate.
//
// On success the model is returned unchanged so that MustValidate can be
// used inline in composite literals and variable initializations.
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns either the full or the redacted string representation
// of the model depending on the unsafe flag. It exists so that logging
// call sites can switch between development and production verbosity with
// a single boolean rather than duplicating the branch everywhere.
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON validates the model and serializes it to JSON. Validation runs
// before marshaling so that invalid instances can never leak into
// serialized output; if validation fails the validation error is returned
// and no JSON is produced.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML validates the model and serializes it to YAML. Validation runs
// before marshaling so that invalid instances can never leak into
// configuration files; if validation fails the validation error is
// returned and no YAML is produced.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON deserializes JSON data into the model and validates the result.
// The two-phase approach (decode then validate) ensures that only valid
// model values can enter the system through deserialization. On failure
// the receiver MUST NOT be used by the caller.
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML deserializes YAML data into the model and validates the result.
// The two-phase approach (decode then validate) ensures that only valid
// model values can enter the system through configuration files. On
// failure the receiver MUST NOT be used by the caller.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Clone creates a deep copy of the model via a JSON round-trip. This works
// for any Model because the Serializable contract guarantees lossless
// round-trips, at the cost of an allocation; types on hot paths SHOULD
// implement Cloneable directly instead.
func Clone[T Model](m T) (T, error) {
	var zero T
	data, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("clone marshal failed: %w", err)
	}
	var clone T
	if err := json.Unmarshal(data, &clone); err != nil {
		return zero, fmt.Errorf("clone unmarshal failed: %w", err)
	}
	return clone, nil
}

// Equal reports whether two models are equal by comparing their JSON
// representations. It is a convenience for tests and generic code; types
// implementing Comparable SHOULD be compared via their Equal method
// instead, which is faster and does not depend on marshaling succeeding.
// If either model fails to marshal, Equal returns false.
func Equal[T Model](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return string(dataA) == string(dataB)
}
