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

package model_test

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"dirpx.dev/chrono/chronocore/model"
	"gopkg.in/yaml.v3"
)

// EraLabel is a small fixture used to exercise the Model contract: a named
// chronological era with an epoch year. The epoch year is treated as
// sensitive only so that the Redacted/String split has something to do.
type EraLabel struct {
	Name  string `json:"name" yaml:"name"`
	Epoch int    `json:"epoch" yaml:"epoch"`
}

// Validate implements Validatable.
func (e EraLabel) Validate() error {
	if e.Name == "" {
		return errors.New("name required")
	}
	if e.Epoch < 0 {
		return errors.New("epoch must be non-negative")
	}
	return nil
}

// TypeName implements Identifiable.
func (e EraLabel) TypeName() string {
	return "EraLabel"
}

// IsZero implements ZeroCheckable.
func (e EraLabel) IsZero() bool {
	return e.Name == "" && e.Epoch == 0
}

// Redacted implements Loggable.
func (e EraLabel) Redacted() string {
	return "EraLabel{Name:" + e.Name + ", Epoch:[REDACTED]}"
}

// String implements Loggable.
func (e EraLabel) String() string {
	return "EraLabel{Name:" + e.Name + ", Epoch:" + strconv.Itoa(e.Epoch) + "}"
}

// MarshalJSON implements Serializable.
func (e EraLabel) MarshalJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	type alias EraLabel
	return json.Marshal((alias)(e))
}

// UnmarshalJSON implements Serializable.
func (e *EraLabel) UnmarshalJSON(data []byte) error {
	type alias EraLabel
	if err := json.Unmarshal(data, (*alias)(e)); err != nil {
		return err
	}
	return e.Validate()
}

// MarshalYAML implements Serializable.
func (e EraLabel) MarshalYAML() (interface{}, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	type alias EraLabel
	return (alias)(e), nil
}

// UnmarshalYAML implements Serializable.
func (e *EraLabel) UnmarshalYAML(node *yaml.Node) error {
	type alias EraLabel
	if err := node.Decode((*alias)(e)); err != nil {
		return err
	}
	return e.Validate()
}

// Verify EraLabel implements Model at compile time.
var _ model.Model = (*EraLabel)(nil)

func TestModel_Validate(t *testing.T) {
	tests := []struct {
		name    string
		model   EraLabel
		wantErr bool
	}{
		{"valid", EraLabel{Name: "gregorian", Epoch: 1582}, false},
		{"valid_zero_epoch", EraLabel{Name: "astronomical", Epoch: 0}, false},
		{"missing_name", EraLabel{Epoch: 1}, true},
		{"negative_epoch", EraLabel{Name: "x", Epoch: -1}, true},
		{"zero_value", EraLabel{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.model.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestModel_IsZero(t *testing.T) {
	tests := []struct {
		name  string
		model EraLabel
		want  bool
	}{
		{"zero_value", EraLabel{}, true},
		{"name_only", EraLabel{Name: "x"}, false},
		{"epoch_only", EraLabel{Epoch: 7}, false},
		{"fully_populated", EraLabel{Name: "x", Epoch: 7}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.model.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModel_Redacted(t *testing.T) {
	m := EraLabel{Name: "gregorian", Epoch: 1582}

	redacted := m.Redacted()
	if strings.Contains(redacted, "1582") {
		t.Errorf("Redacted() = %q, must not contain the epoch", redacted)
	}
	if !strings.Contains(redacted, "gregorian") {
		t.Errorf("Redacted() = %q, should contain the name", redacted)
	}

	full := m.String()
	if !strings.Contains(full, "1582") {
		t.Errorf("String() = %q, should contain the epoch", full)
	}
}

func TestModel_JSON_RoundTrip(t *testing.T) {
	original := EraLabel{Name: "gregorian", Epoch: 1582}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded EraLabel
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded != original {
		t.Errorf("round-trip = %+v, want %+v", decoded, original)
	}
}

func TestModel_YAML_RoundTrip(t *testing.T) {
	original := EraLabel{Name: "gregorian", Epoch: 1582}

	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded EraLabel
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded != original {
		t.Errorf("round-trip = %+v, want %+v", decoded, original)
	}
}

func TestModel_Marshal_FailsOnInvalid(t *testing.T) {
	invalid := EraLabel{Epoch: 3}

	if _, err := json.Marshal(invalid); err == nil {
		t.Error("json.Marshal() of invalid model should fail")
	}
	if _, err := yaml.Marshal(invalid); err == nil {
		t.Error("yaml.Marshal() of invalid model should fail")
	}
}

func TestModel_Unmarshal_FailsOnInvalid(t *testing.T) {
	var m EraLabel
	if err := json.Unmarshal([]byte(`{"name":"","epoch":3}`), &m); err == nil {
		t.Error("json.Unmarshal() of invalid payload should fail")
	}
	if err := yaml.Unmarshal([]byte("name: \"\"\nepoch: 3\n"), &m); err == nil {
		t.Error("yaml.Unmarshal() of invalid payload should fail")
	}
}

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name    string
		models  []*EraLabel
		wantErr bool
	}{
		{"empty", nil, false},
		{"all_valid", []*EraLabel{{Name: "a", Epoch: 1}, {Name: "b", Epoch: 2}}, false},
		{"one_invalid", []*EraLabel{{Name: "a", Epoch: 1}, {}}, true},
		{"all_invalid", []*EraLabel{{}, {Epoch: -2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateAll(tt.models)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAll() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAll_ReportsEveryFailure(t *testing.T) {
	models := []*EraLabel{{}, {Name: "ok", Epoch: 1}, {Epoch: -5}}

	err := model.ValidateAll(models)
	if err == nil {
		t.Fatal("ValidateAll() should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "model[0]") || !strings.Contains(msg, "model[2]") {
		t.Errorf("ValidateAll() error = %q, should mention both failing indexes", msg)
	}
	if strings.Contains(msg, "model[1]") {
		t.Errorf("ValidateAll() error = %q, should not mention the valid model", msg)
	}
}

func TestFilterZero(t *testing.T) {
	in := []*EraLabel{{}, {Name: "a", Epoch: 1}, {}, {Name: "b", Epoch: 2}}

	got := model.FilterZero(in)
	if len(got) != 2 {
		t.Fatalf("FilterZero() len = %d, want 2", len(got))
	}
	if got[0].Name != "a" || got[1].Name != "b" {
		t.Errorf("FilterZero() = %+v, order not preserved", got)
	}
}

func TestMustValidate(t *testing.T) {
	t.Run("valid_returns_model", func(t *testing.T) {
		m := model.MustValidate(&EraLabel{Name: "a", Epoch: 1})
		if m.Name != "a" {
			t.Errorf("MustValidate() = %+v, want the input back", m)
		}
	})

	t.Run("invalid_panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("MustValidate() should panic on invalid model")
			}
		}()
		model.MustValidate(&EraLabel{})
	})
}

func TestSafeString(t *testing.T) {
	m := EraLabel{Name: "gregorian", Epoch: 1582}

	if got := model.SafeString(&m, true); !strings.Contains(got, "1582") {
		t.Errorf("SafeString(unsafe=true) = %q, want full representation", got)
	}
	if got := model.SafeString(&m, false); strings.Contains(got, "1582") {
		t.Errorf("SafeString(unsafe=false) = %q, want redacted representation", got)
	}
}

func TestToJSON_FromJSON(t *testing.T) {
	original := EraLabel{Name: "a", Epoch: 9}

	data, err := model.ToJSON(&original)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	decoded := &EraLabel{}
	if err := model.FromJSON(data, &decoded); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if *decoded != original {
		t.Errorf("round-trip = %+v, want %+v", decoded, original)
	}

	if _, err := model.ToJSON(&EraLabel{}); err == nil {
		t.Error("ToJSON() of invalid model should fail")
	}
}

func TestToYAML_FromYAML(t *testing.T) {
	original := EraLabel{Name: "a", Epoch: 9}

	data, err := model.ToYAML(&original)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	decoded := &EraLabel{}
	if err := model.FromYAML(data, &decoded); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if *decoded != original {
		t.Errorf("round-trip = %+v, want %+v", decoded, original)
	}

	if _, err := model.ToYAML(&EraLabel{}); err == nil {
		t.Error("ToYAML() of invalid model should fail")
	}
}

func TestClone(t *testing.T) {
	original := EraLabel{Name: "a", Epoch: 9}

	clone, err := model.Clone(&original)
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	if *clone != original {
		t.Errorf("Clone() = %+v, want %+v", clone, original)
	}
}

func TestEqual(t *testing.T) {
	a := EraLabel{Name: "a", Epoch: 9}
	b := EraLabel{Name: "a", Epoch: 9}
	c := EraLabel{Name: "c", Epoch: 9}

	if !model.Equal(&a, &b) {
		t.Error("Equal() should report equal models as equal")
	}
	if model.Equal(&a, &c) {
		t.Error("Equal() should report different models as unequal")
	}
}

func TestModel_TypeName(t *testing.T) {
	if got := (EraLabel{}).TypeName(); got != "EraLabel" {
		t.Errorf("TypeName() = %q, want %q", got, "EraLabel")
	}
}
