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

package format_test

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"dirpx.dev/chrono/chronocore/model/format"
)

func TestLeniency_String(t *testing.T) {
	tests := []struct {
		name     string
		leniency format.Leniency
		want     string
	}{
		{"Smart", format.LeniencySmart, "smart"},
		{"Strict", format.LeniencyStrict, "strict"},
		{"Lax", format.LeniencyLax, "lax"},
		{"Unknown", format.Leniency(99), "Leniency(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.leniency.String(); got != tt.want {
				t.Errorf("Leniency.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLeniency(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    format.Leniency
		wantErr bool
	}{
		{"smart", "smart", format.LeniencySmart, false},
		{"strict", "strict", format.LeniencyStrict, false},
		{"lax", "lax", format.LeniencyLax, false},
		{"STRICT", "STRICT", format.LeniencyStrict, false},
		{"with spaces", "  Smart ", format.LeniencySmart, false},
		{"empty", "", format.LeniencySmart, true},
		{"invalid", "pedantic", format.LeniencySmart, true},
		{"number", "1", format.LeniencySmart, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := format.ParseLeniency(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLeniency() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLeniency() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLeniency_IsStrict(t *testing.T) {
	if format.LeniencySmart.IsStrict() || format.LeniencyLax.IsStrict() {
		t.Error("only LeniencyStrict should report IsStrict")
	}
	if !format.LeniencyStrict.IsStrict() {
		t.Error("LeniencyStrict should report IsStrict")
	}
}

func TestLeniency_Validate(t *testing.T) {
	tests := []struct {
		name     string
		leniency format.Leniency
		wantErr  bool
	}{
		{"Smart valid", format.LeniencySmart, false},
		{"Strict valid", format.LeniencyStrict, false},
		{"Lax valid", format.LeniencyLax, false},
		{"Invalid", format.Leniency(99), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.leniency.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLeniency_RoundTrip(t *testing.T) {
	modes := []format.Leniency{format.LeniencySmart, format.LeniencyStrict, format.LeniencyLax}

	for _, original := range modes {
		t.Run(original.String(), func(t *testing.T) {
			jsonData, err := json.Marshal(original)
			if err != nil {
				t.Fatalf("JSON Marshal error: %v", err)
			}
			var jsonResult format.Leniency
			if err := json.Unmarshal(jsonData, &jsonResult); err != nil {
				t.Fatalf("JSON Unmarshal error: %v", err)
			}
			if jsonResult != original {
				t.Errorf("JSON round-trip: got %v, want %v", jsonResult, original)
			}

			yamlData, err := yaml.Marshal(original)
			if err != nil {
				t.Fatalf("YAML Marshal error: %v", err)
			}
			var yamlResult format.Leniency
			if err := yaml.Unmarshal(yamlData, &yamlResult); err != nil {
				t.Fatalf("YAML Unmarshal error: %v", err)
			}
			if yamlResult != original {
				t.Errorf("YAML round-trip: got %v, want %v", yamlResult, original)
			}
		})
	}
}

func TestLeniency_MarshalJSON_Invalid(t *testing.T) {
	if _, err := json.Marshal(format.Leniency(99)); err == nil {
		t.Error("Expected error marshaling invalid Leniency, got nil")
	}
}

func TestLeniency_UnmarshalJSON_Invalid(t *testing.T) {
	var l format.Leniency
	if err := json.Unmarshal([]byte(`"pedantic"`), &l); err == nil {
		t.Error("Expected error unmarshaling unknown leniency name, got nil")
	}
}

func TestLeniency_ModelContract(t *testing.T) {
	var l format.Leniency
	if got := l.TypeName(); got != "Leniency" {
		t.Errorf("TypeName() = %v, want Leniency", got)
	}
	if !format.LeniencySmart.IsZero() {
		t.Error("LeniencySmart should be the zero value")
	}
	if format.LeniencyStrict.IsZero() {
		t.Error("LeniencyStrict should not be the zero value")
	}
	if format.LeniencyLax.Redacted() != format.LeniencyLax.String() {
		t.Error("Redacted() should match String()")
	}
	if !format.LeniencyLax.Equal(format.LeniencyLax) || format.LeniencyLax.Equal(format.LeniencySmart) {
		t.Error("Equal() mismatch")
	}
}
