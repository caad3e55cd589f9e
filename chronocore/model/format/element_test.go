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

func TestElementID_Name(t *testing.T) {
	id := format.ElementID("YEAR_OF_ERA")
	if got := id.Name(); got != "YEAR_OF_ERA" {
		t.Errorf("Name() = %q, want %q", got, "YEAR_OF_ERA")
	}
}

func TestElementID_IsYearLike(t *testing.T) {
	tests := []struct {
		name string
		id   format.ElementID
		want bool
	}{
		{"plain year", "YEAR", true},
		{"year of era", "YEAR_OF_ERA", true},
		{"year of weekdate", "YEAR_OF_WEEKDATE", true},
		{"month", "MONTH_OF_YEAR", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.IsYearLike(); got != tt.want {
				t.Errorf("IsYearLike() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElementID_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      format.ElementID
		wantErr bool
	}{
		{"conventional name", "YEAR_OF_ERA", false},
		{"with digits", "QUARTER_2", false},
		{"empty", "", true},
		{"lowercase", "year", true},
		{"with spaces", "YEAR OF ERA", true},
		{"with dash", "YEAR-OF-ERA", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestElementID_RoundTrip(t *testing.T) {
	original := format.ElementID("YEAR_OF_ERA")

	jsonData, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("JSON Marshal error: %v", err)
	}
	var jsonResult format.ElementID
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
	var yamlResult format.ElementID
	if err := yaml.Unmarshal(yamlData, &yamlResult); err != nil {
		t.Fatalf("YAML Unmarshal error: %v", err)
	}
	if yamlResult != original {
		t.Errorf("YAML round-trip: got %v, want %v", yamlResult, original)
	}
}

func TestElementID_MarshalJSON_Invalid(t *testing.T) {
	if _, err := json.Marshal(format.ElementID("not valid")); err == nil {
		t.Error("Expected error marshaling invalid ElementID, got nil")
	}
}

func TestElementID_ModelContract(t *testing.T) {
	id := format.ElementID("YEAR")
	if got := id.TypeName(); got != "ElementID" {
		t.Errorf("TypeName() = %v, want ElementID", got)
	}
	if id.IsZero() {
		t.Error("non-empty ElementID should not be zero")
	}
	if !format.ElementID("").IsZero() {
		t.Error("empty ElementID should be zero")
	}
	if id.Redacted() != id.String() {
		t.Error("Redacted() should match String()")
	}
	if !id.Equal("YEAR") || id.Equal("MONTH_OF_YEAR") {
		t.Error("Equal() mismatch")
	}
}

func TestElementPosition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		pos     format.ElementPosition
		wantErr bool
	}{
		{"valid", format.ElementPosition{Element: "YEAR", Start: 0, End: 2}, false},
		{"valid at offset", format.ElementPosition{Element: "YEAR", Start: 3, End: 5}, false},
		{"empty element", format.ElementPosition{Start: 0, End: 2}, true},
		{"negative start", format.ElementPosition{Element: "YEAR", Start: -1, End: 2}, true},
		{"empty range", format.ElementPosition{Element: "YEAR", Start: 2, End: 2}, true},
		{"inverted range", format.ElementPosition{Element: "YEAR", Start: 5, End: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pos.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestElementPosition_String(t *testing.T) {
	pos := format.ElementPosition{Element: "YEAR_OF_ERA", Start: 4, End: 6}
	if got := pos.String(); got != "YEAR_OF_ERA[4:6)" {
		t.Errorf("String() = %q, want %q", got, "YEAR_OF_ERA[4:6)")
	}
}

func TestElementPosition_RoundTrip(t *testing.T) {
	original := format.ElementPosition{Element: "YEAR_OF_ERA", Start: 4, End: 6}

	jsonData, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("JSON Marshal error: %v", err)
	}
	var jsonResult format.ElementPosition
	if err := json.Unmarshal(jsonData, &jsonResult); err != nil {
		t.Fatalf("JSON Unmarshal error: %v", err)
	}
	if !jsonResult.Equal(original) {
		t.Errorf("JSON round-trip: got %v, want %v", jsonResult, original)
	}

	yamlData, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("YAML Marshal error: %v", err)
	}
	var yamlResult format.ElementPosition
	if err := yaml.Unmarshal(yamlData, &yamlResult); err != nil {
		t.Fatalf("YAML Unmarshal error: %v", err)
	}
	if !yamlResult.Equal(original) {
		t.Errorf("YAML round-trip: got %v, want %v", yamlResult, original)
	}
}

func TestElementPosition_IsZero(t *testing.T) {
	var zero format.ElementPosition
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if (format.ElementPosition{Element: "YEAR", Start: 0, End: 2}).IsZero() {
		t.Error("populated position should not report IsZero")
	}
}

func TestPositions_Add(t *testing.T) {
	var ps format.Positions
	ps.Add(format.ElementPosition{Element: "YEAR", Start: 0, End: 2})
	ps.Add(format.ElementPosition{Element: "MONTH_OF_YEAR", Start: 3, End: 5})

	if len(ps) != 2 {
		t.Fatalf("len = %d, want 2", len(ps))
	}
	if ps[0].Element != "YEAR" || ps[1].Element != "MONTH_OF_YEAR" {
		t.Error("positions should be kept in insertion order")
	}
}
