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

package code

import (
	"encoding"
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  missing_args  ", "missing_args"},
		{"to lower", "MiSsInG_ArGs", "missing_args"},
		{"dash to underscore", "missing-args", "missing_args"},
		{"mixed", "  BAD-REQUEST  ", "bad_request"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Code
	}{
		{"simple", "missing_args", MissingArgs},
		{"with spaces", "  no_request  ", NoRequest},
		{"upper", "MALFORMED_REQUEST", MalformedRequest},
		{"dash", "bad-request", BadRequest},
		{"longest registered", "illegal_response_metadata_state_transition", IllegalResponseMetadataStateTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_InvalidFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "a"},
		{"starts with digit", "1missing_args"},
		{"punctuation", "!@#"},
		{"too long", "a_very_long_code_that_is_definitely_more_than_sixty_four_characters_long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if !errors.Is(err, ErrCodeInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrCodeInvalid", tt.in, err)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestParse_UnknownCode(t *testing.T) {
	// Syntactically fine but never registered: the set is closed.
	got, err := Parse("flux_capacitor_failure")
	if !errors.Is(err, ErrCodeUnknown) {
		t.Fatalf("Parse(unregistered) error = %v, want ErrCodeUnknown", err)
	}
	if got != Empty {
		t.Fatalf("Parse(unregistered) on error must return Empty, got %q", got)
	}
}

func TestValidate(t *testing.T) {
	for _, c := range All() {
		if err := Validate(c); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", c, err)
		}
	}

	invalid := []Code{
		"",                // empty
		"ab",              // too short
		"MissingArgs",     // uppercase
		"missing-args",    // dash
		"not_in_registry", // valid shape, not registered
	}
	for _, c := range invalid {
		if err := Validate(c); err == nil {
			t.Fatalf("Validate(%q) expected error", c)
		}
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("INVALID CODE ??")
}

func TestMustParse_SucceedsOnValid(t *testing.T) {
	c := MustParse("missing_args")
	if c != MissingArgs {
		t.Fatalf("MustParse(valid) = %q, want %q", c, MissingArgs)
	}
}

func TestCode_String(t *testing.T) {
	if MissingArgs.String() != "missing_args" {
		t.Fatalf("String() = %q, want %q", MissingArgs.String(), "missing_args")
	}
}

func TestCode_MarshalText(t *testing.T) {
	text, err := UnsupportedHTTPMethod.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "unsupported_http_method" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "unsupported_http_method")
	}

	// codes outside the registry must not marshal
	if _, err := Code("made_up_code").MarshalText(); err == nil {
		t.Fatalf("MarshalText() on unregistered code must return error")
	}
}

func TestCode_UnmarshalText(t *testing.T) {
	var c Code
	if err := c.UnmarshalText([]byte("  MISSING-ARGS  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if c != MissingArgs {
		t.Fatalf("UnmarshalText() = %q, want %q", c, MissingArgs)
	}

	// invalid
	var bad Code
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
	// valid shape, unregistered
	if err := bad.UnmarshalText([]byte("flux_capacitor_failure")); err == nil {
		t.Fatalf("UnmarshalText() expected error for unregistered code")
	}
}

func TestCode_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Code)(nil)
	var _ encoding.TextUnmarshaler = (*Code)(nil)
}

func TestRegistry_ClosedSet(t *testing.T) {
	all := All()
	if len(all) != 24 {
		t.Fatalf("registry has %d codes, want 24", len(all))
	}

	// no duplicates, every entry registered and in canonical form
	seen := make(map[Code]struct{}, len(all))
	for _, c := range all {
		if _, dup := seen[c]; dup {
			t.Fatalf("duplicate code %q in registry", c)
		}
		seen[c] = struct{}{}
		if !IsKnown(c) {
			t.Fatalf("IsKnown(%q) = false for registered code", c)
		}
		if err := validate(string(c)); err != nil {
			t.Fatalf("registered code %q is not canonical: %v", c, err)
		}
	}

	if IsKnown(Code("flux_capacitor_failure")) {
		t.Fatalf("IsKnown must be false for unregistered codes")
	}
	if IsKnown(Empty) {
		t.Fatalf("IsKnown must be false for the empty code")
	}
}

func TestRegistry_IterationIsStable(t *testing.T) {
	a := All()
	b := All()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("iteration order changed between calls at index %d: %q vs %q", i, a[i], b[i])
		}
	}
	// All must hand out copies, not the backing array.
	a[0] = Code("mutated")
	if All()[0] == Code("mutated") {
		t.Fatalf("All() leaked the internal registry slice")
	}
}

func TestRegexAndLengthAreConsistent(t *testing.T) {
	// sanity: codeFmt should enforce 3..64
	if MinLength != 3 {
		t.Fatalf("MinLength changed, update tests")
	}
	if MaxLength != 64 {
		t.Fatalf("MaxLength changed, update tests")
	}

	// a 64-char code passes the format check (it still fails registry lookup)
	long := "a"
	for len(long) < MaxLength {
		long += "a"
	}
	if err := validate(long); err != nil {
		t.Fatalf("expected %q (len=%d) to pass format validation: %v", long, len(long), err)
	}
	if _, err := Parse(long); !errors.Is(err, ErrCodeUnknown) {
		t.Fatalf("Parse of unregistered 64-char code: err = %v, want ErrCodeUnknown", err)
	}

	// 65 chars fails the format check itself
	longer := long + "a"
	if err := validate(longer); err == nil {
		t.Fatalf("expected %q (len=%d) to be invalid", longer, len(longer))
	}
}
