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

package origin

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Origin is the canonical, validated representation of a pipeline locator.
//
// Origins are dot-separated hierarchical identifiers with a small, fixed
// depth. Each segment names a layer, component, or operation inside the
// request pipeline.
//
// Example valid origins:
//
//   - "frontend.netty.channel"
//   - "router.dispatch.select"
//   - "response.json.encode"
//   - "handler.queue"
//
// The intent is to make it easy to programmatically build such identifiers
// from known layer/component/operation names, and later to let status mappers
// and loggers quickly match on these prefixes.
type Origin string

// MinLength and MaxLength define the allowed length range for a canonical
// origin string.
//
// Origins may be a bit longer than codes because they often contain multiple
// segments (layer.component.operation).
const (
	// MinLength is the minimum length for a non-empty origin.
	// We keep it at 3 so that trivial values like "x" are not considered
	// meaningful locators. Remember: the empty string is still allowed and
	// means "no origin provided".
	MinLength = 3

	// MaxLength is the maximum length for a valid origin.
	// 128 characters is enough even for 4 segments with descriptive names.
	MaxLength = 128
)

const (
	// originFmt is the canonical regular expression used to validate origins.
	//
	// We accept 1 to 4 segments, dot-separated, each segment:
	//
	//   - starts with a lowercase ASCII letter [a-z]
	//   - continues with lowercase letters, digits, or underscore [a-z0-9_]*
	//
	// Examples that match:
	//
	//	"frontend.netty.channel"
	//	"router.dispatch"
	//	"response.json.encode"
	//
	// Examples that DO NOT match:
	//
	//	"Frontend.netty" (uppercase)
	//	"frontend/netty" (slash)
	//	"frontend..netty" (empty segment)
	//	"1frontend.netty" (digit first)
	//
	// NOTE: empty string ("") is treated separately as "optional origin" and
	// does not go through this regexp.
	originFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`
)

var (
	// originRe is the compiled regexp for the above pattern.
	originRe = regexp.MustCompile(originFmt)
)

var (
	// ErrOriginInvalidFormat is returned when an origin does not conform to
	// the expected format.
	ErrOriginInvalidFormat = errors.New("resterrors: invalid origin format")
	// ErrOriginInvalidLength is returned when an origin is too short or too long.
	ErrOriginInvalidLength = errors.New("resterrors: invalid origin length")
)

// Ensure Origin implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Origin)(nil)
	_ encoding.TextUnmarshaler = (*Origin)(nil)
)

// Empty is the zero-value origin. It is considered "not provided" and is
// valid to store in error structs. Callers that require a non-empty,
// canonical origin should explicitly call Validate.
var Empty Origin = ""

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical origin form.
//
// We do *very* conservative transformations:
//
//   - trim spaces
//   - lower-case
//   - convert "/" to "." (because callers may build paths with slashes)
//   - replace "-" with "_" (to align with code-style identifiers)
//
// It does NOT guarantee validity — callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Origin value.
//
// Parse also accepts the empty string and returns origin.Empty without error.
// This is what makes Origin an "optional" part of the error model.
func Parse(s string) (Origin, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Origin(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level origin constants in var blocks.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string — passing
// an empty string here is almost always a programmer error.
func MustParse(s string) Origin {
	o, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if o == Empty {
		panic("resterrors: empty origin in MustParse")
	}
	return o
}

// Validate checks whether the provided Origin is in canonical form.
//
// The empty origin ("") is considered valid here, because the whole point of
// this type is to be optional. If you need to enforce "must be non-empty",
// add that check at call site.
func Validate(o Origin) error {
	if o == Empty {
		return nil
	}
	return validate(string(o))
}

// String returns the canonical string representation of the origin.
func (o Origin) String() string {
	return string(o)
}

// MarshalText implements encoding.TextMarshaler.
//
// We allow marshaling of the empty origin as an empty slice to not break
// JSON/YAML encoders that rely on TextMarshaler.
func (o Origin) MarshalText() ([]byte, error) {
	if err := Validate(o); err != nil {
		return nil, err
	}
	if o == Empty {
		return []byte{}, nil
	}
	return []byte(o), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
// An empty or whitespace-only input will produce origin.Empty.
func (o *Origin) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// validate is the internal helper that checks length and format.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrOriginInvalidLength
	}
	if !originRe.MatchString(s) {
		return ErrOriginInvalidFormat
	}
	return nil
}
