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

package apis

// Detail represents a single structured piece of information attached to an
// error. This is a *view type* — small, transport-friendly, and suitable for
// JSON serialization.
//
// We keep it in apis so that different parts of the system (argument
// validators, HTTP/gRPC adapters, loggers) can speak about "details" without
// importing the concrete error implementation.
//
// Typical usages:
//   - report which request argument was missing or invalid;
//   - report expected vs actual values;
//   - report the operation the client asked for.
type Detail struct {
	// Type is a short classifier of the detail, e.g. "arg", "header",
	// "missing", "invalid", etc. Callers MAY leave it empty, but providing
	// it makes client-side handling simpler.
	Type string `json:"type,omitempty"`

	// Field carries the logical path to the failing input, e.g.
	// "query.blob_id" or "header.content_length". For non-input errors this
	// may be empty.
	Field string `json:"field,omitempty"`

	// Reason is a short, human-friendly explanation, e.g. "required",
	// "not_a_number", "unsupported". This is NOT the top-level error code,
	// but often corresponds to it.
	Reason string `json:"reason,omitempty"`

	// Info carries optional extra structured data (for example, allowed
	// values, maximum length, the offending value, etc.). Keys and values
	// should be chosen so that they survive JSON round-trips.
	Info map[string]string `json:"info,omitempty"`
}
