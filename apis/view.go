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

// ViewProvider is implemented by errors that can produce a transport-friendly,
// self-contained representation of themselves.
//
// This is useful for HTTP adapters that want to send "the canonical form"
// of the error to the client without having to know about the concrete error
// type.
//
// The returned view MUST be safe to marshal to JSON and SHOULD contain
// only information that is safe to disclose to the client. In particular,
// implementations are expected to follow the group redaction policy: views of
// server-fault and unknown-group errors carry a generic message and no
// internals.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is a minimal, serializable representation of an error.
//
// This is *not* the concrete error type used internally — it is the shape
// that we are comfortable exposing over the wire. Keeping it here (in apis)
// allows the HTTP adapter and client code to share the same struct.
type ErrorView struct {
	// Code is the service error code, e.g. "missing_args",
	// "unsupported_http_method".
	//
	// Implementations SHOULD store only registered codes here.
	Code string `json:"code"`

	// Group is the severity group the code classifies into:
	// "bad_request", "internal_server_error" or "unknown_error_code".
	Group string `json:"group"`

	// Origin is the pipeline locator, e.g. "frontend.netty.decode".
	//
	// It MUST be omitted for server-fault and unknown-group errors — the
	// locator describes service internals.
	Origin string `json:"origin,omitempty"`

	// Message is an optional human-friendly message.
	//
	// For caller-fault errors this is the error's own message; for
	// server-fault and unknown-group errors it is a generic replacement.
	Message string `json:"message,omitempty"`

	// Correlation is an optional client/server correlation token
	// (request ID, idempotency key).
	Correlation string `json:"correlation,omitempty"`

	// TraceID is an optional distributed trace identifier.
	TraceID string `json:"trace_id,omitempty"`

	// Details is an optional list of additional details about the error.
	// Like Origin, it is omitted for server-fault and unknown-group errors.
	Details []Detail `json:"details,omitempty"`
}
