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

// CodedError represents an error that is classified into a well-defined,
// machine-readable error *code* from the closed REST service set.
//
// Codes name the specific failure, such as:
//   - "missing_args"               — required arguments were not supplied,
//   - "malformed_request"          — the request could not be decoded,
//   - "request_handler_unavailable" — no handler alive to take the request,
//   - "internal_server_error"      — unexpected server-side failure.
//
// Codes are stable and enumerable. They are the primary value that
// higher-level adapters (HTTP, gRPC, logging) use to decide external
// behavior — always through the group classifier, never by inspecting the
// code string ad hoc.
//
// Implementations are expected to return a registered code from
// resterrors/code. Adapters should treat unknown or empty codes the same way
// the classifier does: as the unknown group, i.e. a server-side error.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code.
	//
	// The returned value MUST be non-empty and SHOULD name a registered
	// code. Callers should not try to "fix" or "guess" the value here — an
	// unregistered code classifies into the unknown group at the boundary.
	ErrorCode() string
}

// GroupedError represents an error that can report its severity group.
//
// The group is the small, fixed classification that boundary layers react
// to: "bad_request" (caller fault), "internal_server_error" (server fault)
// or "unknown_error_code" (unclassified). Implementations MUST derive the
// group from the code via resterrors/group so that the value can never
// disagree with the classifier.
type GroupedError interface {
	error

	// ErrorGroup returns the severity group of the error's code.
	// The returned value is always one of the three defined groups.
	ErrorGroup() string
}

// OriginatedError represents an error that provides a pipeline locator in
// addition to the code.
//
// While the code answers "what failed?", the origin answers "at which stage
// of the request pipeline it was detected".
//
// Examples:
//
//	code:   "malformed_request"
//	origin: "frontend.netty.decode" -> the transport decoder rejected it
//
//	code:   "response_building_failure"
//	origin: "response.json.encode" -> serializing the response body failed
//
// Origins are dot-separated strings validated by the resterrors/origin
// package. Having a separate interface lets code gracefully degrade: if an
// error does not provide an origin, the caller can still act on the code.
type OriginatedError interface {
	error

	// ErrorOrigin returns the pipeline locator.
	//
	// The returned value MAY be empty if the error does not report where it
	// was detected. Callers should be prepared to handle the empty case.
	ErrorOrigin() string
}

// DetailedError represents an error that exposes zero or more structured
// details. This is especially useful for argument-validation scenarios where
// multiple arguments may fail at once and the caller needs to see *all* of
// them.
//
// Implementations SHOULD return a slice that is safe to iterate over and that
// will not be modified by the callee. Returning nil is allowed and simply
// means "no extra details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis lets
// us work with wrapped errors even in places where we don't want to depend on
// errors.As / errors.Is directly, or where we want to keep the contract
// explicit.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	// May return nil.
	Cause() error
}
