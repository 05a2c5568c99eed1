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

// Caller-fault error codes
//
// These codes describe requests that cannot be processed because of something
// the client sent (or failed to send). They should be surfaced back to the
// caller with enough detail to fix the request, and they should not alarm
// operators. See dirpx.dev/resterrors/group for the membership contract.
const (
	// BadRequest is the generic code for a client request that is not fit
	// for processing and no more specific caller-fault code applies.
	BadRequest Code = "bad_request"

	// InvalidArgs indicates that the client supplied arguments that are not
	// valid — wrong type, out-of-range value, or an argument combination the
	// operation does not accept.
	InvalidArgs Code = "invalid_args"

	// MalformedRequest indicates that the request could not be decoded under
	// the REST wire protocol (usually HTTP): broken framing, unparsable
	// request line or headers, truncated body.
	MalformedRequest Code = "malformed_request"

	// MissingArgs indicates that the request is missing arguments that are
	// necessary to service it (required query parameters, headers, or body
	// fields absent).
	MissingArgs Code = "missing_args"

	// NoRequest indicates that request content arrived before the request
	// metadata that must precede it. The pipeline has body chunks but no
	// request to attach them to.
	NoRequest Code = "no_request"

	// UnknownHTTPObject indicates that a low-level protocol object received
	// from the transport was not of a recognized type — neither a request
	// head nor request content.
	UnknownHTTPObject Code = "unknown_http_object"

	// UnsupportedOperation indicates that the client requested an operation
	// the storage service does not offer at all.
	UnsupportedOperation Code = "unsupported_operation"

	// UnsupportedHTTPMethod indicates that the client used an HTTP method
	// the service does not support.
	UnsupportedHTTPMethod Code = "unsupported_http_method"
)

// Server-fault error codes
//
// These codes describe failures on the server side that the client neither
// caused nor can remedy. They are surfaced to the caller only as a generic
// server error; the specific code is for logs and alerts.
const (
	// InternalServerError is the generic code for a server-side problem that
	// no more specific server-fault code describes.
	InternalServerError Code = "internal_server_error"

	// ChannelActiveTasksFailure indicates that tasks which must run when a
	// new client channel becomes active have failed.
	ChannelActiveTasksFailure Code = "channel_active_tasks_failure"

	// ChannelAlreadyClosed indicates that an operation was attempted on a
	// channel that has already been closed.
	ChannelAlreadyClosed Code = "channel_already_closed"

	// IllegalResponseMetadataStateTransition indicates that a state
	// transition attempted while building response metadata is not legal in
	// the response state machine.
	IllegalResponseMetadataStateTransition Code = "illegal_response_metadata_state_transition"

	// OperationInterrupted indicates that a blocking wait was interrupted
	// while performing the operation.
	OperationInterrupted Code = "operation_interrupted"

	// RequestHandlerSelectionError indicates that the handler controller
	// failed to select and provide a request handler.
	RequestHandlerSelectionError Code = "request_handler_selection_error"

	// RequestHandleFailure indicates that the selected request handler
	// failed while handling a submitted request.
	RequestHandleFailure Code = "request_handle_failure"

	// RequestHandlerUnavailable indicates that the request handler is not
	// available for request handling — it was never started, or it has died.
	RequestHandlerUnavailable Code = "request_handler_unavailable"

	// RequestQueueingFailure indicates that a submitted unit of request work
	// could not be queued for handling.
	RequestQueueingFailure Code = "request_queueing_failure"

	// NilRequestInfo indicates that the submitted request info reference was
	// nil where a value was required.
	NilRequestInfo Code = "nil_request_info"

	// NilResponseHandler indicates that the request info carries no
	// reference to a response handler.
	NilResponseHandler Code = "nil_response_handler"

	// NilRequestMetadata indicates that the request info carries no
	// reference to request metadata.
	NilRequestMetadata Code = "nil_request_metadata"

	// ResponseBuildingFailure indicates that the response could not be
	// built — usually a serialization failure while producing the response
	// body or metadata.
	ResponseBuildingFailure Code = "response_building_failure"

	// InternalObjectCreationError indicates that an object needed to service
	// the request could not be constructed.
	InternalObjectCreationError Code = "internal_object_creation_error"

	// UnsupportedRestMethod indicates that a REST method is recognized by
	// the protocol but not implemented by the current handler. Unlike
	// UnsupportedHTTPMethod this is a server implementation gap (possibly a
	// bug where behavior for a new method was never defined), so it is a
	// server fault.
	UnsupportedRestMethod Code = "unsupported_rest_method"
)

// UnknownErrorCode is the sentinel code for failures that do not fit any of
// the codes above. It is also the name of the catch-all group that collects
// every code not explicitly placed in a group
// (see dirpx.dev/resterrors/group).
const UnknownErrorCode Code = "unknown_error_code"

// all holds every registered code in declaration order. The order is stable
// so that iteration (tests, docs generation) is reproducible; it carries no
// semantic meaning.
var all = []Code{
	BadRequest,
	InvalidArgs,
	MalformedRequest,
	MissingArgs,
	NoRequest,
	UnknownHTTPObject,
	UnsupportedOperation,
	UnsupportedHTTPMethod,

	InternalServerError,
	ChannelActiveTasksFailure,
	ChannelAlreadyClosed,
	IllegalResponseMetadataStateTransition,
	OperationInterrupted,
	RequestHandlerSelectionError,
	RequestHandleFailure,
	RequestHandlerUnavailable,
	RequestQueueingFailure,
	NilRequestInfo,
	NilResponseHandler,
	NilRequestMetadata,
	ResponseBuildingFailure,
	InternalObjectCreationError,
	UnsupportedRestMethod,

	UnknownErrorCode,
}

// known indexes the registry for O(1) membership checks. Built once at
// package init and never mutated afterwards, so it is safe for concurrent use.
var known = func() map[Code]struct{} {
	m := make(map[Code]struct{}, len(all))
	for _, c := range all {
		m[c] = struct{}{}
	}
	return m
}()

// All returns every registered code in declaration order.
// The returned slice is a copy; callers may not mutate the registry.
func All() []Code {
	out := make([]Code, len(all))
	copy(out, all)
	return out
}

// IsKnown reports whether c names a registered code.
func IsKnown(c Code) bool {
	_, ok := known[c]
	return ok
}
