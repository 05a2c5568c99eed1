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

// ErrorDescriptor is a flat, transport-friendly description of a classified
// error together with its resolved transport statuses.
//
// This type intentionally uses strings (not the internal Code / Group /
// Origin value types) so that it can live in the public "apis" layer and be
// used by adapters (HTTP, gRPC), structured logging, and tracing without
// importing the concrete implementation packages.
//
// Unlike ErrorView, a descriptor is an *internal* projection: it is meant for
// logs, traces and message-bus propagation, so it is never redacted.
type ErrorDescriptor struct {
	// Code is the service error code, e.g. "missing_args",
	// "request_handler_unavailable".
	//
	// Implementations SHOULD store only registered codes here.
	Code string `json:"code"`

	// Group is the severity group the code classifies into.
	Group string `json:"group"`

	// Origin is the pipeline locator, e.g. "handler.queue".
	//
	// It MAY be empty when the error applies to no particular stage.
	Origin string `json:"origin,omitempty"`

	// HTTPStatus is the HTTP status resolved for this error.
	// A value of 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status (as integer) resolved for this error.
	// A value of 0 means "not resolved" (note: 0 is also codes.OK, which a
	// descriptor of an error never legitimately carries).
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the error's human-friendly message, unredacted.
	Message string `json:"message,omitempty"`
}
