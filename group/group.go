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

package group

import "dirpx.dev/resterrors/code"

// Group is the caller-visible severity class of an error code.
//
// Groups are what the transport layer turns into a status class (4xx vs 5xx)
// and what the logging layer turns into a log level. The set is closed and
// deliberately tiny; specificity lives in the codes, not here.
type Group string

const (
	// BadRequest collects every code whose fault is attributable to the
	// caller. Responses may describe the problem; operators are not alarmed.
	BadRequest Group = "bad_request"

	// InternalServerError collects every code whose fault is on the server
	// side — the caller neither caused it nor can remedy it.
	InternalServerError Group = "internal_server_error"

	// UnknownErrorCode is the catch-all for codes that were never explicitly
	// placed into one of the two groups above. Note that the same name is
	// also a registered code (code.UnknownErrorCode); the sentinel code maps
	// to this group through the same default path as any unplaced code.
	UnknownErrorCode Group = "unknown_error_code"
)

// String returns the canonical string representation of the group.
func (g Group) String() string {
	return string(g)
}

// callerFault declares the codes that belong to the BadRequest group.
//
// This list is half of the classification contract: together with
// serverFault it must cover every registered code except the ones that are
// deliberately left to the UnknownErrorCode default. A code added to the
// registry without being placed here or in serverFault silently classifies
// as UnknownErrorCode, which boundary layers treat as a server fault.
var callerFault = []code.Code{
	code.BadRequest,
	code.InvalidArgs,
	code.MalformedRequest,
	code.MissingArgs,
	code.NoRequest,
	code.UnknownHTTPObject,
	code.UnsupportedOperation,
	code.UnsupportedHTTPMethod,
}

// serverFault declares the codes that belong to the InternalServerError group.
var serverFault = []code.Code{
	code.InternalServerError,
	code.ChannelActiveTasksFailure,
	code.ChannelAlreadyClosed,
	code.IllegalResponseMetadataStateTransition,
	code.OperationInterrupted,
	code.RequestHandlerSelectionError,
	code.RequestHandleFailure,
	code.RequestHandlerUnavailable,
	code.RequestQueueingFailure,
	code.NilRequestInfo,
	code.NilResponseHandler,
	code.NilRequestMetadata,
	code.ResponseBuildingFailure,
	code.InternalObjectCreationError,
	code.UnsupportedRestMethod,
}

// The membership lists are frozen into sets once at package init. The sets
// are never mutated afterwards, so Of is safe for concurrent use without
// synchronization.
var (
	callerFaultSet = freeze(callerFault)
	serverFaultSet = freeze(serverFault)
)

func freeze(list []code.Code) map[code.Code]struct{} {
	m := make(map[code.Code]struct{}, len(list))
	for _, c := range list {
		m[c] = struct{}{}
	}
	return m
}

// Of returns the group the given code belongs to.
//
// Of is a pure function: total over all code.Code values, deterministic,
// O(1), and free of side effects. Any code present in neither membership
// list — including code.UnknownErrorCode itself and any code added to the
// registry without a conscious placement — resolves to UnknownErrorCode.
// The default arm is what makes the classification total; it must be
// preserved as the code set grows.
func Of(c code.Code) Group {
	if _, ok := callerFaultSet[c]; ok {
		return BadRequest
	}
	if _, ok := serverFaultSet[c]; ok {
		return InternalServerError
	}
	return UnknownErrorCode
}

// CallerFault returns the codes explicitly placed in the BadRequest group,
// in declaration order. The returned slice is a copy.
func CallerFault() []code.Code {
	out := make([]code.Code, len(callerFault))
	copy(out, callerFault)
	return out
}

// ServerFault returns the codes explicitly placed in the InternalServerError
// group, in declaration order. The returned slice is a copy.
func ServerFault() []code.Code {
	out := make([]code.Code, len(serverFault))
	copy(out, serverFault)
	return out
}

// All returns the three groups. Useful for tooling and docs generation.
func All() []Group {
	return []Group{BadRequest, InternalServerError, UnknownErrorCode}
}
