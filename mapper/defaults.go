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

package mapper

import (
	"net/http"

	"dirpx.dev/resterrors/code"
	"dirpx.dev/resterrors/group"
	"google.golang.org/grpc/codes"
)

// The library defaults are derived, not hand-listed: every registered code
// gets the base status of its group, then a small refinement table sharpens
// individual codes within that class. Deriving from group.Of keeps the
// defaults exhaustive by construction — a code added to the registry picks up
// its group's status without any edit here.

// groupHTTP is the base HTTP status per group. Caller faults are a 4xx-class
// response; server faults and unclassified codes are a 5xx-class response
// that discloses nothing.
var groupHTTP = map[group.Group]int{
	group.BadRequest:          http.StatusBadRequest,
	group.InternalServerError: http.StatusInternalServerError,
	group.UnknownErrorCode:    http.StatusInternalServerError,
}

// groupGRPC is the base gRPC status per group. The unknown group maps to
// codes.Unknown rather than codes.Internal so that an unclassified code is
// distinguishable on the wire from a deliberate internal error.
var groupGRPC = map[group.Group]codes.Code{
	group.BadRequest:          codes.InvalidArgument,
	group.InternalServerError: codes.Internal,
	group.UnknownErrorCode:    codes.Unknown,
}

// refineHTTP sharpens individual codes within the status class their group
// implies. Every entry here must stay in the same 4xx/5xx class as the
// group-derived base; the defaults test enforces that.
var refineHTTP = map[code.Code]int{
	// The method is known to HTTP but not offered by the service.
	code.UnsupportedHTTPMethod: http.StatusMethodNotAllowed,
	// The handler recognizes the method but never implemented it.
	code.UnsupportedRestMethod: http.StatusNotImplemented,
}

// refineGRPC mirrors refineHTTP for the gRPC dimension.
var refineGRPC = map[code.Code]codes.Code{
	code.UnsupportedRestMethod: codes.Unimplemented,
}

// defaultHTTP holds the computed per-code HTTP defaults. Built once at
// package init from the registry and the classifier; read-only afterwards.
var defaultHTTP = func() map[code.Code]int {
	m := make(map[code.Code]int, len(code.All()))
	for _, c := range code.All() {
		m[c] = groupHTTP[group.Of(c)]
	}
	for c, v := range refineHTTP {
		m[c] = v
	}
	return m
}()

// defaultGRPC holds the computed per-code gRPC defaults.
var defaultGRPC = func() map[code.Code]codes.Code {
	m := make(map[code.Code]codes.Code, len(code.All()))
	for _, c := range code.All() {
		m[c] = groupGRPC[group.Of(c)]
	}
	for c, v := range refineGRPC {
		m[c] = v
	}
	return m
}()
