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

import (
	"dirpx.dev/resterrors/code"
	"dirpx.dev/resterrors/origin"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the status-mapping rules.
// It resolves a service error code (and optionally an origin) into transport
// statuses for HTTP and gRPC.
//
// The mapping must stay class-consistent with the group classifier: codes in
// the caller-fault group resolve to a 4xx-class status, codes in the
// server-fault and unknown groups to a 5xx-class status. Per-code and
// per-origin rules refine the status within that class.
type Mapper interface {
	// HTTPStatus returns the HTTP status code for the given error code and origin.
	// If no origin-specific rule exists, the mapper must fall back to the code-level rule.
	HTTPStatus(c code.Code, o origin.Origin) int

	// GRPCStatus returns the gRPC status code for the given error code and origin.
	// If no origin-specific rule exists, the mapper must fall back to the code-level rule.
	GRPCStatus(c code.Code, o origin.Origin) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same matching logic.
	Status(c code.Code, o origin.Origin) Status

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(c code.Code, o origin.Origin) string
}

// Status represents a resolved pair of transport statuses for a single error.
// It is the final output of the mapper and can be written directly to HTTP/gRPC.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
