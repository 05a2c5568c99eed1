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

// Package mapper provides deterministic, immutable mappings from service
// error codes (dirpx.dev/resterrors/code) and optional origins
// (dirpx.dev/resterrors/origin) to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// A surfaced error is expressed in two parts:
//
//  1. a Code naming the specific failure (e.g. code.MissingArgs,
//     code.ResponseBuildingFailure),
//  2. an optional Origin locating the pipeline stage that detected it
//     (e.g. "frontend.netty.decode").
//
// Transport layers (HTTP handlers, REST gateways, gRPC servers) need to turn
// this pair into concrete status codes. Package mapper does that in a way
// that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - group-anchored — library defaults are derived from the code's group,
//     so the 4xx/5xx class always agrees with the classifier;
//   - overridable — callers can change defaults per Code;
//   - prefix-aware — callers can add fine-grained rules for specific origins;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the Code;
//  2. per-Code longest-prefix-match (LPM) on the Origin;
//  3. per-Code default (group-derived or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Prefix rules are segment-aware: origins are treated as "."-separated
// segments, and "*" matches exactly one segment. For example:
//
//	WithHTTPPrefix(code.ResponseBuildingFailure, "response.json", http.StatusBadGateway)
//	WithHTTPPrefix(code.ResponseBuildingFailure, "response.*.encode", http.StatusBadGateway)
//
// The more specific prefix wins.
//
// # Library defaults
//
// The package ships with defaults computed from the group classifier over the
// whole code registry: caller-fault codes map to 400 / InvalidArgument,
// server-fault codes to 500 / Internal, and the unknown group to 500 /
// Unknown. A handful of in-class refinements sharpen individual codes
// (e.g. code.UnsupportedHTTPMethod -> 405, code.UnsupportedRestMethod ->
// 501 / Unimplemented). Refinements never cross the status class implied by
// the code's group.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.OperationInterrupted, 503),
//	    mapper.WithHTTPPrefix(code.ResponseBuildingFailure, "response.json", 502),
//	)
//	if err != nil {
//	    // invalid prefix, etc.
//	}
//
//	st := m.Status(code.ResponseBuildingFailure, origin.MustParse("response.json.encode"))
//	// st.HTTP == 502, st.GRPC == codes.Internal
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// how a particular (code, origin) was resolved, including which tier matched
// and, for prefixes, which pattern was used.
//
// This is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's maps or slices.
// This makes it safe to share a single instance across handlers, goroutines,
// and requests.
package mapper
