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

// Package code defines the closed set of error codes a REST service layer can
// report, plus parsing, normalization and validation for them.
//
// A "code" is the specific, named reason a request or an internal operation
// failed, such as "missing_args", "malformed_request" or
// "response_building_failure". Codes are meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads and log fields.
//
// Unlike an open-ended code vocabulary, this set is CLOSED: the registry is
// compiled in, never extended at runtime, and Parse rejects strings that do
// not name a registered code. Fault-detection sites pick one of the constants
// below; the boundary layers consult dirpx.dev/resterrors/group to decide the
// caller-visible behavior.
//
// IMPORTANT: Empty codes ("") are NOT allowed. Every error MUST have a
// non-empty code.
package code
