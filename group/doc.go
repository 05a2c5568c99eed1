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

// Package group classifies service error codes into the small set of groups
// that boundary layers react to.
//
// Where a code answers "what exactly went wrong?", the group answers "whose
// fault is it and how should the boundary respond?". There are exactly three
// groups:
//
//   - BadRequest — the caller supplied something invalid, malformed or
//     unsupported; safe to describe to the caller; logged low (debug).
//   - InternalServerError — the failure is internal to the service; the
//     caller gets a generic response; logged high (error).
//   - UnknownErrorCode — the catch-all for codes not explicitly placed in
//     either group above; treated like a server fault, and additionally
//     suspicious because the classification itself is incomplete.
//
// Of is total: every code.Code value resolves to exactly one group, codes
// outside both membership lists fall through to UnknownErrorCode, and the
// function never fails. Membership is declared in two explicit lists (rather
// than positionally in a switch) so that coverage and disjointness are
// mechanically testable.
package group
