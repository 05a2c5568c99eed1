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

// Package origin defines an optional, structured locator for where in the
// request pipeline a failure was detected.
//
// Where a code answers "what went wrong?" (missing_args,
// response_building_failure, ...), an Origin can answer "at which stage / in
// which component it happened", e.g.:
//
//   - "frontend.netty.channel"
//   - "router.dispatch.select"
//   - "response.json.encode"
//
// Origins are diagnostic refinements only: they feed log fields and
// fine-grained status-mapper rules, and they never influence the code-to-group
// classification, which is decided by the code alone.
//
// Origin is intentionally optional: the zero value ("") is allowed and
// indicates that no locator is provided. This lets callers attach an origin
// only when they actually have a meaningful, stable one to report.
package origin
