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

// Package adapter converts the concrete error type into the portable view
// and descriptor shapes defined in resterrors/apis.
//
// The split matters: descriptors are internal projections (logs, traces,
// message buses) and are never redacted; public views are what the transport
// writes to a client and follow the group redaction policy.
package adapter

import (
	"fmt"
	"sort"

	"dirpx.dev/resterrors"
	"dirpx.dev/resterrors/apis"
	"dirpx.dev/resterrors/group"
)

// RedactedMessage replaces the error's own message in client-facing views of
// server-fault and unknown-group errors. The specific failure stays in logs.
const RedactedMessage = "internal server error"

// ToDescriptor converts a classified error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries the code, its group, the origin, and the concrete
// transport statuses (HTTP and gRPC). Nothing is redacted.
func ToDescriptor(e *resterrors.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Code:       string(e.Code),
		Group:      string(e.Group()),
		Origin:     string(e.Origin),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message,
	}
}

// ToView converts a classified error into an ErrorView without applying any
// redaction or filtering; it exposes exactly what the error instance
// contains. Use ToPublicView for anything that leaves the process toward a
// client.
func ToView(e *resterrors.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Code:    string(e.Code),
		Group:   string(e.Group()),
		Origin:  string(e.Origin),
		Message: e.Message,
		Details: detailsOf(e),
	}
}

// ToPublicView converts a classified error into the client-facing ErrorView,
// applying the group redaction policy:
//
//   - caller-fault errors keep their message, origin and details — the
//     caller needs them to fix the request;
//   - server-fault and unknown-group errors carry only the code, the group
//     and a generic message; origin and details describe service internals
//     and stay in logs.
func ToPublicView(e *resterrors.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	g := e.Group()
	if g != group.BadRequest {
		return apis.ErrorView{
			Code:    string(e.Code),
			Group:   string(g),
			Message: RedactedMessage,
		}
	}
	return apis.ErrorView{
		Code:    string(e.Code),
		Group:   string(g),
		Origin:  string(e.Origin),
		Message: e.Message,
		Details: detailsOf(e),
	}
}

// detailsOf flattens the error's detail map into view details. Keys are
// sorted so the view is deterministic; if the underlying error additionally
// implements apis.DetailedError, its structured details take precedence.
func detailsOf(e *resterrors.Error) []apis.Detail {
	if de, ok := any(e).(apis.DetailedError); ok {
		if ds := de.ErrorDetails(); len(ds) > 0 {
			return ds
		}
	}
	if len(e.Details) == 0 {
		return nil
	}
	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]apis.Detail, 0, len(keys))
	for _, k := range keys {
		out = append(out, apis.Detail{
			Field: k,
			Info:  map[string]string{"value": fmt.Sprint(e.Details[k])},
		})
	}
	return out
}
