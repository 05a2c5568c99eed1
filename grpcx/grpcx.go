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

package grpcx

import (
	"context"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/resterrors"
	"dirpx.dev/resterrors/adapter"
	"dirpx.dev/resterrors/apis"
	"dirpx.dev/resterrors/group"
)

// Domain identifies this error vocabulary inside errdetails.ErrorInfo
// payloads, so clients can distinguish resterrors codes from other services'.
const Domain = "resterrors.dirpx.dev"

// Extras holds optional metadata that can be embedded into the
// errdetails.ErrorInfo attached to the gRPC status. All fields are optional.
type Extras struct {
	// CorrelationID is a client/server correlation token (request ID, idempotency key).
	CorrelationID string

	// TraceID is the distributed trace identifier (W3C traceparent / OpenTelemetry).
	TraceID string
}

// MetaFn extracts Extras from context and the classified error.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, e *resterrors.Error) Extras

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// resterrors.Error into gRPC errors carrying an errdetails.ErrorInfo detail.
//
// The provided apis.Mapper is used to resolve the transport status from the
// error's code and origin. The status message follows the group redaction
// policy: caller-fault errors keep their message, server-fault and
// unknown-group errors carry a generic one.
//
// The optional MetaFn can be used to extract additional metadata from context
// and the error to populate the ErrorInfo. If nil, no extra metadata is added.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, *resterrors.Error) Extras { return Extras{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		re, ok := err.(*resterrors.Error)
		if !ok {
			// Not ours — return as-is.
			return nil, err
		}

		st := m.Status(re.Code, re.Origin)
		ex := metaFn(ctx, re)

		g := re.Group()
		msg := re.Message
		if g != group.BadRequest {
			msg = adapter.RedactedMessage
		}

		md := map[string]string{
			"group": string(g),
		}
		if re.Origin != "" && g == group.BadRequest {
			md["origin"] = string(re.Origin)
		}
		if ex.CorrelationID != "" {
			md["correlation_id"] = ex.CorrelationID
		}
		if ex.TraceID != "" {
			md["trace_id"] = ex.TraceID
		}

		detail := &errdetails.ErrorInfo{
			// ErrorInfo reasons are UPPER_SNAKE_CASE by convention.
			Reason:   strings.ToUpper(string(re.Code)),
			Domain:   Domain,
			Metadata: md,
		}

		// Try to attach ErrorInfo as a detail. If wrapping fails, return the
		// bare status.
		if anyDetail, err := anypb.New(detail); err == nil {
			return nil, gstatus.FromProto(&spb.Status{
				Code:    int32(st.GRPC),
				Message: msg,
				Details: []*anypb.Any{anyDetail},
			}).Err()
		}

		return nil, gstatus.New(st.GRPC, msg).Err()
	}
}

// ExtractErrorInfo pulls errdetails.ErrorInfo out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			return ei, true
		}
	}
	return nil, false
}
