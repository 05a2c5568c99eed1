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
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/resterrors"
	"dirpx.dev/resterrors/adapter"
	"dirpx.dev/resterrors/apis"
	"dirpx.dev/resterrors/code"
	"dirpx.dev/resterrors/mapper"
	"dirpx.dev/resterrors/origin"
)

func newMapper(t *testing.T, opts ...mapper.Option) apis.Mapper {
	t.Helper()
	m, err := mapper.New(opts...)
	if err != nil {
		t.Fatalf("mapper.New(): %v", err)
	}
	return m
}

// invoke runs the interceptor around a handler that returns the given error.
func invoke(t *testing.T, ic grpc.UnaryServerInterceptor, handlerErr error) (any, error) {
	t.Helper()
	handler := func(ctx context.Context, req any) (any, error) {
		if handlerErr != nil {
			return nil, handlerErr
		}
		return "ok", nil
	}
	return ic(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}, handler)
}

func TestInterceptor_Success(t *testing.T) {
	ic := UnaryServerInterceptor(newMapper(t), nil)

	resp, err := invoke(t, ic, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("resp = %v", resp)
	}
}

func TestInterceptor_CallerFault(t *testing.T) {
	ic := UnaryServerInterceptor(newMapper(t), nil)

	e := resterrors.E(code.MissingArgs, "blob id is required",
		resterrors.WithOriginOption(origin.MustParse("router.dispatch")),
	)
	_, err := invoke(t, ic, e)
	if err == nil {
		t.Fatalf("expected error")
	}

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("not a gRPC status: %v", err)
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("code = %v, want InvalidArgument", st.Code())
	}
	// caller faults keep their own message
	if st.Message() != "blob id is required" {
		t.Fatalf("message = %q", st.Message())
	}

	ei, ok := ExtractErrorInfo(err)
	if !ok {
		t.Fatalf("ErrorInfo detail missing")
	}
	if ei.GetReason() != "MISSING_ARGS" {
		t.Fatalf("Reason = %q", ei.GetReason())
	}
	if ei.GetDomain() != Domain {
		t.Fatalf("Domain = %q", ei.GetDomain())
	}
	if ei.GetMetadata()["group"] != "bad_request" {
		t.Fatalf("metadata = %v", ei.GetMetadata())
	}
	// caller faults may disclose the origin
	if ei.GetMetadata()["origin"] != "router.dispatch" {
		t.Fatalf("metadata = %v", ei.GetMetadata())
	}
}

func TestInterceptor_ServerFaultIsRedacted(t *testing.T) {
	ic := UnaryServerInterceptor(newMapper(t), nil)

	e := resterrors.E(code.ResponseBuildingFailure, "json encoder blew up",
		resterrors.WithOriginOption(origin.MustParse("response.json.encode")),
	)
	_, err := invoke(t, ic, e)

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("not a gRPC status: %v", err)
	}
	if st.Code() != codes.Internal {
		t.Fatalf("code = %v, want Internal", st.Code())
	}
	if st.Message() != adapter.RedactedMessage {
		t.Fatalf("server-fault message must be generic, got %q", st.Message())
	}

	ei, ok := ExtractErrorInfo(err)
	if !ok {
		t.Fatalf("ErrorInfo detail missing")
	}
	if ei.GetMetadata()["group"] != "internal_server_error" {
		t.Fatalf("metadata = %v", ei.GetMetadata())
	}
	// origin describes service internals and must not leave the process
	if _, present := ei.GetMetadata()["origin"]; present {
		t.Fatalf("server-fault origin leaked: %v", ei.GetMetadata())
	}
}

func TestInterceptor_MetaFn(t *testing.T) {
	metaFn := func(ctx context.Context, e *resterrors.Error) Extras {
		return Extras{CorrelationID: "req-42", TraceID: "trace-1"}
	}
	ic := UnaryServerInterceptor(newMapper(t), metaFn)

	_, err := invoke(t, ic, resterrors.E(code.InvalidArgs, "bad ttl"))

	ei, ok := ExtractErrorInfo(err)
	if !ok {
		t.Fatalf("ErrorInfo detail missing")
	}
	if ei.GetMetadata()["correlation_id"] != "req-42" {
		t.Fatalf("metadata = %v", ei.GetMetadata())
	}
	if ei.GetMetadata()["trace_id"] != "trace-1" {
		t.Fatalf("metadata = %v", ei.GetMetadata())
	}
}

func TestInterceptor_UnknownGroupMapsToUnknownCode(t *testing.T) {
	ic := UnaryServerInterceptor(newMapper(t), nil)

	_, err := invoke(t, ic, resterrors.E(code.UnknownErrorCode, "who knows"))

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("not a gRPC status: %v", err)
	}
	if st.Code() != codes.Unknown {
		t.Fatalf("code = %v, want Unknown", st.Code())
	}
	if st.Message() != adapter.RedactedMessage {
		t.Fatalf("message = %q", st.Message())
	}
}

func TestInterceptor_ForeignErrorPassesThrough(t *testing.T) {
	ic := UnaryServerInterceptor(newMapper(t), nil)

	plain := errors.New("some infra error")
	_, err := invoke(t, ic, plain)
	if !errors.Is(err, plain) {
		t.Fatalf("foreign error must pass through unchanged, got %v", err)
	}
	if _, ok := ExtractErrorInfo(err); ok {
		t.Fatalf("foreign error must not grow an ErrorInfo")
	}
}

func TestExtractErrorInfo_NilAndPlain(t *testing.T) {
	if _, ok := ExtractErrorInfo(nil); ok {
		t.Fatalf("nil error cannot carry ErrorInfo")
	}
	if _, ok := ExtractErrorInfo(gstatus.Error(codes.Internal, "bare")); ok {
		t.Fatalf("bare status carries no ErrorInfo")
	}
}
