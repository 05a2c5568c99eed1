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

package resterrors

import (
	"fmt"

	"dirpx.dev/resterrors/code"
	"dirpx.dev/resterrors/group"
	"dirpx.dev/resterrors/origin"
)

// Error is the canonical rich error type surfaced by the REST service layer.
//
// It carries:
//   - Code: which specific failure occurred (required, from the closed set);
//   - Origin: optional locator of the pipeline stage that detected it;
//   - Message: human-oriented description (what went wrong);
//   - Details: arbitrary key/value payload (for logging / HTTP body);
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// The group of the error — and with it the status class and log level — is
// derived from Code alone via group.Of; it is never stored, so an Error can
// never disagree with the classifier.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Code is the primary classification of the error, e.g.
	// code.MissingArgs or code.ResponseBuildingFailure. Must be a value from
	// the registry in resterrors/code.
	Code code.Code

	// Origin locates the pipeline stage that detected the failure, e.g.
	// "frontend.netty.channel" or "response.json.encode".
	// May be empty when the Code is descriptive enough.
	Origin origin.Origin

	// Message is a human-readable explanation. This is what should end up
	// in logs, and — for caller-fault codes only — in the "message" field of
	// an HTTP error response.
	Message string

	// Details is an optional, shallow map of extra fields. Use this to carry
	// structured error data (ids, argument names, resource names, etc.).
	// The map is treated as immutable: WithDetail/WithDetails always copy it.
	Details map[string]any

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers.
	Cause error
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return resterrors.E(code.MissingArgs, "blob id is required",
//	    resterrors.WithOriginOption("router.dispatch"),
//	    resterrors.WithDetailOption("arg", "blob_id"),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(c code.Code, msg string, opts ...Option) *Error {
	e := &Error{Code: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code>: <message>
//
// or, when Origin is present:
//
//	<code> [<origin>]: <message>
//
// This makes the error both human- and machine-scannable in logs.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Origin != "" {
		return fmt.Sprintf("%s [%s]: %s", e.Code, e.Origin, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Group returns the severity group of the error's code. It delegates to
// group.Of and therefore inherits its totality: any code, including ones
// never placed in a group, yields a defined result.
func (e *Error) Group() group.Group {
	if e == nil {
		return group.UnknownErrorCode
	}
	return group.Of(e.Code)
}

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() string { return string(e.Code) }

// ErrorGroup implements apis.GroupedError.
func (e *Error) ErrorGroup() string { return string(e.Group()) }

// ErrorOrigin implements apis.OriginatedError.
func (e *Error) ErrorOrigin() string { return string(e.Origin) }

// WithOrigin returns a shallow copy of e with the given Origin set.
// The original error is not modified.
func (e *Error) WithOrigin(o origin.Origin) *Error {
	cp := *e
	cp.Origin = o
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced human message.
// Useful when you want to keep the Code/Origin but present the message
// differently in another context.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
//
// The method always copies the map to preserve immutability. This prevents
// surprising modifications across goroutines or shared error values.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	// No details yet — create a new single-entry map.
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	// Copy existing details and add one more.
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with all provided kv merged into Details.
//
// If the Error already has Details, both maps are copied and merged,
// with kv taking precedence on key conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	// No existing details — just copy kv.
	if len(cp.Details) == 0 {
		m := make(map[string]any, len(kv))
		for k, v := range kv {
			m[k] = v
		}
		cp.Details = m
		return &cp
	}
	// Merge existing + new.
	m := make(map[string]any, len(cp.Details)+len(kv))
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
