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

package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dirpx.dev/resterrors"
	"dirpx.dev/resterrors/adapter"
	"dirpx.dev/resterrors/apis"
)

// Meta carries extra context that the HTTP layer can add on top of
// resterrors.Error. All fields are optional and typically come from request
// context, headers, rate-limiter output, or router-level logic.
type Meta struct {
	Correlation       string
	TraceID           string
	RetryAfterSeconds int
}

// Writer is a thin adapter that knows how to turn a resterrors.Error into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes the client-facing view of the error and writes it to the
// response writer. The HTTP status is resolved via the Mapper.
//
// The view is produced by adapter.ToPublicView, so the group redaction policy
// applies: caller-fault errors keep their message and details, server-fault
// and unknown-group errors are reduced to a generic body. Meta fields are
// always safe to expose and are attached to either kind of view.
func (w Writer) Write(rw http.ResponseWriter, err *resterrors.Error, meta Meta) {
	if err == nil {
		return
	}

	st := w.Mapper.Status(err.Code, err.Origin)

	view := adapter.ToPublicView(err)
	view.Correlation = meta.Correlation
	view.TraceID = meta.TraceID

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(st.HTTP)

	// Encoding a plain view struct cannot realistically fail, and the status
	// line is already written; a best-effort body is all we can do here.
	b, _ := json.Marshal(view)
	_, _ = rw.Write(b)
}
