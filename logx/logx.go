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

// Package logx maps error groups to log severities and emits structured
// log entries for classified errors.
//
// The contract mirrors the transport split: caller-fault errors are the
// caller's problem and log at debug so they do not page anyone; server-fault
// errors log at error. Unknown-group errors also log at error — either
// something is genuinely broken, or a code was added without being placed in
// a group, and both deserve attention.
package logx

import (
	"errors"

	"github.com/sirupsen/logrus"

	"dirpx.dev/resterrors"
	"dirpx.dev/resterrors/group"
)

// Level returns the log level for an error group.
func Level(g group.Group) logrus.Level {
	if g == group.BadRequest {
		return logrus.DebugLevel
	}
	return logrus.ErrorLevel
}

// Fields extracts structured log fields from a classified error.
//
// It returns nil when err does not carry a *resterrors.Error anywhere in its
// chain — such errors have nothing structured to report.
func Fields(err error) logrus.Fields {
	var re *resterrors.Error
	if !errors.As(err, &re) {
		return nil
	}
	f := logrus.Fields{
		"error_code":  string(re.Code),
		"error_group": string(re.Group()),
	}
	if re.Origin != "" {
		f["origin"] = string(re.Origin)
	}
	if re.Cause != nil {
		f["cause"] = re.Cause.Error()
	}
	for k, v := range re.Details {
		// Details share the entry with the reserved fields; reserved names win.
		if _, taken := f[k]; !taken {
			f[k] = v
		}
	}
	return f
}

// Log writes one entry for err at the level derived from its group.
//
// Errors that are not *resterrors.Error classify into the unknown group by
// definition and are logged at error level with no structured fields.
func Log(logger *logrus.Logger, err error, msg string) {
	if logger == nil || err == nil {
		return
	}
	var re *resterrors.Error
	if !errors.As(err, &re) {
		logger.WithError(err).Error(msg)
		return
	}
	logger.WithFields(Fields(err)).Log(Level(re.Group()), msg)
}
