// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package level defines text (un)marshalable analyzer settings.
package level

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Report specifies which scopes are emitted as diagnostics.
type Report uint8

const (
	// ReportOff emits no scope diagnostics. The analysis result is still available to dependent analyzers.
	ReportOff Report = iota

	// ReportBody emits the body scopes of functions and function literals.
	ReportBody

	// ReportAll emits every attached scope.
	ReportAll
)

// MarshalText implements [encoding.TextMarshaler].
func (o Report) MarshalText() ([]byte, error) {
	switch o {
	case ReportOff:
		return []byte("off"), nil

	case ReportBody:
		return []byte("body"), nil

	case ReportAll:
		return []byte("all"), nil

	default:
		return nil, errors.Newf("unknown report level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Report) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "off", "false":
		*o = ReportOff

	case "body", "true", "on":
		*o = ReportBody

	case "all", "full":
		*o = ReportAll

	default:
		return errors.Newf("unknown report level %q", string(text))
	}

	return nil
}

func (o Report) String() string {
	b, err := o.MarshalText()
	if err != nil {
		return "Report(" + strconv.Itoa(int(o)) + ")"
	}

	return string(b)
}
