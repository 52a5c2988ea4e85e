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

package gclplugin

import (
	activity "fillmore-labs.com/activity/analyzer"
	"fillmore-labs.com/activity/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Generated enables analysis of generated files.
	Generated *bool `json:"generated,omitzero"`
	// Strict fails the package on the first analysis error.
	Strict *bool `json:"strict,omitzero"`
	// Report selects the scopes emitted as diagnostics.
	Report *level.Report `json:"report,omitzero"`
}

// Options converts [Settings] into a list of [activity.Option] for the activity analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []activity.Option {
	var opts []activity.Option

	opts = appendOption(opts, s.Generated, activity.WithGenerated)
	opts = appendOption(opts, s.Strict, activity.WithStrict)
	opts = appendOption(opts, s.Report, activity.WithReport)

	return opts
}

// appendOption appends a non-nil setting to an [activity.Option] list.
func appendOption[T any](opts []activity.Option, value *T, constructor func(T) activity.Option) []activity.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
