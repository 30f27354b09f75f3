// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppBuildInfo identifies the pleasure binary that is running. The values
// are set through -ldflags on the main package and printed by
// "pleasure version" and "pleasure --version".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo returns the build info of a pleasure binary. Empty values
// stand for a development build.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: version,
		date:    date,
		commit:  commit,
	}
}

// BuildVersion returns the release tag, e.g. "v1.4.0".
func (a AppBuildInfo) BuildVersion() string {
	return a.version
}

// BuildDate returns when the binary was built.
func (a AppBuildInfo) BuildDate() string {
	return a.date
}

// BuildCommit returns the git commit the binary was built from.
func (a AppBuildInfo) BuildCommit() string {
	return a.commit
}

// IsDevelopment reports whether no version was stamped into the binary.
func (a AppBuildInfo) IsDevelopment() bool {
	return strings.TrimSpace(a.version) == ""
}
