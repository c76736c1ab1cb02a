// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries build-time metadata injected via linker flags and
// exposed through the /api/version/ endpoint and the client version view.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo], substituting "N/A" for any
// value the build pipeline did not inject.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}
	return AppBuildInfo{buildVersion: buildVersion, buildDate: buildDate, buildCommit: buildCommit}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string { return a.buildDate }

// BuildCommit returns the source-control commit hash of the build.
func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// String renders the metadata in the multi-line form printed at startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		a.buildVersion, a.buildDate, a.buildCommit)
}
