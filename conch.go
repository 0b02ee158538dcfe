// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package conch provides the version and commit information for the conch
// application.
package conch

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)
