// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the pleasure building blocks together.
//
// [App] is the composition root: it owns the event bus, the override
// registry, the configuration file cache and the resolver, and exposes one
// method per CLI command. The Msg* constants are the human-readable lines
// the commands print or log, kept in one place for consistent wording.
package app

const (
	// MsgChanged is logged when the watched configuration file or a
	// markdown source changes.
	MsgChanged = "change detected"

	// MsgRebuildFailed is logged when a markdown rebuild triggered by the
	// watcher fails. Watching continues.
	MsgRebuildFailed = "markdown rebuild failed"

	// MsgRebuildDone is logged after a successful markdown rebuild.
	MsgRebuildDone = "markdown rebuilt"

	// MsgWatching is logged once the watch command is set up.
	MsgWatching = "watching for changes"

	// MsgInvalidMiddleware is returned for a malformed --middleware value.
	MsgInvalidMiddleware = "middleware must be given as scope=path"
)
