// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OutputFormat selects how a resolved configuration is printed.
type OutputFormat string

const (
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
	OutputText OutputFormat = "text"
)

// ShowConfigRequest is what the "config show" command asks the resolver
// for.
type ShowConfigRequest struct {
	// Scope is a dot path into the configuration. Empty means the whole
	// tree.
	Scope string

	// Output is the print format.
	Output OutputFormat

	// Force discards the cached configuration file before resolving.
	Force bool

	// NoMiddleware skips registered overrides.
	NoMiddleware bool

	// MergeWith is merged over everything else, built from the extra
	// command-line arguments.
	MergeWith Document
}

// BuildMarkdownRequest describes one run of the markdown pre-processor.
type BuildMarkdownRequest struct {
	// Directory is scanned for *.md files.
	Directory string

	// Out is the output directory. Empty prints nothing to disk.
	Out string

	// Format is "md" or "html".
	Format string

	// Exclude lists path substrings or regular expressions to skip.
	Exclude []string
}
