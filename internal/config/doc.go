// Package config provides loading, merging, and validation of the pleasure
// tool's own settings: where to look for the project and its configuration
// file, how to log, and the markdown pre-processor defaults.
//
// Settings are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON settings file
//  3. Environment variables prefixed with PLEASURE_
//  4. Command-line flags
//
// The main entry point is [GetSettings].
package config
