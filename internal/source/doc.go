// Package source reads project configuration files from disk and watches
// them for changes.
//
// [FileLoader] decodes YAML (.yml, .yaml) and JSON (.json) files into
// [models.Document] values and caches them per path until told to forget.
// [Watcher] observes the configuration file, drops the cached copy when the
// file changes and announces the change on the event bus. [TreeWatcher]
// does the same for every file below a directory.
package source
