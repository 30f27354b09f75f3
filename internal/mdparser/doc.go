// Package mdparser pre-processes markdown documentation.
//
// A [Parser] scans a directory for *.md files and runs each through a
// pipeline of [Plugin] transforms before writing it to the output
// directory. The bundled plugins implement three directives:
//
//	@import(path)                              inline another markdown file
//	@show-source(path, {displayLink: false})   embed a source file as a code block
//	![alt](img.png)                            copy referenced assets to the output
//
// Imported files go through the same pipeline as sub-modules, so directives
// nest. Output is markdown or, with [FormatHTML], HTML rendered by goldmark.
package mdparser
