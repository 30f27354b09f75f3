// Package envsubst overwrites configuration leaves with values taken from
// environment variables.
//
// Every leaf path of a document maps to one variable name: the prefix, an
// underscore and the screaming-snake form of the dotted path. With the
// default prefix the leaf api.mongodb.host is read from
// PLEASURE_API_MONGODB_HOST and plugins.0.name from PLEASURE_PLUGINS_0_NAME.
package envsubst

import (
	"os"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/MKhiriev/go-pleasure-utils/models"
)

// DefaultPrefix is used when no prefix is given.
const DefaultPrefix = "PLEASURE"

// LookupFunc reports the value of an environment variable and whether it is
// set. [os.LookupEnv] satisfies it.
type LookupFunc func(name string) (string, bool)

// VarName returns the environment variable consulted for the leaf at path.
func VarName(prefix, path string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return strings.ToUpper(prefix) + "_" + strcase.ToScreamingSnake(path)
}

// Apply overwrites, in place, every leaf of doc whose variable is set to a
// non-empty value. The raw string replaces the leaf whatever its kind was.
// Keys are never created. A nil lookup reads the process environment.
//
// Apply returns doc for chaining.
func Apply(doc models.Document, prefix string, lookup LookupFunc) models.Document {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	for _, leaf := range doc.Flatten() {
		value, ok := lookup(VarName(prefix, leaf.Path))
		if !ok || value == "" {
			continue
		}
		doc.Replace(leaf.Segments, models.String(value))
	}

	return doc
}

// Vars lists the variables Apply would consult for doc, keyed by leaf path.
func Vars(doc models.Document, prefix string) map[string]string {
	leaves := doc.Flatten()
	out := make(map[string]string, len(leaves))
	for _, leaf := range leaves {
		out[leaf.Path] = VarName(prefix, leaf.Path)
	}
	return out
}
