// Package argsparser turns loose command-line arguments into a configuration
// document.
//
//	Parse([]string{"--sandy=papo", "-papo", "--api", "--first-name", "martin"})
//	// {sandy: "papo", papo: true, api: true, firstName: "martin"}
package argsparser

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/MKhiriev/go-pleasure-utils/models"
)

// Parse reads dashed arguments into a document:
//
//   - --key=value stores the string value
//   - --key value stores the string value
//   - --key followed by another dashed argument, or last, stores true
//   - -key stores true
//
// Keys lose their dashes and are camel-cased. Positional arguments that do
// not follow a --key are ignored. Later occurrences of a key win.
func Parse(args []string) models.Document {
	res := models.Document{}
	pending := ""

	for _, arg := range args {
		dashed := strings.HasPrefix(arg, "-")

		if pending != "" {
			if !dashed {
				res[pending] = models.String(arg)
				pending = ""
				continue
			}
			res[pending] = models.Bool(true)
			pending = ""
		}

		switch {
		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
			key := Key(name)
			if key == "" {
				continue
			}
			if hasValue {
				res[key] = models.String(value)
				continue
			}
			pending = key
		case dashed:
			name, _, _ := strings.Cut(strings.TrimLeft(arg, "-"), "=")
			if key := Key(name); key != "" {
				res[key] = models.Bool(true)
			}
		}
	}

	if pending != "" {
		res[pending] = models.Bool(true)
	}

	return res
}

// Key normalizes an argument name ("first-name", "FIRST_NAME") to its
// document key ("firstName").
func Key(name string) string {
	return strcase.ToLowerCamel(name)
}
