package resolver

import "github.com/MKhiriev/go-pleasure-utils/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/resolver_mock.go -package=mock

// Loader reads a configuration source.
//
// Load reports found=false, with a nil error, when nothing exists at path.
// Implementations may cache parsed documents; Forget discards whatever is
// cached for path so the next Load reads the source again.
type Loader interface {
	Load(path string) (doc models.Document, found bool, err error)
	Forget(path string)
}

// Locator supplies the path of the configuration file.
type Locator interface {
	FindConfig() (string, error)
}
