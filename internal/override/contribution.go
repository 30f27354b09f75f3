package override

import (
	"github.com/MKhiriev/go-pleasure-utils/models"
)

// Producer lazily builds an override document. It is invoked on every
// resolution of its scope and must be cheap and free of side effects. It
// must not call back into the [Registry] that holds it.
type Producer func() (models.Document, error)

// Contribution is one override registered against a scope: either a static
// document or a [Producer]. The zero value is empty and rejected by
// [Registry.Register].
type Contribution struct {
	static models.Document
	lazy   Producer
}

// Static wraps a fixed override document.
func Static(doc models.Document) Contribution {
	return Contribution{static: doc}
}

// Lazy wraps a producer evaluated at resolution time.
func Lazy(fn Producer) Contribution {
	return Contribution{lazy: fn}
}

// IsLazy reports whether c is produced at resolution time.
func (c Contribution) IsLazy() bool {
	return c.lazy != nil
}

// IsEmpty reports whether c carries neither a document nor a producer.
func (c Contribution) IsEmpty() bool {
	return c.lazy == nil && c.static == nil
}

// document returns the contribution's override. Static documents are
// returned as is; the merge never mutates its inputs.
func (c Contribution) document() (models.Document, error) {
	if c.lazy != nil {
		return c.lazy()
	}
	return c.static, nil
}
