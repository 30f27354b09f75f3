// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks command requests before they reach the resolver
// or the markdown pre-processor.
//
// A [Validator] accepts a request value and, optionally, the names of the
// fields to check. Without field names every field of the request is
// checked. The first failing field is reported.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
