// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input validation for user records.
//
// Two flavours live here:
//   - Validator: the server-side presence check used by the service layer
//     before a record is created or updated.
//   - ValidateUserForm and the login helpers: pure functions used by the
//     terminal client to pre-validate forms before any network call.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may restrict validation to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
