// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request input before it reaches the services.
//
// Two validators are provided:
//   - [CredentialsValidator] for signup and login bodies ([models.Credentials]).
//   - [NoteValidator] for notes ([models.Note]).
//
// Both accept an optional list of field names (see fields.go) that restricts
// the check, e.g. a note lookup validates only [FieldUserID] and
// [FieldNoteID]. Failures wrap the sentinel errors in errors.go, so callers
// match them with [errors.Is].
package validators

import "context"

// Validator validates obj, optionally only the named fields. Passing a value
// of a type the validator does not handle returns [ErrUnsupportedType].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
