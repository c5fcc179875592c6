// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks notes before they reach the server's store.
//
// [NewNoteValidator] accepts a single [models.Note] or a slice of them and
// can be limited to a subset of fields:
//
//	err := v.Validate(ctx, note, validators.FieldID, validators.FieldTitle)
package validators

import "context"

// Validator validates obj, limited to fields when any are given.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
