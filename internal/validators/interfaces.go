// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Acha Bill

// Package validators provides declarative request-payload validation for the
// HTTP layer, backed by go-playground/validator struct tags on the request
// models.
package validators

// RequestValidator checks that a decoded request payload satisfies the
// constraints declared on its struct tags.
type RequestValidator interface {
	// Validate returns nil if the payload is valid, or an error wrapping
	// ErrValidationFailed describing the first offending field otherwise.
	Validate(payload any) error
}
