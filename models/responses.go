// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Acha Bill

package models

// AuthResponse is returned by register, login and profile: the public profile
// of the account together with a signed identity token.
type AuthResponse struct {
	Profile
	JWT string `json:"jwt"`
}

// CountResponse wraps a follower/following count.
type CountResponse struct {
	Count int64 `json:"count"`
}

// HasResponse reports whether a follow relationship exists.
type HasResponse struct {
	Has bool `json:"has"`
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
