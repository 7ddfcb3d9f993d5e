package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("username or password incorrect")

	// ErrTokenIsExpiredOrInvalid normalises every token validation failure
	// (expired, bad signature, malformed payload, wrong issuer) so callers
	// do not need to inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrForbidden is returned when an authenticated principal attempts to
	// mutate a resource it does not own.
	ErrForbidden = errors.New("principal is not the resource owner")

	// ErrSelfFollow is returned when a user attempts to follow themselves.
	ErrSelfFollow = errors.New("you cannot follow yourself")
)
