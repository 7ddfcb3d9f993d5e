// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Acha Bill

// Package adapter provides a transport client for communicating with the
// blog server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/achabill/blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the blog
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account and stores the returned bearer token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login exchanges credentials for a bearer token and stores it.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Profile fetches the profile of the authenticated principal.
	Profile(ctx context.Context) (models.Profile, error)

	// CreatePost publishes a new post authored by the principal.
	CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error)

	// GetPost fetches a single post by ID, author populated.
	GetPost(ctx context.Context, id string) (models.Post, error)

	// ListPosts fetches a page of posts, newest first.
	ListPosts(ctx context.Context, query models.ListQuery) ([]models.Post, error)

	// UpdatePost applies a partial update to a post owned by the principal.
	UpdatePost(ctx context.Context, id string, patch models.PostPatch) (models.Post, error)

	// DeletePost removes a post owned by the principal.
	DeletePost(ctx context.Context, id string) error

	// CreateComment adds a comment to a post.
	CreateComment(ctx context.Context, req models.CreateCommentRequest) (models.Comment, error)

	// ListComments fetches a page of comments, optionally filtered by post.
	ListComments(ctx context.Context, postID string, query models.ListQuery) ([]models.Comment, error)

	// Follow makes the principal a follower of the given user.
	Follow(ctx context.Context, userID string) (models.Follow, error)

	// Unfollow removes the principal's follow of the given user.
	Unfollow(ctx context.Context, userID string) error

	// IsFollowing reports whether follower currently follows user.
	IsFollowing(ctx context.Context, followerID, userID string) (bool, error)
}
