// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Acha Bill

package models

// RegisterRequest is the payload accepted when creating a new account.
// Field constraints mirror the platform's registration rules: usernames are
// 2–24 characters and passwords at least 8.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=24"`
	Password string `json:"password" validate:"required,min=8"`
	Bio      string `json:"bio" validate:"omitempty,max=512"`
	Image    string `json:"image" validate:"omitempty,url"`
}

// LoginRequest is the payload accepted when exchanging credentials for a token.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=2,max=24"`
	Password string `json:"password" validate:"required,min=8"`
}

// CreatePostRequest is the payload accepted when publishing a post.
type CreatePostRequest struct {
	Title   string   `json:"title" validate:"required,min=1"`
	Body    string   `json:"body" validate:"required,min=2"`
	TagList []string `json:"tagList" validate:"omitempty,dive,min=1"`
}

// CreateCommentRequest is the payload accepted when commenting on a post.
type CreateCommentRequest struct {
	PostID string `json:"post" validate:"required,min=1"`
	Body   string `json:"body" validate:"required,min=1"`
}

// FollowRequest names the user a follow operation targets.
type FollowRequest struct {
	UserID string `json:"user" validate:"required,min=1"`
}

// ListQuery carries the pagination window of a list operation.
// Zero values fall back to the service defaults (limit 20, offset 0).
type ListQuery struct {
	Limit  int
	Offset int
}
