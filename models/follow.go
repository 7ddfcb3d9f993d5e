// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Acha Bill

package models

import "time"

// Follow is a directed relationship: Follower follows User.
type Follow struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"user"`
	FollowerID string   `json:"follower"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// User and Follower are the populated public profiles of the two sides
	// of the relationship. Only the side relevant to the query is filled.
	User     *Profile `json:"userProfile,omitempty"`
	Follower *Profile `json:"followerProfile,omitempty"`
}

// TableName returns the name of the database table
// associated with the Follow model.
func (f Follow) TableName() string {
	return "follows"
}
