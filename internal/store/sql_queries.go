// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Acha Bill

package store

const (
	createUser = `INSERT INTO users (user_id, username, password_hash, bio, image, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING user_id, username, password_hash, bio, image, created_at, updated_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, bio, image, created_at, updated_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, password_hash, bio, image, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	createPost = `INSERT INTO posts (post_id, title, body, tag_list, author_id, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING post_id, title, body, tag_list, author_id, created_at, updated_at;`

	findPostByID = `SELECT post_id, title, body, tag_list, author_id, created_at, updated_at
    FROM posts
    WHERE post_id = $1;`

	deletePost = `DELETE FROM posts WHERE post_id = $1;`

	createComment = `INSERT INTO comments (comment_id, post_id, body, author_id, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING comment_id, post_id, body, author_id, created_at, updated_at;`

	findCommentByID = `SELECT comment_id, post_id, body, author_id, created_at, updated_at
    FROM comments
    WHERE comment_id = $1;`

	deleteComment = `DELETE FROM comments WHERE comment_id = $1;`

	createFollow = `INSERT INTO follows (follow_id, user_id, follower_id, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING follow_id, user_id, follower_id, created_at, updated_at;`

	findFollow = `SELECT follow_id, user_id, follower_id, created_at, updated_at
    FROM follows
    WHERE follower_id = $1 AND user_id = $2;`

	deleteFollow = `DELETE FROM follows WHERE follow_id = $1;`
)
