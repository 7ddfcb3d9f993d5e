package store

import (
	"context"

	"github.com/achabill/blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access contract for the users collection.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUsersByIDs(ctx context.Context, ids []string) ([]models.User, error)
}

// PostRepository is the data-access contract for the posts collection.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, id string) (models.Post, error)
	UpdatePost(ctx context.Context, id string, patch models.PostPatch) (models.Post, error)
	ListPosts(ctx context.Context, query models.ListQuery) ([]models.Post, error)
	DeletePost(ctx context.Context, id string) error
}

// CommentRepository is the data-access contract for the comments collection.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	FindCommentByID(ctx context.Context, id string) (models.Comment, error)
	ListComments(ctx context.Context, postID string, query models.ListQuery) ([]models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// FollowRepository is the data-access contract for the follows collection.
type FollowRepository interface {
	CreateFollow(ctx context.Context, follow models.Follow) (models.Follow, error)
	FindFollow(ctx context.Context, followerID, userID string) (models.Follow, error)
	DeleteFollow(ctx context.Context, id string) error
	ListFollowers(ctx context.Context, userID string) ([]models.Follow, error)
	ListFollowings(ctx context.Context, followerID string) ([]models.Follow, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
	CountFollowings(ctx context.Context, followerID string) (int64, error)
}
