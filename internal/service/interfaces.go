package service

import (
	"context"

	"github.com/achabill/blog/models"
)

// AuthService handles account registration, credential verification and the
// identity-token lifecycle: issuing tokens at login/registration and
// resolving bearer tokens back to stored users on every protected request.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	Profile(ctx context.Context, userID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ResolveToken(ctx context.Context, tokenString string) (models.User, error)
}

// PostService implements the posts collection operations.
type PostService interface {
	Create(ctx context.Context, authorID string, req models.CreatePostRequest) (models.Post, error)
	Get(ctx context.Context, id string) (models.Post, error)
	Update(ctx context.Context, principalID, id string, patch models.PostPatch) (models.Post, error)
	List(ctx context.Context, query models.ListQuery) ([]models.Post, error)
	Remove(ctx context.Context, principalID, id string) error
}

// CommentService implements the comments collection operations.
type CommentService interface {
	Create(ctx context.Context, authorID string, req models.CreateCommentRequest) (models.Comment, error)
	Get(ctx context.Context, id string) (models.Comment, error)
	List(ctx context.Context, postID string, query models.ListQuery) ([]models.Comment, error)
	Remove(ctx context.Context, principalID, id string) error
}

// FollowService implements the follow-relationship operations.
type FollowService interface {
	Follow(ctx context.Context, followerID, userID string) (models.Follow, error)
	Unfollow(ctx context.Context, principalID, userID string) error
	Followers(ctx context.Context, userID string) ([]models.Follow, error)
	Followings(ctx context.Context, userID string) ([]models.Follow, error)
	FollowersCount(ctx context.Context, userID string) (int64, error)
	FollowingsCount(ctx context.Context, userID string) (int64, error)
	IsFollowing(ctx context.Context, followerID, userID string) (bool, error)
}
