package store

import (
	"context"

	"github.com/achabill/blog/internal/config"
	"github.com/achabill/blog/internal/logger"
)

// Storages aggregates the repositories of all collections behind the API.
type Storages struct {
	UserRepository    UserRepository
	PostRepository    PostRepository
	CommentRepository CommentRepository
	FollowRepository  FollowRepository
}

// NewStorages connects to PostgreSQL, runs the embedded migrations and wires
// a repository per collection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		PostRepository:    NewPostRepository(db, log),
		CommentRepository: NewCommentRepository(db, log),
		FollowRepository:  NewFollowRepository(db, log),
	}, nil
}
