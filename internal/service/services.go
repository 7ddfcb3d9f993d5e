package service

import (
	"github.com/achabill/blog/internal/config"
	"github.com/achabill/blog/internal/logger"
	"github.com/achabill/blog/internal/store"
)

type Services struct {
	AuthService    AuthService
	PostService    PostService
	CommentService CommentService
	FollowService  FollowService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		PostService:    NewPostService(storages.PostRepository, storages.UserRepository, logger),
		CommentService: NewCommentService(storages.CommentRepository, storages.UserRepository, logger),
		FollowService:  NewFollowService(storages.FollowRepository, storages.UserRepository, logger),
	}
}
