package service

import (
	"context"
	"fmt"
	"time"

	"github.com/achabill/blog/internal/logger"
	"github.com/achabill/blog/internal/store"
	"github.com/achabill/blog/internal/utils"
	"github.com/achabill/blog/models"
)

// commentService is the concrete implementation of CommentService.
type commentService struct {
	commentRepository store.CommentRepository
	userRepository    store.UserRepository
	logger            *logger.Logger
}

// NewCommentService constructs a CommentService wired to the given
// repositories.
func NewCommentService(comments store.CommentRepository, users store.UserRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: comments,
		userRepository:    users,
		logger:            logger,
	}
}

// Create leaves a new comment on a post, authored by authorID.
func (s *commentService) Create(ctx context.Context, authorID string, req models.CreateCommentRequest) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if authorID == "" || req.PostID == "" || req.Body == "" {
		return models.Comment{}, ErrInvalidDataProvided
	}

	now := time.Now()
	comment := models.Comment{
		ID:        utils.NewID(),
		PostID:    req.PostID,
		Body:      req.Body,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := s.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		log.Err(err).Str("author", authorID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return s.populateOne(ctx, saved)
}

// Get retrieves the comment with the given ID, author populated.
func (s *commentService) Get(ctx context.Context, id string) (models.Comment, error) {
	comment, err := s.commentRepository.FindCommentByID(ctx, id)
	if err != nil {
		return models.Comment{}, fmt.Errorf("comment lookup failed: %w", err)
	}

	return s.populateOne(ctx, comment)
}

// List retrieves a page of comments, newest first, optionally filtered by
// post, authors populated.
func (s *commentService) List(ctx context.Context, postID string, query models.ListQuery) ([]models.Comment, error) {
	if query.Limit <= 0 {
		query.Limit = defaultListLimit
	}
	if query.Offset < 0 {
		query.Offset = defaultListOffset
	}

	comments, err := s.commentRepository.ListComments(ctx, postID, query)
	if err != nil {
		return nil, fmt.Errorf("comment listing failed: %w", err)
	}

	return s.populateMany(ctx, comments)
}

// Remove deletes the comment with the given ID after the shared ownership
// check.
func (s *commentService) Remove(ctx context.Context, principalID, id string) error {
	log := logger.FromContext(ctx)

	comment, err := s.commentRepository.FindCommentByID(ctx, id)
	if err != nil {
		return fmt.Errorf("comment lookup failed: %w", err)
	}

	if err := checkOwnership(principalID, comment.AuthorID); err != nil {
		log.Error().Str("principal", principalID).Str("author", comment.AuthorID).Msg("comment removal denied")
		return err
	}

	if err := s.commentRepository.DeleteComment(ctx, comment.ID); err != nil {
		log.Err(err).Str("id", id).Msg("comment removal ended with error")
		return fmt.Errorf("comment removal ended with error: %w", err)
	}

	return nil
}

func (s *commentService) populateOne(ctx context.Context, comment models.Comment) (models.Comment, error) {
	comments, err := s.populateMany(ctx, []models.Comment{comment})
	if err != nil {
		return models.Comment{}, err
	}
	return comments[0], nil
}

func (s *commentService) populateMany(ctx context.Context, comments []models.Comment) ([]models.Comment, error) {
	if len(comments) == 0 {
		return comments, nil
	}

	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.AuthorID)
	}

	profiles, err := resolveProfiles(ctx, s.userRepository, ids)
	if err != nil {
		return nil, err
	}

	for i := range comments {
		comments[i].Author = profiles[comments[i].AuthorID]
	}

	return comments, nil
}
