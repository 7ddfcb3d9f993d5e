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

// Pagination defaults applied when a list request leaves the window unset.
const (
	defaultListLimit  = 20
	defaultListOffset = 0
)

// postService is the concrete implementation of PostService.
type postService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewPostService constructs a PostService wired to the given repositories.
// The user repository is needed to populate author profiles on responses.
func NewPostService(posts store.PostRepository, users store.UserRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: posts,
		userRepository: users,
		logger:         logger,
	}
}

// Create publishes a new post authored by authorID.
func (s *postService) Create(ctx context.Context, authorID string, req models.CreatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	if authorID == "" || req.Title == "" || req.Body == "" {
		return models.Post{}, ErrInvalidDataProvided
	}

	now := time.Now()
	post := models.Post{
		ID:        utils.NewID(),
		Title:     req.Title,
		Body:      req.Body,
		TagList:   req.TagList,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := s.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Str("author", authorID).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return s.populateOne(ctx, saved)
}

// Get retrieves the post with the given ID, author populated.
func (s *postService) Get(ctx context.Context, id string) (models.Post, error) {
	post, err := s.postRepository.FindPostByID(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("post lookup failed: %w", err)
	}

	return s.populateOne(ctx, post)
}

// Update applies a partial update to the post with the given ID.
// The principal must be the post's author; any other caller gets
// ErrForbidden.
func (s *postService) Update(ctx context.Context, principalID, id string, patch models.PostPatch) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := s.postRepository.FindPostByID(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("post lookup failed: %w", err)
	}

	if err := checkOwnership(principalID, post.AuthorID); err != nil {
		log.Error().Str("principal", principalID).Str("author", post.AuthorID).Msg("post update denied")
		return models.Post{}, err
	}

	updated, err := s.postRepository.UpdatePost(ctx, post.ID, patch)
	if err != nil {
		log.Err(err).Str("id", id).Msg("post update ended with error")
		return models.Post{}, fmt.Errorf("post update ended with error: %w", err)
	}

	return s.populateOne(ctx, updated)
}

// List retrieves a page of posts, newest first, authors populated.
func (s *postService) List(ctx context.Context, query models.ListQuery) ([]models.Post, error) {
	if query.Limit <= 0 {
		query.Limit = defaultListLimit
	}
	if query.Offset < 0 {
		query.Offset = defaultListOffset
	}

	posts, err := s.postRepository.ListPosts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("post listing failed: %w", err)
	}

	return s.populateMany(ctx, posts)
}

// Remove deletes the post with the given ID after the shared ownership check.
func (s *postService) Remove(ctx context.Context, principalID, id string) error {
	log := logger.FromContext(ctx)

	post, err := s.postRepository.FindPostByID(ctx, id)
	if err != nil {
		return fmt.Errorf("post lookup failed: %w", err)
	}

	if err := checkOwnership(principalID, post.AuthorID); err != nil {
		log.Error().Str("principal", principalID).Str("author", post.AuthorID).Msg("post removal denied")
		return err
	}

	if err := s.postRepository.DeletePost(ctx, post.ID); err != nil {
		log.Err(err).Str("id", id).Msg("post removal ended with error")
		return fmt.Errorf("post removal ended with error: %w", err)
	}

	return nil
}

func (s *postService) populateOne(ctx context.Context, post models.Post) (models.Post, error) {
	posts, err := s.populateMany(ctx, []models.Post{post})
	if err != nil {
		return models.Post{}, err
	}
	return posts[0], nil
}

func (s *postService) populateMany(ctx context.Context, posts []models.Post) ([]models.Post, error) {
	if len(posts) == 0 {
		return posts, nil
	}

	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.AuthorID)
	}

	profiles, err := resolveProfiles(ctx, s.userRepository, ids)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		posts[i].Author = profiles[posts[i].AuthorID]
	}

	return posts, nil
}
