package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/achabill/blog/internal/logger"
	"github.com/achabill/blog/models"
)

// commentRepository is the PostgreSQL-backed implementation of
// [CommentRepository].
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment persists a new comment and returns the stored record.
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createComment,
		comment.ID, comment.PostID, comment.Body, comment.AuthorID, comment.CreatedAt, comment.UpdatedAt)

	var saved models.Comment
	if err := row.Scan(&saved.ID, &saved.PostID, &saved.Body, &saved.AuthorID, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error saving comment")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// FindCommentByID retrieves the comment with the given ID, or
// [ErrCommentNotFound].
func (r *commentRepository) FindCommentByID(ctx context.Context, id string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	var found models.Comment
	row := r.db.QueryRowContext(ctx, findCommentByID, id)

	if err := row.Scan(&found.ID, &found.PostID, &found.Body, &found.AuthorID, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}
		log.Err(err).Str("func", "*commentRepository.FindCommentByID").Msg("error scanning comment row")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListComments retrieves a page of comments ordered newest first,
// optionally filtered by post ID.
func (r *commentRepository) ListComments(ctx context.Context, postID string, query models.ListQuery) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	builder := sq.
		Select("comment_id", "post_id", "body", "author_id", "created_at", "updated_at").
		From("comments").
		OrderBy("created_at DESC").
		Limit(uint64(query.Limit)).
		Offset(uint64(query.Offset)).
		PlaceholderFormat(sq.Dollar)

	if postID != "" {
		builder = builder.Where(sq.Eq{"post_id": postID})
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.Body, &c.AuthorID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

// DeleteComment removes the comment with the given ID.
// Returns [ErrCommentNotFound] if no row was deleted.
func (r *commentRepository) DeleteComment(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteComment, id)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("error deleting comment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCommentNotFound
	}

	return nil
}
