package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/achabill/blog/internal/logger"
	"github.com/achabill/blog/models"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
// Tag lists are stored as JSONB so the posts table keeps the document shape
// of the original collection.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost persists a new post and returns the stored record.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	tagList, err := marshalTagList(post.TagList)
	if err != nil {
		return models.Post{}, err
	}

	row := r.db.QueryRowContext(ctx, createPost,
		post.ID, post.Title, post.Body, tagList, post.AuthorID, post.CreatedAt, post.UpdatedAt)

	saved, err := scanPost(row)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error saving post")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// FindPostByID retrieves the post with the given ID, or [ErrPostNotFound].
func (r *postRepository) FindPostByID(ctx context.Context, id string) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findPostByID, id)

	found, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.FindPostByID").Msg("error scanning post row")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdatePost applies the non-nil fields of patch to the post with the given
// ID and returns the updated record. Returns [ErrPostNotFound] if no row
// matches.
func (r *postRepository) UpdatePost(ctx context.Context, id string, patch models.PostPatch) (models.Post, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("posts").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"post_id": id}).
		Suffix("RETURNING post_id, title, body, tag_list, author_id, created_at, updated_at").
		PlaceholderFormat(sq.Dollar)

	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}
	if patch.Body != nil {
		builder = builder.Set("body", *patch.Body)
	}
	if patch.TagList != nil {
		tagList, err := marshalTagList(patch.TagList)
		if err != nil {
			return models.Post{}, err
		}
		builder = builder.Set("tag_list", tagList)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	updated, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error scanning post row")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// ListPosts retrieves a page of posts ordered newest first.
func (r *postRepository) ListPosts(ctx context.Context, query models.ListQuery) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := sq.
		Select("post_id", "title", "body", "tag_list", "author_id", "created_at", "updated_at").
		From("posts").
		OrderBy("created_at DESC").
		Limit(uint64(query.Limit)).
		Offset(uint64(query.Offset)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// DeletePost removes the post with the given ID.
// Returns [ErrPostNotFound] if no row was deleted.
func (r *postRepository) DeletePost(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePost, id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// rowScanner matches both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	var tagList []byte

	if err := row.Scan(&post.ID, &post.Title, &post.Body, &tagList, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt); err != nil {
		return models.Post{}, err
	}

	if len(tagList) > 0 {
		if err := json.Unmarshal(tagList, &post.TagList); err != nil {
			return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	return post, nil
}

func marshalTagList(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return data, nil
}
