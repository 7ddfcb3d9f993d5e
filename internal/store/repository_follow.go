// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Acha Bill

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/achabill/blog/internal/logger"
	"github.com/achabill/blog/models"
	"github.com/jackc/pgerrcode"
)

// followRepository is the PostgreSQL-backed implementation of
// [FollowRepository]. The follows table carries a unique constraint on
// (user_id, follower_id), so duplicate follows surface as a unique violation.
type followRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFollowRepository constructs a [FollowRepository] backed by the provided
// database connection and logger.
func NewFollowRepository(db *DB, logger *logger.Logger) FollowRepository {
	logger.Debug().Msg("creating follow repository")
	return &followRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFollow persists a new follow relationship and returns the stored
// record. A duplicate (user, follower) pair → [ErrFollowAlreadyExists].
func (r *followRepository) CreateFollow(ctx context.Context, follow models.Follow) (models.Follow, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createFollow,
		follow.ID, follow.UserID, follow.FollowerID, follow.CreatedAt, follow.UpdatedAt)

	var saved models.Follow
	if err := row.Scan(&saved.ID, &saved.UserID, &saved.FollowerID, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*followRepository.CreateFollow").Msg("error saving follow")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Follow{}, ErrFollowAlreadyExists
		default:
			return models.Follow{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// FindFollow retrieves the follow relationship where followerID follows
// userID, or [ErrFollowNotFound].
func (r *followRepository) FindFollow(ctx context.Context, followerID, userID string) (models.Follow, error) {
	log := logger.FromContext(ctx)

	var found models.Follow
	row := r.db.QueryRowContext(ctx, findFollow, followerID, userID)

	if err := row.Scan(&found.ID, &found.UserID, &found.FollowerID, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Follow{}, ErrFollowNotFound
		}
		log.Err(err).Str("func", "*followRepository.FindFollow").Msg("error scanning follow row")
		return models.Follow{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// DeleteFollow removes the follow relationship with the given ID.
// Returns [ErrFollowNotFound] if no row was deleted.
func (r *followRepository) DeleteFollow(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFollow, id)
	if err != nil {
		log.Err(err).Str("func", "*followRepository.DeleteFollow").Msg("error deleting follow")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFollowNotFound
	}

	return nil
}

// ListFollowers retrieves all follow relationships where userID is followed.
func (r *followRepository) ListFollowers(ctx context.Context, userID string) ([]models.Follow, error) {
	return r.list(ctx, sq.Eq{"user_id": userID})
}

// ListFollowings retrieves all follow relationships created by followerID.
func (r *followRepository) ListFollowings(ctx context.Context, followerID string) ([]models.Follow, error) {
	return r.list(ctx, sq.Eq{"follower_id": followerID})
}

// CountFollowers returns the number of followers userID has.
func (r *followRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	return r.count(ctx, sq.Eq{"user_id": userID})
}

// CountFollowings returns the number of users followerID is following.
func (r *followRepository) CountFollowings(ctx context.Context, followerID string) (int64, error) {
	return r.count(ctx, sq.Eq{"follower_id": followerID})
}

func (r *followRepository) list(ctx context.Context, filter sq.Eq) ([]models.Follow, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.
		Select("follow_id", "user_id", "follower_id", "created_at", "updated_at").
		From("follows").
		Where(filter).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*followRepository.list").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*followRepository.list").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var follows []models.Follow
	for rows.Next() {
		var f models.Follow
		if err := rows.Scan(&f.ID, &f.UserID, &f.FollowerID, &f.CreatedAt, &f.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*followRepository.list").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		follows = append(follows, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return follows, nil
}

func (r *followRepository) count(ctx context.Context, filter sq.Eq) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.
		Select("COUNT(*)").
		From("follows").
		Where(filter).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*followRepository.count").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*followRepository.count").Msg("error scanning count")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}
