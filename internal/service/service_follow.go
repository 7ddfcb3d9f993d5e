// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Acha Bill

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/achabill/blog/internal/logger"
	"github.com/achabill/blog/internal/store"
	"github.com/achabill/blog/internal/utils"
	"github.com/achabill/blog/models"
)

// followService is the concrete implementation of FollowService.
type followService struct {
	followRepository store.FollowRepository
	userRepository   store.UserRepository
	logger           *logger.Logger
}

// NewFollowService constructs a FollowService wired to the given
// repositories.
func NewFollowService(follows store.FollowRepository, users store.UserRepository, logger *logger.Logger) FollowService {
	return &followService{
		followRepository: follows,
		userRepository:   users,
		logger:           logger,
	}
}

// Follow records that followerID follows userID.
//
// Returns:
//   - ErrSelfFollow if the two IDs are equal.
//   - store.ErrFollowAlreadyExists (wrapped) if the relationship already
//     exists.
func (s *followService) Follow(ctx context.Context, followerID, userID string) (models.Follow, error) {
	log := logger.FromContext(ctx)

	if followerID == "" || userID == "" {
		return models.Follow{}, ErrInvalidDataProvided
	}
	if followerID == userID {
		return models.Follow{}, ErrSelfFollow
	}

	now := time.Now()
	follow := models.Follow{
		ID:         utils.NewID(),
		UserID:     userID,
		FollowerID: followerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Duplicate detection relies on the unique (user_id, follower_id)
	// constraint, so concurrent follow attempts cannot race past it.
	saved, err := s.followRepository.CreateFollow(ctx, follow)
	if err != nil {
		log.Err(err).Str("follower", followerID).Str("user", userID).Msg("follow creation ended with error")
		return models.Follow{}, fmt.Errorf("follow creation ended with error: %w", err)
	}

	return saved, nil
}

// Unfollow removes the relationship where principalID follows userID.
//
// Returns store.ErrFollowNotFound (wrapped) if no such relationship exists.
// The shared ownership check guards against removing a relationship the
// principal is not part of.
func (s *followService) Unfollow(ctx context.Context, principalID, userID string) error {
	log := logger.FromContext(ctx)

	follow, err := s.followRepository.FindFollow(ctx, principalID, userID)
	if err != nil {
		return fmt.Errorf("follow lookup failed: %w", err)
	}

	if err := checkOwnership(principalID, follow.FollowerID); err != nil {
		log.Error().Str("principal", principalID).Str("follower", follow.FollowerID).Msg("unfollow denied")
		return err
	}

	if err := s.followRepository.DeleteFollow(ctx, follow.ID); err != nil {
		log.Err(err).Str("id", follow.ID).Msg("unfollow ended with error")
		return fmt.Errorf("unfollow ended with error: %w", err)
	}

	return nil
}

// Followers lists everyone following userID, follower profiles populated.
func (s *followService) Followers(ctx context.Context, userID string) ([]models.Follow, error) {
	follows, err := s.followRepository.ListFollowers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("followers listing failed: %w", err)
	}

	return s.populate(ctx, follows, followerSide)
}

// Followings lists everyone userID is following, followee profiles populated.
func (s *followService) Followings(ctx context.Context, userID string) ([]models.Follow, error) {
	follows, err := s.followRepository.ListFollowings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("followings listing failed: %w", err)
	}

	return s.populate(ctx, follows, userSide)
}

// FollowersCount returns the number of followers userID has.
func (s *followService) FollowersCount(ctx context.Context, userID string) (int64, error) {
	count, err := s.followRepository.CountFollowers(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("followers count failed: %w", err)
	}
	return count, nil
}

// FollowingsCount returns the number of users userID is following.
func (s *followService) FollowingsCount(ctx context.Context, userID string) (int64, error) {
	count, err := s.followRepository.CountFollowings(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("followings count failed: %w", err)
	}
	return count, nil
}

// IsFollowing reports whether followerID currently follows userID.
func (s *followService) IsFollowing(ctx context.Context, followerID, userID string) (bool, error) {
	_, err := s.followRepository.FindFollow(ctx, followerID, userID)
	if err != nil {
		if errors.Is(err, store.ErrFollowNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("follow lookup failed: %w", err)
	}

	return true, nil
}

// followSide names which profile of a relationship to populate.
type followSide int

const (
	followerSide followSide = iota
	userSide
)

func (s *followService) populate(ctx context.Context, follows []models.Follow, side followSide) ([]models.Follow, error) {
	if len(follows) == 0 {
		return follows, nil
	}

	ids := make([]string, 0, len(follows))
	for _, f := range follows {
		if side == followerSide {
			ids = append(ids, f.FollowerID)
		} else {
			ids = append(ids, f.UserID)
		}
	}

	profiles, err := resolveProfiles(ctx, s.userRepository, ids)
	if err != nil {
		return nil, err
	}

	for i := range follows {
		if side == followerSide {
			if p, ok := profiles[follows[i].FollowerID]; ok {
				follows[i].Follower = &p
			}
		} else {
			if p, ok := profiles[follows[i].UserID]; ok {
				follows[i].User = &p
			}
		}
	}

	return follows, nil
}
