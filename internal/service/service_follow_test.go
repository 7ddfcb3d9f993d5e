package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/achabill/blog/internal/logger"
	"github.com/achabill/blog/internal/mock"
	"github.com/achabill/blog/internal/store"
	"github.com/achabill/blog/models"
)

func newTestFollowSvc(t *testing.T, ctrl *gomock.Controller) (*followService, *mock.MockFollowRepository, *mock.MockUserRepository) {
	t.Helper()
	mockFollows := mock.NewMockFollowRepository(ctrl)
	mockUsers := mock.NewMockUserRepository(ctrl)

	svc := NewFollowService(mockFollows, mockUsers, logger.Nop()).(*followService)

	return svc, mockFollows, mockUsers
}

func TestFollowService_Follow_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockFollows, _ := newTestFollowSvc(t, ctrl)
	ctx := context.Background()

	mockFollows.EXPECT().CreateFollow(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, f models.Follow) (models.Follow, error) {
			assert.Equal(t, "user-2", f.UserID)
			assert.Equal(t, "user-1", f.FollowerID)
			assert.NotEmpty(t, f.ID)
			return f, nil
		},
	)

	follow, err := svc.Follow(ctx, "user-1", "user-2")
	require.NoError(t, err)
	assert.Equal(t, "user-2", follow.UserID)
}

func TestFollowService_Follow_Self(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestFollowSvc(t, ctrl)

	_, err := svc.Follow(context.Background(), "user-1", "user-1")
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestFollowService_Follow_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockFollows, _ := newTestFollowSvc(t, ctrl)
	ctx := context.Background()

	mockFollows.EXPECT().CreateFollow(ctx, gomock.Any()).Return(models.Follow{}, store.ErrFollowAlreadyExists)

	_, err := svc.Follow(ctx, "user-1", "user-2")
	assert.ErrorIs(t, err, store.ErrFollowAlreadyExists)
}

func TestFollowService_Unfollow_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockFollows, _ := newTestFollowSvc(t, ctrl)
	ctx := context.Background()

	stored := models.Follow{ID: "follow-1", UserID: "user-2", FollowerID: "user-1"}
	gomock.InOrder(
		mockFollows.EXPECT().FindFollow(ctx, "user-1", "user-2").Return(stored, nil),
		mockFollows.EXPECT().DeleteFollow(ctx, "follow-1").Return(nil),
	)

	err := svc.Unfollow(ctx, "user-1", "user-2")
	require.NoError(t, err)
}

func TestFollowService_Unfollow_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockFollows, _ := newTestFollowSvc(t, ctrl)
	ctx := context.Background()

	mockFollows.EXPECT().FindFollow(ctx, "user-1", "user-2").Return(models.Follow{}, store.ErrFollowNotFound)

	err := svc.Unfollow(ctx, "user-1", "user-2")
	assert.ErrorIs(t, err, store.ErrFollowNotFound)
}

func TestFollowService_IsFollowing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockFollows, _ := newTestFollowSvc(t, ctrl)
	ctx := context.Background()

	mockFollows.EXPECT().FindFollow(ctx, "user-1", "user-2").Return(models.Follow{ID: "follow-1"}, nil)
	has, err := svc.IsFollowing(ctx, "user-1", "user-2")
	require.NoError(t, err)
	assert.True(t, has)

	mockFollows.EXPECT().FindFollow(ctx, "user-3", "user-2").Return(models.Follow{}, store.ErrFollowNotFound)
	has, err = svc.IsFollowing(ctx, "user-3", "user-2")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestFollowService_Followers_PopulatesProfiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockFollows, mockUsers := newTestFollowSvc(t, ctrl)
	ctx := context.Background()

	follows := []models.Follow{
		{ID: "follow-1", UserID: "user-2", FollowerID: "user-1"},
		{ID: "follow-2", UserID: "user-2", FollowerID: "user-3"},
	}
	mockFollows.EXPECT().ListFollowers(ctx, "user-2").Return(follows, nil)
	mockUsers.EXPECT().FindUsersByIDs(ctx, []string{"user-1", "user-3"}).Return([]models.User{
		{ID: "user-1", Username: "first"},
		{ID: "user-3", Username: "third"},
	}, nil)

	got, err := svc.Followers(ctx, "user-2")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Follower)
	assert.Equal(t, "first", got[0].Follower.Username)
	require.NotNil(t, got[1].Follower)
	assert.Equal(t, "third", got[1].Follower.Username)
}
