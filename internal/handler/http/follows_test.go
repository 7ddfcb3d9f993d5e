package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achabill/blog/internal/logger"
	"github.com/achabill/blog/internal/service"
	"github.com/achabill/blog/models"
)

// mockFollowService is a function-backed FollowService used in handler tests.
type mockFollowService struct {
	followFn          func(ctx context.Context, followerID, userID string) (models.Follow, error)
	unfollowFn        func(ctx context.Context, principalID, userID string) error
	followersFn       func(ctx context.Context, userID string) ([]models.Follow, error)
	followingsFn      func(ctx context.Context, userID string) ([]models.Follow, error)
	followersCountFn  func(ctx context.Context, userID string) (int64, error)
	followingsCountFn func(ctx context.Context, userID string) (int64, error)
	isFollowingFn     func(ctx context.Context, followerID, userID string) (bool, error)
}

func (m *mockFollowService) Follow(ctx context.Context, followerID, userID string) (models.Follow, error) {
	return m.followFn(ctx, followerID, userID)
}

func (m *mockFollowService) Unfollow(ctx context.Context, principalID, userID string) error {
	return m.unfollowFn(ctx, principalID, userID)
}

func (m *mockFollowService) Followers(ctx context.Context, userID string) ([]models.Follow, error) {
	return m.followersFn(ctx, userID)
}

func (m *mockFollowService) Followings(ctx context.Context, userID string) ([]models.Follow, error) {
	return m.followingsFn(ctx, userID)
}

func (m *mockFollowService) FollowersCount(ctx context.Context, userID string) (int64, error) {
	return m.followersCountFn(ctx, userID)
}

func (m *mockFollowService) FollowingsCount(ctx context.Context, userID string) (int64, error) {
	return m.followingsCountFn(ctx, userID)
}

func (m *mockFollowService) IsFollowing(ctx context.Context, followerID, userID string) (bool, error) {
	return m.isFollowingFn(ctx, followerID, userID)
}

func newHandlerWithFollows(t *testing.T, follows service.FollowService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{FollowService: follows}, logger.Nop())
}

func TestIsFollowing_WireShape(t *testing.T) {
	h := newHandlerWithFollows(t, &mockFollowService{
		isFollowingFn: func(_ context.Context, followerID, userID string) (bool, error) {
			assert.Equal(t, "user-2", followerID)
			assert.Equal(t, "user-1", userID)
			return true, nil
		},
	})

	rr := executeJSON(h, h.isFollowing, http.MethodGet, "/api/follows/has?follower=user-2&user=user-1", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"has":true}`, rr.Body.String())

	var resp models.HasResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Has)
}

func TestIsFollowing_MissingParameters(t *testing.T) {
	h := newHandlerWithFollows(t, &mockFollowService{
		isFollowingFn: func(_ context.Context, _, _ string) (bool, error) {
			t.Fatal("IsFollowing should not be called")
			return false, nil
		},
	})

	for _, target := range []string{
		"/api/follows/has",
		"/api/follows/has?user=user-1",
		"/api/follows/has?follower=user-2",
	} {
		rr := executeJSON(h, h.isFollowing, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
	}
}

func TestFollowersCount_MissingUserParameter(t *testing.T) {
	h := newHandlerWithFollows(t, &mockFollowService{
		followersCountFn: func(_ context.Context, _ string) (int64, error) {
			t.Fatal("FollowersCount should not be called")
			return 0, nil
		},
	})

	rr := executeJSON(h, h.followersCount, http.MethodGet, "/api/follows/followers/count", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
