package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/achabill/blog/models"
)

// HTTPClientConfig configures the REST implementation of [ServerAdapter].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds a REST [ServerAdapter] talking to the blog
// server at cfg.BaseURL.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:4000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/users")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode register response: %w", err)
	}

	h.SetToken(auth.JWT)
	return auth, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/users/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(auth.JWT)
	return auth, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.Profile, error) {
	resp, err := h.authedRequest(ctx).Get("/api/users/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	var profile models.Profile
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile response: %w", err)
	}

	return profile, nil
}

func (h *httpServerAdapter) CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	var post models.Post
	if err = json.Unmarshal(resp.Body(), &post); err != nil {
		return models.Post{}, fmt.Errorf("decode create post response: %w", err)
	}

	return post, nil
}

func (h *httpServerAdapter) GetPost(ctx context.Context, id string) (models.Post, error) {
	resp, err := h.authedRequest(ctx).Get("/api/posts/" + id)
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	var post models.Post
	if err = json.Unmarshal(resp.Body(), &post); err != nil {
		return models.Post{}, fmt.Errorf("decode get post response: %w", err)
	}

	return post, nil
}

func (h *httpServerAdapter) ListPosts(ctx context.Context, query models.ListQuery) ([]models.Post, error) {
	req := h.authedRequest(ctx)
	if query.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(query.Limit))
	}
	if query.Offset > 0 {
		req.SetQueryParam("offset", strconv.Itoa(query.Offset))
	}

	resp, err := req.Get("/api/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var posts []models.Post
	if err = json.Unmarshal(resp.Body(), &posts); err != nil {
		return nil, fmt.Errorf("decode list posts response: %w", err)
	}

	return posts, nil
}

func (h *httpServerAdapter) UpdatePost(ctx context.Context, id string, patch models.PostPatch) (models.Post, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Put("/api/posts/" + id)
	if err != nil {
		return models.Post{}, fmt.Errorf("update post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	var post models.Post
	if err = json.Unmarshal(resp.Body(), &post); err != nil {
		return models.Post{}, fmt.Errorf("decode update post response: %w", err)
	}

	return post, nil
}

func (h *httpServerAdapter) DeletePost(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/posts/" + id)
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateComment(ctx context.Context, req models.CreateCommentRequest) (models.Comment, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/comments")
	if err != nil {
		return models.Comment{}, fmt.Errorf("create comment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Comment{}, err
	}

	var comment models.Comment
	if err = json.Unmarshal(resp.Body(), &comment); err != nil {
		return models.Comment{}, fmt.Errorf("decode create comment response: %w", err)
	}

	return comment, nil
}

func (h *httpServerAdapter) ListComments(ctx context.Context, postID string, query models.ListQuery) ([]models.Comment, error) {
	req := h.authedRequest(ctx)
	if postID != "" {
		req.SetQueryParam("post", postID)
	}
	if query.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(query.Limit))
	}
	if query.Offset > 0 {
		req.SetQueryParam("offset", strconv.Itoa(query.Offset))
	}

	resp, err := req.Get("/api/comments")
	if err != nil {
		return nil, fmt.Errorf("list comments request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var comments []models.Comment
	if err = json.Unmarshal(resp.Body(), &comments); err != nil {
		return nil, fmt.Errorf("decode list comments response: %w", err)
	}

	return comments, nil
}

func (h *httpServerAdapter) Follow(ctx context.Context, userID string) (models.Follow, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.FollowRequest{UserID: userID}).
		Post("/api/follows")
	if err != nil {
		return models.Follow{}, fmt.Errorf("follow request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Follow{}, err
	}

	var follow models.Follow
	if err = json.Unmarshal(resp.Body(), &follow); err != nil {
		return models.Follow{}, fmt.Errorf("decode follow response: %w", err)
	}

	return follow, nil
}

func (h *httpServerAdapter) Unfollow(ctx context.Context, userID string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.FollowRequest{UserID: userID}).
		Delete("/api/follows")
	if err != nil {
		return fmt.Errorf("unfollow request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) IsFollowing(ctx context.Context, followerID, userID string) (bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("follower", followerID).
		SetQueryParam("user", userID).
		Get("/api/follows/has")
	if err != nil {
		return false, fmt.Errorf("is following request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var has models.HasResponse
	if err = json.Unmarshal(resp.Body(), &has); err != nil {
		return false, fmt.Errorf("decode is following response: %w", err)
	}

	return has.Has, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
