package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achabill/blog/internal/service"
	"github.com/achabill/blog/internal/store"
	"github.com/achabill/blog/internal/utils"
	"github.com/achabill/blog/models"
)

func executeJSON(h *Handler, handlerFn http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	handlerFn(rr, req)
	return rr
}

func TestRegister_Success(t *testing.T) {
	registered := models.User{ID: "user-1", Username: "garri", CreatedAt: time.Now()}

	h := newHandlerWithAuth(t, &mockAuthService{
		registerUserFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			assert.Equal(t, "garri", req.Username)
			return registered, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-jwt", UserID: user.ID}, nil
		},
	})

	rr := executeJSON(h, h.register, http.MethodPost, "/api/users",
		`{"username":"garri","password":"super-secret"}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.ID)
	assert.Equal(t, "garri", resp.Username)
	assert.Equal(t, "signed-jwt", resp.JWT)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	})

	rr := executeJSON(h, h.register, http.MethodPost, "/api/users",
		`{"username":"taken","password":"super-secret"}`)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRegister_ValidationFailure(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			t.Fatal("RegisterUser should not be called on validation failure")
			return models.User{}, nil
		},
	})

	tests := []struct {
		name string
		body string
	}{
		{"username too short", `{"username":"g","password":"super-secret"}`},
		{"password too short", `{"username":"garri","password":"short"}`},
		{"missing username", `{"password":"super-secret"}`},
		{"invalid JSON", `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeJSON(h, h.register, http.MethodPost, "/api/users", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	found := models.User{ID: "user-1", Username: "garri"}

	h := newHandlerWithAuth(t, &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			assert.Equal(t, "garri", req.Username)
			return found, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-jwt", UserID: user.ID}, nil
		},
	})

	rr := executeJSON(h, h.login, http.MethodPost, "/api/users/login",
		`{"username":"garri","password":"super-secret"}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed-jwt", resp.JWT)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name    string
		loginFn func(ctx context.Context, req models.LoginRequest) (models.User, error)
	}{
		{
			name: "unknown username",
			loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
				return models.User{}, store.ErrNoUserWasFound
			},
		},
		{
			name: "wrong password",
			loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
				return models.User{}, service.ErrWrongPassword
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(t, &mockAuthService{loginFn: tt.loginFn})

			rr := executeJSON(h, h.login, http.MethodPost, "/api/users/login",
				`{"username":"garri","password":"super-secret"}`)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestProfile_ReturnsStoredUserAndToken(t *testing.T) {
	stored := models.User{ID: "user-1", Username: "garri", Bio: "writes things"}

	var requestedID string
	h := newHandlerWithAuth(t, &mockAuthService{
		profileFn: func(_ context.Context, userID string) (models.User, error) {
			requestedID = userID
			return stored, nil
		},
	})

	principal := models.Profile{ID: "user-1", Username: "garri", Bio: "stale bio"}

	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req = injectNopLogger(req)
	req = req.WithContext(utils.WithPrincipal(req.Context(), principal, "raw-token"))

	rr := httptest.NewRecorder()
	h.profile(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user-1", requestedID)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, stored.ID, resp.ID)
	assert.Equal(t, stored.Bio, resp.Bio, "response carries the stored record, not the context principal")
	assert.Equal(t, "raw-token", resp.JWT)
}

func TestProfile_SubjectDeleted(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		profileFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	})

	principal := models.Profile{ID: "user-1", Username: "garri"}

	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req = injectNopLogger(req)
	req = req.WithContext(utils.WithPrincipal(req.Context(), principal, "raw-token"))

	rr := httptest.NewRecorder()
	h.profile(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProfile_NoPrincipal(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req = injectNopLogger(req)

	rr := httptest.NewRecorder()
	h.profile(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
