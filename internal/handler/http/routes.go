package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the chi route table. The authorization policy is static and
// expressed through route groups: registration, login, the follow-existence
// check and the health endpoint are public; every other route requires a
// valid bearer token and runs behind the auth middleware.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.register)
		r.Post("/api/users/login", h.login)
		r.Get("/api/follows/has", h.isFollowing)
		r.Get("/health", h.health)
	})

	// routes behind the auth middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/profile", h.profile)

		r.Post("/api/posts", h.createPost)
		r.Get("/api/posts", h.listPosts)
		r.Get("/api/posts/{id}", h.getPost)
		r.Put("/api/posts/{id}", h.updatePost)
		r.Delete("/api/posts/{id}", h.deletePost)

		r.Post("/api/comments", h.createComment)
		r.Get("/api/comments", h.listComments)
		r.Get("/api/comments/{id}", h.getComment)
		r.Delete("/api/comments/{id}", h.deleteComment)

		r.Post("/api/follows", h.follow)
		r.Delete("/api/follows", h.unfollow)
		r.Get("/api/follows/followers", h.followers)
		r.Get("/api/follows/followings", h.followings)
		r.Get("/api/follows/followers/count", h.followersCount)
		r.Get("/api/follows/followings/count", h.followingsCount)
	})

	return router
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
