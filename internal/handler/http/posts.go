package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/achabill/blog/internal/logger"
	"github.com/achabill/blog/internal/utils"
	"github.com/achabill/blog/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createPost").Msg("no principal found in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createPost").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		log.Err(err).Str("func", "*Handler.createPost").Msg("validation failed")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.services.PostService.Create(ctx, principal.ID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createPost").Msg("error creating post")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	post, err := h.services.PostService.Get(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPost").Str("id", id).Msg("error getting post")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.updatePost").Msg("no principal found in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	var patch models.PostPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Str("func", "*Handler.updatePost").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	post, err := h.services.PostService.Update(ctx, principal.ID, id, patch)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updatePost").Str("id", id).Msg("error updating post")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := listQueryFromRequest(r)

	posts, err := h.services.PostService.List(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listPosts").Msg("error listing posts")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.deletePost").Msg("no principal found in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.services.PostService.Remove(ctx, principal.ID, id); err != nil {
		log.Err(err).Str("func", "*Handler.deletePost").Str("id", id).Msg("error deleting post")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listQueryFromRequest parses the optional `limit` and `offset` query
// parameters. Absent or malformed values are left at zero so the service
// layer applies its defaults.
func listQueryFromRequest(r *http.Request) models.ListQuery {
	var query models.ListQuery

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			query.Limit = limit
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset > 0 {
			query.Offset = offset
		}
	}

	return query
}
