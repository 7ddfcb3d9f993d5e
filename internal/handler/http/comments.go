package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/achabill/blog/internal/logger"
	"github.com/achabill/blog/internal/utils"
	"github.com/achabill/blog/models"
)

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createComment").Msg("no principal found in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createComment").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		log.Err(err).Str("func", "*Handler.createComment").Msg("validation failed")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.services.CommentService.Create(ctx, principal.ID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createComment").Msg("error creating comment")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handler) getComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	comment, err := h.services.CommentService.Get(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getComment").Str("id", id).Msg("error getting comment")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

// listComments lists comments, optionally filtered by the `post` query
// parameter.
func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID := r.URL.Query().Get("post")
	query := listQueryFromRequest(r)

	comments, err := h.services.CommentService.List(ctx, postID, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listComments").Msg("error listing comments")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.deleteComment").Msg("no principal found in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.services.CommentService.Remove(ctx, principal.ID, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteComment").Str("id", id).Msg("error deleting comment")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
