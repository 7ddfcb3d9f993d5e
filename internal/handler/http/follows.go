package http

import (
	"encoding/json"
	"net/http"

	"github.com/achabill/blog/internal/logger"
	"github.com/achabill/blog/internal/utils"
	"github.com/achabill/blog/models"
)

// follow makes the authenticated principal a follower of the user named in
// the request body.
func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.follow").Msg("no principal found in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.follow").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		log.Err(err).Str("func", "*Handler.follow").Msg("validation failed")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	follow, err := h.services.FollowService.Follow(ctx, principal.ID, req.UserID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.follow").Str("user", req.UserID).Msg("error creating follow")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, follow, http.StatusCreated)
}

// unfollow removes the principal's follow of the user named in the request
// body.
func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.unfollow").Msg("no principal found in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.unfollow").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		log.Err(err).Str("func", "*Handler.unfollow").Msg("validation failed")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.FollowService.Unfollow(ctx, principal.ID, req.UserID); err != nil {
		log.Err(err).Str("func", "*Handler.unfollow").Str("user", req.UserID).Msg("error deleting follow")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) followers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.followers").Send()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	follows, err := h.services.FollowService.Followers(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.followers").Str("user", userID).Msg("error listing followers")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, follows, http.StatusOK)
}

func (h *Handler) followings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.followings").Send()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	follows, err := h.services.FollowService.Followings(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.followings").Str("user", userID).Msg("error listing followings")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, follows, http.StatusOK)
}

func (h *Handler) followersCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.followersCount").Send()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	count, err := h.services.FollowService.FollowersCount(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.followersCount").Str("user", userID).Msg("error counting followers")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CountResponse{Count: count}, http.StatusOK)
}

func (h *Handler) followingsCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.followingsCount").Send()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	count, err := h.services.FollowService.FollowingsCount(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.followingsCount").Str("user", userID).Msg("error counting followings")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CountResponse{Count: count}, http.StatusOK)
}

// isFollowing reports whether `follower` currently follows `user`. Both are
// query parameters; the route is public.
func (h *Handler) isFollowing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	followerID := r.URL.Query().Get("follower")
	userID := r.URL.Query().Get("user")
	if followerID == "" || userID == "" {
		log.Error().Str("func", "*Handler.isFollowing").Msg("missing `follower` or `user` query parameter")
		utils.WriteError(w, "missing `follower` or `user` query parameter", http.StatusBadRequest)
		return
	}

	has, err := h.services.FollowService.IsFollowing(ctx, followerID, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.isFollowing").Msg("error checking follow")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.HasResponse{Has: has}, http.StatusOK)
}

func userIDFromQuery(r *http.Request) (string, error) {
	userID := r.URL.Query().Get("user")
	if userID == "" {
		return "", ErrMissingUserParameter
	}
	return userID, nil
}
