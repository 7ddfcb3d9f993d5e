// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Acha Bill

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/achabill/blog/internal/logger"
	"github.com/achabill/blog/internal/service"
	"github.com/achabill/blog/internal/store"
	"github.com/achabill/blog/internal/utils"
	"github.com/achabill/blog/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("validation failed")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Str("func", "*Handler.register").Msg("username already exists")
			utils.WriteError(w, "username already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Str("func", "*Handler.register").Msg("unexpected error occurred during user registration")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("creation of token failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Profile: registeredUser.Profile(),
		JWT:     token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("validation failed")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Str("func", "*Handler.login").Msg("no user was found/wrong password")
			utils.WriteError(w, "invalid username/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Str("func", "*Handler.login").Msg("unexpected error occurred during user login")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("creation of token failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Profile: foundUser.Profile(),
		JWT:     token.SignedString,
	}, http.StatusOK)
}

// profile returns the stored profile of the authenticated principal together
// with the token the request was authenticated with. The user record is
// re-fetched so the response reflects the current state, not the cached
// principal. The auth middleware guarantees the principal and token are
// present in the context.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.profile").Msg("no principal found in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.Profile(ctx, principal.ID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.profile").Str("id", principal.ID).Msg("error fetching profile")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	token, _ := utils.GetTokenFromContext(ctx)

	utils.WriteJSON(w, models.AuthResponse{
		Profile: user.Profile(),
		JWT:     token,
	}, http.StatusOK)
}
