package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// register handles POST /register with a JSON body
// {"username", "email", "password"} and responds with the created user.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("invalid JSON was passed")
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// login handles POST /login with form fields username and password and
// responds with {"access_token", "token_type": "bearer"}.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid form was passed")
		h.writeError(w, r, service.ErrInvalidCredentials)
		return
	}

	token, err := h.services.AuthService.Login(ctx, models.LoginRequest{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
	}, http.StatusOK)
}

// me returns the authenticated user.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthenticated)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
