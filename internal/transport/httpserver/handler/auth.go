package handler

import (
	"errors"
	"net/http"
	"time"

	userdomain "game-night-go/internal/domain/user"
	"game-night-go/internal/transport/httpserver/middleware"
)

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	account, err := h.Users.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, userdomain.ErrEmailRequired),
			errors.Is(err, userdomain.ErrNameRequired),
			errors.Is(err, userdomain.ErrPasswordRequired),
			errors.Is(err, userdomain.ErrPasswordTooShort):
			h.log.BusinessError("auth.register: invalid input", err)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, userdomain.ErrEmailTaken):
			h.log.BusinessError("auth.register: email taken", err)
			writeError(w, http.StatusConflict, "email_taken", "email already registered")
		default:
			h.log.InternalError("auth.register: register failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	token, err := h.Tokens.Issue(account.ID)
	if err != nil {
		h.log.InternalError("auth.register: issue token failed", err, "user_id", account.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{Token: token, User: toUserResponse(account)})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	account, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userdomain.ErrInvalidCredentials) {
			h.log.BusinessError("auth.login: invalid credentials", err)
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
			return
		}
		h.log.InternalError("auth.login: login failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	token, err := h.Tokens.Issue(account.ID)
	if err != nil {
		h.log.InternalError("auth.login: issue token failed", err, "user_id", account.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Token: token, User: toUserResponse(account)})
}

func (h *Handlers) AuthMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	})
}

func toUserResponse(account *userdomain.User) userResponse {
	return userResponse{
		ID:        account.ID,
		Email:     account.Email,
		Name:      account.Name,
		CreatedAt: account.CreatedAt,
	}
}
