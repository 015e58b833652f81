package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	householddomain "game-night-go/internal/domain/household"
	"game-night-go/internal/transport/httpserver/middleware"
)

type createHouseholdRequest struct {
	Name string `json:"name"`
}

type joinHouseholdRequest struct {
	InviteCode string `json:"invite_code"`
}

type householdResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	InviteCode string    `json:"invite_code"`
	CreatedAt  time.Time `json:"created_at"`
}

type membershipResponse struct {
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type memberResponse struct {
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

func (h *Handlers) CreateHousehold(w http.ResponseWriter, r *http.Request) {
	var req createHouseholdRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	result, err := h.Households.CreateHousehold(r.Context(), user.ID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, householddomain.ErrAlreadyInHousehold):
			h.log.BusinessError("households.create: user already in household", err, "user_id", user.ID)
			writeError(w, http.StatusConflict, "already_in_household", "already in a household")
		default:
			h.log.InternalError("households.create: create failed", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toHouseholdResponse(result))
}

func (h *Handlers) JoinHousehold(w http.ResponseWriter, r *http.Request) {
	var req joinHouseholdRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	req.InviteCode = strings.TrimSpace(req.InviteCode)
	if req.InviteCode == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "invite_code is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	result, err := h.Households.JoinHousehold(r.Context(), user.ID, req.InviteCode)
	if err != nil {
		switch {
		case errors.Is(err, householddomain.ErrInviteCodeNotFound):
			h.log.BusinessError("households.join: invite code not found", err, "user_id", user.ID)
			writeError(w, http.StatusNotFound, "invite_code_not_found", "invite code not found")
		case errors.Is(err, householddomain.ErrAlreadyInHousehold):
			h.log.BusinessError("households.join: user already in household", err, "user_id", user.ID)
			writeError(w, http.StatusConflict, "already_in_household", "already in a household")
		default:
			h.log.InternalError("households.join: join failed", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toHouseholdResponse(result))
}

func (h *Handlers) GetMyHousehold(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	result, err := h.Households.GetByUser(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, householddomain.ErrHouseholdNotFound) {
			writeJSON(w, http.StatusOK, map[string]any{"household": nil})
			return
		}
		h.log.InternalError("households.get_me: get failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	member, err := h.Households.GetMembershipByUser(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("households.get_me: membership lookup failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"household":  toHouseholdResponse(result),
		"membership": membershipResponse{Role: member.Role, JoinedAt: member.JoinedAt},
	})
}

func (h *Handlers) ListHouseholdMembers(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	members, err := h.Households.ListMembers(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, householddomain.ErrHouseholdNotFound) {
			h.log.BusinessError("households.list_members: household not found", err, "user_id", user.ID)
			writeError(w, http.StatusNotFound, "household_not_found", "household not found")
			return
		}
		h.log.InternalError("households.list_members: list failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]memberResponse, 0, len(members))
	for _, member := range members {
		response = append(response, memberResponse{
			UserID:   member.UserID,
			Name:     member.Name,
			Email:    member.Email,
			Role:     member.Role,
			JoinedAt: member.JoinedAt,
		})
	}

	writeJSON(w, http.StatusOK, response)
}

func toHouseholdResponse(h *householddomain.Household) householdResponse {
	return householdResponse{
		ID:         h.ID,
		Name:       h.Name,
		InviteCode: h.InviteCode,
		CreatedAt:  h.CreatedAt,
	}
}
