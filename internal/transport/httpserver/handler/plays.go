package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	householddomain "game-night-go/internal/domain/household"
	playsdomain "game-night-go/internal/domain/plays"
	"game-night-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type participantRequest struct {
	Name     string `json:"name"`
	Score    *int   `json:"score"`
	Position *int   `json:"position"`
	IsWinner bool   `json:"is_winner"`
}

type createPlayRequest struct {
	GameID       string               `json:"game_id"`
	PlayDate     string               `json:"play_date"`
	Duration     *int                 `json:"duration"`
	Notes        *string              `json:"notes"`
	Participants []participantRequest `json:"participants"`
}

type updatePlayRequest struct {
	PlayDate     string               `json:"play_date"`
	Duration     *int                 `json:"duration"`
	Notes        *string              `json:"notes"`
	Participants []participantRequest `json:"participants"`
}

type participantResponse struct {
	ID         string `json:"id"`
	PlayerName string `json:"player_name"`
	Score      *int   `json:"score"`
	Position   *int   `json:"position"`
	IsWinner   bool   `json:"is_winner"`
}

type playResponse struct {
	ID        string    `json:"id"`
	GameID    string    `json:"game_id"`
	PlayDate  time.Time `json:"play_date"`
	Duration  *int      `json:"duration"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type playWithGameResponse struct {
	playResponse
	GameName         string                `json:"game_name"`
	GameImage        *string               `json:"game_image"`
	Participants     []participantResponse `json:"participants"`
	ParticipantCount int                   `json:"participant_count"`
}

func (h *Handlers) ListPlays(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	owned, err := h.Households.GetByUser(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, householddomain.ErrHouseholdNotFound) {
			writeJSON(w, http.StatusOK, map[string]any{"plays": []playWithGameResponse{}})
			return
		}
		h.log.InternalError("plays.list: household lookup failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	entries, err := h.Plays.ListPlays(r.Context(), owned.ID)
	if err != nil {
		h.log.InternalError("plays.list: list failed", err, "household_id", owned.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]playWithGameResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, toPlayWithGameResponse(&entry))
	}
	writeJSON(w, http.StatusOK, map[string]any{"plays": response})
}

func (h *Handlers) CreatePlay(w http.ResponseWriter, r *http.Request) {
	var req createPlayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	playDate, err := parseDateRequired(req.PlayDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "play_date must be a YYYY-MM-DD date")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	owned, err := h.Households.GetByUser(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, householddomain.ErrHouseholdNotFound) {
			h.log.BusinessError("plays.create: no household", err, "user_id", user.ID)
			writeError(w, http.StatusNotFound, "household_not_found", "household not found")
			return
		}
		h.log.InternalError("plays.create: household lookup failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	play, err := h.Plays.CreatePlay(r.Context(), owned.ID, playsdomain.CreatePlayInput{
		GameID:       req.GameID,
		PlayDate:     playDate,
		Duration:     req.Duration,
		Notes:        req.Notes,
		Participants: toParticipantInputs(req.Participants),
	})
	if err != nil {
		switch {
		case errors.Is(err, playsdomain.ErrGameRequired),
			errors.Is(err, playsdomain.ErrPlayDateRequired),
			errors.Is(err, playsdomain.ErrNameRequired):
			h.log.BusinessError("plays.create: invalid input", err, "household_id", owned.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, playsdomain.ErrGameNotFound):
			h.log.BusinessError("plays.create: game not found", err, "household_id", owned.ID, "game_id", req.GameID)
			writeError(w, http.StatusNotFound, "game_not_found", "game not found")
		default:
			h.log.InternalError("plays.create: create failed", err, "household_id", owned.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"play": toPlayResponse(play)})
}

func (h *Handlers) UpdatePlay(w http.ResponseWriter, r *http.Request) {
	var req updatePlayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	playID := strings.TrimSpace(chi.URLParam(r, "id"))
	if playID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	playDate, err := parseDateRequired(req.PlayDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "play_date must be a YYYY-MM-DD date")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	owned, err := h.Households.GetByUser(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, householddomain.ErrHouseholdNotFound) {
			writeError(w, http.StatusNotFound, "play_not_found", "play not found")
			return
		}
		h.log.InternalError("plays.update: household lookup failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	play, err := h.Plays.UpdatePlay(r.Context(), owned.ID, playID, playsdomain.UpdatePlayInput{
		PlayDate:     playDate,
		Duration:     req.Duration,
		Notes:        req.Notes,
		Participants: toParticipantInputs(req.Participants),
	})
	if err != nil {
		switch {
		case errors.Is(err, playsdomain.ErrPlayNotFound):
			h.log.BusinessError("plays.update: play not found", err, "household_id", owned.ID, "play_id", playID)
			writeError(w, http.StatusNotFound, "play_not_found", "play not found")
		case errors.Is(err, playsdomain.ErrPlayDateRequired),
			errors.Is(err, playsdomain.ErrNameRequired):
			h.log.BusinessError("plays.update: invalid input", err, "household_id", owned.ID, "play_id", playID)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("plays.update: update failed", err, "household_id", owned.ID, "play_id", playID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"play": toPlayResponse(play)})
}

func (h *Handlers) DeletePlay(w http.ResponseWriter, r *http.Request) {
	playID := strings.TrimSpace(chi.URLParam(r, "id"))
	if playID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	owned, err := h.Households.GetByUser(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, householddomain.ErrHouseholdNotFound) {
			writeError(w, http.StatusNotFound, "play_not_found", "play not found")
			return
		}
		h.log.InternalError("plays.delete: household lookup failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	if err := h.Plays.DeletePlay(r.Context(), owned.ID, playID); err != nil {
		if errors.Is(err, playsdomain.ErrPlayNotFound) {
			h.log.BusinessError("plays.delete: play not found", err, "household_id", owned.ID, "play_id", playID)
			writeError(w, http.StatusNotFound, "play_not_found", "play not found")
			return
		}
		h.log.InternalError("plays.delete: delete failed", err, "household_id", owned.ID, "play_id", playID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toParticipantInputs(requests []participantRequest) []playsdomain.ParticipantInput {
	inputs := make([]playsdomain.ParticipantInput, 0, len(requests))
	for _, req := range requests {
		inputs = append(inputs, playsdomain.ParticipantInput{
			Name:     req.Name,
			Score:    req.Score,
			Position: req.Position,
			IsWinner: req.IsWinner,
		})
	}
	return inputs
}

func toPlayResponse(play *playsdomain.Play) playResponse {
	return playResponse{
		ID:        play.ID,
		GameID:    play.GameID,
		PlayDate:  play.PlayDate,
		Duration:  play.Duration,
		Notes:     play.Notes,
		CreatedAt: play.CreatedAt,
		UpdatedAt: play.UpdatedAt,
	}
}

func toPlayWithGameResponse(entry *playsdomain.PlayWithGame) playWithGameResponse {
	participants := make([]participantResponse, 0, len(entry.Participants))
	for _, participant := range entry.Participants {
		participants = append(participants, participantResponse{
			ID:         participant.ID,
			PlayerName: participant.PlayerName,
			Score:      participant.Score,
			Position:   participant.Position,
			IsWinner:   participant.IsWinner,
		})
	}
	return playWithGameResponse{
		playResponse:     toPlayResponse(&entry.Play),
		GameName:         entry.GameName,
		GameImage:        entry.GameImage,
		Participants:     participants,
		ParticipantCount: entry.ParticipantCount,
	}
}
