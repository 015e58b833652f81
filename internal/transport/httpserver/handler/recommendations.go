package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	householddomain "game-night-go/internal/domain/household"
	recommenddomain "game-night-go/internal/domain/recommend"
	"game-night-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type selectGameRequest struct {
	GameID string `json:"game_id"`
}

type markPlayedRequest struct {
	PlayID string `json:"play_id"`
}

type recommendationResponse struct {
	ID             string    `json:"id"`
	WeekStart      string    `json:"week_start"`
	Game1ID        string    `json:"game1_id"`
	Game2ID        string    `json:"game2_id"`
	SelectedGameID *string   `json:"selected_game_id"`
	WasPlayed      bool      `json:"was_played"`
	PlayID         *string   `json:"play_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type gameSummaryResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ImageURL    *string  `json:"image_url"`
	MinPlayers  int      `json:"min_players"`
	MaxPlayers  int      `json:"max_players"`
	PlayingTime *int     `json:"playing_time"`
	Complexity  *float64 `json:"complexity"`
}

type recommendationViewResponse struct {
	ID             string              `json:"id"`
	WeekStart      string              `json:"week_start"`
	SelectedGameID *string             `json:"selected_game_id"`
	WasPlayed      bool                `json:"was_played"`
	PlayID         *string             `json:"play_id"`
	Game1          gameSummaryResponse `json:"game1"`
	Game2          gameSummaryResponse `json:"game2"`
}

func (h *Handlers) GenerateRecommendation(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	owned, err := h.Households.GetByUser(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, householddomain.ErrHouseholdNotFound) {
			h.log.BusinessError("recommendations.generate: no household", err, "user_id", user.ID)
			writeError(w, http.StatusNotFound, "household_not_found", "household not found")
			return
		}
		h.log.InternalError("recommendations.generate: household lookup failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	rec, err := h.Recommend.Generate(r.Context(), owned.ID)
	if err != nil {
		if errors.Is(err, recommenddomain.ErrNotEnoughGames) {
			h.log.BusinessError("recommendations.generate: not enough games", err, "household_id", owned.ID)
			writeError(w, http.StatusUnprocessableEntity, "insufficient_games", "at least two games are required")
			return
		}
		h.log.InternalError("recommendations.generate: generate failed", err, "household_id", owned.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"recommendation": toRecommendationResponse(rec)})
}

func (h *Handlers) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	weekStart, err := parseDateParam(r.URL.Query().Get("week_start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "week_start must be a YYYY-MM-DD date")
		return
	}

	owned, err := h.Households.GetByUser(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, householddomain.ErrHouseholdNotFound) {
			writeError(w, http.StatusNotFound, "recommendation_not_found", "recommendation not found")
			return
		}
		h.log.InternalError("recommendations.get: household lookup failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	view, err := h.Recommend.Get(r.Context(), owned.ID, weekStart)
	if err != nil {
		if errors.Is(err, recommenddomain.ErrRecommendationNotFound) {
			h.log.BusinessError("recommendations.get: not found", err, "household_id", owned.ID)
			writeError(w, http.StatusNotFound, "recommendation_not_found", "recommendation not found")
			return
		}
		h.log.InternalError("recommendations.get: get failed", err, "household_id", owned.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"recommendation": toRecommendationViewResponse(view)})
}

func (h *Handlers) SelectRecommendedGame(w http.ResponseWriter, r *http.Request) {
	var req selectGameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	req.GameID = strings.TrimSpace(req.GameID)
	if req.GameID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "game_id is required")
		return
	}

	recommendationID := strings.TrimSpace(chi.URLParam(r, "id"))
	if recommendationID == "" {
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
			writeError(w, http.StatusNotFound, "recommendation_not_found", "recommendation not found")
			return
		}
		h.log.InternalError("recommendations.select: household lookup failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	rec, err := h.Recommend.SelectGame(r.Context(), owned.ID, recommendationID, req.GameID)
	if err != nil {
		switch {
		case errors.Is(err, recommenddomain.ErrRecommendationNotFound):
			h.log.BusinessError("recommendations.select: not found", err, "household_id", owned.ID, "recommendation_id", recommendationID)
			writeError(w, http.StatusNotFound, "recommendation_not_found", "recommendation not found")
		case errors.Is(err, recommenddomain.ErrGameNotInPair):
			h.log.BusinessError("recommendations.select: game not in pair", err, "household_id", owned.ID, "recommendation_id", recommendationID)
			writeError(w, http.StatusBadRequest, "game_not_in_pair", "game is not part of this week's pair")
		default:
			h.log.InternalError("recommendations.select: select failed", err, "household_id", owned.ID, "recommendation_id", recommendationID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"recommendation": toRecommendationResponse(rec)})
}

func (h *Handlers) MarkRecommendationPlayed(w http.ResponseWriter, r *http.Request) {
	var req markPlayedRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	req.PlayID = strings.TrimSpace(req.PlayID)
	if req.PlayID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "play_id is required")
		return
	}

	recommendationID := strings.TrimSpace(chi.URLParam(r, "id"))
	if recommendationID == "" {
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
			writeError(w, http.StatusNotFound, "recommendation_not_found", "recommendation not found")
			return
		}
		h.log.InternalError("recommendations.mark_played: household lookup failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	rec, err := h.Recommend.MarkPlayed(r.Context(), owned.ID, recommendationID, req.PlayID)
	if err != nil {
		switch {
		case errors.Is(err, recommenddomain.ErrRecommendationNotFound):
			h.log.BusinessError("recommendations.mark_played: not found", err, "household_id", owned.ID, "recommendation_id", recommendationID)
			writeError(w, http.StatusNotFound, "recommendation_not_found", "recommendation not found")
		case errors.Is(err, recommenddomain.ErrPlayNotFound):
			h.log.BusinessError("recommendations.mark_played: play not found", err, "household_id", owned.ID, "play_id", req.PlayID)
			writeError(w, http.StatusNotFound, "play_not_found", "play not found")
		default:
			h.log.InternalError("recommendations.mark_played: mark failed", err, "household_id", owned.ID, "recommendation_id", recommendationID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"recommendation": toRecommendationResponse(rec)})
}

func toRecommendationResponse(rec *recommenddomain.Recommendation) recommendationResponse {
	return recommendationResponse{
		ID:             rec.ID,
		WeekStart:      rec.WeekStart.Format("2006-01-02"),
		Game1ID:        rec.Game1ID,
		Game2ID:        rec.Game2ID,
		SelectedGameID: rec.SelectedGameID,
		WasPlayed:      rec.WasPlayed,
		PlayID:         rec.PlayID,
		CreatedAt:      rec.CreatedAt,
	}
}

func toRecommendationViewResponse(view *recommenddomain.View) recommendationViewResponse {
	return recommendationViewResponse{
		ID:             view.ID,
		WeekStart:      view.WeekStart.Format("2006-01-02"),
		SelectedGameID: view.SelectedGameID,
		WasPlayed:      view.WasPlayed,
		PlayID:         view.PlayID,
		Game1:          toGameSummaryResponse(view.Game1),
		Game2:          toGameSummaryResponse(view.Game2),
	}
}

func toGameSummaryResponse(game recommenddomain.GameSummary) gameSummaryResponse {
	return gameSummaryResponse{
		ID:          game.ID,
		Name:        game.Name,
		ImageURL:    game.ImageURL,
		MinPlayers:  game.MinPlayers,
		MaxPlayers:  game.MaxPlayers,
		PlayingTime: game.PlayingTime,
		Complexity:  game.Complexity,
	}
}
