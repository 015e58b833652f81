package handler

import (
	"errors"
	"net/http"
	"time"

	householddomain "game-night-go/internal/domain/household"
	statsdomain "game-night-go/internal/domain/stats"
	"game-night-go/internal/transport/httpserver/middleware"
)

type recentPlayResponse struct {
	ID       string    `json:"id"`
	GameName string    `json:"game_name"`
	PlayDate time.Time `json:"play_date"`
	Duration *int      `json:"duration"`
}

type dashboardResponse struct {
	TotalGames  int64                `json:"total_games"`
	TotalPlays  int64                `json:"total_plays"`
	MemberCount int64                `json:"member_count"`
	RecentPlays []recentPlayResponse `json:"recent_plays"`
}

func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	owned, err := h.Households.GetByUser(r.Context(), user.ID)
	if err != nil {
		// No household yet: the dashboard is all zeroes, not an error.
		if errors.Is(err, householddomain.ErrHouseholdNotFound) {
			writeJSON(w, http.StatusOK, toDashboardResponse(statsdomain.Empty()))
			return
		}
		h.log.InternalError("dashboard: household lookup failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	summary, err := h.Stats.Summary(r.Context(), owned.ID)
	if err != nil {
		h.log.InternalError("dashboard: summary failed", err, "household_id", owned.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toDashboardResponse(summary))
}

func toDashboardResponse(summary *statsdomain.Summary) dashboardResponse {
	recent := make([]recentPlayResponse, 0, len(summary.RecentPlays))
	for _, play := range summary.RecentPlays {
		recent = append(recent, recentPlayResponse{
			ID:       play.ID,
			GameName: play.GameName,
			PlayDate: play.PlayDate,
			Duration: play.Duration,
		})
	}
	return dashboardResponse{
		TotalGames:  summary.TotalGames,
		TotalPlays:  summary.TotalPlays,
		MemberCount: summary.MemberCount,
		RecentPlays: recent,
	}
}
