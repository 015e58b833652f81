package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	collectiondomain "game-night-go/internal/domain/collection"
	householddomain "game-night-go/internal/domain/household"
	"game-night-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type createGameRequest struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	MinPlayers      int      `json:"min_players"`
	MaxPlayers      int      `json:"max_players"`
	PlayingTime     *int     `json:"playing_time"`
	Complexity      *float64 `json:"complexity"`
	Year            *int     `json:"year"`
	Designer        *string  `json:"designer"`
	Publisher       *string  `json:"publisher"`
	ImageURL        *string  `json:"image_url"`
	BGGID           *int     `json:"bgg_id"`
	AcquisitionDate *string  `json:"acquisition_date"`
	Price           *float64 `json:"price"`
	Condition       string   `json:"condition"`
	Location        *string  `json:"location"`
	Notes           *string  `json:"notes"`
}

type updateGameRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	MinPlayers      *int     `json:"min_players"`
	MaxPlayers      *int     `json:"max_players"`
	PlayingTime     *int     `json:"playing_time"`
	Complexity      *float64 `json:"complexity"`
	Year            *int     `json:"year"`
	Designer        *string  `json:"designer"`
	Publisher       *string  `json:"publisher"`
	ImageURL        *string  `json:"image_url"`
	BGGID           *int     `json:"bgg_id"`
	AcquisitionDate *string  `json:"acquisition_date"`
	Price           *float64 `json:"price"`
	Condition       *string  `json:"condition"`
	Location        *string  `json:"location"`
	Notes           *string  `json:"notes"`
}

type gameResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     *string    `json:"description"`
	MinPlayers      int        `json:"min_players"`
	MaxPlayers      int        `json:"max_players"`
	PlayingTime     *int       `json:"playing_time"`
	Complexity      *float64   `json:"complexity"`
	Year            *int       `json:"year"`
	Designer        *string    `json:"designer"`
	Publisher       *string    `json:"publisher"`
	ImageURL        *string    `json:"image_url"`
	BGGID           *int       `json:"bgg_id"`
	AcquisitionDate *time.Time `json:"acquisition_date"`
	Price           *float64   `json:"price"`
	Condition       string     `json:"condition"`
	Location        *string    `json:"location"`
	Notes           *string    `json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (h *Handlers) ListGames(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	owned, err := h.Households.GetByUser(r.Context(), user.ID)
	if err != nil {
		// A user without a household has an empty collection, not an
		// error.
		if errors.Is(err, householddomain.ErrHouseholdNotFound) {
			writeJSON(w, http.StatusOK, map[string]any{"games": []gameResponse{}})
			return
		}
		h.log.InternalError("games.list: household lookup failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	games, err := h.Collection.ListGames(r.Context(), owned.ID)
	if err != nil {
		h.log.InternalError("games.list: list failed", err, "household_id", owned.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]gameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, toGameResponse(&game))
	}
	writeJSON(w, http.StatusOK, map[string]any{"games": response})
}

func (h *Handlers) AddGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	acquisitionDate, err := parseOptionalDate(req.AcquisitionDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid acquisition_date")
		return
	}

	// First game with no household: create one for the user before the
	// collection mutation.
	owned, err := h.Households.EnsureHousehold(r.Context(), user.ID, user.Name)
	if err != nil {
		h.log.InternalError("games.add: ensure household failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	game, err := h.Collection.AddGame(r.Context(), owned.ID, collectiondomain.CreateGameInput{
		Name:            req.Name,
		Description:     req.Description,
		MinPlayers:      req.MinPlayers,
		MaxPlayers:      req.MaxPlayers,
		PlayingTime:     req.PlayingTime,
		Complexity:      req.Complexity,
		Year:            req.Year,
		Designer:        req.Designer,
		Publisher:       req.Publisher,
		ImageURL:        req.ImageURL,
		BGGID:           req.BGGID,
		AcquisitionDate: acquisitionDate,
		Price:           req.Price,
		Condition:       req.Condition,
		Location:        req.Location,
		Notes:           req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, collectiondomain.ErrNameRequired),
			errors.Is(err, collectiondomain.ErrPlayersRequired),
			errors.Is(err, collectiondomain.ErrInvalidCondition):
			h.log.BusinessError("games.add: invalid input", err, "household_id", owned.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, collectiondomain.ErrGameExists):
			h.log.BusinessError("games.add: game already exists", err, "household_id", owned.ID)
			writeError(w, http.StatusConflict, "game_exists", "game already in collection")
		default:
			h.log.InternalError("games.add: add failed", err, "household_id", owned.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"game": toGameResponse(game)})
}

func (h *Handlers) UpdateGame(w http.ResponseWriter, r *http.Request) {
	var req updateGameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	gameID := strings.TrimSpace(chi.URLParam(r, "id"))
	if gameID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	acquisitionDate, err := parseOptionalDate(req.AcquisitionDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid acquisition_date")
		return
	}

	owned, err := h.Households.GetByUser(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, householddomain.ErrHouseholdNotFound) {
			writeError(w, http.StatusNotFound, "game_not_found", "game not found")
			return
		}
		h.log.InternalError("games.update: household lookup failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	game, err := h.Collection.UpdateGame(r.Context(), owned.ID, gameID, collectiondomain.UpdateGameInput{
		Name:            req.Name,
		Description:     req.Description,
		MinPlayers:      req.MinPlayers,
		MaxPlayers:      req.MaxPlayers,
		PlayingTime:     req.PlayingTime,
		Complexity:      req.Complexity,
		Year:            req.Year,
		Designer:        req.Designer,
		Publisher:       req.Publisher,
		ImageURL:        req.ImageURL,
		BGGID:           req.BGGID,
		AcquisitionDate: acquisitionDate,
		Price:           req.Price,
		Condition:       req.Condition,
		Location:        req.Location,
		Notes:           req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, collectiondomain.ErrGameNotFound):
			h.log.BusinessError("games.update: game not found", err, "household_id", owned.ID, "game_id", gameID)
			writeError(w, http.StatusNotFound, "game_not_found", "game not found")
		case errors.Is(err, collectiondomain.ErrNameRequired),
			errors.Is(err, collectiondomain.ErrPlayersRequired),
			errors.Is(err, collectiondomain.ErrInvalidCondition):
			h.log.BusinessError("games.update: invalid input", err, "household_id", owned.ID, "game_id", gameID)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("games.update: update failed", err, "household_id", owned.ID, "game_id", gameID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"game": toGameResponse(game)})
}

func (h *Handlers) DeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID := strings.TrimSpace(chi.URLParam(r, "id"))
	if gameID == "" {
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
			writeError(w, http.StatusNotFound, "game_not_found", "game not found")
			return
		}
		h.log.InternalError("games.delete: household lookup failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	if err := h.Collection.DeleteGame(r.Context(), owned.ID, gameID); err != nil {
		if errors.Is(err, collectiondomain.ErrGameNotFound) {
			h.log.BusinessError("games.delete: game not found", err, "household_id", owned.ID, "game_id", gameID)
			writeError(w, http.StatusNotFound, "game_not_found", "game not found")
			return
		}
		h.log.InternalError("games.delete: delete failed", err, "household_id", owned.ID, "game_id", gameID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	return parseDateParam(*value)
}

func toGameResponse(game *collectiondomain.Game) gameResponse {
	return gameResponse{
		ID:              game.ID,
		Name:            game.Name,
		Description:     game.Description,
		MinPlayers:      game.MinPlayers,
		MaxPlayers:      game.MaxPlayers,
		PlayingTime:     game.PlayingTime,
		Complexity:      game.Complexity,
		Year:            game.Year,
		Designer:        game.Designer,
		Publisher:       game.Publisher,
		ImageURL:        game.ImageURL,
		BGGID:           game.BGGID,
		AcquisitionDate: game.AcquisitionDate,
		Price:           game.Price,
		Condition:       game.Condition,
		Location:        game.Location,
		Notes:           game.Notes,
		CreatedAt:       game.CreatedAt,
		UpdatedAt:       game.UpdatedAt,
	}
}
