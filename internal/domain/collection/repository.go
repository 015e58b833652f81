package collection

import "context"

type Repository interface {
	ListGames(ctx context.Context, householdID string) ([]Game, error)
	GetGame(ctx context.Context, householdID, gameID string) (*Game, error)
	CreateGame(ctx context.Context, game *Game) error
	UpdateGame(ctx context.Context, game *Game) error
	DeleteGame(ctx context.Context, householdID, gameID string) error
	// GameExists reports whether the household already owns a game with
	// the given name or, when bggID is non-nil, the given catalog id.
	GameExists(ctx context.Context, householdID, name string, bggID *int) (bool, error)
}
