package recommend

import (
	"context"
	"time"
)

type Repository interface {
	GetByWeek(ctx context.Context, householdID string, weekStart time.Time) (*Recommendation, error)
	GetViewByWeek(ctx context.Context, householdID string, weekStart time.Time) (*View, error)
	GetByID(ctx context.Context, householdID, recommendationID string) (*Recommendation, error)
	// Create returns ErrDuplicateWeek when the (household, week) row
	// already exists.
	Create(ctx context.Context, rec *Recommendation) error
	SetSelectedGame(ctx context.Context, recommendationID, gameID string) error
	MarkPlayed(ctx context.Context, recommendationID, playID string) error
	ListGameIDs(ctx context.Context, householdID string) ([]string, error)
	// ListRecentlyPlayedGameIDs returns distinct game ids with a play on
	// or after since.
	ListRecentlyPlayedGameIDs(ctx context.Context, householdID string, since time.Time) ([]string, error)
	PlayInHousehold(ctx context.Context, householdID, playID string) (bool, error)
}
