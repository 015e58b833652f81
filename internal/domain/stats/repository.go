package stats

import "context"

type Repository interface {
	CountGames(ctx context.Context, householdID string) (int64, error)
	CountPlays(ctx context.Context, householdID string) (int64, error)
	CountMembers(ctx context.Context, householdID string) (int64, error)
	ListRecentPlays(ctx context.Context, householdID string, limit int) ([]RecentPlay, error)
}
