package stats

import (
	"context"
	"time"

	statsdomain "game-night-go/internal/domain/stats"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountGames(ctx context.Context, householdID string) (int64, error) {
	return r.count(ctx, "board_games", householdID)
}

func (r *PostgresRepository) CountPlays(ctx context.Context, householdID string) (int64, error) {
	return r.count(ctx, "game_plays", householdID)
}

func (r *PostgresRepository) CountMembers(ctx context.Context, householdID string) (int64, error) {
	return r.count(ctx, "household_members", householdID)
}

func (r *PostgresRepository) ListRecentPlays(ctx context.Context, householdID string, limit int) ([]statsdomain.RecentPlay, error) {
	type recentRow struct {
		ID       string    `gorm:"column:id"`
		GameName string    `gorm:"column:game_name"`
		PlayDate time.Time `gorm:"column:play_date"`
		Duration *int      `gorm:"column:duration"`
	}

	var rows []recentRow
	if err := r.db.WithContext(ctx).
		Table("game_plays").
		Select("game_plays.id, board_games.name as game_name, game_plays.play_date, game_plays.duration").
		Joins("left join board_games on board_games.id = game_plays.game_id").
		Where("game_plays.household_id = ?", householdID).
		Order("game_plays.play_date desc").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	recent := make([]statsdomain.RecentPlay, 0, len(rows))
	for _, row := range rows {
		recent = append(recent, statsdomain.RecentPlay{
			ID:       row.ID,
			GameName: row.GameName,
			PlayDate: row.PlayDate,
			Duration: row.Duration,
		})
	}
	return recent, nil
}

func (r *PostgresRepository) count(ctx context.Context, table, householdID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table(table).
		Where("household_id = ?", householdID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
