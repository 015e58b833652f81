package recommend

import (
	"context"
	"errors"
	"time"

	recommenddomain "game-night-go/internal/domain/recommend"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByWeek(ctx context.Context, householdID string, weekStart time.Time) (*recommenddomain.Recommendation, error) {
	var rec recommenddomain.Recommendation
	err := r.db.WithContext(ctx).
		Where("household_id = ? AND week_start = ?", householdID, weekStart).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, recommenddomain.ErrRecommendationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *PostgresRepository) GetViewByWeek(ctx context.Context, householdID string, weekStart time.Time) (*recommenddomain.View, error) {
	type viewRow struct {
		ID             string
		WeekStart      time.Time
		SelectedGameID *string
		WasPlayed      bool
		PlayID         *string
		G1ID           string
		G1Name         string
		G1Image        *string
		G1MinPlayers   int
		G1MaxPlayers   int
		G1PlayingTime  *int
		G1Complexity   *float64
		G2ID           string
		G2Name         string
		G2Image        *string
		G2MinPlayers   int
		G2MaxPlayers   int
		G2PlayingTime  *int
		G2Complexity   *float64
	}

	var row viewRow
	err := r.db.WithContext(ctx).
		Table("weekly_recommendations").
		Select(`weekly_recommendations.id,
			weekly_recommendations.week_start,
			weekly_recommendations.selected_game_id,
			weekly_recommendations.was_played,
			weekly_recommendations.play_id,
			g1.id as g1_id, g1.name as g1_name, g1.image_url as g1_image,
			g1.min_players as g1_min_players, g1.max_players as g1_max_players,
			g1.playing_time as g1_playing_time, g1.complexity as g1_complexity,
			g2.id as g2_id, g2.name as g2_name, g2.image_url as g2_image,
			g2.min_players as g2_min_players, g2.max_players as g2_max_players,
			g2.playing_time as g2_playing_time, g2.complexity as g2_complexity`).
		Joins("join board_games g1 on g1.id = weekly_recommendations.game1_id").
		Joins("join board_games g2 on g2.id = weekly_recommendations.game2_id").
		Where("weekly_recommendations.household_id = ? AND weekly_recommendations.week_start = ?", householdID, weekStart).
		Limit(1).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, recommenddomain.ErrRecommendationNotFound
	}
	if err != nil {
		return nil, err
	}

	return &recommenddomain.View{
		ID:             row.ID,
		WeekStart:      row.WeekStart,
		SelectedGameID: row.SelectedGameID,
		WasPlayed:      row.WasPlayed,
		PlayID:         row.PlayID,
		Game1: recommenddomain.GameSummary{
			ID:          row.G1ID,
			Name:        row.G1Name,
			ImageURL:    row.G1Image,
			MinPlayers:  row.G1MinPlayers,
			MaxPlayers:  row.G1MaxPlayers,
			PlayingTime: row.G1PlayingTime,
			Complexity:  row.G1Complexity,
		},
		Game2: recommenddomain.GameSummary{
			ID:          row.G2ID,
			Name:        row.G2Name,
			ImageURL:    row.G2Image,
			MinPlayers:  row.G2MinPlayers,
			MaxPlayers:  row.G2MaxPlayers,
			PlayingTime: row.G2PlayingTime,
			Complexity:  row.G2Complexity,
		},
	}, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, householdID, recommendationID string) (*recommenddomain.Recommendation, error) {
	var rec recommenddomain.Recommendation
	err := r.db.WithContext(ctx).
		Where("id = ? AND household_id = ?", recommendationID, householdID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, recommenddomain.ErrRecommendationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *PostgresRepository) Create(ctx context.Context, rec *recommenddomain.Recommendation) error {
	err := r.db.WithContext(ctx).Create(rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return recommenddomain.ErrDuplicateWeek
	}
	return err
}

func (r *PostgresRepository) SetSelectedGame(ctx context.Context, recommendationID, gameID string) error {
	return r.db.WithContext(ctx).
		Model(&recommenddomain.Recommendation{}).
		Where("id = ?", recommendationID).
		Update("selected_game_id", gameID).Error
}

func (r *PostgresRepository) MarkPlayed(ctx context.Context, recommendationID, playID string) error {
	return r.db.WithContext(ctx).
		Model(&recommenddomain.Recommendation{}).
		Where("id = ?", recommendationID).
		Updates(map[string]any{"was_played": true, "play_id": playID}).Error
}

func (r *PostgresRepository) ListGameIDs(ctx context.Context, householdID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Table("board_games").
		Where("household_id = ?", householdID).
		Order("created_at asc, id asc").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) ListRecentlyPlayedGameIDs(ctx context.Context, householdID string, since time.Time) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Table("game_plays").
		Distinct("game_id").
		Where("household_id = ? AND play_date >= ?", householdID, since).
		Pluck("game_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) PlayInHousehold(ctx context.Context, householdID, playID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("game_plays").
		Where("id = ? AND household_id = ?", playID, householdID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
