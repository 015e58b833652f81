package collection

import (
	"context"
	"errors"

	collectiondomain "game-night-go/internal/domain/collection"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListGames(ctx context.Context, householdID string) ([]collectiondomain.Game, error) {
	var games []collectiondomain.Game
	if err := r.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("created_at asc, id asc").
		Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *PostgresRepository) GetGame(ctx context.Context, householdID, gameID string) (*collectiondomain.Game, error) {
	var game collectiondomain.Game
	err := r.db.WithContext(ctx).
		Where("id = ? AND household_id = ?", gameID, householdID).
		First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, collectiondomain.ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *PostgresRepository) CreateGame(ctx context.Context, game *collectiondomain.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

func (r *PostgresRepository) UpdateGame(ctx context.Context, game *collectiondomain.Game) error {
	return r.db.WithContext(ctx).Save(game).Error
}

func (r *PostgresRepository) DeleteGame(ctx context.Context, householdID, gameID string) error {
	return r.db.WithContext(ctx).
		Delete(&collectiondomain.Game{}, "id = ? AND household_id = ?", gameID, householdID).Error
}

func (r *PostgresRepository) GameExists(ctx context.Context, householdID, name string, bggID *int) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&collectiondomain.Game{}).
		Where("household_id = ?", householdID)
	if bggID != nil {
		query = query.Where("name = ? OR bgg_id = ?", name, *bggID)
	} else {
		query = query.Where("name = ?", name)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
