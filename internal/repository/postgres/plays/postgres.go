package plays

import (
	"context"
	"errors"

	playsdomain "game-night-go/internal/domain/plays"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(playsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetPlay(ctx context.Context, householdID, playID string) (*playsdomain.Play, error) {
	var play playsdomain.Play
	err := r.db.WithContext(ctx).
		Where("id = ? AND household_id = ?", playID, householdID).
		First(&play).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, playsdomain.ErrPlayNotFound
	}
	if err != nil {
		return nil, err
	}
	return &play, nil
}

func (r *PostgresRepository) ListPlays(ctx context.Context, householdID string) ([]playsdomain.PlayWithGame, error) {
	type playRow struct {
		playsdomain.Play
		GameName  string  `gorm:"column:game_name"`
		GameImage *string `gorm:"column:game_image"`
	}

	var rows []playRow
	if err := r.db.WithContext(ctx).
		Table("game_plays").
		Select("game_plays.*, board_games.name as game_name, board_games.image_url as game_image").
		Joins("left join board_games on board_games.id = game_plays.game_id").
		Where("game_plays.household_id = ?", householdID).
		Order("game_plays.play_date desc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]playsdomain.PlayWithGame, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, playsdomain.PlayWithGame{
			Play:      row.Play,
			GameName:  row.GameName,
			GameImage: row.GameImage,
		})
	}
	return entries, nil
}

func (r *PostgresRepository) ListParticipants(ctx context.Context, playIDs []string) ([]playsdomain.Participant, error) {
	var participants []playsdomain.Participant
	if err := r.db.WithContext(ctx).
		Where("play_id IN ?", playIDs).
		Order("position asc nulls last, player_name asc").
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *PostgresRepository) CreatePlay(ctx context.Context, play *playsdomain.Play) error {
	return r.db.WithContext(ctx).Create(play).Error
}

func (r *PostgresRepository) UpdatePlay(ctx context.Context, play *playsdomain.Play) error {
	return r.db.WithContext(ctx).Save(play).Error
}

func (r *PostgresRepository) DeletePlay(ctx context.Context, playID string) error {
	return r.db.WithContext(ctx).Delete(&playsdomain.Play{}, "id = ?", playID).Error
}

func (r *PostgresRepository) CreateParticipants(ctx context.Context, participants []playsdomain.Participant) error {
	if len(participants) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&participants).Error
}

func (r *PostgresRepository) DeleteParticipantsByPlay(ctx context.Context, playID string) error {
	return r.db.WithContext(ctx).Where("play_id = ?", playID).Delete(&playsdomain.Participant{}).Error
}

func (r *PostgresRepository) GameInHousehold(ctx context.Context, householdID, gameID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("board_games").
		Where("id = ? AND household_id = ?", gameID, householdID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
