package household

import (
	"context"
	"errors"
	"time"

	householddomain "game-night-go/internal/domain/household"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(householddomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetByUser(ctx context.Context, userID string) (*householddomain.Household, error) {
	var result householddomain.Household
	err := r.db.WithContext(ctx).
		Table("households").
		Joins("join household_members on household_members.household_id = households.id").
		Where("household_members.user_id = ?", userID).
		Limit(1).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, householddomain.ErrHouseholdNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *PostgresRepository) GetByInviteCode(ctx context.Context, code string) (*householddomain.Household, error) {
	var result householddomain.Household
	if err := r.db.WithContext(ctx).Where("invite_code = ?", code).First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, householddomain.ErrInviteCodeNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *PostgresRepository) GetMembershipByUser(ctx context.Context, userID string) (*householddomain.Membership, error) {
	var member householddomain.Membership
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, householddomain.ErrHouseholdNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *PostgresRepository) ListMembers(ctx context.Context, householdID string) ([]householddomain.MemberProfile, error) {
	type memberRow struct {
		UserID   string    `gorm:"column:user_id"`
		Name     string    `gorm:"column:name"`
		Email    string    `gorm:"column:email"`
		Role     string    `gorm:"column:role"`
		JoinedAt time.Time `gorm:"column:joined_at"`
	}

	var rows []memberRow
	if err := r.db.WithContext(ctx).
		Table("household_members").
		Select("household_members.user_id, users.name, users.email, household_members.role, household_members.joined_at").
		Joins("join users on users.id = household_members.user_id").
		Where("household_members.household_id = ?", householdID).
		Order("household_members.joined_at asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	members := make([]householddomain.MemberProfile, 0, len(rows))
	for _, row := range rows {
		members = append(members, householddomain.MemberProfile{
			UserID:   row.UserID,
			Name:     row.Name,
			Email:    row.Email,
			Role:     row.Role,
			JoinedAt: row.JoinedAt,
		})
	}
	return members, nil
}

func (r *PostgresRepository) CreateHousehold(ctx context.Context, h *householddomain.Household) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *PostgresRepository) AddMember(ctx context.Context, m *householddomain.Membership) error {
	err := r.db.WithContext(ctx).Create(m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return householddomain.ErrAlreadyInHousehold
	}
	return err
}

func (r *PostgresRepository) IsUserInHousehold(ctx context.Context, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&householddomain.Membership{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) IsInviteCodeTaken(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&householddomain.Household{}).Where("invite_code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
