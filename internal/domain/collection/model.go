package collection

import "time"

const (
	ConditionNew     = "new"
	ConditionLikeNew = "like_new"
	ConditionGood    = "good"
	ConditionFair    = "fair"
	ConditionPoor    = "poor"
)

var validConditions = map[string]struct{}{
	ConditionNew:     {},
	ConditionLikeNew: {},
	ConditionGood:    {},
	ConditionFair:    {},
	ConditionPoor:    {},
}

func IsValidCondition(condition string) bool {
	_, ok := validConditions[condition]
	return ok
}

type Game struct {
	ID              string     `gorm:"type:uuid;primaryKey"`
	HouseholdID     string     `gorm:"type:uuid;not null;index"`
	Name            string     `gorm:"not null"`
	Description     *string    `gorm:""`
	MinPlayers      int        `gorm:"not null"`
	MaxPlayers      int        `gorm:"not null"`
	PlayingTime     *int       `gorm:""`
	Complexity      *float64   `gorm:"type:numeric(3,2)"`
	Year            *int       `gorm:""`
	Designer        *string    `gorm:""`
	Publisher       *string    `gorm:""`
	ImageURL        *string    `gorm:"column:image_url"`
	BGGID           *int       `gorm:"column:bgg_id"`
	AcquisitionDate *time.Time `gorm:""`
	Price           *float64   `gorm:"type:numeric(10,2)"`
	Condition       string     `gorm:"type:varchar(16);not null"`
	Location        *string    `gorm:""`
	Notes           *string    `gorm:""`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`
}

func (Game) TableName() string { return "board_games" }

type CreateGameInput struct {
	Name            string
	Description     *string
	MinPlayers      int
	MaxPlayers      int
	PlayingTime     *int
	Complexity      *float64
	Year            *int
	Designer        *string
	Publisher       *string
	ImageURL        *string
	BGGID           *int
	AcquisitionDate *time.Time
	Price           *float64
	Condition       string
	Location        *string
	Notes           *string
}

// UpdateGameInput is a partial patch; nil fields are left untouched.
type UpdateGameInput struct {
	Name            *string
	Description     *string
	MinPlayers      *int
	MaxPlayers      *int
	PlayingTime     *int
	Complexity      *float64
	Year            *int
	Designer        *string
	Publisher       *string
	ImageURL        *string
	BGGID           *int
	AcquisitionDate *time.Time
	Price           *float64
	Condition       *string
	Location        *string
	Notes           *string
}
