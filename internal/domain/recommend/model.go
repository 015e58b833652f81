package recommend

import "time"

type Recommendation struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	HouseholdID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_household_week"`
	WeekStart      time.Time `gorm:"type:date;not null;uniqueIndex:idx_household_week"`
	Game1ID        string    `gorm:"type:uuid;not null"`
	Game2ID        string    `gorm:"type:uuid;not null"`
	SelectedGameID *string   `gorm:"type:uuid"`
	WasPlayed      bool      `gorm:"not null;default:false"`
	PlayID         *string   `gorm:"type:uuid"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (Recommendation) TableName() string { return "weekly_recommendations" }

// GameSummary carries the display attributes shown for each half of the
// weekly pair.
type GameSummary struct {
	ID          string
	Name        string
	ImageURL    *string
	MinPlayers  int
	MaxPlayers  int
	PlayingTime *int
	Complexity  *float64
}

// View is a recommendation joined with both candidate games.
type View struct {
	ID             string
	WeekStart      time.Time
	SelectedGameID *string
	WasPlayed      bool
	PlayID         *string
	Game1          GameSummary
	Game2          GameSummary
}
