package plays

import "time"

type Play struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	GameID      string    `gorm:"type:uuid;not null;index"`
	HouseholdID string    `gorm:"type:uuid;not null;index"`
	PlayDate    time.Time `gorm:"not null"`
	Duration    *int      `gorm:""`
	Notes       *string   `gorm:""`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Play) TableName() string { return "game_plays" }

type Participant struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	PlayID     string `gorm:"type:uuid;not null;index"`
	PlayerName string `gorm:"not null"`
	Score      *int   `gorm:""`
	Position   *int   `gorm:""`
	IsWinner   bool   `gorm:"not null;default:false"`
}

func (Participant) TableName() string { return "game_play_participants" }

type ParticipantInput struct {
	Name     string
	Score    *int
	Position *int
	IsWinner bool
}

type CreatePlayInput struct {
	GameID       string
	PlayDate     time.Time
	Duration     *int
	Notes        *string
	Participants []ParticipantInput
}

// UpdatePlayInput replaces date/duration/notes unconditionally and the
// participant set wholesale; there are no partial-field semantics here.
type UpdatePlayInput struct {
	PlayDate     time.Time
	Duration     *int
	Notes        *string
	Participants []ParticipantInput
}

// PlayWithGame is a ledger row annotated with the game's display
// attributes and its full participant list.
type PlayWithGame struct {
	Play
	GameName         string
	GameImage        *string
	Participants     []Participant
	ParticipantCount int
}
