package household

import "time"

const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

type Household struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"not null"`
	InviteCode string    `gorm:"size:6;not null;uniqueIndex"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

type Membership struct {
	HouseholdID string    `gorm:"type:uuid;primaryKey"`
	UserID      string    `gorm:"type:uuid;primaryKey;uniqueIndex"`
	Role        string    `gorm:"type:varchar(16);not null"`
	JoinedAt    time.Time `gorm:"autoCreateTime"`
}

func (Membership) TableName() string { return "household_members" }

// MemberProfile is a membership row joined with the user's display
// attributes.
type MemberProfile struct {
	UserID   string
	Name     string
	Email    string
	Role     string
	JoinedAt time.Time
}
