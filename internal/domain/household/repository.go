package household

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetByUser(ctx context.Context, userID string) (*Household, error)
	GetByInviteCode(ctx context.Context, code string) (*Household, error)
	GetMembershipByUser(ctx context.Context, userID string) (*Membership, error)
	ListMembers(ctx context.Context, householdID string) ([]MemberProfile, error)
	CreateHousehold(ctx context.Context, h *Household) error
	AddMember(ctx context.Context, m *Membership) error
	IsUserInHousehold(ctx context.Context, userID string) (bool, error)
	IsInviteCodeTaken(ctx context.Context, code string) (bool, error)
}
