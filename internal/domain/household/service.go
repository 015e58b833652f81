package household

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	inviteCodeLength   = 6
	inviteCodeAttempts = 10
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByUser(ctx context.Context, userID string) (*Household, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *Service) GetMembershipByUser(ctx context.Context, userID string) (*Membership, error) {
	return s.repo.GetMembershipByUser(ctx, userID)
}

// CreateHousehold inserts the household and the owner membership as one
// transaction; a failed membership insert rolls back the household.
func (s *Service) CreateHousehold(ctx context.Context, userID, name string) (*Household, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	var result Household
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		created, err := createWithOwner(ctx, tx, userID, name)
		if err != nil {
			return err
		}
		result = *created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// JoinHousehold adds the user as a member of the household matching the
// invite code. A user with any existing membership is rejected, even for
// a different household.
func (s *Service) JoinHousehold(ctx context.Context, userID, code string) (*Household, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrInviteCodeNotFound
	}

	var result Household
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		inHousehold, err := tx.IsUserInHousehold(ctx, userID)
		if err != nil {
			return err
		}
		if inHousehold {
			return ErrAlreadyInHousehold
		}

		found, err := tx.GetByInviteCode(ctx, code)
		if err != nil {
			return err
		}

		member := Membership{
			HouseholdID: found.ID,
			UserID:      userID,
			Role:        RoleMember,
		}
		if err := tx.AddMember(ctx, &member); err != nil {
			return err
		}

		result = *found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// EnsureHousehold returns the caller's household, creating
// "<displayName>'s Collection" with the caller as owner when none
// exists. The orchestrating layer calls this before collection
// mutations; collection code itself never touches membership.
func (s *Service) EnsureHousehold(ctx context.Context, userID, displayName string) (*Household, error) {
	existing, err := s.repo.GetByUser(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrHouseholdNotFound) {
		return nil, err
	}

	name := "My Collection"
	if displayName = strings.TrimSpace(displayName); displayName != "" {
		name = displayName + "'s Collection"
	}

	var result Household
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		created, err := createWithOwner(ctx, tx, userID, name)
		if err != nil {
			return err
		}
		result = *created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Service) ListMembers(ctx context.Context, userID string) ([]MemberProfile, error) {
	found, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListMembers(ctx, found.ID)
}

func createWithOwner(ctx context.Context, tx Repository, userID, name string) (*Household, error) {
	inHousehold, err := tx.IsUserInHousehold(ctx, userID)
	if err != nil {
		return nil, err
	}
	if inHousehold {
		return nil, ErrAlreadyInHousehold
	}

	code, err := generateUniqueInviteCode(ctx, tx)
	if err != nil {
		return nil, err
	}

	created := Household{
		ID:         uuid.NewString(),
		Name:       name,
		InviteCode: code,
	}
	if err := tx.CreateHousehold(ctx, &created); err != nil {
		return nil, err
	}

	owner := Membership{
		HouseholdID: created.ID,
		UserID:      userID,
		Role:        RoleOwner,
	}
	if err := tx.AddMember(ctx, &owner); err != nil {
		return nil, err
	}

	return &created, nil
}

func generateUniqueInviteCode(ctx context.Context, repo Repository) (string, error) {
	for i := 0; i < inviteCodeAttempts; i++ {
		code, err := generateInviteCode(inviteCodeLength)
		if err != nil {
			return "", err
		}
		taken, err := repo.IsInviteCodeTaken(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrCodeGenerationFailed
}

func generateInviteCode(length int) (string, error) {
	// Ambiguous characters (0/O, 1/I) are excluded since codes are
	// shared verbally.
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	max := big.NewInt(int64(len(alphabet)))

	var builder strings.Builder
	builder.Grow(length)

	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		builder.WriteByte(alphabet[n.Int64()])
	}

	return builder.String(), nil
}
