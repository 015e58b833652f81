package collection

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo             Repository
	defaultCondition string
}

func NewService(repo Repository, defaultCondition string) *Service {
	if !IsValidCondition(defaultCondition) {
		defaultCondition = ConditionGood
	}
	return &Service{repo: repo, defaultCondition: defaultCondition}
}

func (s *Service) ListGames(ctx context.Context, householdID string) ([]Game, error) {
	return s.repo.ListGames(ctx, householdID)
}

func (s *Service) GetGame(ctx context.Context, householdID, gameID string) (*Game, error) {
	return s.repo.GetGame(ctx, householdID, gameID)
}

func (s *Service) AddGame(ctx context.Context, householdID string, input CreateGameInput) (*Game, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if input.MinPlayers <= 0 || input.MaxPlayers <= 0 {
		return nil, ErrPlayersRequired
	}

	condition := input.Condition
	if condition == "" {
		condition = s.defaultCondition
	}
	if !IsValidCondition(condition) {
		return nil, ErrInvalidCondition
	}

	// The duplicate check matches either the name or the catalog id so a
	// second physical copy of the same title is rejected.
	exists, err := s.repo.GameExists(ctx, householdID, name, input.BGGID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrGameExists
	}

	game := Game{
		ID:              uuid.NewString(),
		HouseholdID:     householdID,
		Name:            name,
		Description:     input.Description,
		MinPlayers:      input.MinPlayers,
		MaxPlayers:      input.MaxPlayers,
		PlayingTime:     input.PlayingTime,
		Complexity:      input.Complexity,
		Year:            input.Year,
		Designer:        input.Designer,
		Publisher:       input.Publisher,
		ImageURL:        input.ImageURL,
		BGGID:           input.BGGID,
		AcquisitionDate: input.AcquisitionDate,
		Price:           input.Price,
		Condition:       condition,
		Location:        input.Location,
		Notes:           input.Notes,
	}
	if err := s.repo.CreateGame(ctx, &game); err != nil {
		return nil, err
	}

	return &game, nil
}

func (s *Service) UpdateGame(ctx context.Context, householdID, gameID string, patch UpdateGameInput) (*Game, error) {
	game, err := s.repo.GetGame(ctx, householdID, gameID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		if trimmed == "" {
			return nil, ErrNameRequired
		}
		game.Name = trimmed
	}
	if patch.Description != nil {
		game.Description = patch.Description
	}
	if patch.MinPlayers != nil {
		if *patch.MinPlayers <= 0 {
			return nil, ErrPlayersRequired
		}
		game.MinPlayers = *patch.MinPlayers
	}
	if patch.MaxPlayers != nil {
		if *patch.MaxPlayers <= 0 {
			return nil, ErrPlayersRequired
		}
		game.MaxPlayers = *patch.MaxPlayers
	}
	if patch.PlayingTime != nil {
		game.PlayingTime = patch.PlayingTime
	}
	if patch.Complexity != nil {
		game.Complexity = patch.Complexity
	}
	if patch.Year != nil {
		game.Year = patch.Year
	}
	if patch.Designer != nil {
		game.Designer = patch.Designer
	}
	if patch.Publisher != nil {
		game.Publisher = patch.Publisher
	}
	if patch.ImageURL != nil {
		game.ImageURL = patch.ImageURL
	}
	if patch.BGGID != nil {
		game.BGGID = patch.BGGID
	}
	if patch.AcquisitionDate != nil {
		game.AcquisitionDate = patch.AcquisitionDate
	}
	if patch.Price != nil {
		game.Price = patch.Price
	}
	if patch.Condition != nil {
		if !IsValidCondition(*patch.Condition) {
			return nil, ErrInvalidCondition
		}
		game.Condition = *patch.Condition
	}
	if patch.Location != nil {
		game.Location = patch.Location
	}
	if patch.Notes != nil {
		game.Notes = patch.Notes
	}

	if err := s.repo.UpdateGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// DeleteGame removes the game; plays and participants go with it via the
// storage layer's cascading foreign keys.
func (s *Service) DeleteGame(ctx context.Context, householdID, gameID string) error {
	if _, err := s.repo.GetGame(ctx, householdID, gameID); err != nil {
		return err
	}
	return s.repo.DeleteGame(ctx, householdID, gameID)
}
