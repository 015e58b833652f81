package plays

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreatePlay records a play and its participants. The game must belong
// to the caller's household; a foreign game reads as not found.
func (s *Service) CreatePlay(ctx context.Context, householdID string, input CreatePlayInput) (*Play, error) {
	if strings.TrimSpace(input.GameID) == "" {
		return nil, ErrGameRequired
	}
	if input.PlayDate.IsZero() {
		return nil, ErrPlayDateRequired
	}

	owned, err := s.repo.GameInHousehold(ctx, householdID, input.GameID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrGameNotFound
	}

	participants, err := buildParticipants("", input.Participants)
	if err != nil {
		return nil, err
	}

	play := Play{
		ID:          uuid.NewString(),
		GameID:      input.GameID,
		HouseholdID: householdID,
		PlayDate:    input.PlayDate,
		Duration:    input.Duration,
		Notes:       input.Notes,
	}
	for i := range participants {
		participants[i].PlayID = play.ID
	}

	// Participants are inserted only after the play row exists; the
	// transaction keeps a failed insert from stranding either side.
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.CreatePlay(ctx, &play); err != nil {
			return err
		}
		if len(participants) == 0 {
			return nil
		}
		return tx.CreateParticipants(ctx, participants)
	})
	if err != nil {
		return nil, err
	}

	return &play, nil
}

// UpdatePlay overwrites date/duration/notes and replaces the entire
// participant set; an empty list leaves the play with zero participants.
func (s *Service) UpdatePlay(ctx context.Context, householdID, playID string, input UpdatePlayInput) (*Play, error) {
	if input.PlayDate.IsZero() {
		return nil, ErrPlayDateRequired
	}

	participants, err := buildParticipants(playID, input.Participants)
	if err != nil {
		return nil, err
	}

	var result Play
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		play, err := tx.GetPlay(ctx, householdID, playID)
		if err != nil {
			return err
		}

		play.PlayDate = input.PlayDate
		play.Duration = input.Duration
		play.Notes = input.Notes
		if err := tx.UpdatePlay(ctx, play); err != nil {
			return err
		}

		if err := tx.DeleteParticipantsByPlay(ctx, play.ID); err != nil {
			return err
		}
		if len(participants) > 0 {
			if err := tx.CreateParticipants(ctx, participants); err != nil {
				return err
			}
		}

		result = *play
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Service) DeletePlay(ctx context.Context, householdID, playID string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		play, err := tx.GetPlay(ctx, householdID, playID)
		if err != nil {
			return err
		}
		// Participants go first so the play delete cannot orphan them.
		if err := tx.DeleteParticipantsByPlay(ctx, play.ID); err != nil {
			return err
		}
		return tx.DeletePlay(ctx, play.ID)
	})
}

// ListPlays returns the household ledger ordered by play date
// descending, each entry annotated with game attributes and its full
// participant list.
func (s *Service) ListPlays(ctx context.Context, householdID string) ([]PlayWithGame, error) {
	entries, err := s.repo.ListPlays(ctx, householdID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []PlayWithGame{}, nil
	}

	playIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		playIDs = append(playIDs, entry.ID)
	}

	participants, err := s.repo.ListParticipants(ctx, playIDs)
	if err != nil {
		return nil, err
	}

	byPlay := make(map[string][]Participant, len(entries))
	for _, participant := range participants {
		byPlay[participant.PlayID] = append(byPlay[participant.PlayID], participant)
	}

	for i := range entries {
		list := byPlay[entries[i].ID]
		if list == nil {
			list = []Participant{}
		}
		entries[i].Participants = list
		entries[i].ParticipantCount = len(list)
	}

	return entries, nil
}

func buildParticipants(playID string, inputs []ParticipantInput) ([]Participant, error) {
	participants := make([]Participant, 0, len(inputs))
	for _, input := range inputs {
		name := strings.TrimSpace(input.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		participants = append(participants, Participant{
			ID:         uuid.NewString(),
			PlayID:     playID,
			PlayerName: name,
			Score:      input.Score,
			Position:   input.Position,
			IsWinner:   input.IsWinner,
		})
	}
	return participants, nil
}
