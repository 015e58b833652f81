package plays

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetPlay(ctx context.Context, householdID, playID string) (*Play, error)
	ListPlays(ctx context.Context, householdID string) ([]PlayWithGame, error)
	ListParticipants(ctx context.Context, playIDs []string) ([]Participant, error)
	CreatePlay(ctx context.Context, play *Play) error
	UpdatePlay(ctx context.Context, play *Play) error
	DeletePlay(ctx context.Context, playID string) error
	CreateParticipants(ctx context.Context, participants []Participant) error
	DeleteParticipantsByPlay(ctx context.Context, playID string) error
	// GameInHousehold reports whether the game exists and belongs to the
	// household.
	GameInHousehold(ctx context.Context, householdID, gameID string) (bool, error)
}
