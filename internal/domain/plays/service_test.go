package plays

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakePlaysRepo struct {
	plays        map[string]*Play
	participants map[string][]Participant
	games        map[string]string // game id -> household id
}

func newFakePlaysRepo() *fakePlaysRepo {
	return &fakePlaysRepo{
		plays:        make(map[string]*Play),
		participants: make(map[string][]Participant),
		games:        make(map[string]string),
	}
}

func (r *fakePlaysRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakePlaysRepo) GetPlay(ctx context.Context, householdID, playID string) (*Play, error) {
	play, ok := r.plays[playID]
	if !ok || play.HouseholdID != householdID {
		return nil, ErrPlayNotFound
	}
	copied := *play
	return &copied, nil
}

func (r *fakePlaysRepo) ListPlays(ctx context.Context, householdID string) ([]PlayWithGame, error) {
	result := make([]PlayWithGame, 0)
	for _, play := range r.plays {
		if play.HouseholdID == householdID {
			result = append(result, PlayWithGame{Play: *play, GameName: "Game " + play.GameID})
		}
	}
	return result, nil
}

func (r *fakePlaysRepo) ListParticipants(ctx context.Context, playIDs []string) ([]Participant, error) {
	var result []Participant
	for _, playID := range playIDs {
		result = append(result, r.participants[playID]...)
	}
	return result, nil
}

func (r *fakePlaysRepo) CreatePlay(ctx context.Context, play *Play) error {
	copied := *play
	r.plays[play.ID] = &copied
	return nil
}

func (r *fakePlaysRepo) UpdatePlay(ctx context.Context, play *Play) error {
	if _, ok := r.plays[play.ID]; !ok {
		return ErrPlayNotFound
	}
	copied := *play
	r.plays[play.ID] = &copied
	return nil
}

func (r *fakePlaysRepo) DeletePlay(ctx context.Context, playID string) error {
	delete(r.plays, playID)
	return nil
}

func (r *fakePlaysRepo) CreateParticipants(ctx context.Context, participants []Participant) error {
	for _, participant := range participants {
		r.participants[participant.PlayID] = append(r.participants[participant.PlayID], participant)
	}
	return nil
}

func (r *fakePlaysRepo) DeleteParticipantsByPlay(ctx context.Context, playID string) error {
	delete(r.participants, playID)
	return nil
}

func (r *fakePlaysRepo) GameInHousehold(ctx context.Context, householdID, gameID string) (bool, error) {
	owner, ok := r.games[gameID]
	return ok && owner == householdID, nil
}

var playDate = time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)

func TestCreatePlaySuccess(t *testing.T) {
	repo := newFakePlaysRepo()
	repo.games["game-1"] = "house-1"

	svc := NewService(repo)
	duration := 45
	play, err := svc.CreatePlay(context.Background(), "house-1", CreatePlayInput{
		GameID:   "game-1",
		PlayDate: playDate,
		Duration: &duration,
		Participants: []ParticipantInput{
			{Name: "  Alice ", Score: intPtr(52), IsWinner: true},
			{Name: "Bob", Score: intPtr(40)},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if play.Duration == nil || *play.Duration != 45 {
		t.Fatalf("expected duration 45, got %+v", play.Duration)
	}
	stored := repo.participants[play.ID]
	if len(stored) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(stored))
	}
	if stored[0].PlayerName != "Alice" {
		t.Fatalf("expected participant name trimmed, got %q", stored[0].PlayerName)
	}
	if !stored[0].IsWinner || stored[1].IsWinner {
		t.Fatalf("expected only Alice flagged winner")
	}
}

func TestCreatePlayValidation(t *testing.T) {
	repo := newFakePlaysRepo()
	repo.games["game-1"] = "house-1"
	svc := NewService(repo)

	if _, err := svc.CreatePlay(context.Background(), "house-1", CreatePlayInput{PlayDate: playDate}); !errors.Is(err, ErrGameRequired) {
		t.Fatalf("expected ErrGameRequired, got %v", err)
	}
	if _, err := svc.CreatePlay(context.Background(), "house-1", CreatePlayInput{GameID: "game-1"}); !errors.Is(err, ErrPlayDateRequired) {
		t.Fatalf("expected ErrPlayDateRequired, got %v", err)
	}
	_, err := svc.CreatePlay(context.Background(), "house-1", CreatePlayInput{
		GameID:       "game-1",
		PlayDate:     playDate,
		Participants: []ParticipantInput{{Name: "   "}},
	})
	if !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestCreatePlayForeignGame(t *testing.T) {
	repo := newFakePlaysRepo()
	repo.games["game-1"] = "house-2"

	svc := NewService(repo)
	_, err := svc.CreatePlay(context.Background(), "house-1", CreatePlayInput{GameID: "game-1", PlayDate: playDate})
	if !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestUpdatePlayReplacesParticipants(t *testing.T) {
	repo := newFakePlaysRepo()
	repo.games["game-1"] = "house-1"
	duration := 45
	repo.plays["play-1"] = &Play{
		ID:          "play-1",
		GameID:      "game-1",
		HouseholdID: "house-1",
		PlayDate:    playDate,
		Duration:    &duration,
	}
	repo.participants["play-1"] = []Participant{
		{ID: "p-1", PlayID: "play-1", PlayerName: "Alice"},
		{ID: "p-2", PlayID: "play-1", PlayerName: "Bob"},
	}

	svc := NewService(repo)
	newDuration := 90
	play, err := svc.UpdatePlay(context.Background(), "house-1", "play-1", UpdatePlayInput{
		PlayDate: playDate.AddDate(0, 0, 1),
		Duration: &newDuration,
		Participants: []ParticipantInput{
			{Name: "Alice", IsWinner: true},
			{Name: "Bob"},
			{Name: "Carol"},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if play.Duration == nil || *play.Duration != 90 {
		t.Fatalf("expected duration 90, got %+v", play.Duration)
	}
	stored := repo.participants["play-1"]
	if len(stored) != 3 {
		t.Fatalf("expected participant set replaced with 3, got %d", len(stored))
	}
	for _, participant := range stored {
		if participant.ID == "p-1" || participant.ID == "p-2" {
			t.Fatalf("expected old participant rows gone, found %s", participant.ID)
		}
	}
}

func TestUpdatePlayEmptyParticipants(t *testing.T) {
	repo := newFakePlaysRepo()
	repo.plays["play-1"] = &Play{ID: "play-1", GameID: "game-1", HouseholdID: "house-1", PlayDate: playDate}
	repo.participants["play-1"] = []Participant{{ID: "p-1", PlayID: "play-1", PlayerName: "Alice"}}

	svc := NewService(repo)
	_, err := svc.UpdatePlay(context.Background(), "house-1", "play-1", UpdatePlayInput{PlayDate: playDate})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(repo.participants["play-1"]) != 0 {
		t.Fatalf("expected zero participants, got %d", len(repo.participants["play-1"]))
	}
}

func TestUpdatePlayForeignHousehold(t *testing.T) {
	repo := newFakePlaysRepo()
	repo.plays["play-1"] = &Play{ID: "play-1", GameID: "game-1", HouseholdID: "house-1", PlayDate: playDate}

	svc := NewService(repo)
	_, err := svc.UpdatePlay(context.Background(), "house-2", "play-1", UpdatePlayInput{PlayDate: playDate})
	if !errors.Is(err, ErrPlayNotFound) {
		t.Fatalf("expected ErrPlayNotFound, got %v", err)
	}
}

func TestDeletePlay(t *testing.T) {
	repo := newFakePlaysRepo()
	repo.plays["play-1"] = &Play{ID: "play-1", GameID: "game-1", HouseholdID: "house-1", PlayDate: playDate}
	repo.participants["play-1"] = []Participant{{ID: "p-1", PlayID: "play-1", PlayerName: "Alice"}}

	svc := NewService(repo)
	if err := svc.DeletePlay(context.Background(), "house-1", "play-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := repo.plays["play-1"]; ok {
		t.Fatalf("expected play deleted")
	}
	if len(repo.participants["play-1"]) != 0 {
		t.Fatalf("expected participants deleted")
	}
}

func TestListPlaysAnnotatesParticipants(t *testing.T) {
	repo := newFakePlaysRepo()
	repo.plays["play-1"] = &Play{ID: "play-1", GameID: "game-1", HouseholdID: "house-1", PlayDate: playDate}
	repo.plays["play-2"] = &Play{ID: "play-2", GameID: "game-2", HouseholdID: "house-1", PlayDate: playDate}
	repo.participants["play-1"] = []Participant{
		{ID: "p-1", PlayID: "play-1", PlayerName: "Alice"},
		{ID: "p-2", PlayID: "play-1", PlayerName: "Bob"},
	}

	svc := NewService(repo)
	entries, err := svc.ListPlays(context.Background(), "house-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, entry := range entries {
		switch entry.ID {
		case "play-1":
			if entry.ParticipantCount != 2 {
				t.Fatalf("expected 2 participants, got %d", entry.ParticipantCount)
			}
		case "play-2":
			if entry.ParticipantCount != 0 || entry.Participants == nil {
				t.Fatalf("expected empty participant list, got %+v", entry.Participants)
			}
		}
	}
}

func intPtr(v int) *int { return &v }
