package collection

import (
	"context"
	"errors"
	"testing"
)

type fakeCollectionRepo struct {
	games map[string]*Game
}

func newFakeCollectionRepo() *fakeCollectionRepo {
	return &fakeCollectionRepo{games: make(map[string]*Game)}
}

func (r *fakeCollectionRepo) ListGames(ctx context.Context, householdID string) ([]Game, error) {
	result := make([]Game, 0)
	for _, game := range r.games {
		if game.HouseholdID == householdID {
			result = append(result, *game)
		}
	}
	return result, nil
}

func (r *fakeCollectionRepo) GetGame(ctx context.Context, householdID, gameID string) (*Game, error) {
	game, ok := r.games[gameID]
	if !ok || game.HouseholdID != householdID {
		return nil, ErrGameNotFound
	}
	copied := *game
	return &copied, nil
}

func (r *fakeCollectionRepo) CreateGame(ctx context.Context, game *Game) error {
	copied := *game
	r.games[game.ID] = &copied
	return nil
}

func (r *fakeCollectionRepo) UpdateGame(ctx context.Context, game *Game) error {
	if _, ok := r.games[game.ID]; !ok {
		return ErrGameNotFound
	}
	copied := *game
	r.games[game.ID] = &copied
	return nil
}

func (r *fakeCollectionRepo) DeleteGame(ctx context.Context, householdID, gameID string) error {
	game, ok := r.games[gameID]
	if !ok || game.HouseholdID != householdID {
		return ErrGameNotFound
	}
	delete(r.games, gameID)
	return nil
}

func (r *fakeCollectionRepo) GameExists(ctx context.Context, householdID, name string, bggID *int) (bool, error) {
	for _, game := range r.games {
		if game.HouseholdID != householdID {
			continue
		}
		if game.Name == name {
			return true, nil
		}
		if bggID != nil && game.BGGID != nil && *game.BGGID == *bggID {
			return true, nil
		}
	}
	return false, nil
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestAddGameSuccess(t *testing.T) {
	repo := newFakeCollectionRepo()
	svc := NewService(repo, ConditionGood)

	game, err := svc.AddGame(context.Background(), "house-1", CreateGameInput{
		Name:       "  Wingspan  ",
		MinPlayers: 1,
		MaxPlayers: 5,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if game.Name != "Wingspan" {
		t.Fatalf("expected name trimmed, got %q", game.Name)
	}
	if game.Condition != ConditionGood {
		t.Fatalf("expected default condition, got %q", game.Condition)
	}
	if _, ok := repo.games[game.ID]; !ok {
		t.Fatalf("expected game stored")
	}
}

func TestAddGameValidation(t *testing.T) {
	repo := newFakeCollectionRepo()
	svc := NewService(repo, ConditionGood)

	cases := []struct {
		name  string
		input CreateGameInput
		want  error
	}{
		{"blank name", CreateGameInput{Name: "  ", MinPlayers: 2, MaxPlayers: 4}, ErrNameRequired},
		{"zero min players", CreateGameInput{Name: "Azul", MinPlayers: 0, MaxPlayers: 4}, ErrPlayersRequired},
		{"zero max players", CreateGameInput{Name: "Azul", MinPlayers: 2, MaxPlayers: 0}, ErrPlayersRequired},
		{"bad condition", CreateGameInput{Name: "Azul", MinPlayers: 2, MaxPlayers: 4, Condition: "mint"}, ErrInvalidCondition},
	}
	for _, tc := range cases {
		_, err := svc.AddGame(context.Background(), "house-1", tc.input)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestAddGameDuplicateName(t *testing.T) {
	repo := newFakeCollectionRepo()
	repo.games["game-1"] = &Game{ID: "game-1", HouseholdID: "house-1", Name: "Catan", MinPlayers: 3, MaxPlayers: 4, Condition: ConditionGood}

	svc := NewService(repo, ConditionGood)
	_, err := svc.AddGame(context.Background(), "house-1", CreateGameInput{Name: "Catan", MinPlayers: 3, MaxPlayers: 4})
	if !errors.Is(err, ErrGameExists) {
		t.Fatalf("expected ErrGameExists, got %v", err)
	}
}

func TestAddGameDuplicateCatalogID(t *testing.T) {
	repo := newFakeCollectionRepo()
	repo.games["game-1"] = &Game{ID: "game-1", HouseholdID: "house-1", Name: "Catan", BGGID: intPtr(13), MinPlayers: 3, MaxPlayers: 4, Condition: ConditionGood}

	svc := NewService(repo, ConditionGood)
	_, err := svc.AddGame(context.Background(), "house-1", CreateGameInput{
		Name:       "Catan (Anniversary Edition)",
		BGGID:      intPtr(13),
		MinPlayers: 3,
		MaxPlayers: 4,
	})
	if !errors.Is(err, ErrGameExists) {
		t.Fatalf("expected ErrGameExists, got %v", err)
	}
}

func TestAddGameSameNameDifferentHousehold(t *testing.T) {
	repo := newFakeCollectionRepo()
	repo.games["game-1"] = &Game{ID: "game-1", HouseholdID: "house-1", Name: "Catan", MinPlayers: 3, MaxPlayers: 4, Condition: ConditionGood}

	svc := NewService(repo, ConditionGood)
	game, err := svc.AddGame(context.Background(), "house-2", CreateGameInput{Name: "Catan", MinPlayers: 3, MaxPlayers: 4})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if game.HouseholdID != "house-2" {
		t.Fatalf("expected house-2, got %s", game.HouseholdID)
	}
}

func TestUpdateGamePatchSemantics(t *testing.T) {
	repo := newFakeCollectionRepo()
	repo.games["game-1"] = &Game{
		ID:          "game-1",
		HouseholdID: "house-1",
		Name:        "Catan",
		MinPlayers:  3,
		MaxPlayers:  4,
		Location:    strPtr("shelf A"),
		Condition:   ConditionGood,
	}

	svc := NewService(repo, ConditionGood)
	game, err := svc.UpdateGame(context.Background(), "house-1", "game-1", UpdateGameInput{
		MaxPlayers: intPtr(6),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if game.MaxPlayers != 6 {
		t.Fatalf("expected max players updated, got %d", game.MaxPlayers)
	}
	if game.Name != "Catan" {
		t.Fatalf("expected name untouched, got %q", game.Name)
	}
	if game.Location == nil || *game.Location != "shelf A" {
		t.Fatalf("expected location untouched, got %+v", game.Location)
	}
}

func TestUpdateGameInvalidPatch(t *testing.T) {
	repo := newFakeCollectionRepo()
	repo.games["game-1"] = &Game{ID: "game-1", HouseholdID: "house-1", Name: "Catan", MinPlayers: 3, MaxPlayers: 4, Condition: ConditionGood}

	svc := NewService(repo, ConditionGood)
	if _, err := svc.UpdateGame(context.Background(), "house-1", "game-1", UpdateGameInput{Name: strPtr("  ")}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if _, err := svc.UpdateGame(context.Background(), "house-1", "game-1", UpdateGameInput{MinPlayers: intPtr(0)}); !errors.Is(err, ErrPlayersRequired) {
		t.Fatalf("expected ErrPlayersRequired, got %v", err)
	}
	if _, err := svc.UpdateGame(context.Background(), "house-1", "game-1", UpdateGameInput{Condition: strPtr("pristine")}); !errors.Is(err, ErrInvalidCondition) {
		t.Fatalf("expected ErrInvalidCondition, got %v", err)
	}
}

func TestUpdateGameForeignHousehold(t *testing.T) {
	repo := newFakeCollectionRepo()
	repo.games["game-1"] = &Game{ID: "game-1", HouseholdID: "house-1", Name: "Catan", MinPlayers: 3, MaxPlayers: 4, Condition: ConditionGood}

	svc := NewService(repo, ConditionGood)
	_, err := svc.UpdateGame(context.Background(), "house-2", "game-1", UpdateGameInput{Name: strPtr("Hijack")})
	if !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestDeleteGame(t *testing.T) {
	repo := newFakeCollectionRepo()
	repo.games["game-1"] = &Game{ID: "game-1", HouseholdID: "house-1", Name: "Catan", MinPlayers: 3, MaxPlayers: 4, Condition: ConditionGood}

	svc := NewService(repo, ConditionGood)
	if err := svc.DeleteGame(context.Background(), "house-1", "game-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := repo.games["game-1"]; ok {
		t.Fatalf("expected game deleted")
	}
}

func TestDeleteGameNotFound(t *testing.T) {
	repo := newFakeCollectionRepo()
	svc := NewService(repo, ConditionGood)

	if err := svc.DeleteGame(context.Background(), "house-1", "missing"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}
