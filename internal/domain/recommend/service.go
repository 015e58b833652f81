package recommend

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const pairSize = 2

type Service struct {
	repo          Repository
	recencyWindow time.Duration
	now           func() time.Time
	shuffle       func(n int, swap func(i, j int))
}

// NewService builds the selector. recencyWindow is how far back a play
// keeps a game out of the candidate pool (28 days in production). The
// clock and shuffle are swappable for tests; pass nil for the defaults.
func NewService(repo Repository, recencyWindow time.Duration, now func() time.Time, shuffle func(n int, swap func(i, j int))) *Service {
	if now == nil {
		now = time.Now
	}
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	return &Service{
		repo:          repo,
		recencyWindow: recencyWindow,
		now:           now,
		shuffle:       shuffle,
	}
}

// WeekStart normalizes t to the Monday of its ISO week, at midnight UTC.
// This date is half of the idempotency key for weekly generation.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// Generate picks this week's pair for the household. Calling it again in
// the same week returns the stored row unchanged; the first call rolls
// two distinct games, preferring ones not played in the recency window.
func (s *Service) Generate(ctx context.Context, householdID string) (*Recommendation, error) {
	now := s.now()
	weekStart := WeekStart(now)

	existing, err := s.repo.GetByWeek(ctx, householdID, weekStart)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrRecommendationNotFound) {
		return nil, err
	}

	gameIDs, err := s.repo.ListGameIDs(ctx, householdID)
	if err != nil {
		return nil, err
	}
	if len(gameIDs) < pairSize {
		return nil, ErrNotEnoughGames
	}

	recent, err := s.repo.ListRecentlyPlayedGameIDs(ctx, householdID, now.Add(-s.recencyWindow))
	if err != nil {
		return nil, err
	}

	candidates := excludeRecent(gameIDs, recent)
	// The recency filter is best-effort: if it starves the pool, fall
	// back to the full collection rather than failing.
	if len(candidates) < pairSize {
		candidates = gameIDs
	}

	first, second := s.pickPair(candidates)

	rec := Recommendation{
		ID:          uuid.NewString(),
		HouseholdID: householdID,
		WeekStart:   weekStart,
		Game1ID:     first,
		Game2ID:     second,
	}
	if err := s.repo.Create(ctx, &rec); err != nil {
		// A concurrent caller won the insert; their row is this week's
		// answer.
		if errors.Is(err, ErrDuplicateWeek) {
			return s.repo.GetByWeek(ctx, householdID, weekStart)
		}
		return nil, err
	}

	return &rec, nil
}

// SelectGame records which of the pair the household chose. The game
// must be one of the two rolled for the week.
func (s *Service) SelectGame(ctx context.Context, householdID, recommendationID, gameID string) (*Recommendation, error) {
	rec, err := s.repo.GetByID(ctx, householdID, recommendationID)
	if err != nil {
		return nil, err
	}
	if gameID != rec.Game1ID && gameID != rec.Game2ID {
		return nil, ErrGameNotInPair
	}

	if err := s.repo.SetSelectedGame(ctx, rec.ID, gameID); err != nil {
		return nil, err
	}

	rec.SelectedGameID = &gameID
	return rec, nil
}

// MarkPlayed links a logged play to the recommendation and flags the
// week as played. The play must belong to the same household.
func (s *Service) MarkPlayed(ctx context.Context, householdID, recommendationID, playID string) (*Recommendation, error) {
	rec, err := s.repo.GetByID(ctx, householdID, recommendationID)
	if err != nil {
		return nil, err
	}

	owned, err := s.repo.PlayInHousehold(ctx, householdID, playID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrPlayNotFound
	}

	if err := s.repo.MarkPlayed(ctx, rec.ID, playID); err != nil {
		return nil, err
	}

	rec.WasPlayed = true
	rec.PlayID = &playID
	return rec, nil
}

// Get returns the recommendation for the given week (default: the
// current one) joined with both games' display attributes. It never
// generates.
func (s *Service) Get(ctx context.Context, householdID string, weekStart *time.Time) (*View, error) {
	target := WeekStart(s.now())
	if weekStart != nil {
		target = WeekStart(*weekStart)
	}
	return s.repo.GetViewByWeek(ctx, householdID, target)
}

func excludeRecent(gameIDs, recent []string) []string {
	if len(recent) == 0 {
		return gameIDs
	}
	recentSet := make(map[string]struct{}, len(recent))
	for _, id := range recent {
		recentSet[id] = struct{}{}
	}
	candidates := make([]string, 0, len(gameIDs))
	for _, id := range gameIDs {
		if _, played := recentSet[id]; !played {
			candidates = append(candidates, id)
		}
	}
	return candidates
}

// pickPair draws two distinct ids with uniform probability via a
// Fisher-Yates shuffle of a copy.
func (s *Service) pickPair(candidates []string) (string, string) {
	pool := make([]string, len(candidates))
	copy(pool, candidates)
	s.shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[0], pool[1]
}
