package stats

import (
	"context"
	"testing"
	"time"
)

type fakeStatsRepo struct {
	games   int64
	plays   int64
	members int64
	recent  []RecentPlay
	limit   int
}

func (r *fakeStatsRepo) CountGames(ctx context.Context, householdID string) (int64, error) {
	return r.games, nil
}

func (r *fakeStatsRepo) CountPlays(ctx context.Context, householdID string) (int64, error) {
	return r.plays, nil
}

func (r *fakeStatsRepo) CountMembers(ctx context.Context, householdID string) (int64, error) {
	return r.members, nil
}

func (r *fakeStatsRepo) ListRecentPlays(ctx context.Context, householdID string, limit int) ([]RecentPlay, error) {
	r.limit = limit
	if len(r.recent) > limit {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

func TestSummary(t *testing.T) {
	repo := &fakeStatsRepo{
		games:   12,
		plays:   30,
		members: 3,
		recent: []RecentPlay{
			{ID: "play-1", GameName: "Wingspan", PlayDate: time.Now()},
		},
	}

	svc := NewService(repo, 5)
	summary, err := svc.Summary(context.Background(), "house-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summary.TotalGames != 12 || summary.TotalPlays != 30 || summary.MemberCount != 3 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if len(summary.RecentPlays) != 1 {
		t.Fatalf("expected 1 recent play, got %d", len(summary.RecentPlays))
	}
	if repo.limit != 5 {
		t.Fatalf("expected limit 5 passed through, got %d", repo.limit)
	}
}

func TestSummaryNilRecent(t *testing.T) {
	svc := NewService(&fakeStatsRepo{}, 0)
	summary, err := svc.Summary(context.Background(), "house-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summary.RecentPlays == nil {
		t.Fatalf("expected non-nil recent plays slice")
	}
}

func TestEmpty(t *testing.T) {
	summary := Empty()
	if summary.TotalGames != 0 || summary.TotalPlays != 0 || summary.MemberCount != 0 {
		t.Fatalf("expected zero counts, got %+v", summary)
	}
	if summary.RecentPlays == nil {
		t.Fatalf("expected non-nil recent plays slice")
	}
}
