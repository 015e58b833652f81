package stats

import "context"

const defaultRecentPlaysLimit = 5

type Service struct {
	repo             Repository
	recentPlaysLimit int
}

func NewService(repo Repository, recentPlaysLimit int) *Service {
	if recentPlaysLimit <= 0 {
		recentPlaysLimit = defaultRecentPlaysLimit
	}
	return &Service{repo: repo, recentPlaysLimit: recentPlaysLimit}
}

func (s *Service) Summary(ctx context.Context, householdID string) (*Summary, error) {
	games, err := s.repo.CountGames(ctx, householdID)
	if err != nil {
		return nil, err
	}
	playCount, err := s.repo.CountPlays(ctx, householdID)
	if err != nil {
		return nil, err
	}
	members, err := s.repo.CountMembers(ctx, householdID)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.ListRecentPlays(ctx, householdID, s.recentPlaysLimit)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []RecentPlay{}
	}

	return &Summary{
		TotalGames:  games,
		TotalPlays:  playCount,
		MemberCount: members,
		RecentPlays: recent,
	}, nil
}

// Empty is the summary served to users who have no household yet.
func Empty() *Summary {
	return &Summary{RecentPlays: []RecentPlay{}}
}
