package stats

import "time"

type Summary struct {
	TotalGames  int64
	TotalPlays  int64
	MemberCount int64
	RecentPlays []RecentPlay
}

type RecentPlay struct {
	ID       string
	GameName string
	PlayDate time.Time
	Duration *int
}
