package recommend

import "errors"

var (
	ErrRecommendationNotFound = errors.New("recommendation not found")
	// ErrNotEnoughGames means the collection holds fewer than two games.
	ErrNotEnoughGames = errors.New("need at least 2 games to generate recommendations")
	ErrGameNotInPair  = errors.New("game is not part of this week's pair")
	ErrPlayNotFound   = errors.New("play not found")
	// ErrDuplicateWeek is returned by the repository when a concurrent
	// caller already inserted this week's row.
	ErrDuplicateWeek = errors.New("recommendation already exists for week")
)
