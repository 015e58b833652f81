package plays

import "errors"

var (
	ErrPlayNotFound     = errors.New("play not found")
	ErrGameNotFound     = errors.New("game not found")
	ErrGameRequired     = errors.New("game id is required")
	ErrPlayDateRequired = errors.New("play date is required")
	ErrNameRequired     = errors.New("participant name is required")
)
