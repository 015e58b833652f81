package collection

import "errors"

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrGameExists       = errors.New("game already in collection")
	ErrNameRequired     = errors.New("name is required")
	ErrPlayersRequired  = errors.New("min and max players are required")
	ErrInvalidCondition = errors.New("invalid condition")
)
