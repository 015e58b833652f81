package household

import "errors"

var (
	ErrHouseholdNotFound    = errors.New("household not found")
	ErrInviteCodeNotFound   = errors.New("invite code not found")
	ErrAlreadyInHousehold   = errors.New("already in a household")
	ErrNameRequired         = errors.New("name is required")
	ErrCodeGenerationFailed = errors.New("invite code generation failed")
)
