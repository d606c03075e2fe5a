package goal

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("goal not found")
	ErrAlreadyActive = errors.New("another goal is already active")
	ErrNotActive     = errors.New("goal is not active")
	ErrEmptyTitle    = errors.New("goal title is required")
)
