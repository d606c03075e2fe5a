package achievement

import (
	"errors"
)

var (
	ErrInvalidID = errors.New("invalid achievement id")
)
