package ctrl

import "errors"

var (
	ErrNoKeys = errors.New("at least one key is required")
)
