package freeze_subscription

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("freeze_subscription: invalid input")
)
