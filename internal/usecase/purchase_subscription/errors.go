package purchase_subscription

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("purchase_subscription: invalid input")

	// ErrClientNotFound возвращается, когда клиент не существует
	ErrClientNotFound = errors.New("purchase_subscription: client not found")
)
