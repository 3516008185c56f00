package subscriptions

import "errors"

var (
	// ErrSubscriptionNotFound возвращается, когда у клиента нет абонемента
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
