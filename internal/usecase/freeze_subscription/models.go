package freeze_subscription

import "time"

// Request запрос на заморозку абонемента клиента на [From, Until]
type Request struct {
	ClientID int64
	From     time.Time
	Until    time.Time
}

// Response обновленные сроки абонемента
type Response struct {
	SubscriptionID int64
	FrozenFrom     time.Time
	FrozenUntil    time.Time
	ValidUntil     time.Time
	ExtensionDays  int
}
