package freeze_subscription

import (
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	freezeSubscription "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/freeze_subscription"
)

// FreezeRequest HTTP request model, даты включительно
type FreezeRequest struct {
	From  string `json:"from"`  // "2025-01-10"
	Until string `json:"until"` // "2025-01-20"
}

// FreezeResponse HTTP response model
type FreezeResponse struct {
	SubscriptionID int64  `json:"subscriptionId"`
	FrozenFrom     string `json:"frozenFrom"`
	FrozenUntil    string `json:"frozenUntil"`
	ValidUntil     string `json:"validUntil"`
	ExtensionDays  int    `json:"extensionDays"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *FreezeRequest) ToUseCaseRequest(clientID int64) (*freezeSubscription.Request, error) {
	from, err := time.Parse(domain.DateFormat, r.From)
	if err != nil {
		return nil, err
	}
	until, err := time.Parse(domain.DateFormat, r.Until)
	if err != nil {
		return nil, err
	}

	return &freezeSubscription.Request{
		ClientID: clientID,
		From:     from,
		Until:    until,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *freezeSubscription.Response) *FreezeResponse {
	return &FreezeResponse{
		SubscriptionID: resp.SubscriptionID,
		FrozenFrom:     resp.FrozenFrom.Format(domain.DateFormat),
		FrozenUntil:    resp.FrozenUntil.Format(domain.DateFormat),
		ValidUntil:     resp.ValidUntil.Format(domain.DateFormat),
		ExtensionDays:  resp.ExtensionDays,
	}
}
