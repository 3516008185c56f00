package models

import (
	"github.com/shopspring/decimal"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/tariffcodec"
)

// SubscriptionResponse абонемент для отображения
type SubscriptionResponse struct {
	ID          int64           `json:"id"`
	ClientID    int64           `json:"clientId"`
	Tariff      string          `json:"tariff"`
	Period      string          `json:"period"`
	ClassLimit  string          `json:"classLimit"`
	TimeBand    string          `json:"timeBand"`
	ValidSince  string          `json:"validSince"`
	ValidUntil  string          `json:"validUntil"`
	IsValid     bool            `json:"isValid"`
	FrozenFrom  *string         `json:"frozenFrom,omitempty"`
	FrozenUntil *string         `json:"frozenUntil,omitempty"`
	VisitCount  int             `json:"visitCount"`
	Price       decimal.Decimal `json:"price"`
}

// QuotaResponse остаток занятий по абонементу на дату
// Active: абонемент дает право на посещение в эту дату
// Remaining == nil для безлимитных тарифов
type QuotaResponse struct {
	ClientID       int64  `json:"clientId"`
	SubscriptionID int64  `json:"subscriptionId"`
	Tariff         string `json:"tariff"`
	Date           string `json:"date"`
	Active         bool   `json:"active"`
	Limited        bool   `json:"limited"`
	Limit          int    `json:"limit,omitempty"`
	Consumed       int    `json:"consumed"`
	Remaining      *int   `json:"remaining,omitempty"`
	Exhausted      bool   `json:"exhausted"`
}

// FromDomainSubscription конвертирует доменную модель в ответ
func FromDomainSubscription(sub *domain.Subscription) *SubscriptionResponse {
	period, classLimit, timeBand := tariffcodec.Labels(sub.Tariff)

	resp := &SubscriptionResponse{
		ID:         sub.ID,
		ClientID:   sub.ClientID,
		Tariff:     sub.Tariff.String(),
		Period:     period,
		ClassLimit: classLimit,
		TimeBand:   timeBand,
		ValidSince: sub.ValidSince.Format(domain.DateFormat),
		ValidUntil: sub.ValidUntil.Format(domain.DateFormat),
		IsValid:    sub.IsValid,
		VisitCount: sub.VisitCount,
		Price:      sub.Price,
	}
	if sub.FrozenFrom != nil && sub.FrozenUntil != nil {
		from := sub.FrozenFrom.Format(domain.DateFormat)
		until := sub.FrozenUntil.Format(domain.DateFormat)
		resp.FrozenFrom = &from
		resp.FrozenUntil = &until
	}
	return resp
}
