package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscription client subscription bought for a tariff
type Subscription struct {
	ID          int64
	ClientID    int64
	Tariff      TariffCode
	ValidSince  time.Time
	ValidUntil  time.Time
	IsValid     bool // false after revoke
	FrozenFrom  *time.Time
	FrozenUntil *time.Time
	VisitCount  int
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsFrozenOn returns true if date falls into [FrozenFrom, FrozenUntil]
func (s *Subscription) IsFrozenOn(date time.Time) bool {
	if s.FrozenFrom == nil || s.FrozenUntil == nil {
		return false
	}
	d := DateOnly(date)
	return !d.Before(DateOnly(*s.FrozenFrom)) && !d.After(DateOnly(*s.FrozenUntil))
}

// CoversDate returns true if date falls into [ValidSince, ValidUntil]
func (s *Subscription) CoversDate(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(s.ValidSince)) && !d.After(DateOnly(s.ValidUntil))
}

// GrantsRightsOn returns true if the subscription allows booking on date
func (s *Subscription) GrantsRightsOn(date time.Time) bool {
	return s.IsValid && s.CoversDate(date) && !s.IsFrozenOn(date)
}
