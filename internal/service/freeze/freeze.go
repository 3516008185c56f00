package freeze

import (
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

// Freeze замораживает абонемент на [from, until] и продлевает его на длительность заморозки
//
// Новая заморозка заменяет прежнюю: ее продление сначала снимается,
// поэтому повторный запрос с тем же периодом ничего не меняет.
//
// Проверки идут по порядку, побеждает первая (даты сравниваются без времени):
//  1. from < until
//  2. from >= ValidSince
//  3. until <= ValidUntil без учета прежнего продления
//
// Исходный абонемент не изменяется, возвращается обновленная копия.
// is_valid не трогается: права на посещение в период заморозки проверяют вызывающие
func Freeze(sub domain.Subscription, from, until time.Time) (domain.Subscription, error) {
	from = domain.DateOnly(from)
	until = domain.DateOnly(until)

	if !from.Before(until) {
		return sub, domain.Reject(domain.RejectInvertedFreezeRange,
			"freeze start %s must be before end %s", from.Format(domain.DateFormat), until.Format(domain.DateFormat))
	}
	if from.Before(domain.DateOnly(sub.ValidSince)) {
		return sub, domain.Reject(domain.RejectFreezeBeforeStart,
			"freeze start %s is before subscription start %s", from.Format(domain.DateFormat), sub.ValidSince.Format(domain.DateFormat))
	}
	end := baseValidUntil(sub)
	if until.After(end) {
		return sub, domain.Reject(domain.RejectFreezeAfterEnd,
			"freeze end %s is after subscription end %s", until.Format(domain.DateFormat), end.Format(domain.DateFormat))
	}

	days := ExtensionDays(from, until)

	updated := sub
	updated.ValidUntil = end.AddDate(0, 0, days)
	updated.FrozenFrom = &from
	updated.FrozenUntil = &until
	return updated, nil
}

// baseValidUntil конец действия без продления от текущей заморозки
func baseValidUntil(sub domain.Subscription) time.Time {
	end := domain.DateOnly(sub.ValidUntil)
	if sub.FrozenFrom != nil && sub.FrozenUntil != nil {
		end = end.AddDate(0, 0, -ExtensionDays(*sub.FrozenFrom, *sub.FrozenUntil))
	}
	return end
}

// ExtensionDays количество календарных дней между датами
// Даты переводятся в UTC: сутки в локальной зоне не всегда длятся 24 часа
func ExtensionDays(from, until time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(until.Year(), until.Month(), until.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
