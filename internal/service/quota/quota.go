package quota

import (
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/tariffcodec"
)

// IsClassLimited true для тарифов на 8 или 12 занятий
func IsClassLimited(code domain.TariffCode) bool {
	_, limited := tariffcodec.ClassLimitOf(code)
	return limited
}

// DailyBookingAllowed для тарифов с лимитом занятий допускается одно бронирование в день
func DailyBookingAllowed(code domain.TariffCode, existingCountToday int) bool {
	if !IsClassLimited(code) {
		return true
	}
	return existingCountToday < domain.MaxDailyBookingsLimited
}

// Remaining оставшееся количество занятий, никогда не бывает отрицательным
// limited == false означает безлимитный тариф, count тогда не имеет смысла
func Remaining(code domain.TariffCode, consumed int) (count int, limited bool) {
	limit, limited := tariffcodec.ClassLimitOf(code)
	if !limited {
		return 0, false
	}
	if consumed >= limit {
		return 0, true
	}
	return limit - consumed, true
}

// IsExhausted true, если лимит занятий выбран полностью
func IsExhausted(code domain.TariffCode, consumed int) bool {
	limit, limited := tariffcodec.ClassLimitOf(code)
	return limited && consumed >= limit
}

// Check проверяет, можно ли записаться ещё раз
// Нарушения возвращаются как отказ, а не как ошибка: это ожидаемый исход
func Check(code domain.TariffCode, existingCountToday, consumed int) *domain.Rejection {
	limit, limited := tariffcodec.ClassLimitOf(code)
	if !limited {
		return nil
	}

	if !DailyBookingAllowed(code, existingCountToday) {
		r := domain.Reject(domain.RejectDailyLimitExceeded,
			"tariff %s allows %d booking per day, already %d", code, domain.MaxDailyBookingsLimited, existingCountToday).
			WithTariff(code)
		r.Limit = domain.MaxDailyBookingsLimited
		r.Consumed = existingCountToday
		return r
	}

	if IsExhausted(code, consumed) {
		r := domain.Reject(domain.RejectQuotaExhausted,
			"tariff %s allows %d sessions, %d used", code, limit, consumed).WithTariff(code)
		r.Limit = limit
		r.Consumed = consumed
		return r
	}

	return nil
}
