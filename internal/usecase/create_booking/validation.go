package create_booking

import (
	"fmt"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/tariffcodec"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/types"
)

// validateSubject шаг 1: субъект выбран
func validateSubject(req *Request) *domain.Rejection {
	if req.SubjectID <= 0 {
		return domain.Reject(domain.RejectNoSubjectSelected, "%s requires a selected subject", req.Kind)
	}
	if req.ClientID != nil && *req.ClientID <= 0 {
		return domain.Reject(domain.RejectNoSubjectSelected, "client id must be positive")
	}
	return nil
}

// parseWindow шаг 2: дата, начало и конец разбираются как корректное время
func parseWindow(req *Request) (domain.TimeWindow, *domain.Rejection) {
	if req.Date.IsZero() {
		return domain.TimeWindow{}, domain.Reject(domain.RejectMalformedTime, "booking date is required")
	}

	start, err := types.NewTimeStringFromString(req.StartTime.String())
	if err != nil {
		return domain.TimeWindow{}, domain.Reject(domain.RejectMalformedTime, "start time: %v", err)
	}
	end, err := types.NewTimeStringFromString(req.EndTime.String())
	if err != nil {
		return domain.TimeWindow{}, domain.Reject(domain.RejectMalformedTime, "end time: %v", err)
	}

	date := domain.DateOnly(req.Date)
	startAt, err := start.OnDate(date)
	if err != nil {
		return domain.TimeWindow{}, domain.Reject(domain.RejectMalformedTime, "start time: %v", err)
	}
	endAt, err := end.OnDate(date)
	if err != nil {
		return domain.TimeWindow{}, domain.Reject(domain.RejectMalformedTime, "end time: %v", err)
	}

	return domain.TimeWindow{Start: startAt, End: endAt}, nil
}

// subjects участники бронирования, чьи расписания не должны пересекаться
//
// Посещение зала: только клиент.
// Слот тренера: тренер и, если записан, клиент
func subjects(req *Request) (overlap []domain.Subject, client *domain.Subject) {
	switch req.Kind {
	case domain.KindGymVisit:
		c := domain.Client(req.SubjectID)
		return []domain.Subject{c}, &c
	case domain.KindTrainerSlot:
		overlap = []domain.Subject{domain.Trainer(req.SubjectID)}
		if req.ClientID != nil {
			c := domain.Client(*req.ClientID)
			overlap = append(overlap, c)
			client = &c
		}
		return overlap, client
	default:
		return nil, nil
	}
}

// resolveTariff шаг 5 (начало): права абонемента и привязанный тариф
// Тариф абонемента имеет приоритет над тарифом из запроса
func resolveTariff(req *Request, sub *domain.Subscription) (domain.TariffCode, *domain.Rejection) {
	if sub != nil {
		if !sub.IsValid {
			return domain.TariffCode{}, domain.Reject(domain.RejectSubscriptionInactive,
				"subscription %d was revoked", sub.ID).WithTariff(sub.Tariff)
		}
		if !sub.CoversDate(req.Date) {
			return domain.TariffCode{}, domain.Reject(domain.RejectSubscriptionExpired,
				"subscription %d is valid %s..%s", sub.ID,
				sub.ValidSince.Format(domain.DateFormat), sub.ValidUntil.Format(domain.DateFormat)).WithTariff(sub.Tariff)
		}
		if sub.IsFrozenOn(req.Date) {
			return domain.TariffCode{}, domain.Reject(domain.RejectSubscriptionFrozen,
				"subscription %d is frozen %s..%s", sub.ID,
				sub.FrozenFrom.Format(domain.DateFormat), sub.FrozenUntil.Format(domain.DateFormat)).WithTariff(sub.Tariff)
		}
		return sub.Tariff, nil
	}

	if req.Tariff == "" {
		return domain.TariffCode{}, nil
	}

	code, err := tariffcodec.Decode(req.Tariff)
	if err != nil {
		r, ok := domain.AsRejection(err)
		if !ok {
			r = domain.Reject(domain.RejectMalformedTariffCode, "%v", err)
		}
		return domain.TariffCode{}, r
	}
	return code, nil
}

func describe(req *Request) string {
	client := "-"
	if req.ClientID != nil {
		client = fmt.Sprintf("%d", *req.ClientID)
	}
	return fmt.Sprintf("kind=%s, subject=%d, client=%s, date=%s, time=%s-%s",
		req.Kind, req.SubjectID, client, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
}
