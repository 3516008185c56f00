package create_booking

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	bookingRepo "github.com/maris-volk/CRM-fitness-room-sub000/internal/infra/storage/booking"
	subscriptionRepo "github.com/maris-volk/CRM-fitness-room-sub000/internal/infra/storage/subscription"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/quota"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/timewindow"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/ptr"
)

// UseCase координатор бронирования: посещение зала и слот тренера
//
// Этапы строго по порядку, первый отказ завершает попытку:
// субъект → окно → порядок/часы/длительность → пересечения → тариф → квота → сохранение
type UseCase struct {
	bookingRepo      BookingRepository
	subscriptionRepo SubscriptionRepository
	txManager        TransactionManager
	validator        *timewindow.Validator
	observer         Observer
	logger           Logger
}

// NewUseCase создает новый экземпляр use case; observer может быть nil
func NewUseCase(
	bookingRepo BookingRepository,
	subscriptionRepo SubscriptionRepository,
	txManager TransactionManager,
	validator *timewindow.Validator,
	observer Observer,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		subscriptionRepo: subscriptionRepo,
		txManager:        txManager,
		validator:        validator,
		observer:         observer,
		logger:           logger,
	}
}

// Execute выполняет попытку бронирования
// Отказы (включая сбои хранилища) возвращаются в Response; ошибка означает нарушение инварианта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: %s", describe(req))

	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown booking kind %q", ErrInvalidInput, req.Kind)
	}

	// 1. Субъект выбран
	if r := validateSubject(req); r != nil {
		return uc.reject(req, r), nil
	}

	// 2. Время указано и разбирается
	window, r := parseWindow(req)
	if r != nil {
		return uc.reject(req, r), nil
	}

	// 3. Порядок, часы работы, длительность
	if err := uc.validateWindow(window); err != nil {
		return uc.rejectErr(req, err)
	}

	// Загружаем срез данных: абонемент, списанные занятия, расписания участников
	snap, err := uc.loadSnapshot(ctx, req)
	if err != nil {
		return uc.collaboratorFailure(req, "load snapshot", err)
	}

	// 4. Нет пересечений
	if err := uc.validator.ValidateNoOverlap(window, domain.Windows(snap.overlapping)); err != nil {
		return uc.rejectErr(req, err)
	}

	// 5. Права абонемента и соответствие тарифу по времени
	tariff, r := resolveTariff(req, snap.subscription)
	if r != nil {
		return uc.reject(req, r), nil
	}
	if err := uc.validator.ValidateAgainstTariff(window, tariff); err != nil {
		return uc.rejectErr(req, err)
	}

	// 6. Квота: одно занятие в день (посещение или слот) и не больше лимита тарифа
	if r := quota.Check(tariff, len(snap.quotaDay), snap.consumed); r != nil {
		return uc.reject(req, r), nil
	}

	// 7. Сохранение
	booking, consumed, err := uc.commit(ctx, req, window, tariff, snap)
	if err != nil {
		if rejection, ok := domain.AsRejection(err); ok {
			return uc.reject(req, rejection), nil
		}
		if errors.Is(err, domain.ErrInvariant) {
			return nil, err
		}
		// Нарушение внешнего ключа: клиента или тренера нет, повтор не поможет
		if errors.Is(err, bookingRepo.ErrSubjectNotFound) {
			return uc.reject(req, domain.Reject(domain.RejectSubjectNotFound, "%s: %v", describe(req), err)), nil
		}
		return uc.collaboratorFailure(req, "persist booking", err)
	}

	resp := &Response{
		Status:    StatusCommitted,
		Kind:      req.Kind,
		BookingID: booking.ID,
		Date:      booking.BookingDate,
		Window:    booking.Window,
		Tariff:    tariffString(tariff),
	}
	if remaining, limited := quota.Remaining(tariff, consumed+1); limited {
		resp.QuotaRemaining = ptr.Ptr(remaining)
		resp.Exhausted = quota.IsExhausted(tariff, consumed+1)
	}

	uc.observe(req, "")
	uc.logger.Info("CreateBooking: committed booking id=%d (%s, %s)", booking.ID, req.Kind, booking.Window)
	return resp, nil
}

func (uc *UseCase) validateWindow(window domain.TimeWindow) error {
	if err := uc.validator.ValidateOrdering(window); err != nil {
		return err
	}
	if err := uc.validator.ValidateOperatingHours(window); err != nil {
		return err
	}
	return uc.validator.ValidateDuration(window)
}

// loadSnapshot параллельно читает абонемент клиента и расписания участников
func (uc *UseCase) loadSnapshot(ctx context.Context, req *Request) (*snapshot, error) {
	overlapSubjects, client := subjects(req)
	perSubject := make([][]domain.ExistingBooking, len(overlapSubjects))
	snap := &snapshot{}

	g, gctx := errgroup.WithContext(ctx)

	for i, subject := range overlapSubjects {
		g.Go(func() error {
			bookings, err := uc.bookingRepo.FetchExistingBookings(gctx, subject, req.Date)
			if err != nil {
				return fmt.Errorf("fetch bookings for %s %d: %w", subject.Role, subject.ID, err)
			}
			perSubject[i] = bookings
			return nil
		})
	}

	if client != nil {
		g.Go(func() error {
			sub, err := uc.subscriptionRepo.GetByClient(gctx, client.ID)
			if err != nil {
				if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
					return nil
				}
				return fmt.Errorf("fetch subscription for client %d: %w", client.ID, err)
			}
			consumed, err := uc.bookingRepo.CountConsumed(gctx, client.ID, sub.ID)
			if err != nil {
				return fmt.Errorf("count consumed for subscription %d: %w", sub.ID, err)
			}
			snap.subscription = sub
			snap.consumed = consumed
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, subject := range overlapSubjects {
		snap.overlapping = append(snap.overlapping, perSubject[i]...)
		if client != nil && subject == *client {
			snap.quotaDay = perSubject[i]
		}
	}
	return snap, nil
}

// commit сохраняет бронирование в сериализуемой транзакции
// Пересечения и квота перепроверяются внутри транзакции: срез мог устареть
// Возвращает созданное бронирование и число занятий, списанных до него
func (uc *UseCase) commit(
	ctx context.Context,
	req *Request,
	window domain.TimeWindow,
	tariff domain.TariffCode,
	snap *snapshot,
) (*domain.Booking, int, error) {
	overlapSubjects, client := subjects(req)

	booking := &domain.Booking{
		Kind:        req.Kind,
		BookingDate: domain.DateOnly(req.Date),
		Window:      window,
	}
	switch req.Kind {
	case domain.KindGymVisit:
		booking.ClientID = ptr.Ptr(req.SubjectID)
	case domain.KindTrainerSlot:
		booking.TrainerID = ptr.Ptr(req.SubjectID)
		if client != nil {
			booking.ClientID = ptr.Ptr(client.ID)
		}
	}
	if snap.subscription != nil {
		booking.SubscriptionID = ptr.Ptr(snap.subscription.ID)
	}

	var (
		created  *domain.Booking
		consumed = snap.consumed
	)
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var clientDay []domain.ExistingBooking
		for _, subject := range overlapSubjects {
			current, err := uc.bookingRepo.FetchExistingBookings(txCtx, subject, req.Date)
			if err != nil {
				return err
			}
			if err := uc.validator.ValidateNoOverlap(window, domain.Windows(current)); err != nil {
				return err
			}
			if client != nil && subject == *client {
				clientDay = current
			}
		}

		// Параллельная запись того же клиента в тот же день или списание занятия
		if client != nil && snap.subscription != nil {
			var err error
			consumed, err = uc.bookingRepo.CountConsumed(txCtx, client.ID, snap.subscription.ID)
			if err != nil {
				return err
			}
		}
		if r := quota.Check(tariff, len(clientDay), consumed); r != nil {
			return r
		}

		var err error
		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}

		if booking.SubscriptionID != nil {
			if err := uc.subscriptionRepo.IncrementVisitCount(txCtx, *booking.SubscriptionID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return created, consumed, nil
}

func (uc *UseCase) rejectErr(req *Request, err error) (*Response, error) {
	if r, ok := domain.AsRejection(err); ok {
		return uc.reject(req, r), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrInternal, err)
}

func (uc *UseCase) reject(req *Request, r *domain.Rejection) *Response {
	uc.logger.Warn("CreateBooking: rejected %s: %v", describe(req), r)
	uc.observe(req, string(r.Kind))
	return &Response{
		Status:    StatusRejected,
		Kind:      req.Kind,
		Date:      req.Date,
		Tariff:    r.Tariff,
		Rejection: r,
	}
}

// collaboratorFailure сбой хранилища: отказ с возможностью повтора, а не ошибка
func (uc *UseCase) collaboratorFailure(req *Request, stage string, err error) (*Response, error) {
	if errors.Is(err, domain.ErrInvariant) {
		uc.logger.Error("CreateBooking: invariant violation at %s: %v", stage, err)
		return nil, err
	}
	uc.logger.Error("CreateBooking: %s failed for %s: %v", stage, describe(req), err)
	r := domain.Reject(domain.RejectPersistenceFailure, "%s: %v", stage, err)
	uc.observe(req, string(r.Kind))
	return &Response{
		Status:    StatusRejected,
		Kind:      req.Kind,
		Date:      req.Date,
		Rejection: r,
	}, nil
}

func (uc *UseCase) observe(req *Request, reason string) {
	if uc.observer != nil {
		uc.observer.ObserveBooking(string(req.Kind), reason)
	}
}

func tariffString(code domain.TariffCode) string {
	if code.IsZero() {
		return ""
	}
	return code.String()
}
