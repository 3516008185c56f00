package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	subscriptionRepo "github.com/maris-volk/CRM-fitness-room-sub000/internal/infra/storage/subscription"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/quota"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/subscriptions/models"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/tariffcodec"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/ptr"
)

// Service сервис для чтения и отзыва абонементов
type Service struct {
	subscriptionRepo SubscriptionRepository
	bookingRepo      BookingRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса абонементов
func NewService(
	subscriptionRepo SubscriptionRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		subscriptionRepo: subscriptionRepo,
		bookingRepo:      bookingRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetByClient получает текущий абонемент клиента
func (s *Service) GetByClient(ctx context.Context, clientID int64) (*models.SubscriptionResponse, error) {
	s.logger.Info("GetByClient: fetching subscription for client=%d", clientID)

	sub, err := s.fetch(ctx, "GetByClient", clientID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainSubscription(sub), nil
}

// Revoke отзывает абонемент клиента
// Отозванный абонемент перестает давать права на посещение и отвязывается от клиента
func (s *Service) Revoke(ctx context.Context, clientID int64) (*models.SubscriptionResponse, error) {
	s.logger.Info("Revoke: revoking subscription of client=%d", clientID)

	var revoked *domain.Subscription
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		sub, err := s.fetch(txCtx, "Revoke", clientID)
		if err != nil {
			return err
		}

		if !sub.IsValid {
			return domain.Reject(domain.RejectSubscriptionInactive, "subscription %d is already revoked", sub.ID).
				WithTariff(sub.Tariff)
		}

		if err := s.subscriptionRepo.Revoke(txCtx, sub.ID); err != nil {
			s.logger.Error("Revoke: repository error for subscription=%d: %v", sub.ID, err)
			return fmt.Errorf("%w: Revoke - repository error: %v", ErrInternal, err)
		}

		sub.IsValid = false
		revoked = sub
		return nil
	})
	if err != nil {
		if r, ok := domain.AsRejection(err); ok {
			s.logger.Warn("Revoke: rejected for client=%d: %v", clientID, r)
		}
		return nil, err
	}

	s.logger.Info("Revoke: subscription=%d of client=%d revoked", revoked.ID, clientID)
	return models.FromDomainSubscription(revoked), nil
}

// Quota считает остаток занятий клиента на дату
func (s *Service) Quota(ctx context.Context, clientID int64, date time.Time) (*models.QuotaResponse, error) {
	s.logger.Info("Quota: client=%d, date=%s", clientID, date.Format(domain.DateFormat))

	sub, err := s.fetch(ctx, "Quota", clientID)
	if err != nil {
		return nil, err
	}

	consumed, err := s.bookingRepo.CountConsumed(ctx, clientID, sub.ID)
	if err != nil {
		s.logger.Error("Quota: count consumed for subscription=%d: %v", sub.ID, err)
		return nil, fmt.Errorf("%w: Quota - repository error: %v", ErrInternal, err)
	}

	resp := &models.QuotaResponse{
		ClientID:       clientID,
		SubscriptionID: sub.ID,
		Tariff:         sub.Tariff.String(),
		Date:           date.Format(domain.DateFormat),
		Active:         sub.GrantsRightsOn(date),
		Consumed:       consumed,
		Exhausted:      quota.IsExhausted(sub.Tariff, consumed),
	}
	if remaining, limited := quota.Remaining(sub.Tariff, consumed); limited {
		limit, _ := tariffcodec.ClassLimitOf(sub.Tariff)
		resp.Limited = true
		resp.Limit = limit
		resp.Remaining = ptr.Ptr(remaining)
	}

	return resp, nil
}

func (s *Service) fetch(ctx context.Context, op string, clientID int64) (*domain.Subscription, error) {
	sub, err := s.subscriptionRepo.GetByClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			s.logger.Warn("%s: client=%d has no subscription", op, clientID)
			return nil, ErrSubscriptionNotFound
		}
		s.logger.Error("%s: repository error for client=%d: %v", op, clientID, err)
		if errors.Is(err, domain.ErrInvariant) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return sub, nil
}
