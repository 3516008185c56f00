package freeze_subscription

import (
	"context"
	"errors"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	subscriptionRepo "github.com/maris-volk/CRM-fitness-room-sub000/internal/infra/storage/subscription"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/freeze"
)

// UseCase заморозка абонемента: чтение, расчет нового срока, сохранение
type UseCase struct {
	subscriptionRepo SubscriptionRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(subscriptionRepo SubscriptionRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		subscriptionRepo: subscriptionRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute замораживает абонемент клиента
// Нарушения правил возвращаются как *domain.Rejection
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FreezeSubscription: client=%d, from=%s, until=%s",
		req.ClientID, req.From.Format(domain.DateFormat), req.Until.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FreezeSubscription: validation failed: %v", err)
		return nil, err
	}

	var resp *Response
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Получаем абонемент (в транзакции строка блокируется)
		sub, err := uc.subscriptionRepo.GetByClient(txCtx, req.ClientID)
		if err != nil {
			if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
				return domain.Reject(domain.RejectNoSubscription, "client %d has no subscription", req.ClientID)
			}
			return err
		}

		// 3. Отозванный абонемент заморозить нельзя
		if !sub.IsValid {
			return domain.Reject(domain.RejectSubscriptionInactive, "subscription %d was revoked", sub.ID).
				WithTariff(sub.Tariff)
		}

		// 4. Считаем новый срок
		updated, err := freeze.Freeze(*sub, req.From, req.Until)
		if err != nil {
			return err
		}

		// 5. Сохраняем
		if err := uc.subscriptionRepo.PersistFreeze(txCtx, sub.ID, *updated.FrozenFrom, *updated.FrozenUntil, updated.ValidUntil); err != nil {
			return err
		}

		resp = &Response{
			SubscriptionID: sub.ID,
			FrozenFrom:     *updated.FrozenFrom,
			FrozenUntil:    *updated.FrozenUntil,
			ValidUntil:     updated.ValidUntil,
			ExtensionDays:  freeze.ExtensionDays(*updated.FrozenFrom, *updated.FrozenUntil),
		}
		return nil
	})
	if err != nil {
		if r, ok := domain.AsRejection(err); ok {
			uc.logger.Warn("FreezeSubscription: rejected for client=%d: %v", req.ClientID, r)
			return nil, r
		}
		uc.logger.Error("FreezeSubscription: failed for client=%d: %v", req.ClientID, err)
		if errors.Is(err, domain.ErrInvariant) {
			return nil, err
		}
		return nil, domain.Reject(domain.RejectPersistenceFailure, "freeze subscription: %v", err)
	}

	uc.logger.Info("FreezeSubscription: subscription=%d frozen, valid until %s (+%d days)",
		resp.SubscriptionID, resp.ValidUntil.Format(domain.DateFormat), resp.ExtensionDays)
	return resp, nil
}
