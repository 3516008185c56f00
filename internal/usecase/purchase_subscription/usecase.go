package purchase_subscription

import (
	"context"
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	subscriptionRepo "github.com/maris-volk/CRM-fitness-room-sub000/internal/infra/storage/subscription"
)

// UseCase покупка абонемента: код тарифа, цена по каталогу, сохранение
type UseCase struct {
	encoder          TariffEncoder
	prices           PriceCalculator
	subscriptionRepo SubscriptionRepository
	txManager        TransactionManager
	basePrice        decimal.Decimal
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	encoder TariffEncoder,
	prices PriceCalculator,
	subscriptionRepo SubscriptionRepository,
	txManager TransactionManager,
	basePrice decimal.Decimal,
	logger Logger,
) *UseCase {
	return &UseCase{
		encoder:          encoder,
		prices:           prices,
		subscriptionRepo: subscriptionRepo,
		txManager:        txManager,
		basePrice:        basePrice,
		logger:           logger,
	}
}

// Quote считает стоимость тарифа по меткам формы
func (uc *UseCase) Quote(ctx context.Context, req *QuoteRequest) (*Quote, error) {
	code, err := uc.encoder.Encode(req.Period, req.ClassLimit, req.TimeBand)
	if err != nil {
		uc.logger.Warn("Quote: invalid selection period=%q classes=%q time=%q: %v", req.Period, req.ClassLimit, req.TimeBand, err)
		return nil, err
	}

	price, err := uc.prices.Price(ctx, code, uc.basePrice)
	if err != nil {
		uc.logger.Warn("Quote: no price for %s: %v", code, err)
		return nil, err
	}

	return &Quote{Tariff: code, Price: price}, nil
}

// PriceList цены всех продаваемых тарифов, включая разовое посещение
// Тарифы без строки в каталоге пропускаются; недоступность каталога возвращается как ошибка
func (uc *UseCase) PriceList(ctx context.Context) ([]Quote, error) {
	codes := append(uc.encoder.Combinations(), domain.OneTimeTariff)
	sort.Slice(codes, func(i, j int) bool { return codes[i].String() < codes[j].String() })

	quotes := make([]Quote, 0, len(codes))
	for _, code := range codes {
		price, err := uc.prices.Price(ctx, code, uc.basePrice)
		if errors.Is(err, domain.ErrUnknownTariff) {
			uc.logger.Warn("PriceList: %s is not in the catalog, skipped", code)
			continue
		}
		if err != nil {
			uc.logger.Error("PriceList: failed to price %s: %v", code, err)
			return nil, err
		}
		quotes = append(quotes, Quote{Tariff: code, Price: price})
	}

	return quotes, nil
}

// Execute покупает абонемент и привязывает его к клиенту
// Предыдущий абонемент клиента остается в истории, текущим становится новый
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PurchaseSubscription: client=%d, period=%q, classes=%q, time=%q, start=%s",
		req.ClientID, req.Period, req.ClassLimit, req.TimeBand, req.StartDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PurchaseSubscription: validation failed: %v", err)
		return nil, err
	}

	// 2. Код тарифа и цена
	quote, err := uc.Quote(ctx, &QuoteRequest{Period: req.Period, ClassLimit: req.ClassLimit, TimeBand: req.TimeBand})
	if err != nil {
		return nil, err
	}

	// 3. Срок действия
	start := domain.DateOnly(req.StartDate)
	sub := &domain.Subscription{
		ClientID:   req.ClientID,
		Tariff:     quote.Tariff,
		ValidSince: start,
		ValidUntil: validUntil(quote.Tariff, start),
		IsValid:    true,
		Price:      quote.Price,
	}

	// 4. Сохранение и привязка к клиенту
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.subscriptionRepo.Create(txCtx, sub)
		if err != nil {
			return err
		}
		sub = created
		return nil
	})
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrClientNotFound) {
			uc.logger.Warn("PurchaseSubscription: client=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("PurchaseSubscription: failed for client=%d: %v", req.ClientID, err)
		return nil, domain.Reject(domain.RejectPersistenceFailure, "purchase subscription: %v", err)
	}

	uc.logger.Info("PurchaseSubscription: subscription=%d (%s, %s) for client=%d, valid %s..%s",
		sub.ID, sub.Tariff, sub.Price.StringFixed(2), sub.ClientID,
		sub.ValidSince.Format(domain.DateFormat), sub.ValidUntil.Format(domain.DateFormat))
	return &Response{Subscription: sub}, nil
}
