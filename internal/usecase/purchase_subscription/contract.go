package purchase_subscription

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

// TariffEncoder переводит выбор пользователя в код тарифа
type TariffEncoder interface {
	Encode(periodLabel, classLimitLabel, timeBandLabel string) (domain.TariffCode, error)
	Combinations() []domain.TariffCode
}

// PriceCalculator считает стоимость тарифа по каталогу
type PriceCalculator interface {
	Price(ctx context.Context, code domain.TariffCode, basePrice decimal.Decimal) (decimal.Decimal, error)
}

// SubscriptionRepository интерфейс репозитория абонементов
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
