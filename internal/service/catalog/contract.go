package catalog

import (
	"context"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

// TariffRepository источник таблицы коэффициентов тарифов
type TariffRepository interface {
	FetchTariffTable(ctx context.Context) (domain.TariffTable, error)
}

// Observer получает результаты загрузок таблицы (метрики)
type Observer interface {
	ObserveCatalogLoad(err error, fallback bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
