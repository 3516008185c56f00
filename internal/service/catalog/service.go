package catalog

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

// Catalog кэширует таблицу коэффициентов тарифов на весь процесс
// Таблица загружается при первом Load и обновляется только явным Reload
type Catalog struct {
	repo     TariffRepository
	observer Observer
	logger   Logger

	mu    sync.RWMutex
	table domain.TariffTable
}

// NewCatalog создает каталог; observer может быть nil
func NewCatalog(repo TariffRepository, observer Observer, logger Logger) *Catalog {
	return &Catalog{
		repo:     repo,
		observer: observer,
		logger:   logger,
	}
}

// Load возвращает копию закэшированной таблицы, при первом вызове загружает её из хранилища
func (c *Catalog) Load(ctx context.Context) (domain.TariffTable, error) {
	table, err := c.current(ctx)
	if err != nil {
		return nil, err
	}
	return copyTable(table), nil
}

func (c *Catalog) current(ctx context.Context) (domain.TariffTable, error) {
	c.mu.RLock()
	table := c.table
	c.mu.RUnlock()
	if table != nil {
		return table, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Другой вызов мог успеть загрузить таблицу
	if c.table != nil {
		return c.table, nil
	}

	if err := c.fetchLocked(ctx); err != nil {
		return nil, err
	}
	return c.table, nil
}

// Reload перечитывает таблицу из хранилища
// При ошибке остается последняя успешно загруженная таблица, ошибка возвращается вызывающему
func (c *Catalog) Reload(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchLocked(ctx)
}

func (c *Catalog) fetchLocked(ctx context.Context) error {
	table, err := c.repo.FetchTariffTable(ctx)
	fallback := c.table != nil
	c.observe(err, fallback)

	if err != nil {
		if fallback {
			c.logger.Warn("Catalog: failed to load tariff table, keeping cached table with %d tariffs: %v", len(c.table), err)
		} else {
			c.logger.Error("Catalog: failed to load tariff table, no cached table: %v", err)
		}
		return domain.Reject(domain.RejectCatalogUnavailable, "tariff table: %v", err)
	}

	c.table = copyTable(table)
	c.logger.Info("Catalog: loaded %d tariffs", len(c.table))
	return nil
}

func (c *Catalog) observe(err error, fallback bool) {
	if c.observer != nil {
		c.observer.ObserveCatalogLoad(err, fallback)
	}
}

// Multipliers возвращает коэффициенты тарифа
func (c *Catalog) Multipliers(ctx context.Context, code domain.TariffCode) (domain.Multipliers, error) {
	table, err := c.current(ctx)
	if err != nil {
		return domain.Multipliers{}, err
	}
	m, ok := table[code]
	if !ok {
		return domain.Multipliers{}, domain.Reject(domain.RejectUnknownTariff,
			"tariff %s is not in the catalog", code).WithTariff(code)
	}
	return m, nil
}

// Price считает цену: basePrice * k_time * k_period_or_n, округление до копеек
func (c *Catalog) Price(ctx context.Context, code domain.TariffCode, basePrice decimal.Decimal) (decimal.Decimal, error) {
	m, err := c.Multipliers(ctx, code)
	if err != nil {
		return decimal.Zero, err
	}
	return basePrice.Mul(m.Time).Mul(m.PeriodOrCount).Round(2), nil
}

func copyTable(src domain.TariffTable) domain.TariffTable {
	dst := make(domain.TariffTable, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
