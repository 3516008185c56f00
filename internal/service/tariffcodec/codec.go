package tariffcodec

import (
	"strings"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

// Метки, которые видит пользователь при выборе тарифа
const (
	LabelMonth    = "Month"
	LabelHalfYear = "HalfYear"
	LabelYear     = "Year"
	LabelOneTime  = "OneTime"

	LabelEight     = "8"
	LabelTwelve    = "12"
	LabelUnlimited = "Unlimited"

	LabelMorning = "<16"
	LabelEvening = "≥16"
)

var periodLabels = map[string]domain.Period{
	LabelMonth:    domain.PeriodMonth,
	LabelHalfYear: domain.PeriodHalfYear,
	LabelYear:     domain.PeriodYear,
}

var classLabels = map[string]domain.ClassLimit{
	LabelEight:     domain.ClassLimitEight,
	LabelTwelve:    domain.ClassLimitTwelve,
	LabelUnlimited: domain.ClassLimitUnlimited,
}

var bandLabels = map[string]domain.TimeBand{
	LabelMorning:   domain.TimeBandMorning,
	LabelEvening:   domain.TimeBandEvening,
	">=16":         domain.TimeBandEvening,
	LabelUnlimited: domain.TimeBandAnyTime,
}

var (
	classKeys = map[string]domain.ClassLimit{
		string(domain.ClassLimitEight):     domain.ClassLimitEight,
		string(domain.ClassLimitTwelve):    domain.ClassLimitTwelve,
		string(domain.ClassLimitUnlimited): domain.ClassLimitUnlimited,
	}
	bandKeys = map[string]domain.TimeBand{
		string(domain.TimeBandMorning): domain.TimeBandMorning,
		string(domain.TimeBandEvening): domain.TimeBandEvening,
		string(domain.TimeBandAnyTime): domain.TimeBandAnyTime,
	}
	periodKeys = map[string]domain.Period{
		string(domain.PeriodMonth):    domain.PeriodMonth,
		string(domain.PeriodHalfYear): domain.PeriodHalfYear,
		string(domain.PeriodYear):     domain.PeriodYear,
	}
)

// DefaultCombinations конфигурация каталога: месячные тарифы в любых сочетаниях,
// полугодовые и годовые только безлимитные на любое время
func DefaultCombinations() []domain.TariffCode {
	combos := make([]domain.TariffCode, 0, 11)
	for _, class := range []domain.ClassLimit{domain.ClassLimitEight, domain.ClassLimitTwelve, domain.ClassLimitUnlimited} {
		for _, band := range []domain.TimeBand{domain.TimeBandMorning, domain.TimeBandEvening, domain.TimeBandAnyTime} {
			combos = append(combos, domain.TariffCode{ClassLimit: class, TimeBand: band, Period: domain.PeriodMonth})
		}
	}
	combos = append(combos,
		domain.TariffCode{ClassLimit: domain.ClassLimitUnlimited, TimeBand: domain.TimeBandAnyTime, Period: domain.PeriodHalfYear},
		domain.TariffCode{ClassLimit: domain.ClassLimitUnlimited, TimeBand: domain.TimeBandAnyTime, Period: domain.PeriodYear},
	)
	return combos
}

// Codec преобразует выбор пользователя в код тарифа и обратно
// Допустимые сочетания задаются таблицей, а не зашиты в код
type Codec struct {
	allowed map[domain.TariffCode]struct{}
}

// New создает кодек с заданной таблицей сочетаний
// Пустая таблица означает DefaultCombinations
func New(combinations []domain.TariffCode) *Codec {
	if len(combinations) == 0 {
		combinations = DefaultCombinations()
	}
	allowed := make(map[domain.TariffCode]struct{}, len(combinations))
	for _, c := range combinations {
		allowed[c] = struct{}{}
	}
	return &Codec{allowed: allowed}
}

// NewFromCodes создает кодек из списка строковых кодов (формат конфигурации)
func NewFromCodes(codes []string) (*Codec, error) {
	combinations := make([]domain.TariffCode, 0, len(codes))
	for _, s := range codes {
		code, err := Decode(s)
		if err != nil {
			return nil, err
		}
		if code.OneTime {
			continue
		}
		combinations = append(combinations, code)
	}
	return New(combinations), nil
}

// Combinations возвращает допустимые сочетания (порядок не гарантируется)
func (c *Codec) Combinations() []domain.TariffCode {
	result := make([]domain.TariffCode, 0, len(c.allowed))
	for code := range c.allowed {
		result = append(result, code)
	}
	return result
}

// Encode собирает код тарифа из меток формы
// Для разового посещения метки занятий и времени должны быть пустыми или Unlimited
func (c *Codec) Encode(periodLabel, classLimitLabel, timeBandLabel string) (domain.TariffCode, error) {
	periodLabel = strings.TrimSpace(periodLabel)
	classLimitLabel = strings.TrimSpace(classLimitLabel)
	timeBandLabel = strings.TrimSpace(timeBandLabel)

	if periodLabel == LabelOneTime {
		if !isUnlimitedOrEmpty(classLimitLabel) || !isUnlimitedOrEmpty(timeBandLabel) {
			return domain.TariffCode{}, selectionError(periodLabel, classLimitLabel, timeBandLabel,
				"one-time visit takes no class or time restriction")
		}
		return domain.OneTimeTariff, nil
	}

	period, ok := periodLabels[periodLabel]
	if !ok {
		return domain.TariffCode{}, selectionError(periodLabel, classLimitLabel, timeBandLabel, "unknown period")
	}
	class, ok := classLabels[classLimitLabel]
	if !ok {
		return domain.TariffCode{}, selectionError(periodLabel, classLimitLabel, timeBandLabel, "unknown class limit")
	}
	band, ok := bandLabels[timeBandLabel]
	if !ok {
		return domain.TariffCode{}, selectionError(periodLabel, classLimitLabel, timeBandLabel, "unknown time band")
	}

	code := domain.TariffCode{ClassLimit: class, TimeBand: band, Period: period}
	if _, ok := c.allowed[code]; !ok {
		return domain.TariffCode{}, selectionError(periodLabel, classLimitLabel, timeBandLabel,
			"combination is not offered by the catalog").WithTariff(code)
	}
	return code, nil
}

// Labels возвращает метки формы для кода (обратное к Encode)
func Labels(code domain.TariffCode) (period, classLimit, timeBand string) {
	if code.OneTime {
		return LabelOneTime, LabelUnlimited, LabelUnlimited
	}
	for label, p := range periodLabels {
		if p == code.Period {
			period = label
		}
	}
	for label, cl := range classLabels {
		if cl == code.ClassLimit {
			classLimit = label
		}
	}
	switch code.TimeBand {
	case domain.TimeBandMorning:
		timeBand = LabelMorning
	case domain.TimeBandEvening:
		timeBand = LabelEvening
	case domain.TimeBandAnyTime:
		timeBand = LabelUnlimited
	}
	return period, classLimit, timeBand
}

// Decode разбирает строку вида "12_mrn_mnth" или "one_time"
func Decode(s string) (domain.TariffCode, error) {
	s = strings.TrimSpace(s)
	if s == domain.OneTimeCode {
		return domain.OneTimeTariff, nil
	}

	parts := strings.Split(s, "_")
	if len(parts) != 3 {
		return domain.TariffCode{}, domain.Reject(domain.RejectMalformedTariffCode,
			"tariff code %q must have three parts", s)
	}

	class, ok := classKeys[parts[0]]
	if !ok {
		return domain.TariffCode{}, domain.Reject(domain.RejectMalformedTariffCode,
			"unknown class key %q in %q", parts[0], s)
	}
	band, ok := bandKeys[parts[1]]
	if !ok {
		return domain.TariffCode{}, domain.Reject(domain.RejectMalformedTariffCode,
			"unknown time key %q in %q", parts[1], s)
	}
	period, ok := periodKeys[parts[2]]
	if !ok {
		return domain.TariffCode{}, domain.Reject(domain.RejectMalformedTariffCode,
			"unknown period key %q in %q", parts[2], s)
	}

	return domain.TariffCode{ClassLimit: class, TimeBand: band, Period: period}, nil
}

// TimeBandOf возвращает ограничение по времени; у разового посещения его нет
func TimeBandOf(code domain.TariffCode) domain.TimeBand {
	if code.OneTime {
		return domain.TimeBandAnyTime
	}
	return code.TimeBand
}

// ClassLimitOf возвращает лимит занятий; false для безлимитных и разовых тарифов
func ClassLimitOf(code domain.TariffCode) (int, bool) {
	if code.OneTime {
		return 0, false
	}
	return code.ClassLimit.Sessions()
}

func isUnlimitedOrEmpty(label string) bool {
	return label == "" || label == LabelUnlimited
}

func selectionError(period, class, band, reason string) *domain.Rejection {
	return domain.Reject(domain.RejectInvalidTariffSelection,
		"period=%q classes=%q time=%q: %s", period, class, band, reason)
}
