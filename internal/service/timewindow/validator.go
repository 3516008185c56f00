package timewindow

import (
	"fmt"
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/tariffcodec"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/types"
)

// Config параметры зала
// Нулевые значения заменяются значениями по умолчанию из domain
type Config struct {
	Opening         types.TimeString
	Closing         types.TimeString
	DefaultDuration time.Duration
	MinDuration     time.Duration
	MaxDuration     time.Duration
}

// Validator проверяет временные окна. Состояния нет: все методы чистые функции от входа
//
// Clamp и DefaultWindow мягко исправляют ввод (пока пользователь печатает),
// Validate* жестко отклоняют окно при подтверждении
type Validator struct {
	opening         int // минуты от начала суток
	closing         int
	boundary        int
	defaultDuration time.Duration
	minDuration     time.Duration
	maxDuration     time.Duration
}

// New создает валидатор
func New(cfg Config) (*Validator, error) {
	if cfg.Opening.IsZero() {
		cfg.Opening = domain.DefaultOpeningTime
	}
	if cfg.Closing.IsZero() {
		cfg.Closing = domain.DefaultClosingTime
	}
	if cfg.DefaultDuration <= 0 {
		cfg.DefaultDuration = domain.DefaultSlotDurationMinutes * time.Minute
	}
	if cfg.MinDuration <= 0 {
		cfg.MinDuration = domain.MinSlotDurationMinutes * time.Minute
	}
	if cfg.MaxDuration <= 0 {
		cfg.MaxDuration = domain.MaxSlotDurationMinutes * time.Minute
	}

	opening, err := cfg.Opening.Minutes()
	if err != nil {
		return nil, fmt.Errorf("timewindow: opening time: %w", err)
	}
	closing, err := cfg.Closing.Minutes()
	if err != nil {
		return nil, fmt.Errorf("timewindow: closing time: %w", err)
	}
	if opening >= closing {
		return nil, fmt.Errorf("timewindow: opening %s must be before closing %s", cfg.Opening, cfg.Closing)
	}
	if cfg.MinDuration > cfg.MaxDuration {
		return nil, fmt.Errorf("timewindow: min duration %s exceeds max duration %s", cfg.MinDuration, cfg.MaxDuration)
	}

	boundary, _ := types.TimeString(domain.TimeBandBoundary).Minutes()

	return &Validator{
		opening:         opening,
		closing:         closing,
		boundary:        boundary,
		defaultDuration: cfg.DefaultDuration,
		minDuration:     cfg.MinDuration,
		maxDuration:     cfg.MaxDuration,
	}, nil
}

// MustNew как New, но паникует при ошибке (для тестов и значений по умолчанию)
func MustNew(cfg Config) *Validator {
	v, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return v
}

// DefaultDuration длительность окна, если задано только начало
func (v *Validator) DefaultDuration() time.Duration {
	return v.defaultDuration
}

// OperatingWindow часы работы зала в дату day
func (v *Validator) OperatingWindow(day time.Time) domain.TimeWindow {
	return domain.TimeWindow{Start: v.at(day, v.opening), End: v.at(day, v.closing)}
}

// Clamp подтягивает окно к часам работы зала
func (v *Validator) Clamp(w domain.TimeWindow) (domain.TimeWindow, error) {
	opening := v.at(w.Start, v.opening)
	closing := v.at(w.Start, v.closing)

	if w.Start.Before(opening) {
		w.Start = opening
	}
	if w.End.After(closing) {
		w.End = closing
	}
	if !w.Start.Before(w.End) {
		return w, domain.Reject(domain.RejectOutOfHours,
			"window does not fit opening hours %s", v.hoursString()).WithWindow(w)
	}
	return w, nil
}

// DefaultWindow строит окно по началу и длительности (duration <= 0 означает длительность по умолчанию)
// Если конец выходит за закрытие, он подтягивается к закрытию; если окно стало пустым,
// начало сдвигается на duration раньше конца
func (v *Validator) DefaultWindow(start time.Time, duration time.Duration) domain.TimeWindow {
	if duration <= 0 {
		duration = v.defaultDuration
	}

	opening := v.at(start, v.opening)
	closing := v.at(start, v.closing)

	if start.Before(opening) {
		start = opening
	}
	end := start.Add(duration)
	if end.After(closing) {
		end = closing
		if !start.Before(end) {
			start = end.Add(-duration)
		}
	}
	return domain.TimeWindow{Start: start, End: end}
}

// ValidateOrdering требует start < end
func (v *Validator) ValidateOrdering(w domain.TimeWindow) error {
	if !w.IsOrdered() {
		return domain.Reject(domain.RejectInvertedWindow,
			"start %s must be before end %s", w.Start.Format(domain.TimeFormat), w.End.Format(domain.TimeFormat)).WithWindow(w)
	}
	return nil
}

// ValidateOperatingHours требует, чтобы окно целиком лежало в часах работы
func (v *Validator) ValidateOperatingHours(w domain.TimeWindow) error {
	if w.Start.Before(v.at(w.Start, v.opening)) || w.End.After(v.at(w.Start, v.closing)) {
		return domain.Reject(domain.RejectOutOfHours,
			"window %s is outside opening hours %s", w, v.hoursString()).WithWindow(w)
	}
	return nil
}

// ValidateDuration проверяет минимальную и максимальную длительность
func (v *Validator) ValidateDuration(w domain.TimeWindow) error {
	d := w.Duration()
	if d < v.minDuration || d > v.maxDuration {
		r := domain.Reject(domain.RejectDurationOutOfRange,
			"duration %s must be between %s and %s", d, v.minDuration, v.maxDuration).WithWindow(w)
		r.Limit = int(v.maxDuration / time.Minute)
		return r
	}
	return nil
}

// ValidateAgainstTariff проверяет окно на соответствие временному ограничению тарифа
// Пустой код (тариф не привязан) проходит всегда
func (v *Validator) ValidateAgainstTariff(w domain.TimeWindow, code domain.TariffCode) error {
	if code.IsZero() {
		return nil
	}

	start := minutesOfDay(w.Start, w.Start)
	end := minutesOfDay(w.Start, w.End)

	switch tariffcodec.TimeBandOf(code) {
	case domain.TimeBandAnyTime:
		return nil
	case domain.TimeBandMorning:
		if start < v.boundary && end <= v.boundary {
			return nil
		}
		return domain.Reject(domain.RejectTariffTimeMismatch,
			"morning tariff %s allows visits before %s, got %s", code, domain.TimeBandBoundary, w).
			WithWindow(w).WithTariff(code)
	case domain.TimeBandEvening:
		if start >= v.boundary && end > v.boundary {
			return nil
		}
		return domain.Reject(domain.RejectTariffTimeMismatch,
			"evening tariff %s allows visits from %s, got %s", code, domain.TimeBandBoundary, w).
			WithWindow(w).WithTariff(code)
	default:
		return domain.Reject(domain.RejectUnsupportedTariffBand,
			"tariff %s has unsupported time band %q", code, code.TimeBand).WithTariff(code)
	}
}

// ValidateNoOverlap отклоняет окно, если оно пересекается с одним из существующих
// Касание концами пересечением не считается
func (v *Validator) ValidateNoOverlap(w domain.TimeWindow, existing []domain.TimeWindow) error {
	for _, e := range existing {
		if w.Overlaps(e) {
			r := domain.Reject(domain.RejectOverlap, "window %s overlaps existing %s", w, e).WithWindow(w)
			conflict := e
			r.Conflict = &conflict
			return r
		}
	}
	return nil
}

// at возвращает момент minutes от начала суток в дату day
func (v *Validator) at(day time.Time, minutes int) time.Time {
	return domain.DateOnly(day).Add(time.Duration(minutes) * time.Minute)
}

func (v *Validator) hoursString() string {
	opening, _ := types.FromMinutes(v.opening)
	closing, _ := types.FromMinutes(v.closing)
	return opening.String() + "-" + closing.String()
}

// minutesOfDay минуты от полуночи дня day до t (может быть больше 24*60)
func minutesOfDay(day, t time.Time) int {
	return int(t.Sub(domain.DateOnly(day)) / time.Minute)
}
