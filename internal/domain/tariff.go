package domain

import "github.com/shopspring/decimal"

// ClassLimit number of sessions a tariff allows per period
type ClassLimit string

const (
	ClassLimitEight     ClassLimit = "8"
	ClassLimitTwelve    ClassLimit = "12"
	ClassLimitUnlimited ClassLimit = "unlim"
)

// Sessions returns the finite session count, false for unlimited
func (c ClassLimit) Sessions() (int, bool) {
	switch c {
	case ClassLimitEight:
		return 8, true
	case ClassLimitTwelve:
		return 12, true
	default:
		return 0, false
	}
}

// TimeBand time-of-day restriction of a tariff
type TimeBand string

const (
	TimeBandMorning TimeBand = "mrn" // start before 16:00
	TimeBandEvening TimeBand = "evn" // start from 16:00
	TimeBandAnyTime TimeBand = "any"
)

// Period billing period of a tariff
type Period string

const (
	PeriodMonth    Period = "mnth"
	PeriodHalfYear Period = "half"
	PeriodYear     Period = "year"
)

// Months returns the period length in months
func (p Period) Months() int {
	switch p {
	case PeriodMonth:
		return 1
	case PeriodHalfYear:
		return 6
	case PeriodYear:
		return 12
	default:
		return 0
	}
}

// OneTimeCode canonical string of the single-visit tariff
const OneTimeCode = "one_time"

// TariffCode decoded tariff identifier
// Comparable, so it can be used as a map key in the catalog table
type TariffCode struct {
	ClassLimit ClassLimit
	TimeBand   TimeBand
	Period     Period
	OneTime    bool
}

// OneTimeTariff single-visit tariff
var OneTimeTariff = TariffCode{OneTime: true, ClassLimit: ClassLimitUnlimited, TimeBand: TimeBandAnyTime}

// String returns the canonical form: classKey_timeKey_periodKey or one_time
func (c TariffCode) String() string {
	if c.OneTime {
		return OneTimeCode
	}
	return string(c.ClassLimit) + "_" + string(c.TimeBand) + "_" + string(c.Period)
}

// IsZero returns true if no tariff is attached
func (c TariffCode) IsZero() bool {
	return c == TariffCode{}
}

// Multipliers price coefficients of a tariff
type Multipliers struct {
	Time          decimal.Decimal // k_time
	PeriodOrCount decimal.Decimal // k_period_or_n
}

// TariffTable tariff multiplier table
type TariffTable map[TariffCode]Multipliers
