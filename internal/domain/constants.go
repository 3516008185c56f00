package domain

// Operating hours and slot defaults
const (
	DefaultOpeningTime         = "08:00"
	DefaultClosingTime         = "22:00"
	DefaultSlotDurationMinutes = 45
	MinSlotDurationMinutes     = 15
	MaxSlotDurationMinutes     = 240 // 4 hours
)

// TimeBandBoundary граница между утренним и вечерним тарифом
const TimeBandBoundary = "16:00"

// MaxDailyBookingsLimited количество бронирований в день для тарифов с ограничением занятий
const MaxDailyBookingsLimited = 1

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
