package normalize_window

import (
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

type WindowNormalizer interface {
	Clamp(w domain.TimeWindow) (domain.TimeWindow, error)
	DefaultWindow(start time.Time, duration time.Duration) domain.TimeWindow
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
