package get_schedule

import (
	"context"
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/bookings/models"
)

type ScheduleService interface {
	GetClientSchedule(ctx context.Context, clientID int64, date time.Time) (*models.ScheduleResponse, error)
	GetTrainerSchedule(ctx context.Context, trainerID int64, date time.Time) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
