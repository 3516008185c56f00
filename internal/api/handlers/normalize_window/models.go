package normalize_window

import (
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/types"
)

// NormalizeWindowRequest HTTP request model
// Без endTime окно строится от startTime на durationMinutes (или длительность по умолчанию)
type NormalizeWindowRequest struct {
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime,omitempty"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
}

// WindowResponse HTTP response model
type WindowResponse struct {
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

type parsedRequest struct {
	start    time.Time
	end      *time.Time
	duration time.Duration
}

func (r *NormalizeWindowRequest) parse() (*parsedRequest, *domain.Rejection) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, domain.Reject(domain.RejectMalformedTime, "date %q, expected YYYY-MM-DD", r.Date)
	}
	if r.DurationMinutes < 0 {
		return nil, domain.Reject(domain.RejectDurationOutOfRange, "duration %d must not be negative", r.DurationMinutes)
	}

	start, err := onDate(r.StartTime, date)
	if err != nil {
		return nil, domain.Reject(domain.RejectMalformedTime, "start time: %v", err)
	}

	parsed := &parsedRequest{start: start, duration: time.Duration(r.DurationMinutes) * time.Minute}
	if r.EndTime != "" {
		end, err := onDate(r.EndTime, date)
		if err != nil {
			return nil, domain.Reject(domain.RejectMalformedTime, "end time: %v", err)
		}
		parsed.end = &end
	}
	return parsed, nil
}

func onDate(s string, date time.Time) (time.Time, error) {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		return time.Time{}, err
	}
	return ts.OnDate(date)
}

func fromWindow(w domain.TimeWindow) *WindowResponse {
	return &WindowResponse{
		Date:            w.Start.Format(domain.DateFormat),
		StartTime:       w.Start.Format(domain.TimeFormat),
		EndTime:         w.End.Format(domain.TimeFormat),
		DurationMinutes: int(w.Duration() / time.Minute),
	}
}
