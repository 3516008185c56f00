package normalize_window

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/timewindow"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/logger"
)

func normalize(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(timewindow.MustNew(timewindow.Config{}), logger.Nop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/windows/normalize", strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantStart string
		wantEnd   string
	}{
		{name: "start only uses default duration", body: `{"date":"2025-01-10","startTime":"10:00"}`, wantStart: "10:00", wantEnd: "10:45"},
		{name: "explicit duration", body: `{"date":"2025-01-10","startTime":"10:00","durationMinutes":90}`, wantStart: "10:00", wantEnd: "11:30"},
		{name: "start before opening", body: `{"date":"2025-01-10","startTime":"06:30"}`, wantStart: "08:00", wantEnd: "08:45"},
		{name: "end after closing", body: `{"date":"2025-01-10","startTime":"21:30"}`, wantStart: "21:30", wantEnd: "22:00"},
		{name: "clamped range", body: `{"date":"2025-01-10","startTime":"07:00","endTime":"23:00"}`, wantStart: "08:00", wantEnd: "22:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := normalize(t, tt.body)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp WindowResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStart, resp.StartTime)
			assert.Equal(t, tt.wantEnd, resp.EndTime)
		})
	}
}

func TestHandle_Rejections(t *testing.T) {
	rec := normalize(t, `{"date":"2025-01-10","startTime":"22:30","endTime":"23:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "out_of_hours")

	rec = normalize(t, `{"date":"2025-01-10","startTime":"25:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "malformed_time")

	rec = normalize(t, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
