package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

const (
	maxBodyBytes = 1 << 20

	msgInternalError = "внутренняя ошибка сервера"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// RejectionResponse тело ответа при отказе в операции
type RejectionResponse struct {
	Error     string         `json:"error"`
	Kind      string         `json:"kind"`
	Retryable bool           `json:"retryable"`
	Window    *WindowPayload `json:"window,omitempty"`
	Conflict  *WindowPayload `json:"conflict,omitempty"`
	Tariff    string         `json:"tariff,omitempty"`
	Limit     int            `json:"limit,omitempty"`
	Consumed  int            `json:"consumed,omitempty"`
}

// WindowPayload временное окно в ответе
type WindowPayload struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// NewWindowPayload конвертирует доменное окно
func NewWindowPayload(w domain.TimeWindow) *WindowPayload {
	return &WindowPayload{
		StartTime: w.Start.Format(domain.TimeFormat),
		EndTime:   w.End.Format(domain.TimeFormat),
	}
}

// DecodeJSON декодирует тело запроса, неизвестные поля запрещены
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// RespondJSON пишет ответ в JSON
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку с сообщением
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondRejection пишет структурированный отказ
// Ошибки ввода: 400, пересечение: 409, сбой хранилища или каталога: 503, остальные бизнес-правила: 422
func RespondRejection(w http.ResponseWriter, r *domain.Rejection) {
	resp := RejectionResponse{
		Error:     r.Error(),
		Kind:      string(r.Kind),
		Retryable: r.Retryable(),
		Tariff:    r.Tariff,
		Limit:     r.Limit,
		Consumed:  r.Consumed,
	}
	if r.Window != nil {
		resp.Window = NewWindowPayload(*r.Window)
	}
	if r.Conflict != nil {
		resp.Conflict = NewWindowPayload(*r.Conflict)
	}

	RespondJSON(w, RejectionStatus(r), resp)
}

// RejectionStatus HTTP статус для вида отказа
func RejectionStatus(r *domain.Rejection) int {
	switch r.Kind {
	case domain.RejectNoSubjectSelected,
		domain.RejectMalformedTime,
		domain.RejectInvertedWindow,
		domain.RejectOutOfHours,
		domain.RejectDurationOutOfRange,
		domain.RejectInvalidTariffSelection,
		domain.RejectMalformedTariffCode,
		domain.RejectInvertedFreezeRange:
		return http.StatusBadRequest
	case domain.RejectOverlap:
		return http.StatusConflict
	case domain.RejectNoSubscription, domain.RejectSubjectNotFound:
		return http.StatusNotFound
	}

	if r.Retryable() {
		return http.StatusServiceUnavailable
	}
	return http.StatusUnprocessableEntity
}
