package domain

import (
	"errors"
	"fmt"
)

// RejectionKind machine-readable reason a request was refused
type RejectionKind string

const (
	// Input errors
	RejectNoSubjectSelected  RejectionKind = "no_subject_selected"
	RejectMalformedTime      RejectionKind = "malformed_time"
	RejectInvertedWindow     RejectionKind = "inverted_window"
	RejectOutOfHours         RejectionKind = "out_of_hours"
	RejectDurationOutOfRange RejectionKind = "duration_out_of_range"

	// Business rules
	RejectOverlap                RejectionKind = "overlap"
	RejectTariffTimeMismatch     RejectionKind = "tariff_time_mismatch"
	RejectUnsupportedTariffBand  RejectionKind = "unsupported_tariff_band"
	RejectDailyLimitExceeded     RejectionKind = "daily_limit_exceeded"
	RejectQuotaExhausted         RejectionKind = "quota_exhausted"
	RejectInvalidTariffSelection RejectionKind = "invalid_tariff_selection"
	RejectMalformedTariffCode    RejectionKind = "malformed_tariff_code"
	RejectUnknownTariff          RejectionKind = "unknown_tariff"
	RejectInvertedFreezeRange    RejectionKind = "inverted_freeze_range"
	RejectFreezeBeforeStart      RejectionKind = "freeze_before_subscription_start"
	RejectFreezeAfterEnd         RejectionKind = "freeze_after_subscription_end"
	RejectNoSubscription         RejectionKind = "no_subscription"
	RejectSubscriptionInactive   RejectionKind = "subscription_inactive"
	RejectSubscriptionExpired    RejectionKind = "subscription_expired"
	RejectSubscriptionFrozen     RejectionKind = "subscription_frozen"
	RejectSubjectNotFound        RejectionKind = "subject_not_found"

	// Collaborator failures
	RejectCatalogUnavailable RejectionKind = "catalog_unavailable"
	RejectPersistenceFailure RejectionKind = "persistence_failure"
)

// Rejection structured refusal; implements error and matches sentinels by Kind
type Rejection struct {
	Kind     RejectionKind
	Message  string
	Window   *TimeWindow // offending window, if any
	Conflict *TimeWindow // existing window it collided with
	Tariff   string
	Limit    int
	Consumed int
}

func (r *Rejection) Error() string {
	if r.Message == "" {
		return string(r.Kind)
	}
	return string(r.Kind) + ": " + r.Message
}

// Is matches any Rejection of the same kind
func (r *Rejection) Is(target error) bool {
	t, ok := target.(*Rejection)
	if !ok {
		return false
	}
	return t.Kind == r.Kind
}

// Retryable returns true for transient collaborator failures
func (r *Rejection) Retryable() bool {
	return r.Kind == RejectPersistenceFailure || r.Kind == RejectCatalogUnavailable
}

// Reject builds a rejection with a formatted message
func Reject(kind RejectionKind, format string, args ...interface{}) *Rejection {
	return &Rejection{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithWindow attaches the offending window
func (r *Rejection) WithWindow(w TimeWindow) *Rejection {
	r.Window = &w
	return r
}

// WithTariff attaches the tariff code
func (r *Rejection) WithTariff(code TariffCode) *Rejection {
	r.Tariff = code.String()
	return r
}

// AsRejection extracts a rejection from an error chain
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// Sentinels for errors.Is
var (
	ErrNoSubjectSelected      = &Rejection{Kind: RejectNoSubjectSelected}
	ErrMalformedTime          = &Rejection{Kind: RejectMalformedTime}
	ErrInvertedWindow         = &Rejection{Kind: RejectInvertedWindow}
	ErrOutOfHours             = &Rejection{Kind: RejectOutOfHours}
	ErrDurationOutOfRange     = &Rejection{Kind: RejectDurationOutOfRange}
	ErrOverlap                = &Rejection{Kind: RejectOverlap}
	ErrTariffTimeMismatch     = &Rejection{Kind: RejectTariffTimeMismatch}
	ErrUnsupportedTariffBand  = &Rejection{Kind: RejectUnsupportedTariffBand}
	ErrDailyLimitExceeded     = &Rejection{Kind: RejectDailyLimitExceeded}
	ErrQuotaExhausted         = &Rejection{Kind: RejectQuotaExhausted}
	ErrInvalidTariffSelection = &Rejection{Kind: RejectInvalidTariffSelection}
	ErrMalformedTariffCode    = &Rejection{Kind: RejectMalformedTariffCode}
	ErrUnknownTariff          = &Rejection{Kind: RejectUnknownTariff}
	ErrInvertedFreezeRange    = &Rejection{Kind: RejectInvertedFreezeRange}
	ErrFreezeBeforeStart      = &Rejection{Kind: RejectFreezeBeforeStart}
	ErrFreezeAfterEnd         = &Rejection{Kind: RejectFreezeAfterEnd}
	ErrNoSubscription         = &Rejection{Kind: RejectNoSubscription}
	ErrSubscriptionInactive   = &Rejection{Kind: RejectSubscriptionInactive}
	ErrSubscriptionExpired    = &Rejection{Kind: RejectSubscriptionExpired}
	ErrSubscriptionFrozen     = &Rejection{Kind: RejectSubscriptionFrozen}
	ErrSubjectNotFound        = &Rejection{Kind: RejectSubjectNotFound}
	ErrCatalogUnavailable     = &Rejection{Kind: RejectCatalogUnavailable}
	ErrPersistenceFailure     = &Rejection{Kind: RejectPersistenceFailure}
)

// ErrInvariant internal invariant violation; a programming error, never shown as a rejection
var ErrInvariant = errors.New("domain: invariant violation")
