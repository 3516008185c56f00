package domain

import "time"

// BookingKind type of a booking
type BookingKind string

const (
	KindGymVisit    BookingKind = "gym_visit"
	KindTrainerSlot BookingKind = "trainer_slot"
)

// IsValid returns true for known kinds
func (k BookingKind) IsValid() bool {
	return k == KindGymVisit || k == KindTrainerSlot
}

// SubjectRole whose schedule a booking belongs to
type SubjectRole string

const (
	RoleClient  SubjectRole = "client"
	RoleTrainer SubjectRole = "trainer"
)

// Subject client or trainer
type Subject struct {
	Role SubjectRole
	ID   int64
}

// Client returns a client subject
func Client(id int64) Subject {
	return Subject{Role: RoleClient, ID: id}
}

// Trainer returns a trainer subject
func Trainer(id int64) Subject {
	return Subject{Role: RoleTrainer, ID: id}
}

// Booking persisted gym visit or trainer slot
type Booking struct {
	ID             int64
	Kind           BookingKind
	TrainerID      *int64
	ClientID       *int64
	SubscriptionID *int64
	BookingDate    time.Time
	Window         TimeWindow
	CreatedAt      time.Time
}

// ExistingBooking booking already present in the schedule, used for overlap and daily checks
type ExistingBooking struct {
	ID     int64
	Kind   BookingKind
	Window TimeWindow
}

// Windows extracts windows from bookings
func Windows(bookings []ExistingBooking) []TimeWindow {
	result := make([]TimeWindow, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, b.Window)
	}
	return result
}
