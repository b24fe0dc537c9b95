package booking

import (
	"net/http"
	"time"

	"github.com/talentbook/talentbook-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "booking not found")
	ErrTalentNotFound  = apperror.New(http.StatusNotFound, "talent not found")
	ErrInvalidInterval = apperror.New(http.StatusBadRequest, "end time must be after start time")
	ErrPastBooking     = apperror.New(http.StatusBadRequest, "cannot book in the past")
	ErrTooShort        = apperror.New(http.StatusBadRequest, "minimum booking duration is 30 minutes")
	ErrTooLong         = apperror.New(http.StatusBadRequest, "maximum booking duration is 24 hours")
	ErrSlotConflict    = apperror.New(http.StatusConflict, "talent is already booked during this time")
	ErrInvalidState    = apperror.New(http.StatusBadRequest, "booking has already been resolved")
	ErrExpiredBooking  = apperror.New(http.StatusBadRequest, "booking start time has already passed; the booking has been cancelled")
	ErrInvalidAction   = apperror.New(http.StatusBadRequest, "action must be accept or reject")
)

// Duration bounds enforced at creation and reschedule.
const (
	MinDuration = 30 * time.Minute
	MaxDuration = 24 * time.Hour
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Booking occupies a half-open time slot [StartTime, EndTime) on a talent's
// calendar. Talent and requesting user are held by reference only; the
// Talent* fields are read-only display data joined from the store.
type Booking struct {
	ID              string
	UserID          string
	TalentID        string
	TalentSkill     string
	TalentFirstName string
	TalentLastName  string
	StartTime       time.Time
	EndTime         time.Time
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// share any instant: s1 < e2 && s2 < e1. Touching endpoints do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// RequestBlocking is the status set that blocks a new booking request:
// everything that has not been cancelled or rejected.
func RequestBlocking() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

// ConfirmBlocking is the status set that blocks a confirmation. Pending
// bookings do not block each other here; the first one confirmed wins.
func ConfirmBlocking() []Status {
	return []Status{StatusConfirmed}
}
