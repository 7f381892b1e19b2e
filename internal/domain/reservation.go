package domain

import "time"

// ReservationStatus lifecycle status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusRejected  ReservationStatus = "rejected"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a booked appointment request
type Reservation struct {
	ID         int64
	ClientID   *int64 // set when the client has an account
	ClientName string
	Phone      string
	Email      string
	Address    string
	Date       time.Time // calendar date, time part ignored
	TimeSlot   string    // slot catalog id
	Service    string    // service style catalog id
	Notes      *string
	Status     ReservationStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive active reservations occupy their slot
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsTerminal terminal reservations admit no further transitions
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusRejected || r.Status == StatusCancelled
}

// CanTransitionTo reports whether the lifecycle permits the transition.
// pending -> confirmed | rejected | cancelled; confirmed -> cancelled.
// Terminal statuses admit nothing.
func (r *Reservation) CanTransitionTo(target ReservationStatus) bool {
	switch r.Status {
	case StatusPending:
		return target == StatusConfirmed || target == StatusRejected || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCancelled
	default:
		return false
	}
}

// ActiveStatuses statuses that occupy a slot
func ActiveStatuses() []ReservationStatus {
	return []ReservationStatus{StatusPending, StatusConfirmed}
}

// TerminalStatuses statuses that free the slot permanently
func TerminalStatuses() []ReservationStatus {
	return []ReservationStatus{StatusRejected, StatusCancelled}
}

// IsValidStatus reports whether the status is a known lifecycle status
func IsValidStatus(s ReservationStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// ReservationsFilter filter for listing reservations
type ReservationsFilter struct {
	Status     *ReservationStatus
	StartDate  *time.Time
	EndDate    *time.Time
	OnlyActive bool
}
