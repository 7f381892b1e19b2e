package create_reservation

import (
	"time"

	"github.com/avelinemakeup/AM-BookingService/internal/domain"
	createReservation "github.com/avelinemakeup/AM-BookingService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ClientID   *int64  `json:"clientId,omitempty"`
	ClientName string  `json:"clientName"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email,omitempty"`
	Address    string  `json:"address,omitempty"`
	Date       string  `json:"date"`     // "2025-06-10"
	TimeSlot   string  `json:"timeSlot"` // "09:00"
	Service    string  `json:"service"`  // "mariage"
	Notes      *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64   `json:"id"`
	ClientID   *int64  `json:"clientId,omitempty"`
	ClientName string  `json:"clientName"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email,omitempty"`
	Address    string  `json:"address,omitempty"`
	Date       string  `json:"date"`
	TimeSlot   string  `json:"timeSlot"`
	SlotLabel  string  `json:"slotLabel"`
	Service    string  `json:"service"`
	Notes      *string `json:"notes,omitempty"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(adminEntry bool) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		ClientID:   r.ClientID,
		ClientName: r.ClientName,
		Phone:      r.Phone,
		Email:      r.Email,
		Address:    r.Address,
		Date:       date,
		TimeSlot:   r.TimeSlot,
		Service:    r.Service,
		Notes:      r.Notes,
		AdminEntry: adminEntry,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ID,
		ClientID:   resp.ClientID,
		ClientName: resp.ClientName,
		Phone:      resp.Phone,
		Email:      resp.Email,
		Address:    resp.Address,
		Date:       resp.Date.Format(domain.DateFormat),
		TimeSlot:   resp.TimeSlot,
		SlotLabel:  domain.SlotLabel(resp.TimeSlot),
		Service:    resp.Service,
		Notes:      resp.Notes,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
