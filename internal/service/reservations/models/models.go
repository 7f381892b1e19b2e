package models

import (
	"errors"
	"time"

	"github.com/avelinemakeup/AM-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListReservationsRequest запрос на получение списка броней
type ListReservationsRequest struct {
	Status    *string    `json:"status,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID           int64   `json:"id"`
	ClientID     *int64  `json:"clientId,omitempty"`
	ClientName   string  `json:"clientName"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Address      string  `json:"address,omitempty"`
	Date         string  `json:"date"`     // "2025-06-10"
	TimeSlot     string  `json:"timeSlot"` // "09:00"
	SlotLabel    string  `json:"slotLabel"`
	Service      string  `json:"service"`
	ServiceLabel string  `json:"serviceLabel"`
	Notes        *string `json:"notes,omitempty"`
	Status       string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO.
// Подписи слота и услуги подставляются из каталога; для неизвестных
// id каталог молча возвращает сам id.
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:           r.ID,
		ClientID:     r.ClientID,
		ClientName:   r.ClientName,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		Date:         r.Date.Format(domain.DateFormat),
		TimeSlot:     r.TimeSlot,
		SlotLabel:    domain.SlotLabel(r.TimeSlot),
		Service:      r.Service,
		ServiceLabel: domain.ServiceLabel(r.Service),
		Notes:        r.Notes,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if dto := FromDomainReservation(r); dto != nil {
			resp.Reservations = append(resp.Reservations, *dto)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
