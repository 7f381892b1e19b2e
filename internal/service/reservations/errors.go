package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidTransition возвращается при попытке перехода из
	// терминального статуса или в неизвестный статус
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrSlotUnavailable возвращается, когда подтверждение заявки
	// невозможно: слот уже занят другой активной бронью
	ErrSlotUnavailable = errors.New("slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStoreUnavailable возвращается при сбое хранилища
	ErrStoreUnavailable = errors.New("reservation store unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
