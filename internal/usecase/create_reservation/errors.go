package create_reservation

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	// (пустое имя/телефон, неверный формат email) — до любой логики
	// доступности и жизненного цикла
	ErrValidation = errors.New("create_reservation: validation failed")

	// ErrSlotUnavailable возвращается, когда запрошенная пара (дата, слот)
	// непригодна для брони: прошлое, блокировка владельца, выходной
	// или слот уже занят активной бронью
	ErrSlotUnavailable = errors.New("create_reservation: slot is not available")

	// ErrStoreUnavailable возвращается при сбое хранилища
	ErrStoreUnavailable = errors.New("create_reservation: store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
