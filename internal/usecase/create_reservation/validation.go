package create_reservation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/avelinemakeup/AM-BookingService/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateRequest валидирует входные данные запроса.
// Выполняется до любых обращений к хранилищам: некорректный запрос
// не должен доходить до логики доступности.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: client name is required", ErrValidation)
	}
	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: client name is too long", ErrValidation)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}

	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}

	if len(req.Address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address is too long", ErrValidation)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}

	if req.TimeSlot == "" {
		return fmt.Errorf("%w: timeSlot is required", ErrValidation)
	}
	if _, ok := domain.SlotByID(req.TimeSlot); !ok {
		return fmt.Errorf("%w: unknown time slot %q", ErrValidation, req.TimeSlot)
	}

	if strings.TrimSpace(req.Service) == "" {
		return fmt.Errorf("%w: service is required", ErrValidation)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrValidation)
	}

	return nil
}
