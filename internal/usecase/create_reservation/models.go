package create_reservation

import "time"

// Request модель запроса на создание брони
type Request struct {
	ClientID   *int64    // ID клиента, nil пока карточка клиента не заведена
	ClientName string    // Имя клиента (обязательно)
	Phone      string    // Телефон (обязательно)
	Email      string    // Email (опционально, но формат проверяется)
	Address    string    // Адрес (опционально)
	Date       time.Time // Дата брони (без времени)
	TimeSlot   string    // ID слота каталога, например "09:00"
	Service    string    // ID услуги, например "mariage"
	Notes      *string   // Дополнительные заметки (опционально)

	// AdminEntry прямая запись администратора: бронь создается
	// сразу подтвержденной, минуя статус pending
	AdminEntry bool
}

// Response модель ответа с созданной бронью
type Response struct {
	ID         int64
	ClientID   *int64
	ClientName string
	Phone      string
	Email      string
	Address    string
	Date       time.Time
	TimeSlot   string
	Service    string
	Notes      *string
	Status     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
