package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

const timeStringLayout = "15:04"

// TimeString время в формате "HH:MM" (например, "09:00")
// Используется для хранения времени слота без привязки к дате и таймзоне
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero проверяет, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// ToTime парсит значение в time.Time (дата — нулевая)
func (t TimeString) ToTime() (time.Time, error) {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed, nil
}

// At совмещает время с календарной датой в локации даты
func (t TimeString) At(date time.Time) (time.Time, error) {
	parsed, err := t.ToTime()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		date.Location(),
	), nil
}

// IsBefore проверяет, что время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.ToTime()
	if err != nil {
		return "", err
	}
	return NewTimeString(parsed.Add(time.Duration(minutes) * time.Minute)), nil
}
