package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	// Format формат времени HH:MM:SS (секундная точность)
	Format = "15:04:05"

	// ShortFormat формат HH:MM, допускается на входе и нормализуется до HH:MM:SS
	ShortFormat = "15:04"
)

var (
	// ErrInvalidFormat возвращается при некорректном формате строки времени
	ErrInvalidFormat = errors.New("types: invalid time string format")
)

// TimeString время суток в виде строки "HH:MM:SS".
// Нормализованные значения сравниваются лексикографически,
// поэтому IsBefore/IsAfter/Compare не требуют парсинга.
type TimeString string

// NewTimeString создает TimeString из time.Time (берется только время суток)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(Format))
}

// NewTimeStringFromString парсит строку "HH:MM:SS" или "HH:MM"
// и возвращает нормализованное значение "HH:MM:SS"
func NewTimeStringFromString(s string) (TimeString, error) {
	if t, err := time.Parse(Format, s); err == nil {
		return TimeString(t.Format(Format)), nil
	}
	if t, err := time.Parse(ShortFormat, s); err == nil {
		return TimeString(t.Format(Format)), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

// Validate проверяет, что значение является корректным временем "HH:MM:SS"
func (t TimeString) Validate() error {
	if _, err := time.Parse(Format, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// SecondsOfDay возвращает число секунд с начала суток
func (t TimeString) SecondsOfDay() (int, error) {
	parsed, err := time.Parse(Format, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return parsed.Hour()*3600 + parsed.Minute()*60 + parsed.Second(), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Compare возвращает -1/0/+1 при t < other / t == other / t > other
func (t TimeString) Compare(other TimeString) int {
	switch {
	case t.IsBefore(other):
		return -1
	case t.IsAfter(other):
		return 1
	default:
		return 0
	}
}

// AddMinutes возвращает время, сдвинутое на m минут вперед.
// Выход за пределы суток является ошибкой: значения не переносятся на следующий день.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	return t.AddSeconds(m * 60)
}

// AddSeconds возвращает время, сдвинутое на s секунд вперед
func (t TimeString) AddSeconds(s int) (TimeString, error) {
	total, err := t.SecondsOfDay()
	if err != nil {
		return "", err
	}

	total += s
	if total < 0 || total > 24*3600 {
		return "", fmt.Errorf("%w: result is outside of day bounds", ErrInvalidFormat)
	}
	// 24:00:00 как верхняя граница не представима, оставляем 23:59:59 вне
	// специальной обработки: границы слотов всегда лежат внутри суток
	if total == 24*3600 {
		return "", fmt.Errorf("%w: result crosses midnight", ErrInvalidFormat)
	}

	return TimeString(fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)), nil
}

// String реализует fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// Scan реализует sql.Scanner (колонки TIME приходят как time.Time или []byte)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidFormat, src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
