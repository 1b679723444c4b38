package server

import (
	"crypto/subtle"
	"errors"
)

// Допустимые дни. "tommorow" - так исторически называется маршрут у клиентов.
const (
	DayToday    = "today"
	DayTomorrow = "tommorow"
)

// TokenHeader заголовок с секретом
const TokenHeader = "Token-Self"

var (
	ErrInvalidDay = errors.New("day type is not valid")
	ErrAuth       = errors.New("auth failed")
)

func IsValidDay(day string) bool {
	return day == DayToday || day == DayTomorrow
}

// IsValidToken пустой секрет не пускает никого
func IsValidToken(secret, token string) bool {
	if secret == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1
}

// validate сначала день, потом токен
func validate(secret, day, token string) error {
	if !IsValidDay(day) {
		return ErrInvalidDay
	}
	if !IsValidToken(secret, token) {
		return ErrAuth
	}
	return nil
}
