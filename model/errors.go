package model

import (
	"errors"
	"fmt"
)

// ErrGroupNotFound на странице со списком групп нет подходящей ссылки
var ErrGroupNotFound = errors.New("group not found")

// NetworkError сервер недоступен или ответил не 2xx
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError не удалось перекодировать ответ из cp1251
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ParseError в разметке нет ожидаемой таблицы
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse schedule: " + e.Reason
}
