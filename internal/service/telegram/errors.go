package telegram

import (
	"errors"
	"fmt"
	"net"
)

var (
	// ErrTokenRequired возвращается при создании транспорта без токена
	ErrTokenRequired = errors.New("service.telegram: bot token is required")

	// ErrTransport возвращается при любой ошибке обращения к Telegram Bot API
	ErrTransport = errors.New("service.telegram: transport failure")

	// ErrInvalidChatID возвращается при некорректном chat_id
	ErrInvalidChatID = errors.New("service.telegram: invalid chat_id")

	// ErrEmptyMessage возвращается при пустом тексте сообщения
	ErrEmptyMessage = errors.New("service.telegram: message text is empty")

	// ErrEmptyFile возвращается, если не указан документ, фото или file_id
	ErrEmptyFile = errors.New("service.telegram: file reference is empty")

	// ErrInvalidMarkup возвращается, если клавиатура не прошла проверку
	ErrInvalidMarkup = errors.New("service.telegram: invalid reply markup")

	// ErrFileUnavailable возвращается, если Telegram не вернул путь к файлу
	ErrFileUnavailable = errors.New("service.telegram: file is not available for download")
)

// APIError ошибка вызова метода Telegram Bot API.
// errors.Is(err, ErrTransport) истинно для любой APIError
type APIError struct {
	Method      string
	Code        int    // error_code из ответа Telegram, 0 для сетевых ошибок
	Description string // description из ответа Telegram
	Err         error
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("%s: %s: %s", ErrTransport, e.Method, e.Description)
	}
	return fmt.Sprintf("%s: %s: %v", ErrTransport, e.Method, e.Err)
}

func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

// Timeout сообщает, что вызов прерван по таймауту
func (e *APIError) Timeout() bool {
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}
