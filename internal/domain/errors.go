package domain

import "errors"

var (
	// ErrConfigurationMissing возвращается, если не задан токен или chat_id бота
	ErrConfigurationMissing = errors.New("domain: bot configuration missing")

	// ErrInvalidChatID возвращается при некорректном chat_id в конфигурации
	ErrInvalidChatID = errors.New("domain: invalid chat_id")

	// ErrInvalidButton возвращается при некорректной inline-кнопке
	ErrInvalidButton = errors.New("domain: invalid inline button")

	// ErrCallbackDataTooLong возвращается, если callback_data превышает лимит Telegram
	ErrCallbackDataTooLong = errors.New("domain: callback_data exceeds 64 bytes")

	// ErrCallbackDataCharset возвращается, если callback_data содержит недопустимые символы
	ErrCallbackDataCharset = errors.New("domain: callback_data contains unsupported characters")

	// ErrCallbackSubjectMissing возвращается, если после префикса callback_data нет идентификатора
	ErrCallbackSubjectMissing = errors.New("domain: callback_data has no subject id")
)
