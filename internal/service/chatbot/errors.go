package chatbot

import "errors"

var (
	// ErrEmptyText возвращается, если текст уведомления пуст
	ErrEmptyText = errors.New("service.chatbot: notification text is empty")

	// ErrUnknownQuickReply возвращается для неизвестного вида быстрого ответа
	ErrUnknownQuickReply = errors.New("service.chatbot: unknown quick reply")
)
