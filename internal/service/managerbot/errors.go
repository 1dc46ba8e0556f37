package managerbot

import "errors"

var (
	// ErrUnknownApprovalType возвращается при неизвестном типе одобрения проекта
	ErrUnknownApprovalType = errors.New("service.managerbot: unknown approval type")

	// ErrEmptyText возвращается, если текст уведомления пуст
	ErrEmptyText = errors.New("service.managerbot: notification text is empty")
)
