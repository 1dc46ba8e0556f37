package models

import (
	"errors"
	"strings"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

const (
	BotManager = "manager"
	BotChat    = "chat"
)

var (
	errUnknownBot      = errors.New("bot должен быть manager или chat")
	errEmptyMessage    = errors.New("необходимо указать text или файл")
	errPhotoForManager = errors.New("бот менеджеров не отправляет изображения, используйте document_url")
	errDocumentForChat = errors.New("чат-бот не отправляет документы, используйте photo_url")
)

// SendMessageRequest HTTP запрос на отправку произвольного сообщения в чат бота
type SendMessageRequest struct {
	Bot         string `json:"bot"`
	Text        string `json:"text,omitempty"`
	DocumentURL string `json:"document_url,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Caption     string `json:"caption,omitempty"`
	Policy      string `json:"policy,omitempty"`
}

// Validate проверяет сочетание бота и содержимого
func (r *SendMessageRequest) Validate() error {
	switch r.Bot {
	case BotManager:
		if r.PhotoURL != "" {
			return errPhotoForManager
		}
	case BotChat:
		if r.DocumentURL != "" {
			return errDocumentForChat
		}
	default:
		return errUnknownBot
	}

	if strings.TrimSpace(r.Text) == "" && r.DocumentURL == "" && r.PhotoURL == "" {
		return errEmptyMessage
	}
	return nil
}

// Kind тип уведомления по содержимому запроса
func (r *SendMessageRequest) Kind() domain.NotificationKind {
	switch {
	case r.DocumentURL != "":
		return domain.KindDocument
	case r.PhotoURL != "":
		return domain.KindPhoto
	default:
		return domain.KindText
	}
}
