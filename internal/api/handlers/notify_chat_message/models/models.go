package models

import (
	"errors"
	"strings"
	"time"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

var (
	errMissingRoomID    = errors.New("необходимо указать room_id")
	errMissingProjectID = errors.New("необходимо указать project_id")
	errMissingMessage   = errors.New("необходимо указать user_message")
)

// ChatMessageRequest HTTP запрос о новом сообщении клиента в комнате проекта
type ChatMessageRequest struct {
	RoomID      string `json:"room_id"`
	ProjectID   string `json:"project_id"`
	UserMessage string `json:"user_message"`
	UserName    string `json:"user_name,omitempty"`
	ProjectName string `json:"project_name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	Policy      string `json:"policy,omitempty"`
}

// Validate проверяет обязательные поля
func (r *ChatMessageRequest) Validate() error {
	if strings.TrimSpace(r.RoomID) == "" {
		return errMissingRoomID
	}
	if strings.TrimSpace(r.ProjectID) == "" {
		return errMissingProjectID
	}
	if strings.TrimSpace(r.UserMessage) == "" {
		return errMissingMessage
	}
	return nil
}

// ToDomain преобразует HTTP модель в доменную
func (r *ChatMessageRequest) ToDomain() domain.ChatMessage {
	return domain.ChatMessage{
		RoomID:      r.RoomID,
		ProjectID:   r.ProjectID,
		UserMessage: r.UserMessage,
		UserName:    r.UserName,
		ProjectName: r.ProjectName,
		CompanyName: r.CompanyName,
	}
}

// ProjectDetailsRequest HTTP запрос на отправку карточки проекта
type ProjectDetailsRequest struct {
	ProjectID     string    `json:"project_id"`
	ProjectName   string    `json:"project_name,omitempty"`
	ProjectStatus string    `json:"project_status,omitempty"`
	Amount        *float64  `json:"amount,omitempty"`
	Currency      string    `json:"currency,omitempty"`
	CompanyName   string    `json:"company_name,omitempty"`
	CompanyEmail  string    `json:"company_email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Policy        string    `json:"policy,omitempty"`
}

// Validate проверяет обязательные поля
func (r *ProjectDetailsRequest) Validate() error {
	if strings.TrimSpace(r.ProjectID) == "" {
		return errMissingProjectID
	}
	return nil
}

// ToDomain преобразует HTTP модель в доменную
func (r *ProjectDetailsRequest) ToDomain() domain.ProjectDetails {
	return domain.ProjectDetails{
		ProjectID:     r.ProjectID,
		ProjectName:   r.ProjectName,
		ProjectStatus: r.ProjectStatus,
		Amount:        r.Amount,
		Currency:      r.Currency,
		CompanyName:   r.CompanyName,
		CompanyEmail:  r.CompanyEmail,
		CreatedAt:     r.CreatedAt,
	}
}
