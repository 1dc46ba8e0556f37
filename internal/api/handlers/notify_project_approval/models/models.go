package models

import (
	"errors"
	"strings"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

var (
	errMissingProjectID = errors.New("необходимо указать project_id")
	errMissingRequestID = errors.New("необходимо указать request_id")
	errMissingText      = errors.New("необходимо указать text")
	errUnknownType      = errors.New("type должен быть spec, receipt или invoice")
)

// ProjectApprovalRequest HTTP запрос на одобрение спецификации, чека или инвойса
type ProjectApprovalRequest struct {
	ProjectID string              `json:"project_id"`
	Text      string              `json:"text"`
	Type      domain.ApprovalType `json:"type,omitempty"`
	Policy    string              `json:"policy,omitempty"`
}

// Validate проверяет обязательные поля. Пустой type означает спецификацию
func (r *ProjectApprovalRequest) Validate() error {
	if strings.TrimSpace(r.ProjectID) == "" {
		return errMissingProjectID
	}
	if strings.TrimSpace(r.Text) == "" {
		return errMissingText
	}
	if r.Type != "" && !r.Type.IsValid() {
		return errUnknownType
	}
	return nil
}

// ToDomain преобразует HTTP модель в доменную
func (r *ProjectApprovalRequest) ToDomain() domain.ProjectApproval {
	return domain.ProjectApproval{
		ProjectID: r.ProjectID,
		Text:      r.Text,
		Type:      r.Type,
	}
}

// AtomicApprovalRequest HTTP запрос на одобрение заявки атомарного конструктора
type AtomicApprovalRequest struct {
	RequestID      string `json:"request_id"`
	Text           string `json:"text"`
	UserEmail      string `json:"user_email,omitempty"`
	UserName       string `json:"user_name,omitempty"`
	CurrentStage   int    `json:"current_stage,omitempty"`
	ActiveScenario string `json:"active_scenario,omitempty"`
	Policy         string `json:"policy,omitempty"`
}

// Validate проверяет обязательные поля
func (r *AtomicApprovalRequest) Validate() error {
	if strings.TrimSpace(r.RequestID) == "" {
		return errMissingRequestID
	}
	if strings.TrimSpace(r.Text) == "" {
		return errMissingText
	}
	return nil
}

// ToDomain преобразует HTTP модель в доменную
func (r *AtomicApprovalRequest) ToDomain() domain.AtomicConstructorApproval {
	return domain.AtomicConstructorApproval{
		RequestID:      r.RequestID,
		Text:           r.Text,
		UserEmail:      r.UserEmail,
		UserName:       r.UserName,
		CurrentStage:   r.CurrentStage,
		ActiveScenario: r.ActiveScenario,
	}
}
