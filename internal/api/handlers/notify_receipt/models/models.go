package models

import (
	"errors"
	"strings"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

var (
	errUnknownKind      = errors.New("неизвестный тип уведомления по чеку")
	errMissingProjectID = errors.New("необходимо указать project_id")
	errMissingDocument  = errors.New("необходимо указать document_url")
)

// NotifyReceiptRequest HTTP запрос на уведомление менеджера о чеке.
// Kind выбирает сценарий: client_receipt_approval, receipt_approval,
// supplier_receipt_request или client_confirmation_request
type NotifyReceiptRequest struct {
	Kind          domain.NotificationKind `json:"kind"`
	ProjectID     string                  `json:"project_id"`
	DocumentURL   string                  `json:"document_url,omitempty"`
	Caption       string                  `json:"caption,omitempty"`
	FileName      string                  `json:"file_name,omitempty"`
	Email         string                  `json:"email,omitempty"`
	CompanyName   string                  `json:"company_name,omitempty"`
	Amount        float64                 `json:"amount,omitempty"`
	Currency      string                  `json:"currency,omitempty"`
	PaymentMethod string                  `json:"payment_method,omitempty"`
	Requisites    string                  `json:"requisites,omitempty"`
	Policy        string                  `json:"policy,omitempty"`
}

// Validate проверяет обязательные поля для выбранного сценария
func (r *NotifyReceiptRequest) Validate() error {
	switch r.Kind {
	case domain.KindClientReceiptApproval, domain.KindReceiptApproval,
		domain.KindSupplierReceiptRequest, domain.KindClientConfirmation:
	default:
		return errUnknownKind
	}

	if strings.TrimSpace(r.ProjectID) == "" {
		return errMissingProjectID
	}

	if (r.Kind == domain.KindClientReceiptApproval || r.Kind == domain.KindReceiptApproval) &&
		strings.TrimSpace(r.DocumentURL) == "" {
		return errMissingDocument
	}

	return nil
}

// ToClientReceiptApproval преобразует запрос в чек клиента
func (r *NotifyReceiptRequest) ToClientReceiptApproval() domain.ClientReceiptApproval {
	return domain.ClientReceiptApproval{
		ProjectRequestID: r.ProjectID,
		DocumentURL:      r.DocumentURL,
		Caption:          r.Caption,
	}
}

// ToReceiptApproval преобразует запрос в загруженный чек об оплате
func (r *NotifyReceiptRequest) ToReceiptApproval() domain.ReceiptApproval {
	return domain.ReceiptApproval{
		ProjectRequestID: r.ProjectID,
		ReceiptURL:       r.DocumentURL,
		FileName:         r.FileName,
	}
}

// ToSupplierReceiptRequest преобразует запрос в просьбу загрузить чек поставщика
func (r *NotifyReceiptRequest) ToSupplierReceiptRequest() domain.SupplierReceiptRequest {
	return domain.SupplierReceiptRequest{
		ProjectID:     r.ProjectID,
		Email:         r.Email,
		CompanyName:   r.CompanyName,
		Amount:        r.Amount,
		Currency:      r.Currency,
		PaymentMethod: r.PaymentMethod,
		Requisites:    r.Requisites,
	}
}

// ToClientConfirmationRequest преобразует запрос в просьбу прислать чек клиента
func (r *NotifyReceiptRequest) ToClientConfirmationRequest() domain.ClientConfirmationRequest {
	return domain.ClientConfirmationRequest{
		ProjectID:   r.ProjectID,
		Email:       r.Email,
		CompanyName: r.CompanyName,
	}
}
