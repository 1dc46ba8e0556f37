package models

import (
	"errors"
	"strings"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
	"github.com/get2b/Get2B-NotificationService/pkg/ptr"
)

var (
	errMissingApplicationID = errors.New("необходимо указать application_id")
	errMissingSupplierName  = errors.New("необходимо указать supplier_name")
	errNegativeCount        = errors.New("количество не может быть отрицательным")
	errMissingApproved      = errors.New("необходимо указать approved")
)

// AccreditationRequest HTTP запрос о новой заявке на аккредитацию
type AccreditationRequest struct {
	ApplicationID       string `json:"application_id"`
	SupplierName        string `json:"supplier_name"`
	CompanyName         string `json:"company_name,omitempty"`
	Country             string `json:"country,omitempty"`
	Category            string `json:"category,omitempty"`
	UserEmail           string `json:"user_email,omitempty"`
	Notes               string `json:"notes,omitempty"`
	ProductsCount       int    `json:"products_count"`
	CertificatesCount   int    `json:"certificates_count"`
	LegalDocumentsCount int    `json:"legal_documents_count"`
	Policy              string `json:"policy,omitempty"`
}

// Validate проверяет обязательные поля
func (r *AccreditationRequest) Validate() error {
	if strings.TrimSpace(r.ApplicationID) == "" {
		return errMissingApplicationID
	}
	if strings.TrimSpace(r.SupplierName) == "" {
		return errMissingSupplierName
	}
	if r.ProductsCount < 0 || r.CertificatesCount < 0 || r.LegalDocumentsCount < 0 {
		return errNegativeCount
	}
	return nil
}

// ToDomain преобразует HTTP модель в доменную
func (r *AccreditationRequest) ToDomain() domain.AccreditationRequest {
	return domain.AccreditationRequest{
		ApplicationID:       r.ApplicationID,
		SupplierName:        r.SupplierName,
		CompanyName:         r.CompanyName,
		Country:             r.Country,
		Category:            r.Category,
		UserEmail:           r.UserEmail,
		Notes:               r.Notes,
		ProductsCount:       r.ProductsCount,
		CertificatesCount:   r.CertificatesCount,
		LegalDocumentsCount: r.LegalDocumentsCount,
	}
}

// DecisionRequest HTTP запрос об итоге рассмотрения заявки
type DecisionRequest struct {
	ApplicationID string `json:"application_id"`
	SupplierName  string `json:"supplier_name"`
	CompanyName   string `json:"company_name,omitempty"`
	ManagerName   string `json:"manager_name,omitempty"`
	Approved      *bool  `json:"approved"`
	Reason        string `json:"reason,omitempty"`
	Policy        string `json:"policy,omitempty"`
}

// Validate проверяет обязательные поля. Решение должно быть указано явно
func (r *DecisionRequest) Validate() error {
	if strings.TrimSpace(r.ApplicationID) == "" {
		return errMissingApplicationID
	}
	if r.Approved == nil {
		return errMissingApproved
	}
	return nil
}

// ToDomain преобразует HTTP модель в доменную. Причина нужна только при отклонении
func (r *DecisionRequest) ToDomain() domain.AccreditationDecision {
	d := domain.AccreditationDecision{
		ApplicationID: r.ApplicationID,
		SupplierName:  r.SupplierName,
		CompanyName:   r.CompanyName,
		ManagerName:   r.ManagerName,
		Approved:      ptr.PtrGet(r.Approved),
	}
	if !d.Approved {
		d.Reason = r.Reason
	}
	return d
}
