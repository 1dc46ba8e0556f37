package models

import (
	"errors"
	"strings"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

const (
	RoleClient   = "client"
	RoleSupplier = "supplier"
)

var (
	errUnknownRole      = errors.New("role должен быть client или supplier")
	errMissingProfileID = errors.New("необходимо указать profile_id")
)

// ProfileRequest HTTP запрос о созданном профиле клиента или поставщика.
// Поля, не относящиеся к роли, игнорируются
type ProfileRequest struct {
	Role        string `json:"role"`
	UserID      string `json:"user_id,omitempty"`
	UserName    string `json:"user_name,omitempty"`
	UserEmail   string `json:"user_email,omitempty"`
	ProfileID   string `json:"profile_id"`
	CompanyName string `json:"company_name,omitempty"`
	Policy      string `json:"policy,omitempty"`

	// Клиент
	LegalName   string `json:"legal_name,omitempty"`
	INN         string `json:"inn,omitempty"`
	KPP         string `json:"kpp,omitempty"`
	OGRN        string `json:"ogrn,omitempty"`
	Address     string `json:"address,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	BankName    string `json:"bank_name,omitempty"`
	BankAccount string `json:"bank_account,omitempty"`
	CorrAccount string `json:"corr_account,omitempty"`
	BIK         string `json:"bik,omitempty"`

	// Поставщик
	Category     string `json:"category,omitempty"`
	Country      string `json:"country,omitempty"`
	City         string `json:"city,omitempty"`
	Description  string `json:"description,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Website      string `json:"website,omitempty"`
}

// Validate проверяет роль и идентификатор профиля
func (r *ProfileRequest) Validate() error {
	if r.Role != RoleClient && r.Role != RoleSupplier {
		return errUnknownRole
	}
	if strings.TrimSpace(r.ProfileID) == "" {
		return errMissingProfileID
	}
	return nil
}

// Kind тип уведомления для роли
func (r *ProfileRequest) Kind() domain.NotificationKind {
	if r.Role == RoleSupplier {
		return domain.KindSupplierProfile
	}
	return domain.KindClientProfile
}

// ToClientProfile преобразует запрос в профиль клиента
func (r *ProfileRequest) ToClientProfile() domain.ClientProfile {
	return domain.ClientProfile{
		UserID:      r.UserID,
		UserName:    r.UserName,
		UserEmail:   r.UserEmail,
		ProfileID:   r.ProfileID,
		CompanyName: r.CompanyName,
		LegalName:   r.LegalName,
		INN:         r.INN,
		KPP:         r.KPP,
		OGRN:        r.OGRN,
		Address:     r.Address,
		Email:       r.Email,
		Phone:       r.Phone,
		BankName:    r.BankName,
		BankAccount: r.BankAccount,
		CorrAccount: r.CorrAccount,
		BIK:         r.BIK,
	}
}

// ToSupplierProfile преобразует запрос в профиль поставщика
func (r *ProfileRequest) ToSupplierProfile() domain.SupplierProfile {
	return domain.SupplierProfile{
		UserID:       r.UserID,
		UserName:     r.UserName,
		UserEmail:    r.UserEmail,
		ProfileID:    r.ProfileID,
		CompanyName:  r.CompanyName,
		Category:     r.Category,
		Country:      r.Country,
		City:         r.City,
		Description:  r.Description,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Website:      r.Website,
	}
}
