package domain

import "time"

// ApprovalType вид объекта, который менеджер одобряет по проекту
type ApprovalType string

const (
	ApprovalSpec    ApprovalType = "spec"
	ApprovalReceipt ApprovalType = "receipt"
	ApprovalInvoice ApprovalType = "invoice"
)

// IsValid проверяет, что тип одобрения известен
func (t ApprovalType) IsValid() bool {
	switch t {
	case ApprovalSpec, ApprovalReceipt, ApprovalInvoice:
		return true
	default:
		return false
	}
}

// ClientReceiptApproval чек клиента, ожидающий одобрения менеджером
type ClientReceiptApproval struct {
	ProjectRequestID string
	DocumentURL      string
	Caption          string
}

// ProjectApproval запрос на одобрение спецификации, чека или инвойса по проекту
type ProjectApproval struct {
	ProjectID string
	Text      string
	Type      ApprovalType
}

// SupplierReceiptRequest запрос менеджеру на загрузку чека поставщика
type SupplierReceiptRequest struct {
	ProjectID     string
	Email         string
	CompanyName   string
	Amount        float64
	Currency      string
	PaymentMethod string
	Requisites    string
}

// ClientConfirmationRequest запрос чека, подтверждающего отправку средств
type ClientConfirmationRequest struct {
	ProjectID   string
	Email       string
	CompanyName string
}

// AccreditationRequest заявка поставщика на аккредитацию
type AccreditationRequest struct {
	ApplicationID       string
	SupplierName        string
	CompanyName         string
	Country             string
	Category            string
	UserEmail           string
	Notes               string
	ProductsCount       int
	CertificatesCount   int
	LegalDocumentsCount int
}

// AccreditationDecision итог рассмотрения заявки на аккредитацию
type AccreditationDecision struct {
	ApplicationID string
	SupplierName  string
	CompanyName   string
	ManagerName   string
	Approved      bool
	Reason        string // Только для отклонённых заявок
}

// ClientProfile данные созданного профиля клиента
type ClientProfile struct {
	UserID      string
	UserName    string
	UserEmail   string
	ProfileID   string
	CompanyName string
	LegalName   string
	INN         string
	KPP         string
	OGRN        string
	Address     string
	Email       string
	Phone       string
	BankName    string
	BankAccount string
	CorrAccount string
	BIK         string
}

// SupplierProfile данные созданного профиля поставщика
type SupplierProfile struct {
	UserID       string
	UserName     string
	UserEmail    string
	ProfileID    string
	CompanyName  string
	Category     string
	Country      string
	City         string
	Description  string
	ContactEmail string
	ContactPhone string
	Website      string
}

// AtomicConstructorApproval запрос на одобрение заявки из атомарного конструктора
type AtomicConstructorApproval struct {
	RequestID      string
	Text           string
	UserEmail      string
	UserName       string
	CurrentStage   int
	ActiveScenario string
}

// ReceiptApproval загруженный чек об оплате
type ReceiptApproval struct {
	ProjectRequestID string
	ReceiptURL       string
	FileName         string
}

// ChatMessage новое сообщение клиента в комнате проекта
type ChatMessage struct {
	RoomID      string
	ProjectID   string
	UserMessage string
	UserName    string
	ProjectName string
	CompanyName string
}

// ProjectDetails карточка проекта для менеджеров
type ProjectDetails struct {
	ProjectID     string
	ProjectName   string
	ProjectStatus string
	Amount        *float64
	Currency      string
	CompanyName   string
	CompanyEmail  string
	CreatedAt     time.Time
}
