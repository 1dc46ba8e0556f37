package domain

// DeliveryPolicy определяет, что делать с ошибкой отправки
type DeliveryPolicy int

const (
	// DeliveryBestEffort ошибка логируется и не возвращается вызывающему коду
	DeliveryBestEffort DeliveryPolicy = iota
	// DeliveryStrict ошибка возвращается и прерывает бизнес-операцию вызывающего кода
	DeliveryStrict
)

func (p DeliveryPolicy) String() string {
	if p == DeliveryStrict {
		return "strict"
	}
	return "best_effort"
}

// NotificationKind тип уведомления
type NotificationKind string

const (
	KindText                      NotificationKind = "text"
	KindDocument                  NotificationKind = "document"
	KindPhoto                     NotificationKind = "photo"
	KindClientReceiptApproval     NotificationKind = "client_receipt_approval"
	KindReceiptApproval           NotificationKind = "receipt_approval"
	KindProjectApproval           NotificationKind = "project_approval"
	KindSupplierReceiptRequest    NotificationKind = "supplier_receipt_request"
	KindClientConfirmation        NotificationKind = "client_confirmation_request"
	KindAccreditationRequest      NotificationKind = "accreditation_request"
	KindAccreditationDecision     NotificationKind = "accreditation_decision"
	KindClientProfile             NotificationKind = "client_profile"
	KindSupplierProfile           NotificationKind = "supplier_profile"
	KindAtomicConstructorApproval NotificationKind = "atomic_constructor_approval"
	KindChatMessage               NotificationKind = "chat_message"
	KindProjectDetails            NotificationKind = "project_details"
	KindScenario                  NotificationKind = "scenario"
	KindCallbackAnswer            NotificationKind = "callback_answer"
	KindFileResolve               NotificationKind = "file_resolve"
)

// strictKinds уведомления, без которых необратимый переход (одобрение оплаты, проекта) не состоится
var strictKinds = map[NotificationKind]struct{}{
	KindClientReceiptApproval:     {},
	KindReceiptApproval:           {},
	KindProjectApproval:           {},
	KindAtomicConstructorApproval: {},
}

// PolicyFor возвращает политику доставки по умолчанию для типа уведомления
func PolicyFor(kind NotificationKind) DeliveryPolicy {
	if _, ok := strictKinds[kind]; ok {
		return DeliveryStrict
	}
	return DeliveryBestEffort
}
