package domain

import (
	"sort"
	"strings"
)

// CallbackPrefix фиксированный префикс callback_data, к которому дописывается идентификатор
type CallbackPrefix string

const (
	CallbackApproveClientReceipt CallbackPrefix = "approve_client_receipt_"
	CallbackRejectClientReceipt  CallbackPrefix = "reject_client_receipt_"
	CallbackApproveReceipt       CallbackPrefix = "approve_receipt_"
	CallbackRejectReceipt        CallbackPrefix = "reject_receipt_"
	CallbackRequestNewReceipt    CallbackPrefix = "request_new_receipt_"
	CallbackApproveInvoice       CallbackPrefix = "approve_invoice_"
	CallbackRejectInvoice        CallbackPrefix = "reject_invoice_"
	CallbackApproveProject       CallbackPrefix = "approve_project_"
	CallbackRejectProject        CallbackPrefix = "reject_project_"
	CallbackUploadSupplierRcpt   CallbackPrefix = "upload_supplier_receipt_"

	CallbackAccreditView    CallbackPrefix = "accredit_view_"
	CallbackAccreditApprove CallbackPrefix = "accredit_approve_"
	CallbackAccreditReject  CallbackPrefix = "accredit_reject_"

	CallbackViewClientProfile      CallbackPrefix = "view_client_profile_"
	CallbackApproveClientProfile   CallbackPrefix = "approve_client_profile_"
	CallbackReviewClientProfile    CallbackPrefix = "review_client_profile_"
	CallbackViewSupplierProfile    CallbackPrefix = "view_supplier_profile_"
	CallbackApproveSupplierProfile CallbackPrefix = "approve_supplier_profile_"
	CallbackReviewSupplierProfile  CallbackPrefix = "review_supplier_profile_"

	CallbackApproveAtomic        CallbackPrefix = "approve_atomic_"
	CallbackRejectAtomic         CallbackPrefix = "reject_atomic_"
	CallbackRequestChangesAtomic CallbackPrefix = "request_changes_atomic_"

	CallbackOpenChat       CallbackPrefix = "open_chat_"
	CallbackProjectDetails CallbackPrefix = "project_details_"
	CallbackQuickReply     CallbackPrefix = "quick_reply_"
)

// QuickReplyKind быстрый ответ менеджера в чат проекта
type QuickReplyKind string

const (
	QuickReplyOK      QuickReplyKind = "ok"
	QuickReplyClarify QuickReplyKind = "clarify"
)

// QuickReplyButton кнопка быстрого ответа: quick_reply_<room>_<kind>
func QuickReplyButton(text, roomID string, kind QuickReplyKind) InlineButton {
	return CallbackButton(text, CallbackQuickReply, roomID+"_"+string(kind))
}

// CallbackAction разобранный callback_data
type CallbackAction struct {
	Prefix    CallbackPrefix
	SubjectID string // Идентификатор проекта, заявки, комнаты
	Argument  string // Вид быстрого ответа для quick_reply_
}

var knownPrefixes = func() []CallbackPrefix {
	prefixes := []CallbackPrefix{
		CallbackApproveClientReceipt, CallbackRejectClientReceipt,
		CallbackApproveReceipt, CallbackRejectReceipt, CallbackRequestNewReceipt,
		CallbackApproveInvoice, CallbackRejectInvoice,
		CallbackApproveProject, CallbackRejectProject,
		CallbackUploadSupplierRcpt,
		CallbackAccreditView, CallbackAccreditApprove, CallbackAccreditReject,
		CallbackViewClientProfile, CallbackApproveClientProfile, CallbackReviewClientProfile,
		CallbackViewSupplierProfile, CallbackApproveSupplierProfile, CallbackReviewSupplierProfile,
		CallbackApproveAtomic, CallbackRejectAtomic, CallbackRequestChangesAtomic,
		CallbackOpenChat, CallbackProjectDetails, CallbackQuickReply,
	}
	// Длинные префиксы проверяются первыми
	sort.SliceStable(prefixes, func(i, j int) bool { return len(prefixes[i]) > len(prefixes[j]) })
	return prefixes
}()

func hasKnownPrefix(data string) bool {
	for _, prefix := range knownPrefixes {
		if strings.HasPrefix(data, string(prefix)) {
			return true
		}
	}
	return false
}

// ParseCallback разбирает callback_data, собранный из известных префиксов
func ParseCallback(data string) (CallbackAction, bool) {
	for _, prefix := range knownPrefixes {
		rest, ok := strings.CutPrefix(data, string(prefix))
		if !ok || rest == "" {
			continue
		}

		if prefix == CallbackQuickReply {
			idx := strings.LastIndexByte(rest, '_')
			if idx <= 0 || idx == len(rest)-1 {
				return CallbackAction{}, false
			}
			return CallbackAction{Prefix: prefix, SubjectID: rest[:idx], Argument: rest[idx+1:]}, true
		}

		return CallbackAction{Prefix: prefix, SubjectID: rest}, true
	}

	return CallbackAction{}, false
}
