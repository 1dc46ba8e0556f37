package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCallback(t *testing.T) {
	tests := []struct {
		data string
		want CallbackAction
		ok   bool
	}{
		{data: "approve_receipt_p1", want: CallbackAction{Prefix: CallbackApproveReceipt, SubjectID: "p1"}, ok: true},
		{data: "approve_client_receipt_p1", want: CallbackAction{Prefix: CallbackApproveClientReceipt, SubjectID: "p1"}, ok: true},
		{data: "accredit_reject_a-7", want: CallbackAction{Prefix: CallbackAccreditReject, SubjectID: "a-7"}, ok: true},
		{data: "approve_supplier_profile_u1", want: CallbackAction{Prefix: CallbackApproveSupplierProfile, SubjectID: "u1"}, ok: true},
		{data: "request_changes_atomic_r", want: CallbackAction{Prefix: CallbackRequestChangesAtomic, SubjectID: "r"}, ok: true},
		{data: "quick_reply_room_1_clarify", want: CallbackAction{Prefix: CallbackQuickReply, SubjectID: "room_1", Argument: "clarify"}, ok: true},
		{data: "quick_reply_room", ok: false},
		{data: "quick_reply_room_", ok: false},
		{data: "approve_receipt_", ok: false},
		{data: "something_else_1", ok: false},
		{data: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			got, ok := ParseCallback(tt.data)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCallback_RoundTrip(t *testing.T) {
	for _, prefix := range knownPrefixes {
		if prefix == CallbackQuickReply {
			continue
		}
		btn := CallbackButton("x", prefix, "subject-1")
		action, ok := ParseCallback(btn.CallbackData)
		require.True(t, ok, prefix)
		assert.Equal(t, prefix, action.Prefix)
		assert.Equal(t, "subject-1", action.SubjectID)
	}

	btn := QuickReplyButton("x", "room-9", QuickReplyOK)
	action, ok := ParseCallback(btn.CallbackData)
	require.True(t, ok)
	assert.Equal(t, "room-9", action.SubjectID)
	assert.Equal(t, string(QuickReplyOK), action.Argument)
}
