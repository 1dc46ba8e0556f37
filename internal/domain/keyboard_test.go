package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackData_FitsLimitWithUUID(t *testing.T) {
	id := uuid.NewString()

	for _, prefix := range knownPrefixes {
		data := string(prefix) + id
		assert.LessOrEqual(t, len(data), MaxCallbackDataBytes, data)
		assert.NoError(t, ValidateCallbackData(data), data)
	}

	for _, kind := range []QuickReplyKind{QuickReplyOK, QuickReplyClarify} {
		btn := QuickReplyButton("ok", id, kind)
		assert.NoError(t, btn.Validate())
	}
}

func TestValidateCallbackData(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{name: "simple", data: "approve_receipt_42"},
		{name: "dash", data: "open_chat_a-b-c"},
		{name: "exactly 64", data: strings.Repeat("a", 64)},
		{name: "65 bytes", data: strings.Repeat("a", 65), err: ErrCallbackDataTooLong},
		{name: "space", data: "approve_receipt_1 2", err: ErrCallbackDataCharset},
		{name: "cyrillic", data: "approve_receipt_проект", err: ErrCallbackDataCharset},
		{name: "colon", data: "approve:1", err: ErrCallbackDataCharset},
		{name: "bare prefix", data: "approve_client_receipt_", err: ErrCallbackSubjectMissing},
		{name: "quick reply without room", data: "quick_reply__ok", err: ErrCallbackSubjectMissing},
		{name: "quick reply without kind", data: "quick_reply_room", err: ErrCallbackSubjectMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCallbackData(tt.data)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestInlineButton_Kind(t *testing.T) {
	assert.Equal(t, ButtonKindCallback, InlineButton{Text: "a", CallbackData: "x"}.Kind())
	assert.Equal(t, ButtonKindURL, InlineButton{Text: "a", URL: "https://get2b.ru"}.Kind())
	assert.Equal(t, ButtonKindInvalid, InlineButton{Text: "a"}.Kind())
	assert.Equal(t, ButtonKindInvalid, InlineButton{Text: "a", CallbackData: "x", URL: "https://get2b.ru"}.Kind())
}

func TestInlineButton_Validate(t *testing.T) {
	assert.ErrorIs(t, InlineButton{CallbackData: "x"}.Validate(), ErrInvalidButton)
	assert.ErrorIs(t, URLButton("Открыть", "/relative/path").Validate(), ErrInvalidButton)
	assert.ErrorIs(t, URLButton("Открыть", "ftp://get2b.ru").Validate(), ErrInvalidButton)

	err := InlineButton{Text: "both", CallbackData: "x", URL: "https://get2b.ru"}.Validate()
	assert.ErrorIs(t, err, ErrInvalidButton)

	assert.NoError(t, URLButton("Открыть", "https://get2b.ru/dashboard").Validate())
	assert.NoError(t, QuickReplyButton("Ок", "room", QuickReplyOK).Validate())
}

func TestCallbackButton_EmptyIDRejected(t *testing.T) {
	err := CallbackButton("✅", CallbackApproveClientReceipt, "").Validate()
	assert.ErrorIs(t, err, ErrCallbackSubjectMissing)

	_, err = NewKeyboard().Row(CallbackButton("❌", CallbackRejectProject, "")).Build()
	assert.ErrorIs(t, err, ErrCallbackSubjectMissing)

	_, err = NewKeyboard().Row(QuickReplyButton("Ок", "", QuickReplyOK)).Build()
	assert.ErrorIs(t, err, ErrCallbackSubjectMissing)
}

func TestKeyboardBuilder(t *testing.T) {
	keyboard, err := NewKeyboard().
		Row(CallbackButton("✅", CallbackApproveProject, "p1"), CallbackButton("❌", CallbackRejectProject, "p1")).
		Row().
		Row(URLButton("🔗", "https://get2b.ru/p1")).
		Build()
	require.NoError(t, err)
	require.Len(t, keyboard, 2)
	assert.Len(t, keyboard[0], 2)
	assert.False(t, keyboard.IsEmpty())

	_, err = NewKeyboard().
		Row(CallbackButton("ok", CallbackApproveProject, "p1")).
		Row(CallbackButton("bad", CallbackRejectProject, "p 1")).
		Build()
	assert.ErrorIs(t, err, ErrCallbackDataCharset)
	assert.Contains(t, err.Error(), "row 1 button 0")

	assert.True(t, InlineKeyboard{{}, nil}.IsEmpty())
}
