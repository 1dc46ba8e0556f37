package notify_receipt

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/get2b/Get2B-NotificationService/internal/api/handlers"
	"github.com/get2b/Get2B-NotificationService/internal/domain"
	"github.com/get2b/Get2B-NotificationService/internal/service/bots"
	"github.com/get2b/Get2B-NotificationService/internal/service/managerbot"
	"github.com/get2b/Get2B-NotificationService/internal/service/telegram"
	"github.com/get2b/Get2B-NotificationService/internal/telegramtest"
	"github.com/get2b/Get2B-NotificationService/pkg/logger"
)

const managerChatID = "-1001"

func newManager(t *testing.T, srv *telegramtest.Server) ManagerProvider {
	t.Helper()

	bot, err := managerbot.New(
		managerbot.Config{Token: "1:manager", ChatID: managerChatID, BaseURL: "https://get2b.example"},
		bots.TelegramFactory(telegram.WithAPIEndpoint(srv.Endpoint())),
		logger.Nop(),
		nil,
	)
	require.NoError(t, err)

	return func() (ManagerBot, error) { return bot, nil }
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/receipts", strings.NewReader(body))
	h.Handle(rec, req)
	return rec
}

func TestHandle_ClientReceiptApproval(t *testing.T) {
	srv := telegramtest.NewServer(t)
	h := NewHandler(newManager(t, srv), logger.Nop())

	rec := post(h, `{"kind":"client_receipt_approval","project_id":"req-1","document_url":"https://files.example/r.pdf","caption":"Чек клиента"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.DeliveryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Delivered)
	assert.Equal(t, int64(-1001), resp.ChatID)

	sent := srv.RequestsFor("sendDocument")
	require.Len(t, sent, 1)
	assert.Equal(t, managerChatID, sent[0].Param("chat_id"))
	assert.Equal(t, "https://files.example/r.pdf", sent[0].Param("document"))
	assert.Contains(t, sent[0].Param("reply_markup"), "approve_client_receipt_req-1")
}

func TestHandle_SupplierReceiptAndConfirmation(t *testing.T) {
	srv := telegramtest.NewServer(t)
	h := NewHandler(newManager(t, srv), logger.Nop())

	rec := post(h, `{"kind":"supplier_receipt_request","project_id":"p-1","email":"a@b.c","amount":1500.5,"currency":"USD"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = post(h, `{"kind":"client_confirmation_request","project_id":"p-1","company_name":"ООО Ромашка"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	sent := srv.RequestsFor("sendMessage")
	require.Len(t, sent, 2)
	assert.Contains(t, sent[0].Param("reply_markup"), "upload_supplier_receipt_p-1")
	assert.Contains(t, sent[1].Param("reply_markup"), "force_reply")
}

func TestHandle_StrictFailureIsBadGateway(t *testing.T) {
	srv := telegramtest.NewServer(t)
	srv.FailWith("sendMessage", http.StatusBadRequest, "Bad Request: chat not found")
	h := NewHandler(newManager(t, srv), logger.Nop())

	rec := post(h, `{"kind":"receipt_approval","project_id":"p-1","document_url":"https://files.example/r.pdf"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandle_BestEffortFailureIsSwallowed(t *testing.T) {
	srv := telegramtest.NewServer(t)
	srv.FailWith("sendMessage", http.StatusBadRequest, "Bad Request: chat not found")
	h := NewHandler(newManager(t, srv), logger.Nop())

	rec := post(h, `{"kind":"receipt_approval","project_id":"p-1","document_url":"https://files.example/r.pdf","policy":"best_effort"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.DeliveryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Delivered)
}

func TestHandle_BadRequests(t *testing.T) {
	srv := telegramtest.NewServer(t)
	h := NewHandler(newManager(t, srv), logger.Nop())

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{`},
		{name: "unknown kind", body: `{"kind":"chat_message","project_id":"p-1"}`},
		{name: "missing project", body: `{"kind":"client_confirmation_request"}`},
		{name: "missing document", body: `{"kind":"client_receipt_approval","project_id":"p-1"}`},
		{name: "unknown policy", body: `{"kind":"client_confirmation_request","project_id":"p-1","policy":"maybe"}`},
		{name: "id unusable in button", body: `{"kind":"supplier_receipt_request","project_id":"p 1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, post(h, tt.body).Code)
		})
	}

	assert.Empty(t, srv.Requests())
}

func TestHandle_ManagerUnavailable(t *testing.T) {
	h := NewHandler(func() (ManagerBot, error) {
		return nil, domain.ErrConfigurationMissing
	}, logger.Nop())

	rec := post(h, `{"kind":"client_confirmation_request","project_id":"p-1"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
