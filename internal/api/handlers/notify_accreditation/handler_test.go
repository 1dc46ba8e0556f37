package notify_accreditation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/get2b/Get2B-NotificationService/internal/service/bots"
	"github.com/get2b/Get2B-NotificationService/internal/service/managerbot"
	"github.com/get2b/Get2B-NotificationService/internal/service/telegram"
	"github.com/get2b/Get2B-NotificationService/internal/telegramtest"
	"github.com/get2b/Get2B-NotificationService/pkg/logger"
)

func newHandler(t *testing.T, srv *telegramtest.Server) *Handler {
	t.Helper()

	bot, err := managerbot.New(
		managerbot.Config{Token: "1:manager", ChatID: "-1001"},
		bots.TelegramFactory(telegram.WithAPIEndpoint(srv.Endpoint())),
		logger.Nop(),
		nil,
	)
	require.NoError(t, err)

	return NewHandler(func() (ManagerBot, error) { return bot, nil }, logger.Nop())
}

func serve(handle http.HandlerFunc, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handle(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	return rec
}

func TestHandleRequest_ZeroCountsPrinted(t *testing.T) {
	srv := telegramtest.NewServer(t)
	h := newHandler(t, srv)

	rec := serve(h.HandleRequest, `{"application_id":"app-1","supplier_name":"Acme","products_count":0}`)
	require.Equal(t, http.StatusOK, rec.Code)

	sent, ok := srv.Last()
	require.True(t, ok)
	assert.Equal(t, "-1001", sent.Param("chat_id"))
	assert.Contains(t, sent.Param("text"), "Товаров в заявке: 0")
	assert.Contains(t, sent.Param("reply_markup"), "accredit_view_app-1")
	assert.Contains(t, sent.Param("reply_markup"), "accredit_reject_app-1")
}

func TestHandleRequest_BadRequests(t *testing.T) {
	srv := telegramtest.NewServer(t)
	h := newHandler(t, srv)

	for _, body := range []string{
		`[]`,
		`{"supplier_name":"Acme"}`,
		`{"application_id":"app-1"}`,
		`{"application_id":"app-1","supplier_name":"Acme","products_count":-1}`,
	} {
		assert.Equal(t, http.StatusBadRequest, serve(h.HandleRequest, body).Code, body)
	}
	assert.Empty(t, srv.Requests())
}

func TestHandleDecision(t *testing.T) {
	srv := telegramtest.NewServer(t)
	h := newHandler(t, srv)

	rec := serve(h.HandleDecision, `{"application_id":"app-1","supplier_name":"Acme","approved":false,"reason":"нет сертификатов"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	sent, ok := srv.Last()
	require.True(t, ok)
	assert.Contains(t, sent.Param("text"), "нет сертификатов")
	assert.Empty(t, sent.Param("reply_markup"))

	assert.Equal(t, http.StatusBadRequest, serve(h.HandleDecision, `{"application_id":"app-1"}`).Code)
}

func TestHandleDecision_BestEffortByDefault(t *testing.T) {
	srv := telegramtest.NewServer(t)
	srv.FailWith("sendMessage", http.StatusBadRequest, "Bad Request: chat not found")
	h := newHandler(t, srv)

	rec := serve(h.HandleDecision, `{"application_id":"app-1","approved":true}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"delivered":false`)
}
