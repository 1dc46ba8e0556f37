package notify_profile

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
		managerbot.Config{Token: "1:manager", ChatID: "-1001", BaseURL: "https://get2b.example"},
		bots.TelegramFactory(telegram.WithAPIEndpoint(srv.Endpoint())),
		logger.Nop(),
		nil,
	)
	require.NoError(t, err)

	return NewHandler(func() (ManagerBot, error) { return bot, nil }, logger.Nop())
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/notifications/profiles", strings.NewReader(body)))
	return rec
}

func TestHandle_ClientProfile(t *testing.T) {
	srv := telegramtest.NewServer(t)
	h := newHandler(t, srv)

	rec := post(h, `{"role":"client","profile_id":"prof-1","company_name":"ООО_Ромашка","inn":"7701234567"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	sent, ok := srv.Last()
	require.True(t, ok)
	assert.Equal(t, "Markdown", sent.Param("parse_mode"))
	assert.Contains(t, sent.Param("text"), `ООО\_Ромашка`)
	assert.Contains(t, sent.Param("reply_markup"), "view_client_profile_prof-1")
	assert.Contains(t, sent.Param("reply_markup"), "https://get2b.example/dashboard/profile")
}

func TestHandle_SupplierProfile(t *testing.T) {
	srv := telegramtest.NewServer(t)
	h := newHandler(t, srv)

	rec := post(h, `{"role":"supplier","profile_id":"prof-2","company_name":"Acme","country":"Китай"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	sent, ok := srv.Last()
	require.True(t, ok)
	assert.Contains(t, sent.Param("reply_markup"), "view_supplier_profile_prof-2")
}

func TestHandle_BadRequests(t *testing.T) {
	srv := telegramtest.NewServer(t)
	h := newHandler(t, srv)

	for _, body := range []string{
		`{"role":"admin","profile_id":"p"}`,
		`{"role":"client"}`,
		`{"role":"client","profile_id":"p","policy":"x"}`,
	} {
		assert.Equal(t, http.StatusBadRequest, post(h, body).Code, body)
	}
	assert.Empty(t, srv.Requests())
}
