package chatbot

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
	"github.com/get2b/Get2B-NotificationService/internal/service/bot"
	"github.com/get2b/Get2B-NotificationService/internal/service/telegram"
	"github.com/get2b/Get2B-NotificationService/internal/telegramtest"
	"github.com/get2b/Get2B-NotificationService/pkg/logger"
)

const testChatID = "-1005555"

func testFactory(srv *telegramtest.Server, calls *int) bot.TransportFactory {
	return func(identity domain.BotIdentity) (bot.Transport, error) {
		*calls++
		svc, err := telegram.New(identity.Token, telegram.WithAPIEndpoint(srv.Endpoint()), telegram.WithName(identity.Name))
		if err != nil {
			return nil, err
		}
		return svc, nil
	}
}

func newTestService(t *testing.T) (*Service, *telegramtest.Server) {
	t.Helper()

	srv := telegramtest.NewServer(t)
	calls := 0
	svc, err := New(Config{Token: "chat-token", ChatID: testChatID}, testFactory(srv, &calls), logger.Nop(), nil)
	require.NoError(t, err)

	return svc, srv
}

func TestNew_MissingConfiguration(t *testing.T) {
	srv := telegramtest.NewServer(t)
	calls := 0

	_, err := New(Config{ChatID: testChatID}, testFactory(srv, &calls), logger.Nop(), nil)
	assert.ErrorIs(t, err, domain.ErrConfigurationMissing)

	_, err = New(Config{Token: "chat-token", ChatID: "group"}, testFactory(srv, &calls), logger.Nop(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidChatID)

	assert.Zero(t, calls)
	assert.Empty(t, srv.Requests())
}

func TestNotifyChatMessage(t *testing.T) {
	svc, srv := newTestService(t)

	_, err := svc.NotifyChatMessage(domain.DeliveryBestEffort, domain.ChatMessage{
		RoomID:      "room-1",
		ProjectID:   "p-1",
		UserMessage: "Когда отгрузка?",
		UserName:    "Иван",
	})
	require.NoError(t, err)

	req, ok := srv.Last()
	require.True(t, ok)
	assert.Equal(t, testChatID, req.Param("chat_id"))
	assert.Equal(t, "HTML", req.Param("parse_mode"))
	assert.Equal(t, "true", req.Param("disable_web_page_preview"))
	assert.Contains(t, req.Param("text"), "🆔 Проект: p-1")

	markup := req.Param("reply_markup")
	assert.Contains(t, markup, "open_chat_room-1")
	assert.Contains(t, markup, "project_details_p-1")
	assert.Contains(t, markup, "quick_reply_room-1_ok")
	assert.Contains(t, markup, "quick_reply_room-1_clarify")
}

func TestNotifyChatMessage_InvalidRoom(t *testing.T) {
	svc, srv := newTestService(t)

	_, err := svc.NotifyChatMessage(domain.DeliveryBestEffort, domain.ChatMessage{RoomID: "room/1", ProjectID: "p"})
	assert.ErrorIs(t, err, domain.ErrCallbackDataCharset)
	assert.Empty(t, srv.Requests())
}

func TestService_AlwaysSendsToConfiguredChat(t *testing.T) {
	svc, srv := newTestService(t)

	_, err := svc.SendProjectDetails(domain.DeliveryStrict, domain.ProjectDetails{ProjectID: "p", CreatedAt: time.Now()})
	require.NoError(t, err)
	_, err = svc.SendNotice(domain.DeliveryStrict, "notice")
	require.NoError(t, err)
	_, err = svc.SendPhoto(domain.DeliveryStrict, "https://files.example/a.png", "*фото*")
	require.NoError(t, err)

	reqs := srv.Requests()
	require.Len(t, reqs, 3)
	for _, req := range reqs {
		assert.Equal(t, testChatID, req.Param("chat_id"), req.Method)
	}
	assert.Equal(t, "Markdown", reqs[2].Param("parse_mode"))
}

func TestSendNotice_BestEffortSwallowsFailure(t *testing.T) {
	svc, srv := newTestService(t)
	srv.FailWith("sendMessage", http.StatusForbidden, "Forbidden: bot was kicked from the group chat")

	sent, err := svc.SendNotice(domain.DeliveryBestEffort, "notice")
	assert.NoError(t, err)
	assert.Zero(t, sent.MessageID)

	_, err = svc.SendNotice(domain.DeliveryStrict, "notice")
	assert.ErrorContains(t, err, "bot was kicked")

	_, err = svc.SendNotice(domain.DeliveryStrict, "")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestQuickReplyResponse(t *testing.T) {
	svc, _ := newTestService(t)

	text, err := svc.QuickReplyResponse(domain.QuickReplyOK)
	require.NoError(t, err)
	assert.Contains(t, text, "Все в порядке")

	_, err = svc.QuickReplyResponse("later")
	assert.ErrorIs(t, err, ErrUnknownQuickReply)
}

func TestCommandResponse(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Contains(t, svc.CommandResponse(domain.ParseCommand("/start"), "Олег"), "Привет, Олег!")
	assert.Contains(t, svc.CommandResponse(domain.ParseCommand("/unknown"), "Олег"), "Неизвестная команда: /unknown")
}

func TestResolveFile_Error(t *testing.T) {
	svc, srv := newTestService(t)
	srv.FailWith("getFile", http.StatusBadRequest, "Bad Request: invalid file_id")

	_, err := svc.ResolveFile("bad", "a.pdf")
	assert.ErrorIs(t, err, telegram.ErrTransport)
}
