package bots

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
	"github.com/get2b/Get2B-NotificationService/internal/service/chatbot"
	"github.com/get2b/Get2B-NotificationService/internal/service/managerbot"
	"github.com/get2b/Get2B-NotificationService/internal/service/telegram"
	"github.com/get2b/Get2B-NotificationService/internal/telegramtest"
	"github.com/get2b/Get2B-NotificationService/pkg/logger"
)

func newTestRegistry(t *testing.T, settings Settings) (*Registry, *telegramtest.Server) {
	t.Helper()

	srv := telegramtest.NewServer(t)
	factory := TelegramFactory(telegram.WithAPIEndpoint(srv.Endpoint()))
	return NewRegistry(settings, factory, logger.Nop(), nil), srv
}

func validSettings() Settings {
	return Settings{
		Manager: managerbot.Config{Token: "manager-token", ChatID: "-1001", BaseURL: "https://get2b.example"},
		Chat:    chatbot.Config{Token: "chat-token", ChatID: "-1002"},
	}
}

func TestRegistry_ReturnsSameInstance(t *testing.T) {
	r, srv := newTestRegistry(t, validSettings())

	m1, err := r.Manager()
	require.NoError(t, err)
	m2, err := r.Manager()
	require.NoError(t, err)
	assert.Same(t, m1, m2)

	c1, err := r.Chat()
	require.NoError(t, err)
	c2, err := r.Chat()
	require.NoError(t, err)
	assert.Same(t, c1, c2)

	assert.Same(t, r.Scenario(), r.Scenario())
	assert.Empty(t, srv.Requests())
}

func TestRegistry_ConcurrentFirstUse(t *testing.T) {
	r, _ := newTestRegistry(t, validSettings())

	const workers = 16
	results := make([]*managerbot.Service, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = r.Manager()
		}(i)
	}
	wg.Wait()

	for _, svc := range results {
		assert.Same(t, results[0], svc)
	}
}

func TestRegistry_BotsAreNotCrossWired(t *testing.T) {
	r, srv := newTestRegistry(t, validSettings())

	manager, err := r.Manager()
	require.NoError(t, err)
	chat, err := r.Chat()
	require.NoError(t, err)

	_, err = manager.SendText(domain.DeliveryStrict, "manager")
	require.NoError(t, err)
	_, err = chat.SendNotice(domain.DeliveryStrict, "chat")
	require.NoError(t, err)

	reqs := srv.RequestsFor("sendMessage")
	require.Len(t, reqs, 2)
	assert.Equal(t, "manager-token", reqs[0].Token)
	assert.Equal(t, "-1001", reqs[0].Param("chat_id"))
	assert.Equal(t, "chat-token", reqs[1].Token)
	assert.Equal(t, "-1002", reqs[1].Param("chat_id"))
}

func TestRegistry_MissingConfigurationIsCached(t *testing.T) {
	settings := validSettings()
	settings.Manager.Token = ""
	r, srv := newTestRegistry(t, settings)

	m, err := r.Manager()
	assert.Nil(t, m)
	assert.ErrorIs(t, err, domain.ErrConfigurationMissing)

	_, again := r.Manager()
	assert.Same(t, err, again)

	assert.False(t, r.Scenario().Notify(context.Background(), domain.ScenarioCreated, domain.ScenarioPayload{ScenarioID: "s"}))
	assert.Empty(t, srv.Requests())

	_, err = r.Chat()
	assert.NoError(t, err)
}

func TestRegistry_ScenarioUsesManagerBot(t *testing.T) {
	r, srv := newTestRegistry(t, validSettings())

	ok := r.Scenario().Notify(context.Background(), domain.ScenarioFrozen, domain.ScenarioPayload{
		ScenarioName: "A",
		ScenarioID:   "s",
		ProjectID:    "p",
		CreatorRole:  domain.RoleClient,
	})
	require.True(t, ok)

	req, _ := srv.Last()
	assert.Equal(t, "manager-token", req.Token)
	assert.Equal(t, "-1001", req.Param("chat_id"))
	assert.Contains(t, req.Param("text"), "ЗАМОРОЖЕН")
}

func TestRegistry_ConfiguredDoesNotCreateBots(t *testing.T) {
	settings := validSettings()
	settings.Chat.ChatID = "not-a-number"
	r, srv := newTestRegistry(t, settings)

	assert.Equal(t, map[string]bool{"manager": true, "chat": false}, r.Configured())
	assert.Empty(t, srv.Requests())

	_, err := r.Chat()
	assert.ErrorIs(t, err, domain.ErrInvalidChatID)
}
