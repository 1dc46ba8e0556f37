package scenario

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
	"github.com/get2b/Get2B-NotificationService/pkg/logger"
	"github.com/get2b/Get2B-NotificationService/pkg/ptr"
)

type fakeSender struct {
	texts    []string
	policies []domain.DeliveryPolicy
	err      error
}

func (f *fakeSender) SendText(policy domain.DeliveryPolicy, text string) (domain.SentMessage, error) {
	f.texts = append(f.texts, text)
	f.policies = append(f.policies, policy)
	if f.err != nil {
		return domain.SentMessage{}, f.err
	}
	return domain.SentMessage{MessageID: 1}, nil
}

func providerOf(s *fakeSender) SenderProvider {
	return func() (TextSender, error) { return s, nil }
}

func TestNotify_Sends(t *testing.T) {
	sender := &fakeSender{}
	n := New(providerOf(sender), logger.Nop())

	ok := n.Notify(context.Background(), domain.ScenarioSelected, domain.ScenarioPayload{
		ScenarioName:   "Альтернативная оплата",
		ScenarioID:     "s-1",
		ProjectID:      "p-1",
		CreatorRole:    domain.RoleManager,
		BranchedAtStep: ptr.Ptr(6),
	})

	assert.True(t, ok)
	require.Len(t, sender.texts, 1)
	assert.Contains(t, sender.texts[0], "ВЫБРАН СЦЕНАРИЙ")
	assert.Contains(t, sender.texts[0], "Менеджер")
	assert.Contains(t, sender.texts[0], "Файлы")
}

func TestNotify_UnmappedStep(t *testing.T) {
	sender := &fakeSender{}
	n := New(providerOf(sender), logger.Nop())

	assert.True(t, n.Notify(context.Background(), domain.ScenarioCreated, domain.ScenarioPayload{ScenarioID: "s", BranchedAtStep: ptr.Ptr(12)}))
	assert.Contains(t, sender.texts[0], "Шаг 12")
}

func TestNotify_Failures(t *testing.T) {
	ctx := context.Background()

	failing := &fakeSender{err: errors.New("service.telegram: transport failure: sendMessage: Bad Request: chat not found")}
	assert.False(t, New(providerOf(failing), logger.Nop()).Notify(ctx, domain.ScenarioFrozen, domain.ScenarioPayload{ScenarioID: "s"}))

	unavailable := New(func() (TextSender, error) { return nil, domain.ErrConfigurationMissing }, logger.Nop())
	assert.False(t, unavailable.Notify(ctx, domain.ScenarioFrozen, domain.ScenarioPayload{ScenarioID: "s"}))

	sender := &fakeSender{}
	n := New(providerOf(sender), logger.Nop())
	assert.False(t, n.Notify(ctx, "scenario_deleted", domain.ScenarioPayload{ScenarioID: "s"}))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.False(t, n.Notify(cancelled, domain.ScenarioCreated, domain.ScenarioPayload{ScenarioID: "s"}))

	assert.Empty(t, sender.texts)
}
