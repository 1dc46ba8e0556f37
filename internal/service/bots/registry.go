package bots

import (
	"sync"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
	"github.com/get2b/Get2B-NotificationService/internal/service/bot"
	"github.com/get2b/Get2B-NotificationService/internal/service/chatbot"
	"github.com/get2b/Get2B-NotificationService/internal/service/managerbot"
	"github.com/get2b/Get2B-NotificationService/internal/service/scenario"
	"github.com/get2b/Get2B-NotificationService/internal/service/telegram"
)

// Settings конфигурация обоих ботов
type Settings struct {
	Manager managerbot.Config
	Chat    chatbot.Config
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для учёта уведомлений
type Metrics interface {
	IncNotification(bot, kind, result string)
}

// Registry хранит ботов процесса. Каждый бот создаётся при первом обращении
// и затем возвращается тот же экземпляр. Ошибка создания тоже запоминается до перезапуска процесса
type Registry struct {
	settings Settings
	factory  bot.TransportFactory
	logger   Logger
	metrics  Metrics

	managerOnce sync.Once
	manager     *managerbot.Service
	managerErr  error

	chatOnce sync.Once
	chat     *chatbot.Service
	chatErr  error

	scenarioOnce sync.Once
	scenario     *scenario.Notifier
}

// NewRegistry создаёт реестр. Боты при этом не создаются
func NewRegistry(settings Settings, factory bot.TransportFactory, logger Logger, m Metrics) *Registry {
	return &Registry{
		settings: settings,
		factory:  factory,
		logger:   logger,
		metrics:  m,
	}
}

// Manager возвращает менеджерского бота
func (r *Registry) Manager() (*managerbot.Service, error) {
	r.managerOnce.Do(func() {
		r.manager, r.managerErr = managerbot.New(r.settings.Manager, r.factory, r.logger, r.metrics)
		if r.managerErr != nil {
			r.logger.Warn("Failed to initialize manager bot: %v", r.managerErr)
		}
	})
	return r.manager, r.managerErr
}

// Chat возвращает чат-бота
func (r *Registry) Chat() (*chatbot.Service, error) {
	r.chatOnce.Do(func() {
		r.chat, r.chatErr = chatbot.New(r.settings.Chat, r.factory, r.logger, r.metrics)
		if r.chatErr != nil {
			r.logger.Warn("Failed to initialize chat bot: %v", r.chatErr)
		}
	})
	return r.chat, r.chatErr
}

// Scenario возвращает notifier сценариев. Менеджерский бот создаётся при первой отправке
func (r *Registry) Scenario() *scenario.Notifier {
	r.scenarioOnce.Do(func() {
		r.scenario = scenario.New(r.managerSender, r.logger)
	})
	return r.scenario
}

// Configured сообщает, какие боты настроены. Боты при этом не создаются
func (r *Registry) Configured() map[string]bool {
	_, managerErr := domain.NewBotIdentity(managerbot.Name, r.settings.Manager.Token, r.settings.Manager.ChatID)
	_, chatErr := domain.NewBotIdentity(chatbot.Name, r.settings.Chat.Token, r.settings.Chat.ChatID)

	return map[string]bool{
		managerbot.Name: managerErr == nil,
		chatbot.Name:    chatErr == nil,
	}
}

func (r *Registry) managerSender() (scenario.TextSender, error) {
	manager, err := r.Manager()
	if err != nil {
		return nil, err
	}
	return manager, nil
}

// TelegramFactory фабрика транспорта поверх tgbotapi.
// Имя бота добавляется к опциям, чтобы метрики различали ботов
func TelegramFactory(opts ...telegram.Option) bot.TransportFactory {
	return func(identity domain.BotIdentity) (bot.Transport, error) {
		options := append([]telegram.Option{}, opts...)
		options = append(options, telegram.WithName(identity.Name))

		svc, err := telegram.New(identity.Token, options...)
		if err != nil {
			return nil, err
		}
		return svc, nil
	}
}
