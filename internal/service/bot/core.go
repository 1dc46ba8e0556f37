package bot

import (
	"fmt"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
	"github.com/get2b/Get2B-NotificationService/pkg/metrics"
)

// Core общая часть сервисов ботов: идентичность, транспорт и политика доставки.
// chat_id назначения всегда берётся из идентичности, вызывающий код его не задаёт
type Core struct {
	identity  domain.BotIdentity
	transport Transport
	logger    Logger
	metrics   Metrics
}

// New создаёт ядро бота. Транспорт создаётся только для корректной идентичности
func New(identity domain.BotIdentity, factory TransportFactory, logger Logger, m Metrics) (*Core, error) {
	if identity.Token == "" || identity.ChatID == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrConfigurationMissing, identity)
	}

	transport, err := factory(identity)
	if err != nil {
		return nil, fmt.Errorf("%w for %s: %w", ErrTransportFactory, identity, err)
	}

	logger.Info("Bot %s initialized", identity)

	return &Core{
		identity:  identity,
		transport: transport,
		logger:    logger,
		metrics:   m,
	}, nil
}

// Identity возвращает идентичность бота
func (c *Core) Identity() domain.BotIdentity {
	return c.identity
}

// Deliver отправляет текстовое сообщение в чат бота
func (c *Core) Deliver(kind domain.NotificationKind, policy domain.DeliveryPolicy, msg domain.OutboundMessage) (domain.SentMessage, error) {
	msg.ChatID = c.identity.ChatID
	sent, err := c.transport.SendMessage(msg)
	return c.settle(kind, policy, sent, err)
}

// DeliverDocument отправляет документ в чат бота
func (c *Core) DeliverDocument(kind domain.NotificationKind, policy domain.DeliveryPolicy, doc domain.OutboundDocument) (domain.SentMessage, error) {
	doc.ChatID = c.identity.ChatID
	sent, err := c.transport.SendDocument(doc)
	return c.settle(kind, policy, sent, err)
}

// DeliverPhoto отправляет изображение в чат бота
func (c *Core) DeliverPhoto(kind domain.NotificationKind, policy domain.DeliveryPolicy, photo domain.OutboundPhoto) (domain.SentMessage, error) {
	photo.ChatID = c.identity.ChatID
	sent, err := c.transport.SendPhoto(photo)
	return c.settle(kind, policy, sent, err)
}

// AnswerCallback подтверждает нажатие inline-кнопки
func (c *Core) AnswerCallback(policy domain.DeliveryPolicy, answer domain.CallbackAnswer) error {
	err := c.transport.AnswerCallbackQuery(answer)
	_, err = c.settle(domain.KindCallbackAnswer, policy, domain.SentMessage{}, err)
	return err
}

// ResolveFile получает ссылку на скачивание файла, присланного в чат бота
func (c *Core) ResolveFile(fileID, fileName string) (domain.ResolvedFile, error) {
	url, err := c.transport.ResolveFileURL(fileID)
	if err != nil {
		c.count(domain.KindFileResolve, metrics.ResultFailed)
		c.logger.Error("Bot %s failed to resolve file %s: %v", c.identity, fileID, err)
		return domain.ResolvedFile{}, fmt.Errorf("resolve file %s: %w", fileID, err)
	}

	c.count(domain.KindFileResolve, metrics.ResultSent)
	return domain.ResolvedFile{URL: url, FileName: fileName}, nil
}

// settle применяет политику доставки к результату вызова транспорта
func (c *Core) settle(kind domain.NotificationKind, policy domain.DeliveryPolicy, sent domain.SentMessage, err error) (domain.SentMessage, error) {
	if err == nil {
		c.count(kind, metrics.ResultSent)
		c.logger.Debug("Bot %s delivered %s (message %d)", c.identity, kind, sent.MessageID)
		return sent, nil
	}

	if policy == domain.DeliveryStrict {
		c.count(kind, metrics.ResultFailed)
		c.logger.Error("Bot %s failed to deliver %s: %v", c.identity, kind, err)
		return domain.SentMessage{}, fmt.Errorf("%w: %s: %s: %w", ErrDeliveryFailed, c.identity.Name, kind, err)
	}

	c.count(kind, metrics.ResultSkipped)
	c.logger.Warn("Bot %s skipped %s after delivery error: %v", c.identity, kind, err)
	return domain.SentMessage{}, nil
}

func (c *Core) count(kind domain.NotificationKind, result string) {
	if c.metrics != nil {
		c.metrics.IncNotification(c.identity.Name, string(kind), result)
	}
}
