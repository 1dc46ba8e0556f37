package handle_update

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

const (
	defaultUserName = "Пользователь"

	ackUnknown  = "⚠️ Неизвестное действие"
	ackAccepted = "⏳ Запрос принят"
	fileReply   = "📎 Файл %s получен"
	fileFailed  = "⚠️ Не удалось получить файл, отправьте его ещё раз"
)

var callbackAcks = map[domain.CallbackPrefix]string{
	domain.CallbackApproveClientReceipt:   "✅ Обрабатываем одобрение чека...",
	domain.CallbackRejectClientReceipt:    "❌ Обрабатываем отклонение чека...",
	domain.CallbackApproveReceipt:         "✅ Обрабатываем подтверждение оплаты...",
	domain.CallbackRejectReceipt:          "❌ Обрабатываем отклонение чека...",
	domain.CallbackRequestNewReceipt:      "📋 Запрашиваем новый чек...",
	domain.CallbackApproveInvoice:         "✅ Обрабатываем одобрение инвойса...",
	domain.CallbackRejectInvoice:          "❌ Обрабатываем отклонение инвойса...",
	domain.CallbackApproveProject:         "✅ Обрабатываем одобрение проекта...",
	domain.CallbackRejectProject:          "❌ Обрабатываем отклонение проекта...",
	domain.CallbackUploadSupplierRcpt:     "📤 Ответьте на сообщение файлом чека",
	domain.CallbackAccreditView:           "📋 Загружаем заявку...",
	domain.CallbackAccreditApprove:        "✅ Обрабатываем одобрение...",
	domain.CallbackAccreditReject:         "❌ Обрабатываем отклонение...",
	domain.CallbackApproveClientProfile:   "✅ Профиль отмечен как корректный",
	domain.CallbackReviewClientProfile:    "❌ Профиль отправлен на проверку",
	domain.CallbackApproveSupplierProfile: "✅ Профиль отмечен как корректный",
	domain.CallbackReviewSupplierProfile:  "❌ Профиль отправлен на проверку",
	domain.CallbackApproveAtomic:          "✅ Обрабатываем одобрение заявки...",
	domain.CallbackRejectAtomic:           "❌ Обрабатываем отклонение заявки...",
	domain.CallbackRequestChangesAtomic:   "📋 Запрашиваем изменения...",
	domain.CallbackOpenChat:               "💬 Открываем чат проекта...",
	domain.CallbackProjectDetails:         "📋 Загружаем детали проекта...",
}

// UseCase обрабатывает webhook update одного бота
type UseCase struct {
	provider BotProvider
	logger   Logger
}

// New создаёт use case обработки обновлений
func New(provider BotProvider, logger Logger) *UseCase {
	return &UseCase{
		provider: provider,
		logger:   logger,
	}
}

// Execute обрабатывает update. Возвращает ответ, который нужно записать в тело ответа webhook,
// или nil, если отвечать нечего.
// Каждый callback query подтверждается ровно один раз
func (uc *UseCase) Execute(ctx context.Context, update tgbotapi.Update) (tgbotapi.Chattable, error) {
	switch {
	case update.CallbackQuery != nil:
		return nil, uc.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		return uc.handleMessage(ctx, update.Message)
	default:
		return nil, nil
	}
}

func (uc *UseCase) handleMessage(_ context.Context, msg *tgbotapi.Message) (tgbotapi.Chattable, error) {
	if msg.Chat == nil {
		return nil, nil
	}

	switch {
	case domain.IsCommand(msg.Text):
		b, err := uc.provider()
		if err != nil {
			return nil, fmt.Errorf("usecase.HandleUpdate: bot unavailable: %w", err)
		}

		cmd := domain.ParseCommand(msg.Text)
		uc.logger.Info("Command %s from chat %d", cmd.Verb, msg.Chat.ID)

		reply := tgbotapi.NewMessage(msg.Chat.ID, b.CommandResponse(cmd, userName(msg.From)))
		reply.ParseMode = tgbotapi.ModeMarkdown
		reply.DisableWebPagePreview = true
		return reply, nil

	case msg.Document != nil:
		return uc.handleFile(msg, msg.Document.FileID, msg.Document.FileName)

	case len(msg.Photo) > 0:
		// Последний размер самый крупный
		photo := msg.Photo[len(msg.Photo)-1]
		return uc.handleFile(msg, photo.FileID, photo.FileUniqueID+".jpg")

	default:
		return nil, nil
	}
}

func (uc *UseCase) handleFile(msg *tgbotapi.Message, fileID, fileName string) (tgbotapi.Chattable, error) {
	b, err := uc.provider()
	if err != nil {
		return nil, fmt.Errorf("usecase.HandleUpdate: bot unavailable: %w", err)
	}

	// Неполученный файл (например, больше 20 МБ) не возвращает ошибку: update всё равно подтверждается
	text := fileFailed
	file, err := b.ResolveFile(fileID, fileName)
	if err != nil {
		uc.logger.Warn("Failed to resolve file %s from chat %d: %v", fileID, msg.Chat.ID, err)
	} else {
		uc.logger.Info("File %s received in chat %d: %s", file.FileName, msg.Chat.ID, file.URL)
		text = fmt.Sprintf(fileReply, file.FileName)
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ReplyToMessageID = msg.MessageID
	return reply, nil
}

func (uc *UseCase) handleCallback(_ context.Context, query *tgbotapi.CallbackQuery) error {
	b, err := uc.provider()
	if err != nil {
		return fmt.Errorf("usecase.HandleUpdate: bot unavailable: %w", err)
	}

	answer := domain.CallbackAnswer{QueryID: query.ID, Text: ackUnknown}

	action, ok := domain.ParseCallback(query.Data)
	if ok {
		answer.Text = uc.ackText(b, action)
		uc.logger.Info("Callback %s for %s received", action.Prefix, action.SubjectID)
	} else {
		uc.logger.Warn("Unknown callback data %q", query.Data)
	}

	// Ошибка подтверждения не прерывает обработку update
	if err := b.AnswerCallbackQuery(domain.DeliveryBestEffort, answer); err != nil {
		uc.logger.Warn("Failed to answer callback %s: %v", query.ID, err)
	}

	return nil
}

func (uc *UseCase) ackText(b Bot, action domain.CallbackAction) string {
	if action.Prefix == domain.CallbackQuickReply {
		replier, ok := b.(QuickReplier)
		if !ok {
			return ackUnknown
		}

		text, err := replier.QuickReplyResponse(domain.QuickReplyKind(action.Argument))
		if err != nil {
			uc.logger.Warn("Quick reply for room %s: %v", action.SubjectID, err)
			return ackUnknown
		}
		return text
	}

	if text, ok := callbackAcks[action.Prefix]; ok {
		return text
	}
	return ackAccepted
}

func userName(from *tgbotapi.User) string {
	if from == nil || from.FirstName == "" {
		return defaultUserName
	}
	return from.FirstName
}
