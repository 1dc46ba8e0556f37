package telegram

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

const (
	// DefaultTimeout таймаут одного вызова Telegram Bot API
	DefaultTimeout = 10 * time.Second

	methodSendMessage         = "sendMessage"
	methodSendDocument        = "sendDocument"
	methodSendPhoto           = "sendPhoto"
	methodAnswerCallbackQuery = "answerCallbackQuery"
	methodGetFile             = "getFile"
)

// Service транспорт Telegram Bot API для одного токена.
// Каждый вызов выполняет один HTTP запрос без повторов и очередей
type Service struct {
	bot     BotAPI
	token   string
	name    string
	metrics Metrics
}

type options struct {
	httpClient *http.Client
	timeout    time.Duration
	endpoint   string
	name       string
	metrics    Metrics
}

// Option настройка транспорта
type Option func(*options)

// WithHTTPClient задаёт HTTP клиент (таймаут клиента перезаписывается WithTimeout)
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// WithTimeout задаёт таймаут одного вызова
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithAPIEndpoint задаёт шаблон адреса API вида "https://host/bot%s/%s"
func WithAPIEndpoint(endpoint string) Option {
	return func(o *options) {
		if endpoint != "" {
			o.endpoint = endpoint
		}
	}
}

// WithName задаёт имя бота для логов и метрик
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithMetrics включает учёт вызовов
func WithMetrics(m Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// New создаёт транспорт для токена бота.
// Сетевых вызовов при создании нет: getMe не выполняется
func New(token string, opts ...Option) (*Service, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrTokenRequired
	}

	o := options{
		timeout:  DefaultTimeout,
		endpoint: tgbotapi.APIEndpoint,
		name:     "telegram",
	}
	for _, opt := range opts {
		opt(&o)
	}

	client := &http.Client{}
	if o.httpClient != nil {
		c := *o.httpClient
		client = &c
	}
	client.Timeout = o.timeout

	api := &tgbotapi.BotAPI{
		Token:  token,
		Client: client,
		Buffer: 100,
	}
	api.SetAPIEndpoint(o.endpoint)

	return &Service{
		bot:     api,
		token:   token,
		name:    o.name,
		metrics: o.metrics,
	}, nil
}

// SendMessage отправляет текстовое сообщение
func (s *Service) SendMessage(msg domain.OutboundMessage) (domain.SentMessage, error) {
	if msg.ChatID == 0 {
		return domain.SentMessage{}, ErrInvalidChatID
	}
	if strings.TrimSpace(msg.Text) == "" {
		return domain.SentMessage{}, ErrEmptyMessage
	}

	cfg := tgbotapi.NewMessage(msg.ChatID, msg.Text)
	cfg.ParseMode = string(msg.ParseMode)
	cfg.DisableWebPagePreview = msg.DisableWebPagePreview

	switch {
	case msg.HasButtons():
		markup, err := buildInlineKeyboard(msg.Keyboard)
		if err != nil {
			return domain.SentMessage{}, err
		}
		cfg.ReplyMarkup = markup
	case msg.ForceReply:
		cfg.ReplyMarkup = tgbotapi.ForceReply{ForceReply: true, Selective: true}
	}

	return s.send(methodSendMessage, cfg)
}

// SendDocument отправляет документ по URL или file_id
func (s *Service) SendDocument(doc domain.OutboundDocument) (domain.SentMessage, error) {
	if doc.ChatID == 0 {
		return domain.SentMessage{}, ErrInvalidChatID
	}
	if strings.TrimSpace(doc.Document) == "" {
		return domain.SentMessage{}, ErrEmptyFile
	}

	cfg := tgbotapi.NewDocument(doc.ChatID, fileReference(doc.Document))
	cfg.Caption = doc.Caption

	if !doc.Keyboard.IsEmpty() {
		markup, err := buildInlineKeyboard(doc.Keyboard)
		if err != nil {
			return domain.SentMessage{}, err
		}
		cfg.ReplyMarkup = markup
	}

	return s.send(methodSendDocument, cfg)
}

// SendPhoto отправляет изображение по URL или file_id
func (s *Service) SendPhoto(photo domain.OutboundPhoto) (domain.SentMessage, error) {
	if photo.ChatID == 0 {
		return domain.SentMessage{}, ErrInvalidChatID
	}
	if strings.TrimSpace(photo.Photo) == "" {
		return domain.SentMessage{}, ErrEmptyFile
	}

	cfg := tgbotapi.NewPhoto(photo.ChatID, fileReference(photo.Photo))
	cfg.Caption = photo.Caption
	cfg.ParseMode = string(photo.ParseMode)

	return s.send(methodSendPhoto, cfg)
}

// AnswerCallbackQuery отвечает на нажатие inline-кнопки.
// Telegram ждёт ответ несколько секунд, иначе у пользователя зависает индикатор загрузки
func (s *Service) AnswerCallbackQuery(answer domain.CallbackAnswer) error {
	cfg := tgbotapi.NewCallback(answer.QueryID, answer.Text)
	cfg.ShowAlert = answer.ShowAlert

	start := time.Now()
	resp, err := s.bot.Request(cfg)
	s.observe(methodAnswerCallbackQuery, err, time.Since(start))

	if err != nil {
		return wrapError(methodAnswerCallbackQuery, err)
	}

	// Проверяем успешность ответа
	if resp != nil && !resp.Ok {
		return &APIError{Method: methodAnswerCallbackQuery, Code: resp.ErrorCode, Description: resp.Description}
	}

	return nil
}

// GetFile получает путь к файлу на серверах Telegram
func (s *Service) GetFile(fileID string) (domain.TelegramFile, error) {
	if strings.TrimSpace(fileID) == "" {
		return domain.TelegramFile{}, ErrEmptyFile
	}

	start := time.Now()
	file, err := s.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	s.observe(methodGetFile, err, time.Since(start))

	if err != nil {
		return domain.TelegramFile{}, wrapError(methodGetFile, err)
	}

	if file.FilePath == "" {
		return domain.TelegramFile{}, fmt.Errorf("%w: file_id %s", ErrFileUnavailable, fileID)
	}

	return domain.TelegramFile{
		FileID:   file.FileID,
		FilePath: file.FilePath,
		FileSize: int64(file.FileSize),
	}, nil
}

// GetFileDownloadURL строит ссылку на скачивание файла, без сетевого вызова
func (s *Service) GetFileDownloadURL(filePath string) string {
	file := tgbotapi.File{FilePath: filePath}
	return file.Link(s.token)
}

// ResolveFileURL получает ссылку на скачивание по file_id (getFile + сборка URL)
func (s *Service) ResolveFileURL(fileID string) (string, error) {
	file, err := s.GetFile(fileID)
	if err != nil {
		return "", err
	}
	return s.GetFileDownloadURL(file.FilePath), nil
}

// send выполняет метод, возвращающий сообщение
func (s *Service) send(method string, c tgbotapi.Chattable) (domain.SentMessage, error) {
	start := time.Now()
	msg, err := s.bot.Send(c)
	s.observe(method, err, time.Since(start))

	if err != nil {
		return domain.SentMessage{}, wrapError(method, err)
	}

	sent := domain.SentMessage{MessageID: msg.MessageID}
	if msg.Chat != nil {
		sent.ChatID = msg.Chat.ID
	}
	return sent, nil
}

func (s *Service) observe(method string, err error, d time.Duration) {
	if s.metrics != nil {
		s.metrics.ObserveTelegramRequest(s.name, method, err, d)
	}
}

// wrapError приводит ошибку tgbotapi к APIError
func wrapError(method string, err error) error {
	apiErr := &APIError{Method: method, Err: err}

	var tgErr *tgbotapi.Error
	if errors.As(err, &tgErr) {
		apiErr.Code = tgErr.Code
		apiErr.Description = tgErr.Message
	}

	return apiErr
}

// fileReference отличает URL от file_id
func fileReference(ref string) tgbotapi.RequestFileData {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return tgbotapi.FileURL(ref)
	}
	return tgbotapi.FileID(ref)
}

// buildInlineKeyboard создает inline-клавиатуру, повторно проверяя каждую кнопку
func buildInlineKeyboard(keyboard domain.InlineKeyboard) (tgbotapi.InlineKeyboardMarkup, error) {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keyboard))

	for _, row := range keyboard {
		if len(row) == 0 {
			continue
		}

		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			if err := btn.Validate(); err != nil {
				return tgbotapi.InlineKeyboardMarkup{}, fmt.Errorf("%w: %w", ErrInvalidMarkup, err)
			}

			if btn.Kind() == domain.ButtonKindCallback {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(btn.Text, btn.CallbackData))
			} else {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonURL(btn.Text, btn.URL))
			}
		}
		rows = append(rows, buttons)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...), nil
}
