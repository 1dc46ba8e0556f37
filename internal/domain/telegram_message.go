package domain

// ParseMode режим парсинга текста в Telegram
type ParseMode string

// ParseMode константы для режимов парсинга текста в Telegram
const (
	ParseModeHTML     ParseMode = "HTML"     // HTML форматирование
	ParseModeMarkdown ParseMode = "Markdown" // Markdown форматирование (legacy, используется ботами Get2B)
	ParseModePlain    ParseMode = ""         // Без форматирования
)

// OutboundMessage текстовое сообщение для отправки через Telegram Bot API.
// ChatID заполняется сервисом бота из его идентичности, значение вызывающего кода перезаписывается
type OutboundMessage struct {
	ChatID                int64
	Text                  string
	ParseMode             ParseMode
	Keyboard              InlineKeyboard
	ForceReply            bool // Просит клиент Telegram открыть поле ответа (reply)
	DisableWebPagePreview bool
}

// HasButtons проверяет, есть ли inline-кнопки
func (m *OutboundMessage) HasButtons() bool {
	return !m.Keyboard.IsEmpty()
}

// WithParseMode устанавливает режим парсинга и возвращает сообщение (builder pattern)
func (m OutboundMessage) WithParseMode(mode ParseMode) OutboundMessage {
	m.ParseMode = mode
	return m
}

// OutboundDocument документ (URL или file_id) с подписью
type OutboundDocument struct {
	ChatID   int64
	Document string
	Caption  string
	Keyboard InlineKeyboard
}

// OutboundPhoto изображение (URL или file_id) с подписью
type OutboundPhoto struct {
	ChatID    int64
	Photo     string
	Caption   string
	ParseMode ParseMode
}

// CallbackAnswer ответ на нажатие inline-кнопки
type CallbackAnswer struct {
	QueryID   string
	Text      string
	ShowAlert bool // Модальное окно вместо всплывающей подсказки
}

// SentMessage результат успешной отправки
type SentMessage struct {
	MessageID int   `json:"message_id"`
	ChatID    int64 `json:"chat_id"`
}

// TelegramFile метаданные файла на серверах Telegram
type TelegramFile struct {
	FileID   string
	FilePath string
	FileSize int64
}

// ResolvedFile файл, для которого получена ссылка на скачивание
type ResolvedFile struct {
	URL      string `json:"file_url"`
	FileName string `json:"file_name"`
}
