package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// MaxCallbackDataBytes лимит Telegram на длину callback_data
const MaxCallbackDataBytes = 64

// ButtonKind вариант inline-кнопки
type ButtonKind int

const (
	ButtonKindInvalid ButtonKind = iota
	ButtonKindCallback
	ButtonKindURL
)

// InlineButton представляет inline-кнопку в Telegram.
// Ровно одно из полей CallbackData или URL должно быть заполнено
type InlineButton struct {
	Text         string `json:"text"`                    // Текст кнопки
	CallbackData string `json:"callback_data,omitempty"` // Токен, который вернётся в webhook
	URL          string `json:"url,omitempty"`           // URL для перехода
}

// CallbackButton кнопка с callback_data вида <prefix><id>.
// Проверка откладывается до KeyboardBuilder.Build
func CallbackButton(text string, prefix CallbackPrefix, id string) InlineButton {
	return InlineButton{Text: text, CallbackData: string(prefix) + id}
}

// URLButton кнопка-ссылка, проверка откладывается до KeyboardBuilder.Build
func URLButton(text, link string) InlineButton {
	return InlineButton{Text: text, URL: link}
}

// Kind возвращает вариант кнопки
func (b InlineButton) Kind() ButtonKind {
	switch {
	case b.CallbackData != "" && b.URL == "":
		return ButtonKindCallback
	case b.URL != "" && b.CallbackData == "":
		return ButtonKindURL
	default:
		return ButtonKindInvalid
	}
}

// Validate проверяет взаимоисключаемость вариантов и ограничения Telegram
func (b InlineButton) Validate() error {
	if strings.TrimSpace(b.Text) == "" {
		return fmt.Errorf("%w: empty text", ErrInvalidButton)
	}

	switch b.Kind() {
	case ButtonKindCallback:
		return ValidateCallbackData(b.CallbackData)
	case ButtonKindURL:
		u, err := url.Parse(b.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %q: url must be absolute http(s)", ErrInvalidButton, b.Text)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q: exactly one of callback_data and url must be set", ErrInvalidButton, b.Text)
	}
}

// ValidateCallbackData проверяет длину и алфавит callback_data
func ValidateCallbackData(data string) error {
	if len(data) > MaxCallbackDataBytes {
		return fmt.Errorf("%w: %d bytes in %q", ErrCallbackDataTooLong, len(data), data)
	}

	for _, r := range data {
		if !isCallbackRune(r) {
			return fmt.Errorf("%w: %q in %q", ErrCallbackDataCharset, r, data)
		}
	}

	// Данные с известным префиксом должны разбираться обратно в действие
	if hasKnownPrefix(data) {
		if _, ok := ParseCallback(data); !ok {
			return fmt.Errorf("%w: %q", ErrCallbackSubjectMissing, data)
		}
	}

	return nil
}

func isCallbackRune(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '-' || r == '_'
}

// InlineKeyboard строки inline-кнопок в порядке отображения
type InlineKeyboard [][]InlineButton

// IsEmpty проверяет, есть ли в клавиатуре хотя бы одна кнопка
func (k InlineKeyboard) IsEmpty() bool {
	for _, row := range k {
		if len(row) > 0 {
			return false
		}
	}
	return true
}

// KeyboardBuilder собирает клавиатуру построчно
type KeyboardBuilder struct {
	rows InlineKeyboard
}

// NewKeyboard создаёт пустой builder
func NewKeyboard() *KeyboardBuilder {
	return &KeyboardBuilder{}
}

// Row добавляет строку кнопок
func (b *KeyboardBuilder) Row(buttons ...InlineButton) *KeyboardBuilder {
	if len(buttons) > 0 {
		b.rows = append(b.rows, buttons)
	}
	return b
}

// Build проверяет все кнопки и возвращает клавиатуру.
// Первая некорректная кнопка прерывает сборку, сообщение с ней не отправляется
func (b *KeyboardBuilder) Build() (InlineKeyboard, error) {
	for i, row := range b.rows {
		for j, btn := range row {
			if err := btn.Validate(); err != nil {
				return nil, fmt.Errorf("keyboard row %d button %d: %w", i, j, err)
			}
		}
	}
	return b.rows, nil
}
