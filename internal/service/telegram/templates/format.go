package templates

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	notSpecified  = "Не указано"
	notSpecifiedM = "Не указан"
)

// Markdown экранирует пользовательское значение для parse_mode=Markdown
func Markdown(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

// HTML экранирует пользовательское значение для parse_mode=HTML
func HTML(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// formatAmount печатает сумму без лишних нулей: 1500, 1500.5
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
