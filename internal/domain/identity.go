package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// BotIdentity пара (токен, chat_id назначения) одного из ботов Get2B.
// Фиксируется при создании сервиса бота и не меняется до конца жизни процесса
type BotIdentity struct {
	Name   string
	Token  string
	ChatID int64
}

// NewBotIdentity собирает идентичность бота из значений конфигурации
func NewBotIdentity(name, token, chatID string) (BotIdentity, error) {
	token = strings.TrimSpace(token)
	chatID = strings.TrimSpace(chatID)

	if token == "" {
		return BotIdentity{}, fmt.Errorf("%w: %s bot token is not set", ErrConfigurationMissing, name)
	}
	if chatID == "" {
		return BotIdentity{}, fmt.Errorf("%w: %s bot chat_id is not set", ErrConfigurationMissing, name)
	}

	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil || id == 0 {
		return BotIdentity{}, fmt.Errorf("%w: %s bot chat_id %q", ErrInvalidChatID, name, chatID)
	}

	return BotIdentity{Name: name, Token: token, ChatID: id}, nil
}

// String не раскрывает токен
func (i BotIdentity) String() string {
	return fmt.Sprintf("%s(chat=%d)", i.Name, i.ChatID)
}
