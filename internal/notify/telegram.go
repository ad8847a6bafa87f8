package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"reminder-engine/internal/model"
)

// TelegramGateway delivers reminders to the owner's Telegram chat.
type TelegramGateway struct {
	api *tgbotapi.BotAPI
}

var _ Gateway = (*TelegramGateway)(nil)

func NewTelegramGateway(token string) (*TelegramGateway, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram api: %w", err)
	}
	return &TelegramGateway{api: api}, nil
}

func (g *TelegramGateway) Send(_ context.Context, to model.Contact, subject, body string) error {
	if to.TelegramChatID == 0 {
		return ErrNoRecipient
	}
	msg := tgbotapi.NewMessage(to.TelegramChatID, subject+"\n\n"+body)
	if _, err := g.api.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
