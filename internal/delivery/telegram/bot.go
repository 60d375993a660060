package telegram

import (
	"context"
	"fmt"

	"futbolamigos/internal/application"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	token    string
	bot      *tgbotapi.BotAPI
	services *application.Service
	logger   application.Logger
	sessions *sessionStore
}

func NewBot(token string, services *application.Service, logger application.Logger) *Bot {
	return &Bot{
		token:    token,
		services: services,
		logger:   logger,
		sessions: newSessionStore(),
	}
}

func (b *Bot) Init() error {
	bot, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		return fmt.Errorf("failed to create telegram bot: %w", err)
	}
	b.bot = bot
	b.logger.Info("Telegram bot authorized on account %s", bot.Self.UserName)
	return nil
}

func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(update.Message.Chat.ID, update.Message.Text)
		}
	}
}

func (b *Bot) Stop() {
	if b.bot != nil {
		b.bot.StopReceivingUpdates()
	}
}
