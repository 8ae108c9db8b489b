// Package bot runs the Telegram front end: long-polling for updates,
// command handling, and turning social media links into delivered media.
package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/mhaminn/social-scraper-bot/internal/delivery"
	"github.com/mhaminn/social-scraper-bot/internal/fetch"
	"github.com/mhaminn/social-scraper-bot/internal/platform/config"
	"github.com/mhaminn/social-scraper-bot/internal/scrape"
	"github.com/mhaminn/social-scraper-bot/internal/usage"
)

type Bot struct {
	cfg        *config.Config
	api        *tgbotapi.BotAPI
	transport  *transport
	registry   scrape.Registry
	dispatcher *delivery.Dispatcher
	quotas     usage.Store
	stats      *usage.Stats
	logger     *zerolog.Logger
}

func New(cfg *config.Config, registry scrape.Registry, fetcher *fetch.Fetcher, quotas usage.Store, stats *usage.Stats, logger *zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	tr := newTransport(api, logger)

	return &Bot{
		cfg:        cfg,
		api:        api,
		transport:  tr,
		registry:   registry,
		dispatcher: delivery.New(tr, fetcher, cfg.MaxMediaPerGroup, logger),
		quotas:     quotas,
		stats:      stats,
		logger:     logger,
	}, nil
}

func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info().Str("username", b.api.Self.UserName).Msg("bot started")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			go b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate dispatches one update on its own goroutine. A panic in a
// handler must not take down the polling loop.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().Interface("panic", r).Msg("handler panicked")

			if chatID := updateChatID(update); chatID != 0 {
				b.reply(chatID, genericFailureMessage)
			}
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, b.cfg.MediaFetchTimeout)
	defer cancel()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(update.Message)
	case update.Message != nil && update.Message.Text != "":
		b.handleLink(ctx, update.Message)
	}
}

func updateChatID(update tgbotapi.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}

	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
		return update.CallbackQuery.Message.Chat.ID
	}

	return 0
}

func (b *Bot) reply(chatID int64, text string) {
	b.replyMarkup(chatID, text, nil)
}

func (b *Bot) replyMarkup(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true

	if markup != nil {
		msg.ReplyMarkup = *markup
	}

	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send reply")
	}
}
