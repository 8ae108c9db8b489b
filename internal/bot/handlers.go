package bot

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
	errs "github.com/mhaminn/social-scraper-bot/internal/core/errors"
	"github.com/mhaminn/social-scraper-bot/internal/core/links"
	"github.com/mhaminn/social-scraper-bot/internal/platform/observability"
	"github.com/mhaminn/social-scraper-bot/internal/usage"
)

const quotaWarningThreshold = 2

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	b.logger.Info().Str("command", msg.Command()).Int64("user_id", msg.From.ID).Msg("handling command")

	switch msg.Command() {
	case "start":
		b.handleStart(msg.Chat.ID)
	case "help":
		b.handleHelp(msg.Chat.ID)
	case "quota":
		b.handleQuota(msg.Chat.ID, msg.From.ID)
	case "premium":
		b.handlePremium(msg.Chat.ID)
	case "invite":
		b.handleInvite(msg.Chat.ID, msg.From.ID)
	case "stats":
		b.handleStats(msg.Chat.ID)
	case "donate":
		b.handleDonate(msg.Chat.ID)
	default:
		b.reply(msg.Chat.ID, "Unknown command. Send /help for the list of commands.")
	}
}

func (b *Bot) handleStart(chatID int64) {
	b.transport.sendTyping(chatID)

	animation := tgbotapi.NewAnimation(chatID, tgbotapi.FileURL(welcomeAnimationURL))
	animation.Caption = welcomeCaption
	animation.ParseMode = tgbotapi.ModeMarkdown

	if _, err := b.api.Send(animation); err != nil {
		b.logger.Warn().Err(err).Msg("failed to send welcome animation")
	}

	b.replyMarkup(chatID, welcomeMessage, mainMenuKeyboard())
}

func (b *Bot) handleHelp(chatID int64) {
	b.replyMarkup(chatID, helpMessage, helpKeyboard())
}

func (b *Bot) handleQuota(chatID, userID int64) {
	now := time.Now()
	used := b.quotas.Used(userID, now)

	text := quotaMessage(b.cfg.DailyLimit, used, usage.UntilReset(now))

	if used >= b.cfg.DailyLimit {
		b.replyMarkup(chatID, text, premiumKeyboard())

		return
	}

	b.reply(chatID, text)
}

func (b *Bot) handlePremium(chatID int64) {
	b.transport.sendTyping(chatID)
	b.reply(chatID, premiumMessage)
}

// handleInvite sends the referral pitch with share buttons pointing back at
// this bot instance.
func (b *Bot) handleInvite(chatID, userID int64) {
	b.transport.sendTyping(chatID)

	inviteLink := "https://t.me/" + b.api.Self.UserName

	b.replyMarkup(chatID, inviteMessage(inviteLink, userID), inviteKeyboard(inviteLink, userID))
}

func (b *Bot) handleStats(chatID int64) {
	b.transport.sendTyping(chatID)
	b.reply(chatID, statsMessage(b.stats.Snapshot(), b.quotas.ActiveUsers(), time.Now()))
}

func (b *Bot) handleDonate(chatID int64) {
	b.transport.sendTyping(chatID)
	b.replyMarkup(chatID, donateMessage, premiumKeyboard())
}

// handleCallback serves the inline menu buttons. The previous menu message
// is removed so menus do not pile up in the chat.
func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := b.api.Request(callback); err != nil {
		b.logger.Warn().Err(err).Msg("failed to answer callback query")
	}

	if query.Message == nil {
		return
	}

	chatID := query.Message.Chat.ID

	if err := b.transport.DeleteMessage(chatID, query.Message.MessageID); err != nil {
		b.logger.Warn().Err(err).Msg("failed to delete previous menu message")
	}

	switch query.Data {
	case "help":
		b.handleHelp(chatID)
	case "quota":
		b.handleQuota(chatID, query.From.ID)
	case "premium", "premium_info", "trial":
		b.handlePremium(chatID)
	case "invite":
		b.handleInvite(chatID, query.From.ID)
	case "stats":
		b.handleStats(chatID)
	case "donate":
		b.handleDonate(chatID)
	default:
		b.logger.Warn().Str("data", query.Data).Msg("unknown callback data")
	}
}

// handleLink is the main flow: quota gate, platform detection, upstream
// fetch, then delivery.
func (b *Bot) handleLink(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	rawURL := strings.TrimSpace(msg.Text)
	now := time.Now()

	remaining, err := b.quotas.Consume(msg.From.ID, now)
	if err != nil {
		if errs.Is(err, errs.ErrQuotaExceeded) {
			observability.QuotaRejections.Inc()
			b.reply(chatID, quotaExceededMessage(b.cfg.DailyLimit, usage.UntilReset(now)))

			return
		}

		b.logger.Error().Err(err).Int64("user_id", msg.From.ID).Msg("quota check failed")
		b.reply(chatID, genericFailureMessage)

		return
	}

	platform := links.Classify(rawURL)
	if platform == domain.PlatformUnknown {
		b.reply(chatID, unsupportedURLMessage)

		return
	}

	b.logger.Info().Str("platform", string(platform)).Int64("user_id", msg.From.ID).Msg("handling link")

	if platform == domain.PlatformFacebook && links.PhotoIntent(rawURL) {
		b.reply(chatID, facebookPhotoMessage)

		return
	}

	adapter, ok := b.registry[platform]
	if !ok {
		b.reply(chatID, unsupportedURLMessage)

		return
	}

	b.transport.sendTyping(chatID)

	processingID, msgErr := b.transport.SendMessage(chatID, processingMessage(platform))

	envelope := adapter.Fetch(ctx, rawURL)

	if msgErr == nil {
		if err := b.transport.DeleteMessage(chatID, processingID); err != nil {
			b.logger.Debug().Err(err).Msg("failed to delete processing message")
		}
	}

	if !envelope.OK() {
		observability.DownloadRequests.WithLabelValues(string(platform), "error").Inc()
		b.reply(chatID, "⚠️ "+envelope.Message)

		return
	}

	observability.DownloadRequests.WithLabelValues(string(platform), "success").Inc()
	b.stats.RecordDownload(platform)

	b.dispatcher.Deliver(ctx, chatID, envelope, rawURL)

	if remaining <= quotaWarningThreshold && remaining > 0 {
		b.replyMarkup(chatID, quotaWarningMessage(remaining), premiumKeyboard())
	}
}

func mainMenuKeyboard() *tgbotapi.InlineKeyboardMarkup {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 Help", "help"),
			tgbotapi.NewInlineKeyboardButtonData("📊 Quota", "quota"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌟 Premium", "premium"),
			tgbotapi.NewInlineKeyboardButtonData("📈 Stats", "stats"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔗 Invite Friends", "invite"),
			tgbotapi.NewInlineKeyboardButtonData("💰 Donate", "donate"),
		),
	)

	return &markup
}

func helpKeyboard() *tgbotapi.InlineKeyboardMarkup {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Quota", "quota"),
			tgbotapi.NewInlineKeyboardButtonData("🌟 Premium", "premium"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔗 Invite Friends", "invite"),
			tgbotapi.NewInlineKeyboardButtonData("💰 Donate", "donate"),
		),
	)

	return &markup
}

func premiumKeyboard() *tgbotapi.InlineKeyboardMarkup {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌟 Upgrade to Premium", "premium"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Invite Friends", "invite"),
		),
	)

	return &markup
}

// inviteKeyboard builds share links that prefill the referral pitch on
// WhatsApp and Telegram.
func inviteKeyboard(inviteLink string, userID int64) *tgbotapi.InlineKeyboardMarkup {
	code := referralCode(userID)

	whatsappText := fmt.Sprintf("Download videos from Instagram, TikTok, Facebook and YouTube with this bot: %s Use code %s for bonus downloads!", inviteLink, code)
	telegramText := fmt.Sprintf("Download videos from Instagram, TikTok, Facebook and YouTube with this bot! Use code %s for bonus downloads!", code)

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📲 Share on WhatsApp", "https://wa.me/?text="+url.QueryEscape(whatsappText)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📱 Share on Telegram", "https://t.me/share/url?url="+url.QueryEscape(inviteLink)+"&text="+url.QueryEscape(telegramText)),
		),
	)

	return &markup
}
