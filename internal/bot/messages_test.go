package bot

import (
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
	"github.com/mhaminn/social-scraper-bot/internal/usage"
)

func TestQuotaMessage(t *testing.T) {
	text := quotaMessage(10, 4, 3*time.Hour+25*time.Minute)

	assert.Contains(t, text, "Your daily quota: 10 requests")
	assert.Contains(t, text, "Used: 4 requests")
	assert.Contains(t, text, "Remaining: 6 requests")
	assert.Contains(t, text, "3 hours 25 minutes")
}

func TestQuotaMessageNeverNegative(t *testing.T) {
	text := quotaMessage(10, 12, time.Hour)

	assert.Contains(t, text, "Remaining: 0 requests")
}

func TestQuotaExceededMessage(t *testing.T) {
	text := quotaExceededMessage(10, 90*time.Minute)

	assert.Contains(t, text, "daily limit of 10 requests")
	assert.Contains(t, text, "1 hours 30 minutes")
}

func TestStatsMessage(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	stats := usage.NewStats(start)

	for i := 0; i < 3; i++ {
		stats.RecordDownload(domain.PlatformTikTok)
	}

	stats.RecordDownload(domain.PlatformYouTube)

	now := start.Add(26*time.Hour + 15*time.Minute)
	text := statsMessage(stats.Snapshot(), 2, now)

	assert.Contains(t, text, "Total Downloads: 4")
	assert.Contains(t, text, "Active Users: 2")
	assert.Contains(t, text, "Uptime: 1d 2h 15m")
	assert.Contains(t, text, "TikTok: 75%")
	assert.Contains(t, text, "YouTube: 25%")
	assert.Contains(t, text, "Instagram: 0%")
	assert.Contains(t, text, "01/03/2025")
}

func TestInviteMessage(t *testing.T) {
	text := inviteMessage("https://t.me/social_scraper_bot", 7)

	assert.Contains(t, text, "https://t.me/social_scraper_bot")
	assert.Contains(t, text, "`USER7`")
	assert.Contains(t, text, "+5 bonus downloads")
}

func TestInviteKeyboard(t *testing.T) {
	markup := inviteKeyboard("https://t.me/social_scraper_bot", 7)

	assert.Len(t, markup.InlineKeyboard, 2)

	whatsapp := markup.InlineKeyboard[0][0]
	assert.Contains(t, *whatsapp.URL, "https://wa.me/?text=")
	assert.Contains(t, *whatsapp.URL, "USER7")

	telegram := markup.InlineKeyboard[1][0]
	assert.Contains(t, *telegram.URL, "https://t.me/share/url?url=")
	assert.Contains(t, *telegram.URL, "USER7")
}

func TestMenuKeyboardsCarryInviteButton(t *testing.T) {
	for _, markup := range []*tgbotapi.InlineKeyboardMarkup{mainMenuKeyboard(), helpKeyboard(), premiumKeyboard()} {
		found := false

		for _, row := range markup.InlineKeyboard {
			for _, button := range row {
				if button.CallbackData != nil && *button.CallbackData == "invite" {
					found = true
				}
			}
		}

		assert.True(t, found, "keyboard is missing the invite button")
	}
}

func TestProcessingMessage(t *testing.T) {
	assert.Equal(t, "⏳ Processing Instagram...", processingMessage(domain.PlatformInstagram))
	assert.Equal(t, "⏳ Processing...", processingMessage(domain.PlatformUnknown))
}
