package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
	"github.com/mhaminn/social-scraper-bot/internal/usage"
)

const welcomeAnimationURL = "https://media.giphy.com/media/v1.Y2lkPTc5MGI3NjExZXR1eXZ5bjE2N3ZtZndteml6MHJwNWlqM2Myb2dvajNsOTZ2dDdoeCZlcD12MV9naWZzX3NlYXJjaCZjdD1n/pO4UHglOY2vII/giphy.gif"

const welcomeCaption = "🚀 *Welcome to Social Media Scraper Pro!*"

const welcomeMessage = "┌─[🛸 *SOCIAL MEDIA SCRAPER PRO*]─[v4.2.0]\n" +
	"│\n" +
	"├─[🌐 *SUPPORTED PLATFORMS*]\n" +
	"│  ├─ Instagram  » Post/Reel/Story/IGTV\n" +
	"│  ├─ TikTok    » Video/Photo\n" +
	"│  ├─ Facebook  » Reel/Post/Story\n" +
	"│  └─ YouTube   » Music/Video (MP3/MP4)\n" +
	"│\n" +
	"├─[💻 *HOW TO USE*]\n" +
	"│  └─ Just send a link:\n" +
	"│     ‣ `https://youtu.be/...` (for music)\n" +
	"│     ‣ `https://www.instagram.com/reel/...`\n" +
	"│     ‣ `https://vt.tiktok.com/...`\n" +
	"│     ‣ `https://fb.watch/...`\n" +
	"│\n" +
	"├─[📡 *SYSTEM STATUS*]\n" +
	"│  ├─ Server: Online [🟢]\n" +
	"│  └─ API: Unlimited Mode\n" +
	"│\n" +
	"└─[👨💻 MhAminn]─[🔓 *Open Source*]\n" +
	"   └─ Send /help for commands"

const helpMessage = "🆘 *Help* 🆘\n\n" +
	"How to use:\n" +
	"1. Send an Instagram, Facebook, TikTok or YouTube Music link\n" +
	"2. Wait while the bot processes it\n" +
	"3. Receive the content\n\n" +
	"Supported platforms:\n" +
	"*Instagram*\n" +
	"- Posts\n" +
	"- Reels\n" +
	"- Stories\n" +
	"- IGTV\n" +
	"- Albums/Carousels\n\n" +
	"*Facebook*\n" +
	"- Videos\n" +
	"- Reels\n" +
	"- Stories\n\n" +
	"*TikTok*\n" +
	"- Videos without watermark\n" +
	"- Audio tracks\n\n" +
	"*YouTube Music*\n" +
	"- Audio from YouTube Music\n" +
	"- Audio from YouTube videos\n\n" +
	"*Available commands:*\n" +
	"/start - Start the bot\n" +
	"/help - Show this help\n" +
	"/quota - Check your remaining daily quota\n" +
	"/premium - Premium plan information\n" +
	"/invite - Invite friends & earn bonuses\n" +
	"/stats - Bot usage statistics\n" +
	"/donate - Support bot development\n\n" +
	"If something fails, try a different link or make sure it comes from the official app."

const premiumMessage = "✨ *Premium Plan* ✨\n\n" +
	"Unlock extra features by upgrading to Premium:\n\n" +
	"🔓 *No Daily Download Limit*\n" +
	"📊 *Highest Quality (4K/HD)*\n" +
	"🎵 *Automatic MP3/MP4 Conversion*\n" +
	"🚫 *No Watermark*\n" +
	"⚡ *Priority Download Speed*\n\n" +
	"💬 Contact the admin to upgrade."

const donateMessage = "💖 *Support Bot Development* 💖\n\n" +
	"Thanks for using the bot! It is maintained and developed with dedication.\n\n" +
	"If you enjoy the service, consider supporting it. After donating, send the " +
	"receipt to the admin to activate Premium features."

const unsupportedURLMessage = "❌ Unsupported URL. This bot supports links from Instagram, Facebook, TikTok and YouTube Music.\n\n" +
	"Examples of supported URLs:\n" +
	"- Instagram: https://www.instagram.com/p/CGgDsi7JQdS/\n" +
	"- Facebook: https://www.facebook.com/share/r/1E9YVmQBkL/\n" +
	"- TikTok: https://vt.tiktok.com/ZSrB2pdbP/\n" +
	"- YouTube Music: https://music.youtube.com/watch?v=T3d5VNjaDss"

const facebookPhotoMessage = "⚠️ *Facebook Photo Downloads Not Supported* ⚠️\n\n" +
	"Sorry, the upstream API cannot download Facebook photos yet.\n\n" +
	"The bot can download Facebook videos, reels and stories, but not photos.\n\n" +
	"Please try a Facebook URL containing a video, reel or story."

const genericFailureMessage = "❌ Something went wrong while processing your request. Please try again later."

func inviteMessage(inviteLink string, userID int64) string {
	return fmt.Sprintf("🎉 *Invite Friends & Earn Bonuses* 🎉\n\n"+
		"Share this bot with friends and family:\n\n"+
		"🔗 %s\n\n"+
		"✅ *Referral Rewards:*\n"+
		"• Every 5 friends who join = +5 bonus downloads\n"+
		"• Every 10 friends = 1 day of free Premium\n"+
		"• Every 50 friends = 1 week of free Premium\n\n"+
		"📱 *How to Invite:*\n"+
		"1. Copy the link above\n"+
		"2. Share it with groups or friends\n"+
		"3. Ask them to /start and enter your referral code\n\n"+
		"*Your Referral Code:* `%s`", inviteLink, referralCode(userID))
}

func referralCode(userID int64) string {
	return fmt.Sprintf("USER%d", userID)
}

func quotaMessage(limit, used int, untilReset time.Duration) string {
	remaining := max(limit-used, 0)

	hours := int(untilReset.Hours())
	minutes := int(untilReset.Minutes()) % 60

	return fmt.Sprintf("📊 *Quota Information* 📊\n\n"+
		"Your daily quota: %d requests\n"+
		"Used: %d requests\n"+
		"Remaining: %d requests\n\n"+
		"Quota resets in: %d hours %d minutes\n\n"+
		"_Each user is limited to %d requests per day._", limit, used, remaining, hours, minutes, limit)
}

func quotaExceededMessage(limit int, untilReset time.Duration) string {
	hours := int(untilReset.Hours())
	minutes := int(untilReset.Minutes()) % 60

	return fmt.Sprintf("⚠️ *Usage Limit Reached* ⚠️\n\n"+
		"You have reached the daily limit of %d requests.\n\n"+
		"The limit resets in: %d hours %d minutes\n\n"+
		"Upgrade to Premium for unlimited usage!", limit, hours, minutes)
}

func quotaWarningMessage(remaining int) string {
	return fmt.Sprintf("⚠️ *Quota Warning*\n\n"+
		"You only have %d downloads left today.\n"+
		"The quota resets at midnight (00:00).", remaining)
}

func statsMessage(snapshot usage.Snapshot, activeUsers int, now time.Time) string {
	uptime := now.Sub(snapshot.StartTime)
	days := int(uptime.Hours()) / 24
	hours := int(uptime.Hours()) % 24
	minutes := int(uptime.Minutes()) % 60

	var sb strings.Builder

	sb.WriteString("📈 *Bot Statistics* 📈\n\n")
	sb.WriteString("📊 *Usage:*\n")
	sb.WriteString(fmt.Sprintf("• Total Downloads: %d\n", snapshot.TotalDownloads))
	sb.WriteString(fmt.Sprintf("• Active Users: %d\n", activeUsers))
	sb.WriteString(fmt.Sprintf("• Uptime: %dd %dh %dm\n\n", days, hours, minutes))
	sb.WriteString("🌐 *Platform Distribution:*\n")
	sb.WriteString(fmt.Sprintf("• Instagram: %d%%\n", snapshot.PlatformShare(domain.PlatformInstagram)))
	sb.WriteString(fmt.Sprintf("• Facebook: %d%%\n", snapshot.PlatformShare(domain.PlatformFacebook)))
	sb.WriteString(fmt.Sprintf("• TikTok: %d%%\n", snapshot.PlatformShare(domain.PlatformTikTok)))
	sb.WriteString(fmt.Sprintf("• YouTube: %d%%\n\n", snapshot.PlatformShare(domain.PlatformYouTube)))
	sb.WriteString(fmt.Sprintf("🔄 *Running Since:* %s", snapshot.StartTime.Format("02/01/2006")))

	return sb.String()
}

func processingMessage(platform domain.Platform) string {
	switch platform {
	case domain.PlatformInstagram:
		return "⏳ Processing Instagram..."
	case domain.PlatformFacebook:
		return "⏳ Processing Facebook..."
	case domain.PlatformTikTok:
		return "⏳ Processing TikTok..."
	case domain.PlatformYouTube:
		return "⏳ Processing YouTube..."
	default:
		return "⏳ Processing..."
	}
}
