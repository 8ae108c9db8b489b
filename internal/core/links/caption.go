package links

import (
	"strings"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
)

// InstagramContentType identifies which kind of Instagram content a URL
// points at.
type InstagramContentType string

const (
	InstagramPost    InstagramContentType = "post"
	InstagramReel    InstagramContentType = "reel"
	InstagramStory   InstagramContentType = "story"
	InstagramIGTV    InstagramContentType = "igtv"
	InstagramGeneric InstagramContentType = "unknown"
)

// ClassifyInstagram determines the Instagram content type from the URL path.
func ClassifyInstagram(url string) InstagramContentType {
	switch {
	case strings.Contains(url, "instagram.com/p/"):
		return InstagramPost
	case strings.Contains(url, "instagram.com/reel/"):
		return InstagramReel
	case strings.Contains(url, "instagram.com/stories/"):
		return InstagramStory
	case strings.Contains(url, "instagram.com/tv/"):
		return InstagramIGTV
	default:
		return InstagramGeneric
	}
}

// PhotoIntent reports whether a Facebook URL refers to a still image rather
// than a video. Heuristic: photo links carry "photo", "/p/" or "photo.php"
// in the path.
func PhotoIntent(url string) bool {
	lowered := strings.ToLower(url)

	return strings.Contains(lowered, "photo") || strings.Contains(lowered, "/p/")
}

// Caption derives the user-facing caption for delivered media from the
// original URL.
func Caption(url string) string {
	if url == "" {
		return "📥 Media"
	}

	switch Classify(url) {
	case domain.PlatformInstagram:
		return instagramCaption(url)
	case domain.PlatformFacebook:
		return facebookCaption(url)
	case domain.PlatformTikTok:
		return "🎵 TikTok Video"
	case domain.PlatformYouTube:
		if strings.Contains(strings.ToLower(url), "music.youtube.com") {
			return "🎵 YouTube Music"
		}

		return "🎵 YouTube Audio"
	default:
		return "📥 Media Content"
	}
}

func instagramCaption(url string) string {
	switch ClassifyInstagram(strings.ToLower(url)) {
	case InstagramPost:
		return "📷 Instagram Post"
	case InstagramReel:
		return "🎬 Instagram Reel"
	case InstagramStory:
		return "⏱️ Instagram Story"
	case InstagramIGTV:
		return "📺 Instagram TV"
	default:
		return "📥 Instagram Media"
	}
}

func facebookCaption(url string) string {
	lowered := strings.ToLower(url)

	switch {
	case strings.Contains(lowered, "watch"):
		return "📺 Facebook Video"
	case strings.Contains(lowered, "story"):
		return "⏱️ Facebook Story"
	case strings.Contains(lowered, "reel"):
		return "🎬 Facebook Reel"
	case PhotoIntent(lowered):
		return "📷 Facebook Photo"
	default:
		return "📥 Facebook Content"
	}
}
