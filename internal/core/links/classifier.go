// Package links classifies submitted text against the supported social
// platforms and reduces URLs to their minimal identifying form.
package links

import (
	"strings"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
)

// Known path patterns per platform. Matching is case-insensitive substring
// search; first platform in precedence order wins.
var platformPatterns = map[domain.Platform][]string{
	domain.PlatformInstagram: {
		"instagram.com/p/",
		"instagram.com/reel/",
		"instagram.com/stories/",
		"instagram.com/tv/",
	},
	domain.PlatformFacebook: {
		"facebook.com/watch",
		"facebook.com/story",
		"facebook.com/share",
		"facebook.com/reel",
		"facebook.com/photo",
		"facebook.com/photo.php",
		"facebook.com/p/",
		"fb.watch/",
		"fb.com/",
	},
	domain.PlatformTikTok: {
		"tiktok.com/",
		"vm.tiktok.com/",
		"vt.tiktok.com/",
	},
	domain.PlatformYouTube: {
		"youtube.com/watch",
		"youtu.be/",
		"youtube.com/embed/",
		"youtube.com/v/",
		"music.youtube.com/watch",
	},
}

// Classify tags a raw text string with the platform it belongs to, or
// PlatformUnknown when no pattern matches.
func Classify(text string) domain.Platform {
	lowered := strings.ToLower(text)

	for _, platform := range domain.Platforms {
		for _, pattern := range platformPatterns[platform] {
			if strings.Contains(lowered, pattern) {
				return platform
			}
		}
	}

	return domain.PlatformUnknown
}

// Valid reports whether the URL matches the given platform's pattern list.
func Valid(platform domain.Platform, url string) bool {
	lowered := strings.ToLower(url)
	for _, pattern := range platformPatterns[platform] {
		if strings.Contains(lowered, pattern) {
			return true
		}
	}

	return false
}
