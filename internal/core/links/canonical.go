package links

import (
	"net/url"
	"strings"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
)

// Canonicalize strips tracking parameters from a URL, applying
// platform-specific rules where the generic strip loses the content ID.
// It never fails: any parse problem degrades to the generic strip.
func Canonicalize(platform domain.Platform, rawURL string) string {
	switch platform {
	case domain.PlatformFacebook:
		return canonicalizeFacebook(rawURL)
	case domain.PlatformYouTube:
		return canonicalizeYouTube(rawURL)
	default:
		return stripQuery(rawURL)
	}
}

// stripQuery removes everything after '?' plus surrounding whitespace and a
// trailing slash.
func stripQuery(rawURL string) string {
	base, _, _ := strings.Cut(rawURL, "?")

	return strings.TrimRight(strings.TrimSpace(base), "/")
}

// canonicalizeFacebook rewrites photo links to a minimal photo.php?fbid=<id>
// form when the fbid parameter is extractable.
func canonicalizeFacebook(rawURL string) string {
	stripped := stripQuery(rawURL)

	if !strings.Contains(stripped, "/photo/") && !strings.Contains(stripped, "photo.php") {
		return stripped
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return stripped
	}

	fbid := parsed.Query().Get("fbid")
	if fbid == "" {
		return stripped
	}

	return "https://www.facebook.com/photo.php?fbid=" + fbid
}

// canonicalizeYouTube keeps only the video ID parameter, rewriting short
// links to the long watch form.
func canonicalizeYouTube(rawURL string) string {
	rawURL, _, _ = strings.Cut(rawURL, "#")

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return stripQuery(rawURL)
	}

	if videoID := parsed.Query().Get("v"); videoID != "" {
		return parsed.Scheme + "://" + parsed.Host + parsed.Path + "?v=" + videoID
	}

	if strings.Contains(rawURL, "youtu.be") {
		if path := strings.Trim(parsed.Path, "/"); path != "" {
			return "https://youtube.com/watch?v=" + path
		}
	}

	return rawURL
}
