package links

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.Platform
	}{
		{"instagram post", "https://www.instagram.com/p/CGgDsi7JQdS/", domain.PlatformInstagram},
		{"instagram reel", "https://www.instagram.com/reel/abc123/", domain.PlatformInstagram},
		{"instagram story", "https://www.instagram.com/stories/user/123/", domain.PlatformInstagram},
		{"facebook watch", "https://www.facebook.com/watch/?v=123", domain.PlatformFacebook},
		{"facebook short", "https://fb.watch/abc123/", domain.PlatformFacebook},
		{"facebook share", "https://www.facebook.com/share/r/1E9YVmQBkL/", domain.PlatformFacebook},
		{"tiktok short", "https://vt.tiktok.com/ZSrB2pdbP/", domain.PlatformTikTok},
		{"tiktok full", "https://www.tiktok.com/@user/video/123", domain.PlatformTikTok},
		{"youtube watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", domain.PlatformYouTube},
		{"youtube short link", "https://youtu.be/dQw4w9WgXcQ", domain.PlatformYouTube},
		{"youtube music", "https://music.youtube.com/watch?v=T3d5VNjaDss", domain.PlatformYouTube},
		{"uppercase host", "HTTPS://WWW.INSTAGRAM.COM/P/ABC/", domain.PlatformInstagram},
		{"plain text", "hello there", domain.PlatformUnknown},
		{"unsupported site", "https://vimeo.com/12345", domain.PlatformUnknown},
		{"instagram profile without content path", "https://www.instagram.com/someuser", domain.PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(domain.PlatformInstagram, "https://instagram.com/p/abc"))
	assert.False(t, Valid(domain.PlatformInstagram, "https://instagram.com/someuser"))
	assert.True(t, Valid(domain.PlatformYouTube, "https://youtu.be/abc"))
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		platform domain.Platform
		rawURL   string
		want     string
	}{
		{
			"strips tracking query",
			domain.PlatformInstagram,
			"https://www.instagram.com/p/CGgDsi7JQdS/?igshid=abc&utm_source=x",
			"https://www.instagram.com/p/CGgDsi7JQdS",
		},
		{
			"strips trailing slash",
			domain.PlatformTikTok,
			"https://vt.tiktok.com/ZSrB2pdbP/",
			"https://vt.tiktok.com/ZSrB2pdbP",
		},
		{
			"facebook photo keeps fbid",
			domain.PlatformFacebook,
			"https://www.facebook.com/photo.php?fbid=123456&set=a.789",
			"https://www.facebook.com/photo.php?fbid=123456",
		},
		{
			"facebook video strips query",
			domain.PlatformFacebook,
			"https://www.facebook.com/reel/456?mibextid=xyz",
			"https://www.facebook.com/reel/456",
		},
		{
			"youtube keeps only video id",
			domain.PlatformYouTube,
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123&index=4",
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			"youtube short link rewritten",
			domain.PlatformYouTube,
			"https://youtu.be/dQw4w9WgXcQ",
			"https://youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			"youtube fragment dropped",
			domain.PlatformYouTube,
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ#t=30",
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonicalize(tt.platform, tt.rawURL))
		})
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	urls := map[domain.Platform]string{
		domain.PlatformInstagram: "https://www.instagram.com/p/CGgDsi7JQdS/?igshid=abc",
		domain.PlatformFacebook:  "https://www.facebook.com/photo.php?fbid=123456&set=a.789",
		domain.PlatformTikTok:    "https://vt.tiktok.com/ZSrB2pdbP/?k=1",
		domain.PlatformYouTube:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123",
	}

	for platform, rawURL := range urls {
		once := Canonicalize(platform, rawURL)
		assert.Equal(t, once, Canonicalize(platform, once), platform)
	}
}

func TestPhotoIntent(t *testing.T) {
	assert.True(t, PhotoIntent("https://www.facebook.com/photo/?fbid=123"))
	assert.True(t, PhotoIntent("https://www.facebook.com/photo.php?fbid=123"))
	assert.True(t, PhotoIntent("https://www.facebook.com/p/some-post"))
	assert.False(t, PhotoIntent("https://www.facebook.com/watch/?v=123"))
	assert.False(t, PhotoIntent("https://www.facebook.com/reel/456"))
}

func TestClassifyInstagram(t *testing.T) {
	assert.Equal(t, InstagramPost, ClassifyInstagram("https://instagram.com/p/abc"))
	assert.Equal(t, InstagramReel, ClassifyInstagram("https://instagram.com/reel/abc"))
	assert.Equal(t, InstagramStory, ClassifyInstagram("https://instagram.com/stories/user/1"))
	assert.Equal(t, InstagramIGTV, ClassifyInstagram("https://instagram.com/tv/abc"))
	assert.Equal(t, InstagramGeneric, ClassifyInstagram("https://instagram.com/someuser"))
}

func TestCaption(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.instagram.com/p/abc/", "📷 Instagram Post"},
		{"https://www.instagram.com/reel/abc/", "🎬 Instagram Reel"},
		{"https://www.instagram.com/stories/user/1/", "⏱️ Instagram Story"},
		{"https://www.instagram.com/tv/abc/", "📺 Instagram TV"},
		{"https://www.facebook.com/watch/?v=1", "📺 Facebook Video"},
		{"https://www.facebook.com/story.php?id=1", "⏱️ Facebook Story"},
		{"https://www.facebook.com/reel/1", "🎬 Facebook Reel"},
		{"https://www.tiktok.com/@user/video/1", "🎵 TikTok Video"},
		{"https://music.youtube.com/watch?v=abc", "🎵 YouTube Music"},
		{"https://youtu.be/abc", "🎵 YouTube Audio"},
		{"https://example.com/other", "📥 Media Content"},
		{"", "📥 Media"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Caption(tt.url))
		})
	}
}
