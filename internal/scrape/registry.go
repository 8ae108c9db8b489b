package scrape

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
)

// Config holds the per-platform endpoints and shared request settings.
type Config struct {
	InstagramAPIURL string
	FacebookAPIURL  string
	TikTokAPIURL    string
	YouTubeAPIURL   string
	Timeout         time.Duration
	RPS             float64
}

// Registry maps each supported platform to its adapter.
type Registry map[domain.Platform]Adapter

// NewRegistry builds the adapter set for all supported platforms.
func NewRegistry(cfg Config, logger *zerolog.Logger) Registry {
	return Registry{
		domain.PlatformInstagram: NewInstagram(cfg.InstagramAPIURL, cfg.Timeout, cfg.RPS, logger),
		domain.PlatformFacebook:  NewFacebook(cfg.FacebookAPIURL, cfg.Timeout, cfg.RPS, logger),
		domain.PlatformTikTok:    NewTikTok(cfg.TikTokAPIURL, cfg.Timeout, cfg.RPS, logger),
		domain.PlatformYouTube:   NewYouTube(cfg.YouTubeAPIURL, cfg.Timeout, cfg.RPS, logger),
	}
}
