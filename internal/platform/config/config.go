package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all environment-sourced settings for the bot.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"local"`
	BotToken string `env:"BOT_TOKEN,required"`

	// Downloader API endpoints, one per platform.
	InstagramAPIURL string `env:"INSTAGRAM_API_URL" envDefault:"https://itzpire.com/download/instagram"`
	FacebookAPIURL  string `env:"FACEBOOK_API_URL" envDefault:"https://api.ryzendesu.vip/api/downloader/fbdl"`
	TikTokAPIURL    string `env:"TIKTOK_API_URL" envDefault:"https://api.ryzendesu.vip/api/downloader/ttdl"`
	YouTubeAPIURL   string `env:"YOUTUBE_API_URL" envDefault:"https://api.ryzendesu.vip/api/downloader/ytmp3"`

	// Media delivery.
	MaxMediaPerGroup  int           `env:"MAX_MEDIA_PER_GROUP" envDefault:"10"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	MediaFetchTimeout time.Duration `env:"MEDIA_FETCH_TIMEOUT" envDefault:"5m"`
	MaxFileSizeMB     int           `env:"MAX_FILE_SIZE_MB" envDefault:"100"`
	// MaxRetries is declared for compatibility with the upstream API contract
	// but the pipeline does not retry.
	MaxRetries int `env:"MAX_RETRIES" envDefault:"3"`

	// Bot settings.
	DailyLimit  int     `env:"DAILY_LIMIT" envDefault:"10"`
	APIFetchRPS float64 `env:"API_FETCH_RPS" envDefault:"2"`
	HealthPort  int     `env:"HEALTH_PORT" envDefault:"8080"`
}

// Load reads configuration from the environment, honoring an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional, error is expected when not present

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	return cfg, nil
}

// MaxFileSizeBytes returns the media size ceiling in bytes.
func (c *Config) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}
