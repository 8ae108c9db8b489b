package scrape

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
	"github.com/mhaminn/social-scraper-bot/internal/core/links"
)

// YouTube adapts the YouTube audio downloader API. The upstream returns a
// flat object; numeric fields arrive as numbers, strings or not at all.
type YouTube struct {
	client *apiClient
}

func NewYouTube(baseURL string, timeout time.Duration, rps float64, logger *zerolog.Logger) *YouTube {
	return &YouTube{
		client: newAPIClient(domain.PlatformYouTube, baseURL, true, timeout, rps, logger),
	}
}

func (a *YouTube) Platform() domain.Platform {
	return domain.PlatformYouTube
}

type youtubeResponse struct {
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	Thumbnail     string          `json:"thumbnail"`
	URL           string          `json:"url"`
	Quality       string          `json:"quality"`
	Description   string          `json:"description"`
	LengthSeconds json.RawMessage `json:"lengthSeconds"` //nolint:tagliatelle // upstream uses camelCase
	Views         json.RawMessage `json:"views"`
}

func (a *YouTube) Fetch(ctx context.Context, rawURL string) domain.MediaEnvelope {
	canonical := links.Canonicalize(domain.PlatformYouTube, rawURL)

	body, err := a.client.get(ctx, canonical)
	if err != nil {
		return envelopeFromError(err)
	}

	var resp youtubeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return envelopeFromError(err)
	}

	if resp.URL == "" {
		return domain.ErrorEnvelope("Could not extract audio from the YouTube URL. Try another link.")
	}

	title := resp.Title
	if title == "" {
		title = "Unknown Title"
	}

	author := resp.Author
	if author == "" {
		author = "Unknown Artist"
	}

	quality := resp.Quality
	if quality == "" {
		quality = "Unknown Quality"
	}

	item := domain.MediaItem{
		Type:        domain.MediaAudio,
		URL:         resp.URL,
		DownloadURL: resp.URL,
		Thumbnail:   resp.Thumbnail,
		Quality:     quality,
		Metadata: &domain.Metadata{
			Title:       title,
			Performer:   author,
			Duration:    coerceInt(resp.LengthSeconds),
			Views:       coerceInt(resp.Views),
			Description: resp.Description,
			Quality:     quality,
		},
	}

	return domain.SuccessEnvelope(domain.EnvelopeData{
		Media:  []domain.MediaItem{item},
		Title:  title,
		Author: author,
	})
}

// coerceInt extracts an integer from a JSON value that may be a number, a
// numeric string, or absent. Anything unparseable defaults to 0.
func coerceInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return int(number)
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}

	return parsed
}
