package scrape

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
	"github.com/mhaminn/social-scraper-bot/internal/core/links"
)

// Instagram adapts the Instagram downloader API. The upstream envelope is
// already close to the normalized shape, so this adapter mostly validates
// and passes through.
type Instagram struct {
	client *apiClient
}

func NewInstagram(baseURL string, timeout time.Duration, rps float64, logger *zerolog.Logger) *Instagram {
	return &Instagram{
		client: newAPIClient(domain.PlatformInstagram, baseURL, false, timeout, rps, logger),
	}
}

func (a *Instagram) Platform() domain.Platform {
	return domain.PlatformInstagram
}

type instagramResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Media  []wireMediaItem `json:"media"`
		Title  string          `json:"title"`
		Author string          `json:"author"`
	} `json:"data"`
}

func (a *Instagram) Fetch(ctx context.Context, rawURL string) domain.MediaEnvelope {
	canonical := links.Canonicalize(domain.PlatformInstagram, rawURL)
	if !links.Valid(domain.PlatformInstagram, canonical) {
		return domain.ErrorEnvelope("Invalid Instagram URL")
	}

	body, err := a.client.get(ctx, canonical)
	if err != nil {
		return envelopeFromError(err)
	}

	var resp instagramResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return envelopeFromError(err)
	}

	if resp.Status != "success" {
		message := resp.Message
		if message == "" {
			message = "Failed to download content. Try a different link."
		}

		return domain.ErrorEnvelope(message)
	}

	media := make([]domain.MediaItem, 0, len(resp.Data.Media))
	for _, item := range resp.Data.Media {
		media = append(media, item.toDomain())
	}

	if len(media) == 0 {
		return domain.ErrorEnvelope("No media found in the Instagram response. Try another link.")
	}

	return domain.SuccessEnvelope(domain.EnvelopeData{
		Media:  media,
		Title:  resp.Data.Title,
		Author: resp.Data.Author,
	})
}

// wireMediaItem is the media shape pre-normalized upstreams use.
type wireMediaItem struct {
	Type        string `json:"type"`
	URL         string `json:"url"`
	DownloadURL string `json:"downloadUrl"`
	Thumbnail   string `json:"thumbnail"`
	Resolution  string `json:"resolution"`
	Quality     string `json:"quality"`
}

func (w wireMediaItem) toDomain() domain.MediaItem {
	mediaType := domain.MediaType(w.Type)
	switch mediaType {
	case domain.MediaPhoto, domain.MediaVideo, domain.MediaAudio:
	default:
		mediaType = domain.MediaDocument
	}

	return domain.MediaItem{
		Type:        mediaType,
		URL:         w.URL,
		DownloadURL: w.DownloadURL,
		Thumbnail:   w.Thumbnail,
		Resolution:  w.Resolution,
		Quality:     w.Quality,
	}
}
