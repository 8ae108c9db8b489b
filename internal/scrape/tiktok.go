package scrape

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
	"github.com/mhaminn/social-scraper-bot/internal/core/links"
)

// TikTok adapts the TikTok downloader API. Responses nest the payload under
// data.data and branch between slideshow (images array) and single-video
// content.
type TikTok struct {
	client *apiClient
}

func NewTikTok(baseURL string, timeout time.Duration, rps float64, logger *zerolog.Logger) *TikTok {
	return &TikTok{
		client: newAPIClient(domain.PlatformTikTok, baseURL, true, timeout, rps, logger),
	}
}

func (a *TikTok) Platform() domain.Platform {
	return domain.PlatformTikTok
}

type tiktokResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Data tiktokData `json:"data"`
	} `json:"data"`
}

type tiktokData struct {
	Title  string   `json:"title"`
	Play   string   `json:"play"`
	WMPlay string   `json:"wmplay"`
	HDPlay string   `json:"hdplay"`
	Music  string   `json:"music"`
	Cover  string   `json:"cover"`
	Images []string `json:"images"`
}

func (a *TikTok) Fetch(ctx context.Context, rawURL string) domain.MediaEnvelope {
	canonical := links.Canonicalize(domain.PlatformTikTok, rawURL)

	body, err := a.client.get(ctx, canonical)
	if err != nil {
		return envelopeFromError(err)
	}

	var resp tiktokResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return envelopeFromError(err)
	}

	if !resp.Success {
		return domain.ErrorEnvelope("Could not extract content from the TikTok URL. Try another link.")
	}

	media := normalizeTikTok(resp.Data.Data)
	if len(media) == 0 {
		return domain.ErrorEnvelope("Could not extract content from the TikTok URL. Try another link.")
	}

	return domain.SuccessEnvelope(domain.EnvelopeData{
		Media: media,
		Title: resp.Data.Data.Title,
	})
}

func normalizeTikTok(data tiktokData) []domain.MediaItem {
	if len(data.Images) > 0 {
		return normalizeTikTokSlideshow(data)
	}

	// Single video: HD beats no-watermark beats watermarked; audio-only is
	// the last resort.
	switch {
	case data.HDPlay != "":
		return []domain.MediaItem{{
			Type:        domain.MediaVideo,
			Quality:     "HD",
			URL:         data.HDPlay,
			DownloadURL: data.HDPlay,
			Thumbnail:   data.Cover,
		}}
	case data.Play != "":
		return []domain.MediaItem{{
			Type:        domain.MediaVideo,
			Quality:     "SD (No Watermark)",
			URL:         data.Play,
			DownloadURL: data.Play,
			Thumbnail:   data.Cover,
		}}
	case data.WMPlay != "":
		return []domain.MediaItem{{
			Type:        domain.MediaVideo,
			Quality:     "SD (Watermarked)",
			URL:         data.WMPlay,
			DownloadURL: data.WMPlay,
			Thumbnail:   data.Cover,
		}}
	case data.Music != "":
		return []domain.MediaItem{{
			Type:        domain.MediaAudio,
			URL:         data.Music,
			DownloadURL: data.Music,
		}}
	default:
		return nil
	}
}

func normalizeTikTokSlideshow(data tiktokData) []domain.MediaItem {
	media := make([]domain.MediaItem, 0, len(data.Images)+1)

	for i, imageURL := range data.Images {
		media = append(media, domain.MediaItem{
			Type:        domain.MediaPhoto,
			Quality:     "HD",
			URL:         imageURL,
			DownloadURL: imageURL,
			Thumbnail:   data.Cover,
			Index:       i,
		})
	}

	if data.Music != "" {
		media = append(media, domain.MediaItem{
			Type:        domain.MediaAudio,
			URL:         data.Music,
			DownloadURL: data.Music,
		})
	}

	return media
}
