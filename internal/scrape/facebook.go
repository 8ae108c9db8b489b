package scrape

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
	"github.com/mhaminn/social-scraper-bot/internal/core/links"
)

// Facebook adapts the Facebook downloader API. The upstream is known to
// answer in two distinct JSON dialects; each one gets its own decoder,
// selected by sniffing the discriminating keys.
type Facebook struct {
	client *apiClient
}

func NewFacebook(baseURL string, timeout time.Duration, rps float64, logger *zerolog.Logger) *Facebook {
	return &Facebook{
		client: newAPIClient(domain.PlatformFacebook, baseURL, true, timeout, rps, logger),
	}
}

func (a *Facebook) Platform() domain.Platform {
	return domain.PlatformFacebook
}

func (a *Facebook) Fetch(ctx context.Context, rawURL string) domain.MediaEnvelope {
	canonical := links.Canonicalize(domain.PlatformFacebook, rawURL)

	body, err := a.client.get(ctx, canonical)
	if err != nil {
		return envelopeFromError(err)
	}

	photoIntent := links.PhotoIntent(rawURL)

	media := decodeFacebookResponse(body, photoIntent)
	if len(media) == 0 {
		if photoIntent {
			return domain.ErrorEnvelope("Could not extract an image from the Facebook URL. Try another link.")
		}

		return domain.ErrorEnvelope("Could not extract a video from the Facebook URL. Try another link.")
	}

	return domain.SuccessEnvelope(domain.EnvelopeData{Media: media})
}

// facebookProbe holds just the discriminating keys of the two dialects.
type facebookProbe struct {
	Status  bool            `json:"status"`
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func decodeFacebookResponse(body []byte, photoIntent bool) []domain.MediaItem {
	var probe facebookProbe
	if err := json.Unmarshal(body, &probe); err != nil || len(probe.Data) == 0 {
		return nil
	}

	if probe.Status {
		if media := decodeFacebookCandidates(probe.Data, photoIntent); len(media) > 0 {
			return media
		}
	}

	if probe.Success {
		return decodeFacebookNested(probe.Data, photoIntent)
	}

	return nil
}

// facebookCandidate is one entry of the array-of-candidates dialect.
type facebookCandidate struct {
	URL        string `json:"url"`
	Resolution string `json:"resolution"`
	Thumbnail  string `json:"thumbnail"`
}

// decodeFacebookCandidates handles the dialect where data is a flat list of
// quality candidates. At most one item is emitted: photo beats HD beats SD.
func decodeFacebookCandidates(data json.RawMessage, photoIntent bool) []domain.MediaItem {
	var candidates []facebookCandidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil
	}

	var photo, hd, sd *domain.MediaItem

	for _, candidate := range candidates {
		if candidate.URL == "" {
			continue
		}

		switch {
		case photoIntent || hasImageExtension(candidate.URL):
			photo = &domain.MediaItem{
				Type:        domain.MediaPhoto,
				URL:         candidate.URL,
				DownloadURL: candidate.URL,
			}
		case strings.Contains(candidate.Resolution, "720p") || strings.Contains(candidate.Resolution, "HD"):
			hd = &domain.MediaItem{
				Type:        domain.MediaVideo,
				URL:         candidate.URL,
				DownloadURL: candidate.URL,
				Resolution:  candidate.Resolution,
				Thumbnail:   candidate.Thumbnail,
			}
		case strings.Contains(candidate.Resolution, "360p") || strings.Contains(candidate.Resolution, "SD"):
			sd = &domain.MediaItem{
				Type:        domain.MediaVideo,
				URL:         candidate.URL,
				DownloadURL: candidate.URL,
				Resolution:  candidate.Resolution,
				Thumbnail:   candidate.Thumbnail,
			}
		}

		// One photo or one HD candidate is enough; keep scanning only to
		// upgrade an SD match.
		if photo != nil || hd != nil {
			break
		}
	}

	switch {
	case photo != nil:
		return []domain.MediaItem{*photo}
	case hd != nil:
		return []domain.MediaItem{*hd}
	case sd != nil:
		return []domain.MediaItem{*sd}
	default:
		return nil
	}
}

// facebookNested is the data.data object of the second dialect.
type facebookNested struct {
	Data struct {
		Cover          string `json:"cover"`
		OriginCover    string `json:"origin_cover"`
		Thumbnail      string `json:"thumbnail"`
		AIDynamicCover string `json:"ai_dynamic_cover"`
		HDPlay         string `json:"hdplay"`
		Play           string `json:"play"`
	} `json:"data"`
}

// decodeFacebookNested handles the dialect where media fields live under
// data.data. The image field priority order is reverse-engineered from
// observed payloads, not an upstream contract.
func decodeFacebookNested(data json.RawMessage, photoIntent bool) []domain.MediaItem {
	var nested facebookNested
	if err := json.Unmarshal(data, &nested); err != nil {
		return nil
	}

	inner := nested.Data

	if photoIntent {
		for _, imageURL := range []string{inner.Cover, inner.OriginCover, inner.Thumbnail, inner.AIDynamicCover} {
			if imageURL == "" {
				continue
			}

			return []domain.MediaItem{{
				Type:        domain.MediaPhoto,
				URL:         imageURL,
				DownloadURL: imageURL,
			}}
		}
	}

	if inner.HDPlay != "" {
		return []domain.MediaItem{{
			Type:        domain.MediaVideo,
			URL:         inner.HDPlay,
			DownloadURL: inner.HDPlay,
			Resolution:  "HD",
			Thumbnail:   inner.Cover,
		}}
	}

	if inner.Play != "" {
		return []domain.MediaItem{{
			Type:        domain.MediaVideo,
			URL:         inner.Play,
			DownloadURL: inner.Play,
			Resolution:  "SD",
			Thumbnail:   inner.Cover,
		}}
	}

	return nil
}

func hasImageExtension(url string) bool {
	lowered := strings.ToLower(url)

	return strings.Contains(lowered, ".jpg") || strings.Contains(lowered, ".jpeg") || strings.Contains(lowered, ".png")
}
