package delivery

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
	errs "github.com/mhaminn/social-scraper-bot/internal/core/errors"
	"github.com/mhaminn/social-scraper-bot/internal/core/links"
	"github.com/mhaminn/social-scraper-bot/internal/fetch"
	"github.com/mhaminn/social-scraper-bot/internal/platform/observability"
)

const (
	// The protocol allows 10 items per media group, but the album endpoint
	// starts failing with image_process_failed above five concrete
	// attachments, so group calls never exceed this.
	maxGroupAttachments = 5

	slideshowBatchSize = 5

	msgNoMedia        = "❌ No media found."
	msgNoMediaURL     = "❌ Media URL not found."
	msgTooLarge       = "⚠️ The media is too large to send (limit 100 MB)."
	msgDownloadFailed = "❌ Failed to download media."
	msgNothingSent    = "❌ None of the media items could be sent."
)

// Dispatcher sends normalized media envelopes through the chat transport.
type Dispatcher struct {
	transport   Transport
	fetcher     MediaFetcher
	maxPerGroup int
	logger      *zerolog.Logger
}

func New(transport Transport, fetcher MediaFetcher, maxPerGroup int, logger *zerolog.Logger) *Dispatcher {
	if maxPerGroup <= 0 {
		maxPerGroup = 10
	}

	return &Dispatcher{
		transport:   transport,
		fetcher:     fetcher,
		maxPerGroup: maxPerGroup,
		logger:      logger,
	}
}

// Deliver sends the envelope's media to the chat. Items without a usable
// source URL are dropped. Failures are converted into user notices; Deliver
// itself never fails.
func (d *Dispatcher) Deliver(ctx context.Context, chatID int64, envelope domain.MediaEnvelope, originalURL string) {
	if !envelope.OK() {
		d.notify(chatID, msgNoMedia)

		return
	}

	media := deliverable(envelope.Data.Media)
	if len(media) == 0 {
		d.notify(chatID, msgNoMedia)

		return
	}

	if links.Classify(originalURL) == domain.PlatformTikTok {
		if d.deliverSlideshow(ctx, chatID, media, originalURL) {
			return
		}
	}

	if len(media) == 1 {
		d.sendSingle(ctx, chatID, media[0], envelope.Data, originalURL)

		return
	}

	d.sendGroup(ctx, chatID, media, originalURL, true)

	if len(media) > d.maxPerGroup {
		d.notify(chatID, fmt.Sprintf("⚠️ Only %d of %d media items could be sent in one group.", d.maxPerGroup, len(media)))
	}
}

// deliverSlideshow splits large TikTok photo sets into sequential batches of
// five, sending any audio track separately at the end. Returns false when
// the envelope is not a large slideshow and the regular path should run.
func (d *Dispatcher) deliverSlideshow(ctx context.Context, chatID int64, media []domain.MediaItem, originalURL string) bool {
	var photos []domain.MediaItem

	var audio *domain.MediaItem

	for i := range media {
		switch media[i].Type {
		case domain.MediaPhoto:
			photos = append(photos, media[i])
		case domain.MediaAudio:
			if audio == nil {
				audio = &media[i]
			}
		}
	}

	if len(photos) <= slideshowBatchSize {
		return false
	}

	for start := 0; start < len(photos); start += slideshowBatchSize {
		end := min(start+slideshowBatchSize, len(photos))

		d.sendGroup(ctx, chatID, photos[start:end], originalURL, start == 0)
	}

	if audio != nil {
		d.sendSingle(ctx, chatID, *audio, nil, originalURL)
	}

	return true
}

func (d *Dispatcher) sendSingle(ctx context.Context, chatID int64, item domain.MediaItem, data *domain.EnvelopeData, originalURL string) {
	sourceURL := item.SourceURL()
	if sourceURL == "" {
		d.notify(chatID, msgNoMediaURL)

		return
	}

	fileData, err := d.fetchWithProgress(ctx, chatID, sourceURL)
	if err != nil {
		if errs.Is(err, errs.ErrTooLarge) {
			d.notify(chatID, msgTooLarge)

			return
		}

		d.logger.Error().Err(err).Str("url", sourceURL).Msg("media download failed")
		d.notify(chatID, msgDownloadFailed)

		return
	}

	file := File{Name: fileNameFor(sourceURL, item.Type), Data: fileData}
	caption := links.Caption(originalURL)

	switch item.Type {
	case domain.MediaVideo:
		err = d.transport.SendVideo(chatID, file, caption)
	case domain.MediaAudio:
		err = d.transport.SendAudio(chatID, d.buildAudio(ctx, item, data, file, caption, originalURL))
	case domain.MediaPhoto:
		err = d.transport.SendPhoto(chatID, file, caption)
	default:
		err = d.transport.SendDocument(chatID, file, caption)
	}

	if err != nil {
		d.handleSendError(chatID, err)

		return
	}

	observability.MediaDelivered.WithLabelValues(string(item.Type)).Inc()
}

// buildAudio assembles the audio payload: title/performer/duration from item
// metadata (falling back to the envelope), a best-effort thumbnail download,
// and the rich caption for YouTube audio.
func (d *Dispatcher) buildAudio(ctx context.Context, item domain.MediaItem, data *domain.EnvelopeData, file File, caption string, originalURL string) Audio {
	audio := Audio{File: file, Caption: caption}

	if data != nil {
		audio.Title = data.Title
		audio.Performer = data.Author
	}

	if meta := item.Metadata; meta != nil {
		if meta.Title != "" {
			audio.Title = meta.Title
		}

		if meta.Performer != "" {
			audio.Performer = meta.Performer
		}

		audio.Duration = meta.Duration

		if links.Classify(originalURL) == domain.PlatformYouTube {
			audio.Caption = fmt.Sprintf("🎵 %s\n👤 %s\n👁️ %d views\n🎚️ %s", audio.Title, audio.Performer, meta.Views, meta.Quality)
		}
	}

	if item.Thumbnail != "" {
		thumbData, err := d.fetcher.Fetch(ctx, item.Thumbnail, nil)
		if err != nil {
			d.logger.Warn().Err(err).Str("url", item.Thumbnail).Msg("thumbnail download failed")
		} else {
			audio.Thumbnail = &File{Name: "thumbnail.jpg", Data: thumbData}
		}
	}

	return audio
}

// sendGroup fetches each item best-effort and sends one media group call of
// at most maxGroupAttachments. Failed or oversized items are skipped, not
// fatal for the batch.
func (d *Dispatcher) sendGroup(ctx context.Context, chatID int64, media []domain.MediaItem, originalURL string, withCaption bool) {
	if len(media) > d.maxPerGroup {
		media = media[:d.maxPerGroup]
	}

	group := make([]GroupItem, 0, maxGroupAttachments)

	for i, item := range media {
		if len(group) >= maxGroupAttachments {
			d.logger.Info().Int("index", i).Msg("skipping media item to stay under group attachment cap")

			continue
		}

		sourceURL := item.SourceURL()
		if sourceURL == "" {
			d.logger.Error().Int("index", i).Msg("no media URL for group item")

			continue
		}

		fileData, err := d.fetcher.Fetch(ctx, sourceURL, nil)
		if err != nil {
			d.logger.Warn().Err(err).Int("index", i).Str("url", sourceURL).Msg("skipping group item")

			continue
		}

		caption := ""
		if withCaption && len(group) == 0 {
			caption = links.Caption(originalURL)
		}

		itemType := item.Type
		if itemType != domain.MediaVideo {
			itemType = domain.MediaPhoto
		}

		group = append(group, GroupItem{
			Type:    itemType,
			File:    File{Name: fileNameFor(sourceURL, itemType), Data: fileData},
			Caption: caption,
		})
	}

	if len(group) == 0 {
		d.notify(chatID, msgNothingSent)

		return
	}

	d.logger.Info().Int("items", len(group)).Msg("sending media group")

	if err := d.transport.SendMediaGroup(chatID, group); err != nil {
		d.handleSendError(chatID, err)

		return
	}

	for _, item := range group {
		observability.MediaDelivered.WithLabelValues(string(item.Type)).Inc()
	}
}

// fetchWithProgress downloads one item while keeping the user updated
// through an editable progress message, which is removed afterwards.
func (d *Dispatcher) fetchWithProgress(ctx context.Context, chatID int64, sourceURL string) ([]byte, error) {
	progressID, msgErr := d.transport.SendMessage(chatID, "⏳ Downloading: 0%")

	onProgress := func(downloaded, total int64) {
		if msgErr != nil {
			return
		}

		if err := d.transport.EditMessage(chatID, progressID, formatProgress(downloaded, total)); err != nil {
			d.logger.Debug().Err(err).Msg("progress edit failed")
		}
	}

	data, err := d.fetcher.Fetch(ctx, sourceURL, onProgress)

	if msgErr == nil {
		if delErr := d.transport.DeleteMessage(chatID, progressID); delErr != nil {
			d.logger.Debug().Err(delErr).Msg("progress delete failed")
		}
	}

	return data, err
}

func (d *Dispatcher) handleSendError(chatID int64, err error) {
	d.logger.Error().Err(err).Msg("media send failed")

	text := err.Error()
	if strings.Contains(text, "Request Entity Too Large") || strings.Contains(text, "413") {
		d.notify(chatID, msgTooLarge)

		return
	}

	d.notify(chatID, "❌ Failed to send media: "+text)
}

func (d *Dispatcher) notify(chatID int64, text string) {
	if _, err := d.transport.SendMessage(chatID, text); err != nil {
		d.logger.Error().Err(err).Msg("failed to send notice")
	}
}

// deliverable drops items with no source location.
func deliverable(media []domain.MediaItem) []domain.MediaItem {
	kept := make([]domain.MediaItem, 0, len(media))

	for _, item := range media {
		if item.SourceURL() != "" {
			kept = append(kept, item)
		}
	}

	return kept
}

func formatProgress(downloaded, total int64) string {
	downloadedMB := float64(downloaded) / (1024 * 1024)

	if total <= 0 {
		return fmt.Sprintf("⏳ Downloading: %.1f MB", downloadedMB)
	}

	totalMB := float64(total) / (1024 * 1024)

	percent := min(int(downloaded*100/total), 100)

	const barLength = 10

	filled := barLength * percent / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barLength-filled)

	return fmt.Sprintf("⏳ Downloading: %d%% [%s] %.1f/%.1f MB", percent, bar, downloadedMB, totalMB)
}

func fileNameFor(sourceURL string, itemType domain.MediaType) string {
	fallback := "media"

	switch itemType {
	case domain.MediaVideo:
		fallback = "video.mp4"
	case domain.MediaAudio:
		fallback = "audio.mp3"
	case domain.MediaPhoto:
		fallback = "photo.jpg"
	}

	return fetch.FileName(sourceURL, fallback)
}
