// Package delivery turns normalized media envelopes into outbound chat
// messages: single sends with progress reporting, or grouped album sends
// honoring the transport's batch limits.
package delivery

import (
	"context"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
	"github.com/mhaminn/social-scraper-bot/internal/fetch"
)

// File is one in-memory attachment.
type File struct {
	Name string
	Data []byte
}

// Audio carries the extra metadata the transport accepts for audio sends.
type Audio struct {
	File      File
	Caption   string
	Title     string
	Performer string
	Duration  int
	Thumbnail *File
}

// GroupItem is one attachment of a media group send.
type GroupItem struct {
	Type    domain.MediaType
	File    File
	Caption string
}

// Transport is the chat-transport surface the dispatcher needs. The bot
// package implements it over the Telegram API.
type Transport interface {
	SendMessage(chatID int64, text string) (int, error)
	EditMessage(chatID int64, messageID int, text string) error
	DeleteMessage(chatID int64, messageID int) error
	SendPhoto(chatID int64, file File, caption string) error
	SendVideo(chatID int64, file File, caption string) error
	SendAudio(chatID int64, audio Audio) error
	SendDocument(chatID int64, file File, caption string) error
	SendMediaGroup(chatID int64, items []GroupItem) error
}

// MediaFetcher retrieves raw media bytes. Implemented by fetch.Fetcher.
type MediaFetcher interface {
	Fetch(ctx context.Context, rawURL string, onProgress fetch.ProgressFunc) ([]byte, error)
}
