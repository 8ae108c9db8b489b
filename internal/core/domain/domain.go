// Package domain defines the normalized media model shared by the platform
// adapters, the delivery dispatcher and the bot handlers.
package domain

// Platform identifies the social network a submitted link belongs to.
type Platform string

// Supported platforms, in classification precedence order.
const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformUnknown   Platform = "unknown"
)

// Platforms lists the supported platforms in precedence order.
var Platforms = []Platform{PlatformInstagram, PlatformFacebook, PlatformTikTok, PlatformYouTube}

func (p Platform) String() string {
	return string(p)
}

// MediaType classifies one deliverable media unit.
type MediaType string

const (
	MediaPhoto MediaType = "photo"
	MediaVideo MediaType = "video"
	MediaAudio MediaType = "audio"
	// MediaDocument is the fallback for content the transport has no richer
	// primitive for.
	MediaDocument MediaType = "document"
)

// Metadata carries optional structured info about a media item. Only the
// YouTube adapter populates it.
type Metadata struct {
	Title       string
	Performer   string
	Duration    int
	Views       int
	Description string
	Quality     string
}

// MediaItem is one deliverable unit extracted from an upstream response.
type MediaItem struct {
	Type        MediaType
	URL         string
	DownloadURL string
	Thumbnail   string
	Resolution  string
	Quality     string
	// Index preserves slideshow ordering for multi-photo content.
	Index    int
	Metadata *Metadata
}

// SourceURL returns the preferred location to download the item from.
// An item where this is empty is undeliverable and gets dropped.
func (m MediaItem) SourceURL() string {
	if m.DownloadURL != "" {
		return m.DownloadURL
	}

	return m.URL
}

// EnvelopeData is the payload of a successful adapter fetch. Media order
// matters: the first item carries the caption in grouped sends.
type EnvelopeData struct {
	Media  []MediaItem
	Title  string
	Author string
}

// EnvelopeStatus is the outcome of one adapter call.
type EnvelopeStatus string

const (
	StatusSuccess EnvelopeStatus = "success"
	StatusError   EnvelopeStatus = "error"
)

// MediaEnvelope is the normalized result of one adapter call. Adapters that
// would produce an empty media list return an error envelope instead, so
// StatusSuccess implies Data with at least one item.
type MediaEnvelope struct {
	Status  EnvelopeStatus
	Message string
	Data    *EnvelopeData
}

// OK reports whether the envelope carries deliverable media.
func (e MediaEnvelope) OK() bool {
	return e.Status == StatusSuccess && e.Data != nil && len(e.Data.Media) > 0
}

// SuccessEnvelope wraps extracted media into a success envelope.
func SuccessEnvelope(data EnvelopeData) MediaEnvelope {
	return MediaEnvelope{Status: StatusSuccess, Data: &data}
}

// ErrorEnvelope builds an error envelope with a user-facing message.
func ErrorEnvelope(message string) MediaEnvelope {
	return MediaEnvelope{Status: StatusError, Message: message}
}
