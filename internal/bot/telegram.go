package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
	"github.com/mhaminn/social-scraper-bot/internal/delivery"
)

// transport adapts the Telegram API to the delivery.Transport surface.
type transport struct {
	api    *tgbotapi.BotAPI
	logger *zerolog.Logger
}

func newTransport(api *tgbotapi.BotAPI, logger *zerolog.Logger) *transport {
	return &transport{api: api, logger: logger}
}

func (t *transport) SendMessage(chatID int64, text string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)

	sent, err := t.api.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("send message to chat %d: %w", chatID, err)
	}

	return sent.MessageID, nil
}

func (t *transport) EditMessage(chatID int64, messageID int, text string) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)

	if _, err := t.api.Send(edit); err != nil {
		return fmt.Errorf("edit message %d in chat %d: %w", messageID, chatID, err)
	}

	return nil
}

func (t *transport) DeleteMessage(chatID int64, messageID int) error {
	del := tgbotapi.NewDeleteMessage(chatID, messageID)

	if _, err := t.api.Request(del); err != nil {
		return fmt.Errorf("delete message %d in chat %d: %w", messageID, chatID, err)
	}

	return nil
}

func (t *transport) SendPhoto(chatID int64, file delivery.File, caption string) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: file.Name, Bytes: file.Data})
	photo.Caption = caption

	if _, err := t.api.Send(photo); err != nil {
		return fmt.Errorf("send photo to chat %d: %w", chatID, err)
	}

	return nil
}

func (t *transport) SendVideo(chatID int64, file delivery.File, caption string) error {
	video := tgbotapi.NewVideo(chatID, tgbotapi.FileBytes{Name: file.Name, Bytes: file.Data})
	video.Caption = caption
	video.SupportsStreaming = true

	if _, err := t.api.Send(video); err != nil {
		return fmt.Errorf("send video to chat %d: %w", chatID, err)
	}

	return nil
}

func (t *transport) SendAudio(chatID int64, audio delivery.Audio) error {
	msg := tgbotapi.NewAudio(chatID, tgbotapi.FileBytes{Name: audio.File.Name, Bytes: audio.File.Data})
	msg.Caption = audio.Caption
	msg.Title = audio.Title
	msg.Performer = audio.Performer
	msg.Duration = audio.Duration

	if audio.Thumbnail != nil {
		msg.Thumb = tgbotapi.FileBytes{Name: audio.Thumbnail.Name, Bytes: audio.Thumbnail.Data}
	}

	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send audio to chat %d: %w", chatID, err)
	}

	return nil
}

func (t *transport) SendDocument(chatID int64, file delivery.File, caption string) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: file.Name, Bytes: file.Data})
	doc.Caption = caption

	if _, err := t.api.Send(doc); err != nil {
		return fmt.Errorf("send document to chat %d: %w", chatID, err)
	}

	return nil
}

func (t *transport) SendMediaGroup(chatID int64, items []delivery.GroupItem) error {
	media := make([]interface{}, 0, len(items))

	for _, item := range items {
		file := tgbotapi.FileBytes{Name: item.File.Name, Bytes: item.File.Data}

		switch item.Type {
		case domain.MediaVideo:
			video := tgbotapi.NewInputMediaVideo(file)
			video.Caption = item.Caption
			media = append(media, video)
		default:
			photo := tgbotapi.NewInputMediaPhoto(file)
			photo.Caption = item.Caption
			media = append(media, photo)
		}
	}

	group := tgbotapi.NewMediaGroup(chatID, media)

	if _, err := t.api.SendMediaGroup(group); err != nil {
		return fmt.Errorf("send media group to chat %d: %w", chatID, err)
	}

	return nil
}

// sendTyping shows the typing indicator; failures are only logged.
func (t *transport) sendTyping(chatID int64) {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)

	if _, err := t.api.Request(action); err != nil {
		t.logger.Debug().Err(err).Int64("chat_id", chatID).Msg("failed to send chat action")
	}
}
