package telegram

import (
	"context"
	"fmt"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/bashirmanafikhi/islamic-statuses/internal/application"
	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

// sendFavorites rebuilds the favorites projection and shows the current one.
func (b *Bot) sendFavorites(ctx context.Context, session *application.Session, chatID int64) {
	lang := b.lang(chatID)

	session.Lock()
	session.Favorites.Reload(ctx)
	empty := session.Favorites.Len() == 0
	session.Unlock()

	if empty {
		b.setInFavorites(chatID, false)
		b.sendMessage(chatID, b.i18n.Get(lang, "favorites.empty"))
		return
	}

	b.sendFavoriteCard(session, chatID)
}

// showFavorites replaces the feed message with the favorites view.
func (b *Bot) showFavorites(ctx context.Context, session *application.Session, msg *tgbotapi.Message) {
	b.api.Send(tgbotapi.NewDeleteMessage(msg.Chat.ID, msg.MessageID))
	b.sendFavorites(ctx, session, msg.Chat.ID)
}

func (b *Bot) sendFavoriteCard(session *application.Session, chatID int64) {
	lang := b.lang(chatID)

	session.Lock()
	index := session.Favorites.CurrentIndex()
	card, err := session.Favorites.Card(index)
	total := session.Favorites.Len()
	session.Unlock()

	if err != nil {
		b.sendMessage(chatID, b.i18n.Get(lang, "error.generic"))
		return
	}

	caption := b.favoriteCaption(card)
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️", "fnav:prev"),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%d/%d", index+1, total), "noop"),
			tgbotapi.NewInlineKeyboardButtonData("➡️", "fnav:next"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 "+b.i18n.Get(lang, "favorites.remove"), "fdel"),
			tgbotapi.NewInlineKeyboardButtonData("📤 "+b.i18n.Get(lang, "action.share"), "fshare"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ "+b.i18n.Get(lang, "nav.back"), "back"),
		),
	)

	b.sendRendered(card, chatID, caption, keyboard)
}

// favoriteCaption shows the raw card text, ignoring session toggles.
func (b *Bot) favoriteCaption(card *domain.Card) string {
	var sb strings.Builder
	switch card.Type {
	case domain.ContentQuran:
		if card.Quran == nil {
			break
		}
		sb.WriteString(card.Quran.Verse.Text)
		sb.WriteString("\n\n")
		sb.WriteString(fmt.Sprintf("%s · %s", card.Quran.Surah.NameArabic, card.Quran.Verse.VerseKey))
	case domain.ContentHadith:
		if card.Hadith == nil {
			break
		}
		sb.WriteString(card.Hadith.ArabicText)
		if card.Hadith.Title != "" {
			sb.WriteString("\n\n" + card.Hadith.Title)
		}
	}
	return sb.String()
}

func (b *Bot) handleFavoritesCallback(ctx context.Context, session *application.Session, callback *tgbotapi.CallbackQuery, data string) {
	chatID := callback.Message.Chat.ID
	lang := b.lang(chatID)

	switch data {
	case "fnav:prev":
		session.Lock()
		session.Favorites.VisibleIndexChanged(session.Favorites.CurrentIndex() - 1)
		session.Unlock()

	case "fnav:next":
		session.Lock()
		session.Favorites.VisibleIndexChanged(session.Favorites.CurrentIndex() + 1)
		session.Unlock()

	case "fdel":
		session.Lock()
		card, err := session.Favorites.Card(session.Favorites.CurrentIndex())
		session.Unlock()
		if err != nil {
			return
		}
		if err := session.Favorites.Remove(ctx, card.ID); err != nil {
			log.Error().Err(err).Int64("chat", chatID).Msg("remove favorite")
			b.sendMessage(chatID, b.i18n.Get(lang, "error.favorite"))
			return
		}
		session.Lock()
		empty := session.Favorites.Len() == 0
		session.Unlock()
		if empty {
			b.setInFavorites(chatID, false)
			b.api.Send(tgbotapi.NewDeleteMessage(chatID, callback.Message.MessageID))
			b.sendMessage(chatID, b.i18n.Get(lang, "favorites.empty"))
			return
		}

	case "fshare":
		session.Lock()
		card, err := session.Favorites.Card(session.Favorites.CurrentIndex())
		session.Unlock()
		if err != nil {
			return
		}
		b.shareFavorite(chatID, card.ID, session)
		return

	default:
		return
	}

	b.api.Send(tgbotapi.NewDeleteMessage(chatID, callback.Message.MessageID))
	b.sendFavoriteCard(session, chatID)
}

func (b *Bot) shareFavorite(chatID int64, cardID string, session *application.Session) {
	lang := b.lang(chatID)

	session.Lock()
	var path string
	var err error
	for i := 0; i < session.Favorites.Len(); i++ {
		card, cardErr := session.Favorites.Card(i)
		if cardErr == nil && card.ID == cardID {
			path, err = b.renderer.Capture(card)
			break
		}
	}
	session.Unlock()

	if err != nil || path == "" {
		log.Error().Err(err).Str("card", cardID).Msg("capture favorite for share")
		b.sendMessage(chatID, b.i18n.Get(lang, "error.share"))
		return
	}
	defer os.Remove(path)

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path))
	photo.Caption = b.i18n.Get(lang, "share.caption")
	if _, err := b.api.Send(photo); err != nil {
		log.Error().Err(err).Int64("chat", chatID).Msg("send share photo")
		b.sendMessage(chatID, b.i18n.Get(lang, "error.share"))
	}
}
