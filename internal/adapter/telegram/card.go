package telegram

import (
	"context"
	"fmt"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/bashirmanafikhi/islamic-statuses/internal/application"
	"github.com/bashirmanafikhi/islamic-statuses/internal/assets"
	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

// pagination is triggered when the pointer gets this close to the end,
// mirroring the original viewport's end-reached threshold.
const nearEndWindow = 2

// sendCard renders and sends the session's current card.
func (b *Bot) sendCard(ctx context.Context, session *application.Session, chatID int64) {
	session.Lock()
	card := session.Feed.Current()
	caption := b.buildCaption(chatID, session.Feed, card)
	keyboard := b.feedKeyboard(chatID, session, card)
	session.Unlock()

	if card == nil {
		b.sendMessage(chatID, b.i18n.Get(b.lang(chatID), "error.generic"))
		return
	}

	b.sendRendered(card, chatID, caption, keyboard)
}

// editCard replaces the previous card message with a fresh one.
func (b *Bot) editCard(ctx context.Context, session *application.Session, msg *tgbotapi.Message) {
	b.api.Send(tgbotapi.NewDeleteMessage(msg.Chat.ID, msg.MessageID))
	b.sendCard(ctx, session, msg.Chat.ID)
}

func (b *Bot) sendRendered(card *domain.Card, chatID int64, caption string, keyboard tgbotapi.InlineKeyboardMarkup) {
	path, err := b.renderer.Capture(card)
	if err != nil {
		log.Warn().Err(err).Str("card", card.ID).Msg("render card, sending text only")
		reply := tgbotapi.NewMessage(chatID, caption)
		reply.ReplyMarkup = keyboard
		b.api.Send(reply)
		return
	}
	defer os.Remove(path)

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path))
	photo.Caption = caption
	photo.ReplyMarkup = keyboard
	if _, err := b.api.Send(photo); err != nil {
		log.Error().Err(err).Int64("chat", chatID).Msg("send card photo")
	}
}

func (b *Bot) buildCaption(chatID int64, feed *application.Feed, card *domain.Card) string {
	if card == nil {
		return ""
	}
	lang := b.lang(chatID)

	var sb strings.Builder
	switch card.Type {
	case domain.ContentQuran:
		if card.Quran == nil {
			break
		}
		sb.WriteString(card.Quran.Verse.Text)
		sb.WriteString("\n\n")
		sb.WriteString(fmt.Sprintf("%s · %s", card.Quran.Surah.NameArabic, card.Quran.Verse.VerseKey))

		switch feed.TafseerMode() {
		case domain.TafseerText:
			if card.Quran.Verse.Tafseer != "" {
				sb.WriteString("\n\n" + b.i18n.Get(lang, "card.tafseer") + "\n" + card.Quran.Verse.Tafseer)
			}
		case domain.TafseerMeanings:
			if card.Quran.Verse.Meanings != "" {
				sb.WriteString("\n\n" + b.i18n.Get(lang, "card.meanings") + "\n" + card.Quran.Verse.Meanings)
			}
		}
	case domain.ContentHadith:
		if card.Hadith == nil {
			break
		}
		sb.WriteString(card.Hadith.ArabicText)
		if feed.ShowHadithTranslation() && card.Hadith.EnglishText != "" {
			sb.WriteString("\n\n")
			if card.Hadith.EnglishNarrator != "" {
				sb.WriteString(card.Hadith.EnglishNarrator + " ")
			}
			sb.WriteString(card.Hadith.EnglishText)
		}
		if card.Hadith.Title != "" {
			sb.WriteString("\n\n" + card.Hadith.Title)
		}
	}

	return sb.String()
}

func (b *Bot) feedKeyboard(chatID int64, session *application.Session, card *domain.Card) tgbotapi.InlineKeyboardMarkup {
	lang := b.lang(chatID)
	feed := session.Feed

	var rows [][]tgbotapi.InlineKeyboardButton

	nav := []tgbotapi.InlineKeyboardButton{}
	if feed.CurrentIndex() > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("⬅️", "nav:prev"))
	}
	nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
		fmt.Sprintf("%d/%d", feed.CurrentIndex()+1, feed.Len()), "noop"))
	nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("➡️", "nav:next"))
	rows = append(rows, nav)

	favIcon := "🤍"
	if card != nil && session.Store.Exists(context.Background(), card.Type, card.ContentID(), card.BackgroundIndex) {
		favIcon = "❤️"
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔄 "+b.i18n.Get(lang, "action.new_content"), "newcontent"),
		tgbotapi.NewInlineKeyboardButtonData("🖼", "background"),
		tgbotapi.NewInlineKeyboardButtonData("🔤", "font"),
		tgbotapi.NewInlineKeyboardButtonData(favIcon, "fav"),
	))

	if card != nil && card.Type == domain.ContentQuran && card.Quran != nil {
		audioIcon := "▶️"
		if session.Player.IsPlaying(card.Quran.Verse.SurahNumber, card.Quran.Verse.AyahNumber) {
			audioIcon = "⏸"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(audioIcon+" "+b.i18n.Get(lang, "action.audio"), "audio"),
			tgbotapi.NewInlineKeyboardButtonData("📖 "+b.i18n.Get(lang, "action.tafseer"), "tafseer"),
		))
	}
	if card != nil && card.Type == domain.ContentHadith {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌐 "+b.i18n.Get(lang, "action.translation"), "translation"),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📤 "+b.i18n.Get(lang, "action.share"), "share"),
		tgbotapi.NewInlineKeyboardButtonData("☰ "+b.i18n.Get(lang, "action.menu"), "menu"),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) handleFeedCallback(ctx context.Context, session *application.Session, callback *tgbotapi.CallbackQuery, data string) {
	chatID := callback.Message.Chat.ID
	lang := b.lang(chatID)

	switch data {
	case "nav:prev":
		session.Lock()
		session.Feed.VisibleIndexChanged(session.Feed.CurrentIndex() - 1)
		session.Unlock()

	case "nav:next":
		session.Lock()
		next := session.Feed.CurrentIndex() + 1
		if next >= session.Feed.Len()-nearEndWindow {
			if err := session.Feed.Extend(); err != nil {
				log.Error().Err(err).Int64("chat", chatID).Msg("extend feed")
			}
		}
		session.Feed.VisibleIndexChanged(next)
		session.Unlock()

	case "newcontent":
		session.Lock()
		err := session.Feed.RegenerateContent(session.Feed.CurrentIndex())
		session.Unlock()
		if err != nil {
			log.Error().Err(err).Int64("chat", chatID).Msg("regenerate content")
			b.sendMessage(chatID, b.i18n.Get(lang, "error.generic"))
			return
		}

	case "background":
		session.Lock()
		card := session.Feed.Current()
		var err error
		if card != nil {
			err = session.Feed.SetBackground(session.Feed.CurrentIndex(), (card.BackgroundIndex+1)%len(assets.Backgrounds))
		}
		session.Unlock()
		if err != nil {
			log.Error().Err(err).Int64("chat", chatID).Msg("set background")
			return
		}

	case "font":
		session.Lock()
		err := session.Feed.RandomizeFont(session.Feed.CurrentIndex())
		session.Unlock()
		if err != nil {
			log.Error().Err(err).Int64("chat", chatID).Msg("randomize font")
			return
		}

	case "fav":
		session.Lock()
		card := session.Feed.Current()
		session.Unlock()
		if card == nil {
			return
		}
		isFav, err := session.Store.Toggle(ctx, card.Type, card.ContentID(), card.BackgroundIndex, card.FontID)
		if err != nil {
			log.Error().Err(err).Int64("chat", chatID).Msg("toggle favorite")
			b.sendMessage(chatID, b.i18n.Get(lang, "error.favorite"))
			return
		}
		key := "favorite.removed"
		if isFav {
			key = "favorite.added"
		}
		b.sendMessage(chatID, b.i18n.Get(lang, key))

	case "audio":
		session.Lock()
		card := session.Feed.Current()
		session.Unlock()
		if card == nil || card.Type != domain.ContentQuran || card.Quran == nil {
			return
		}
		if err := session.Player.PlayOrToggle(ctx, card.Quran.Verse.SurahNumber, card.Quran.Verse.AyahNumber); err != nil {
			log.Error().Err(err).Int64("chat", chatID).Msg("play audio")
			b.sendMessage(chatID, b.i18n.Get(lang, "error.audio"))
			return
		}

	case "tafseer":
		session.Lock()
		session.Feed.CycleTafseerMode()
		session.Unlock()

	case "translation":
		session.Lock()
		session.Feed.ToggleHadithTranslation()
		session.Unlock()

	case "share":
		session.Lock()
		card := session.Feed.Current()
		session.Unlock()
		b.shareCard(chatID, card)
		return

	default:
		return
	}

	b.editCard(ctx, session, callback.Message)
}

// shareCard captures the card and sends the plain image, ready to forward.
func (b *Bot) shareCard(chatID int64, card *domain.Card) {
	lang := b.lang(chatID)
	if card == nil {
		return
	}

	path, err := b.renderer.Capture(card)
	if err != nil {
		log.Error().Err(err).Str("card", card.ID).Msg("capture card for share")
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

func (b *Bot) showMenu(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	lang := b.lang(chatID)

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❤️ "+b.i18n.Get(lang, "menu.favorites"), "favs"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(b.i18n.Get(lang, "filter.quran"), "filter:quran"),
			tgbotapi.NewInlineKeyboardButtonData(b.i18n.Get(lang, "filter.hadith"), "filter:hadith"),
			tgbotapi.NewInlineKeyboardButtonData(b.i18n.Get(lang, "filter.both"), "filter:both"),
		),
	}
	if b.links.StoreURL != "" {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("⭐ "+b.i18n.Get(lang, "menu.rate"), b.links.StoreURL),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📣 "+b.i18n.Get(lang, "menu.share_app"), "shareapp"),
		tgbotapi.NewInlineKeyboardButtonData("✉️ "+b.i18n.Get(lang, "menu.feedback"), "feedback"),
	))

	reply := tgbotapi.NewMessage(chatID, b.i18n.Get(lang, "menu.title"))
	reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.api.Send(reply)
}
