package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

type CommandHandler func(ctx context.Context, msg *tgbotapi.Message)

// registerCommands registers all bot commands
func (b *Bot) registerCommands() {
	b.commands = map[string]CommandHandler{
		"start":     b.commandStart,
		"favorites": b.commandFavorites,
		"filter":    b.commandFilter,
		"language":  b.commandLanguage,
		"help":      b.commandHelp,
	}

	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Show the card feed"},
		{Command: "favorites", Description: "Browse favorite cards"},
		{Command: "filter", Description: "Choose quran, hadith or both"},
		{Command: "language", Description: "Change language"},
		{Command: "help", Description: "Show help"},
	}

	cmdConfig := tgbotapi.NewSetMyCommands(commands...)
	if _, err := b.api.Request(cmdConfig); err != nil {
		log.Error().Err(err).Msg("set bot commands")
	}
}

func (b *Bot) commandStart(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	lang := b.lang(chatID)

	session, err := b.session(chatID)
	if err != nil {
		log.Error().Err(err).Int64("chat", chatID).Msg("get session")
		b.sendMessage(chatID, b.i18n.Get(lang, "error.generic"))
		return
	}

	b.setInFavorites(chatID, false)
	b.sendMessage(chatID, b.i18n.Get(lang, "welcome.message"))
	b.sendCard(ctx, session, chatID)
}

func (b *Bot) commandFavorites(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	session, err := b.session(chatID)
	if err != nil {
		log.Error().Err(err).Int64("chat", chatID).Msg("get session")
		b.sendMessage(chatID, b.i18n.Get(b.lang(chatID), "error.generic"))
		return
	}

	b.setInFavorites(chatID, true)
	b.sendFavorites(ctx, session, chatID)
}

func (b *Bot) commandFilter(_ context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	lang := b.lang(chatID)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(b.i18n.Get(lang, "filter.quran"), "filter:quran"),
			tgbotapi.NewInlineKeyboardButtonData(b.i18n.Get(lang, "filter.hadith"), "filter:hadith"),
			tgbotapi.NewInlineKeyboardButtonData(b.i18n.Get(lang, "filter.both"), "filter:both"),
		),
	)

	reply := tgbotapi.NewMessage(chatID, b.i18n.Get(lang, "filter.select"))
	reply.ReplyMarkup = keyboard
	b.api.Send(reply)
}

func (b *Bot) commandLanguage(_ context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("العربية", "lang:ar"),
			tgbotapi.NewInlineKeyboardButtonData("English", "lang:en"),
		),
	)

	reply := tgbotapi.NewMessage(chatID, b.i18n.Get(b.lang(chatID), "language.select"))
	reply.ReplyMarkup = keyboard
	b.api.Send(reply)
}

func (b *Bot) commandHelp(_ context.Context, msg *tgbotapi.Message) {
	b.sendMessage(msg.Chat.ID, b.i18n.Get(b.lang(msg.Chat.ID), "help.message"))
}
