package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/bashirmanafikhi/islamic-statuses/internal/application"
	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

// Bot presents a feed session per chat: one card at a time, with the inline
// keyboard driving every feed operation.
type Bot struct {
	api      *tgbotapi.BotAPI
	registry *application.Registry
	i18n     domain.I18nPort
	renderer domain.RendererPort
	links    application.AppLinks

	defaultLang domain.Language
	langMu      sync.Mutex
	langs       map[int64]domain.Language

	// chats currently browsing favorites instead of the main feed
	favMu  sync.Mutex
	inFavs map[int64]bool

	commands map[string]CommandHandler
	cancel   context.CancelFunc
}

func NewBot(token string, registry *application.Registry, i18n domain.I18nPort, renderer domain.RendererPort, links application.AppLinks, defaultLang domain.Language) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	bot := &Bot{
		api:         api,
		registry:    registry,
		i18n:        i18n,
		renderer:    renderer,
		links:       links,
		defaultLang: defaultLang,
		langs:       make(map[int64]domain.Language),
		inFavs:      make(map[int64]bool),
		commands:    make(map[string]CommandHandler),
	}

	bot.registerCommands()

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel

	log.Info().Str("account", b.api.Self.UserName).Msg("bot authorized")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-updates:
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) Stop() error {
	if b.cancel != nil {
		b.cancel()
	}
	b.api.StopReceivingUpdates()
	return nil
}

// DeliverAudio sends a recitation stream into the chat. Used as the audio
// transport's delivery callback.
func (b *Bot) DeliverAudio(owner string) func(ctx context.Context, url string) error {
	return func(_ context.Context, url string) error {
		chatID, err := strconv.ParseInt(owner, 10, 64)
		if err != nil {
			return fmt.Errorf("parse chat id: %w", err)
		}
		audio := tgbotapi.NewAudio(chatID, tgbotapi.FileURL(url))
		if _, err := b.api.Send(audio); err != nil {
			return fmt.Errorf("send audio: %w", err)
		}
		return nil
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message != nil && update.Message.IsCommand() {
		b.handleCommand(ctx, update.Message)
		return
	}

	if update.CallbackQuery != nil {
		b.handleCallback(ctx, update.CallbackQuery)
		return
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	handler, exists := b.commands[msg.Command()]
	if !exists {
		b.sendMessage(msg.Chat.ID, b.i18n.Get(b.lang(msg.Chat.ID), "error.unknown_command"))
		return
	}

	handler(ctx, msg)
}

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	lang := b.lang(chatID)

	// Answer callback to remove loading state
	b.api.Send(tgbotapi.NewCallback(callback.ID, ""))

	session, err := b.session(chatID)
	if err != nil {
		log.Error().Err(err).Int64("chat", chatID).Msg("get session")
		b.sendMessage(chatID, b.i18n.Get(lang, "error.generic"))
		return
	}

	data := callback.Data
	switch {
	case data == "noop":
		return

	case strings.HasPrefix(data, "lang:"):
		b.setLang(chatID, domain.Language(strings.TrimPrefix(data, "lang:")))
		b.sendMessage(chatID, b.i18n.Get(b.lang(chatID), "language.changed"))
		return

	case strings.HasPrefix(data, "filter:"):
		b.handleFilter(ctx, session, callback.Message, strings.TrimPrefix(data, "filter:"))
		return

	case data == "favs":
		b.setInFavorites(chatID, true)
		b.showFavorites(ctx, session, callback.Message)
		return

	case data == "back":
		b.setInFavorites(chatID, false)
		b.editCard(ctx, session, callback.Message)
		return

	case data == "menu":
		b.showMenu(callback.Message)
		return

	case data == "shareapp":
		b.sendMessage(chatID, b.links.ShareMessage)
		return

	case data == "feedback":
		b.sendMessage(chatID, b.i18n.Get(lang, "menu.feedback_hint", b.links.FeedbackMailto()))
		return
	}

	if b.inFavorites(chatID) {
		b.handleFavoritesCallback(ctx, session, callback, data)
		return
	}

	b.handleFeedCallback(ctx, session, callback, data)
}

func (b *Bot) handleFilter(ctx context.Context, session *application.Session, msg *tgbotapi.Message, raw string) {
	chatID := msg.Chat.ID
	lang := b.lang(chatID)

	filter, ok := domain.ParseContentFilter(raw)
	if !ok {
		b.sendMessage(chatID, b.i18n.Get(lang, "error.invalid_input"))
		return
	}

	session.Lock()
	err := session.Feed.SetFilter(filter)
	session.Unlock()
	if err != nil {
		log.Error().Err(err).Int64("chat", chatID).Msg("set filter")
		b.sendMessage(chatID, b.i18n.Get(lang, "error.generic"))
		return
	}

	b.sendMessage(chatID, b.i18n.Get(lang, "filter.changed", b.i18n.Get(lang, "filter."+raw)))
	b.sendCard(ctx, session, chatID)
}

func (b *Bot) session(chatID int64) (*application.Session, error) {
	return b.registry.Get(strconv.FormatInt(chatID, 10))
}

func (b *Bot) lang(chatID int64) domain.Language {
	b.langMu.Lock()
	defer b.langMu.Unlock()
	if lang, ok := b.langs[chatID]; ok {
		return lang
	}
	return b.defaultLang
}

func (b *Bot) setLang(chatID int64, lang domain.Language) {
	b.langMu.Lock()
	defer b.langMu.Unlock()
	b.langs[chatID] = lang
}

func (b *Bot) inFavorites(chatID int64) bool {
	b.favMu.Lock()
	defer b.favMu.Unlock()
	return b.inFavs[chatID]
}

func (b *Bot) setInFavorites(chatID int64, v bool) {
	b.favMu.Lock()
	defer b.favMu.Unlock()
	b.inFavs[chatID] = v
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Error().Err(err).Int64("chat", chatID).Msg("send message")
	}
}
