package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bashirmanafikhi/islamic-statuses/internal/adapter/audio"
	"github.com/bashirmanafikhi/islamic-statuses/internal/adapter/content"
	"github.com/bashirmanafikhi/islamic-statuses/internal/adapter/httpapi"
	"github.com/bashirmanafikhi/islamic-statuses/internal/adapter/i18n"
	"github.com/bashirmanafikhi/islamic-statuses/internal/adapter/redisstore"
	"github.com/bashirmanafikhi/islamic-statuses/internal/adapter/render"
	"github.com/bashirmanafikhi/islamic-statuses/internal/adapter/telegram"
	"github.com/bashirmanafikhi/islamic-statuses/internal/application"
	"github.com/bashirmanafikhi/islamic-statuses/internal/config"
	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("application error")
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log.Info().Str("path", configPath).Msg("configuration loaded")

	i18nService, err := i18n.NewI18n(cfg.App.LocalesDir)
	if err != nil {
		return err
	}
	log.Info().Msg("i18n initialized")

	store, err := content.NewStore(cfg.Content.Dir, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return err
	}
	log.Info().
		Int("verses", store.VerseCount()).
		Int("hadiths", store.HadithCount()).
		Msg("content loaded")

	redisClient, err := redisstore.NewClient(cfg.Redis.URI)
	if err != nil {
		return err
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected")

	renderer := render.NewRenderer(cfg.Content.BackgroundsDir, cfg.Content.FontsDir, cfg.App.Watermark)

	links := application.AppLinks{
		StoreURL:        cfg.App.StoreURL,
		ShareMessage:    cfg.App.ShareMessage,
		FeedbackEmail:   cfg.App.FeedbackEmail,
		FeedbackSubject: cfg.App.FeedbackSubject,
		FeedbackBody:    cfg.App.FeedbackBody,
	}

	generator := application.NewGenerator(store, rand.New(rand.NewSource(time.Now().UnixNano())))

	// The bot is both a surface and the audio delivery channel, so the
	// transport factory is bound to a variable assigned below.
	var bot *telegram.Bot

	registry := application.NewRegistry(application.SessionDeps{
		Generator: generator,
		Content:   store,
		NewFavorites: func(owner string) domain.FavoritesPort {
			return redisClient.NewFavorites(owner)
		},
		NewTransport: func(owner string) domain.AudioTransportPort {
			return audio.NewStreamTransport(func(ctx context.Context, url string) error {
				return bot.DeliverAudio(owner)(ctx, url)
			})
		},
		AudioBaseURL:  cfg.Audio.BaseURL,
		AudioReciter:  cfg.Audio.Reciter,
		DefaultFilter: domain.FilterBoth,
	})

	bot, err = telegram.NewBot(
		cfg.Telegram.Token,
		registry,
		i18nService,
		renderer,
		links,
		domain.Language(cfg.App.DefaultLanguage),
	)
	if err != nil {
		return err
	}
	log.Info().Msg("telegram bot initialized")

	api := httpapi.NewServer(registry, store, links)
	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: api.Routes(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 2)
	go func() {
		log.Info().Msg("starting bot")
		if err := bot.Start(ctx); err != nil {
			errChan <- err
		}
	}()
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("starting http server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		log.Info().Msg("received shutdown signal")
	case err := <-errChan:
		log.Error().Err(err).Msg("server error")
		cancel()
		return err
	}

	cancel()
	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("stop bot")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown http server")
	}

	log.Info().Msg("stopped")
	return nil
}
