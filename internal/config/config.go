package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Redis    RedisConfig    `mapstructure:"redis"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Content  ContentConfig  `mapstructure:"content"`
	Audio    AudioConfig    `mapstructure:"audio"`
	App      AppConfig      `mapstructure:"app"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token"`
}

type RedisConfig struct {
	URI string `mapstructure:"uri"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type ContentConfig struct {
	Dir            string `mapstructure:"dir"`
	BackgroundsDir string `mapstructure:"backgrounds_dir"`
	FontsDir       string `mapstructure:"fonts_dir"`
}

type AudioConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Reciter string `mapstructure:"reciter"`
}

type AppConfig struct {
	LocalesDir      string `mapstructure:"locales_dir"`
	DefaultLanguage string `mapstructure:"default_language"`
	Watermark       string `mapstructure:"watermark"`
	StoreURL        string `mapstructure:"store_url"`
	ShareMessage    string `mapstructure:"share_message"`
	FeedbackEmail   string `mapstructure:"feedback_email"`
	FeedbackSubject string `mapstructure:"feedback_subject"`
	FeedbackBody    string `mapstructure:"feedback_body"`
}

// Load loads configuration from a YAML file with environment variable overrides
func Load(filename string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(filename)

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("content.dir", "assets/content")
	v.SetDefault("content.backgrounds_dir", "assets/images")
	v.SetDefault("content.fonts_dir", "assets/fonts")
	v.SetDefault("audio.base_url", "https://everyayah.com/data")
	v.SetDefault("audio.reciter", "Alafasy_128kbps")
	v.SetDefault("app.locales_dir", "locales")
	v.SetDefault("app.default_language", "ar")
	v.SetDefault("app.watermark", "Islamic Statuses")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	v.SetEnvPrefix("")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Telegram.Token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}
	if cfg.Redis.URI == "" {
		return nil, fmt.Errorf("redis URI is required")
	}

	return &cfg, nil
}
