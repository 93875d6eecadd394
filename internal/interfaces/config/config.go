package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"telegramNewsBot/internal/domain/entity"
)

type Config struct {
	BotToken  string `envconfig:"BOT_TOKEN" required:"true"`
	ChannelID string `envconfig:"CHANNEL_ID" required:"true"`
	ParseMode string `envconfig:"PARSE_MODE" default:"HTML"`

	Feeds []*entity.FeedConfig `ignored:"true"`

	DefaultLanguage string `envconfig:"DEFAULT_LANGUAGE" default:"en"`

	OracleProvider string `envconfig:"ORACLE_PROVIDER" default:"endpoint"`
	OracleURL      string `envconfig:"ORACLE_URL"`
	OracleAPIKey   string `envconfig:"ORACLE_API_KEY"`
	OracleModel    string `envconfig:"ORACLE_MODEL"`
	OracleRegion    string `envconfig:"ORACLE_REGION" default:"us-east-1"`
	OracleMaxTokens int    `envconfig:"ORACLE_MAX_TOKENS" default:"1024"`
	OracleTimeout   int    `envconfig:"ORACLE_TIMEOUT" default:"60"`

	PollInterval      int `envconfig:"POLL_INTERVAL" default:"300"`
	PublishDelay      int `envconfig:"PUBLISH_DELAY" default:"2"`
	AnalyticsInterval int `envconfig:"ANALYTICS_INTERVAL" default:"3600"`

	DBPath string `envconfig:"DB_PATH"`
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if !entity.IsSupportedLanguage(cfg.DefaultLanguage) {
		log.Printf("Unsupported default language %q, using %s", cfg.DefaultLanguage, entity.DefaultLanguage)
		cfg.DefaultLanguage = entity.DefaultLanguage
	}

	cfg.Feeds = loadFeeds(cfg.DefaultLanguage)
	if len(cfg.Feeds) == 0 {
		return nil, fmt.Errorf("no RSS feeds configured. Please set RSS_URL_1, RSS_URL_2, etc.")
	}

	return &cfg, nil
}

// loadFeeds はRSS_URL_1から欠番まで連番で読み込みます。同一URLの重複は
// 最初の1件のみ有効です。言語コードが未対応の場合は既定言語に落とします。
func loadFeeds(defaultLanguage string) []*entity.FeedConfig {
	var feeds []*entity.FeedConfig
	seen := make(map[string]bool)

	for i := 1; ; i++ {
		url := os.Getenv(fmt.Sprintf("RSS_URL_%d", i))
		if url == "" {
			break
		}
		if seen[url] {
			log.Printf("Duplicate feed URL %s ignored", url)
			continue
		}
		seen[url] = true

		feeds = append(feeds, &entity.FeedConfig{
			URL:      url,
			Language: loadFeedLanguage(i, defaultLanguage),
		})
	}

	return feeds
}

func loadFeedLanguage(index int, defaultLanguage string) string {
	lang := os.Getenv(fmt.Sprintf("RSS_LANG_%d", index))
	if lang == "" {
		return defaultLanguage
	}
	if !entity.IsSupportedLanguage(lang) {
		log.Printf("Unsupported language %q for feed %d, using %s", lang, index, defaultLanguage)
		return defaultLanguage
	}
	return lang
}

func (c *Config) GetPollInterval() time.Duration {
	return time.Duration(c.PollInterval) * time.Second
}

func (c *Config) GetPublishDelay() time.Duration {
	return time.Duration(c.PublishDelay) * time.Second
}

func (c *Config) GetAnalyticsInterval() time.Duration {
	return time.Duration(c.AnalyticsInterval) * time.Second
}

func (c *Config) GetOracleTimeout() time.Duration {
	return time.Duration(c.OracleTimeout) * time.Second
}
