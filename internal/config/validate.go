package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if err := validateURL(c.Voicevox.URL); err != nil {
		return fmt.Errorf("voicevox.url: %w", err)
	}
	if c.Voicevox.DefaultSpeaker < 0 {
		return fmt.Errorf("voicevox.default_speaker must be >= 0 (got %d)", c.Voicevox.DefaultSpeaker)
	}
	if c.Server.SpeechRateLimit < 0 {
		return fmt.Errorf("server.speech_rate_limit must be >= 0 (got %d)", c.Server.SpeechRateLimit)
	}
	return c.Log.validate()
}

// Validate checks the chat client configuration and normalizes provider names.
func (c *ClientConfig) Validate() error {
	if err := validateURL(c.Store.BaseURL); err != nil {
		return fmt.Errorf("store.base_url: %w", err)
	}

	c.Translator.Provider = strings.ToLower(strings.TrimSpace(c.Translator.Provider))
	switch c.Translator.Provider {
	case ProviderGemini, ProviderAnthropic, ProviderOpenAI:
	default:
		return fmt.Errorf("translator.provider must be one of gemini, anthropic, openai (got %q)", c.Translator.Provider)
	}
	if strings.TrimSpace(c.Translator.APIKey) == "" {
		return fmt.Errorf("translator.api_key is required")
	}
	if c.Translator.BaseURL != "" {
		if err := validateURL(c.Translator.BaseURL); err != nil {
			return fmt.Errorf("translator.base_url: %w", err)
		}
	}

	if _, err := domain.ParseDialect(c.Chat.DefaultDialect); err != nil {
		return fmt.Errorf("chat.default_dialect: %w", err)
	}
	if _, err := domain.ParseDirection(c.Chat.DefaultDirection); err != nil {
		return fmt.Errorf("chat.default_direction: %w", err)
	}
	if c.Chat.SpeakerID < 0 {
		return fmt.Errorf("chat.speaker_id must be >= 0 (got %d)", c.Chat.SpeakerID)
	}
	return c.Log.validate()
}

// validate accepts empty values; the logger applies its own defaults.
func (l LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "", "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", l.Format)
	}
	return nil
}

// Dialect returns the parsed default dialect. Validate must have succeeded.
func (c ChatConfig) Dialect() domain.Dialect {
	d, err := domain.ParseDialect(c.DefaultDialect)
	if err != nil {
		return domain.DefaultDialect
	}
	return d
}

// Direction returns the parsed default direction. Validate must have succeeded.
func (c ChatConfig) Direction() domain.Direction {
	d, err := domain.ParseDirection(c.DefaultDirection)
	if err != nil {
		return domain.DirectionStandardToDialect
	}
	return d
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
