package config

import "time"

// Translator provider names.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// ClientConfig is the configuration of the terminal chat client (cmd/chat).
type ClientConfig struct {
	Store      StoreConfig      `yaml:"store"`
	Translator TranslatorConfig `yaml:"translator"`
	Chat       ChatConfig       `yaml:"chat"`
	Log        LogConfig        `yaml:"log"`
}

// StoreConfig points at the history backend.
type StoreConfig struct {
	BaseURL string        `yaml:"base_url" env:"STORE_BASE_URL" env-default:"http://localhost:8000"`
	Timeout time.Duration `yaml:"timeout"  env:"STORE_TIMEOUT"  env-default:"10s"`
}

// TranslatorConfig selects and configures the translation provider.
// Model and BaseURL fall back to the provider's defaults when empty.
type TranslatorConfig struct {
	Provider string        `yaml:"provider" env:"TRANSLATOR_PROVIDER" env-default:"gemini"`
	APIKey   string        `yaml:"api_key"  env:"TRANSLATOR_API_KEY"  env-required:"true"`
	Model    string        `yaml:"model"    env:"TRANSLATOR_MODEL"`
	BaseURL  string        `yaml:"base_url" env:"TRANSLATOR_BASE_URL"`
	Timeout  time.Duration `yaml:"timeout"  env:"TRANSLATOR_TIMEOUT"  env-default:"30s"`
}

// ChatConfig holds session defaults.
type ChatConfig struct {
	DefaultDialect   string `yaml:"default_dialect"   env:"CHAT_DEFAULT_DIALECT"   env-default:"関西弁"`
	DefaultDirection string `yaml:"default_direction" env:"CHAT_DEFAULT_DIRECTION" env-default:"standard-to-dialect"`
	SpeakerID        int    `yaml:"speaker_id"        env:"CHAT_SPEAKER_ID"        env-default:"3"`
	AudioDir         string `yaml:"audio_dir"         env:"CHAT_AUDIO_DIR"         env-default:"./audio"`
}
