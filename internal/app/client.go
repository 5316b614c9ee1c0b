package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KunitakeHyuga/Hackathon/internal/adapter/provider/anthropic"
	"github.com/KunitakeHyuga/Hackathon/internal/adapter/provider/gemini"
	"github.com/KunitakeHyuga/Hackathon/internal/adapter/provider/openai"
	"github.com/KunitakeHyuga/Hackathon/internal/adapter/speechapi"
	"github.com/KunitakeHyuga/Hackathon/internal/adapter/storeapi"
	"github.com/KunitakeHyuga/Hackathon/internal/config"
	"github.com/KunitakeHyuga/Hackathon/internal/domain"
	"github.com/KunitakeHyuga/Hackathon/internal/service/chat"
)

// Translator is implemented by every translation provider adapter.
type Translator interface {
	Translate(ctx context.Context, text string, dialect domain.Dialect, dir domain.Direction) (string, error)
}

// NewTranslator builds the adapter selected by cfg.Provider.
func NewTranslator(cfg config.TranslatorConfig, logger *slog.Logger) (Translator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return gemini.NewTranslator(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout, logger), nil
	case config.ProviderAnthropic:
		return anthropic.NewTranslator(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout, logger), nil
	case config.ProviderOpenAI:
		return openai.NewTranslator(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown translator provider %q", cfg.Provider)
	}
}

// Client bundles everything a chat front end needs.
type Client struct {
	Config       *config.ClientConfig
	Logger       *slog.Logger
	Store        *storeapi.Client
	Speech       *speechapi.Client
	Session      *chat.Session
	Manager      *chat.Manager
	Orchestrator *chat.Orchestrator
}

// NewClient wires a chat session against the history backend and the
// configured translation provider. The synthesis proxy is served by the
// same backend.
func NewClient(cfg *config.ClientConfig, logger *slog.Logger) (*Client, error) {
	translator, err := NewTranslator(cfg.Translator, logger)
	if err != nil {
		return nil, err
	}

	store := storeapi.New(cfg.Store.BaseURL, cfg.Store.Timeout, logger)
	speech := speechapi.New(cfg.Store.BaseURL, cfg.Store.Timeout, logger)

	session := chat.NewSession(cfg.Chat.Dialect(), cfg.Chat.Direction())
	manager := chat.NewManager(logger, store, session)
	orch := chat.NewOrchestrator(logger, session, manager, translator, store, speech, cfg.Chat.SpeakerID)

	return &Client{
		Config:       cfg,
		Logger:       logger,
		Store:        store,
		Speech:       speech,
		Session:      session,
		Manager:      manager,
		Orchestrator: orch,
	}, nil
}
