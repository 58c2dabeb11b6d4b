package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/agent"
	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/agent/graph"
	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/agent/model"
	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/agent/repo"
	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/api"
	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/catalog"
	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/chat"
	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/core"
	logx "github.com/liwaisi-tech/ai-micro-businesses-assistant/pkg/logger"
	pkgredis "github.com/liwaisi-tech/ai-micro-businesses-assistant/pkg/redis"
)

// AppConfig defines all configurable parameters for the assistant,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`

	// Infrastructure
	Redis         pkgredis.Config
	CatalogDBPath string `envconfig:"CATALOG_DB_PATH" default:"assistant.db"`

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Assistant configs
	Response     model.ResponseModelConfig
	Prompt       model.PromptConfig
	Conversation model.ConversationConfig
	Session      chat.Config
	Server       api.Config
}

func main() {
	ctx := context.Background()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load structured config from env
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(cfg.Environment)})

	rdb, err := cfg.Redis.New()
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to initialise Redis client")
	}
	defer rdb.Close()
	logx.Info().Msg("Connected to Redis")

	cat, err := catalog.Open(cfg.CatalogDBPath)
	if err != nil {
		logx.Fatal().Err(err).Str("path", cfg.CatalogDBPath).Msg("Failed to open product catalog")
	}
	defer cat.Close()

	historyTTL, err := time.ParseDuration(cfg.Conversation.TTL)
	if err != nil {
		logx.Fatal().Err(err).Str("value", cfg.Conversation.TTL).Msg("Invalid CONVERSATION_TTL")
	}
	sweepInterval, err := time.ParseDuration(cfg.Session.SweepInterval)
	if err != nil {
		logx.Fatal().Err(err).Str("value", cfg.Session.SweepInterval).Msg("Invalid SESSION_SWEEP_INTERVAL")
	}
	maxIdle, err := time.ParseDuration(cfg.Session.MaxIdle)
	if err != nil {
		logx.Fatal().Err(err).Str("value", cfg.Session.MaxIdle).Msg("Invalid SESSION_MAX_IDLE")
	}
	requestTimeout, err := time.ParseDuration(cfg.Session.RequestTimeout)
	if err != nil {
		logx.Fatal().Err(err).Str("value", cfg.Session.RequestTimeout).Msg("Invalid CHAT_REQUEST_TIMEOUT")
	}

	engine, err := agent.NewEngine(ctx, graph.Config{
		APIKey:           cfg.APIKey,
		BaseURL:          cfg.BaseURL,
		ResponseModel:    cfg.Response,
		Prompt:           cfg.Prompt,
		Conversation:     cfg.Conversation,
		ConversationRepo: repo.NewRedisConversationRepository(rdb, historyTTL),
		Catalog:          cat,
	})
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to build conversational engine")
	}

	store := chat.NewStore(engine)
	service := chat.NewService(store, requestTimeout)

	reaper := chat.NewReaper(store, sweepInterval, maxIdle)
	reaper.Start(ctx)
	defer reaper.Stop()

	server := api.NewServer(cfg.Server, service)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logx.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Error().Err(err).Msg("http server failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("http shutdown failed")
	}
}
