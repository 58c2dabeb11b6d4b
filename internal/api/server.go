// Package api exposes the assistant over HTTP: one chat endpoint that
// feeds the session façade, plus a health probe. WhatsApp number format
// is validated here, before anything reaches the chat core.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/chat"
	logx "github.com/liwaisi-tech/ai-micro-businesses-assistant/pkg/logger"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// BasePath prefixes every chat route.
const BasePath = "/ai-business-assistant/api/v1"

// Config holds the listen address, sourced from SERVER_* env variables.
type Config struct {
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port int    `envconfig:"SERVER_PORT" default:"8080"`
}

// Server serves the chat API over net/http.
type Server struct {
	chatService *chat.Service
	httpServer  *http.Server
}

// NewServer wires the handlers around the chat service.
func NewServer(cfg Config, chatService *chat.Service) *Server {
	s := &Server{chatService: chatService}

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+BasePath+"/chat/message", s.handleChatMessage)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe blocks serving requests until Shutdown or a listener error.
func (s *Server) ListenAndServe() error {
	logx.Info().Str("addr", s.httpServer.Addr).Msg("http server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests within the ctx deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the routing mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logx.Error().Err(err).Msg("failed to encode response body")
	}
}
