package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/chat"
)

type echoEngine struct{}

func (echoEngine) Open(userID string) (chat.Conversation, error) {
	return echoConversation{}, nil
}

type echoConversation struct{}

func (echoConversation) Send(ctx context.Context, message string) (string, error) {
	return "echo: " + message, nil
}

func newTestServer() *Server {
	service := chat.NewService(chat.NewStore(echoEngine{}), 0)
	return NewServer(Config{Host: "127.0.0.1", Port: 0}, service)
}

func TestValidWhatsappNumber(t *testing.T) {
	tests := []struct {
		number string
		valid  bool
	}{
		{"+573658425187", true},
		{"+1", true},
		{"573658425187", false},
		{"+", false},
		{"", false},
		{"+57365abc", false},
		{"+57 365", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidWhatsappNumber(tt.number), "number %q", tt.number)
	}
}

func TestChatMessageEndpoint(t *testing.T) {
	srv := newTestServer()

	body := `{"message":"hola","whatsapp_number":"+573658425187"}`
	req := httptest.NewRequest(http.MethodPost, BasePath+"/chat/message", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "echo: hola", resp.Response)
}

func TestChatMessageRejectsMalformedNumber(t *testing.T) {
	srv := newTestServer()

	body := `{"message":"hola","whatsapp_number":"573658425187"}`
	req := httptest.NewRequest(http.MethodPost, BasePath+"/chat/message", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Detail, "Invalid WhatsApp number")
}

func TestChatMessageRejectsInvalidJSON(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, BasePath+"/chat/message", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, Version, resp.Version)
	assert.False(t, resp.Timestamp.IsZero())
}
