package api

import (
	"encoding/json"
	"net/http"
	"time"

	logx "github.com/liwaisi-tech/ai-micro-businesses-assistant/pkg/logger"
)

// ValidWhatsappNumber reports whether number is "+" followed by digits
// only. This is the boundary check: malformed identifiers never reach the
// session façade.
func ValidWhatsappNumber(number string) bool {
	if len(number) < 2 || number[0] != '+' {
		return false
	}
	for i := 1; i < len(number); i++ {
		if number[i] < '0' || number[i] > '9' {
			return false
		}
	}
	return true
}

func (s *Server) handleChatMessage(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "invalid JSON body"})
		return
	}

	if !ValidWhatsappNumber(req.WhatsappNumber) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Detail: "Invalid WhatsApp number format. Must start with + followed by digits.",
		})
		return
	}

	logx.Debug().Str("whatsapp_number", req.WhatsappNumber).Msg("processing chat message")

	reply := s.chatService.HandleMessage(r.Context(), req.WhatsappNumber, req.Message)
	writeJSON(w, http.StatusOK, ChatResponse{Response: reply})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Version:   Version,
	})
}
