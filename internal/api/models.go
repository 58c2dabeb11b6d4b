package api

import "time"

// ChatRequest is the inbound message payload.
type ChatRequest struct {
	Message        string `json:"message"`
	WhatsappNumber string `json:"whatsapp_number"`
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Response string `json:"response"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// ErrorResponse is the JSON body for client and server errors.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
